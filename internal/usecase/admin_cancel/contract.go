package admin_cancel

import (
	"context"

	cancelReservation "github.com/m04kA/Salon-ReservationService/internal/usecase/cancel_reservation"
)

// CancelReservationUseCase интерфейс use case отмены брони
// Административная отмена переиспользует обычный примитив отмены,
// включая каскадное освобождение парного слота
type CancelReservationUseCase interface {
	Execute(ctx context.Context, req *cancelReservation.Request) (*cancelReservation.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
