package make_reservation

import (
	"context"

	makeReservation "github.com/m04kA/Salon-ReservationService/internal/usecase/make_reservation"
)

type MakeReservationUseCase interface {
	Execute(ctx context.Context, req *makeReservation.Request) (*makeReservation.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
