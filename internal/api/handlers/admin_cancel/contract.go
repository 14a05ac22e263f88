package admin_cancel

import (
	"context"

	adminCancel "github.com/m04kA/Salon-ReservationService/internal/usecase/admin_cancel"
)

type AdminCancelUseCase interface {
	Execute(ctx context.Context, req *adminCancel.Request) (*adminCancel.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
