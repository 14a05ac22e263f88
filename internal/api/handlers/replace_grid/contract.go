package replace_grid

import (
	"context"

	"github.com/m04kA/Salon-ReservationService/internal/service/grid/models"
)

type GridService interface {
	Replace(ctx context.Context, req *models.ReplaceRequest) (*models.Snapshot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
