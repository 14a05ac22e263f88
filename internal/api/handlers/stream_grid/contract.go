package stream_grid

import (
	"context"

	"github.com/m04kA/Salon-ReservationService/internal/service/grid/models"
)

type GridService interface {
	GetSnapshot(ctx context.Context) (*models.Snapshot, error)
	Subscribe() (<-chan models.Snapshot, func())
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
