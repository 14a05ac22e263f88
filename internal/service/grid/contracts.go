package grid

import (
	"context"

	"github.com/m04kA/Salon-ReservationService/internal/domain"
	gridRepo "github.com/m04kA/Salon-ReservationService/internal/infra/storage/grid"
)

// GridRepository интерфейс репозитория сетки
type GridRepository interface {
	Load(ctx context.Context) (*gridRepo.StoredGrid, error)
	Init(ctx context.Context, g domain.SlotGrid) (*gridRepo.StoredGrid, error)
	Save(ctx context.Context, g domain.SlotGrid, expectedVersion int64) (int64, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
