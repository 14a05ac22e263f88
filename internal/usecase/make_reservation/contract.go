package make_reservation

import (
	"context"
	"time"

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

// Notifier интерфейс рассылки принятых снимков сетки
// Вызывается только после фиксации мутации, никогда спекулятивно
type Notifier interface {
	Publish(g domain.SlotGrid, version int64)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
