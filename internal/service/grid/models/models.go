package models

import "github.com/m04kA/Salon-ReservationService/internal/domain"

// Snapshot снимок сетки вместе с версией
// Версия используется клиентами для optimistic concurrency control
type Snapshot struct {
	Grid    domain.SlotGrid `json:"grid"`
	Version int64           `json:"version"`
}

// ReplaceRequest запрос на полную замену сетки
// ExpectedVersion опционален: если указан, замена применяется только
// когда текущая версия совпадает с наблюдавшейся клиентом
type ReplaceRequest struct {
	Grid            domain.SlotGrid
	ExpectedVersion *int64
}
