package replace_grid

import (
	"github.com/m04kA/Salon-ReservationService/internal/domain"
	"github.com/m04kA/Salon-ReservationService/internal/service/grid/models"
)

// ReplaceGridRequest HTTP request model
type ReplaceGridRequest struct {
	Grid domain.SlotGrid `json:"grid"`

	// ExpectedVersion версия, которую наблюдал клиент (опционально)
	ExpectedVersion *int64 `json:"expectedVersion,omitempty"`
}

// GridResponse HTTP response model
type GridResponse struct {
	Grid    domain.SlotGrid `json:"grid"`
	Version int64           `json:"version"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *ReplaceGridRequest) ToServiceRequest() *models.ReplaceRequest {
	return &models.ReplaceRequest{
		Grid:            r.Grid,
		ExpectedVersion: r.ExpectedVersion,
	}
}

// FromSnapshot конвертирует снимок сервиса в HTTP response
func FromSnapshot(snap *models.Snapshot) *GridResponse {
	return &GridResponse{
		Grid:    snap.Grid,
		Version: snap.Version,
	}
}
