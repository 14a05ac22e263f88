package get_grid

import (
	"github.com/m04kA/Salon-ReservationService/internal/domain"
	"github.com/m04kA/Salon-ReservationService/internal/service/grid/models"
)

// GridResponse HTTP response model
type GridResponse struct {
	Grid    domain.SlotGrid `json:"grid"`
	Version int64           `json:"version"`
}

// FromSnapshot конвертирует снимок сервиса в HTTP response
func FromSnapshot(snap *models.Snapshot) *GridResponse {
	return &GridResponse{
		Grid:    snap.Grid,
		Version: snap.Version,
	}
}
