package cancel_reservation

import (
	"github.com/m04kA/Salon-ReservationService/internal/domain"
	cancelReservation "github.com/m04kA/Salon-ReservationService/internal/usecase/cancel_reservation"
)

// CancelReservationRequest HTTP request model
type CancelReservationRequest struct {
	Day      string `json:"day"`      // "mon".."sat"
	TimeSlot string `json:"timeSlot"` // "17:00-17:10"

	// ObservedVersion версия сетки, по которой клиент принимал решение
	ObservedVersion *int64 `json:"observedVersion,omitempty"`
}

// CancelledReservation снятая запись в HTTP ответе
type CancelledReservation struct {
	Name    string `json:"name"`
	Service string `json:"service"`
	GroupID string `json:"groupId,omitempty"`
}

// CancelResponse HTTP response model
type CancelResponse struct {
	Grid      domain.SlotGrid      `json:"grid"`
	Version   int64                `json:"version"`
	Cancelled CancelledReservation `json:"cancelled"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CancelReservationRequest) ToUseCaseRequest(isAdmin bool) *cancelReservation.Request {
	return &cancelReservation.Request{
		Day:             domain.Weekday(r.Day),
		Slot:            domain.TimeSlot(r.TimeSlot),
		IsAdmin:         isAdmin,
		ObservedVersion: r.ObservedVersion,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *cancelReservation.Response) *CancelResponse {
	return &CancelResponse{
		Grid:    resp.Grid,
		Version: resp.Version,
		Cancelled: CancelledReservation{
			Name:    resp.Cancelled.Name,
			Service: string(resp.Cancelled.Service),
			GroupID: resp.Cancelled.GroupID,
		},
	}
}
