package make_reservation

import (
	"github.com/m04kA/Salon-ReservationService/internal/domain"
	makeReservation "github.com/m04kA/Salon-ReservationService/internal/usecase/make_reservation"
)

// MakeReservationRequest HTTP request model
type MakeReservationRequest struct {
	Day        string `json:"day"`      // "mon".."sat"
	TimeSlot   string `json:"timeSlot"` // "17:00-17:10"
	ClientName string `json:"clientName"`
	Service    string `json:"service"` // "makeup" | "styling"

	// ObservedVersion версия сетки, по которой клиент принимал решение
	ObservedVersion *int64 `json:"observedVersion,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	Grid       domain.SlotGrid `json:"grid"`
	Version    int64           `json:"version"`
	TargetDate string          `json:"targetDate"`
	GroupID    string          `json:"groupId,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Словарь дня, слота и услуги проверяет usecase
func (r *MakeReservationRequest) ToUseCaseRequest(isAdmin bool) *makeReservation.Request {
	return &makeReservation.Request{
		Day:             domain.Weekday(r.Day),
		Slot:            domain.TimeSlot(r.TimeSlot),
		ClientName:      r.ClientName,
		Service:         domain.ServiceKind(r.Service),
		IsAdmin:         isAdmin,
		ObservedVersion: r.ObservedVersion,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *makeReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		Grid:       resp.Grid,
		Version:    resp.Version,
		TargetDate: resp.TargetDate.Format(domain.DateFormat),
		GroupID:    resp.GroupID,
	}
}
