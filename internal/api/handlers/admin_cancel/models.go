package admin_cancel

import (
	"github.com/m04kA/Salon-ReservationService/internal/domain"
	adminCancel "github.com/m04kA/Salon-ReservationService/internal/usecase/admin_cancel"
)

// AdminCancelRequest HTTP request model
// Секрет передается в заголовке X-Admin-Secret, слот задается временем начала
type AdminCancelRequest struct {
	Day  string `json:"day"`  // "mon".."sat"
	Time string `json:"time"` // "HH:MM", начало слота
}

// AdminCancelResponse HTTP response model
type AdminCancelResponse struct {
	Grid      domain.SlotGrid `json:"grid"`
	Version   int64           `json:"version"`
	Day       string          `json:"day"`
	TimeSlot  string          `json:"timeSlot"`
	Cancelled struct {
		Name    string `json:"name"`
		Service string `json:"service"`
		GroupID string `json:"groupId,omitempty"`
	} `json:"cancelled"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *AdminCancelRequest) ToUseCaseRequest(credential string) *adminCancel.Request {
	return &adminCancel.Request{
		Credential: credential,
		Day:        r.Day,
		TimePrefix: r.Time,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *adminCancel.Response) *AdminCancelResponse {
	out := &AdminCancelResponse{
		Grid:     resp.Grid,
		Version:  resp.Version,
		Day:      resp.Day.String(),
		TimeSlot: resp.Slot.String(),
	}
	out.Cancelled.Name = resp.Cancelled.Name
	out.Cancelled.Service = string(resp.Cancelled.Service)
	out.Cancelled.GroupID = resp.Cancelled.GroupID
	return out
}
