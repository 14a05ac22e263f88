package make_reservation

import (
	"fmt"

	"github.com/m04kA/Salon-ReservationService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Все проверки словаря выполняются до обращения к сетке
func validateRequest(req *Request) error {
	if req.ClientName == "" {
		return fmt.Errorf("%w: client name is required", ErrInvalidInput)
	}

	if !req.Day.IsValid() {
		return fmt.Errorf("%w: unknown weekday %q", ErrInvalidInput, req.Day)
	}

	if !req.Slot.IsValid() {
		return fmt.Errorf("%w: unknown time slot %q", ErrInvalidInput, req.Slot)
	}

	if _, err := domain.ParseServiceKind(string(req.Service)); err != nil {
		return fmt.Errorf("%w: unknown service %q", ErrInvalidInput, req.Service)
	}

	return nil
}
