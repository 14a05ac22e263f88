package domain

import "fmt"

// ServiceKind вид услуги
type ServiceKind string

const (
	// ServiceMakeup макияж, занимает один слот
	ServiceMakeup ServiceKind = "makeup"

	// ServiceStyling укладка с одеванием, атомарно занимает два последовательных слота
	ServiceStyling ServiceKind = "styling"

	// ServiceNone отсутствие услуги (слот свободен)
	ServiceNone ServiceKind = ""
)

// ParseServiceKind парсит вид услуги из строки
// Пустая строка не является допустимым значением для бронирования
func ParseServiceKind(s string) (ServiceKind, error) {
	switch ServiceKind(s) {
	case ServiceMakeup:
		return ServiceMakeup, nil
	case ServiceStyling:
		return ServiceStyling, nil
	}
	return ServiceNone, fmt.Errorf("%w: unknown service kind %q", ErrInvalidReservation, s)
}

// RequiresPairedSlot проверяет, что услуга занимает два последовательных слота
func (s ServiceKind) RequiresPairedSlot() bool {
	return s == ServiceStyling
}

// Reservation запись о занятости одного слота
// Инвариант: Name пустое тогда и только тогда, когда Service == ServiceNone
// GroupID связывает оба слота парной услуги; у одиночных записей пустой
type Reservation struct {
	Name    string      `json:"name"`
	Service ServiceKind `json:"service"`
	GroupID string      `json:"groupId,omitempty"`
}

// EmptyReservation возвращает запись свободного слота
func EmptyReservation() Reservation {
	return Reservation{}
}

// IsEmpty проверяет, что слот свободен
func (r Reservation) IsEmpty() bool {
	return r.Name == ""
}

// Validate проверяет инвариант записи
func (r Reservation) Validate() error {
	if (r.Name == "") != (r.Service == ServiceNone) {
		return fmt.Errorf("%w: name=%q service=%q", ErrInvalidReservation, r.Name, r.Service)
	}
	if r.IsEmpty() && r.GroupID != "" {
		return fmt.Errorf("%w: empty record carries group id %q", ErrInvalidReservation, r.GroupID)
	}
	return nil
}
