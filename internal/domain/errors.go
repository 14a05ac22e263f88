package domain

import "errors"

var (
	// ErrUnknownWeekday возвращается для дня вне закрытого набора mon..sat
	ErrUnknownWeekday = errors.New("domain: unknown weekday")

	// ErrUnknownTimeSlot возвращается для слота вне фиксированной сетки
	ErrUnknownTimeSlot = errors.New("domain: unknown time slot")

	// ErrSlotOccupied возвращается, когда целевой или парный слот уже занят
	ErrSlotOccupied = errors.New("domain: slot is already occupied")

	// ErrNoConsecutiveSlot возвращается при бронировании парной услуги на последний слот дня
	ErrNoConsecutiveSlot = errors.New("domain: no consecutive slot available")

	// ErrEmptySlot возвращается при отмене незанятого слота
	ErrEmptySlot = errors.New("domain: slot is empty")

	// ErrInvalidReservation возвращается при нарушении инварианта записи
	// (имя клиента пустое тогда и только тогда, когда услуга не задана)
	ErrInvalidReservation = errors.New("domain: invalid reservation record")

	// ErrSparseGrid возвращается, когда сетка не содержит записи для каждой пары (день, слот)
	ErrSparseGrid = errors.New("domain: grid is missing entries")
)
