package domain

import "fmt"

// SlotGrid недельная сетка занятости: день недели -> слот -> запись
// Сетка всегда плотная: запись существует для каждой пары (день, слот),
// отмена сбрасывает значение, но никогда не удаляет ключ
//
// Операции Reserve и Cancel не изменяют исходную сетку,
// а возвращают новую копию - снимок после мутации
type SlotGrid map[Weekday]map[TimeSlot]Reservation

// NewSlotGrid создает плотную пустую сетку
func NewSlotGrid() SlotGrid {
	grid := make(SlotGrid, len(weekdays))
	for _, day := range weekdays {
		row := make(map[TimeSlot]Reservation, len(timeSlots))
		for _, slot := range timeSlots {
			row[slot] = EmptyReservation()
		}
		grid[day] = row
	}
	return grid
}

// Clone возвращает глубокую копию сетки
func (g SlotGrid) Clone() SlotGrid {
	clone := make(SlotGrid, len(g))
	for day, row := range g {
		rowCopy := make(map[TimeSlot]Reservation, len(row))
		for slot, rec := range row {
			rowCopy[slot] = rec
		}
		clone[day] = rowCopy
	}
	return clone
}

// At возвращает запись слота
func (g SlotGrid) At(day Weekday, slot TimeSlot) Reservation {
	return g[day][slot]
}

// Reserve бронирует слот и возвращает новую сетку
// Для парной услуги атомарно занимает slot и следующий за ним слот,
// записывая в оба одинаковую запись с общим groupID
// Все проверки выполняются до первой записи - частичных мутаций не бывает
func (g SlotGrid) Reserve(day Weekday, slot TimeSlot, name string, service ServiceKind, groupID string) (SlotGrid, error) {
	if !day.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownWeekday, day)
	}
	if !slot.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTimeSlot, slot)
	}

	if !g.At(day, slot).IsEmpty() {
		return nil, fmt.Errorf("%w: %s %s", ErrSlotOccupied, day, slot)
	}

	record := Reservation{Name: name, Service: service}
	if err := record.Validate(); err != nil {
		return nil, err
	}

	if !service.RequiresPairedSlot() {
		next := g.Clone()
		next[day][slot] = record
		return next, nil
	}

	// Парная услуга: нужен следующий слот
	pairSlot, ok := slot.Next()
	if !ok {
		return nil, fmt.Errorf("%w: %s is the last slot of the day", ErrNoConsecutiveSlot, slot)
	}
	if !g.At(day, pairSlot).IsEmpty() {
		return nil, fmt.Errorf("%w: paired slot %s %s", ErrSlotOccupied, day, pairSlot)
	}

	record.GroupID = groupID
	next := g.Clone()
	next[day][slot] = record
	next[day][pairSlot] = record
	return next, nil
}

// Cancel освобождает слот и возвращает новую сетку вместе со снятой записью
// Для парной услуги также освобождает следующий слот, если он принадлежит
// той же брони: совпадает groupID, либо - для записей без groupID -
// совпадает имя клиента (наследие формата без связующего идентификатора)
func (g SlotGrid) Cancel(day Weekday, slot TimeSlot) (SlotGrid, Reservation, error) {
	if !day.IsValid() {
		return nil, Reservation{}, fmt.Errorf("%w: %q", ErrUnknownWeekday, day)
	}
	if !slot.IsValid() {
		return nil, Reservation{}, fmt.Errorf("%w: %q", ErrUnknownTimeSlot, slot)
	}

	current := g.At(day, slot)
	if current.IsEmpty() {
		return nil, Reservation{}, fmt.Errorf("%w: %s %s", ErrEmptySlot, day, slot)
	}

	next := g.Clone()
	next[day][slot] = EmptyReservation()

	if current.Service.RequiresPairedSlot() {
		if pairSlot, ok := slot.Next(); ok {
			pair := next[day][pairSlot]
			if isPairOf(current, pair) {
				next[day][pairSlot] = EmptyReservation()
			}
		}
	}

	return next, current, nil
}

// isPairOf проверяет, что pair является вторым слотом той же брони, что и rec
func isPairOf(rec, pair Reservation) bool {
	if pair.IsEmpty() || !pair.Service.RequiresPairedSlot() {
		return false
	}
	if rec.GroupID != "" || pair.GroupID != "" {
		return rec.GroupID == pair.GroupID
	}
	return rec.Name == pair.Name
}

// Validate проверяет структурные инварианты сетки:
// плотность (каждая пара день/слот присутствует, лишних ключей нет)
// и корректность каждой записи
func (g SlotGrid) Validate() error {
	if len(g) != len(weekdays) {
		return fmt.Errorf("%w: got %d weekdays, want %d", ErrSparseGrid, len(g), len(weekdays))
	}

	for _, day := range weekdays {
		row, ok := g[day]
		if !ok {
			return fmt.Errorf("%w: missing weekday %s", ErrSparseGrid, day)
		}
		if len(row) != len(timeSlots) {
			return fmt.Errorf("%w: weekday %s has %d slots, want %d", ErrSparseGrid, day, len(row), len(timeSlots))
		}
		for _, slot := range timeSlots {
			rec, ok := row[slot]
			if !ok {
				return fmt.Errorf("%w: missing slot %s %s", ErrSparseGrid, day, slot)
			}
			if err := rec.Validate(); err != nil {
				return fmt.Errorf("slot %s %s: %w", day, slot, err)
			}
		}
	}

	return nil
}
