package domain

import (
	"fmt"

	"github.com/m04kA/Salon-ReservationService/pkg/types"
)

// TimeSlot фиксированный 10-минутный интервал рабочего окна,
// идентифицируется строкой вида "17:00-17:10"
// Порядок слотов семантически значим: соседний слот = следующий индекс
type TimeSlot string

// timeSlots все слоты дня в порядке следования, строятся один раз при старте
var timeSlots = buildTimeSlots()

func buildTimeSlots() []TimeSlot {
	total := (ServiceWindowCloseHour - ServiceWindowOpenHour) * 60 / SlotDurationMinutes
	slots := make([]TimeSlot, 0, total)

	start := types.TimeString(fmt.Sprintf("%02d:00", ServiceWindowOpenHour))
	for i := 0; i < total; i++ {
		end, err := start.AddMinutes(SlotDurationMinutes)
		if err != nil {
			// Окно 17:00-21:00 не пересекает полночь, сюда попасть нельзя
			panic(fmt.Sprintf("domain: failed to build time slots: %v", err))
		}
		slots = append(slots, TimeSlot(start.String()+"-"+end.String()))
		start = end
	}

	return slots
}

// TimeSlots возвращает все слоты дня в порядке следования
func TimeSlots() []TimeSlot {
	result := make([]TimeSlot, len(timeSlots))
	copy(result, timeSlots)
	return result
}

// ParseTimeSlot парсит слот из строки
func ParseTimeSlot(s string) (TimeSlot, error) {
	for _, slot := range timeSlots {
		if string(slot) == s {
			return slot, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTimeSlot, s)
}

// FindTimeSlotByStart находит слот по времени начала "HH:MM"
// Используется административной отменой, где слот задается префиксом
func FindTimeSlotByStart(start types.TimeString) (TimeSlot, bool) {
	for _, slot := range timeSlots {
		if slot.Start() == start {
			return slot, true
		}
	}
	return "", false
}

// Index возвращает позицию слота в дневной сетке
// Для неизвестного значения возвращает -1
func (t TimeSlot) Index() int {
	for i, slot := range timeSlots {
		if slot == t {
			return i
		}
	}
	return -1
}

// IsValid проверяет, что слот входит в фиксированную сетку
func (t TimeSlot) IsValid() bool {
	return t.Index() >= 0
}

// IsLast проверяет, что слот последний в дне (у него нет следующего)
func (t TimeSlot) IsLast() bool {
	return t.Index() == len(timeSlots)-1
}

// Next возвращает следующий по порядку слот
// Для последнего слота дня возвращает false
func (t TimeSlot) Next() (TimeSlot, bool) {
	idx := t.Index()
	if idx < 0 || idx == len(timeSlots)-1 {
		return "", false
	}
	return timeSlots[idx+1], true
}

// Start возвращает время начала слота
func (t TimeSlot) Start() types.TimeString {
	for i, r := range t {
		if r == '-' {
			return types.TimeString(t[:i])
		}
	}
	return types.TimeString(t)
}

// String возвращает строковое представление слота
func (t TimeSlot) String() string {
	return string(t)
}
