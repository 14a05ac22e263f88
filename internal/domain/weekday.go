package domain

import "fmt"

// Weekday день недели рабочей сетки
// Закрытый упорядоченный набор: понедельник-суббота, воскресенье выходной
type Weekday string

const (
	Monday    Weekday = "mon"
	Tuesday   Weekday = "tue"
	Wednesday Weekday = "wed"
	Thursday  Weekday = "thu"
	Friday    Weekday = "fri"
	Saturday  Weekday = "sat"
)

// weekdays упорядоченный список рабочих дней
// Порядок совпадает с индексацией дат в CalendarWeek
var weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

// Weekdays возвращает упорядоченный список рабочих дней недели
func Weekdays() []Weekday {
	result := make([]Weekday, len(weekdays))
	copy(result, weekdays)
	return result
}

// ParseWeekday парсит день недели из строки
func ParseWeekday(s string) (Weekday, error) {
	for _, day := range weekdays {
		if string(day) == s {
			return day, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownWeekday, s)
}

// Index возвращает позицию дня в рабочей неделе (понедельник = 0)
// Для неизвестного значения возвращает -1
func (w Weekday) Index() int {
	for i, day := range weekdays {
		if day == w {
			return i
		}
	}
	return -1
}

// IsValid проверяет, что значение входит в закрытый набор
func (w Weekday) IsValid() bool {
	return w.Index() >= 0
}

// String возвращает строковое представление дня
func (w Weekday) String() string {
	return string(w)
}
