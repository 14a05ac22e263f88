package domain

// Константы временной сетки
// Ежедневное рабочее окно 17:00-21:00, слоты по 10 минут
const (
	SlotDurationMinutes = 10

	// ServiceWindowOpenHour час открытия рабочего окна
	// Также граница блокировки: в день визита изменения разрешены строго до этого часа
	ServiceWindowOpenHour = 17

	ServiceWindowCloseHour = 21
)

// Форматы даты и времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
