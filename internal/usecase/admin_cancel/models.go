package admin_cancel

import (
	"github.com/m04kA/Salon-ReservationService/internal/domain"
)

// Request модель запроса административной отмены
// Слот задается временем начала ("HH:MM"), как в административной форме
type Request struct {
	Credential string // Предъявленный секрет
	Day        string // День недели (mon..sat)
	TimePrefix string // Время начала слота, например "19:00"
}

// Response модель ответа с принятым снимком сетки
type Response struct {
	Grid      domain.SlotGrid    // Сетка после отмены
	Version   int64              // Новая версия сетки
	Day       domain.Weekday     // Разрешенный день недели
	Slot      domain.TimeSlot    // Разрешенный слот
	Cancelled domain.Reservation // Снятая запись
}
