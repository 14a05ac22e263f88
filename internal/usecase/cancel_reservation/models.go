package cancel_reservation

import (
	"time"

	"github.com/m04kA/Salon-ReservationService/internal/domain"
)

// Request модель запроса на отмену брони
type Request struct {
	Day     domain.Weekday  // День недели
	Slot    domain.TimeSlot // Целевой слот
	IsAdmin bool            // Проверенное администраторское право на этот запрос

	// ObservedVersion версия сетки, которую видел клиент (опционально)
	ObservedVersion *int64
}

// Response модель ответа с принятым снимком сетки
type Response struct {
	Grid       domain.SlotGrid    // Сетка после мутации
	Version    int64              // Новая версия сетки
	TargetDate time.Time          // Дата, на которую была бронь
	Cancelled  domain.Reservation // Снятая запись
}
