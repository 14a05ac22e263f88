package make_reservation

import (
	"time"

	"github.com/m04kA/Salon-ReservationService/internal/domain"
)

// Request модель запроса на создание брони
type Request struct {
	Day        domain.Weekday     // День недели
	Slot       domain.TimeSlot    // Целевой слот
	ClientName string             // Имя клиента
	Service    domain.ServiceKind // Вид услуги
	IsAdmin    bool               // Проверенное администраторское право на этот запрос

	// ObservedVersion версия сетки, которую видел клиент (опционально)
	// При несовпадении с текущей запрос отклоняется как устаревший
	ObservedVersion *int64
}

// Response модель ответа с принятым снимком сетки
type Response struct {
	Grid       domain.SlotGrid // Сетка после мутации
	Version    int64           // Новая версия сетки
	TargetDate time.Time       // Конкретная дата, на которую создана бронь
	GroupID    string          // Идентификатор пары (только для парной услуги)
}
