package make_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	// (пустое имя, неизвестный день, слот или услуга)
	ErrInvalidInput = errors.New("make_reservation: invalid input data")

	// ErrForbidden возвращается, когда политика изменений запрещает мутацию
	// на целевую дату в текущий момент
	ErrForbidden = errors.New("make_reservation: modification is not allowed for this date")

	// ErrSlotOccupied возвращается, когда целевой или парный слот уже занят
	ErrSlotOccupied = errors.New("make_reservation: slot is already occupied")

	// ErrNoConsecutiveSlot возвращается при бронировании парной услуги
	// на последний слот дня
	ErrNoConsecutiveSlot = errors.New("make_reservation: no consecutive slot available")

	// ErrStaleVersion возвращается, когда наблюдаемая клиентом версия сетки устарела
	ErrStaleVersion = errors.New("make_reservation: grid version is stale")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("make_reservation: internal error")
)
