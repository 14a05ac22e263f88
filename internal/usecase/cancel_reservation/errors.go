package cancel_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("cancel_reservation: invalid input data")

	// ErrForbidden возвращается, когда политика изменений запрещает мутацию
	// на целевую дату в текущий момент
	ErrForbidden = errors.New("cancel_reservation: modification is not allowed for this date")

	// ErrEmptySlot возвращается при отмене незанятого слота
	ErrEmptySlot = errors.New("cancel_reservation: slot is empty")

	// ErrStaleVersion возвращается, когда наблюдаемая клиентом версия сетки устарела
	ErrStaleVersion = errors.New("cancel_reservation: grid version is stale")

	// ErrGridNotFound возвращается, когда сетка еще не сохранялась
	// (отменять в пустой системе нечего)
	ErrGridNotFound = errors.New("cancel_reservation: grid not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_reservation: internal error")
)
