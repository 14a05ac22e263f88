package admin_cancel

import "errors"

var (
	// ErrUnauthorized возвращается при несовпадении административного секрета
	ErrUnauthorized = errors.New("admin_cancel: invalid admin credential")

	// ErrInvalidInput возвращается при неизвестном дне недели или времени слота
	ErrInvalidInput = errors.New("admin_cancel: invalid input data")

	// ErrEmptySlot возвращается при отмене незанятого слота
	ErrEmptySlot = errors.New("admin_cancel: slot is empty")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("admin_cancel: internal error")
)
