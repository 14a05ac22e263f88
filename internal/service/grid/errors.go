package grid

import "errors"

var (
	// ErrStaleVersion возвращается, когда наблюдаемая клиентом версия сетки устарела
	// Клиент обязан перечитать снимок и повторить запрос
	ErrStaleVersion = errors.New("grid version is stale")

	// ErrInvalidGrid возвращается при попытке сохранить сетку, нарушающую инварианты
	ErrInvalidGrid = errors.New("invalid grid")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("grid service: internal error")
)
