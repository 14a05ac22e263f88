package grid

import "errors"

var (
	// ErrGridNotFound возвращается, когда сетка еще не сохранена в БД
	ErrGridNotFound = errors.New("grid.repository: grid not found")

	// ErrVersionConflict возвращается, когда версия сетки изменилась
	// между чтением и записью (optimistic concurrency control)
	ErrVersionConflict = errors.New("grid.repository: version conflict")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("grid.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("grid.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("grid.repository: failed to scan row")

	// ErrEncodeGrid возвращается при ошибке сериализации сетки
	ErrEncodeGrid = errors.New("grid.repository: failed to encode grid")

	// ErrDecodeGrid возвращается при ошибке десериализации сетки
	ErrDecodeGrid = errors.New("grid.repository: failed to decode grid")
)
