package get_week_grid

import "errors"

var (
	// ErrInvalidInput возвращается при некорректной дате недели
	ErrInvalidInput = errors.New("get_week_grid: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase (отказ хранилища)
	ErrInternal = errors.New("get_week_grid: internal error")
)
