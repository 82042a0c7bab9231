package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных (до обращения к хранилищу)
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase (отказ хранилища)
	ErrInternal = errors.New("create_booking: internal error")
)
