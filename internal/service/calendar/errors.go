package calendar

import "errors"

var (
	// ErrInvalidAxis возвращается при некорректных рабочих часах или шаге сетки
	ErrInvalidAxis = errors.New("calendar: invalid time axis")

	// ErrNotLoaded возвращается при работе с доской до первой загрузки
	ErrNotLoaded = errors.New("calendar: board is not loaded")

	// ErrBookingNotOnBoard возвращается, когда бронирования нет в загруженном списке
	ErrBookingNotOnBoard = errors.New("calendar: booking is not on the board")
)
