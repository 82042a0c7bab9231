package domain

import "errors"

var (
	// ErrBookingNotFound общий признак отсутствия записи, его оборачивают оба хранилища
	ErrBookingNotFound = errors.New("booking not found")

	// ErrInvalidStatus статус не входит в закрытый набор
	ErrInvalidStatus = errors.New("invalid booking status")

	ErrServiceNameRequired   = errors.New("service name is required")
	ErrCustomerNameRequired  = errors.New("customer name is required")
	ErrCustomerPhoneRequired = errors.New("customer phone is required")

	ErrInvalidDate     = errors.New("invalid booking date, expected YYYY-MM-DD")
	ErrInvalidTime     = errors.New("invalid booking time, expected HH:MM")
	ErrInvalidDuration = errors.New("duration must be positive")
	ErrCrossesMidnight = errors.New("appointment must end before midnight")
)
