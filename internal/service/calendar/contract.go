package calendar

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// BookingStore операции хранилища, которыми пользуется доска
// Реализуется сервисом бронирований
type BookingStore interface {
	ListBookings(ctx context.Context) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error
	Reschedule(ctx context.Context, id, date, startTime string, durationMinutes int) error
	Resize(ctx context.Context, id string, durationMinutes int) error
	Delete(ctx context.Context, id string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
