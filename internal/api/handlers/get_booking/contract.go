package get_booking

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/service/bookings/models"
)

// CalendarService выбор записи на доске календаря
type CalendarService interface {
	Select(ctx context.Context, id string) (*domain.Booking, error)
}

// BookingDescriber собирает DTO бронирования
type BookingDescriber interface {
	Describe(b *domain.Booking) *models.BookingResponse
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
