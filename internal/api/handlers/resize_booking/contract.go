package resize_booking

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/service/bookings/models"
)

type CalendarService interface {
	Resize(ctx context.Context, id string, durationMinutes int) (*domain.Booking, error)
}

type BookingDescriber interface {
	Describe(b *domain.Booking) *models.BookingResponse
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
