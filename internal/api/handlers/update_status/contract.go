package update_status

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/service/bookings/models"
)

// CalendarService изменение статуса через доску календаря (с откатом и перезагрузкой)
type CalendarService interface {
	SetStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error)
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
