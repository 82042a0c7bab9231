package create_booking

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// BookingRepository интерфейс хранилища бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// Catalog справочник услуг (поиск по имени, результат опционален)
type Catalog interface {
	Lookup(name string) (domain.Service, bool)
	PriceOf(name string) float64
	DurationOf(name string) (int, bool)
}

// OperationObserver счётчик изменений бронирований
type OperationObserver interface {
	ObserveBookingOperation(operation string, err error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
