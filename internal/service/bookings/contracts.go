package bookings

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// BookingRepository интерфейс хранилища бронирований
// Реализуется Postgres-репозиторием и REST-клиентом хостингового хранилища
type BookingRepository interface {
	List(ctx context.Context) ([]*domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	Update(ctx context.Context, id string, patch domain.BookingPatch) error
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error
	Delete(ctx context.Context, id string) error
}

// Catalog справочник услуг (слабая ссылка по имени)
type Catalog interface {
	Lookup(name string) (domain.Service, bool)
	PriceOf(name string) float64
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
