package pages

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	createBooking "github.com/m04kA/SMC-SalonBooking/internal/usecase/create_booking"
	getWeekGrid "github.com/m04kA/SMC-SalonBooking/internal/usecase/get_week_grid"
)

type CreateBookingUseCase interface {
	Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error)
}

type WeekGridUseCase interface {
	Execute(ctx context.Context, req *getWeekGrid.Request) (*getWeekGrid.Response, error)
}

type Catalog interface {
	All() []domain.Service
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
