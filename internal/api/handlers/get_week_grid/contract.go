package get_week_grid

import (
	"context"

	getWeekGrid "github.com/m04kA/SMC-SalonBooking/internal/usecase/get_week_grid"
)

type WeekGridUseCase interface {
	Execute(ctx context.Context, req *getWeekGrid.Request) (*getWeekGrid.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
