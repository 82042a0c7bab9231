package list_services

import "github.com/m04kA/SMC-SalonBooking/internal/domain"

type Catalog interface {
	All() []domain.Service
}

type Logger interface {
	Info(format string, v ...interface{})
}
