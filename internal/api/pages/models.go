package pages

import (
	"net/url"
	"strings"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	createBooking "github.com/m04kA/SMC-SalonBooking/internal/usecase/create_booking"
	getWeekGrid "github.com/m04kA/SMC-SalonBooking/internal/usecase/get_week_grid"
)

// bookingForm значения формы; при ошибке форма показывается заново с ними
type bookingForm struct {
	ServiceName   string
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	Date          string
	Time          string
	Notes         string
}

func formFromValues(v url.Values) bookingForm {
	get := func(key string) string { return strings.TrimSpace(v.Get(key)) }
	return bookingForm{
		ServiceName:   get("service"),
		CustomerName:  get("name"),
		CustomerPhone: get("phone"),
		CustomerEmail: get("email"),
		Date:          get("date"),
		Time:          get("time"),
		Notes:         get("notes"),
	}
}

func (f bookingForm) toUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		Source:        domain.SourcePublic,
		ServiceName:   f.ServiceName,
		CustomerName:  f.CustomerName,
		CustomerPhone: f.CustomerPhone,
		CustomerEmail: f.CustomerEmail,
		Notes:         f.Notes,
		Date:          f.Date,
		StartTime:     f.Time,
	}
}

type serviceOption struct {
	Name          string
	DisplayName   string
	Description   string
	DurationLabel string
	Price         float64
}

type confirmation struct {
	ServiceLabel  string
	Date          string
	Time          string
	DurationLabel string
	Total         float64
}

type bookingPage struct {
	Services     []serviceOption
	Form         bookingForm
	Error        string
	Confirmation *confirmation
}

type statusOption struct {
	Value string
	Label string
}

type adminPage struct {
	Grid     *getWeekGrid.Response
	Statuses []statusOption
	Services []serviceOption
	Error    string
}

type loginPage struct {
	Error string
}

func serviceOptions(services []domain.Service) []serviceOption {
	out := make([]serviceOption, 0, len(services))
	for _, s := range services {
		out = append(out, serviceOption{
			Name:          s.Name,
			DisplayName:   s.DisplayName,
			Description:   s.Description,
			DurationLabel: domain.FormatDuration(s.DurationMinutes),
			Price:         s.Price,
		})
	}
	return out
}

func statusOptions() []statusOption {
	out := make([]statusOption, 0, len(domain.AllStatuses))
	for _, s := range domain.AllStatuses {
		out = append(out, statusOption{Value: string(s), Label: s.Label()})
	}
	return out
}
