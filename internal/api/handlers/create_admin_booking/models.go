package create_admin_booking

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	createBooking "github.com/m04kA/SMC-SalonBooking/internal/usecase/create_booking"
)

var errInvalidSlot = errors.New("start and end must be RFC3339 timestamps")

// CreateAdminBookingRequest HTTP request model (клик по свободному слоту)
// Либо start/end выделенного интервала, либо bookingDate/bookingTime/durationMinutes
type CreateAdminBookingRequest struct {
	ServiceName   string `json:"serviceName"`
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	CustomerEmail string `json:"customerEmail,omitempty"`
	Notes         string `json:"notes,omitempty"`

	Start string `json:"start,omitempty"` // "2024-06-10T10:00:00+02:00"
	End   string `json:"end,omitempty"`

	BookingDate     string `json:"bookingDate,omitempty"`
	BookingTime     string `json:"bookingTime,omitempty"`
	DurationMinutes int    `json:"durationMinutes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              string  `json:"id"`
	ServiceName     string  `json:"serviceName"`
	ServiceLabel    string  `json:"serviceLabel"`
	CustomerName    string  `json:"customerName"`
	CustomerPhone   string  `json:"customerPhone"`
	CustomerEmail   *string `json:"customerEmail"`
	BookingDate     string  `json:"bookingDate"`
	BookingTime     string  `json:"bookingTime"`
	DurationMinutes int     `json:"durationMinutes"`
	DurationLabel   string  `json:"durationLabel"`
	Status          string  `json:"status"`
	Notes           *string `json:"notes"`
	Total           float64 `json:"total"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAdminBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	req := &createBooking.Request{
		Source:          domain.SourceAdmin,
		ServiceName:     r.ServiceName,
		CustomerName:    r.CustomerName,
		CustomerPhone:   r.CustomerPhone,
		CustomerEmail:   r.CustomerEmail,
		Notes:           r.Notes,
		Date:            r.BookingDate,
		StartTime:       r.BookingTime,
		DurationMinutes: r.DurationMinutes,
	}

	if r.Start == "" && r.End == "" {
		return req, nil
	}

	start, err := time.Parse(time.RFC3339, r.Start)
	if err != nil {
		return nil, errInvalidSlot
	}
	end, err := time.Parse(time.RFC3339, r.End)
	if err != nil {
		return nil, errInvalidSlot
	}
	req.Slot = &createBooking.Slot{Start: start, End: end}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		ServiceName:     resp.ServiceName,
		ServiceLabel:    resp.ServiceLabel,
		CustomerName:    resp.CustomerName,
		CustomerPhone:   resp.CustomerPhone,
		CustomerEmail:   resp.CustomerEmail,
		BookingDate:     resp.BookingDate,
		BookingTime:     resp.BookingTime,
		DurationMinutes: resp.DurationMinutes,
		DurationLabel:   domain.FormatDuration(resp.DurationMinutes),
		Status:          resp.Status,
		Notes:           resp.Notes,
		Total:           resp.Total,
	}
}
