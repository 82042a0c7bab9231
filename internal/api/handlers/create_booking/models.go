package create_booking

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	createBooking "github.com/m04kA/SMC-SalonBooking/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model (публичная форма)
type CreateBookingRequest struct {
	ServiceName   string `json:"serviceName"`
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	CustomerEmail string `json:"customerEmail,omitempty"`
	BookingDate   string `json:"bookingDate"` // "2024-06-10"
	BookingTime   string `json:"bookingTime"` // "14:00"
	Notes         string `json:"notes,omitempty"`
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
	CreatedAt       string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		Source:        domain.SourcePublic,
		ServiceName:   r.ServiceName,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		CustomerEmail: r.CustomerEmail,
		Notes:         r.Notes,
		Date:          r.BookingDate,
		StartTime:     r.BookingTime,
	}
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
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}
