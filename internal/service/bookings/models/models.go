package models

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// Request модели

// UpdateStatusRequest запрос на смену статуса
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// RescheduleRequest запрос на перенос (drag)
// DurationMinutes = 0 - оставить текущую длительность
type RescheduleRequest struct {
	BookingDate     string `json:"bookingDate"`
	BookingTime     string `json:"bookingTime"`
	DurationMinutes int    `json:"durationMinutes"`
}

// ResizeRequest запрос на изменение длительности (resize)
type ResizeRequest struct {
	DurationMinutes int `json:"durationMinutes"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID              string  `json:"id"`
	ServiceName     string  `json:"serviceName"`
	ServiceLabel    string  `json:"serviceLabel"`
	CustomerName    string  `json:"customerName"`
	CustomerPhone   string  `json:"customerPhone"`
	CustomerEmail   *string `json:"customerEmail"`
	BookingDate     string  `json:"bookingDate"` // "2024-06-10"
	BookingTime     string  `json:"bookingTime"` // "14:00"
	DurationMinutes int     `json:"durationMinutes"`
	DurationLabel   string  `json:"durationLabel"` // "1h 30min"
	Status          string  `json:"status"`
	StatusLabel     string  `json:"statusLabel"`
	Notes           *string `json:"notes"`
	Initials        string  `json:"initials"`
	Total           float64 `json:"total"` // цена услуги из каталога, 0 если услуга неизвестна

	CreatedAt time.Time `json:"createdAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
// serviceLabel - имя услуги для клиентов, total - цена по каталогу (0 для неизвестной услуги)
func FromDomainBooking(b *domain.Booking, serviceLabel string, total float64) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:              b.ID,
		ServiceName:     b.ServiceName,
		ServiceLabel:    serviceLabel,
		CustomerName:    b.CustomerName,
		CustomerPhone:   b.CustomerPhone,
		CustomerEmail:   b.CustomerEmail,
		BookingDate:     b.BookingDate,
		BookingTime:     b.BookingTime,
		DurationMinutes: b.EffectiveDuration(),
		DurationLabel:   domain.FormatDuration(b.EffectiveDuration()),
		Status:          string(b.Status),
		StatusLabel:     b.Status.Label(),
		Notes:           b.Notes,
		Initials:        domain.Initials(b.CustomerName),
		Total:           total,
		CreatedAt:       b.CreatedAt,
	}

	if start, err := b.StartTime(); err == nil {
		resp.BookingTime = start.String()
	}

	return resp
}
