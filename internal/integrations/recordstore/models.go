package recordstore

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// createdAtLayouts форматы created_at: timestamptz и timestamp без зоны (трактуется как UTC)
var createdAtLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02 15:04:05.999999",
}

// Record запись бронирования в формате хранилища (snake_case, nullable поля)
type Record struct {
	ID            string  `json:"id,omitempty"`
	ServiceName   string  `json:"service_name"`
	CustomerName  string  `json:"customer_name"`
	CustomerPhone string  `json:"customer_phone"`
	CustomerEmail *string `json:"customer_email"`
	BookingDate   string  `json:"booking_date"`
	BookingTime   string  `json:"booking_time"`
	Duration      *int    `json:"duration"`
	Status        string  `json:"status"`
	Notes         *string `json:"notes"`
	CreatedAt     string  `json:"created_at,omitempty"`
}

// PatchRecord тело частичного обновления: отсутствующие поля не трогаются
type PatchRecord struct {
	BookingDate *string `json:"booking_date,omitempty"`
	BookingTime *string `json:"booking_time,omitempty"`
	Duration    *int    `json:"duration,omitempty"`
	Status      *string `json:"status,omitempty"`
}

// ErrorResponse модель ошибки PostgREST
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
}

// ToDomain конвертирует запись хранилища в доменное бронирование
// Некорректные дата/время переносятся как есть: их отбросит календарь, а не чтение
func (r Record) ToDomain() *domain.Booking {
	b := &domain.Booking{
		ID:            r.ID,
		ServiceName:   r.ServiceName,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		CustomerEmail: r.CustomerEmail,
		BookingDate:   r.BookingDate,
		BookingTime:   r.BookingTime,
		Status:        domain.BookingStatus(r.Status),
		Notes:         r.Notes,
	}
	if r.Duration != nil {
		b.DurationMinutes = *r.Duration
	}
	b.CreatedAt = parseCreatedAt(r.CreatedAt)
	return b
}

// parseCreatedAt нулевое время, если ни один формат не подошёл
func parseCreatedAt(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	for _, layout := range createdAtLayouts {
		if createdAt, err := time.Parse(layout, raw); err == nil {
			return createdAt
		}
	}
	return time.Time{}
}

// FromDomain конвертирует доменное бронирование в запись для вставки
// id и created_at назначает хранилище
func FromDomain(b *domain.Booking) Record {
	r := Record{
		ServiceName:   b.ServiceName,
		CustomerName:  b.CustomerName,
		CustomerPhone: b.CustomerPhone,
		CustomerEmail: b.CustomerEmail,
		BookingDate:   b.BookingDate,
		BookingTime:   b.BookingTime,
		Status:        string(b.Status),
		Notes:         b.Notes,
	}
	if b.DurationMinutes > 0 {
		duration := b.DurationMinutes
		r.Duration = &duration
	}
	return r
}

// FromPatch конвертирует доменный патч в тело PATCH-запроса
func FromPatch(p domain.BookingPatch) PatchRecord {
	r := PatchRecord{
		BookingDate: p.BookingDate,
		BookingTime: p.BookingTime,
		Duration:    p.DurationMinutes,
	}
	if p.Status != nil {
		status := string(*p.Status)
		r.Status = &status
	}
	return r
}
