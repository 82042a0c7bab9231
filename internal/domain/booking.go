package domain

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusBooked    BookingStatus = "booked"
	StatusConfirmed BookingStatus = "confirmed"
	StatusArrived   BookingStatus = "arrived"
	StatusStarted   BookingStatus = "started"
	StatusNoShow    BookingStatus = "no-show"
	StatusCancel    BookingStatus = "cancel"
)

// AllStatuses порядок совпадает с меню статусов на странице администратора
var AllStatuses = []BookingStatus{
	StatusBooked,
	StatusConfirmed,
	StatusArrived,
	StatusStarted,
	StatusNoShow,
	StatusCancel,
}

// ParseBookingStatus validates a raw status against the closed set
func ParseBookingStatus(raw string) (BookingStatus, error) {
	status := BookingStatus(strings.TrimSpace(raw))
	if status.IsValid() {
		return status, nil
	}
	return "", ErrInvalidStatus
}

// IsValid returns true if the status belongs to the closed set
func (s BookingStatus) IsValid() bool {
	for _, valid := range AllStatuses {
		if s == valid {
			return true
		}
	}
	return false
}

// Label returns the French label shown in the admin menu
func (s BookingStatus) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

// Booking is a customer's reserved appointment for one service at one date/time.
//
// BookingDate and BookingTime keep the form the record store returned them in.
// A malformed stored value must never fail a read, so parsing happens on demand.
type Booking struct {
	ID              string
	ServiceName     string
	CustomerName    string
	CustomerPhone   string
	CustomerEmail   *string
	BookingDate     string // "2024-06-10"
	BookingTime     string // "14:00"
	DurationMinutes int
	Status          BookingStatus
	Notes           *string
	CreatedAt       time.Time
}

// Date parses BookingDate
func (b *Booking) Date() (time.Time, error) {
	return time.Parse(DateFormat, strings.TrimSpace(b.BookingDate))
}

// StartTime parses BookingTime. Stores may append seconds or a zone ("14:00:00+00"),
// only the leading HH:MM is significant.
func (b *Booking) StartTime() (types.TimeString, error) {
	raw := strings.TrimSpace(b.BookingTime)
	if i := strings.IndexAny(raw, " +"); i >= 0 {
		raw = raw[:i]
	}
	return types.NewTimeStringFromString(raw)
}

// EffectiveDuration returns the stored duration or the default when it is missing
func (b *Booking) EffectiveDuration() int {
	if b.DurationMinutes <= 0 {
		return DefaultDurationMinutes
	}
	return b.DurationMinutes
}

// Clone returns a deep copy
func (b *Booking) Clone() *Booking {
	if b == nil {
		return nil
	}
	c := *b
	if b.CustomerEmail != nil {
		email := *b.CustomerEmail
		c.CustomerEmail = &email
	}
	if b.Notes != nil {
		notes := *b.Notes
		c.Notes = &notes
	}
	return &c
}

// Validate checks the write-side invariants of a booking
func (b *Booking) Validate() error {
	if strings.TrimSpace(b.ServiceName) == "" {
		return ErrServiceNameRequired
	}
	if strings.TrimSpace(b.CustomerName) == "" {
		return ErrCustomerNameRequired
	}
	if strings.TrimSpace(b.CustomerPhone) == "" {
		return ErrCustomerPhoneRequired
	}
	if !b.Status.IsValid() {
		return ErrInvalidStatus
	}
	return ValidateSchedule(b.BookingDate, b.BookingTime, b.DurationMinutes)
}

// ValidateSchedule checks date, start time and duration of a single-day appointment
func ValidateSchedule(date, startTime string, durationMinutes int) error {
	if _, err := time.Parse(DateFormat, date); err != nil {
		return ErrInvalidDate
	}
	start, err := types.NewTimeStringFromString(startTime)
	if err != nil {
		return ErrInvalidTime
	}
	return ValidateDuration(start, durationMinutes)
}

// ValidateDuration checks that the appointment is positive and ends no later than midnight
func ValidateDuration(start types.TimeString, durationMinutes int) error {
	if durationMinutes <= 0 {
		return ErrInvalidDuration
	}
	if start.Minutes()+durationMinutes > MinutesPerDay {
		return ErrCrossesMidnight
	}
	return nil
}

// BookingPatch набор полей для частичного обновления (nil = не менять)
type BookingPatch struct {
	BookingDate     *string
	BookingTime     *string
	DurationMinutes *int
	Status          *BookingStatus
}

// IsEmpty returns true if the patch changes nothing
func (p BookingPatch) IsEmpty() bool {
	return p.BookingDate == nil && p.BookingTime == nil && p.DurationMinutes == nil && p.Status == nil
}

// Apply applies the patch to a booking in place
func (p BookingPatch) Apply(b *Booking) {
	if p.BookingDate != nil {
		b.BookingDate = *p.BookingDate
	}
	if p.BookingTime != nil {
		b.BookingTime = *p.BookingTime
	}
	if p.DurationMinutes != nil {
		b.DurationMinutes = *p.DurationMinutes
	}
	if p.Status != nil {
		b.Status = *p.Status
	}
}
