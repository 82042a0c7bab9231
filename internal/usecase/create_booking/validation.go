package create_booking

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// validateRequest валидирует обязательные поля формы
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.ServiceName) == "" {
		return fmt.Errorf("%w: %v", ErrInvalidInput, domain.ErrServiceNameRequired)
	}

	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: %v", ErrInvalidInput, domain.ErrCustomerNameRequired)
	}
	if utf8.RuneCountInString(req.CustomerName) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customer name is too long", ErrInvalidInput)
	}

	if strings.TrimSpace(req.CustomerPhone) == "" {
		return fmt.Errorf("%w: %v", ErrInvalidInput, domain.ErrCustomerPhoneRequired)
	}
	if utf8.RuneCountInString(req.CustomerPhone) > domain.MaxPhoneLength {
		return fmt.Errorf("%w: customer phone is too long", ErrInvalidInput)
	}

	if utf8.RuneCountInString(req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes are too long", ErrInvalidInput)
	}

	if req.Slot == nil {
		if strings.TrimSpace(req.Date) == "" {
			return fmt.Errorf("%w: date is required", ErrInvalidInput)
		}
		if strings.TrimSpace(req.StartTime) == "" {
			return fmt.Errorf("%w: time is required", ErrInvalidInput)
		}
		if req.DurationMinutes < 0 {
			return fmt.Errorf("%w: %v", ErrInvalidInput, domain.ErrInvalidDuration)
		}
	}

	return nil
}

// slotSchedule переводит интервал календаря в дату, время начала и длительность
// Время берётся в часовом поясе салона
func slotSchedule(slot *Slot, loc *time.Location) (date, startTime string, durationMinutes int, err error) {
	if slot.Start.IsZero() || slot.End.IsZero() {
		return "", "", 0, fmt.Errorf("%w: slot start and end are required", ErrInvalidInput)
	}

	minutes := slot.End.Sub(slot.Start).Round(time.Minute) / time.Minute
	if minutes <= 0 {
		return "", "", 0, fmt.Errorf("%w: slot end must be after start", ErrInvalidInput)
	}

	start := slot.Start.In(loc)
	return start.Format(domain.DateFormat), start.Format(domain.TimeFormat), int(minutes), nil
}
