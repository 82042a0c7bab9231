package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

func validBooking() *Booking {
	return &Booking{
		ServiceName:     "Hair Styling",
		CustomerName:    "Alice Martin",
		CustomerPhone:   "+33 6 12 34 56 78",
		BookingDate:     "2024-06-10",
		BookingTime:     "14:00",
		DurationMinutes: 60,
		Status:          StatusBooked,
	}
}

func TestParseBookingStatus(t *testing.T) {
	for _, status := range AllStatuses {
		got, err := ParseBookingStatus(string(status))
		require.NoError(t, err)
		assert.Equal(t, status, got)
	}

	_, err := ParseBookingStatus("pending")
	assert.ErrorIs(t, err, ErrInvalidStatus)
	_, err = ParseBookingStatus("cancelled")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestBooking_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(b *Booking)
		want   error
	}{
		{"valid", func(b *Booking) {}, nil},
		{"blank name", func(b *Booking) { b.CustomerName = "   " }, ErrCustomerNameRequired},
		{"missing phone", func(b *Booking) { b.CustomerPhone = "" }, ErrCustomerPhoneRequired},
		{"missing service", func(b *Booking) { b.ServiceName = "" }, ErrServiceNameRequired},
		{"zero duration", func(b *Booking) { b.DurationMinutes = 0 }, ErrInvalidDuration},
		{"crosses midnight", func(b *Booking) { b.BookingTime = "23:30" }, ErrCrossesMidnight},
		{"ends at midnight", func(b *Booking) { b.BookingTime = "23:00" }, nil},
		{"bad date", func(b *Booking) { b.BookingDate = "10/06/2024" }, ErrInvalidDate},
		{"bad time", func(b *Booking) { b.BookingTime = "2pm" }, ErrInvalidTime},
		{"unknown status", func(b *Booking) { b.Status = "pending" }, ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := validBooking()
			tt.mutate(b)
			err := b.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestBooking_StartTime_StoredForms(t *testing.T) {
	b := validBooking()

	for raw, want := range map[string]types.TimeString{
		"14:00":       "14:00",
		"14:00:00":    "14:00",
		"14:00:00+00": "14:00",
		"10:07 AM":    "10:07",
	} {
		b.BookingTime = raw
		got, err := b.StartTime()
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}

	b.BookingTime = ""
	_, err := b.StartTime()
	assert.Error(t, err)
}

func TestBooking_EffectiveDuration(t *testing.T) {
	b := validBooking()
	b.DurationMinutes = 0
	assert.Equal(t, DefaultDurationMinutes, b.EffectiveDuration())
	b.DurationMinutes = 90
	assert.Equal(t, 90, b.EffectiveDuration())
}

func TestBooking_CloneIsDeep(t *testing.T) {
	email := "alice@example.com"
	b := validBooking()
	b.CustomerEmail = &email

	c := b.Clone()
	*c.CustomerEmail = "other@example.com"
	c.BookingTime = "09:00"

	assert.Equal(t, "alice@example.com", *b.CustomerEmail)
	assert.Equal(t, "14:00", b.BookingTime)
}

func TestBookingPatch_Apply(t *testing.T) {
	b := validBooking()
	date, duration := "2024-06-11", 30
	patch := BookingPatch{BookingDate: &date, DurationMinutes: &duration}

	assert.False(t, patch.IsEmpty())
	patch.Apply(b)

	assert.Equal(t, "2024-06-11", b.BookingDate)
	assert.Equal(t, "14:00", b.BookingTime)
	assert.Equal(t, 30, b.DurationMinutes)
	assert.True(t, BookingPatch{}.IsEmpty())
}
