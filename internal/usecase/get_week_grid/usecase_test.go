package get_week_grid

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/service/calendar"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
)

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fakeCalendar struct {
	bookings []*domain.Booking
	err      error
	gotRef   time.Time
}

func (c *fakeCalendar) Week(_ context.Context, ref time.Time) (*domain.Grid, error) {
	c.gotRef = ref
	if c.err != nil {
		return nil, c.err
	}
	return calendar.BuildGrid(c.bookings, calendar.WeekDays(ref), calendar.DefaultAxis()), nil
}

func newTestUseCase(cal Calendar, now time.Time) *UseCase {
	uc := NewUseCase(cal, time.UTC, logger.Nop())
	uc.timeProvider = fixedTime{now: now}
	return uc
}

func TestExecute_BuildsRequestedWeek(t *testing.T) {
	cal := &fakeCalendar{bookings: []*domain.Booking{{
		ID:              "a",
		ServiceName:     "Hair Coloring",
		CustomerName:    "marie curie",
		BookingDate:     "2024-06-12",
		BookingTime:     "10:07:00",
		DurationMinutes: 90,
		Status:          domain.StatusConfirmed,
	}}}

	resp, err := newTestUseCase(cal, time.Now()).Execute(context.Background(), &Request{WeekOf: "2024-06-12"})
	require.NoError(t, err)

	assert.Equal(t, "2024-06-10", resp.WeekStart)
	assert.Equal(t, "2024-06-16", resp.WeekEnd)
	assert.Equal(t, "2024-06-03", resp.PrevWeek)
	assert.Equal(t, "2024-06-17", resp.NextWeek)
	assert.Equal(t, "lun. 10/06", resp.Days[0].Label)
	require.Len(t, resp.Slots, 36)

	// среда, 10:00 (индекс 8 от 08:00 с шагом 15)
	cell := resp.Days[2].Cells[8]
	assert.Equal(t, "10:00", cell.Start)
	require.NotNil(t, cell.Booking)
	assert.Equal(t, "MC", cell.Booking.Initials)
	assert.Equal(t, "10:07", cell.Booking.BookingTime)
	assert.Equal(t, "1h 30min", cell.Booking.DurationLabel)
	assert.Equal(t, 6, cell.Booking.Span)
	assert.Equal(t, "Confirmé", cell.Booking.StatusLabel)

	assert.Nil(t, resp.Days[2].Cells[9].Booking)
}

func TestExecute_DefaultsToCurrentWeek(t *testing.T) {
	cal := &fakeCalendar{}
	now := time.Date(2024, 6, 14, 12, 0, 0, 0, time.UTC)

	resp, err := newTestUseCase(cal, now).Execute(context.Background(), &Request{})
	require.NoError(t, err)
	assert.Equal(t, now, cal.gotRef)
	assert.Equal(t, "2024-06-10", resp.WeekStart)
}

func TestExecute_InvalidWeek(t *testing.T) {
	_, err := newTestUseCase(&fakeCalendar{}, time.Now()).Execute(context.Background(), &Request{WeekOf: "next week"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_StoreFailure(t *testing.T) {
	cal := &fakeCalendar{err: errors.New("timeout")}

	_, err := newTestUseCase(cal, time.Now()).Execute(context.Background(), &Request{WeekOf: "2024-06-12"})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_ReportsSkipped(t *testing.T) {
	cal := &fakeCalendar{bookings: []*domain.Booking{
		{ID: "x", BookingDate: "garbage", BookingTime: "10:00"},
	}}

	resp, err := newTestUseCase(cal, time.Now()).Execute(context.Background(), &Request{WeekOf: "2024-06-12"})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Skipped)
}
