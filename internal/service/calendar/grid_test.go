package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

func booking(id, date, startTime string, duration int) *domain.Booking {
	return &domain.Booking{
		ID:              id,
		ServiceName:     "Hair Styling",
		CustomerName:    "Jane Doe",
		CustomerPhone:   "0600",
		BookingDate:     date,
		BookingTime:     startTime,
		DurationMinutes: duration,
		Status:          domain.StatusBooked,
	}
}

// 2024-06-10 - понедельник
var testWeek = WeekDays(time.Date(2024, 6, 12, 15, 30, 0, 0, time.UTC))

func findOccupied(g *domain.Grid) []*domain.GridCell {
	var cells []*domain.GridCell
	for d := range g.Cells {
		for s := range g.Cells[d] {
			if !g.Cells[d][s].IsFree() {
				cells = append(cells, g.Cell(d, s))
			}
		}
	}
	return cells
}

func TestWeekDays_StartsOnMonday(t *testing.T) {
	require.Len(t, testWeek, 7)
	assert.Equal(t, "2024-06-10", testWeek[0].Format(domain.DateFormat))
	assert.Equal(t, time.Monday, testWeek[0].Weekday())
	assert.Equal(t, "2024-06-16", testWeek[6].Format(domain.DateFormat))

	sunday := WeekDays(time.Date(2024, 6, 16, 23, 0, 0, 0, time.UTC))
	assert.Equal(t, testWeek, sunday)
}

func TestAxis_Slots(t *testing.T) {
	slots := DefaultAxis().Slots()
	require.Len(t, slots, 36)
	assert.Equal(t, types.TimeString("08:00"), slots[0])
	assert.Equal(t, types.TimeString("16:45"), slots[len(slots)-1])
}

func TestNewAxis_Validation(t *testing.T) {
	_, err := NewAxis("17:00", "08:00", 15)
	assert.ErrorIs(t, err, ErrInvalidAxis)

	_, err = NewAxis("08:00", "17:00", 0)
	assert.ErrorIs(t, err, ErrInvalidAxis)

	_, err = NewAxis("eight", "17:00", 15)
	assert.ErrorIs(t, err, ErrInvalidAxis)

	axis, err := NewAxis("09:00:00", "18:00", 30)
	require.NoError(t, err)
	assert.Len(t, axis.Slots(), 18)
}

func TestBuildGrid_ShortBookingMarksOneCell(t *testing.T) {
	g := BuildGrid([]*domain.Booking{booking("a", "2024-06-10", "14:00", 15)}, testWeek, DefaultAxis())

	cells := findOccupied(g)
	require.Len(t, cells, 1)
	assert.Equal(t, types.TimeString("14:00"), cells[0].Start)
	assert.Equal(t, "a", cells[0].Booking.ID)
	assert.Equal(t, 0, g.Skipped)
}

func TestBuildGrid_TruncatesToSlot(t *testing.T) {
	g := BuildGrid([]*domain.Booking{booking("a", "2024-06-11", "10:07", 10)}, testWeek, DefaultAxis())

	cells := findOccupied(g)
	require.Len(t, cells, 1)
	assert.Equal(t, types.TimeString("10:00"), cells[0].Start)
	assert.Equal(t, "2024-06-11", cells[0].Date.Format(domain.DateFormat))
}

func TestBuildGrid_LongBookingMarksOnlyStartCell(t *testing.T) {
	g := BuildGrid([]*domain.Booking{booking("a", "2024-06-10", "09:00", 120)}, testWeek, DefaultAxis())
	assert.Equal(t, 1, g.Occupied())
}

func TestBuildGrid_SkipsMalformedSilently(t *testing.T) {
	bookings := []*domain.Booking{
		booking("bad-date", "10/06/2024", "10:00", 60),
		booking("no-date", "", "10:00", 60),
		booking("bad-time", "2024-06-10", "ten", 60),
		booking("no-time", "2024-06-10", "", 60),
		booking("before-open", "2024-06-10", "07:45", 60),
		booking("after-close", "2024-06-10", "17:00", 60),
		booking("ok", "2024-06-10", "16:50:00", 60),
		nil,
	}

	var g *domain.Grid
	require.NotPanics(t, func() {
		g = BuildGrid(bookings, testWeek, DefaultAxis())
	})

	cells := findOccupied(g)
	require.Len(t, cells, 1)
	assert.Equal(t, "ok", cells[0].Booking.ID)
	assert.Equal(t, types.TimeString("16:45"), cells[0].Start)
	assert.Equal(t, 6, g.Skipped)
}

func TestBuildGrid_OtherWeeksIgnored(t *testing.T) {
	g := BuildGrid([]*domain.Booking{booking("a", "2024-06-17", "10:00", 60)}, testWeek, DefaultAxis())
	assert.Equal(t, 0, g.Occupied())
	assert.Equal(t, 0, g.Skipped)
}

func TestBuildGrid_LaterBookingWinsCell(t *testing.T) {
	bookings := []*domain.Booking{
		booking("first", "2024-06-10", "10:00", 60),
		booking("second", "2024-06-10", "10:10", 30),
	}

	g := BuildGrid(bookings, testWeek, DefaultAxis())

	cells := findOccupied(g)
	require.Len(t, cells, 1)
	assert.Equal(t, "second", cells[0].Booking.ID)
}
