package get_week_grid

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

var weekdayLabels = [...]string{"dim.", "lun.", "mar.", "mer.", "jeu.", "ven.", "sam."}

// UseCase use case построения недельной сетки календаря
type UseCase struct {
	calendar     Calendar
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(calendar Calendar, location *time.Location, logger Logger) *UseCase {
	if location == nil {
		location = time.UTC
	}
	return &UseCase{
		calendar:     calendar,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения сетки недели
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	ref, err := parseWeekOf(req.WeekOf, uc.timeProvider.Now().In(uc.location))
	if err != nil {
		uc.logger.Warn("GetWeekGrid: %v", err)
		return nil, err
	}

	grid, err := uc.calendar.Week(ctx, ref)
	if err != nil {
		uc.logger.Error("GetWeekGrid: failed to load bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to load bookings: %v", ErrInternal, err)
	}

	if grid.Skipped > 0 {
		uc.logger.Warn("GetWeekGrid: %d bookings could not be placed on the grid", grid.Skipped)
	}

	return toResponse(grid), nil
}

func toResponse(grid *domain.Grid) *Response {
	resp := &Response{
		SlotMinutes: grid.SlotMinutes,
		Slots:       make([]string, len(grid.Slots)),
		Days:        make([]Day, len(grid.Days)),
		Skipped:     grid.Skipped,
	}

	for i, slot := range grid.Slots {
		resp.Slots[i] = slot.String()
	}

	if len(grid.Days) > 0 {
		first, last := grid.Days[0], grid.Days[len(grid.Days)-1]
		resp.WeekStart = first.Format(domain.DateFormat)
		resp.WeekEnd = last.Format(domain.DateFormat)
		resp.PrevWeek = first.AddDate(0, 0, -7).Format(domain.DateFormat)
		resp.NextWeek = first.AddDate(0, 0, 7).Format(domain.DateFormat)
	}

	for d, day := range grid.Days {
		cells := make([]Cell, len(grid.Cells[d]))
		for s, cell := range grid.Cells[d] {
			cells[s] = Cell{Start: cell.Start.String()}
			if cell.Booking != nil {
				cells[s].Booking = toBookingCell(cell.Booking, grid.SlotMinutes)
			}
		}
		resp.Days[d] = Day{
			Date:  day.Format(domain.DateFormat),
			Label: fmt.Sprintf("%s %s", weekdayLabels[day.Weekday()], day.Format("02/01")),
			Cells: cells,
		}
	}

	return resp
}

func toBookingCell(b *domain.Booking, slotMinutes int) *BookingCell {
	duration := b.EffectiveDuration()
	span := 1
	if slotMinutes > 0 {
		span = (duration + slotMinutes - 1) / slotMinutes
	}

	cell := &BookingCell{
		ID:              b.ID,
		ServiceName:     b.ServiceName,
		CustomerName:    b.CustomerName,
		Initials:        domain.Initials(b.CustomerName),
		BookingTime:     b.BookingTime,
		DurationMinutes: duration,
		DurationLabel:   domain.FormatDuration(duration),
		Status:          string(b.Status),
		StatusLabel:     b.Status.Label(),
		Span:            span,
	}
	if start, err := b.StartTime(); err == nil {
		cell.BookingTime = start.String()
	}
	return cell
}
