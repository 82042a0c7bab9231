package calendar

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// Axis временная ось календаря: рабочие часы и шаг слота
type Axis struct {
	Open        types.TimeString
	Close       types.TimeString
	SlotMinutes int
}

// NewAxis валидирует рабочие часы и шаг сетки
func NewAxis(open, closing string, slotMinutes int) (Axis, error) {
	o, err := types.NewTimeStringFromString(open)
	if err != nil {
		return Axis{}, fmt.Errorf("%w: open: %v", ErrInvalidAxis, err)
	}
	c, err := types.NewTimeStringFromString(closing)
	if err != nil {
		return Axis{}, fmt.Errorf("%w: close: %v", ErrInvalidAxis, err)
	}
	if !o.IsBefore(c) {
		return Axis{}, fmt.Errorf("%w: open %s is not before close %s", ErrInvalidAxis, o, c)
	}
	if slotMinutes <= 0 {
		return Axis{}, fmt.Errorf("%w: slot must be positive", ErrInvalidAxis)
	}
	return Axis{Open: o, Close: c, SlotMinutes: slotMinutes}, nil
}

// DefaultAxis 08:00-17:00 с шагом 15 минут
func DefaultAxis() Axis {
	return Axis{
		Open:        domain.DefaultOpenTime,
		Close:       domain.DefaultCloseTime,
		SlotMinutes: domain.DefaultSlotMinutes,
	}
}

// Slots возвращает начала всех слотов в [Open, Close)
func (a Axis) Slots() []types.TimeString {
	open, closing := a.Open.Minutes(), a.Close.Minutes()
	slots := make([]types.TimeString, 0, (closing-open)/a.SlotMinutes+1)
	for m := open; m < closing; m += a.SlotMinutes {
		slot, err := types.FromMinutes(m)
		if err != nil {
			break
		}
		slots = append(slots, slot)
	}
	return slots
}

// slotIndex номер слота, в который попадает время начала (усечение вниз до сетки)
func (a Axis) slotIndex(start types.TimeString) (int, bool) {
	m := start.Minutes()
	if m < a.Open.Minutes() || m >= a.Close.Minutes() {
		return 0, false
	}
	return (m - a.Open.Minutes()) / a.SlotMinutes, true
}

// WeekDays семь дней недели (с понедельника), содержащей ref
func WeekDays(ref time.Time) []time.Time {
	day := dateOnly(ref)
	offset := (int(day.Weekday()) + 6) % 7
	monday := day.AddDate(0, 0, -offset)

	days := make([]time.Time, 7)
	for i := range days {
		days[i] = monday.AddDate(0, 0, i)
	}
	return days
}

// BuildGrid раскладывает бронирования по ячейкам (день, слот)
//
// Отмечается только ячейка начала: длинные записи не растягиваются на соседние слоты.
// При совпадении ячейки побеждает запись, идущая позже во входном списке.
// Записи с битой датой/временем или началом вне рабочих часов пропускаются молча
// и учитываются в Grid.Skipped.
func BuildGrid(bookings []*domain.Booking, days []time.Time, axis Axis) *domain.Grid {
	slots := axis.Slots()

	grid := &domain.Grid{
		Days:        make([]time.Time, len(days)),
		Slots:       slots,
		SlotMinutes: axis.SlotMinutes,
		Cells:       make([][]domain.GridCell, len(days)),
	}

	dayIndex := make(map[string]int, len(days))
	for d, day := range days {
		day = dateOnly(day)
		grid.Days[d] = day
		dayIndex[day.Format(domain.DateFormat)] = d

		grid.Cells[d] = make([]domain.GridCell, len(slots))
		for s, slot := range slots {
			grid.Cells[d][s] = domain.GridCell{Date: day, Start: slot}
		}
	}

	for _, b := range bookings {
		if b == nil {
			continue
		}

		date, err := b.Date()
		if err != nil {
			grid.Skipped++
			continue
		}
		start, err := b.StartTime()
		if err != nil {
			grid.Skipped++
			continue
		}

		d, ok := dayIndex[date.Format(domain.DateFormat)]
		if !ok {
			// другая неделя
			continue
		}
		s, ok := axis.slotIndex(start)
		if !ok {
			grid.Skipped++
			continue
		}

		grid.Cells[d][s].Booking = b
	}

	return grid
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
