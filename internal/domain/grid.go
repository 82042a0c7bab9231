package domain

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// GridCell represents one (day, slot) cell of the calendar grid
type GridCell struct {
	Date    time.Time
	Start   types.TimeString
	Booking *Booking // nil = свободно
}

// IsFree returns true if no booking starts in this cell
func (c *GridCell) IsFree() bool {
	return c.Booking == nil
}

// Grid is the occupancy of a date range on a fixed time axis.
// Cells[d][s] is the cell of Days[d] at Slots[s].
type Grid struct {
	Days        []time.Time
	Slots       []types.TimeString
	SlotMinutes int
	Cells       [][]GridCell
	Skipped     int // бронирования, не попавшие ни в одну ячейку
}

// Cell returns the cell for a day index and slot index
func (g *Grid) Cell(day, slot int) *GridCell {
	return &g.Cells[day][slot]
}

// Occupied returns the number of occupied cells
func (g *Grid) Occupied() int {
	count := 0
	for d := range g.Cells {
		for s := range g.Cells[d] {
			if !g.Cells[d][s].IsFree() {
				count++
			}
		}
	}
	return count
}
