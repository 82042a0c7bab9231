package get_week_grid

import (
	getWeekGrid "github.com/m04kA/SMC-SalonBooking/internal/usecase/get_week_grid"
)

// WeekGridResponse HTTP response model
type WeekGridResponse struct {
	WeekStart   string   `json:"weekStart"`
	WeekEnd     string   `json:"weekEnd"`
	PrevWeek    string   `json:"prevWeek"`
	NextWeek    string   `json:"nextWeek"`
	SlotMinutes int      `json:"slotMinutes"`
	Slots       []string `json:"slots"`
	Days        []Day    `json:"days"`
	Skipped     int      `json:"skipped"`
}

type Day struct {
	Date  string `json:"date"`
	Label string `json:"label"`
	Cells []Cell `json:"cells"`
}

type Cell struct {
	Start   string       `json:"start"`
	Booking *BookingCell `json:"booking,omitempty"`
}

type BookingCell struct {
	ID              string `json:"id"`
	ServiceName     string `json:"serviceName"`
	CustomerName    string `json:"customerName"`
	Initials        string `json:"initials"`
	BookingTime     string `json:"bookingTime"`
	DurationMinutes int    `json:"durationMinutes"`
	DurationLabel   string `json:"durationLabel"`
	Status          string `json:"status"`
	StatusLabel     string `json:"statusLabel"`
	Span            int    `json:"span"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getWeekGrid.Response) *WeekGridResponse {
	out := &WeekGridResponse{
		WeekStart:   resp.WeekStart,
		WeekEnd:     resp.WeekEnd,
		PrevWeek:    resp.PrevWeek,
		NextWeek:    resp.NextWeek,
		SlotMinutes: resp.SlotMinutes,
		Slots:       resp.Slots,
		Days:        make([]Day, len(resp.Days)),
		Skipped:     resp.Skipped,
	}

	for i, day := range resp.Days {
		cells := make([]Cell, len(day.Cells))
		for j, c := range day.Cells {
			cells[j] = Cell{Start: c.Start}
			if b := c.Booking; b != nil {
				cells[j].Booking = &BookingCell{
					ID:              b.ID,
					ServiceName:     b.ServiceName,
					CustomerName:    b.CustomerName,
					Initials:        b.Initials,
					BookingTime:     b.BookingTime,
					DurationMinutes: b.DurationMinutes,
					DurationLabel:   b.DurationLabel,
					Status:          b.Status,
					StatusLabel:     b.StatusLabel,
					Span:            b.Span,
				}
			}
		}
		out.Days[i] = Day{Date: day.Date, Label: day.Label, Cells: cells}
	}

	return out
}
