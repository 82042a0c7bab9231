package create_booking

import (
	"time"
)

// Request модель запроса на создание бронирования
type Request struct {
	Source        string // domain.SourcePublic или domain.SourceAdmin
	ServiceName   string
	CustomerName  string
	CustomerPhone string
	CustomerEmail string // пустая строка сохраняется как null
	Notes         string // пустая строка сохраняется как null

	// Расписание: либо дата/время/длительность, либо выделенный в календаре интервал
	Date            string // "2024-06-10"
	StartTime       string // "14:00"
	DurationMinutes int    // 0 - длительность услуги из каталога (60, если услуга неизвестна)
	Slot            *Slot
}

// Slot интервал, выделенный администратором в календаре
type Slot struct {
	Start time.Time
	End   time.Time
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              string
	ServiceName     string
	ServiceLabel    string
	CustomerName    string
	CustomerPhone   string
	CustomerEmail   *string
	BookingDate     string
	BookingTime     string
	DurationMinutes int
	Status          string
	Notes           *string
	Total           float64 // цена услуги из каталога, 0 если услуга неизвестна
	CreatedAt       time.Time
}
