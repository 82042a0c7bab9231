package domain

// Service represents a bookable offering of the salon catalog
type Service struct {
	ID              string
	Name            string // каноническое имя, на него ссылаются бронирования
	DisplayName     string // имя для клиентов (fr)
	Description     string
	DurationMinutes int
	Price           float64
}
