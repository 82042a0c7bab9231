package domain

// Default values
const (
	DefaultDurationMinutes = 60 // длительность, если в записи она не указана
	DefaultSlotMinutes     = 15
	DefaultOpenTime        = "08:00"
	DefaultCloseTime       = "17:00"
)

// Business validation constants
const (
	MinutesPerDay         = 24 * 60
	MaxNotesLength        = 1000
	MaxCustomerNameLength = 200
	MaxPhoneLength        = 32
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Источник создания бронирования
const (
	SourcePublic = "public" // форма на публичной странице
	SourceAdmin  = "admin"  // клик по свободному слоту в календаре
)

var statusLabels = map[BookingStatus]string{
	StatusBooked:    "Réservé",
	StatusConfirmed: "Confirmé",
	StatusArrived:   "Arrivé",
	StatusStarted:   "Commencé",
	StatusNoShow:    "Absent",
	StatusCancel:    "Annulé",
}
