package get_week_grid

// Request модель запроса сетки недели
type Request struct {
	WeekOf string // любая дата недели "YYYY-MM-DD", пусто - текущая неделя
}

// Response сетка недели для календаря администратора
type Response struct {
	WeekStart   string
	WeekEnd     string
	PrevWeek    string
	NextWeek    string
	SlotMinutes int
	Slots       []string
	Days        []Day
	Skipped     int // записи с битой датой/временем или вне рабочих часов
}

// Day колонка сетки
type Day struct {
	Date  string
	Label string // "lun. 10/06"
	Cells []Cell
}

// Cell ячейка (день, слот)
type Cell struct {
	Start   string
	Booking *BookingCell
}

// BookingCell бронирование, начинающееся в ячейке
type BookingCell struct {
	ID              string
	ServiceName     string
	CustomerName    string
	Initials        string
	BookingTime     string
	DurationMinutes int
	DurationLabel   string
	Status          string
	StatusLabel     string
	Span            int // сколько слотов занимает по высоте при отрисовке
}
