package calendar

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// Board состояние календаря администратора: загруженный список бронирований и выбранная запись.
//
// Изменения применяются оптимистично: сначала локальная копия, затем хранилище.
// При ошибке хранилища локальная копия откатывается к снимку, при успехе список
// полностью перезагружается. Board не потокобезопасен, создаётся на один запрос.
type Board struct {
	store BookingStore
	axis  Axis
	log   Logger

	loaded     bool
	bookings   []*domain.Booking
	selectedID string
}

// NewBoard создает пустую доску; перед использованием нужен Reload
func NewBoard(store BookingStore, axis Axis, log Logger) *Board {
	return &Board{
		store: store,
		axis:  axis,
		log:   log,
	}
}

// Reload заново загружает весь список из хранилища
// При ошибке предыдущее состояние сохраняется
func (b *Board) Reload(ctx context.Context) error {
	bookings, err := b.store.ListBookings(ctx)
	if err != nil {
		return err
	}
	b.bookings = bookings
	b.loaded = true
	return nil
}

// Bookings копия текущего списка
func (b *Board) Bookings() []*domain.Booking {
	out := make([]*domain.Booking, len(b.bookings))
	for i, booking := range b.bookings {
		out[i] = booking.Clone()
	}
	return out
}

// Find копия бронирования с указанным id
func (b *Board) Find(id string) (*domain.Booking, error) {
	idx, err := b.index(id)
	if err != nil {
		return nil, err
	}
	return b.bookings[idx].Clone(), nil
}

// Select делает бронирование выбранным
func (b *Board) Select(id string) (*domain.Booking, error) {
	booking, err := b.Find(id)
	if err != nil {
		return nil, err
	}
	b.selectedID = id
	return booking, nil
}

// Selected выбранное бронирование или nil, если ничего не выбрано или запись исчезла после перезагрузки
func (b *Board) Selected() *domain.Booking {
	if b.selectedID == "" {
		return nil
	}
	booking, err := b.Find(b.selectedID)
	if err != nil {
		return nil
	}
	return booking
}

// ClearSelection снимает выбор
func (b *Board) ClearSelection() {
	b.selectedID = ""
}

// SetStatus меняет статус на любой из шести
func (b *Board) SetStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	return b.apply(ctx, id, "SetStatus",
		func(booking *domain.Booking) {
			booking.Status = status
		},
		func(ctx context.Context, booking *domain.Booking) error {
			return b.store.UpdateStatus(ctx, id, booking.Status)
		},
	)
}

// Move переносит бронирование на новые дату и время
// durationMinutes <= 0 сохраняет текущую длительность (60 минут, если она не задана)
func (b *Board) Move(ctx context.Context, id, date, startTime string, durationMinutes int) (*domain.Booking, error) {
	return b.apply(ctx, id, "Move",
		func(booking *domain.Booking) {
			if durationMinutes <= 0 {
				durationMinutes = booking.EffectiveDuration()
			}
			booking.BookingDate = date
			booking.BookingTime = startTime
			booking.DurationMinutes = durationMinutes
		},
		func(ctx context.Context, booking *domain.Booking) error {
			return b.store.Reschedule(ctx, id, booking.BookingDate, booking.BookingTime, booking.DurationMinutes)
		},
	)
}

// Resize меняет только длительность
func (b *Board) Resize(ctx context.Context, id string, durationMinutes int) (*domain.Booking, error) {
	return b.apply(ctx, id, "Resize",
		func(booking *domain.Booking) {
			booking.DurationMinutes = durationMinutes
		},
		func(ctx context.Context, booking *domain.Booking) error {
			return b.store.Resize(ctx, id, booking.DurationMinutes)
		},
	)
}

// Remove удаляет бронирование; запись пропадает из доски после перезагрузки
func (b *Board) Remove(ctx context.Context, id string) error {
	if _, err := b.index(id); err != nil {
		return err
	}

	if err := b.store.Delete(ctx, id); err != nil {
		return err
	}

	if b.selectedID == id {
		b.ClearSelection()
	}

	if err := b.Reload(ctx); err != nil {
		b.log.Warn("Remove: booking id=%s deleted, reload failed: %v", id, err)
		b.drop(id)
	}
	return nil
}

// Grid сетка занятости текущего списка на указанные дни
func (b *Board) Grid(days []time.Time) *domain.Grid {
	return BuildGrid(b.bookings, days, b.axis)
}

// apply оптимистичное изменение с откатом
// При ошибке возвращает бронирование в том виде, в каком оно отображается после отката
func (b *Board) apply(
	ctx context.Context,
	id, op string,
	change func(booking *domain.Booking),
	persist func(ctx context.Context, booking *domain.Booking) error,
) (*domain.Booking, error) {
	idx, err := b.index(id)
	if err != nil {
		return nil, err
	}

	snapshot := b.bookings[idx].Clone()
	change(b.bookings[idx])

	if err := persist(ctx, b.bookings[idx].Clone()); err != nil {
		b.bookings[idx] = snapshot
		b.log.Warn("%s: booking id=%s reverted: %v", op, id, err)
		return snapshot.Clone(), err
	}

	optimistic := b.bookings[idx].Clone()
	if err := b.Reload(ctx); err != nil {
		b.log.Warn("%s: booking id=%s saved, reload failed: %v", op, id, err)
		return optimistic, nil
	}

	if reloaded, err := b.Find(id); err == nil {
		return reloaded, nil
	}
	return optimistic, nil
}

func (b *Board) index(id string) (int, error) {
	if !b.loaded {
		return 0, ErrNotLoaded
	}
	for i, booking := range b.bookings {
		if booking.ID == id {
			return i, nil
		}
	}
	return 0, ErrBookingNotOnBoard
}

func (b *Board) drop(id string) {
	kept := b.bookings[:0]
	for _, booking := range b.bookings {
		if booking.ID != id {
			kept = append(kept, booking)
		}
	}
	b.bookings = kept
}
