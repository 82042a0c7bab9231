package calendar

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

var errStore = errors.New("store rejected the call")

type fakeStore struct {
	bookings  []*domain.Booking
	failOn    map[string]error
	listCalls int
}

func newFakeStore(bookings ...*domain.Booking) *fakeStore {
	return &fakeStore{bookings: bookings, failOn: make(map[string]error)}
}

func (s *fakeStore) find(id string) *domain.Booking {
	for _, b := range s.bookings {
		if b.ID == id {
			return b
		}
	}
	return nil
}

func (s *fakeStore) ListBookings(_ context.Context) ([]*domain.Booking, error) {
	s.listCalls++
	if err := s.failOn["list"]; err != nil {
		return nil, err
	}
	out := make([]*domain.Booking, len(s.bookings))
	for i, b := range s.bookings {
		out[i] = b.Clone()
	}
	return out, nil
}

func (s *fakeStore) UpdateStatus(_ context.Context, id string, status domain.BookingStatus) error {
	if err := s.failOn["status"]; err != nil {
		return err
	}
	s.find(id).Status = status
	return nil
}

func (s *fakeStore) Reschedule(_ context.Context, id, date, startTime string, durationMinutes int) error {
	if err := s.failOn["reschedule"]; err != nil {
		return err
	}
	b := s.find(id)
	b.BookingDate, b.BookingTime, b.DurationMinutes = date, startTime, durationMinutes
	return nil
}

func (s *fakeStore) Resize(_ context.Context, id string, durationMinutes int) error {
	if err := s.failOn["resize"]; err != nil {
		return err
	}
	s.find(id).DurationMinutes = durationMinutes
	return nil
}

func (s *fakeStore) Delete(_ context.Context, id string) error {
	if err := s.failOn["delete"]; err != nil {
		return err
	}
	kept := s.bookings[:0]
	for _, b := range s.bookings {
		if b.ID != id {
			kept = append(kept, b)
		}
	}
	s.bookings = kept
	return nil
}

func loadedBoard(t *testing.T, store *fakeStore) *Board {
	t.Helper()
	board := NewBoard(store, DefaultAxis(), logger.Nop())
	require.NoError(t, board.Reload(context.Background()))
	return board
}

func TestBoard_NotLoaded(t *testing.T) {
	board := NewBoard(newFakeStore(), DefaultAxis(), logger.Nop())

	_, err := board.Select("a")
	assert.ErrorIs(t, err, ErrNotLoaded)
}

func TestBoard_SelectAndClear(t *testing.T) {
	board := loadedBoard(t, newFakeStore(booking("a", "2024-06-10", "10:00", 60)))

	selected, err := board.Select("a")
	require.NoError(t, err)
	assert.Equal(t, "a", selected.ID)
	assert.Equal(t, "a", board.Selected().ID)

	board.ClearSelection()
	assert.Nil(t, board.Selected())

	_, err = board.Select("zzz")
	assert.ErrorIs(t, err, ErrBookingNotOnBoard)
}

func TestBoard_Move_FailedStoreRollsBack(t *testing.T) {
	store := newFakeStore(booking("a", "2024-06-10", "10:00", 60))
	store.failOn["reschedule"] = errStore
	board := loadedBoard(t, store)

	got, err := board.Move(context.Background(), "a", "2024-06-12", "15:00", 90)
	require.ErrorIs(t, err, errStore)

	assert.Equal(t, "2024-06-10", got.BookingDate)
	assert.Equal(t, "10:00", got.BookingTime)
	assert.Equal(t, 60, got.DurationMinutes)

	// Сетка показывает запись на исходном месте
	g := board.Grid(testWeek)
	cells := findOccupied(g)
	require.Len(t, cells, 1)
	assert.Equal(t, "2024-06-10", cells[0].Date.Format(domain.DateFormat))
	assert.Equal(t, types.TimeString("10:00"), cells[0].Start)
	assert.Equal(t, 60, cells[0].Booking.DurationMinutes)
}

func TestBoard_Move_SuccessReloads(t *testing.T) {
	store := newFakeStore(booking("a", "2024-06-10", "10:00", 0))
	board := loadedBoard(t, store)

	got, err := board.Move(context.Background(), "a", "2024-06-12", "15:00", 0)
	require.NoError(t, err)

	// длительность не передана - берётся текущая, для пустой это 60
	assert.Equal(t, 60, got.DurationMinutes)
	assert.Equal(t, 60, store.find("a").DurationMinutes)
	assert.Equal(t, "2024-06-12", store.find("a").BookingDate)
	assert.Equal(t, 2, store.listCalls)
}

func TestBoard_Resize_FailedStoreRollsBack(t *testing.T) {
	store := newFakeStore(booking("a", "2024-06-10", "10:00", 45))
	store.failOn["resize"] = errStore
	board := loadedBoard(t, store)

	got, err := board.Resize(context.Background(), "a", 120)
	require.ErrorIs(t, err, errStore)
	assert.Equal(t, 45, got.DurationMinutes)

	current, err := board.Find("a")
	require.NoError(t, err)
	assert.Equal(t, 45, current.DurationMinutes)
}

func TestBoard_SetStatus(t *testing.T) {
	store := newFakeStore(booking("a", "2024-06-10", "10:00", 60))
	board := loadedBoard(t, store)

	got, err := board.SetStatus(context.Background(), "a", domain.StatusArrived)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusArrived, got.Status)

	store.failOn["status"] = errStore
	got, err = board.SetStatus(context.Background(), "a", domain.StatusCancel)
	require.ErrorIs(t, err, errStore)
	assert.Equal(t, domain.StatusArrived, got.Status)
}

func TestBoard_Remove_GoneAfterReload(t *testing.T) {
	store := newFakeStore(
		booking("a", "2024-06-10", "10:00", 60),
		booking("b", "2024-06-11", "11:00", 60),
	)
	board := loadedBoard(t, store)
	_, err := board.Select("a")
	require.NoError(t, err)

	require.NoError(t, board.Remove(context.Background(), "a"))

	assert.Nil(t, board.Selected())
	_, err = board.Find("a")
	assert.ErrorIs(t, err, ErrBookingNotOnBoard)

	cells := findOccupied(board.Grid(testWeek))
	require.Len(t, cells, 1)
	assert.Equal(t, "b", cells[0].Booking.ID)
}

func TestBoard_Remove_StoreFailureKeepsBooking(t *testing.T) {
	store := newFakeStore(booking("a", "2024-06-10", "10:00", 60))
	store.failOn["delete"] = errStore
	board := loadedBoard(t, store)

	require.ErrorIs(t, board.Remove(context.Background(), "a"), errStore)

	_, err := board.Find("a")
	assert.NoError(t, err)
}

func TestBoard_ReloadFailureKeepsPreviousList(t *testing.T) {
	store := newFakeStore(booking("a", "2024-06-10", "10:00", 60))
	board := loadedBoard(t, store)

	store.failOn["list"] = errStore
	require.ErrorIs(t, board.Reload(context.Background()), errStore)
	assert.Len(t, board.Bookings(), 1)
}

func TestService_Week(t *testing.T) {
	store := newFakeStore(
		booking("a", "2024-06-10", "10:00", 60),
		booking("broken", "n/a", "10:00", 60),
	)
	svc := NewService(store, DefaultAxis(), logger.Nop())

	g, err := svc.Week(context.Background(), testWeek[3])
	require.NoError(t, err)
	assert.Equal(t, 1, g.Occupied())
	assert.Equal(t, 1, g.Skipped)

	store.failOn["list"] = errStore
	_, err = svc.Week(context.Background(), testWeek[3])
	assert.ErrorIs(t, err, errStore)
}

func TestService_Select(t *testing.T) {
	store := newFakeStore(booking("a", "2024-06-10", "10:00", 60))
	svc := NewService(store, DefaultAxis(), logger.Nop())

	got, err := svc.Select(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, "a", got.ID)
	assert.Equal(t, 1, store.listCalls)

	_, err = svc.Select(context.Background(), "zzz")
	assert.ErrorIs(t, err, ErrBookingNotOnBoard)

	store.failOn["list"] = errStore
	_, err = svc.Select(context.Background(), "a")
	assert.ErrorIs(t, err, errStore)
}
