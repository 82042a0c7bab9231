package bookings

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/catalog"
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
)

var errStoreDown = errors.New("store unavailable")

type fakeRepository struct {
	bookings map[string]*domain.Booking
	order    []string
	failWith error
	updates  []domain.BookingPatch
}

func newFakeRepository(bookings ...*domain.Booking) *fakeRepository {
	r := &fakeRepository{bookings: make(map[string]*domain.Booking)}
	for _, b := range bookings {
		r.bookings[b.ID] = b.Clone()
		r.order = append(r.order, b.ID)
	}
	return r
}

func (r *fakeRepository) List(_ context.Context) ([]*domain.Booking, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	out := make([]*domain.Booking, 0, len(r.order))
	for _, id := range r.order {
		if b, ok := r.bookings[id]; ok {
			out = append(out, b.Clone())
		}
	}
	return out, nil
}

func (r *fakeRepository) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	b, ok := r.bookings[id]
	if !ok {
		return nil, fmt.Errorf("fake: %w", domain.ErrBookingNotFound)
	}
	return b.Clone(), nil
}

func (r *fakeRepository) Update(_ context.Context, id string, patch domain.BookingPatch) error {
	if r.failWith != nil {
		return r.failWith
	}
	b, ok := r.bookings[id]
	if !ok {
		return fmt.Errorf("fake: %w", domain.ErrBookingNotFound)
	}
	r.updates = append(r.updates, patch)
	patch.Apply(b)
	return nil
}

func (r *fakeRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	return r.Update(ctx, id, domain.BookingPatch{Status: &status})
}

func (r *fakeRepository) Delete(_ context.Context, id string) error {
	if r.failWith != nil {
		return r.failWith
	}
	if _, ok := r.bookings[id]; !ok {
		return fmt.Errorf("fake: %w", domain.ErrBookingNotFound)
	}
	delete(r.bookings, id)
	return nil
}

type countingObserver struct {
	calls map[string]int
}

func (o *countingObserver) ObserveBookingOperation(operation string, err error) {
	if o.calls == nil {
		o.calls = make(map[string]int)
	}
	result := "success"
	if err != nil {
		result = "error"
	}
	o.calls[operation+":"+result]++
}

func sampleBooking(id string) *domain.Booking {
	return &domain.Booking{
		ID:              id,
		ServiceName:     "Hair Styling",
		CustomerName:    "Jane Doe",
		CustomerPhone:   "+33 6 12 34 56 78",
		BookingDate:     "2024-06-10",
		BookingTime:     "14:00",
		DurationMinutes: 60,
		Status:          domain.StatusBooked,
	}
}

func newTestService(repo BookingRepository) (*Service, *countingObserver) {
	obs := &countingObserver{}
	return NewService(repo, catalog.Default(), obs, logger.Nop()), obs
}

func TestService_UpdateStatus_AnyTransition(t *testing.T) {
	for _, from := range domain.AllStatuses {
		for _, to := range domain.AllStatuses {
			t.Run(fmt.Sprintf("%s->%s", from, to), func(t *testing.T) {
				b := sampleBooking("b1")
				b.Status = from
				repo := newFakeRepository(b)
				svc, _ := newTestService(repo)

				require.NoError(t, svc.UpdateStatus(context.Background(), "b1", to))
				assert.Equal(t, to, repo.bookings["b1"].Status)
			})
		}
	}
}

func TestService_UpdateStatus_Errors(t *testing.T) {
	repo := newFakeRepository(sampleBooking("b1"))
	svc, obs := newTestService(repo)

	err := svc.UpdateStatus(context.Background(), "b1", "pending")
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, repo.updates)

	err = svc.UpdateStatus(context.Background(), "missing", domain.StatusConfirmed)
	assert.ErrorIs(t, err, ErrBookingNotFound)

	repo.failWith = errStoreDown
	err = svc.UpdateStatus(context.Background(), "b1", domain.StatusConfirmed)
	assert.ErrorIs(t, err, ErrInternal)

	assert.Equal(t, 3, obs.calls["update_status:error"])
}

func TestService_Reschedule(t *testing.T) {
	repo := newFakeRepository(sampleBooking("b1"))
	svc, obs := newTestService(repo)

	require.NoError(t, svc.Reschedule(context.Background(), "b1", "2024-06-11", "09:30", 90))

	got := repo.bookings["b1"]
	assert.Equal(t, "2024-06-11", got.BookingDate)
	assert.Equal(t, "09:30", got.BookingTime)
	assert.Equal(t, 90, got.DurationMinutes)
	assert.Equal(t, 1, obs.calls["reschedule:success"])
}

func TestService_Reschedule_Validation(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		time     string
		duration int
	}{
		{"bad date", "10/06/2024", "09:00", 60},
		{"bad time", "2024-06-10", "9h", 60},
		{"zero duration", "2024-06-10", "09:00", 0},
		{"crosses midnight", "2024-06-10", "23:30", 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepository(sampleBooking("b1"))
			svc, _ := newTestService(repo)

			err := svc.Reschedule(context.Background(), "b1", tt.date, tt.time, tt.duration)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Empty(t, repo.updates)
		})
	}
}

func TestService_Resize(t *testing.T) {
	repo := newFakeRepository(sampleBooking("b1"))
	svc, _ := newTestService(repo)

	require.NoError(t, svc.Resize(context.Background(), "b1", 45))
	assert.Equal(t, 45, repo.bookings["b1"].DurationMinutes)
	require.Len(t, repo.updates, 1)
	assert.Nil(t, repo.updates[0].BookingDate)
	assert.Nil(t, repo.updates[0].BookingTime)

	// 14:00 + 11h выходит за полночь
	assert.ErrorIs(t, svc.Resize(context.Background(), "b1", 660), ErrInvalidInput)
	assert.ErrorIs(t, svc.Resize(context.Background(), "b1", -15), ErrInvalidInput)
	assert.ErrorIs(t, svc.Resize(context.Background(), "missing", 30), ErrBookingNotFound)
}

func TestService_Delete(t *testing.T) {
	repo := newFakeRepository(sampleBooking("b1"), sampleBooking("b2"))
	svc, _ := newTestService(repo)

	require.NoError(t, svc.Delete(context.Background(), "b1"))
	assert.ErrorIs(t, svc.Delete(context.Background(), "b1"), ErrBookingNotFound)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list.Bookings, 1)
	assert.Equal(t, "b2", list.Bookings[0].ID)
}

func TestService_Describe_Total(t *testing.T) {
	known := sampleBooking("b1")
	unknown := sampleBooking("b2")
	unknown.ServiceName = "Manicure"
	unknown.DurationMinutes = 0
	unknown.BookingTime = "10:15:00"

	svc, _ := newTestService(newFakeRepository(known, unknown))

	got := svc.Describe(known)
	assert.Equal(t, float64(50), got.Total)
	assert.Equal(t, "Coiffure & Style", got.ServiceLabel)
	assert.Equal(t, "1h", got.DurationLabel)
	assert.Equal(t, "JD", got.Initials)
	assert.Equal(t, "Réservé", got.StatusLabel)

	got = svc.Describe(unknown)
	assert.Equal(t, float64(0), got.Total)
	assert.Equal(t, "Manicure", got.ServiceLabel)
	assert.Equal(t, 60, got.DurationMinutes)
	assert.Equal(t, "10:15", got.BookingTime)
}

func TestService_List_StoreFailure(t *testing.T) {
	repo := newFakeRepository(sampleBooking("b1"))
	repo.failWith = errStoreDown
	svc, _ := newTestService(repo)

	_, err := svc.List(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}
