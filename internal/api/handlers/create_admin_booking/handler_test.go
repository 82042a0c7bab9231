package create_admin_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	createBooking "github.com/m04kA/SMC-SalonBooking/internal/usecase/create_booking"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
)

type fakeUseCase struct {
	got *createBooking.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.got = req
	return &createBooking.Response{ID: "new", Status: "booked", DurationMinutes: 45}, nil
}

func TestHandle_SlotSelection(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, logger.Nop())

	body := `{"serviceName":"Spa Massage","customerName":"Jane","customerPhone":"0600",
		"start":"2024-06-10T10:00:00+02:00","end":"2024-06-10T10:45:00+02:00"}`
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/admin/bookings", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, domain.SourceAdmin, uc.got.Source)
	require.NotNil(t, uc.got.Slot)
	assert.Equal(t, 45*time.Minute, uc.got.Slot.End.Sub(uc.got.Slot.Start))
}

func TestHandle_ExplicitSchedule(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, logger.Nop())

	body := `{"serviceName":"Spa Massage","customerName":"Jane","customerPhone":"0600",
		"bookingDate":"2024-06-10","bookingTime":"10:00","durationMinutes":30}`
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/admin/bookings", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Nil(t, uc.got.Slot)
	assert.Equal(t, 30, uc.got.DurationMinutes)
}

func TestHandle_InvalidSlot(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, logger.Nop())

	body := `{"serviceName":"Spa Massage","customerName":"Jane","customerPhone":"0600",
		"start":"tomorrow","end":"2024-06-10T10:45:00Z"}`
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/admin/bookings", strings.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.got)
}
