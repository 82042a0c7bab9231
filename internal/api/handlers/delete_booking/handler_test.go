package delete_booking

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SalonBooking/internal/service/bookings"
	"github.com/m04kA/SMC-SalonBooking/internal/service/calendar"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
)

const bookingID = "7b0e4a4e-3f55-4b8e-9a77-0c8f3d7f2a11"

type fakeCalendar struct {
	err     error
	removed []string
}

func (f *fakeCalendar) Remove(_ context.Context, id string) error {
	f.removed = append(f.removed, id)
	return f.err
}

func serve(h *Handler, id string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/admin/bookings/{bookingId}", h.Handle).Methods(http.MethodDelete)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/admin/bookings/"+id, nil))
	return rec
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name string
		id   string
		err  error
		want int
	}{
		{"deleted", bookingID, nil, http.StatusNoContent},
		{"malformed id", "not-a-uuid", nil, http.StatusBadRequest},
		{"not found", bookingID, bookings.ErrBookingNotFound, http.StatusNotFound},
		{"not on board", bookingID, calendar.ErrBookingNotOnBoard, http.StatusNotFound},
		{"store failure", bookingID, bookings.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cal := &fakeCalendar{err: tt.err}
			rec := serve(NewHandler(cal, logger.Nop()), tt.id)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestHandle_MalformedIDNeverReachesStore(t *testing.T) {
	cal := &fakeCalendar{}
	serve(NewHandler(cal, logger.Nop()), "../../etc")
	assert.Empty(t, cal.removed)
}

func TestHandle_LogsTokenSubject(t *testing.T) {
	const secret = "test-secret"
	token, err := middleware.IssueToken(secret, "reception", time.Hour)
	require.NoError(t, err)

	var buf bytes.Buffer
	h := NewHandler(&fakeCalendar{}, logger.NewWithWriter(&buf, logger.LevelInfo))

	router := mux.NewRouter()
	router.Use(middleware.Auth(secret, logger.Nop()))
	router.HandleFunc("/api/v1/admin/bookings/{bookingId}", h.Handle).Methods(http.MethodDelete)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/bookings/"+bookingID, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Contains(t, buf.String(), "booking_id="+bookingID+", by=reception")
}
