package reschedule_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SalonBooking/internal/service/bookings"
	"github.com/m04kA/SMC-SalonBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-SalonBooking/internal/service/calendar"
)

const (
	msgInvalidBookingID   = "identifiant de réservation invalide"
	msgInvalidRequestBody = "corps de requête invalide"
	msgInvalidSchedule    = "date, heure ou durée invalide"
	msgNotFound           = "réservation introuvable"
	msgRescheduleFailed   = "échec du déplacement de la réservation"
)

type Handler struct {
	calendar  CalendarService
	describer BookingDescriber
	logger    Logger
}

func NewHandler(calendar CalendarService, describer BookingDescriber, logger Logger) *Handler {
	return &Handler{
		calendar:  calendar,
		describer: describer,
		logger:    logger,
	}
}

// Handle PATCH /api/v1/admin/bookings/{bookingId}/schedule
// Перенос (drag): сохраняются дата, время и длительность.
// При ошибке хранилища в ответе бронирование после отката.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.BookingID(r)
	if err != nil {
		h.logger.Warn("PATCH /admin/bookings/{id}/schedule - %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req models.RescheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/bookings/{id}/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	booking, err := h.calendar.Move(r.Context(), bookingID, req.BookingDate, req.BookingTime, req.DurationMinutes)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("PATCH /admin/bookings/{id}/schedule - Invalid schedule: booking_id=%s, %v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidSchedule)

		case errors.Is(err, bookings.ErrBookingNotFound), errors.Is(err, calendar.ErrBookingNotOnBoard):
			h.logger.Warn("PATCH /admin/bookings/{id}/schedule - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PATCH /admin/bookings/{id}/schedule - Failed to reschedule: booking_id=%s, error=%v", bookingID, err)
			var current interface{}
			if booking != nil {
				current = h.describer.Describe(booking)
			}
			handlers.RespondMutationError(w, http.StatusInternalServerError, msgRescheduleFailed, current)
		}
		return
	}

	subject, _ := middleware.GetSubject(r.Context())
	h.logger.Info("PATCH /admin/bookings/{id}/schedule - Booking moved: booking_id=%s, date=%s, time=%s, duration=%d, by=%s",
		bookingID, booking.BookingDate, booking.BookingTime, booking.DurationMinutes, subject)
	handlers.RespondJSON(w, http.StatusOK, h.describer.Describe(booking))
}
