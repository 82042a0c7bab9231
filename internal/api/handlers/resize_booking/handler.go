package resize_booking

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
	msgInvalidDuration    = "durée invalide"
	msgNotFound           = "réservation introuvable"
	msgResizeFailed       = "échec de la modification de la durée"
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

// Handle PATCH /api/v1/admin/bookings/{bookingId}/duration
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.BookingID(r)
	if err != nil {
		h.logger.Warn("PATCH /admin/bookings/{id}/duration - %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req models.ResizeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/bookings/{id}/duration - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.DurationMinutes <= 0 {
		h.logger.Warn("PATCH /admin/bookings/{id}/duration - Non-positive duration=%d", req.DurationMinutes)
		handlers.RespondBadRequest(w, msgInvalidDuration)
		return
	}

	booking, err := h.calendar.Resize(r.Context(), bookingID, req.DurationMinutes)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("PATCH /admin/bookings/{id}/duration - Invalid duration: booking_id=%s, %v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, bookings.ErrBookingNotFound), errors.Is(err, calendar.ErrBookingNotOnBoard):
			h.logger.Warn("PATCH /admin/bookings/{id}/duration - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PATCH /admin/bookings/{id}/duration - Failed to resize: booking_id=%s, error=%v", bookingID, err)
			var current interface{}
			if booking != nil {
				current = h.describer.Describe(booking)
			}
			handlers.RespondMutationError(w, http.StatusInternalServerError, msgResizeFailed, current)
		}
		return
	}

	subject, _ := middleware.GetSubject(r.Context())
	h.logger.Info("PATCH /admin/bookings/{id}/duration - Booking resized: booking_id=%s, duration=%d, by=%s", bookingID, booking.DurationMinutes, subject)
	handlers.RespondJSON(w, http.StatusOK, h.describer.Describe(booking))
}
