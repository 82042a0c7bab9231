package update_status

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/service/bookings"
	"github.com/m04kA/SMC-SalonBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-SalonBooking/internal/service/calendar"
)

const (
	msgInvalidBookingID   = "identifiant de réservation invalide"
	msgInvalidRequestBody = "corps de requête invalide"
	msgInvalidStatus      = "statut invalide"
	msgNotFound           = "réservation introuvable"
	msgUpdateFailed       = "échec de la mise à jour du statut"
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

// Handle PATCH /api/v1/admin/bookings/{bookingId}/status
// Любой из шести статусов допускается из любого текущего
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.BookingID(r)
	if err != nil {
		h.logger.Warn("PATCH /admin/bookings/{id}/status - %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req models.UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/bookings/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	status, err := domain.ParseBookingStatus(req.Status)
	if err != nil {
		h.logger.Warn("PATCH /admin/bookings/{id}/status - Invalid status=%q", req.Status)
		handlers.RespondBadRequest(w, msgInvalidStatus)
		return
	}

	booking, err := h.calendar.SetStatus(r.Context(), bookingID, status)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("PATCH /admin/bookings/{id}/status - Invalid input: booking_id=%s, %v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, bookings.ErrBookingNotFound), errors.Is(err, calendar.ErrBookingNotOnBoard):
			h.logger.Warn("PATCH /admin/bookings/{id}/status - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PATCH /admin/bookings/{id}/status - Failed to update status: booking_id=%s, error=%v", bookingID, err)
			var current interface{}
			if booking != nil {
				current = h.describer.Describe(booking)
			}
			handlers.RespondMutationError(w, http.StatusInternalServerError, msgUpdateFailed, current)
		}
		return
	}

	subject, _ := middleware.GetSubject(r.Context())
	h.logger.Info("PATCH /admin/bookings/{id}/status - Status updated: booking_id=%s, status=%s, by=%s", bookingID, status, subject)
	handlers.RespondJSON(w, http.StatusOK, h.describer.Describe(booking))
}
