package list_bookings

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/service/bookings/models"
)

const (
	msgInvalidParams = "paramètres de requête invalides"
	msgListFailed    = "impossible de charger les réservations"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/bookings
// Query params: status, date (опционально)
// Порядок: дата по возрастанию, затем время
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r.URL.Query().Get("status"), r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /admin/bookings - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/bookings - Failed to list bookings: %v", err)
		handlers.RespondError(w, http.StatusInternalServerError, msgListFailed)
		return
	}

	result.Bookings = filter.apply(result.Bookings)

	h.logger.Info("GET /admin/bookings - Bookings retrieved: count=%d", len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}

type filter struct {
	status domain.BookingStatus
	date   string
}

func parseFilter(statusStr, dateStr string) (filter, error) {
	var f filter
	if statusStr != "" {
		status, err := domain.ParseBookingStatus(statusStr)
		if err != nil {
			return f, err
		}
		f.status = status
	}
	if dateStr != "" {
		if _, err := time.Parse(domain.DateFormat, dateStr); err != nil {
			return f, domain.ErrInvalidDate
		}
		f.date = dateStr
	}
	return f, nil
}

func (f filter) apply(in []models.BookingResponse) []models.BookingResponse {
	if f.status == "" && f.date == "" {
		return in
	}
	out := make([]models.BookingResponse, 0, len(in))
	for _, b := range in {
		if f.status != "" && b.Status != string(f.status) {
			continue
		}
		if f.date != "" && b.BookingDate != f.date {
			continue
		}
		out = append(out, b)
	}
	return out
}
