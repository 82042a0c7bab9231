package get_week_grid

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	getWeekGrid "github.com/m04kA/SMC-SalonBooking/internal/usecase/get_week_grid"
)

const (
	msgInvalidWeek = "semaine invalide, format attendu AAAA-MM-JJ"
	msgLoadFailed  = "impossible de charger le calendrier"
)

type Handler struct {
	useCase WeekGridUseCase
	logger  Logger
}

func NewHandler(useCase WeekGridUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/calendar
// Query params: week (любая дата недели, по умолчанию текущая)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	week := r.URL.Query().Get("week")

	result, err := h.useCase.Execute(r.Context(), &getWeekGrid.Request{WeekOf: week})
	if err != nil {
		switch {
		case errors.Is(err, getWeekGrid.ErrInvalidInput):
			h.logger.Warn("GET /admin/calendar - Invalid week=%q", week)
			handlers.RespondBadRequest(w, msgInvalidWeek)

		default:
			h.logger.Error("GET /admin/calendar - Failed to build grid: week=%q, error=%v", week, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgLoadFailed)
		}
		return
	}

	h.logger.Info("GET /admin/calendar - Grid built: week_start=%s, skipped=%d", result.WeekStart, result.Skipped)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
