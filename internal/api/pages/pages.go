package pages

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	createBooking "github.com/m04kA/SMC-SalonBooking/internal/usecase/create_booking"
	getWeekGrid "github.com/m04kA/SMC-SalonBooking/internal/usecase/get_week_grid"
)

//go:embed templates/*.html
var templatesFS embed.FS

const (
	msgInvalidForm   = "Veuillez remplir tous les champs obligatoires."
	msgBookingFailed = "Échec de la réservation. Veuillez réessayer."
	msgInvalidWeek   = "Semaine invalide."
	msgCalendarError = "Impossible de charger le calendrier."
	msgInvalidToken  = "Jeton invalide ou expiré."
	msgForbidden     = "Ce jeton ne donne pas accès au calendrier."
)

type Handler struct {
	createBooking CreateBookingUseCase
	weekGrid      WeekGridUseCase
	catalog       Catalog
	adminSecret   string
	templates     *template.Template
	logger        Logger
}

func NewHandler(createBooking CreateBookingUseCase, weekGrid WeekGridUseCase, catalog Catalog, adminSecret string, logger Logger) (*Handler, error) {
	tpl, err := template.New("").Funcs(template.FuncMap{
		"price": domain.FormatPrice,
	}).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	return &Handler{
		createBooking: createBooking,
		weekGrid:      weekGrid,
		catalog:       catalog,
		adminSecret:   adminSecret,
		templates:     tpl,
		logger:        logger,
	}, nil
}

// BookingForm GET /
func (h *Handler) BookingForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "booking.html", bookingPage{Services: serviceOptions(h.catalog.All())})
}

// SubmitBooking POST /book
// После успешной записи форма очищается и показывается подтверждение
func (h *Handler) SubmitBooking(w http.ResponseWriter, r *http.Request) {
	page := bookingPage{Services: serviceOptions(h.catalog.All())}

	if err := r.ParseForm(); err != nil {
		h.logger.Warn("POST /book - Invalid form: %v", err)
		page.Error = msgInvalidForm
		h.render(w, http.StatusBadRequest, "booking.html", page)
		return
	}

	form := formFromValues(r.PostForm)
	result, err := h.createBooking.Execute(r.Context(), form.toUseCaseRequest())
	if err != nil {
		page.Form = form
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /book - Invalid input: %v", err)
			page.Error = msgInvalidForm
			h.render(w, http.StatusBadRequest, "booking.html", page)

		default:
			h.logger.Error("POST /book - Failed to create booking: service=%q, error=%v", form.ServiceName, err)
			page.Error = msgBookingFailed
			h.render(w, http.StatusInternalServerError, "booking.html", page)
		}
		return
	}

	h.logger.Info("POST /book - Booking created: booking_id=%s", result.ID)
	page.Confirmation = &confirmation{
		ServiceLabel:  result.ServiceLabel,
		Date:          result.BookingDate,
		Time:          result.BookingTime,
		DurationLabel: domain.FormatDuration(result.DurationMinutes),
		Total:         result.Total,
	}
	h.render(w, http.StatusOK, "booking.html", page)
}

// AdminCalendar GET /admin?week=YYYY-MM-DD
func (h *Handler) AdminCalendar(w http.ResponseWriter, r *http.Request) {
	week := r.URL.Query().Get("week")

	grid, err := h.weekGrid.Execute(r.Context(), &getWeekGrid.Request{WeekOf: week})
	if err != nil {
		switch {
		case errors.Is(err, getWeekGrid.ErrInvalidInput):
			h.logger.Warn("GET /admin - Invalid week=%q", week)
			h.render(w, http.StatusBadRequest, "admin.html", adminPage{Error: msgInvalidWeek})

		default:
			h.logger.Error("GET /admin - Failed to build grid: %v", err)
			h.render(w, http.StatusInternalServerError, "admin.html", adminPage{Error: msgCalendarError})
		}
		return
	}

	h.render(w, http.StatusOK, "admin.html", adminPage{
		Grid:     grid,
		Statuses: statusOptions(),
		Services: serviceOptions(h.catalog.All()),
	})
}

// LoginForm GET /admin/login
func (h *Handler) LoginForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "login.html", loginPage{})
}

// Login POST /admin/login
// Обменивает токен администратора на cookie admin_token, которую читает middleware Auth
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.logger.Warn("POST /admin/login - Invalid form: %v", err)
		h.render(w, http.StatusBadRequest, "login.html", loginPage{Error: msgInvalidToken})
		return
	}

	raw := strings.TrimSpace(r.PostForm.Get("token"))
	claims, err := middleware.ParseToken(raw, h.adminSecret)
	if err != nil {
		h.logger.Warn("POST /admin/login - %v", err)
		h.render(w, http.StatusUnauthorized, "login.html", loginPage{Error: msgInvalidToken})
		return
	}
	if claims.Role != middleware.RoleAdmin {
		h.logger.Warn("POST /admin/login - Forbidden role=%q, subject=%q", claims.Role, claims.Subject)
		h.render(w, http.StatusForbidden, "login.html", loginPage{Error: msgForbidden})
		return
	}

	cookie := &http.Cookie{
		Name:     middleware.AdminCookie,
		Value:    raw,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if claims.ExpiresAt != nil {
		cookie.Expires = claims.ExpiresAt.Time
		cookie.MaxAge = int(time.Until(claims.ExpiresAt.Time).Seconds())
	}
	http.SetCookie(w, cookie)

	h.logger.Info("POST /admin/login - Admin signed in: subject=%s", claims.Subject)
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// Logout POST /admin/logout
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.AdminCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
}

func (h *Handler) render(w http.ResponseWriter, status int, name string, data interface{}) {
	var buf bytes.Buffer
	if err := h.templates.ExecuteTemplate(&buf, name, data); err != nil {
		h.logger.Error("render %s: %v", name, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
