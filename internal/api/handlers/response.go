package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

const (
	maxBodyBytes = 1 << 20

	msgInternalError   = "erreur interne du serveur"
	msgTooManyRequests = "trop de requêtes, réessayez plus tard"
)

// ErrInvalidBookingID возвращается, когда id в пути не является UUID
var ErrInvalidBookingID = errors.New("invalid booking id")

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// RespondJSON пишет JSON-ответ с указанным статусом
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(data)
}

// RespondError пишет ErrorResponse
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Code: status, Message: message})
}

func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, message)
}

func RespondForbidden(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusForbidden, message)
}

func RespondTooManyRequests(w http.ResponseWriter) {
	RespondError(w, http.StatusTooManyRequests, msgTooManyRequests)
}

func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}

// DecodeJSON читает тело запроса; неизвестные поля и хвост после объекта считаются ошибкой
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return errors.New("empty body")
	}

	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode body: %w", err)
	}
	if dec.More() {
		return errors.New("unexpected data after JSON object")
	}
	return nil
}

// BookingID достаёт {bookingId} из пути и проверяет формат
// Некорректный id отсекается до обращения к хранилищу
func BookingID(r *http.Request) (string, error) {
	raw := mux.Vars(r)["bookingId"]
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidBookingID, raw)
	}
	return id.String(), nil
}

// MutationErrorResponse ошибка изменения с бронированием в том виде, в каком оно осталось после отката
type MutationErrorResponse struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Booking interface{} `json:"booking,omitempty"`
}

// RespondMutationError пишет ошибку изменения; booking может быть nil
func RespondMutationError(w http.ResponseWriter, status int, message string, booking interface{}) {
	RespondJSON(w, status, MutationErrorResponse{Code: status, Message: message, Booking: booking})
}
