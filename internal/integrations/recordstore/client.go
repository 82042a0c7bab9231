package recordstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

const (
	restPrefix         = "/rest/v1/"
	orderByDateAndTime = "booking_date.asc,booking_time.asc"
	preferRepresent    = "return=representation"
)

// Client клиент хостингового хранилища записей (REST-диалект PostgREST)
// Повторов нет: ошибка любого вызова сразу возвращается вызывающей стороне
type Client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента хранилища
// timeout = 0 означает отсутствие клиентского таймаута
func NewClient(baseURL, table, apiKey string, timeout time.Duration, log Logger) *Client {
	return &Client{
		endpoint: strings.TrimRight(baseURL, "/") + restPrefix + table,
		apiKey:   apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// List возвращает все записи, упорядоченные по дате и времени начала
func (c *Client) List(ctx context.Context) ([]*domain.Booking, error) {
	query := url.Values{}
	query.Set("select", "*")
	query.Set("order", orderByDateAndTime)

	var records []Record
	if err := c.do(ctx, http.MethodGet, query, nil, &records); err != nil {
		return nil, err
	}

	bookings := make([]*domain.Booking, 0, len(records))
	for _, r := range records {
		bookings = append(bookings, r.ToDomain())
	}
	return bookings, nil
}

// GetByID получает запись по id
func (c *Client) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := url.Values{}
	query.Set("select", "*")
	query.Set("id", "eq."+id)

	var records []Record
	if err := c.do(ctx, http.MethodGet, query, nil, &records); err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrBookingNotFound
	}
	return records[0].ToDomain(), nil
}

// Create вставляет запись и возвращает её с назначенными id и created_at
func (c *Client) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	var records []Record
	if err := c.do(ctx, http.MethodPost, nil, []Record{FromDomain(booking)}, &records); err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: insert returned no rows", ErrInvalidResponse)
	}

	c.log.Info("recordstore: created booking id=%s", records[0].ID)
	return records[0].ToDomain(), nil
}

// Update частично обновляет запись
func (c *Client) Update(ctx context.Context, id string, patch domain.BookingPatch) error {
	if patch.IsEmpty() {
		return ErrEmptyPatch
	}
	return c.mutate(ctx, http.MethodPatch, id, FromPatch(patch))
}

// UpdateStatus обновляет статус записи
func (c *Client) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	return c.Update(ctx, id, domain.BookingPatch{Status: &status})
}

// Delete удаляет запись без возможности восстановления
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.mutate(ctx, http.MethodDelete, id, nil)
}

// mutate выполняет PATCH/DELETE по id; пустой ответ значит, что записи не было
func (c *Client) mutate(ctx context.Context, method, id string, body interface{}) error {
	query := url.Values{}
	query.Set("id", "eq."+id)

	var records []Record
	if err := c.do(ctx, method, query, body, &records); err != nil {
		return err
	}
	if len(records) == 0 {
		return ErrBookingNotFound
	}
	return nil
}

func (c *Client) do(ctx context.Context, method string, query url.Values, body, out interface{}) error {
	target := c.endpoint
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if method != http.MethodGet {
		req.Header.Set("Prefer", preferRepresent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("recordstore: %s %s failed: %v", method, c.endpoint, err)
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		// Продолжаем обработку
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: status %d", ErrUnauthorized, resp.StatusCode)
	default:
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, readError(resp.Body))
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return nil
}

func readError(body io.Reader) string {
	raw, _ := io.ReadAll(io.LimitReader(body, 4096))

	var e ErrorResponse
	if err := json.Unmarshal(raw, &e); err == nil && e.Message != "" {
		return e.Message
	}
	return string(raw)
}
