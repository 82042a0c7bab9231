package create_booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/ptr"
)

const opCreate = "create"

// UseCase use case для создания бронирования (публичная форма и клик по слоту в календаре)
type UseCase struct {
	bookingRepo BookingRepository
	catalog     Catalog
	metrics     OperationObserver
	location    *time.Location
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	catalog Catalog,
	metrics OperationObserver,
	location *time.Location,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.UTC
	}
	return &UseCase{
		bookingRepo: bookingRepo,
		catalog:     catalog,
		metrics:     metrics,
		location:    location,
		logger:      logger,
	}
}

// Execute выполняет use case создания бронирования
// Пересечения с существующими записями не проверяются
func (uc *UseCase) Execute(ctx context.Context, req *Request) (resp *Response, err error) {
	defer func() { uc.metrics.ObserveBookingOperation(opCreate, err) }()

	uc.logger.Info("CreateBooking: source=%s, service=%q, date=%s, time=%s",
		req.Source, req.ServiceName, req.Date, req.StartTime)

	// 1. Валидация обязательных полей
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Услуга из каталога (может отсутствовать)
	service, found := uc.catalog.Lookup(req.ServiceName)
	if !found {
		uc.logger.Warn("CreateBooking: service %q is not in the catalog, using default duration", req.ServiceName)
	}

	// 3. Расписание
	date, startTime, duration := strings.TrimSpace(req.Date), strings.TrimSpace(req.StartTime), req.DurationMinutes
	if req.Slot != nil {
		date, startTime, duration, err = slotSchedule(req.Slot, uc.location)
		if err != nil {
			uc.logger.Warn("CreateBooking: invalid slot: %v", err)
			return nil, err
		}
	}
	if duration == 0 {
		duration = domain.DefaultDurationMinutes
		if catalogDuration, ok := uc.catalog.DurationOf(req.ServiceName); ok {
			duration = catalogDuration
		}
	}

	booking := &domain.Booking{
		ServiceName:     strings.TrimSpace(req.ServiceName),
		CustomerName:    strings.TrimSpace(req.CustomerName),
		CustomerPhone:   strings.TrimSpace(req.CustomerPhone),
		CustomerEmail:   ptr.StringOrNil(strings.TrimSpace(req.CustomerEmail)),
		BookingDate:     date,
		BookingTime:     startTime,
		DurationMinutes: duration,
		Status:          domain.StatusBooked,
		Notes:           ptr.StringOrNil(strings.TrimSpace(req.Notes)),
	}

	// 4. Нормализуем время к HH:MM и проверяем инварианты записи
	if start, parseErr := booking.StartTime(); parseErr == nil {
		booking.BookingTime = start.String()
	}
	if err := booking.Validate(); err != nil {
		uc.logger.Warn("CreateBooking: invalid booking: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 5. Сохраняем
	created, err := uc.bookingRepo.Create(ctx, booking)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to create booking: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s", created.ID)

	resp = &Response{
		ID:              created.ID,
		ServiceName:     created.ServiceName,
		ServiceLabel:    created.ServiceName,
		CustomerName:    created.CustomerName,
		CustomerPhone:   created.CustomerPhone,
		CustomerEmail:   created.CustomerEmail,
		BookingDate:     created.BookingDate,
		BookingTime:     created.BookingTime,
		DurationMinutes: created.DurationMinutes,
		Status:          string(created.Status),
		Notes:           created.Notes,
		Total:           uc.catalog.PriceOf(created.ServiceName),
		CreatedAt:       created.CreatedAt,
	}
	if found {
		resp.ServiceLabel = service.DisplayName
	}

	return resp, nil
}
