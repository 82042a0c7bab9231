package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/service/bookings/models"
)

// Названия операций для метрик
const (
	opUpdateStatus = "update_status"
	opReschedule   = "reschedule"
	opResize       = "resize"
	opDelete       = "delete"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	catalog     Catalog
	metrics     OperationObserver
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	catalog Catalog,
	metrics OperationObserver,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		catalog:     catalog,
		metrics:     metrics,
		logger:      logger,
	}
}

// ListBookings загружает все бронирования (полная перезагрузка, без кэша)
func (s *Service) ListBookings(ctx context.Context) ([]*domain.Booking, error) {
	bookings, err := s.bookingRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListBookings: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListBookings - repository error: %v", ErrInternal, err)
	}
	return bookings, nil
}

// List возвращает все бронирования в порядке даты
func (s *Service) List(ctx context.Context) (*models.BookingListResponse, error) {
	bookings, err := s.ListBookings(ctx)
	if err != nil {
		return nil, err
	}

	resp := &models.BookingListResponse{
		Bookings: make([]models.BookingResponse, 0, len(bookings)),
	}
	for _, b := range bookings {
		resp.Bookings = append(resp.Bookings, *s.Describe(b))
	}

	s.logger.Info("List: fetched %d bookings", len(bookings))
	return resp, nil
}

// Describe собирает DTO с итоговой суммой по каталогу
func (s *Service) Describe(b *domain.Booking) *models.BookingResponse {
	label := b.ServiceName
	if service, found := s.catalog.Lookup(b.ServiceName); found {
		label = service.DisplayName
	}
	return models.FromDomainBooking(b, label, s.catalog.PriceOf(b.ServiceName))
}

// UpdateStatus устанавливает любой из шести статусов независимо от текущего
func (s *Service) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (err error) {
	defer func() { s.metrics.ObserveBookingOperation(opUpdateStatus, err) }()

	if !status.IsValid() {
		s.logger.Warn("UpdateStatus: invalid status=%q for booking id=%s", status, id)
		return fmt.Errorf("%w: %v", ErrInvalidInput, domain.ErrInvalidStatus)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, status); err != nil {
		return s.repositoryError("UpdateStatus", id, err)
	}

	s.logger.Info("UpdateStatus: booking id=%s -> %s", id, status)
	return nil
}

// Reschedule сохраняет новые дату, время и длительность (перетаскивание в календаре)
// Пересечения с другими записями не проверяются
func (s *Service) Reschedule(ctx context.Context, id, date, startTime string, durationMinutes int) (err error) {
	defer func() { s.metrics.ObserveBookingOperation(opReschedule, err) }()

	if err := domain.ValidateSchedule(date, startTime, durationMinutes); err != nil {
		s.logger.Warn("Reschedule: invalid schedule for booking id=%s: %v", id, err)
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	patch := domain.BookingPatch{
		BookingDate:     &date,
		BookingTime:     &startTime,
		DurationMinutes: &durationMinutes,
	}
	if err := s.bookingRepo.Update(ctx, id, patch); err != nil {
		return s.repositoryError("Reschedule", id, err)
	}

	s.logger.Info("Reschedule: booking id=%s moved to %s %s (%d min)", id, date, startTime, durationMinutes)
	return nil
}

// Resize сохраняет только новую длительность
func (s *Service) Resize(ctx context.Context, id string, durationMinutes int) (err error) {
	defer func() { s.metrics.ObserveBookingOperation(opResize, err) }()

	if durationMinutes <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidInput, domain.ErrInvalidDuration)
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return s.repositoryError("Resize", id, err)
	}

	// Запись с битым временем начала всё равно можно растянуть, проверка полуночи невозможна
	if start, parseErr := booking.StartTime(); parseErr == nil {
		if err := domain.ValidateDuration(start, durationMinutes); err != nil {
			s.logger.Warn("Resize: invalid duration=%d for booking id=%s: %v", durationMinutes, id, err)
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	if err := s.bookingRepo.Update(ctx, id, domain.BookingPatch{DurationMinutes: &durationMinutes}); err != nil {
		return s.repositoryError("Resize", id, err)
	}

	s.logger.Info("Resize: booking id=%s duration=%d", id, durationMinutes)
	return nil
}

// Delete удаляет бронирование без возможности восстановления
func (s *Service) Delete(ctx context.Context, id string) (err error) {
	defer func() { s.metrics.ObserveBookingOperation(opDelete, err) }()

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		return s.repositoryError("Delete", id, err)
	}

	s.logger.Info("Delete: booking id=%s deleted", id)
	return nil
}

func (s *Service) repositoryError(op, id string, err error) error {
	if errors.Is(err, domain.ErrBookingNotFound) {
		s.logger.Warn("%s: booking id=%s not found", op, id)
		return ErrBookingNotFound
	}
	s.logger.Error("%s: repository error for booking id=%s: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
