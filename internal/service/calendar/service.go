package calendar

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// Service открывает свежую доску на каждую операцию администратора
type Service struct {
	store BookingStore
	axis  Axis
	log   Logger
}

// NewService создает сервис календаря
func NewService(store BookingStore, axis Axis, log Logger) *Service {
	return &Service{
		store: store,
		axis:  axis,
		log:   log,
	}
}

// Axis временная ось календаря
func (s *Service) Axis() Axis {
	return s.axis
}

// Open создает доску и загружает в неё все бронирования
func (s *Service) Open(ctx context.Context) (*Board, error) {
	board := NewBoard(s.store, s.axis, s.log)
	if err := board.Reload(ctx); err != nil {
		return nil, err
	}
	return board, nil
}

// Week сетка недели, содержащей ref
func (s *Service) Week(ctx context.Context, ref time.Time) (*domain.Grid, error) {
	board, err := s.Open(ctx)
	if err != nil {
		return nil, err
	}
	return board.Grid(WeekDays(ref)), nil
}

// SetStatus см. Board.SetStatus
func (s *Service) SetStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	board, err := s.Open(ctx)
	if err != nil {
		return nil, err
	}
	return board.SetStatus(ctx, id, status)
}

// Move см. Board.Move
func (s *Service) Move(ctx context.Context, id, date, startTime string, durationMinutes int) (*domain.Booking, error) {
	board, err := s.Open(ctx)
	if err != nil {
		return nil, err
	}
	return board.Move(ctx, id, date, startTime, durationMinutes)
}

// Resize см. Board.Resize
func (s *Service) Resize(ctx context.Context, id string, durationMinutes int) (*domain.Booking, error) {
	board, err := s.Open(ctx)
	if err != nil {
		return nil, err
	}
	return board.Resize(ctx, id, durationMinutes)
}

// Remove см. Board.Remove
func (s *Service) Remove(ctx context.Context, id string) error {
	board, err := s.Open(ctx)
	if err != nil {
		return err
	}
	return board.Remove(ctx, id)
}

// Select выбирает бронирование на свежей доске (карточка деталей)
func (s *Service) Select(ctx context.Context, id string) (*domain.Booking, error) {
	board, err := s.Open(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := board.Select(id); err != nil {
		return nil, err
	}
	return board.Selected(), nil
}
