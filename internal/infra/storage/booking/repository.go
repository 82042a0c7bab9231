package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/psqlbuilder"
)

const tableBookings = "bookings"

// Дата и время читаются текстом: доменная модель хранит их в том виде, в каком их отдало хранилище
var bookingColumns = []string{
	"id",
	"service_name",
	"customer_name",
	"customer_phone",
	"customer_email",
	"booking_date::text",
	"booking_time::text",
	"duration",
	"status",
	"notes",
	"created_at",
}

// Repository репозиторий для работы с бронированиями в PostgreSQL
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List возвращает все бронирования, упорядоченные по дате и времени начала
func (r *Repository) List(ctx context.Context) ([]*domain.Booking, error) {
	query, args, err := psqlbuilder.Select(bookingColumns...).
		From(tableBookings).
		OrderBy("booking_date ASC", "booking_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query, args, err := psqlbuilder.Select(bookingColumns...).
		From(tableBookings).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// Create создает новое бронирование
// ID и created_at назначает база
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	query, args, err := psqlbuilder.Insert(tableBookings).
		Columns(
			"service_name",
			"customer_name",
			"customer_phone",
			"customer_email",
			"booking_date",
			"booking_time",
			"duration",
			"status",
			"notes",
		).
		Values(
			booking.ServiceName,
			booking.CustomerName,
			booking.CustomerPhone,
			booking.CustomerEmail,
			booking.BookingDate,
			booking.BookingTime,
			booking.DurationMinutes,
			booking.Status,
			booking.Notes,
		).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	created := booking.Clone()
	var createdAt sql.NullTime
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&created.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	created.CreatedAt = createdAt.Time

	return created, nil
}

// Update частично обновляет бронирование (дата, время, длительность, статус)
func (r *Repository) Update(ctx context.Context, id string, patch domain.BookingPatch) error {
	set := patchClauses(patch)
	if len(set) == 0 {
		return ErrEmptyPatch
	}

	query, args, err := psqlbuilder.Update(tableBookings).
		SetMap(set).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	return r.exec(ctx, "Update", query, args)
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	query, args, err := psqlbuilder.Update(tableBookings).
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.exec(ctx, "UpdateStatus", query, args)
}

// Delete удаляет бронирование (физическое удаление, без возможности восстановления)
func (r *Repository) Delete(ctx context.Context, id string) error {
	query, args, err := psqlbuilder.Delete(tableBookings).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	return r.exec(ctx, "Delete", query, args)
}

// exec выполняет изменяющий запрос и проверяет, что строка существовала
func (r *Repository) exec(ctx context.Context, op, query string, args []interface{}) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

func patchClauses(patch domain.BookingPatch) map[string]interface{} {
	set := make(map[string]interface{}, 4)
	if patch.BookingDate != nil {
		set["booking_date"] = *patch.BookingDate
	}
	if patch.BookingTime != nil {
		set["booking_time"] = *patch.BookingTime
	}
	if patch.DurationMinutes != nil {
		set["duration"] = *patch.DurationMinutes
	}
	if patch.Status != nil {
		set["status"] = string(*patch.Status)
	}
	return set
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		booking   domain.Booking
		duration  sql.NullInt64
		createdAt sql.NullTime
	)

	err := row.Scan(
		&booking.ID,
		&booking.ServiceName,
		&booking.CustomerName,
		&booking.CustomerPhone,
		&booking.CustomerEmail,
		&booking.BookingDate,
		&booking.BookingTime,
		&duration,
		&booking.Status,
		&booking.Notes,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	booking.DurationMinutes = int(duration.Int64)
	booking.CreatedAt = createdAt.Time

	return &booking, nil
}
