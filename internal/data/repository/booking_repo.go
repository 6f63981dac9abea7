package repository

import (
	"context"
	"fmt"
	"time"

	"petconnect/internal/data/entity"
	"petconnect/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// BookingFilter narrows booking listings by role scope and status.
type BookingFilter struct {
	CustomerID *uuid.UUID
	WalkerID   *uuid.UUID
	Status     *entity.ServiceStatus
}

type BookingRepository interface {
	// CreateReserving inserts the booking and flips the referenced
	// service to BOOKED in one transaction. The walker row is locked
	// FOR UPDATE first, which serializes concurrent bookings per walker,
	// and the overlap check is repeated under that lock; a competing
	// slot surfaces as ErrSlotTaken.
	CreateReserving(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	Find(ctx context.Context, filter BookingFilter, limit, offset int) ([]*entity.Booking, error)
	Count(ctx context.Context, filter BookingFilter) (int64, error)
	// HasOverlapping reports whether a non-cancelled booking for the
	// walker on the date intersects [start, end).
	HasOverlapping(ctx context.Context, walkerID uuid.UUID, date time.Time, start, end string) (bool, error)
	// UpdateStatusReleasing writes the booking status and, when release
	// is set, returns the service to AVAILABLE in the same transaction.
	UpdateStatusReleasing(ctx context.Context, bookingID uuid.UUID, status entity.ServiceStatus, serviceID uuid.UUID, release bool) error
	UpdateNotes(ctx context.Context, bookingID uuid.UUID, notes *string) error
	// DeleteReleasing removes the booking and returns the service to
	// AVAILABLE in one transaction.
	DeleteReleasing(ctx context.Context, bookingID, serviceID uuid.UUID) error
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, customer_id, walker_id, service_id, date, start_time, end_time, total_price, status, notes, created_at, updated_at`

// overlapCondition encodes the three OR-ed range checks: the requested
// start falls inside a booking, the requested end falls inside one, or
// the request fully contains one. Placeholders $3/$4 are start/end.
const overlapCondition = `(
	       (start_time <= $3 AND end_time > $3)
	    OR (start_time < $4 AND end_time >= $4)
	    OR (start_time >= $3 AND end_time <= $4)
	)`

func (r *bookingRepository) CreateReserving(ctx context.Context, booking *entity.Booking) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin booking transaction", zap.Error(err))
		return fmt.Errorf("begin booking transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// Serialize bookings per walker. Every writer passes through this
	// lock, so the overlap re-check below cannot race another insert.
	var lockedID uuid.UUID
	err = tx.QueryRow(ctx, `SELECT id FROM walkers WHERE id = $1 FOR UPDATE`, booking.WalkerID).Scan(&lockedID)
	if err == pgx.ErrNoRows {
		return fmt.Errorf("walker %s not found", booking.WalkerID.String())
	}
	if err != nil {
		r.log.Error("Failed to lock walker row",
			zap.Error(err),
			zap.String("walker_id", booking.WalkerID.String()),
		)
		return fmt.Errorf("lock walker %s: %w", booking.WalkerID.String(), err)
	}

	var exists bool
	overlapQuery := `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE walker_id = $1
			  AND date = $2
			  AND status IN ('BOOKED', 'IN_PROGRESS')
			  AND ` + overlapCondition + `
		)
	`
	if err := tx.QueryRow(ctx, overlapQuery, booking.WalkerID, booking.Date, booking.StartTime, booking.EndTime).Scan(&exists); err != nil {
		r.log.Error("Failed to re-check booking overlap",
			zap.Error(err),
			zap.String("walker_id", booking.WalkerID.String()),
		)
		return fmt.Errorf("re-check booking overlap: %w", err)
	}
	if exists {
		return ErrSlotTaken
	}

	insertQuery := `
		INSERT INTO bookings (id, customer_id, walker_id, service_id, date, start_time, end_time,
		                      total_price, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err = tx.Exec(ctx, insertQuery,
		booking.ID,
		booking.CustomerID,
		booking.WalkerID,
		booking.ServiceID,
		booking.Date,
		booking.StartTime,
		booking.EndTime,
		booking.TotalPrice,
		booking.Status,
		booking.Notes,
		booking.CreatedAt,
		booking.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to insert booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
		return fmt.Errorf("insert booking %s: %w", booking.ID.String(), err)
	}

	_, err = tx.Exec(ctx, `UPDATE services SET status = 'BOOKED', updated_at = NOW() WHERE id = $1`, booking.ServiceID)
	if err != nil {
		r.log.Error("Failed to mark service booked",
			zap.Error(err),
			zap.String("service_id", booking.ServiceID.String()),
		)
		return fmt.Errorf("mark service %s booked: %w", booking.ServiceID.String(), err)
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit booking transaction", zap.Error(err))
		return fmt.Errorf("commit booking transaction: %w", err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	var booking entity.Booking
	err := r.db.QueryRow(ctx, query, id).Scan(
		&booking.ID,
		&booking.CustomerID,
		&booking.WalkerID,
		&booking.ServiceID,
		&booking.Date,
		&booking.StartTime,
		&booking.EndTime,
		&booking.TotalPrice,
		&booking.Status,
		&booking.Notes,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return &booking, nil
}

func (r *bookingRepository) filterClause(filter BookingFilter) (string, []any) {
	clause := ""
	args := []any{}

	add := func(condition string, arg any) {
		args = append(args, arg)
		if clause == "" {
			clause = " WHERE "
		} else {
			clause += " AND "
		}
		clause += fmt.Sprintf(condition, len(args))
	}

	if filter.CustomerID != nil {
		add("customer_id = $%d", *filter.CustomerID)
	}
	if filter.WalkerID != nil {
		add("walker_id = $%d", *filter.WalkerID)
	}
	if filter.Status != nil {
		add("status = $%d", *filter.Status)
	}

	return clause, args
}

func (r *bookingRepository) Find(ctx context.Context, filter BookingFilter, limit, offset int) ([]*entity.Booking, error) {
	clause, args := r.filterClause(filter)
	args = append(args, limit, offset)
	query := fmt.Sprintf(`SELECT `+bookingColumns+` FROM bookings%s ORDER BY date, start_time LIMIT $%d OFFSET $%d`,
		clause, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to list bookings", zap.Error(err))
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		var booking entity.Booking
		err := rows.Scan(
			&booking.ID,
			&booking.CustomerID,
			&booking.WalkerID,
			&booking.ServiceID,
			&booking.Date,
			&booking.StartTime,
			&booking.EndTime,
			&booking.TotalPrice,
			&booking.Status,
			&booking.Notes,
			&booking.CreatedAt,
			&booking.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, &booking)
	}

	return bookings, nil
}

func (r *bookingRepository) Count(ctx context.Context, filter BookingFilter) (int64, error) {
	clause, args := r.filterClause(filter)
	query := `SELECT COUNT(*) FROM bookings` + clause

	var count int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		r.log.Error("Failed to count bookings", zap.Error(err))
		return 0, fmt.Errorf("count bookings: %w", err)
	}

	return count, nil
}

func (r *bookingRepository) HasOverlapping(ctx context.Context, walkerID uuid.UUID, date time.Time, start, end string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE walker_id = $1
			  AND date = $2
			  AND status IN ('BOOKED', 'IN_PROGRESS')
			  AND ` + overlapCondition + `
		)
	`

	var exists bool
	if err := r.db.QueryRow(ctx, query, walkerID, date, start, end).Scan(&exists); err != nil {
		r.log.Error("Failed to check booking overlap",
			zap.Error(err),
			zap.String("walker_id", walkerID.String()),
		)
		return false, fmt.Errorf("check booking overlap for walker %s: %w", walkerID.String(), err)
	}

	return exists, nil
}

func (r *bookingRepository) UpdateStatusReleasing(ctx context.Context, bookingID uuid.UUID, status entity.ServiceStatus, serviceID uuid.UUID, release bool) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin status transaction", zap.Error(err))
		return fmt.Errorf("begin status transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	result, err := tx.Exec(ctx, `UPDATE bookings SET status = $2, updated_at = NOW() WHERE id = $1`, bookingID, status)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update booking %s status to %s: %w", bookingID.String(), string(status), err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", bookingID.String())
	}

	if release {
		_, err = tx.Exec(ctx, `UPDATE services SET status = 'AVAILABLE', updated_at = NOW() WHERE id = $1`, serviceID)
		if err != nil {
			r.log.Error("Failed to release service",
				zap.Error(err),
				zap.String("service_id", serviceID.String()),
			)
			return fmt.Errorf("release service %s: %w", serviceID.String(), err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit status transaction", zap.Error(err))
		return fmt.Errorf("commit status transaction: %w", err)
	}

	return nil
}

func (r *bookingRepository) UpdateNotes(ctx context.Context, bookingID uuid.UUID, notes *string) error {
	query := `UPDATE bookings SET notes = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, bookingID, notes)
	if err != nil {
		r.log.Error("Failed to update booking notes",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return fmt.Errorf("update booking %s notes: %w", bookingID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", bookingID.String())
	}

	return nil
}

func (r *bookingRepository) DeleteReleasing(ctx context.Context, bookingID, serviceID uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin delete transaction", zap.Error(err))
		return fmt.Errorf("begin delete transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `UPDATE services SET status = 'AVAILABLE', updated_at = NOW() WHERE id = $1`, serviceID)
	if err != nil {
		r.log.Error("Failed to release service",
			zap.Error(err),
			zap.String("service_id", serviceID.String()),
		)
		return fmt.Errorf("release service %s: %w", serviceID.String(), err)
	}

	result, err := tx.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, bookingID)
	if err != nil {
		r.log.Error("Failed to delete booking",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return fmt.Errorf("delete booking %s: %w", bookingID.String(), err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", bookingID.String())
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit delete transaction", zap.Error(err))
		return fmt.Errorf("commit delete transaction: %w", err)
	}

	return nil
}
