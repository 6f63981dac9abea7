package repository

import (
	"context"
	"fmt"

	"petconnect/internal/data/entity"
	"petconnect/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ScheduleRepository interface {
	Create(ctx context.Context, schedule *entity.Schedule) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Schedule, error)
	FindByWalker(ctx context.Context, walkerID uuid.UUID) ([]*entity.Schedule, error)
	// FindCovering returns an active schedule row for the walker/day that
	// fully contains [start, end), or nil when the walker does not work
	// that window. Lexical comparison is valid because times are stored
	// zero-padded.
	FindCovering(ctx context.Context, walkerID uuid.UUID, dayOfWeek int, start, end string) (*entity.Schedule, error)
	// HasOverlapping reports whether an active schedule row for the
	// walker/day intersects [start, end). Used to keep a walker's windows
	// disjoint. exclude skips one row so updating a window does not
	// collide with itself; pass uuid.Nil to check against all rows.
	HasOverlapping(ctx context.Context, walkerID uuid.UUID, dayOfWeek int, start, end string, exclude uuid.UUID) (bool, error)
	Update(ctx context.Context, schedule *entity.Schedule) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type scheduleRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewScheduleRepository(db database.PgxIface, log *zap.Logger) ScheduleRepository {
	return &scheduleRepository{
		db:  db,
		log: log.With(zap.String("repository", "schedule")),
	}
}

const scheduleColumns = `id, walker_id, day_of_week, start_time, end_time, is_active, created_at, updated_at`

func (r *scheduleRepository) Create(ctx context.Context, schedule *entity.Schedule) error {
	query := `
		INSERT INTO schedules (id, walker_id, day_of_week, start_time, end_time, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		schedule.ID,
		schedule.WalkerID,
		schedule.DayOfWeek,
		schedule.StartTime,
		schedule.EndTime,
		schedule.IsActive,
		schedule.CreatedAt,
		schedule.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create schedule",
			zap.Error(err),
			zap.String("walker_id", schedule.WalkerID.String()),
			zap.Int("day_of_week", schedule.DayOfWeek),
		)
		return fmt.Errorf("create schedule for walker %s: %w", schedule.WalkerID.String(), err)
	}

	return nil
}

func (r *scheduleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Schedule, error) {
	query := `SELECT ` + scheduleColumns + ` FROM schedules WHERE id = $1`

	var schedule entity.Schedule
	err := r.db.QueryRow(ctx, query, id).Scan(
		&schedule.ID,
		&schedule.WalkerID,
		&schedule.DayOfWeek,
		&schedule.StartTime,
		&schedule.EndTime,
		&schedule.IsActive,
		&schedule.CreatedAt,
		&schedule.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find schedule by ID",
			zap.Error(err),
			zap.String("schedule_id", id.String()),
		)
		return nil, fmt.Errorf("find schedule by ID %s: %w", id.String(), err)
	}

	return &schedule, nil
}

func (r *scheduleRepository) FindByWalker(ctx context.Context, walkerID uuid.UUID) ([]*entity.Schedule, error) {
	query := `
		SELECT ` + scheduleColumns + `
		FROM schedules
		WHERE walker_id = $1
		ORDER BY day_of_week, start_time
	`

	rows, err := r.db.Query(ctx, query, walkerID)
	if err != nil {
		r.log.Error("Failed to list schedules by walker",
			zap.Error(err),
			zap.String("walker_id", walkerID.String()),
		)
		return nil, fmt.Errorf("list schedules for walker %s: %w", walkerID.String(), err)
	}
	defer rows.Close()

	var schedules []*entity.Schedule
	for rows.Next() {
		var schedule entity.Schedule
		err := rows.Scan(
			&schedule.ID,
			&schedule.WalkerID,
			&schedule.DayOfWeek,
			&schedule.StartTime,
			&schedule.EndTime,
			&schedule.IsActive,
			&schedule.CreatedAt,
			&schedule.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan schedule row", zap.Error(err))
			return nil, fmt.Errorf("scan schedule row: %w", err)
		}
		schedules = append(schedules, &schedule)
	}

	return schedules, nil
}

func (r *scheduleRepository) FindCovering(ctx context.Context, walkerID uuid.UUID, dayOfWeek int, start, end string) (*entity.Schedule, error) {
	query := `
		SELECT ` + scheduleColumns + `
		FROM schedules
		WHERE walker_id = $1
		  AND day_of_week = $2
		  AND is_active = TRUE
		  AND start_time <= $3
		  AND end_time >= $4
		LIMIT 1
	`

	var schedule entity.Schedule
	err := r.db.QueryRow(ctx, query, walkerID, dayOfWeek, start, end).Scan(
		&schedule.ID,
		&schedule.WalkerID,
		&schedule.DayOfWeek,
		&schedule.StartTime,
		&schedule.EndTime,
		&schedule.IsActive,
		&schedule.CreatedAt,
		&schedule.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find covering schedule",
			zap.Error(err),
			zap.String("walker_id", walkerID.String()),
			zap.Int("day_of_week", dayOfWeek),
		)
		return nil, fmt.Errorf("find covering schedule for walker %s: %w", walkerID.String(), err)
	}

	return &schedule, nil
}

func (r *scheduleRepository) HasOverlapping(ctx context.Context, walkerID uuid.UUID, dayOfWeek int, start, end string, exclude uuid.UUID) (bool, error) {
	// Same three range conditions the booking overlap check uses.
	query := `
		SELECT EXISTS (
			SELECT 1 FROM schedules
			WHERE walker_id = $1
			  AND day_of_week = $2
			  AND is_active = true
			  AND id <> $5
			  AND (
			        (start_time <= $3 AND end_time > $3)
			     OR (start_time < $4 AND end_time >= $4)
			     OR (start_time >= $3 AND end_time <= $4)
			  )
		)
	`

	var exists bool
	if err := r.db.QueryRow(ctx, query, walkerID, dayOfWeek, start, end, exclude).Scan(&exists); err != nil {
		r.log.Error("Failed to check schedule overlap",
			zap.Error(err),
			zap.String("walker_id", walkerID.String()),
		)
		return false, fmt.Errorf("check schedule overlap for walker %s: %w", walkerID.String(), err)
	}

	return exists, nil
}

func (r *scheduleRepository) Update(ctx context.Context, schedule *entity.Schedule) error {
	query := `
		UPDATE schedules
		SET day_of_week = $2, start_time = $3, end_time = $4, is_active = $5, updated_at = $6
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		schedule.ID,
		schedule.DayOfWeek,
		schedule.StartTime,
		schedule.EndTime,
		schedule.IsActive,
		schedule.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update schedule",
			zap.Error(err),
			zap.String("schedule_id", schedule.ID.String()),
		)
		return fmt.Errorf("update schedule %s: %w", schedule.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("schedule %s not found", schedule.ID.String())
	}

	return nil
}

func (r *scheduleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM schedules WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete schedule",
			zap.Error(err),
			zap.String("schedule_id", id.String()),
		)
		return fmt.Errorf("delete schedule %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("schedule %s not found", id.String())
	}

	return nil
}
