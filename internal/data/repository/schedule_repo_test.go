package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"go.uber.org/zap"
)

func TestScheduleHasOverlapping(t *testing.T) {
	t.Run("only active windows block, excluded row is skipped", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		if err != nil {
			t.Fatalf("pgxmock.NewPool: %v", err)
		}
		defer mock.Close()

		walkerID := uuid.New()
		scheduleID := uuid.New()

		mock.ExpectQuery(`SELECT EXISTS \(\s*SELECT 1 FROM schedules\s*WHERE walker_id = \$1\s*AND day_of_week = \$2\s*AND is_active = true\s*AND id <> \$5`).
			WithArgs(walkerID, 1, "09:00", "11:00", scheduleID).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

		repo := NewScheduleRepository(mock, zap.NewNop())
		overlaps, err := repo.HasOverlapping(context.Background(), walkerID, 1, "09:00", "11:00", scheduleID)
		if err != nil {
			t.Fatalf("HasOverlapping: %v", err)
		}
		if overlaps {
			t.Error("expected no overlap")
		}

		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet expectations: %v", err)
		}
	})

	t.Run("reports a conflicting window", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		if err != nil {
			t.Fatalf("pgxmock.NewPool: %v", err)
		}
		defer mock.Close()

		walkerID := uuid.New()

		mock.ExpectQuery("SELECT EXISTS").
			WithArgs(walkerID, 1, "09:00", "11:00", uuid.Nil).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

		repo := NewScheduleRepository(mock, zap.NewNop())
		overlaps, err := repo.HasOverlapping(context.Background(), walkerID, 1, "09:00", "11:00", uuid.Nil)
		if err != nil {
			t.Fatalf("HasOverlapping: %v", err)
		}
		if !overlaps {
			t.Error("expected overlap")
		}
	})
}
