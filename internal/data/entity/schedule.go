package entity

import "github.com/google/uuid"

// Schedule is a walker's recurring weekly availability window.
// StartTime and EndTime are zero-padded "HH:MM" strings; DayOfWeek
// runs 0 (Sunday) through 6 (Saturday).
type Schedule struct {
	Base
	WalkerID  uuid.UUID `db:"walker_id"`
	DayOfWeek int       `db:"day_of_week"`
	StartTime string    `db:"start_time"`
	EndTime   string    `db:"end_time"`
	IsActive  bool      `db:"is_active"`
}
