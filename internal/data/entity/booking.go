package entity

import (
	"time"

	"github.com/google/uuid"
)

// Booking reserves a walker service for a customer on a concrete date
// and time range. Times are zero-padded "HH:MM" strings; the status
// mirrors the service status enum.
type Booking struct {
	Base
	CustomerID uuid.UUID     `db:"customer_id"`
	WalkerID   uuid.UUID     `db:"walker_id"`
	ServiceID  uuid.UUID     `db:"service_id"`
	Date       time.Time     `db:"date"`
	StartTime  string        `db:"start_time"`
	EndTime    string        `db:"end_time"`
	TotalPrice float64       `db:"total_price"`
	Status     ServiceStatus `db:"status"`
	Notes      *string       `db:"notes"`
}
