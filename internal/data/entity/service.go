package entity

import "github.com/google/uuid"

// ServiceStatus tracks where a walker service sits in its booking
// lifecycle. Bookings mirror the same values.
type ServiceStatus string

const (
	ServiceStatusAvailable  ServiceStatus = "AVAILABLE"
	ServiceStatusBooked     ServiceStatus = "BOOKED"
	ServiceStatusInProgress ServiceStatus = "IN_PROGRESS"
	ServiceStatusCompleted  ServiceStatus = "COMPLETED"
	ServiceStatusCancelled  ServiceStatus = "CANCELLED"
)

// statusTransitions is the full transition table. AVAILABLE, COMPLETED
// and CANCELLED have no outward transitions.
var statusTransitions = map[ServiceStatus][]ServiceStatus{
	ServiceStatusAvailable:  {},
	ServiceStatusBooked:     {ServiceStatusInProgress, ServiceStatusCancelled},
	ServiceStatusInProgress: {ServiceStatusCompleted, ServiceStatusCancelled},
	ServiceStatusCompleted:  {},
	ServiceStatusCancelled:  {},
}

// CanTransition reports whether from -> to is listed in the transition
// table. Any pair not listed is rejected.
func CanTransition(from, to ServiceStatus) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ParseServiceStatus validates a status string from a request body.
func ParseServiceStatus(value string) (ServiceStatus, bool) {
	switch ServiceStatus(value) {
	case ServiceStatusAvailable, ServiceStatusBooked, ServiceStatusInProgress,
		ServiceStatusCompleted, ServiceStatusCancelled:
		return ServiceStatus(value), true
	default:
		return "", false
	}
}

type Service struct {
	Base
	WalkerID        uuid.UUID     `db:"walker_id"`
	Name            string        `db:"name"`
	Description     *string       `db:"description"`
	Price           float64       `db:"price"`
	DurationMinutes int           `db:"duration_minutes"`
	Status          ServiceStatus `db:"status"`
	IsActive        bool          `db:"is_active"`
}
