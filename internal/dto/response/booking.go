package response

import (
	"time"

	"petconnect/internal/data/entity"
)

type Booking struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customerId"`
	WalkerID   string    `json:"walkerId"`
	ServiceID  string    `json:"serviceId"`
	Date       string    `json:"date"`
	StartTime  string    `json:"startTime"`
	EndTime    string    `json:"endTime"`
	TotalPrice float64   `json:"totalPrice"`
	Status     string    `json:"status"`
	Notes      *string   `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Availability reports whether a slot can be booked and why not when
// it cannot.
type Availability struct {
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

func FromBooking(booking *entity.Booking) Booking {
	return Booking{
		ID:         booking.ID.String(),
		CustomerID: booking.CustomerID.String(),
		WalkerID:   booking.WalkerID.String(),
		ServiceID:  booking.ServiceID.String(),
		Date:       booking.Date.Format("2006-01-02"),
		StartTime:  booking.StartTime,
		EndTime:    booking.EndTime,
		TotalPrice: booking.TotalPrice,
		Status:     string(booking.Status),
		Notes:      booking.Notes,
		CreatedAt:  booking.CreatedAt,
		UpdatedAt:  booking.UpdatedAt,
	}
}

func FromBookings(bookings []*entity.Booking) []Booking {
	out := make([]Booking, 0, len(bookings))
	for _, booking := range bookings {
		out = append(out, FromBooking(booking))
	}
	return out
}
