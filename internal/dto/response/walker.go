package response

import (
	"time"

	"petconnect/internal/data/entity"
)

type Walker struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     *string   `json:"description,omitempty"`
	Phone           *string   `json:"phone,omitempty"`
	Address         *string   `json:"address,omitempty"`
	ExperienceYears int       `json:"experienceYears"`
	PricePerHour    float64   `json:"pricePerHour"`
	IsAvailable     bool      `json:"isAvailable"`
	IsApproved      bool      `json:"isApproved"`
	WhatsApp        *string   `json:"whatsapp,omitempty"`
	WhatsAppEnabled bool      `json:"whatsappEnabled"`
	CreatedAt       time.Time `json:"createdAt"`
}

func FromWalker(walker *entity.Walker) Walker {
	out := Walker{
		ID:              walker.ID.String(),
		Name:            walker.Name,
		Description:     walker.Description,
		Phone:           walker.Phone,
		Address:         walker.Address,
		ExperienceYears: walker.ExperienceYears,
		PricePerHour:    walker.PricePerHour,
		IsAvailable:     walker.IsAvailable,
		IsApproved:      walker.IsApproved,
		WhatsAppEnabled: walker.WhatsAppEnabled,
		CreatedAt:       walker.CreatedAt,
	}
	// The contact number only leaves the API when sharing is on.
	if walker.WhatsAppEnabled {
		out.WhatsApp = walker.WhatsApp
	}
	return out
}
