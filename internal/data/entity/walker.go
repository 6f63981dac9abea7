package entity

import "github.com/google/uuid"

type Walker struct {
	Base
	UserID          uuid.UUID `db:"user_id"`
	Name            string    `db:"name"`
	Description     *string   `db:"description"`
	Phone           *string   `db:"phone"`
	Address         *string   `db:"address"`
	ExperienceYears int       `db:"experience_years"`
	PricePerHour    float64   `db:"price_per_hour"`
	IsAvailable     bool      `db:"is_available"`
	IsApproved      bool      `db:"is_approved"`
	WhatsApp        *string   `db:"whatsapp"`
	WhatsAppEnabled bool      `db:"whatsapp_enabled"`
}
