package entity

import "github.com/google/uuid"

type Seller struct {
	Base
	UserID      uuid.UUID `db:"user_id"`
	StoreName   string    `db:"store_name"`
	Description *string   `db:"description"`
	IsApproved  bool      `db:"is_approved"`
}
