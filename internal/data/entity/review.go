package entity

import "github.com/google/uuid"

// Review targets exactly one of a product, a service or a walker.
type Review struct {
	Base
	UserID    uuid.UUID  `db:"user_id"`
	ProductID *uuid.UUID `db:"product_id"`
	ServiceID *uuid.UUID `db:"service_id"`
	WalkerID  *uuid.UUID `db:"walker_id"`
	Rating    int        `db:"rating"` // 1-5
	Comment   *string    `db:"comment"`
	IsActive  bool       `db:"is_active"`
}
