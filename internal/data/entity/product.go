package entity

import "github.com/google/uuid"

type ProductCategory struct {
	Base
	Name        string  `db:"name"`
	Description *string `db:"description"`
}

// Product stock is never negative; decrements go through a conditional
// update guarded by the remaining stock.
type Product struct {
	Base
	SellerID    uuid.UUID `db:"seller_id"`
	CategoryID  uuid.UUID `db:"category_id"`
	Name        string    `db:"name"`
	Description *string   `db:"description"`
	Price       float64   `db:"price"`
	Stock       int       `db:"stock"`
	ImageURL    *string   `db:"image_url"`
	IsActive    bool      `db:"is_active"`
}
