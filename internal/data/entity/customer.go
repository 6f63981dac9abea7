package entity

import "github.com/google/uuid"

type Customer struct {
	Base
	UserID  uuid.UUID `db:"user_id"`
	Phone   *string   `db:"phone"`
	Address *string   `db:"address"`
}
