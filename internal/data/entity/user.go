package entity

import (
	"fmt"

	"github.com/google/uuid"
)

// Role is the closed set of account roles. Anything outside the four
// constants is rejected at the boundary; there is no silent fallback.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleSeller   Role = "SELLER"
	RoleWalker   Role = "WALKER"
	RoleCustomer Role = "CUSTOMER"
)

// ParseRole maps an input string to a Role. Unknown values are an
// error, never a default.
func ParseRole(value string) (Role, error) {
	switch Role(value) {
	case RoleAdmin, RoleSeller, RoleWalker, RoleCustomer:
		return Role(value), nil
	default:
		return "", fmt.Errorf("unknown role %q", value)
	}
}

// Actor is the authenticated identity handed to every service method.
type Actor struct {
	UserID uuid.UUID
	Role   Role
}

type User struct {
	Base
	Email         string  `db:"email"`
	PasswordHash  string  `db:"password"`
	Name          string  `db:"name"`
	Phone         *string `db:"phone"`
	Role          Role    `db:"role"`
	EmailVerified bool    `db:"email_verified"`
	IsActive      bool    `db:"is_active"`
}
