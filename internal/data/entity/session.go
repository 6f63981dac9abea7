package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is a refresh-token record. TokenHash holds the SHA-256 of
// the raw token; the raw value is never stored.
type Session struct {
	BaseSimple
	UserID    uuid.UUID  `db:"user_id"`
	TokenHash string     `db:"token_hash"`
	ExpiresAt time.Time  `db:"expires_at"`
	RevokedAt *time.Time `db:"revoked_at"`
}
