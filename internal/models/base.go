package models

import (
	"time"

	"kexpay/internal/uuid"
)

// Base contains the identity columns shared by every record.
type Base struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// Stamp assigns a fresh UUIDv7 and creation time to records that have none.
func (b *Base) Stamp(now time.Time) {
	if b.ID == "" {
		b.ID = uuid.New()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
}
