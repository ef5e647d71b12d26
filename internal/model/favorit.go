package model

import "time"

// Favorit marks a kost as saved by a user. At most one row exists per
// (user, kost) pair; the unique index in the schema enforces it.
type Favorit struct {
	ID        uint64    `json:"id"`
	UserID    uint64    `json:"user_id"`
	KostID    uint64    `json:"kost_id"`
	CreatedAt time.Time `json:"createdAt"`
}
