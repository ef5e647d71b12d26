package model

import "time"

// Notifikasi is an in-app notification for a single user. Read defaults
// to false and flips to true via the mark-as-read endpoint.
type Notifikasi struct {
	ID        uint64    `json:"id"`
	UserID    uint64    `json:"user_id"`
	Title     string    `json:"title"`
	Body      string    `json:"body,omitempty"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}
