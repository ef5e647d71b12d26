package model

import "time"

// Kost is a boarding-house listing. Photos is an ordered list of image
// URLs stored as a JSON array column; the repository handles the
// (un)marshalling so callers always see a plain slice.
type Kost struct {
	ID          uint64    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Address     string    `json:"address"`
	Price       int64     `json:"price"`
	Photos      []string  `json:"photos"`
	Owner       string    `json:"owner,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// KostSummary is the subset of listing fields embedded into booking and
// favorite responses when the kost reference is populated.
type KostSummary struct {
	ID      uint64   `json:"id"`
	Title   string   `json:"title"`
	Price   int64    `json:"price"`
	Address string   `json:"address"`
	Photos  []string `json:"photos"`
}
