package model

import "time"

// RiwayatTransaksi is an append-only transaction history record. Rows are
// written by the booking event consumer; no update or delete path exists.
type RiwayatTransaksi struct {
	ID        uint64    `json:"id"`
	UserID    uint64    `json:"user_id"`
	BookingID uint64    `json:"booking_id"`
	Amount    int64     `json:"amount"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}
