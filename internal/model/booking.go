package model

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"time"
)

// Booking statuses. A booking starts as pending and moves through the
// transition table below; terminal states accept no further moves.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
	StatusExpired   = "expired"
)

// transitions maps each status to the set of statuses it may move to.
var transitions = map[string][]string{
	StatusPending:   {StatusConfirmed, StatusCancelled, StatusExpired},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
	StatusCancelled: {},
	StatusCompleted: {},
	StatusExpired:   {},
}

// CanTransition reports whether a booking may move from one status to
// another. Setting the same status again is allowed (a no-op update).
func CanTransition(from, to string) bool {
	if from == to {
		return true
	}
	for _, t := range transitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

// Booking links a user to a kost (and optionally a room) for a date range
// with the pricing fields supplied by the client at creation time.
type Booking struct {
	ID               uint64     `json:"id"`
	UserID           uint64     `json:"user_id"`
	KostID           uint64     `json:"kost_id"`
	KamarID          *uint64    `json:"kamar_id,omitempty"`
	NomorBooking     string     `json:"nomor_booking"`
	TanggalMulai     *time.Time `json:"tanggal_mulai,omitempty"`
	TanggalSelesai   *time.Time `json:"tanggal_selesai,omitempty"`
	Durasi           int        `json:"durasi"`
	TipeDurasi       string     `json:"tipe_durasi,omitempty"`
	HargaTotal       int64      `json:"harga_total"`
	BiayaAdmin       int64      `json:"biaya_admin"`
	TotalBayar       int64      `json:"total_bayar"`
	StatusBooking    string     `json:"status_booking"`
	MetodePembayaran string     `json:"metode_pembayaran,omitempty"`
	Catatan          string     `json:"catatan,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
	ExpiredAt        *time.Time `json:"expired_at,omitempty"`
}

// NewNomorBooking derives a booking number from the current wall clock:
// "BK" + epoch milliseconds + a 4-digit random suffix. The suffix plus the
// unique index on nomor_booking close the window where two requests in the
// same millisecond would mint the same number.
func NewNomorBooking() string {
	var b [2]byte
	_, _ = rand.Read(b[:])
	n := binary.BigEndian.Uint16(b[:]) % 10000
	return fmt.Sprintf("BK%d%04d", time.Now().UnixMilli(), n)
}
