// Package queue defines the booking event payloads exchanged over the
// message broker and the background consumer that reacts to them.
package queue

// Event types carried on the booking.events queue.
const (
	EventBookingCreated       = "created"
	EventBookingStatusChanged = "status_changed"
)

// BookingEvent is published after a booking is created or its status
// changes. It carries enough context for the consumer to write the user's
// notification and history rows without querying the booking back.
type BookingEvent struct {
	Type         string `json:"type"`
	BookingID    uint64 `json:"booking_id"`
	UserID       uint64 `json:"user_id"`
	KostID       uint64 `json:"kost_id"`
	NomorBooking string `json:"nomor_booking"`
	Status       string `json:"status"`
	TotalBayar   int64  `json:"total_bayar"`
	OccurredAt   string `json:"occurred_at"`
}
