package model

// Kamar is a single rentable room inside a kost. Bookings may reference a
// room; the entity itself has no endpoints of its own and only surfaces as
// the populated `kamar` object in booking detail responses.
type Kamar struct {
	ID         uint64 `json:"id"`
	KostID     uint64 `json:"kost_id"`
	NomorKamar string `json:"nomor_kamar"`
	Lantai     int    `json:"lantai,omitempty"`
	Harga      int64  `json:"harga"`
}
