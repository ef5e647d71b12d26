package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/kostong/kostong-backend/internal/model"
)

// BookingRepo provides persistence for bookings. Reads that populate the
// referenced kost (and room) do so with LEFT JOINs so a booking whose
// reference no longer resolves is still returned, just without the
// embedded document.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo returns a BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

// BookingDetail is a booking with its kost reference expanded. Kamar is
// only populated by GetByID; list responses carry the kost summary alone.
type BookingDetail struct {
	model.Booking
	Kost  *model.KostSummary `json:"kost,omitempty"`
	Kamar *model.Kamar       `json:"kamar,omitempty"`
}

// BookingUpdate is a partial field set for UpdateFields. Nil pointers are
// left untouched; any combination of fields may be set in one call.
type BookingUpdate struct {
	TanggalMulai     *time.Time
	TanggalSelesai   *time.Time
	Durasi           *int
	TipeDurasi       *string
	HargaTotal       *int64
	BiayaAdmin       *int64
	TotalBayar       *int64
	StatusBooking    *string
	MetodePembayaran *string
	Catatan          *string
	ExpiredAt        *time.Time
}

const bookingCols = `id, user_id, kost_id, kamar_id, nomor_booking, tanggal_mulai, tanggal_selesai,
	durasi, tipe_durasi, harga_total, biaya_admin, total_bayar, status_booking,
	metode_pembayaran, catatan, created_at, updated_at, expired_at`

// Create inserts a booking. The caller is expected to have set the booking
// number, status and timestamps; the row is read back afterwards so the
// stored state (including the generated id) lands on the struct.
func (r *BookingRepo) Create(ctx context.Context, b *model.Booking) error {
	const q = `INSERT INTO booking
		(user_id, kost_id, kamar_id, nomor_booking, tanggal_mulai, tanggal_selesai,
		 durasi, tipe_durasi, harga_total, biaya_admin, total_bayar, status_booking,
		 metode_pembayaran, catatan, created_at, updated_at, expired_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q,
		b.UserID, b.KostID, b.KamarID, b.NomorBooking, b.TanggalMulai, b.TanggalSelesai,
		b.Durasi, nullStr(b.TipeDurasi), b.HargaTotal, b.BiayaAdmin, b.TotalBayar, b.StatusBooking,
		nullStr(b.MetodePembayaran), nullStr(b.Catatan), b.CreatedAt, b.UpdatedAt, b.ExpiredAt,
	)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)
	stored, err := r.getBooking(ctx, b.ID)
	if err != nil {
		return err
	}
	*b = *stored
	return nil
}

// ListByUser returns all bookings for a user with the kost summary
// populated, ordered by creation time descending. When the user has no
// bookings an empty slice is returned, never an error.
func (r *BookingRepo) ListByUser(ctx context.Context, userID uint64) ([]BookingDetail, error) {
	const q = `SELECT b.id, b.user_id, b.kost_id, b.kamar_id, b.nomor_booking, b.tanggal_mulai, b.tanggal_selesai,
	                  b.durasi, b.tipe_durasi, b.harga_total, b.biaya_admin, b.total_bayar, b.status_booking,
	                  b.metode_pembayaran, b.catatan, b.created_at, b.updated_at, b.expired_at,
	                  k.id, k.title, k.price, k.address, k.photos
	           FROM booking b
	           LEFT JOIN kost k ON k.id = b.kost_id
	           WHERE b.user_id = ?
	           ORDER BY b.created_at DESC`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]BookingDetail, 0)
	for rows.Next() {
		var (
			d       BookingDetail
			kID     sql.NullInt64
			kTitle  sql.NullString
			kPrice  sql.NullInt64
			kAddr   sql.NullString
			kPhotos []byte
		)
		if err := scanBookingInto(rows, &d.Booking, &kID, &kTitle, &kPrice, &kAddr, &kPhotos); err != nil {
			return nil, err
		}
		if kID.Valid {
			d.Kost = &model.KostSummary{
				ID:      uint64(kID.Int64),
				Title:   kTitle.String,
				Price:   kPrice.Int64,
				Address: kAddr.String,
				Photos:  decodePhotos(kPhotos),
			}
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// GetByID returns one booking with both the kost and kamar references
// expanded, or ErrBookingNotFound.
func (r *BookingRepo) GetByID(ctx context.Context, id uint64) (*BookingDetail, error) {
	const q = `SELECT b.id, b.user_id, b.kost_id, b.kamar_id, b.nomor_booking, b.tanggal_mulai, b.tanggal_selesai,
	                  b.durasi, b.tipe_durasi, b.harga_total, b.biaya_admin, b.total_bayar, b.status_booking,
	                  b.metode_pembayaran, b.catatan, b.created_at, b.updated_at, b.expired_at,
	                  k.id, k.title, k.price, k.address, k.photos,
	                  km.id, km.kost_id, km.nomor_kamar, km.lantai, km.harga
	           FROM booking b
	           LEFT JOIN kost k ON k.id = b.kost_id
	           LEFT JOIN kamar km ON km.id = b.kamar_id
	           WHERE b.id = ?`
	var (
		d       BookingDetail
		kID     sql.NullInt64
		kTitle  sql.NullString
		kPrice  sql.NullInt64
		kAddr   sql.NullString
		kPhotos []byte
		kmID    sql.NullInt64
		kmKost  sql.NullInt64
		kmNomor sql.NullString
		kmLt    sql.NullInt64
		kmHarga sql.NullInt64
	)
	row := r.db.QueryRowContext(ctx, q, id)
	err := scanBookingInto(row, &d.Booking, &kID, &kTitle, &kPrice, &kAddr, &kPhotos,
		&kmID, &kmKost, &kmNomor, &kmLt, &kmHarga)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}
	if kID.Valid {
		d.Kost = &model.KostSummary{
			ID:      uint64(kID.Int64),
			Title:   kTitle.String,
			Price:   kPrice.Int64,
			Address: kAddr.String,
			Photos:  decodePhotos(kPhotos),
		}
	}
	if kmID.Valid {
		d.Kamar = &model.Kamar{
			ID:         uint64(kmID.Int64),
			KostID:     uint64(kmKost.Int64),
			NomorKamar: kmNomor.String,
			Lantai:     int(kmLt.Int64),
			Harga:      kmHarga.Int64,
		}
	}
	return &d, nil
}

// UpdateFields applies the non-nil fields of upd, refreshes updated_at and
// returns the new state. ErrBookingNotFound is returned when the id does
// not resolve. Which fields may change is the caller's concern; this
// method applies whatever it is given.
func (r *BookingRepo) UpdateFields(ctx context.Context, id uint64, upd BookingUpdate) (*model.Booking, error) {
	set := make([]string, 0, 12)
	args := make([]any, 0, 12)
	add := func(col string, v any) {
		set = append(set, col+" = ?")
		args = append(args, v)
	}
	if upd.TanggalMulai != nil {
		add("tanggal_mulai", *upd.TanggalMulai)
	}
	if upd.TanggalSelesai != nil {
		add("tanggal_selesai", *upd.TanggalSelesai)
	}
	if upd.Durasi != nil {
		add("durasi", *upd.Durasi)
	}
	if upd.TipeDurasi != nil {
		add("tipe_durasi", *upd.TipeDurasi)
	}
	if upd.HargaTotal != nil {
		add("harga_total", *upd.HargaTotal)
	}
	if upd.BiayaAdmin != nil {
		add("biaya_admin", *upd.BiayaAdmin)
	}
	if upd.TotalBayar != nil {
		add("total_bayar", *upd.TotalBayar)
	}
	if upd.StatusBooking != nil {
		add("status_booking", *upd.StatusBooking)
	}
	if upd.MetodePembayaran != nil {
		add("metode_pembayaran", *upd.MetodePembayaran)
	}
	if upd.Catatan != nil {
		add("catatan", *upd.Catatan)
	}
	if upd.ExpiredAt != nil {
		add("expired_at", *upd.ExpiredAt)
	}
	// updated_at refreshes on every mutation, even an empty field set.
	add("updated_at", time.Now().UTC())

	q := "UPDATE booking SET " + strings.Join(set, ", ") + " WHERE id = ?"
	args = append(args, id)
	if _, err := r.db.ExecContext(ctx, q, args...); err != nil {
		return nil, err
	}
	return r.getBooking(ctx, id)
}

// getBooking loads a bare booking row without population.
func (r *BookingRepo) getBooking(ctx context.Context, id uint64) (*model.Booking, error) {
	const q = `SELECT ` + bookingCols + ` FROM booking WHERE id = ?`
	var b model.Booking
	err := scanBookingInto(r.db.QueryRowContext(ctx, q, id), &b)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// scanBookingInto scans the booking columns into b, followed by any extra
// destinations supplied by JOINed queries.
func scanBookingInto(row rowScanner, b *model.Booking, extra ...any) error {
	var (
		kamarID sql.NullInt64
		mulai   sql.NullTime
		selesai sql.NullTime
		tipe    sql.NullString
		metode  sql.NullString
		catatan sql.NullString
		expired sql.NullTime
	)
	dest := []any{
		&b.ID, &b.UserID, &b.KostID, &kamarID, &b.NomorBooking, &mulai, &selesai,
		&b.Durasi, &tipe, &b.HargaTotal, &b.BiayaAdmin, &b.TotalBayar, &b.StatusBooking,
		&metode, &catatan, &b.CreatedAt, &b.UpdatedAt, &expired,
	}
	dest = append(dest, extra...)
	if err := row.Scan(dest...); err != nil {
		return err
	}
	if kamarID.Valid {
		v := uint64(kamarID.Int64)
		b.KamarID = &v
	}
	if mulai.Valid {
		t := mulai.Time
		b.TanggalMulai = &t
	}
	if selesai.Valid {
		t := selesai.Time
		b.TanggalSelesai = &t
	}
	b.TipeDurasi = tipe.String
	b.MetodePembayaran = metode.String
	b.Catatan = catatan.String
	if expired.Valid {
		t := expired.Time
		b.ExpiredAt = &t
	}
	return nil
}

func nullStr(s string) any {
	if s == "" {
		return nil
	}
	return s
}
