package repository

import (
	"context"
	"database/sql"

	"github.com/kostong/kostong-backend/internal/model"
)

// RiwayatRepo manages the append-only transaction history. Rows are
// written by the booking event consumer; the API surface only reads.
type RiwayatRepo struct {
	db *sql.DB
}

// NewRiwayatRepo returns a RiwayatRepo bound to the given database.
func NewRiwayatRepo(db *sql.DB) *RiwayatRepo { return &RiwayatRepo{db: db} }

// ListByUser returns all transaction records for a user, newest first.
func (r *RiwayatRepo) ListByUser(ctx context.Context, userID uint64) ([]model.RiwayatTransaksi, error) {
	const q = `SELECT id, user_id, booking_id, amount, status, created_at
	           FROM riwayat_transaksi
	           WHERE user_id = ?
	           ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.RiwayatTransaksi, 0)
	for rows.Next() {
		var rec model.RiwayatTransaksi
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.BookingID, &rec.Amount, &rec.Status, &rec.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Append adds one history record.
func (r *RiwayatRepo) Append(ctx context.Context, rec *model.RiwayatTransaksi) error {
	const q = `INSERT INTO riwayat_transaksi (user_id, booking_id, amount, status) VALUES (?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, rec.UserID, rec.BookingID, rec.Amount, rec.Status)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	rec.ID = uint64(id)
	return nil
}
