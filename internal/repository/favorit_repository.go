package repository

import (
	"context"
	"database/sql"

	"github.com/kostong/kostong-backend/internal/model"
)

// FavoritRepo manages a user's saved listings. The unique index on
// (user_id, kost_id) makes the duplicate check a single atomic insert
// instead of a racy read-then-write.
type FavoritRepo struct {
	db *sql.DB
}

// NewFavoritRepo returns a FavoritRepo bound to the given database.
func NewFavoritRepo(db *sql.DB) *FavoritRepo { return &FavoritRepo{db: db} }

// FavoritDetail is a favorite with its kost reference expanded.
type FavoritDetail struct {
	model.Favorit
	Kost *model.KostSummary `json:"kost,omitempty"`
}

// ListByUser returns the user's favorites newest first with the kost
// populated where the reference resolves.
func (r *FavoritRepo) ListByUser(ctx context.Context, userID uint64) ([]FavoritDetail, error) {
	const q = `SELECT f.id, f.user_id, f.kost_id, f.created_at,
	                  k.id, k.title, k.price, k.address, k.photos
	           FROM favorit f
	           LEFT JOIN kost k ON k.id = f.kost_id
	           WHERE f.user_id = ?
	           ORDER BY f.created_at DESC`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]FavoritDetail, 0)
	for rows.Next() {
		var (
			d       FavoritDetail
			kID     sql.NullInt64
			kTitle  sql.NullString
			kPrice  sql.NullInt64
			kAddr   sql.NullString
			kPhotos []byte
		)
		if err := rows.Scan(&d.ID, &d.UserID, &d.KostID, &d.CreatedAt,
			&kID, &kTitle, &kPrice, &kAddr, &kPhotos); err != nil {
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

// Create inserts a favorite. A duplicate (user, kost) pair surfaces as
// ErrAlreadyFavorited via the unique-key violation.
func (r *FavoritRepo) Create(ctx context.Context, f *model.Favorit) error {
	const q = `INSERT INTO favorit (user_id, kost_id) VALUES (?, ?)`
	res, err := r.db.ExecContext(ctx, q, f.UserID, f.KostID)
	if err != nil {
		if duplicateKey(err) {
			return ErrAlreadyFavorited
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	f.ID = uint64(id)
	const sel = `SELECT id, user_id, kost_id, created_at FROM favorit WHERE id = ?`
	return r.db.QueryRowContext(ctx, sel, f.ID).Scan(&f.ID, &f.UserID, &f.KostID, &f.CreatedAt)
}

// Delete removes a favorite by id, returning ErrFavoritNotFound when the
// id does not resolve.
func (r *FavoritRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM favorit WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrFavoritNotFound
	}
	return nil
}
