package repository

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/kostong/kostong-backend/internal/model"
)

// KostRepo manages persistence for kost listings. Photos are stored as a
// JSON array in a TEXT column and decoded on the way out so callers only
// ever see []string.
type KostRepo struct {
	db *sql.DB
}

// NewKostRepo returns a KostRepo bound to the given database.
func NewKostRepo(db *sql.DB) *KostRepo { return &KostRepo{db: db} }

// ListAll returns every listing ordered by creation time descending.
// The result is unpaginated; callers accept the unbounded size.
func (r *KostRepo) ListAll(ctx context.Context) ([]model.Kost, error) {
	const q = `SELECT id, title, description, address, price, photos, owner, created_at
	           FROM kost
	           ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Kost, 0)
	for rows.Next() {
		k, err := scanKost(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, k)
	}
	return out, rows.Err()
}

// GetByID returns a single listing or ErrKostNotFound.
func (r *KostRepo) GetByID(ctx context.Context, id uint64) (*model.Kost, error) {
	const q = `SELECT id, title, description, address, price, photos, owner, created_at
	           FROM kost WHERE id = ?`
	row := r.db.QueryRowContext(ctx, q, id)
	k, err := scanKost(row)
	if err == sql.ErrNoRows {
		return nil, ErrKostNotFound
	}
	if err != nil {
		return nil, err
	}
	return &k, nil
}

// Create inserts a listing and reads the row back so DB-assigned fields
// (id, created_at) are populated on the given struct.
func (r *KostRepo) Create(ctx context.Context, k *model.Kost) error {
	photos, err := json.Marshal(photosOrEmpty(k.Photos))
	if err != nil {
		return err
	}
	const q = `INSERT INTO kost (title, description, address, price, photos, owner) VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, k.Title, k.Description, k.Address, k.Price, photos, k.Owner)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	k.ID = uint64(id)
	const sel = `SELECT id, title, description, address, price, photos, owner, created_at FROM kost WHERE id = ?`
	stored, err := scanKost(r.db.QueryRowContext(ctx, sel, k.ID))
	if err != nil {
		return err
	}
	*k = stored
	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanKost(row rowScanner) (model.Kost, error) {
	var (
		k      model.Kost
		desc   sql.NullString
		owner  sql.NullString
		photos []byte
	)
	err := row.Scan(&k.ID, &k.Title, &desc, &k.Address, &k.Price, &photos, &owner, &k.CreatedAt)
	if err != nil {
		return model.Kost{}, err
	}
	k.Description = desc.String
	k.Owner = owner.String
	k.Photos = decodePhotos(photos)
	return k, nil
}

func decodePhotos(raw []byte) []string {
	out := []string{}
	if len(raw) == 0 {
		return out
	}
	// A malformed column is treated as empty rather than failing the read.
	_ = json.Unmarshal(raw, &out)
	if out == nil {
		out = []string{}
	}
	return out
}

func photosOrEmpty(p []string) []string {
	if p == nil {
		return []string{}
	}
	return p
}
