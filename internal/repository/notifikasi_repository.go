package repository

import (
	"context"
	"database/sql"

	"github.com/kostong/kostong-backend/internal/model"
)

// NotifikasiRepo manages user notifications.
type NotifikasiRepo struct {
	db *sql.DB
}

// NewNotifikasiRepo returns a NotifikasiRepo bound to the given database.
func NewNotifikasiRepo(db *sql.DB) *NotifikasiRepo { return &NotifikasiRepo{db: db} }

// ListByUser returns up to limit notifications for a user, newest first.
func (r *NotifikasiRepo) ListByUser(ctx context.Context, userID uint64, limit int) ([]model.Notifikasi, error) {
	const q = `SELECT id, user_id, title, body, ` + "`read`" + `, created_at
	           FROM notifikasi
	           WHERE user_id = ?
	           ORDER BY created_at DESC
	           LIMIT ?`
	rows, err := r.db.QueryContext(ctx, q, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Notifikasi, 0)
	for rows.Next() {
		var (
			n    model.Notifikasi
			body sql.NullString
		)
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &body, &n.Read, &n.CreatedAt); err != nil {
			return nil, err
		}
		n.Body = body.String
		out = append(out, n)
	}
	return out, rows.Err()
}

// Create inserts a notification. The read flag defaults to false in the
// schema; the row is read back so defaults land on the struct.
func (r *NotifikasiRepo) Create(ctx context.Context, n *model.Notifikasi) error {
	const q = `INSERT INTO notifikasi (user_id, title, body) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, n.UserID, n.Title, nullStr(n.Body))
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	n.ID = uint64(id)
	const sel = `SELECT id, user_id, title, body, ` + "`read`" + `, created_at FROM notifikasi WHERE id = ?`
	var body sql.NullString
	if err := r.db.QueryRowContext(ctx, sel, n.ID).Scan(&n.ID, &n.UserID, &n.Title, &body, &n.Read, &n.CreatedAt); err != nil {
		return err
	}
	n.Body = body.String
	return nil
}

// MarkRead sets the read flag and returns the updated row, or
// ErrNotifikasiNotFound when the id does not resolve. Other fields are
// left untouched.
func (r *NotifikasiRepo) MarkRead(ctx context.Context, id uint64) (*model.Notifikasi, error) {
	if _, err := r.db.ExecContext(ctx, "UPDATE notifikasi SET `read` = TRUE WHERE id = ?", id); err != nil {
		return nil, err
	}
	const sel = `SELECT id, user_id, title, body, ` + "`read`" + `, created_at FROM notifikasi WHERE id = ?`
	var (
		n    model.Notifikasi
		body sql.NullString
	)
	err := r.db.QueryRowContext(ctx, sel, id).Scan(&n.ID, &n.UserID, &n.Title, &body, &n.Read, &n.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotifikasiNotFound
	}
	if err != nil {
		return nil, err
	}
	n.Body = body.String
	return &n, nil
}
