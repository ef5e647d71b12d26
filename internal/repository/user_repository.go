package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/kostong/kostong-backend/internal/model"
	"github.com/kostong/kostong-backend/internal/utils"
)

// UserRepo manages account records. Email uniqueness is enforced by the
// storage layer; a duplicate insert maps to ErrEmailExists.
type UserRepo struct{ db *sql.DB }

// NewUserRepo returns a UserRepo bound to the given database.
func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{db: db} }

// Create hashes the password and inserts the user, returning the new id.
func (r *UserRepo) Create(ctx context.Context, name, email, password, phone string, cost int) (uint64, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO users (name, email, password_hash, phone) VALUES (?,?,?,?)",
		name, email, hash, nullStr(phone))
	if err != nil {
		if duplicateKey(err) {
			return 0, ErrEmailExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByEmail fetches a user by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	return r.get(ctx, "email = ?", email)
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
	return r.get(ctx, "id = ?", id)
}

func (r *UserRepo) get(ctx context.Context, where string, arg any) (model.User, error) {
	q := "SELECT id, name, email, password_hash, phone, avatar, created_at, updated_at FROM users WHERE " + where + " LIMIT 1"
	var (
		u      model.User
		phone  sql.NullString
		avatar sql.NullString
	)
	err := r.db.QueryRowContext(ctx, q, arg).Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &phone, &avatar, &u.CreatedAt, &u.UpdatedAt)
	u.Phone = phone.String
	u.Avatar = avatar.String
	return u, err
}
