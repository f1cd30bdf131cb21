package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/Semicolon3407/movie-booking/internal/model"
)

// UserRepo persists users and their loyalty balances.  The booking
// core only needs attribution and the read-modify-write point accrual;
// registration and login are a thin surface on top.
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo returns a UserRepo bound to the given database.
func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{db: db} }

// Create inserts a user.  A duplicate email surfaces as ErrConflict.
func (r *UserRepo) Create(ctx context.Context, u *model.User) error {
	const q = `INSERT INTO users (email, password_hash, role) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, u.Email, u.PasswordHash, u.Role)
	if err != nil {
		if strings.Contains(err.Error(), "Duplicate entry") {
			return ErrConflict
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	u.ID = uint64(id)
	return nil
}

// GetByEmail returns a user by login email or ErrUserNotFound.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	const q = `SELECT id, email, password_hash, role, loyalty_points, created_at, updated_at
			   FROM users WHERE email = ?`
	return r.scanUser(r.db.QueryRowContext(ctx, q, email))
}

// GetByID returns a user or ErrUserNotFound.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (*model.User, error) {
	const q = `SELECT id, email, password_hash, role, loyalty_points, created_at, updated_at
			   FROM users WHERE id = ?`
	return r.scanUser(r.db.QueryRowContext(ctx, q, id))
}

func (r *UserRepo) scanUser(row *sql.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.LoyaltyPoints, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// AddLoyaltyPoints increments a user's point balance.  The single
// UPDATE keeps the read-modify-write atomic at the row level.
func (r *UserRepo) AddLoyaltyPoints(ctx context.Context, userID uint64, points uint32) error {
	if points == 0 {
		return nil
	}
	const q = `UPDATE users SET loyalty_points = loyalty_points + ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, points, userID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrUserNotFound
	}
	return nil
}
