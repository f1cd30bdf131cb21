package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/Semicolon3407/movie-booking/internal/model"
)

// MenuRepo persists concession items.  The booking flow only needs
// current prices by id; admins add new items.
type MenuRepo struct {
	db *sql.DB
}

// NewMenuRepo returns a MenuRepo bound to the given database.
func NewMenuRepo(db *sql.DB) *MenuRepo { return &MenuRepo{db: db} }

// Create inserts a menu item.  A duplicate name surfaces as
// ErrConflict.
func (r *MenuRepo) Create(ctx context.Context, item *model.MenuItem) error {
	const q = `INSERT INTO menu_items (name, price_cents, is_active) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, item.Name, item.PriceCents, item.IsActive)
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
	item.ID = uint64(id)
	return nil
}

// PricesByIDs returns the current price of every active menu item in
// ids.  A requested id missing from the result surfaces as
// ErrMenuItemNotFound so a booking can never silently price an
// unknown concession at zero.
func (r *MenuRepo) PricesByIDs(ctx context.Context, ids []uint64) (map[uint64]uint32, error) {
	prices := make(map[uint64]uint32, len(ids))
	if len(ids) == 0 {
		return prices, nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	q := `SELECT id, price_cents FROM menu_items WHERE is_active = 1 AND id IN (` + placeholders + `)`
	args := make([]any, 0, len(ids))
	for _, id := range ids {
		args = append(args, id)
	}
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var id uint64
		var price uint32
		if err := rows.Scan(&id, &price); err != nil {
			return nil, err
		}
		prices[id] = price
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, id := range ids {
		if _, ok := prices[id]; !ok {
			return nil, ErrMenuItemNotFound
		}
	}
	return prices, nil
}

// List returns all active menu items ordered by name.
func (r *MenuRepo) List(ctx context.Context) ([]model.MenuItem, error) {
	const q = `SELECT id, name, price_cents, is_active, created_at, updated_at
			   FROM menu_items WHERE is_active = 1 ORDER BY name ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := make([]model.MenuItem, 0)
	for rows.Next() {
		var m model.MenuItem
		if err := rows.Scan(&m.ID, &m.Name, &m.PriceCents, &m.IsActive, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, rows.Err()
}
