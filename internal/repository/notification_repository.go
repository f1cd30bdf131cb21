package repository

import (
	"context"
	"database/sql"

	"github.com/Semicolon3407/movie-booking/internal/model"
)

// NotificationRepo persists admin-facing notifications created after
// successful bookings.  Writers treat failures as best-effort; this
// repository just reports them.
type NotificationRepo struct {
	db *sql.DB
}

// NewNotificationRepo returns a NotificationRepo bound to the given database.
func NewNotificationRepo(db *sql.DB) *NotificationRepo { return &NotificationRepo{db: db} }

// Create inserts a notification and populates its generated ID.
func (r *NotificationRepo) Create(ctx context.Context, n *model.Notification) error {
	const q = `INSERT INTO notifications (booking_id, message, amount_cents) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, n.BookingID, n.Message, n.AmountCents)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	n.ID = uint64(id)
	return nil
}

// List returns notifications newest first, optionally only unread.
func (r *NotificationRepo) List(ctx context.Context, unreadOnly bool) ([]model.Notification, error) {
	q := `SELECT id, booking_id, message, amount_cents, is_read, created_at FROM notifications`
	if unreadOnly {
		q += ` WHERE is_read = 0`
	}
	q += ` ORDER BY created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := make([]model.Notification, 0)
	for rows.Next() {
		var n model.Notification
		if err := rows.Scan(&n.ID, &n.BookingID, &n.Message, &n.AmountCents, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, n)
	}
	return items, rows.Err()
}

// MarkRead flags a notification as read.
func (r *NotificationRepo) MarkRead(ctx context.Context, id uint64) error {
	const q = `UPDATE notifications SET is_read = 1 WHERE id = ?`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}
