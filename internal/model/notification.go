package model

import "time"

// Notification is an admin-facing record written after a successful
// booking.  Creation is best-effort: a failed insert is logged and
// never rolls back the booking that triggered it.
type Notification struct {
	ID          uint64    `json:"id"`
	BookingID   uint64    `json:"booking_id"`
	Message     string    `json:"message"`
	AmountCents uint32    `json:"amount_cents"`
	IsRead      bool      `json:"is_read"`
	CreatedAt   time.Time `json:"created_at"`
}
