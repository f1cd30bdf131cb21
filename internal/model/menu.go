package model

import "time"

// MenuItem is a concession product (popcorn, drinks) whose current
// price is read at booking time and snapshotted into the booking.
type MenuItem struct {
	ID         uint64    `json:"id"`
	Name       string    `json:"name"`
	PriceCents uint32    `json:"price_cents"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
