// Package queue defines the message payloads exchanged over the
// broker plus the publisher and background consumer for them.
package queue

// BookingConfirmedEvent is published after a booking commits.  It
// carries enough for downstream consumers (audit log, analytics,
// mailers) to act without querying the primary database.
type BookingConfirmedEvent struct {
	BookingID       uint64   `json:"booking_id"`
	UserID          uint64   `json:"user_id"`
	MovieID         uint64   `json:"movie_id"`
	MovieTitle      string   `json:"movie_title"`
	RoomID          uint64   `json:"room_id"`
	ShowtimeID      uint64   `json:"showtime_id"`
	Date            string   `json:"date"`
	Seats           []string `json:"seats"`
	TotalPriceCents uint32   `json:"total_price_cents"`
	PaymentMethod   string   `json:"payment_method"`
	ConfirmedAt     string   `json:"confirmed_at"`
}
