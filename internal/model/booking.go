package model

import "time"

// BookingStatus enumerates booking states.  A booking is created
// CONFIRMED and may transition to CANCELLED exactly once; a cancelled
// booking never becomes confirmed again (re-booking requires a new
// booking).
type BookingStatus string

const (
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCancelled BookingStatus = "CANCELLED"
)

// PaymentMethod enumerates how a booking was paid for.
type PaymentMethod string

const (
	PayCard  PaymentMethod = "CARD"
	PayCash  PaymentMethod = "CASH"
	PayEsewa PaymentMethod = "ESEWA"
)

// BookingMenuItem is a concession line snapshotted into a booking at
// reservation time.  The snapshot is copied, not live-linked, so later
// menu changes cannot corrupt historical bookings.
type BookingMenuItem struct {
	MenuID     uint64 `json:"menu_id"`
	Quantity   uint32 `json:"quantity"`
	PriceCents uint32 `json:"price_cents"`
}

// Booking records a user's reservation of specific seats (plus
// optional concessions) for one showtime.  It references movie, room
// and showtime but owns only its own seat-number and menu snapshots.
//
// Fields:
//  ID              – primary key identifier.
//  UserID          – user who made the booking.
//  MovieID         – movie screened at the booked showtime.
//  RoomID          – room owning the showtime.
//  ShowtimeID      – showtime the seats belong to.
//  Date            – calendar date of the showtime at booking time.
//  Seats           – seat numbers claimed, each exactly once.
//  MenuItems       – concession snapshot taken at booking time.
//  TotalPriceCents – ticket price x seats + menu subtotal.
//  PaymentMethod   – CARD, CASH or ESEWA.
//  Status          – CONFIRMED or CANCELLED.
//  TransactionID   – gateway reconciliation id (nullable).
//  EsewaToken      – gateway token for redirect flows (nullable).
type Booking struct {
	ID              uint64            `json:"id"`
	UserID          uint64            `json:"user_id"`
	MovieID         uint64            `json:"movie_id"`
	RoomID          uint64            `json:"room_id"`
	ShowtimeID      uint64            `json:"showtime_id"`
	Date            time.Time         `json:"date"`
	Seats           []string          `json:"seats"`
	MenuItems       []BookingMenuItem `json:"menu_items,omitempty"`
	TotalPriceCents uint32            `json:"total_price_cents"`
	PaymentMethod   PaymentMethod     `json:"payment_method"`
	Status          BookingStatus     `json:"status"`
	TransactionID   *string           `json:"transaction_id,omitempty"`
	EsewaToken      *string           `json:"esewa_token,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// Cancelled reports whether the booking has already been cancelled,
// in which case a further cancel is a no-op.
func (b *Booking) Cancelled() bool { return b.Status == BookingCancelled }
