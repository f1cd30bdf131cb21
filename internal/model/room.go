package model

import "time"

// Room represents a screening room.  A room exclusively owns its
// showtimes: deleting a room cascades to its showtimes and their seat
// grids.  Room names are unique.
//
// Fields:
//  ID         – primary key identifier.
//  Name       – unique room name.
//  TotalSeats – number of seats generated per showtime in this room.
type Room struct {
	ID         uint64    `json:"id"`
	Name       string    `json:"name"`
	TotalSeats uint32    `json:"total_seats"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
