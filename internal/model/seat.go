package model

// SeatStatus enumerates the two states a seat can be in.  The only
// legal transitions are AVAILABLE -> BOOKED (successful reservation)
// and BOOKED -> AVAILABLE (booking cancellation); the booking engine
// is the sole component allowed to perform either.
type SeatStatus string

const (
	SeatAvailable SeatStatus = "AVAILABLE"
	SeatBooked    SeatStatus = "BOOKED"
)

// Seat is one seat in a showtime's grid.  SeatNumber combines the row
// letter and column number ("A1", "B7").  Seats are created together
// with their showtime and never deleted independently of it.
type Seat struct {
	ID         uint64     `json:"id,omitempty"`
	ShowtimeID uint64     `json:"showtime_id,omitempty"`
	SeatNumber string     `json:"seat_number"`
	Status     SeatStatus `json:"status"`
}

// CanBook reports whether the seat may transition to BOOKED.
func (s *Seat) CanBook() bool { return s.Status == SeatAvailable }
