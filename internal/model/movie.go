package model

import "time"

// MovieStatus enumerates the lifecycle states of a movie.  A movie is
// hosting while its screening window is open and expired once the end
// date has passed.  The transition to EXPIRED is performed by a
// periodic sweep outside this core.
type MovieStatus string

const (
	MovieHosting MovieStatus = "HOSTING"
	MovieExpired MovieStatus = "EXPIRED"
)

// Movie represents a film in the catalog.  StartDate and EndDate bound
// the screening window; showtimes may only be scheduled on calendar
// dates inside [StartDate, EndDate].  Both are stored date-only (the
// time-of-day component is midnight UTC) and compared date-only.
//
// Fields:
//  ID               – primary key identifier.
//  Title            – display title of the film.
//  DurationMinutes  – running time in minutes.
//  StartDate        – first calendar date the movie may screen.
//  EndDate          – last calendar date the movie may screen.
//  Status           – HOSTING or EXPIRED.
//  TicketPriceCents – per-seat ticket price in cents.
type Movie struct {
	ID               uint64      `json:"id"`
	Title            string      `json:"title"`
	DurationMinutes  uint32      `json:"duration_minutes"`
	StartDate        time.Time   `json:"start_date"`
	EndDate          time.Time   `json:"end_date"`
	Status           MovieStatus `json:"status"`
	TicketPriceCents uint32      `json:"ticket_price_cents"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

// DateOnly strips the time-of-day component from t, returning midnight
// UTC of the same calendar date.  All window comparisons go through
// this helper so that a showtime at 23:00 on the window's last day is
// still inside the window.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// WindowContains reports whether the calendar date of d lies within
// the movie's screening window, inclusive on both ends.
func (m *Movie) WindowContains(d time.Time) bool {
	day := DateOnly(d)
	return !day.Before(DateOnly(m.StartDate)) && !day.After(DateOnly(m.EndDate))
}
