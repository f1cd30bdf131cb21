package schedule

import (
	"fmt"

	"github.com/Semicolon3407/movie-booking/internal/model"
)

// Default grid dimensions used when a room does not override them.
const (
	DefaultRows = 5
	DefaultCols = 10
)

// GenerateSeats produces the deterministic seat grid for a new
// showtime: row-major order, rows labelled A, B, C, ... and columns
// numbered from 1, every seat AVAILABLE.  generate(5,10) always yields
// A1..A10, B1..B10, ..., E1..E10 in exactly that order.
func GenerateSeats(rows, cols int) ([]model.Seat, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("invalid seat grid dimensions %dx%d", rows, cols)
	}
	seats := make([]model.Seat, 0, rows*cols)
	for r := 0; r < rows; r++ {
		label := rowLabel(r)
		for c := 1; c <= cols; c++ {
			seats = append(seats, model.Seat{
				SeatNumber: fmt.Sprintf("%s%d", label, c),
				Status:     model.SeatAvailable,
			})
		}
	}
	return seats, nil
}

// rowLabel maps 0 -> "A", 25 -> "Z", 26 -> "AA" and so on, so grids
// taller than 26 rows stay unambiguous.
func rowLabel(row int) string {
	label := ""
	for row >= 0 {
		label = string(rune('A'+row%26)) + label
		row = row/26 - 1
	}
	return label
}
