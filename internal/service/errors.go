// Package service implements the scheduling and booking engines on
// top of store interfaces.  The services own the concurrency
// contract: a keyed mutex per room (allocation) and per showtime
// (reservation) held across the whole check-then-write section, with
// the repositories' conditional updates as a second line of defense.
package service

import (
	"fmt"
	"strings"
)

// SeatsUnavailableError reports a reservation rejected because some
// of the requested seats are already booked (or do not exist in the
// showtime's grid).  Reservation is all-or-nothing, so the whole
// request fails and the taken seats are listed for the user to
// re-select.
type SeatsUnavailableError struct {
	Seats []string
}

func (e *SeatsUnavailableError) Error() string {
	return fmt.Sprintf("seats unavailable: %s", strings.Join(e.Seats, ", "))
}
