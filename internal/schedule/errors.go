// Package schedule implements the pure scheduling core: "HH:MM" time
// range arithmetic with midnight-wrap handling, deterministic seat
// grid generation and showtime entry validation.  Everything here is
// side-effect free; persistence and locking live in the repository and
// service layers.
package schedule

import (
	"fmt"
	"time"
)

// InvalidTimeError reports a time string that does not match strict
// 24-hour "HH:MM" (hours 0-23, minutes 0-59).
type InvalidTimeError struct {
	Value string
}

func (e *InvalidTimeError) Error() string {
	return fmt.Sprintf("invalid time %q: expected HH:MM (00:00-23:59)", e.Value)
}

// InvalidRangeError reports a non-sensical time range.  A zero-length
// range (end equal to start) is rejected: it would otherwise be
// ambiguous with a full 24-hour wrap, which this system disallows.
type InvalidRangeError struct {
	Start, End string
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid time range %s-%s: end must differ from start", e.Start, e.End)
}

// OutsideWindowError reports a candidate date outside the movie's
// screening window.  The window bounds are carried so the caller can
// render an actionable message.
type OutsideWindowError struct {
	Date        time.Time
	WindowStart time.Time
	WindowEnd   time.Time
}

func (e *OutsideWindowError) Error() string {
	return fmt.Sprintf("date %s is outside the screening window %s to %s",
		e.Date.Format("2006-01-02"),
		e.WindowStart.Format("2006-01-02"),
		e.WindowEnd.Format("2006-01-02"))
}

// ConflictError reports an overlap with an existing showtime in the
// same room on the same date.  The conflicting slot is identified so
// the admin can see exactly which entry collides.
type ConflictError struct {
	ShowtimeID uint64
	Start, End string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("overlaps existing showtime %d (%s-%s)", e.ShowtimeID, e.Start, e.End)
}
