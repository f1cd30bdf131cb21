package schedule

import (
	"time"

	"github.com/Semicolon3407/movie-booking/internal/model"
)

// ValidateEntry is the gatekeeper for all showtime creation and
// mutation.  It checks, in order:
//
//  1. the candidate date lies inside the movie's screening window
//     (date-only comparison, inclusive bounds);
//  2. both time strings are well-formed and the range is non-empty;
//  3. the candidate does not overlap any sibling showtime in the same
//     room on the same calendar date, excluding excludeID when a
//     showtime is being updated against itself.
//
// Bulk allocation and single-showtime update call this identically;
// only excludeID differs (zero means no exclusion).
func ValidateEntry(movie *model.Movie, siblings []model.Showtime, date time.Time, start, end string, excludeID uint64) error {
	if !movie.WindowContains(date) {
		return &OutsideWindowError{
			Date:        model.DateOnly(date),
			WindowStart: model.DateOnly(movie.StartDate),
			WindowEnd:   model.DateOnly(movie.EndDate),
		}
	}
	s, e, err := ParseRange(start, end)
	if err != nil {
		return err
	}
	day := model.DateOnly(date)
	for i := range siblings {
		sib := &siblings[i]
		if sib.ID != 0 && sib.ID == excludeID {
			continue
		}
		if !model.DateOnly(sib.Date).Equal(day) {
			continue
		}
		ss, se, err := ParseRange(sib.StartTime, sib.EndTime)
		if err != nil {
			// A malformed sibling should never have been persisted;
			// treat it as conflicting rather than silently skipping.
			return &ConflictError{ShowtimeID: sib.ID, Start: sib.StartTime, End: sib.EndTime}
		}
		if Overlaps(s, e, ss, se) {
			return &ConflictError{ShowtimeID: sib.ID, Start: sib.StartTime, End: sib.EndTime}
		}
	}
	return nil
}
