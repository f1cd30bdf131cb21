package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Semicolon3407/movie-booking/internal/model"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func testMovie() *model.Movie {
	return &model.Movie{
		ID:        1,
		Title:     "Interstellar",
		StartDate: day("2024-03-01"),
		EndDate:   day("2024-03-10"),
		Status:    model.MovieHosting,
	}
}

func TestValidateEntryWindow(t *testing.T) {
	m := testMovie()

	// Last day of the window is still valid.
	require.NoError(t, ValidateEntry(m, nil, day("2024-03-10"), "10:00", "12:00", 0))

	// One day past the window fails with the bounds attached.
	err := ValidateEntry(m, nil, day("2024-03-11"), "10:00", "12:00", 0)
	var owe *OutsideWindowError
	require.ErrorAs(t, err, &owe)
	assert.Equal(t, day("2024-03-01"), owe.WindowStart)
	assert.Equal(t, day("2024-03-10"), owe.WindowEnd)

	// Time-of-day on the candidate must not affect the comparison.
	late := day("2024-03-10").Add(23*time.Hour + 30*time.Minute)
	require.NoError(t, ValidateEntry(m, nil, late, "23:30", "00:30", 0))
}

func TestValidateEntryTimeChecks(t *testing.T) {
	m := testMovie()

	err := ValidateEntry(m, nil, day("2024-03-05"), "25:00", "12:00", 0)
	var ite *InvalidTimeError
	require.ErrorAs(t, err, &ite)

	err = ValidateEntry(m, nil, day("2024-03-05"), "12:00", "12:00", 0)
	var ire *InvalidRangeError
	require.ErrorAs(t, err, &ire)
}

func TestValidateEntryConflicts(t *testing.T) {
	m := testMovie()
	siblings := []model.Showtime{
		{ID: 7, RoomID: 1, MovieID: 1, Date: day("2024-03-05"), StartTime: "10:00", EndTime: "12:00"},
		{ID: 8, RoomID: 1, MovieID: 1, Date: day("2024-03-06"), StartTime: "10:00", EndTime: "12:00"},
	}

	// Overlap on the same date is a conflict naming the sibling.
	err := ValidateEntry(m, siblings, day("2024-03-05"), "11:00", "13:00", 0)
	var ce *ConflictError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, uint64(7), ce.ShowtimeID)
	assert.Equal(t, "10:00", ce.Start)
	assert.Equal(t, "12:00", ce.End)

	// Same slot on a different date is fine.
	require.NoError(t, ValidateEntry(m, siblings, day("2024-03-07"), "11:00", "13:00", 0))

	// Back-to-back slots do not conflict (half-open intervals).
	require.NoError(t, ValidateEntry(m, siblings, day("2024-03-05"), "12:00", "14:00", 0))

	// Updating showtime 7 against itself must not self-conflict.
	require.NoError(t, ValidateEntry(m, siblings, day("2024-03-05"), "10:30", "11:30", 7))

	// A wrapping candidate collides with an early-morning sibling.
	early := []model.Showtime{{ID: 9, Date: day("2024-03-05"), StartTime: "00:00", EndTime: "01:00"}}
	err = ValidateEntry(m, early, day("2024-03-05"), "23:30", "00:30", 0)
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, uint64(9), ce.ShowtimeID)
}
