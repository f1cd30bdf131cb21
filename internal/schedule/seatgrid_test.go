package schedule

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Semicolon3407/movie-booking/internal/model"
)

func TestGenerateSeatsDeterministic(t *testing.T) {
	seats, err := GenerateSeats(5, 10)
	require.NoError(t, err)
	require.Len(t, seats, 50)

	rows := []string{"A", "B", "C", "D", "E"}
	i := 0
	for _, r := range rows {
		for c := 1; c <= 10; c++ {
			assert.Equal(t, fmt.Sprintf("%s%d", r, c), seats[i].SeatNumber)
			assert.Equal(t, model.SeatAvailable, seats[i].Status)
			i++
		}
	}
}

func TestGenerateSeatsInvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 10}, {5, 0}, {-1, 10}, {5, -3}} {
		_, err := GenerateSeats(dims[0], dims[1])
		assert.Error(t, err, "dims %v", dims)
	}
}

func TestRowLabelPastZ(t *testing.T) {
	seats, err := GenerateSeats(28, 1)
	require.NoError(t, err)
	assert.Equal(t, "Z1", seats[25].SeatNumber)
	assert.Equal(t, "AA1", seats[26].SeatNumber)
	assert.Equal(t, "AB1", seats[27].SeatNumber)
}
