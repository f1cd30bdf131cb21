package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMinutes(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:05", 545, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"1:00", 0, true},
		{"12-30", 0, true},
		{"ab:cd", 0, true},
		{"", 0, true},
	}
	for _, tc := range cases {
		got, err := ToMinutes(tc.in)
		if tc.wantErr {
			var ite *InvalidTimeError
			require.ErrorAs(t, err, &ite, "input %q", tc.in)
			assert.Equal(t, tc.in, ite.Value)
			continue
		}
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestParseRangeRejectsZeroLength(t *testing.T) {
	_, _, err := ParseRange("10:00", "10:00")
	var ire *InvalidRangeError
	require.ErrorAs(t, err, &ire)
}

func TestParseRangeAllowsWrap(t *testing.T) {
	s, e, err := ParseRange("23:30", "00:30")
	require.NoError(t, err)
	assert.Equal(t, 23*60+30, s)
	assert.Equal(t, 30, e)
}

func TestOverlaps(t *testing.T) {
	mm := func(s string) int {
		v, err := ToMinutes(s)
		require.NoError(t, err)
		return v
	}
	cases := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     string
		want                           bool
	}{
		{"disjoint", "10:00", "12:00", "13:00", "14:00", false},
		{"nested", "10:00", "14:00", "11:00", "12:00", true},
		{"partial", "10:00", "12:00", "11:00", "13:00", true},
		{"touching boundary", "22:00", "23:00", "23:00", "23:30", false},
		{"gap after boundary", "22:00", "23:00", "23:01", "23:30", false},
		{"wrap hits early morning", "23:30", "00:30", "00:00", "01:00", true},
		{"wrap hits late evening", "23:30", "00:30", "23:00", "23:45", true},
		{"wrap misses middle of day", "23:30", "00:30", "12:00", "13:00", false},
		{"both wrap", "23:00", "01:00", "00:30", "02:00", true},
		{"wrap touching start", "23:30", "00:30", "00:30", "01:30", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Overlaps(mm(tc.aStart), mm(tc.aEnd), mm(tc.bStart), mm(tc.bEnd))
			assert.Equal(t, tc.want, got)
			// Overlap detection must be symmetric.
			assert.Equal(t, got, Overlaps(mm(tc.bStart), mm(tc.bEnd), mm(tc.aStart), mm(tc.aEnd)))
		})
	}
}
