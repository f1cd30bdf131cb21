package schedule

const minutesPerDay = 24 * 60

// ToMinutes converts a strict 24-hour "HH:MM" string to minutes since
// midnight in [0,1440).  Anything that is not exactly two digits, a
// colon and two digits within range fails with *InvalidTimeError.
func ToMinutes(s string) (int, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, &InvalidTimeError{Value: s}
	}
	h, ok1 := twoDigits(s[0], s[1])
	m, ok2 := twoDigits(s[3], s[4])
	if !ok1 || !ok2 || h > 23 || m > 59 {
		return 0, &InvalidTimeError{Value: s}
	}
	return h*60 + m, nil
}

func twoDigits(a, b byte) (int, bool) {
	if a < '0' || a > '9' || b < '0' || b > '9' {
		return 0, false
	}
	return int(a-'0')*10 + int(b-'0'), true
}

// ParseRange validates both endpoints of a time range and returns them
// in minutes.  end < start signals a legal midnight-crossing range;
// end == start is rejected because a zero-length slot and a 24-hour
// wrap would be indistinguishable.
func ParseRange(start, end string) (int, int, error) {
	s, err := ToMinutes(start)
	if err != nil {
		return 0, 0, err
	}
	e, err := ToMinutes(end)
	if err != nil {
		return 0, 0, err
	}
	if s == e {
		return 0, 0, &InvalidRangeError{Start: start, End: end}
	}
	return s, e, nil
}

// Overlaps reports whether two [start, end) ranges in minutes since
// midnight intersect.  A range whose end is numerically before its
// start crosses midnight and is split into [start,1440) and [0,end)
// before testing, so 23:30-00:30 correctly collides with 00:00-01:00.
// Touching endpoints do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	for _, a := range split(aStart, aEnd) {
		for _, b := range split(bStart, bEnd) {
			if a[0] < b[1] && b[0] < a[1] {
				return true
			}
		}
	}
	return false
}

// split breaks a wrapping range into its two non-wrapping halves and
// returns a non-wrapping range unchanged.
func split(start, end int) [][2]int {
	if end < start {
		return [][2]int{{start, minutesPerDay}, {0, end}}
	}
	return [][2]int{{start, end}}
}
