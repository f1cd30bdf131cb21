package model

import "time"

// Showtime is a scheduled screening of one movie in one room on a
// specific calendar date and time range.  Date is stored date-only
// (midnight UTC); StartTime and EndTime are 24-hour "HH:MM" strings.
// A range whose EndTime is numerically before its StartTime crosses
// midnight.  Within one room no two showtimes on the same date may
// have overlapping [StartTime, EndTime) intervals.
type Showtime struct {
	ID        uint64    `json:"id"`
	RoomID    uint64    `json:"room_id"`
	MovieID   uint64    `json:"movie_id"`
	Date      time.Time `json:"date"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	Seats     []Seat    `json:"seats,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TimeSlot is one proposed start/end pair inside a schedule request.
type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ScheduleEntry groups the time slots requested for a single calendar
// date in a bulk allocation.
type ScheduleEntry struct {
	Date  time.Time  `json:"date"`
	Slots []TimeSlot `json:"slots"`
}

// RoomShowtimes groups a room with its showtimes; used to present all
// screenings of one movie across rooms.
type RoomShowtimes struct {
	Room      Room       `json:"room"`
	Showtimes []Showtime `json:"showtimes"`
}
