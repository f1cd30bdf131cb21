package service

import (
	"context"
	"time"

	"github.com/Semicolon3407/movie-booking/internal/model"
	"github.com/Semicolon3407/movie-booking/internal/repository"
	"github.com/Semicolon3407/movie-booking/internal/schedule"
)

// MovieStore is the read-only movie catalog dependency.
type MovieStore interface {
	GetByID(ctx context.Context, id uint64) (*model.Movie, error)
}

// RoomStore resolves rooms for validation and seat grid sizing.
type RoomStore interface {
	GetByID(ctx context.Context, id uint64) (*model.Room, error)
}

// ShowtimeStore owns showtime persistence.  InsertBatch must be
// all-or-nothing: either every showtime (with its seat grid) commits
// or none does.
type ShowtimeStore interface {
	GetByID(ctx context.Context, id uint64) (*model.Showtime, error)
	ListByRoom(ctx context.Context, roomID uint64) ([]model.Showtime, error)
	ListByRoomAndDate(ctx context.Context, roomID uint64, date time.Time) ([]model.Showtime, error)
	ListByMovie(ctx context.Context, movieID uint64) ([]model.RoomShowtimes, error)
	InsertBatch(ctx context.Context, showtimes []model.Showtime) error
	UpdateTimes(ctx context.Context, id uint64, date time.Time, start, end string) error
	Delete(ctx context.Context, id uint64) error
}

// ScheduleService is the gatekeeper for showtime allocation and
// mutation.  Every mutating operation takes the target room's lock so
// concurrent allocations against the same room cannot both pass the
// overlap scan and then both append.
type ScheduleService struct {
	movies    MovieStore
	rooms     RoomStore
	showtimes ShowtimeStore
	roomLocks *keyedMutex
	gridRows  int
	gridCols  int
}

// NewScheduleService wires a ScheduleService with the default seat
// grid dimensions.
func NewScheduleService(movies MovieStore, rooms RoomStore, showtimes ShowtimeStore) *ScheduleService {
	return &ScheduleService{
		movies:    movies,
		rooms:     rooms,
		showtimes: showtimes,
		roomLocks: newKeyedMutex(),
		gridRows:  schedule.DefaultRows,
		gridCols:  schedule.DefaultCols,
	}
}

// Allocate validates and persists an admin-submitted schedule: every
// date x slot pair becomes one showtime with a freshly generated seat
// grid.  Entries are validated in caller order against the room's
// existing showtimes plus the entries accepted earlier in the same
// batch, so two proposed slots that overlap each other are rejected
// even when neither existed beforehand.  The batch commits
// all-or-nothing; a failure on any entry persists nothing.
func (s *ScheduleService) Allocate(ctx context.Context, roomID, movieID uint64, entries []model.ScheduleEntry) ([]model.Showtime, error) {
	unlock := s.roomLocks.Lock(roomID)
	defer unlock()

	if _, err := s.rooms.GetByID(ctx, roomID); err != nil {
		return nil, err
	}
	movie, err := s.movies.GetByID(ctx, movieID)
	if err != nil {
		return nil, err
	}

	accepted := make([]model.Showtime, 0)
	for _, entry := range entries {
		existing, err := s.showtimes.ListByRoomAndDate(ctx, roomID, entry.Date)
		if err != nil {
			return nil, err
		}
		for _, slot := range entry.Slots {
			// Accepted-but-unpersisted entries count as siblings so the
			// batch cannot conflict with itself.
			siblings := append(append([]model.Showtime{}, existing...), accepted...)
			if err := schedule.ValidateEntry(movie, siblings, entry.Date, slot.Start, slot.End, 0); err != nil {
				return nil, err
			}
			seats, err := schedule.GenerateSeats(s.gridRows, s.gridCols)
			if err != nil {
				return nil, err
			}
			accepted = append(accepted, model.Showtime{
				RoomID:    roomID,
				MovieID:   movieID,
				Date:      model.DateOnly(entry.Date),
				StartTime: slot.Start,
				EndTime:   slot.End,
				Seats:     seats,
			})
		}
	}
	if err := s.showtimes.InsertBatch(ctx, accepted); err != nil {
		return nil, err
	}
	return accepted, nil
}

// Update re-validates and mutates one showtime in place.  The same
// rules as allocation apply; the showtime is excluded from the
// conflict scan so it may overlap itself.
func (s *ScheduleService) Update(ctx context.Context, roomID, showtimeID uint64, date time.Time, start, end string) (*model.Showtime, error) {
	unlock := s.roomLocks.Lock(roomID)
	defer unlock()

	st, err := s.showtimes.GetByID(ctx, showtimeID)
	if err != nil {
		return nil, err
	}
	if st.RoomID != roomID {
		return nil, repository.ErrShowtimeNotFound
	}
	movie, err := s.movies.GetByID(ctx, st.MovieID)
	if err != nil {
		return nil, err
	}
	siblings, err := s.showtimes.ListByRoomAndDate(ctx, st.RoomID, date)
	if err != nil {
		return nil, err
	}
	if err := schedule.ValidateEntry(movie, siblings, date, start, end, showtimeID); err != nil {
		return nil, err
	}
	if err := s.showtimes.UpdateTimes(ctx, showtimeID, date, start, end); err != nil {
		return nil, err
	}
	return s.showtimes.GetByID(ctx, showtimeID)
}

// Delete removes one showtime and its seat grid.
func (s *ScheduleService) Delete(ctx context.Context, roomID, showtimeID uint64) error {
	unlock := s.roomLocks.Lock(roomID)
	defer unlock()
	st, err := s.showtimes.GetByID(ctx, showtimeID)
	if err != nil {
		return err
	}
	if st.RoomID != roomID {
		return repository.ErrShowtimeNotFound
	}
	return s.showtimes.Delete(ctx, showtimeID)
}

// ListByRoom returns a room's showtimes.
func (s *ScheduleService) ListByRoom(ctx context.Context, roomID uint64) ([]model.Showtime, error) {
	if _, err := s.rooms.GetByID(ctx, roomID); err != nil {
		return nil, err
	}
	return s.showtimes.ListByRoom(ctx, roomID)
}

// ListByMovie returns every screening of a movie grouped by room.
func (s *ScheduleService) ListByMovie(ctx context.Context, movieID uint64) ([]model.RoomShowtimes, error) {
	if _, err := s.movies.GetByID(ctx, movieID); err != nil {
		return nil, err
	}
	return s.showtimes.ListByMovie(ctx, movieID)
}
