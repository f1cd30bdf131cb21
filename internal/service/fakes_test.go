package service

import (
	"context"
	"sync"
	"time"

	"github.com/Semicolon3407/movie-booking/internal/model"
	"github.com/Semicolon3407/movie-booking/internal/queue"
	"github.com/Semicolon3407/movie-booking/internal/repository"
)

// fakeStore is an in-memory implementation of every store interface
// the services consume.  Its Reserve mirrors the repository contract:
// a conditional flip that fails with ErrSeatConflict when any seat is
// no longer available at write time, all under one mutex so the fake
// is itself race-free.
type fakeStore struct {
	mu        sync.Mutex
	movies    map[uint64]model.Movie
	rooms     map[uint64]model.Room
	showtimes map[uint64]model.Showtime
	seats     map[uint64][]model.Seat
	bookings  map[uint64]model.Booking
	prices    map[uint64]uint32
	points    map[uint64]uint32
	notes     []model.Notification
	events    []queue.BookingConfirmedEvent
	nextID    uint64
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		movies:    make(map[uint64]model.Movie),
		rooms:     make(map[uint64]model.Room),
		showtimes: make(map[uint64]model.Showtime),
		seats:     make(map[uint64][]model.Seat),
		bookings:  make(map[uint64]model.Booking),
		prices:    make(map[uint64]uint32),
		points:    make(map[uint64]uint32),
		nextID:    100,
	}
}

func (f *fakeStore) id() uint64 {
	f.nextID++
	return f.nextID
}

func (f *fakeStore) GetByID(ctx context.Context, id uint64) (*model.Movie, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, ok := f.movies[id]
	if !ok {
		return nil, repository.ErrMovieNotFound
	}
	return &m, nil
}

// roomStore adapts fakeStore to RoomStore; MovieStore and RoomStore
// both expose GetByID, so the room view needs its own receiver.
type roomStore struct{ f *fakeStore }

func (r roomStore) GetByID(ctx context.Context, id uint64) (*model.Room, error) {
	r.f.mu.Lock()
	defer r.f.mu.Unlock()
	room, ok := r.f.rooms[id]
	if !ok {
		return nil, repository.ErrRoomNotFound
	}
	return &room, nil
}

// showtimeStore adapts fakeStore to ShowtimeStore.
type showtimeStore struct{ f *fakeStore }

func (s showtimeStore) GetByID(ctx context.Context, id uint64) (*model.Showtime, error) {
	s.f.mu.Lock()
	defer s.f.mu.Unlock()
	st, ok := s.f.showtimes[id]
	if !ok {
		return nil, repository.ErrShowtimeNotFound
	}
	return &st, nil
}

func (s showtimeStore) ListByRoom(ctx context.Context, roomID uint64) ([]model.Showtime, error) {
	s.f.mu.Lock()
	defer s.f.mu.Unlock()
	var out []model.Showtime
	for _, st := range s.f.showtimes {
		if st.RoomID == roomID {
			out = append(out, st)
		}
	}
	return out, nil
}

func (s showtimeStore) ListByRoomAndDate(ctx context.Context, roomID uint64, date time.Time) ([]model.Showtime, error) {
	s.f.mu.Lock()
	defer s.f.mu.Unlock()
	day := model.DateOnly(date)
	var out []model.Showtime
	for _, st := range s.f.showtimes {
		if st.RoomID == roomID && model.DateOnly(st.Date).Equal(day) {
			out = append(out, st)
		}
	}
	return out, nil
}

func (s showtimeStore) ListByMovie(ctx context.Context, movieID uint64) ([]model.RoomShowtimes, error) {
	s.f.mu.Lock()
	defer s.f.mu.Unlock()
	byRoom := make(map[uint64]*model.RoomShowtimes)
	var out []model.RoomShowtimes
	for _, st := range s.f.showtimes {
		if st.MovieID != movieID {
			continue
		}
		g, ok := byRoom[st.RoomID]
		if !ok {
			out = append(out, model.RoomShowtimes{Room: s.f.rooms[st.RoomID]})
			g = &out[len(out)-1]
			byRoom[st.RoomID] = g
		}
		g.Showtimes = append(g.Showtimes, st)
	}
	return out, nil
}

func (s showtimeStore) InsertBatch(ctx context.Context, showtimes []model.Showtime) error {
	s.f.mu.Lock()
	defer s.f.mu.Unlock()
	for i := range showtimes {
		st := &showtimes[i]
		st.ID = s.f.id()
		grid := make([]model.Seat, len(st.Seats))
		copy(grid, st.Seats)
		s.f.seats[st.ID] = grid
		s.f.showtimes[st.ID] = *st
	}
	return nil
}

func (s showtimeStore) UpdateTimes(ctx context.Context, id uint64, date time.Time, start, end string) error {
	s.f.mu.Lock()
	defer s.f.mu.Unlock()
	st, ok := s.f.showtimes[id]
	if !ok {
		return repository.ErrShowtimeNotFound
	}
	st.Date = model.DateOnly(date)
	st.StartTime = start
	st.EndTime = end
	s.f.showtimes[id] = st
	return nil
}

func (s showtimeStore) Delete(ctx context.Context, id uint64) error {
	s.f.mu.Lock()
	defer s.f.mu.Unlock()
	if _, ok := s.f.showtimes[id]; !ok {
		return repository.ErrShowtimeNotFound
	}
	delete(s.f.showtimes, id)
	delete(s.f.seats, id)
	return nil
}

// bookingStore adapts fakeStore to BookingStore.
type bookingStore struct{ f *fakeStore }

func (b bookingStore) SeatsByShowtime(ctx context.Context, showtimeID uint64) ([]model.Seat, error) {
	b.f.mu.Lock()
	defer b.f.mu.Unlock()
	grid, ok := b.f.seats[showtimeID]
	if !ok {
		return nil, repository.ErrShowtimeNotFound
	}
	out := make([]model.Seat, len(grid))
	copy(out, grid)
	return out, nil
}

func (b bookingStore) Reserve(ctx context.Context, bk *model.Booking) error {
	b.f.mu.Lock()
	defer b.f.mu.Unlock()
	grid := b.f.seats[bk.ShowtimeID]
	idx := make(map[string]int, len(grid))
	for i, seat := range grid {
		idx[seat.SeatNumber] = i
	}
	for _, sn := range bk.Seats {
		i, ok := idx[sn]
		if !ok || grid[i].Status != model.SeatAvailable {
			return repository.ErrSeatConflict
		}
	}
	for _, sn := range bk.Seats {
		grid[idx[sn]].Status = model.SeatBooked
	}
	bk.ID = b.f.id()
	b.f.bookings[bk.ID] = *bk
	return nil
}

func (b bookingStore) GetByID(ctx context.Context, id uint64) (*model.Booking, error) {
	b.f.mu.Lock()
	defer b.f.mu.Unlock()
	bk, ok := b.f.bookings[id]
	if !ok {
		return nil, repository.ErrBookingNotFound
	}
	return &bk, nil
}

func (b bookingStore) MarkCancelled(ctx context.Context, id uint64) error {
	b.f.mu.Lock()
	defer b.f.mu.Unlock()
	bk, ok := b.f.bookings[id]
	if !ok {
		return repository.ErrBookingNotFound
	}
	bk.Status = model.BookingCancelled
	b.f.bookings[id] = bk
	return nil
}

func (b bookingStore) ReleaseSeats(ctx context.Context, showtimeID uint64, seatNumbers []string) (int64, error) {
	b.f.mu.Lock()
	defer b.f.mu.Unlock()
	grid, ok := b.f.seats[showtimeID]
	if !ok {
		return 0, repository.ErrShowtimeNotFound
	}
	var released int64
	for _, sn := range seatNumbers {
		for i := range grid {
			if grid[i].SeatNumber == sn && grid[i].Status == model.SeatBooked {
				grid[i].Status = model.SeatAvailable
				released++
			}
		}
	}
	return released, nil
}

// menuStore adapts fakeStore to MenuStore.
type menuStore struct{ f *fakeStore }

func (m menuStore) PricesByIDs(ctx context.Context, ids []uint64) (map[uint64]uint32, error) {
	m.f.mu.Lock()
	defer m.f.mu.Unlock()
	out := make(map[uint64]uint32, len(ids))
	for _, id := range ids {
		price, ok := m.f.prices[id]
		if !ok {
			return nil, repository.ErrMenuItemNotFound
		}
		out[id] = price
	}
	return out, nil
}

// loyaltyStore adapts fakeStore to LoyaltyStore.
type loyaltyStore struct{ f *fakeStore }

func (l loyaltyStore) AddLoyaltyPoints(ctx context.Context, userID uint64, points uint32) error {
	l.f.mu.Lock()
	defer l.f.mu.Unlock()
	l.f.points[userID] += points
	return nil
}

// notificationStore adapts fakeStore to NotificationStore.
type notificationStore struct{ f *fakeStore }

func (n notificationStore) Create(ctx context.Context, note *model.Notification) error {
	n.f.mu.Lock()
	defer n.f.mu.Unlock()
	note.ID = n.f.id()
	n.f.notes = append(n.f.notes, *note)
	return nil
}

// recordingPublisher captures published events in the fake store.
type recordingPublisher struct{ f *fakeStore }

func (p recordingPublisher) PublishBookingConfirmed(ctx context.Context, ev queue.BookingConfirmedEvent) error {
	p.f.mu.Lock()
	defer p.f.mu.Unlock()
	p.f.events = append(p.f.events, ev)
	return nil
}
