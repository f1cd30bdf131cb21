package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Semicolon3407/movie-booking/internal/model"
	"github.com/Semicolon3407/movie-booking/internal/repository"
	"github.com/Semicolon3407/movie-booking/internal/schedule"
)

func seedSchedule(t *testing.T) (*fakeStore, *ScheduleService, time.Time) {
	t.Helper()
	f := newFakeStore()
	start, _ := time.Parse("2006-01-02", "2024-03-01")
	end, _ := time.Parse("2006-01-02", "2024-03-10")
	f.movies[1] = model.Movie{ID: 1, Title: "Dune", StartDate: start, EndDate: end, Status: model.MovieHosting, TicketPriceCents: 50000}
	f.rooms[2] = model.Room{ID: 2, Name: "Audi 1", TotalSeats: 50}
	svc := NewScheduleService(f, roomStore{f}, showtimeStore{f})
	return f, svc, start
}

func TestAllocateCreatesShowtimesWithSeatGrids(t *testing.T) {
	f, svc, start := seedSchedule(t)
	ctx := context.Background()

	created, err := svc.Allocate(ctx, 2, 1, []model.ScheduleEntry{
		{Date: start, Slots: []model.TimeSlot{{Start: "10:00", End: "12:00"}, {Start: "12:00", End: "14:00"}}},
		{Date: start.AddDate(0, 0, 1), Slots: []model.TimeSlot{{Start: "10:00", End: "12:00"}}},
	})
	require.NoError(t, err)
	require.Len(t, created, 3)
	for _, st := range created {
		assert.NotZero(t, st.ID)
		assert.Len(t, f.seats[st.ID], schedule.DefaultRows*schedule.DefaultCols)
		assert.Equal(t, "A1", f.seats[st.ID][0].SeatNumber)
	}
	assert.Len(t, f.showtimes, 3)
}

func TestAllocateRejectsSelfOverlappingBatch(t *testing.T) {
	f, svc, start := seedSchedule(t)
	ctx := context.Background()

	_, err := svc.Allocate(ctx, 2, 1, []model.ScheduleEntry{
		{Date: start, Slots: []model.TimeSlot{
			{Start: "10:00", End: "12:00"},
			{Start: "11:00", End: "13:00"},
		}},
	})
	var conflict *schedule.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Empty(t, f.showtimes, "a rejected batch must persist nothing")
}

func TestAllocateRejectsOverlapWithExisting(t *testing.T) {
	f, svc, start := seedSchedule(t)
	ctx := context.Background()

	_, err := svc.Allocate(ctx, 2, 1, []model.ScheduleEntry{
		{Date: start, Slots: []model.TimeSlot{{Start: "18:00", End: "20:00"}}},
	})
	require.NoError(t, err)

	_, err = svc.Allocate(ctx, 2, 1, []model.ScheduleEntry{
		{Date: start, Slots: []model.TimeSlot{{Start: "19:30", End: "21:30"}}},
	})
	var conflict *schedule.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Len(t, f.showtimes, 1)

	// Touching slots are fine.
	_, err = svc.Allocate(ctx, 2, 1, []model.ScheduleEntry{
		{Date: start, Slots: []model.TimeSlot{{Start: "20:00", End: "22:00"}}},
	})
	require.NoError(t, err)
}

func TestAllocateEnforcesHostingWindow(t *testing.T) {
	_, svc, start := seedSchedule(t)
	ctx := context.Background()

	// Last hosted day is allowed.
	_, err := svc.Allocate(ctx, 2, 1, []model.ScheduleEntry{
		{Date: start.AddDate(0, 0, 9), Slots: []model.TimeSlot{{Start: "10:00", End: "12:00"}}},
	})
	require.NoError(t, err)

	_, err = svc.Allocate(ctx, 2, 1, []model.ScheduleEntry{
		{Date: start.AddDate(0, 0, 10), Slots: []model.TimeSlot{{Start: "10:00", End: "12:00"}}},
	})
	var outside *schedule.OutsideWindowError
	require.ErrorAs(t, err, &outside)
}

func TestAllocateUnknownRoomOrMovie(t *testing.T) {
	_, svc, start := seedSchedule(t)
	ctx := context.Background()
	entry := []model.ScheduleEntry{{Date: start, Slots: []model.TimeSlot{{Start: "10:00", End: "12:00"}}}}

	_, err := svc.Allocate(ctx, 99, 1, entry)
	assert.ErrorIs(t, err, repository.ErrRoomNotFound)

	_, err = svc.Allocate(ctx, 2, 99, entry)
	assert.ErrorIs(t, err, repository.ErrMovieNotFound)
}

func TestUpdateExcludesSelfFromConflictScan(t *testing.T) {
	_, svc, start := seedSchedule(t)
	ctx := context.Background()

	created, err := svc.Allocate(ctx, 2, 1, []model.ScheduleEntry{
		{Date: start, Slots: []model.TimeSlot{{Start: "10:00", End: "12:00"}, {Start: "14:00", End: "16:00"}}},
	})
	require.NoError(t, err)
	first := created[0]

	// Shift within the showtime's own old range: overlaps only itself.
	got, err := svc.Update(ctx, 2, first.ID, start, "11:00", "13:00")
	require.NoError(t, err)
	assert.Equal(t, "11:00", got.StartTime)
	assert.Equal(t, "13:00", got.EndTime)

	// Colliding with the sibling still fails.
	_, err = svc.Update(ctx, 2, first.ID, start, "15:00", "17:00")
	var conflict *schedule.ConflictError
	require.ErrorAs(t, err, &conflict)
}

func TestUpdateAndDeleteCheckRoomOwnership(t *testing.T) {
	f, svc, start := seedSchedule(t)
	ctx := context.Background()
	f.rooms[3] = model.Room{ID: 3, Name: "Audi 2", TotalSeats: 30}

	created, err := svc.Allocate(ctx, 2, 1, []model.ScheduleEntry{
		{Date: start, Slots: []model.TimeSlot{{Start: "10:00", End: "12:00"}}},
	})
	require.NoError(t, err)

	_, err = svc.Update(ctx, 3, created[0].ID, start, "10:00", "12:00")
	assert.ErrorIs(t, err, repository.ErrShowtimeNotFound)

	err = svc.Delete(ctx, 3, created[0].ID)
	assert.ErrorIs(t, err, repository.ErrShowtimeNotFound)

	require.NoError(t, svc.Delete(ctx, 2, created[0].ID))
	assert.Empty(t, f.showtimes)
}

func TestListByMovieGroupsByRoom(t *testing.T) {
	f, svc, start := seedSchedule(t)
	ctx := context.Background()
	f.rooms[3] = model.Room{ID: 3, Name: "Audi 2", TotalSeats: 30}

	_, err := svc.Allocate(ctx, 2, 1, []model.ScheduleEntry{
		{Date: start, Slots: []model.TimeSlot{{Start: "10:00", End: "12:00"}}},
	})
	require.NoError(t, err)
	_, err = svc.Allocate(ctx, 3, 1, []model.ScheduleEntry{
		{Date: start, Slots: []model.TimeSlot{{Start: "10:00", End: "12:00"}}},
	})
	require.NoError(t, err)

	groups, err := svc.ListByMovie(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, groups, 2)
	for _, g := range groups {
		assert.Len(t, g.Showtimes, 1)
	}
}
