package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Semicolon3407/movie-booking/internal/model"
)

func newMock(t *testing.T) (*BookingRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewBookingRepo(db), mock
}

func TestReserveCommitsSeatFlipAndBooking(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE seats SET status = \? WHERE showtime_id = \? AND status = \? AND seat_number IN`).
		WithArgs(model.SeatBooked, uint64(10), model.SeatAvailable, "A1", "A2").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`INSERT INTO bookings`).
		WillReturnResult(sqlmock.NewResult(77, 1))
	mock.ExpectExec(`INSERT INTO booking_seats`).
		WithArgs(uint64(77), "A1", uint64(77), "A2").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`INSERT INTO booking_menu_items`).
		WithArgs(uint64(77), uint64(7), uint32(2), uint32(15000)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	b := &model.Booking{
		UserID:          42,
		MovieID:         1,
		RoomID:          2,
		ShowtimeID:      10,
		Seats:           []string{"A1", "A2"},
		MenuItems:       []model.BookingMenuItem{{MenuID: 7, Quantity: 2, PriceCents: 15000}},
		TotalPriceCents: 130000,
		PaymentMethod:   model.PayCard,
		Status:          model.BookingConfirmed,
	}
	require.NoError(t, repo.Reserve(context.Background(), b))
	assert.Equal(t, uint64(77), b.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReserveRollsBackOnLostRace(t *testing.T) {
	repo, mock := newMock(t)

	// One of the two seats was taken between read and write: the
	// conditional update touches fewer rows than requested.
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE seats SET status = \?`).
		WithArgs(model.SeatBooked, uint64(10), model.SeatAvailable, "A1", "A2").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectRollback()

	b := &model.Booking{ShowtimeID: 10, Seats: []string{"A1", "A2"}}
	err := repo.Reserve(context.Background(), b)
	assert.ErrorIs(t, err, ErrSeatConflict)
	assert.Zero(t, b.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkCancelledIdempotent(t *testing.T) {
	repo, mock := newMock(t)

	// Zero rows affected but the booking exists: already cancelled.
	mock.ExpectExec(`UPDATE bookings SET status = \?`).
		WithArgs(model.BookingCancelled, uint64(5), model.BookingConfirmed).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT 1 FROM bookings WHERE id = \?`).
		WithArgs(uint64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))

	require.NoError(t, repo.MarkCancelled(context.Background(), 5))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkCancelledMissingBooking(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec(`UPDATE bookings SET status = \?`).
		WithArgs(model.BookingCancelled, uint64(9), model.BookingConfirmed).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT 1 FROM bookings WHERE id = \?`).
		WithArgs(uint64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"1"}))

	err := repo.MarkCancelled(context.Background(), 9)
	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReleaseSeatsOnlyFlipsBookedRows(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec(`UPDATE seats SET status = \? WHERE showtime_id = \? AND status = \? AND seat_number IN`).
		WithArgs(model.SeatAvailable, uint64(10), model.SeatBooked, "C3", "C4").
		WillReturnResult(sqlmock.NewResult(0, 1))

	n, err := repo.ReleaseSeats(context.Background(), 10, []string{"C3", "C4"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
