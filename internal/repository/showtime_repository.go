package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Semicolon3407/movie-booking/internal/model"
)

// ShowtimeRepo owns persistence for showtimes and their seat grids.
// A showtime and its seats form one aggregate: they are inserted and
// deleted together, and batch allocation is all-or-nothing inside a
// single transaction.
type ShowtimeRepo struct {
	db *sql.DB
}

// NewShowtimeRepo returns a ShowtimeRepo bound to the given database.
func NewShowtimeRepo(db *sql.DB) *ShowtimeRepo { return &ShowtimeRepo{db: db} }

const showtimeColumns = `id, room_id, movie_id, show_date, start_time, end_time, created_at, updated_at`

func scanShowtime(row interface{ Scan(...any) error }) (*model.Showtime, error) {
	var s model.Showtime
	if err := row.Scan(
		&s.ID, &s.RoomID, &s.MovieID, &s.Date, &s.StartTime, &s.EndTime,
		&s.CreatedAt, &s.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &s, nil
}

// GetByID returns a showtime without its seat grid, or
// ErrShowtimeNotFound.
func (r *ShowtimeRepo) GetByID(ctx context.Context, id uint64) (*model.Showtime, error) {
	const q = `SELECT ` + showtimeColumns + ` FROM showtimes WHERE id = ?`
	s, err := scanShowtime(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrShowtimeNotFound
		}
		return nil, err
	}
	return s, nil
}

// ListByRoom returns all showtimes of a room ordered by date then
// start time.
func (r *ShowtimeRepo) ListByRoom(ctx context.Context, roomID uint64) ([]model.Showtime, error) {
	const q = `SELECT ` + showtimeColumns + ` FROM showtimes
			   WHERE room_id = ?
			   ORDER BY show_date ASC, start_time ASC`
	return r.queryShowtimes(ctx, q, roomID)
}

// ListByRoomAndDate returns the showtimes a candidate entry must be
// checked against: every showtime of the room on the given calendar
// date.
func (r *ShowtimeRepo) ListByRoomAndDate(ctx context.Context, roomID uint64, date time.Time) ([]model.Showtime, error) {
	const q = `SELECT ` + showtimeColumns + ` FROM showtimes
			   WHERE room_id = ? AND show_date = ?
			   ORDER BY start_time ASC`
	return r.queryShowtimes(ctx, q, roomID, model.DateOnly(date))
}

func (r *ShowtimeRepo) queryShowtimes(ctx context.Context, q string, args ...any) ([]model.Showtime, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	result := make([]model.Showtime, 0)
	for rows.Next() {
		s, err := scanShowtime(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *s)
	}
	return result, rows.Err()
}

// InsertBatch persists a validated batch of showtimes together with
// their seat grids in one transaction.  Either every showtime in the
// batch is committed or none is; the service layer guarantees the
// batch has already passed validation.  Generated IDs are written
// back onto the input slice.
func (r *ShowtimeRepo) InsertBatch(ctx context.Context, showtimes []model.Showtime) error {
	if len(showtimes) == 0 {
		return nil
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()
	const ins = `INSERT INTO showtimes (room_id, movie_id, show_date, start_time, end_time) VALUES (?, ?, ?, ?, ?)`
	for i := range showtimes {
		st := &showtimes[i]
		res, err := tx.ExecContext(ctx, ins, st.RoomID, st.MovieID, model.DateOnly(st.Date), st.StartTime, st.EndTime)
		if err != nil {
			return err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		st.ID = uint64(id)
		if err := insertSeatsTx(ctx, tx, st.ID, st.Seats); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// insertSeatsTx bulk-inserts a showtime's seat grid in one statement.
func insertSeatsTx(ctx context.Context, tx *sql.Tx, showtimeID uint64, seats []model.Seat) error {
	if len(seats) == 0 {
		return nil
	}
	q := `INSERT INTO seats (showtime_id, seat_number, status) VALUES `
	args := make([]any, 0, len(seats)*3)
	for i, s := range seats {
		if i > 0 {
			q += ","
		}
		q += "(?, ?, ?)"
		args = append(args, showtimeID, s.SeatNumber, s.Status)
	}
	_, err := tx.ExecContext(ctx, q, args...)
	return err
}

// UpdateTimes mutates a showtime's date and time range in place.  The
// caller must have re-run full validation (excluding this showtime)
// beforehand.
func (r *ShowtimeRepo) UpdateTimes(ctx context.Context, id uint64, date time.Time, start, end string) error {
	const q = `UPDATE showtimes SET show_date = ?, start_time = ?, end_time = ?, updated_at = CURRENT_TIMESTAMP
			   WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, model.DateOnly(date), start, end, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// Distinguish a missing row from an identical-value update.
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes a showtime and its seat grid.  Deletion is refused
// with ErrConflict while confirmed bookings still reference the
// showtime; cancelled bookings keep their own seat snapshots and do
// not block deletion.
func (r *ShowtimeRepo) Delete(ctx context.Context, id uint64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()
	var exists int
	if err := tx.QueryRowContext(ctx, `SELECT 1 FROM showtimes WHERE id = ?`, id).Scan(&exists); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrShowtimeNotFound
		}
		return err
	}
	var active int
	const cnt = `SELECT COUNT(*) FROM bookings WHERE showtime_id = ? AND status = ?`
	if err := tx.QueryRowContext(ctx, cnt, id, model.BookingConfirmed).Scan(&active); err != nil {
		return err
	}
	if active > 0 {
		return ErrConflict
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM seats WHERE showtime_id = ?`, id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM showtimes WHERE id = ?`, id); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// ListByMovie returns every screening of a movie grouped by room,
// ordered by room name then date and start time.
func (r *ShowtimeRepo) ListByMovie(ctx context.Context, movieID uint64) ([]model.RoomShowtimes, error) {
	const q = `SELECT r.id, r.name, r.total_seats, r.created_at, r.updated_at,
					  s.id, s.room_id, s.movie_id, s.show_date, s.start_time, s.end_time, s.created_at, s.updated_at
			   FROM showtimes s
			   JOIN rooms r ON r.id = s.room_id
			   WHERE s.movie_id = ?
			   ORDER BY r.name ASC, s.show_date ASC, s.start_time ASC`
	rows, err := r.db.QueryContext(ctx, q, movieID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	grouped := make([]model.RoomShowtimes, 0)
	index := make(map[uint64]int)
	for rows.Next() {
		var room model.Room
		var s model.Showtime
		if err := rows.Scan(
			&room.ID, &room.Name, &room.TotalSeats, &room.CreatedAt, &room.UpdatedAt,
			&s.ID, &s.RoomID, &s.MovieID, &s.Date, &s.StartTime, &s.EndTime, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, err
		}
		idx, ok := index[room.ID]
		if !ok {
			idx = len(grouped)
			index[room.ID] = idx
			grouped = append(grouped, model.RoomShowtimes{Room: room})
		}
		grouped[idx].Showtimes = append(grouped[idx].Showtimes, s)
	}
	return grouped, rows.Err()
}
