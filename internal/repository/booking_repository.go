package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/Semicolon3407/movie-booking/internal/model"
)

// BookingRepo persists bookings and performs the seat status flips.
// Reserve is the critical write: the seat transition AVAILABLE ->
// BOOKED is a conditional update executed inside the same transaction
// that inserts the booking row, so a reservation that loses a race
// can never be half-committed.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo returns a BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

// SeatsByShowtime returns the full seat grid of a showtime in
// row-major order (the order it was generated in).
func (r *BookingRepo) SeatsByShowtime(ctx context.Context, showtimeID uint64) ([]model.Seat, error) {
	const q = `SELECT id, showtime_id, seat_number, status FROM seats WHERE showtime_id = ? ORDER BY id ASC`
	rows, err := r.db.QueryContext(ctx, q, showtimeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	seats := make([]model.Seat, 0)
	for rows.Next() {
		var s model.Seat
		if err := rows.Scan(&s.ID, &s.ShowtimeID, &s.SeatNumber, &s.Status); err != nil {
			return nil, err
		}
		seats = append(seats, s)
	}
	return seats, rows.Err()
}

// Reserve atomically books the seats listed on b and persists the
// booking with its seat and menu snapshots.  The seat flip only
// succeeds when every requested seat is still AVAILABLE at write time;
// otherwise the transaction rolls back and ErrSeatConflict is
// returned, leaving no seat booked and no booking row behind.
func (r *BookingRepo) Reserve(ctx context.Context, b *model.Booking) error {
	if len(b.Seats) == 0 {
		return errors.New("no seats requested")
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

	// Conditional flip: only AVAILABLE rows change. Affected-row count
	// short of the request means another booking got there first.
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(b.Seats)), ",")
	upd := `UPDATE seats SET status = ? WHERE showtime_id = ? AND status = ? AND seat_number IN (` + placeholders + `)`
	args := make([]any, 0, len(b.Seats)+3)
	args = append(args, model.SeatBooked, b.ShowtimeID, model.SeatAvailable)
	for _, sn := range b.Seats {
		args = append(args, sn)
	}
	res, err := tx.ExecContext(ctx, upd, args...)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n != int64(len(b.Seats)) {
		return ErrSeatConflict
	}

	const ins = `INSERT INTO bookings (user_id, movie_id, room_id, showtime_id, show_date, total_price_cents, payment_method, status, transaction_id, esewa_token)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	ires, err := tx.ExecContext(ctx, ins,
		b.UserID, b.MovieID, b.RoomID, b.ShowtimeID, model.DateOnly(b.Date),
		b.TotalPriceCents, b.PaymentMethod, b.Status, b.TransactionID, b.EsewaToken)
	if err != nil {
		return err
	}
	id, err := ires.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)

	seatIns := `INSERT INTO booking_seats (booking_id, seat_number) VALUES `
	seatArgs := make([]any, 0, len(b.Seats)*2)
	for i, sn := range b.Seats {
		if i > 0 {
			seatIns += ","
		}
		seatIns += "(?, ?)"
		seatArgs = append(seatArgs, b.ID, sn)
	}
	if _, err := tx.ExecContext(ctx, seatIns, seatArgs...); err != nil {
		return err
	}

	if len(b.MenuItems) > 0 {
		menuIns := `INSERT INTO booking_menu_items (booking_id, menu_id, quantity, price_cents) VALUES `
		menuArgs := make([]any, 0, len(b.MenuItems)*4)
		for i, mi := range b.MenuItems {
			if i > 0 {
				menuIns += ","
			}
			menuIns += "(?, ?, ?, ?)"
			menuArgs = append(menuArgs, b.ID, mi.MenuID, mi.Quantity, mi.PriceCents)
		}
		if _, err := tx.ExecContext(ctx, menuIns, menuArgs...); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// GetByID loads a booking with its seat and menu snapshots, or
// returns ErrBookingNotFound.
func (r *BookingRepo) GetByID(ctx context.Context, id uint64) (*model.Booking, error) {
	const q = `SELECT id, user_id, movie_id, room_id, showtime_id, show_date, total_price_cents,
					  payment_method, status, transaction_id, esewa_token, created_at, updated_at
			   FROM bookings WHERE id = ?`
	var b model.Booking
	var txnID, token sql.NullString
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&b.ID, &b.UserID, &b.MovieID, &b.RoomID, &b.ShowtimeID, &b.Date, &b.TotalPriceCents,
		&b.PaymentMethod, &b.Status, &txnID, &token, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if txnID.Valid {
		v := txnID.String
		b.TransactionID = &v
	}
	if token.Valid {
		v := token.String
		b.EsewaToken = &v
	}
	if err := r.loadSnapshots(ctx, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepo) loadSnapshots(ctx context.Context, b *model.Booking) error {
	const seatQ = `SELECT seat_number FROM booking_seats WHERE booking_id = ? ORDER BY id ASC`
	rows, err := r.db.QueryContext(ctx, seatQ, b.ID)
	if err != nil {
		return err
	}
	defer rows.Close()
	b.Seats = b.Seats[:0]
	for rows.Next() {
		var sn string
		if err := rows.Scan(&sn); err != nil {
			return err
		}
		b.Seats = append(b.Seats, sn)
	}
	if err := rows.Err(); err != nil {
		return err
	}
	const menuQ = `SELECT menu_id, quantity, price_cents FROM booking_menu_items WHERE booking_id = ? ORDER BY id ASC`
	mrows, err := r.db.QueryContext(ctx, menuQ, b.ID)
	if err != nil {
		return err
	}
	defer mrows.Close()
	b.MenuItems = nil
	for mrows.Next() {
		var mi model.BookingMenuItem
		if err := mrows.Scan(&mi.MenuID, &mi.Quantity, &mi.PriceCents); err != nil {
			return err
		}
		b.MenuItems = append(b.MenuItems, mi)
	}
	return mrows.Err()
}

// MarkCancelled flips a booking CONFIRMED -> CANCELLED.  The guard on
// the current status makes the call idempotent at the storage level;
// zero affected rows on an existing booking means it was already
// cancelled, which the service treats as success.
func (r *BookingRepo) MarkCancelled(ctx context.Context, id uint64) error {
	const q = `UPDATE bookings SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ? AND status = ?`
	res, err := r.db.ExecContext(ctx, q, model.BookingCancelled, id, model.BookingConfirmed)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var exists int
		if err := r.db.QueryRowContext(ctx, `SELECT 1 FROM bookings WHERE id = ?`, id).Scan(&exists); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrBookingNotFound
			}
			return err
		}
	}
	return nil
}

// ReleaseSeats returns seats of a showtime to AVAILABLE, touching only
// rows currently BOOKED so a seat that was already released is left
// alone.  It reports how many rows changed; a count short of the
// request is not an error here, cancellation treats release as
// best-effort.
func (r *BookingRepo) ReleaseSeats(ctx context.Context, showtimeID uint64, seatNumbers []string) (int64, error) {
	if len(seatNumbers) == 0 {
		return 0, nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(seatNumbers)), ",")
	q := `UPDATE seats SET status = ? WHERE showtime_id = ? AND status = ? AND seat_number IN (` + placeholders + `)`
	args := make([]any, 0, len(seatNumbers)+3)
	args = append(args, model.SeatAvailable, showtimeID, model.SeatBooked)
	for _, sn := range seatNumbers {
		args = append(args, sn)
	}
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// ListByUser returns a user's bookings newest first, including seat
// and menu snapshots.
func (r *BookingRepo) ListByUser(ctx context.Context, userID uint64) ([]model.Booking, error) {
	const q = `SELECT id, user_id, movie_id, room_id, showtime_id, show_date, total_price_cents,
					  payment_method, status, transaction_id, esewa_token, created_at, updated_at
			   FROM bookings WHERE user_id = ? ORDER BY created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	bookings := make([]model.Booking, 0)
	for rows.Next() {
		var b model.Booking
		var txnID, token sql.NullString
		if err := rows.Scan(
			&b.ID, &b.UserID, &b.MovieID, &b.RoomID, &b.ShowtimeID, &b.Date, &b.TotalPriceCents,
			&b.PaymentMethod, &b.Status, &txnID, &token, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if txnID.Valid {
			v := txnID.String
			b.TransactionID = &v
		}
		if token.Valid {
			v := token.String
			b.EsewaToken = &v
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range bookings {
		if err := r.loadSnapshots(ctx, &bookings[i]); err != nil {
			return nil, err
		}
	}
	return bookings, nil
}
