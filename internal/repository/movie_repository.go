package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Semicolon3407/movie-booking/internal/model"
)

// MovieRepo provides read and admin-create access to the movie
// catalog.  The booking core treats movies as a read-only dependency;
// the screening window and ticket price drive validation and pricing.
type MovieRepo struct {
	db *sql.DB
}

// NewMovieRepo returns a MovieRepo bound to the given database.
func NewMovieRepo(db *sql.DB) *MovieRepo { return &MovieRepo{db: db} }

const movieColumns = `id, title, duration_minutes, start_date, end_date, status, ticket_price_cents, created_at, updated_at`

func scanMovie(row interface{ Scan(...any) error }) (*model.Movie, error) {
	var m model.Movie
	if err := row.Scan(
		&m.ID, &m.Title, &m.DurationMinutes, &m.StartDate, &m.EndDate,
		&m.Status, &m.TicketPriceCents, &m.CreatedAt, &m.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &m, nil
}

// Create inserts a movie and populates its generated ID and DB
// defaults back onto the struct.
func (r *MovieRepo) Create(ctx context.Context, m *model.Movie) error {
	const q = `INSERT INTO movies (title, duration_minutes, start_date, end_date, status, ticket_price_cents)
			   VALUES (?, ?, ?, ?, ?, ?)`
	status := m.Status
	if status == "" {
		status = model.MovieHosting
	}
	res, err := r.db.ExecContext(ctx, q,
		m.Title, m.DurationMinutes, model.DateOnly(m.StartDate), model.DateOnly(m.EndDate),
		status, m.TicketPriceCents)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	m.ID = uint64(id)
	fresh, err := r.GetByID(ctx, m.ID)
	if err != nil {
		return err
	}
	*m = *fresh
	return nil
}

// GetByID returns a movie or ErrMovieNotFound.
func (r *MovieRepo) GetByID(ctx context.Context, id uint64) (*model.Movie, error) {
	const q = `SELECT ` + movieColumns + ` FROM movies WHERE id = ?`
	m, err := scanMovie(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	return m, nil
}

// List returns all movies ordered by start date descending.
func (r *MovieRepo) List(ctx context.Context) ([]model.Movie, error) {
	const q = `SELECT ` + movieColumns + ` FROM movies ORDER BY start_date DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	movies := make([]model.Movie, 0)
	for rows.Next() {
		m, err := scanMovie(rows)
		if err != nil {
			return nil, err
		}
		movies = append(movies, *m)
	}
	return movies, rows.Err()
}

// ExpireFinished flips every HOSTING movie whose end date has passed
// to EXPIRED and reports how many rows changed.  Intended for a
// periodic sweep; showtime validation does not depend on it because
// the window check compares dates directly.
func (r *MovieRepo) ExpireFinished(ctx context.Context) (int64, error) {
	const q = `UPDATE movies SET status = ?, updated_at = CURRENT_TIMESTAMP
			   WHERE status = ? AND end_date < CURDATE()`
	res, err := r.db.ExecContext(ctx, q, model.MovieExpired, model.MovieHosting)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
