package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/Semicolon3407/movie-booking/internal/model"
)

// RoomRepo manages persistence for rooms.  Rooms are flat,
// admin-managed resources; their showtimes live in ShowtimeRepo.
type RoomRepo struct {
	db *sql.DB
}

// NewRoomRepo returns a RoomRepo bound to the given database.
func NewRoomRepo(db *sql.DB) *RoomRepo { return &RoomRepo{db: db} }

// Create inserts a room.  Room names are unique; a duplicate name
// surfaces as ErrConflict.
func (r *RoomRepo) Create(ctx context.Context, room *model.Room) error {
	const q = `INSERT INTO rooms (name, total_seats) VALUES (?, ?)`
	res, err := r.db.ExecContext(ctx, q, room.Name, room.TotalSeats)
	if err != nil {
		// 1062 is MySQL's duplicate-key error; matching the message
		// avoids a hard dependency on driver error types here.
		if strings.Contains(err.Error(), "Duplicate entry") {
			return ErrConflict
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	room.ID = uint64(id)
	const sel = `SELECT id, name, total_seats, created_at, updated_at FROM rooms WHERE id = ?`
	return r.db.QueryRowContext(ctx, sel, room.ID).Scan(
		&room.ID, &room.Name, &room.TotalSeats, &room.CreatedAt, &room.UpdatedAt)
}

// GetByID returns a room or ErrRoomNotFound.
func (r *RoomRepo) GetByID(ctx context.Context, id uint64) (*model.Room, error) {
	const q = `SELECT id, name, total_seats, created_at, updated_at FROM rooms WHERE id = ?`
	var room model.Room
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&room.ID, &room.Name, &room.TotalSeats, &room.CreatedAt, &room.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return &room, nil
}

// List returns all rooms ordered by name.
func (r *RoomRepo) List(ctx context.Context) ([]model.Room, error) {
	const q = `SELECT id, name, total_seats, created_at, updated_at FROM rooms ORDER BY name ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	rooms := make([]model.Room, 0)
	for rows.Next() {
		var room model.Room
		if err := rows.Scan(&room.ID, &room.Name, &room.TotalSeats, &room.CreatedAt, &room.UpdatedAt); err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}
	return rooms, rows.Err()
}
