// Package repository contains the MySQL data access layer.  Sentinel
// errors defined here let handlers and services distinguish failure
// scenarios without string matching: not-found errors map to 404s,
// ErrConflict to 409, and ErrSeatConflict signals that a conditional
// seat update lost a race and the caller should re-read the seat map.
package repository

import "errors"

// ErrMovieNotFound indicates the referenced movie does not exist.
var ErrMovieNotFound = errors.New("movie not found")

// ErrRoomNotFound indicates the referenced room does not exist.
var ErrRoomNotFound = errors.New("room not found")

// ErrShowtimeNotFound indicates the referenced showtime does not exist.
var ErrShowtimeNotFound = errors.New("showtime not found")

// ErrBookingNotFound indicates the referenced booking does not exist.
var ErrBookingNotFound = errors.New("booking not found")

// ErrMenuItemNotFound indicates a referenced menu item does not exist
// or is inactive.
var ErrMenuItemNotFound = errors.New("menu item not found")

// ErrUserNotFound indicates the referenced user does not exist.
var ErrUserNotFound = errors.New("user not found")

// ErrConflict is returned when a mutation cannot proceed because of
// dependent state, such as deleting a showtime that still has
// confirmed bookings, or creating a room whose name is taken.
var ErrConflict = errors.New("conflict")

// ErrSeatConflict is returned when the conditional seat update inside
// a reservation transaction affects fewer rows than requested: at
// least one seat was no longer AVAILABLE at write time.
var ErrSeatConflict = errors.New("seat no longer available")
