package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Semicolon3407/movie-booking/internal/repository"
	"github.com/Semicolon3407/movie-booking/internal/service"
)

// BrowseHandler is the public read-only surface: movie catalog,
// rooms, schedules and seat maps.
type BrowseHandler struct {
	Movies    *repository.MovieRepo
	Rooms     *repository.RoomRepo
	Menu      *repository.MenuRepo
	Bookings  *repository.BookingRepo
	Schedules *service.ScheduleService
}

func NewBrowseHandler(movies *repository.MovieRepo, rooms *repository.RoomRepo, menu *repository.MenuRepo, bookings *repository.BookingRepo, schedules *service.ScheduleService) *BrowseHandler {
	return &BrowseHandler{Movies: movies, Rooms: rooms, Menu: menu, Bookings: bookings, Schedules: schedules}
}

// ListMovies lists the catalog.
func (h *BrowseHandler) ListMovies(c echo.Context) error {
	movies, err := h.Movies.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"movies": movies})
}

// ListRooms lists the screening rooms.
func (h *BrowseHandler) ListRooms(c echo.Context) error {
	rooms, err := h.Rooms.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"rooms": rooms})
}

// MenuItems lists the active concession menu.
func (h *BrowseHandler) MenuItems(c echo.Context) error {
	items, err := h.Menu.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"menu": items})
}

// RoomShowtimes lists a room's schedule.
func (h *BrowseHandler) RoomShowtimes(c echo.Context) error {
	roomID, err := strconv.ParseUint(c.Param("roomID"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room id"})
	}
	showtimes, err := h.Schedules.ListByRoom(c.Request().Context(), roomID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"showtimes": showtimes})
}

// MovieShowtimes lists every screening of a movie grouped by room.
func (h *BrowseHandler) MovieShowtimes(c echo.Context) error {
	movieID, err := strconv.ParseUint(c.Param("movieID"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid movie id"})
	}
	groups, err := h.Schedules.ListByMovie(c.Request().Context(), movieID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"rooms": groups})
}

// SeatMap returns a showtime's full seat grid so clients can render
// availability.
func (h *BrowseHandler) SeatMap(c echo.Context) error {
	showtimeID, err := strconv.ParseUint(c.Param("showtimeID"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid showtime id"})
	}
	seats, err := h.Bookings.SeatsByShowtime(c.Request().Context(), showtimeID)
	if err != nil {
		return respondError(c, err)
	}
	if len(seats) == 0 {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "showtime not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{"seats": seats})
}
