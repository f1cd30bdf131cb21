package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Semicolon3407/movie-booking/internal/model"
	"github.com/Semicolon3407/movie-booking/internal/repository"
)

// CatalogHandler exposes the admin CRUD surface for movies, rooms,
// menu items and notifications.
type CatalogHandler struct {
	Movies        *repository.MovieRepo
	Rooms         *repository.RoomRepo
	Menu          *repository.MenuRepo
	Notifications *repository.NotificationRepo
}

func NewCatalogHandler(movies *repository.MovieRepo, rooms *repository.RoomRepo, menu *repository.MenuRepo, notifications *repository.NotificationRepo) *CatalogHandler {
	return &CatalogHandler{Movies: movies, Rooms: rooms, Menu: menu, Notifications: notifications}
}

type createMovieReq struct {
	Title            string `json:"title"`
	DurationMinutes  uint32 `json:"duration_minutes"`
	StartDate        string `json:"start_date"` // YYYY-MM-DD
	EndDate          string `json:"end_date"`   // YYYY-MM-DD
	TicketPriceCents uint32 `json:"ticket_price_cents"`
}

// CreateMovie registers a movie with its screening window.
func (h *CatalogHandler) CreateMovie(c echo.Context) error {
	var req createMovieReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Title == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title required"})
	}
	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid start_date, expected YYYY-MM-DD"})
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid end_date, expected YYYY-MM-DD"})
	}
	if end.Before(start) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "end_date before start_date"})
	}
	m := &model.Movie{
		Title:            req.Title,
		DurationMinutes:  req.DurationMinutes,
		StartDate:        model.DateOnly(start),
		EndDate:          model.DateOnly(end),
		Status:           model.MovieHosting,
		TicketPriceCents: req.TicketPriceCents,
	}
	if err := h.Movies.Create(c.Request().Context(), m); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, m)
}

type createRoomReq struct {
	Name       string `json:"name"`
	TotalSeats uint32 `json:"total_seats"`
}

// CreateRoom registers a screening room.
func (h *CatalogHandler) CreateRoom(c echo.Context) error {
	var req createRoomReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name required"})
	}
	room := &model.Room{Name: req.Name, TotalSeats: req.TotalSeats}
	if err := h.Rooms.Create(c.Request().Context(), room); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, room)
}

type createMenuItemReq struct {
	Name       string `json:"name"`
	PriceCents uint32 `json:"price_cents"`
}

// CreateMenuItem adds an active concession item.
func (h *CatalogHandler) CreateMenuItem(c echo.Context) error {
	var req createMenuItemReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name required"})
	}
	item := &model.MenuItem{Name: req.Name, PriceCents: req.PriceCents, IsActive: true}
	if err := h.Menu.Create(c.Request().Context(), item); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, item)
}

// ListNotifications lists booking notifications, optionally only
// unread ones (?unread=1).
func (h *CatalogHandler) ListNotifications(c echo.Context) error {
	unread := c.QueryParam("unread") == "1" || c.QueryParam("unread") == "true"
	notes, err := h.Notifications.List(c.Request().Context(), unread)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"notifications": notes})
}

// MarkNotificationRead flags one notification as read.
func (h *CatalogHandler) MarkNotificationRead(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Notifications.MarkRead(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
