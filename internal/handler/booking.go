package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Semicolon3407/movie-booking/internal/middleware"
	"github.com/Semicolon3407/movie-booking/internal/model"
	"github.com/Semicolon3407/movie-booking/internal/repository"
	"github.com/Semicolon3407/movie-booking/internal/service"
)

// BookingHandler exposes the customer booking surface.
type BookingHandler struct {
	Bookings *service.BookingService
	Store    *repository.BookingRepo
}

func NewBookingHandler(bookings *service.BookingService, store *repository.BookingRepo) *BookingHandler {
	return &BookingHandler{Bookings: bookings, Store: store}
}

type reserveReq struct {
	RoomID        uint64              `json:"room_id"`
	ShowtimeID    uint64              `json:"showtime_id"`
	Seats         []string            `json:"seats"`
	MenuItems     []service.MenuOrder `json:"menu_items"`
	PaymentMethod string              `json:"payment_method"` // CARD | CASH
}

// Reserve books seats with on-the-spot payment (card or cash).
func (h *BookingHandler) Reserve(c echo.Context) error {
	var req reserveReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.ShowtimeID == 0 || len(req.Seats) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "showtime_id and seats required"})
	}
	method := model.PaymentMethod(req.PaymentMethod)
	if method != model.PayCard && method != model.PayCash {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "payment_method must be CARD or CASH"})
	}

	b, err := h.Bookings.Reserve(c.Request().Context(), service.ReserveRequest{
		UserID:        middleware.UserID(c),
		RoomID:        req.RoomID,
		ShowtimeID:    req.ShowtimeID,
		Seats:         req.Seats,
		MenuItems:     req.MenuItems,
		PaymentMethod: method,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, b)
}

type esewaConfirmReq struct {
	RoomID     uint64              `json:"room_id"`
	ShowtimeID uint64              `json:"showtime_id"`
	Seats      []string            `json:"seats"`
	MenuItems  []service.MenuOrder `json:"menu_items"`
	RefID      string              `json:"ref_id"` // gateway transaction reference
	Token      string              `json:"token"`  // gateway token from the redirect
}

// ConfirmEsewa finalizes a reservation after the payment gateway
// redirects back with a successful transaction.
func (h *BookingHandler) ConfirmEsewa(c echo.Context) error {
	var req esewaConfirmReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.ShowtimeID == 0 || len(req.Seats) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "showtime_id and seats required"})
	}

	b, err := h.Bookings.ConfirmAfterPayment(c.Request().Context(), service.ReserveRequest{
		UserID:     middleware.UserID(c),
		RoomID:     req.RoomID,
		ShowtimeID: req.ShowtimeID,
		Seats:      req.Seats,
		MenuItems:  req.MenuItems,
	}, req.RefID, req.Token)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, b)
}

// Cancel cancels one of the caller's bookings and frees its seats.
// Cancelling twice is a no-op success.
func (h *BookingHandler) Cancel(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	b, err := h.Store.GetByID(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	role, _ := c.Get("role").(string)
	if b.UserID != middleware.UserID(c) && role != model.RoleAdmin {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "not your booking"})
	}
	if err := h.Bookings.Cancel(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Mine lists the caller's bookings, newest first.
func (h *BookingHandler) Mine(c echo.Context) error {
	bookings, err := h.Store.ListByUser(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"bookings": bookings})
}
