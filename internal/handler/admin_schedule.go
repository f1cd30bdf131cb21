package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Semicolon3407/movie-booking/internal/model"
	"github.com/Semicolon3407/movie-booking/internal/service"
)

// ScheduleHandler exposes the admin schedule surface: bulk showtime
// allocation plus single-showtime update and delete.
type ScheduleHandler struct {
	Schedules *service.ScheduleService
}

func NewScheduleHandler(schedules *service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{Schedules: schedules}
}

type slotReq struct {
	Start string `json:"start"` // HH:MM
	End   string `json:"end"`   // HH:MM
}
type entryReq struct {
	Date  string    `json:"date"` // YYYY-MM-DD
	Slots []slotReq `json:"slots"`
}
type allocateReq struct {
	MovieID uint64     `json:"movie_id"`
	Entries []entryReq `json:"entries"`
}

// Allocate creates every date x slot showtime of the request in one
// all-or-nothing batch.
func (h *ScheduleHandler) Allocate(c echo.Context) error {
	roomID, err := strconv.ParseUint(c.Param("roomID"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room id"})
	}
	var req allocateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.MovieID == 0 || len(req.Entries) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "movie_id and entries required"})
	}
	entries := make([]model.ScheduleEntry, 0, len(req.Entries))
	for _, e := range req.Entries {
		date, err := time.Parse("2006-01-02", e.Date)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid date " + e.Date + ", expected YYYY-MM-DD"})
		}
		if len(e.Slots) == 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "each entry needs at least one slot"})
		}
		slots := make([]model.TimeSlot, 0, len(e.Slots))
		for _, s := range e.Slots {
			slots = append(slots, model.TimeSlot{Start: s.Start, End: s.End})
		}
		entries = append(entries, model.ScheduleEntry{Date: date, Slots: slots})
	}

	created, err := h.Schedules.Allocate(c.Request().Context(), roomID, req.MovieID, entries)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"showtimes": created})
}

type updateShowtimeReq struct {
	Date  string `json:"date"`  // YYYY-MM-DD
	Start string `json:"start"` // HH:MM
	End   string `json:"end"`   // HH:MM
}

// Update moves one showtime to a new date or time range.
func (h *ScheduleHandler) Update(c echo.Context) error {
	roomID, showtimeID, err := pathIDs(c, "roomID", "showtimeID")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req updateShowtimeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid date, expected YYYY-MM-DD"})
	}
	st, err := h.Schedules.Update(c.Request().Context(), roomID, showtimeID, date, req.Start, req.End)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, st)
}

// Delete removes a showtime and its seat grid.  Showtimes with
// confirmed bookings cannot be deleted.
func (h *ScheduleHandler) Delete(c echo.Context) error {
	roomID, showtimeID, err := pathIDs(c, "roomID", "showtimeID")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Schedules.Delete(c.Request().Context(), roomID, showtimeID); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func pathIDs(c echo.Context, first, second string) (uint64, uint64, error) {
	a, err := strconv.ParseUint(c.Param(first), 10, 64)
	if err != nil {
		return 0, 0, err
	}
	b, err := strconv.ParseUint(c.Param(second), 10, 64)
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}
