package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Semicolon3407/movie-booking/internal/repository"
	"github.com/Semicolon3407/movie-booking/internal/schedule"
	"github.com/Semicolon3407/movie-booking/internal/service"
)

// respondError maps domain errors onto HTTP responses with a JSON
// error body.  Validation failures are 400, missing resources 404,
// conflicts 409, anything unrecognized 500.
func respondError(c echo.Context, err error) error {
	var (
		invalidTime   *schedule.InvalidTimeError
		invalidRange  *schedule.InvalidRangeError
		outsideWindow *schedule.OutsideWindowError
		conflict      *schedule.ConflictError
		unavailable   *service.SeatsUnavailableError
	)
	switch {
	case errors.As(err, &invalidTime), errors.As(err, &invalidRange), errors.As(err, &outsideWindow):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case errors.As(err, &conflict):
		return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
	case errors.As(err, &unavailable):
		return c.JSON(http.StatusConflict, echo.Map{
			"error": "seats unavailable",
			"seats": unavailable.Seats,
		})
	case errors.Is(err, repository.ErrMovieNotFound),
		errors.Is(err, repository.ErrRoomNotFound),
		errors.Is(err, repository.ErrShowtimeNotFound),
		errors.Is(err, repository.ErrBookingNotFound),
		errors.Is(err, repository.ErrMenuItemNotFound),
		errors.Is(err, repository.ErrUserNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	case errors.Is(err, repository.ErrConflict), errors.Is(err, repository.ErrSeatConflict):
		return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
	default:
		c.Logger().Errorf("internal error: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
}
