// Package router wires handlers onto the Echo instance with the
// middleware each route group needs.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/Semicolon3407/movie-booking/internal/handler"
	"github.com/Semicolon3407/movie-booking/internal/middleware"
	"github.com/Semicolon3407/movie-booking/internal/model"
)

// Deps groups everything the routes need.
type Deps struct {
	JWTSecret string
	RateLimit echo.MiddlewareFunc
	Auth      *handler.AuthHandler
	Catalog   *handler.CatalogHandler
	Schedule  *handler.ScheduleHandler
	Booking   *handler.BookingHandler
	Browse    *handler.BrowseHandler
}

// Register mounts all route groups:
//
//	/health                 – liveness
//	/api/v1/auth            – register/login
//	/api/v1 (public reads)  – movies, rooms, menu, schedules, seat maps
//	/api/v1 (authenticated) – bookings, profile
//	/api/v1/admin           – catalog CRUD, schedule allocation, notifications
func Register(e *echo.Echo, d Deps) {
	e.GET("/health", handler.Health)

	api := e.Group("/api/v1")
	if d.RateLimit != nil {
		api.Use(d.RateLimit)
	}

	auth := api.Group("/auth")
	auth.POST("/register", d.Auth.Register)
	auth.POST("/login", d.Auth.Login)

	// Public browse endpoints.
	api.GET("/movies", d.Browse.ListMovies)
	api.GET("/movies/:movieID/showtimes", d.Browse.MovieShowtimes)
	api.GET("/rooms", d.Browse.ListRooms)
	api.GET("/rooms/:roomID/showtimes", d.Browse.RoomShowtimes)
	api.GET("/showtimes/:showtimeID/seats", d.Browse.SeatMap)
	api.GET("/menu", d.Browse.MenuItems)

	// Authenticated customer surface.
	user := api.Group("", middleware.JWTAuth(d.JWTSecret))
	user.GET("/me", d.Auth.Me)
	user.POST("/bookings", d.Booking.Reserve)
	user.POST("/bookings/esewa/confirm", d.Booking.ConfirmEsewa)
	user.DELETE("/bookings/:id", d.Booking.Cancel)
	user.GET("/bookings", d.Booking.Mine)

	// Admin surface.
	admin := api.Group("/admin", middleware.JWTAuth(d.JWTSecret), middleware.RequireRole(model.RoleAdmin))
	admin.POST("/movies", d.Catalog.CreateMovie)
	admin.POST("/rooms", d.Catalog.CreateRoom)
	admin.POST("/menu", d.Catalog.CreateMenuItem)
	admin.POST("/rooms/:roomID/showtimes", d.Schedule.Allocate)
	admin.PUT("/rooms/:roomID/showtimes/:showtimeID", d.Schedule.Update)
	admin.DELETE("/rooms/:roomID/showtimes/:showtimeID", d.Schedule.Delete)
	admin.GET("/notifications", d.Catalog.ListNotifications)
	admin.PUT("/notifications/:id/read", d.Catalog.MarkNotificationRead)
}
