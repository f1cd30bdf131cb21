package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/Semicolon3407/movie-booking/internal/config"
	"github.com/Semicolon3407/movie-booking/internal/database"
	"github.com/Semicolon3407/movie-booking/internal/handler"
	"github.com/Semicolon3407/movie-booking/internal/middleware"
	"github.com/Semicolon3407/movie-booking/internal/queue"
	"github.com/Semicolon3407/movie-booking/internal/repository"
	"github.com/Semicolon3407/movie-booking/internal/router"
	"github.com/Semicolon3407/movie-booking/internal/service"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	movies := repository.NewMovieRepo(db)
	rooms := repository.NewRoomRepo(db)
	showtimes := repository.NewShowtimeRepo(db)
	bookings := repository.NewBookingRepo(db)
	menu := repository.NewMenuRepo(db)
	notifications := repository.NewNotificationRepo(db)
	users := repository.NewUserRepo(db)

	sideEffects := service.NewSideEffects(notifications, queue.NewPublisher())
	scheduleSvc := service.NewScheduleService(movies, rooms, showtimes)
	bookingSvc := service.NewBookingService(movies, showtimes, bookings, menu, users, sideEffects)

	// Audit consumer runs for the life of the process and survives
	// broker restarts on its own.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	// Hourly sweep flips movies whose window has passed to EXPIRED.
	go func() {
		for {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			if n, err := movies.ExpireFinished(ctx); err != nil {
				log.Printf("movie expiry sweep failed: %v", err)
			} else if n > 0 {
				log.Printf("movie expiry sweep: %d movie(s) expired", n)
			}
			cancel()
			time.Sleep(time.Hour)
		}
	}()

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger(), echomw.Recover())

	rdb := config.NewRedisClient()
	var limiter echo.MiddlewareFunc
	if rdb != nil {
		limiter = middleware.RateLimit(config.LoadRateLimitConfig(), rdb)
	}

	router.Register(e, router.Deps{
		JWTSecret: cfg.JWTSecret,
		RateLimit: limiter,
		Auth:      handler.NewAuthHandler(cfg, users),
		Catalog:   handler.NewCatalogHandler(movies, rooms, menu, notifications),
		Schedule:  handler.NewScheduleHandler(scheduleSvc),
		Booking:   handler.NewBookingHandler(bookingSvc, bookings),
		Browse:    handler.NewBrowseHandler(movies, rooms, menu, bookings, scheduleSvc),
	})

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
