package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/mreira/hotel-booking/internal/config"
	"github.com/mreira/hotel-booking/internal/database"
	"github.com/mreira/hotel-booking/internal/handler"
	"github.com/mreira/hotel-booking/internal/middleware"
	"github.com/mreira/hotel-booking/internal/queue"
	"github.com/mreira/hotel-booking/internal/repository"
	"github.com/mreira/hotel-booking/internal/router"
	"github.com/mreira/hotel-booking/internal/service"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env wins
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	// nil when Redis is unreachable; rate limiting and caching degrade to no-ops
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; rate limiting and response cache disabled")
	}

	bookingRepo := repository.NewBookingRepo(db)
	roomRepo := repository.NewRoomRepo(db)
	enrollmentRepo := repository.NewEnrollmentRepo(db)
	hotelRepo := repository.NewHotelRepo(db)
	userRepo := repository.NewUserRepo(db)
	tokenRepo := repository.NewTokenRepo(db)

	bookingSvc := service.NewBookingService(bookingRepo, roomRepo, enrollmentRepo)

	authH := handler.NewAuthHandler(cfg, userRepo, tokenRepo)
	bookingH := handler.NewBookingHandler(bookingSvc)
	hotelH := handler.NewHotelHandler(hotelRepo)

	rateLimit := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterAuth(e, authH, cfg.JWTSecret)
	router.RegisterBooking(e, bookingH, cfg.JWTSecret, rateLimit)
	router.RegisterHotels(e, hotelH, cfg.JWTSecret, cache)

	// Background consumer writing booking events to logs/booking.log.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking-consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
