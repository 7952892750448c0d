package router

import (
	"github.com/labstack/echo/v4"

	"github.com/mreira/hotel-booking/internal/handler"
	"github.com/mreira/hotel-booking/internal/middleware"
)

// RegisterBooking registers the booking endpoints.  All routes require
// a valid JWT; mutations additionally pass through the rate limiter.
//
//	GET  /booking            – current booking with its room
//	POST /booking            – book a room
//	PUT  /booking/:bookingId – move the booking to another room
func RegisterBooking(e *echo.Echo, h *handler.BookingHandler, jwtSecret string, rateLimit echo.MiddlewareFunc) {
	g := e.Group("/booking", middleware.JWTAuth(jwtSecret))
	g.GET("", h.GetBooking)
	g.POST("", h.PostBooking, rateLimit)
	g.PUT("/:bookingId", h.PutBooking, rateLimit)
}
