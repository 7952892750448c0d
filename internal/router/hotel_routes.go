package router

import (
	"github.com/labstack/echo/v4"

	"github.com/mreira/hotel-booking/internal/handler"
	"github.com/mreira/hotel-booking/internal/middleware"
)

// RegisterHotels registers the hotel browse endpoints.  Responses are
// served through the Redis response cache since hotels and rooms are
// read-only reference data.
func RegisterHotels(e *echo.Echo, h *handler.HotelHandler, jwtSecret string, cache echo.MiddlewareFunc) {
	g := e.Group("/hotels", middleware.JWTAuth(jwtSecret), cache)
	g.GET("", h.ListHotels)
	g.GET("/:id/rooms", h.ListHotelRooms)
}
