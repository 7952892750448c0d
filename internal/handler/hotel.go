package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/mreira/hotel-booking/internal/model"
	"github.com/mreira/hotel-booking/internal/repository"
)

// HotelHandler serves the hotel browse endpoints.  Hotels and rooms
// are read-only reference data seeded by the platform.
type HotelHandler struct {
	Hotels *repository.HotelRepo
}

func NewHotelHandler(hotels *repository.HotelRepo) *HotelHandler {
	if hotels == nil {
		panic("nil repository passed to NewHotelHandler")
	}
	return &HotelHandler{Hotels: hotels}
}

// ListHotels handles GET /hotels.  Returns all hotels; an empty array
// when none exist.
func (h *HotelHandler) ListHotels(c echo.Context) error {
	hotels, err := h.Hotels.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if hotels == nil {
		hotels = []*model.Hotel{}
	}
	return c.JSON(http.StatusOK, echo.Map{"hotels": hotels})
}

// ListHotelRooms handles GET /hotels/:id/rooms.  Returns 404 when the
// hotel does not exist.
func (h *HotelHandler) ListHotelRooms(c echo.Context) error {
	hotelID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || hotelID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid hotel id"})
	}
	ctx := c.Request().Context()
	if _, err := h.Hotels.FindByID(ctx, hotelID); err != nil {
		if errors.Is(err, repository.ErrHotelNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "hotel not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	rooms, err := h.Hotels.ListRooms(ctx, hotelID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if rooms == nil {
		rooms = []*model.Room{}
	}
	return c.JSON(http.StatusOK, echo.Map{"rooms": rooms})
}
