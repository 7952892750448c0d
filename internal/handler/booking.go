package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mreira/hotel-booking/internal/queue"
	"github.com/mreira/hotel-booking/internal/service"
)

// BookingHandler exposes the room-booking endpoints.  Authentication
// middleware has already placed the user id in the context; the
// handler decodes payloads, delegates to the service and maps error
// kinds to status codes (not found -> 404, forbidden -> 403, anything
// else -> 500).
type BookingHandler struct {
	Service *service.BookingService
	// Publish sends a booking event to the broker after a successful
	// write.  Failures are logged by the publisher and ignored here.
	Publish func(ctx context.Context, ev queue.BookingEvent) error
}

// NewBookingHandler constructs a BookingHandler wired to the real
// event publisher.
func NewBookingHandler(svc *service.BookingService) *BookingHandler {
	if svc == nil {
		panic("nil service passed to NewBookingHandler")
	}
	return &BookingHandler{Service: svc, Publish: queue.PublishBookingEvent}
}

type bookingBody struct {
	RoomID int64 `json:"roomId"`
}

// GetBooking handles GET /booking.  Returns the caller's current
// booking id with the full room record, or 404 when the caller has no
// booking.
func (h *BookingHandler) GetBooking(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	det, err := h.Service.GetBooking(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, det)
}

// PostBooking handles POST /booking.  The body must contain a positive
// integer roomId.  On success the new booking id is returned.
func (h *BookingHandler) PostBooking(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var body bookingBody
	if err := c.Bind(&body); err != nil || body.RoomID <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "roomId must be a positive integer"})
	}
	roomID := uint64(body.RoomID)

	bookingID, err := h.Service.CreateBooking(c.Request().Context(), userID, roomID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		case errors.Is(err, service.ErrForbidden):
			return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	h.publishEvent(c, queue.EventBookingCreated, bookingID, userID, roomID)
	return c.JSON(http.StatusOK, echo.Map{"bookingId": bookingID})
}

// PutBooking handles PUT /booking/:bookingId.  The caller must own the
// booking named in the path; the body carries the new roomId.
func (h *BookingHandler) PutBooking(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	bookingID, err := strconv.ParseUint(c.Param("bookingId"), 10, 64)
	if err != nil || bookingID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}
	var body bookingBody
	if err := c.Bind(&body); err != nil || body.RoomID <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "roomId must be a positive integer"})
	}
	roomID := uint64(body.RoomID)

	id, err := h.Service.ChangeBookingRoom(c.Request().Context(), userID, bookingID, roomID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		case errors.Is(err, service.ErrForbidden):
			return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	h.publishEvent(c, queue.EventBookingRoomChanged, id, userID, roomID)
	return c.JSON(http.StatusOK, echo.Map{"bookingId": id})
}

// publishEvent fires a booking event on the broker.  Best effort: the
// request already succeeded, so a broker failure only gets logged.
func (h *BookingHandler) publishEvent(c echo.Context, typ string, bookingID, userID, roomID uint64) {
	if h.Publish == nil {
		return
	}
	ev := queue.BookingEvent{
		Type:       typ,
		BookingID:  bookingID,
		UserID:     userID,
		RoomID:     roomID,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	}
	_ = h.Publish(c.Request().Context(), ev)
}
