// Package queue defines message payloads exchanged over the message broker.
package queue

// Event types carried in BookingEvent.Type.
const (
	EventBookingCreated     = "booking.created"
	EventBookingRoomChanged = "booking.room_changed"
)

// BookingEvent is published when a booking is created or moved to
// another room.  It carries enough information for downstream
// consumers to log or notify without querying the primary database.
type BookingEvent struct {
	Type       string `json:"type"`
	BookingID  uint64 `json:"booking_id"`
	UserID     uint64 `json:"user_id"`
	RoomID     uint64 `json:"room_id"`
	HotelID    uint64 `json:"hotel_id"`
	RoomName   string `json:"room_name"`
	OccurredAt string `json:"occurred_at"`
}
