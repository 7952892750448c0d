package model

import "time"

// Room is a bookable unit belonging to a hotel.  Rooms are read-only
// reference data for the booking feature; they are seeded by the
// event-management platform.  The json tags follow the platform's
// wire format (camelCase, capitalized relation keys).
type Room struct {
	ID        uint64    `json:"id"`        // rooms.id
	Name      string    `json:"name"`      // rooms.name
	Capacity  uint32    `json:"capacity"`  // rooms.capacity
	HotelID   uint64    `json:"hotelId"`   // rooms.hotel_id
	CreatedAt time.Time `json:"createdAt"` // rooms.created_at
	UpdatedAt time.Time `json:"updatedAt"` // rooms.updated_at
}

// Hotel groups rooms.  Only listed on the browse endpoints.
type Hotel struct {
	ID        uint64    `json:"id"`        // hotels.id
	Name      string    `json:"name"`      // hotels.name
	Image     string    `json:"image"`     // hotels.image
	CreatedAt time.Time `json:"createdAt"` // hotels.created_at
	UpdatedAt time.Time `json:"updatedAt"` // hotels.updated_at
}
