package model

import "time"

// Booking assigns one user to one hotel room.  A user holds at most
// one booking at a time and a room is expected to be referenced by at
// most one booking; the latter is enforced by an occupancy lookup
// before every write, not by a database constraint.
//
// Fields:
//  ID        – primary key identifier.
//  UserID    – user who holds the booking.
//  RoomID    – room currently assigned to the user.
//  CreatedAt – creation timestamp.
//  UpdatedAt – last update timestamp.
type Booking struct {
	ID        uint64    // bookings.id
	UserID    uint64    // bookings.user_id
	RoomID    uint64    // bookings.room_id
	CreatedAt time.Time // bookings.created_at
	UpdatedAt time.Time // bookings.updated_at
}
