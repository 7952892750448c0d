// Package repository defines sentinel errors shared across the data
// access layer.  Higher layers match them with errors.Is to tell an
// absent row apart from a store failure.
package repository

import "errors"

// ErrBookingNotFound is returned when a booking lookup matches no row.
var ErrBookingNotFound = errors.New("booking not found")

// ErrRoomNotFound is returned when a room lookup matches no row.
var ErrRoomNotFound = errors.New("room not found")

// ErrHotelNotFound is returned when a hotel lookup matches no row.
var ErrHotelNotFound = errors.New("hotel not found")

// ErrEnrollmentNotFound is returned when a user has no enrollment or
// no ticket linked to it.
var ErrEnrollmentNotFound = errors.New("enrollment not found")
