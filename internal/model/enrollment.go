package model

import "time"

// Ticket status values as stored in tickets.status.
const (
	TicketStatusReserved = "RESERVED"
	TicketStatusPaid     = "PAID"
)

// Enrollment is a user's registration record for the event.  One
// enrollment per user; the booking feature only reads it to reach the
// ticket.
type Enrollment struct {
	ID        uint64    // enrollments.id
	UserID    uint64    // enrollments.user_id
	CreatedAt time.Time // enrollments.created_at
	UpdatedAt time.Time // enrollments.updated_at
}

// Ticket is the purchase record linked to an enrollment.  Status moves
// RESERVED -> PAID once payment clears; only PAID tickets may book a
// room.
type Ticket struct {
	ID           uint64    // tickets.id
	EnrollmentID uint64    // tickets.enrollment_id
	TicketTypeID uint64    // tickets.ticket_type_id
	Status       string    // tickets.status (RESERVED, PAID)
	CreatedAt    time.Time // tickets.created_at
	UpdatedAt    time.Time // tickets.updated_at
}

// TicketType carries the category flags the eligibility check branches
// on.  Remote ticket types never include lodging.
type TicketType struct {
	ID            uint64    // ticket_types.id
	Name          string    // ticket_types.name
	Price         uint32    // ticket_types.price (cents)
	IsRemote      bool      // ticket_types.is_remote
	IncludesHotel bool      // ticket_types.includes_hotel
	CreatedAt     time.Time // ticket_types.created_at
	UpdatedAt     time.Time // ticket_types.updated_at
}
