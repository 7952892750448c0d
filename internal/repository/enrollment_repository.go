package repository

import (
	"context"
	"database/sql"
	"errors"
)

// EnrollmentTicket is the slice of enrollment state the eligibility
// check needs: the ticket status plus the ticket-type flags.
type EnrollmentTicket struct {
	Status        string // tickets.status (RESERVED, PAID)
	TicketType    string // ticket_types.name
	IsRemote      bool   // ticket_types.is_remote
	IncludesHotel bool   // ticket_types.includes_hotel
}

// EnrollmentRepo reads enrollment, ticket and ticket-type data owned
// by the registration side of the platform.  Read-only here.
type EnrollmentRepo struct {
	db *sql.DB
}

// NewEnrollmentRepo constructs an EnrollmentRepo with the given DB handle.
func NewEnrollmentRepo(db *sql.DB) *EnrollmentRepo { return &EnrollmentRepo{db: db} }

// FindTicketByUser walks user -> enrollment -> ticket -> ticket type
// in a single query.  Returns ErrEnrollmentNotFound when the user has
// no enrollment or the enrollment has no ticket.
func (r *EnrollmentRepo) FindTicketByUser(ctx context.Context, userID uint64) (*EnrollmentTicket, error) {
	const q = `SELECT t.status, tt.name, tt.is_remote, tt.includes_hotel
	           FROM enrollments e
	           JOIN tickets t ON t.enrollment_id = e.id
	           JOIN ticket_types tt ON tt.id = t.ticket_type_id
	           WHERE e.user_id = ?
	           LIMIT 1`
	var et EnrollmentTicket
	err := r.db.QueryRowContext(ctx, q, userID).Scan(&et.Status, &et.TicketType, &et.IsRemote, &et.IncludesHotel)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEnrollmentNotFound
		}
		return nil, err
	}
	return &et, nil
}
