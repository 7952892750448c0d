package service

import (
	"context"
	"errors"

	"github.com/mreira/hotel-booking/internal/model"
	"github.com/mreira/hotel-booking/internal/repository"
)

// BookingStore is the data access contract the booking rules need for
// bookings.  *repository.BookingRepo satisfies it; tests substitute
// fakes.
type BookingStore interface {
	FindByUser(ctx context.Context, userID uint64) (*repository.BookingDetail, error)
	FindByRoom(ctx context.Context, roomID uint64) (*model.Booking, error)
	Create(ctx context.Context, userID, roomID uint64) (uint64, error)
	UpdateRoom(ctx context.Context, bookingID, roomID uint64) error
}

// RoomStore resolves room references.
type RoomStore interface {
	FindByID(ctx context.Context, id uint64) (*model.Room, error)
}

// TicketStore reads the enrollment-linked ticket the eligibility check
// branches on.
type TicketStore interface {
	FindTicketByUser(ctx context.Context, userID uint64) (*repository.EnrollmentTicket, error)
}

// BookingService orchestrates the eligibility check, room existence
// check, occupancy check and the single-row write for each booking
// operation.
type BookingService struct {
	bookings BookingStore
	rooms    RoomStore
	tickets  TicketStore
}

// NewBookingService constructs a BookingService.  All dependencies
// must be non-nil.
func NewBookingService(bookings BookingStore, rooms RoomStore, tickets TicketStore) *BookingService {
	if bookings == nil || rooms == nil || tickets == nil {
		panic("nil store passed to NewBookingService")
	}
	return &BookingService{bookings: bookings, rooms: rooms, tickets: tickets}
}

// GetBooking returns the user's current booking together with its room
// record.  ErrNotFound when the user has no booking.
func (s *BookingService) GetBooking(ctx context.Context, userID uint64) (*repository.BookingDetail, error) {
	det, err := s.bookings.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return det, nil
}

// CreateBooking books the room for the user and returns the new
// booking id.  ErrForbidden when the user is not eligible or the room
// is occupied; ErrNotFound when the room does not exist.
func (s *BookingService) CreateBooking(ctx context.Context, userID, roomID uint64) (uint64, error) {
	if err := s.checkEligibility(ctx, userID); err != nil {
		return 0, err
	}
	if err := s.checkRoomFree(ctx, roomID); err != nil {
		return 0, err
	}
	// Occupancy check and insert are separate statements with nothing
	// between them; two concurrent requests for the same room can both
	// pass the check and both insert.
	return s.bookings.Create(ctx, userID, roomID)
}

// ChangeBookingRoom moves the caller's booking to another room.  The
// caller must be eligible and must already own the booking named in
// the path; the new room is validated exactly as in CreateBooking.
// Returns the booking id.
func (s *BookingService) ChangeBookingRoom(ctx context.Context, userID, bookingID, roomID uint64) (uint64, error) {
	if err := s.checkEligibility(ctx, userID); err != nil {
		return 0, err
	}
	cur, err := s.bookings.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return 0, ErrForbidden
		}
		return 0, err
	}
	if cur.ID != bookingID {
		return 0, ErrForbidden
	}
	if err := s.checkRoomFree(ctx, roomID); err != nil {
		return 0, err
	}
	if err := s.bookings.UpdateRoom(ctx, cur.ID, roomID); err != nil {
		return 0, err
	}
	return cur.ID, nil
}

// checkEligibility decides whether the user may hold a room booking at
// all, independent of which room.  The four conditions short-circuit
// in order: missing enrollment/ticket, remote ticket type, ticket type
// without lodging, ticket not yet paid.
func (s *BookingService) checkEligibility(ctx context.Context, userID uint64) error {
	t, err := s.tickets.FindTicketByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrEnrollmentNotFound) {
			return ErrForbidden
		}
		return err
	}
	if t.IsRemote {
		return ErrForbidden
	}
	if !t.IncludesHotel {
		return ErrForbidden
	}
	if t.Status != model.TicketStatusPaid {
		return ErrForbidden
	}
	return nil
}

// checkRoomFree validates the requested room: it must exist
// (ErrNotFound) and no booking may currently reference it
// (ErrForbidden).
func (s *BookingService) checkRoomFree(ctx context.Context, roomID uint64) error {
	if _, err := s.rooms.FindByID(ctx, roomID); err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return ErrNotFound
		}
		return err
	}
	_, err := s.bookings.FindByRoom(ctx, roomID)
	switch {
	case err == nil:
		return ErrForbidden
	case errors.Is(err, repository.ErrBookingNotFound):
		return nil
	default:
		return err
	}
}
