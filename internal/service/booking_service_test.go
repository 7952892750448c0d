package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mreira/hotel-booking/internal/model"
	"github.com/mreira/hotel-booking/internal/repository"
	"github.com/mreira/hotel-booking/internal/service"
)

// stubBookings is an in-memory BookingStore.  Rooms are shared with
// stubRooms so FindByUser can build the joined detail.
type stubBookings struct {
	rooms  map[uint64]*model.Room
	byID   map[uint64]*model.Booking
	nextID uint64

	findErr   error
	createErr error
	updateErr error
}

func (s *stubBookings) FindByUser(_ context.Context, userID uint64) (*repository.BookingDetail, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	for _, b := range s.byID {
		if b.UserID == userID {
			return &repository.BookingDetail{ID: b.ID, Room: *s.rooms[b.RoomID]}, nil
		}
	}
	return nil, repository.ErrBookingNotFound
}

func (s *stubBookings) FindByRoom(_ context.Context, roomID uint64) (*model.Booking, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	for _, b := range s.byID {
		if b.RoomID == roomID {
			return b, nil
		}
	}
	return nil, repository.ErrBookingNotFound
}

func (s *stubBookings) Create(_ context.Context, userID, roomID uint64) (uint64, error) {
	if s.createErr != nil {
		return 0, s.createErr
	}
	id := s.nextID
	s.nextID++
	s.byID[id] = &model.Booking{ID: id, UserID: userID, RoomID: roomID}
	return id, nil
}

func (s *stubBookings) UpdateRoom(_ context.Context, bookingID, roomID uint64) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	b, ok := s.byID[bookingID]
	if !ok {
		return repository.ErrBookingNotFound
	}
	b.RoomID = roomID
	return nil
}

type stubRooms struct {
	rooms map[uint64]*model.Room
	err   error
}

func (s *stubRooms) FindByID(_ context.Context, id uint64) (*model.Room, error) {
	if s.err != nil {
		return nil, s.err
	}
	if rm, ok := s.rooms[id]; ok {
		return rm, nil
	}
	return nil, repository.ErrRoomNotFound
}

type stubTickets struct {
	ticket *repository.EnrollmentTicket
	err    error
}

func (s *stubTickets) FindTicketByUser(_ context.Context, _ uint64) (*repository.EnrollmentTicket, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.ticket, nil
}

func paidHotelTicket() *repository.EnrollmentTicket {
	return &repository.EnrollmentTicket{
		Status:        model.TicketStatusPaid,
		TicketType:    "Presencial + Hotel",
		IsRemote:      false,
		IncludesHotel: true,
	}
}

// newFixture builds a service over in-memory stores with one free room.
func newFixture(ticket *repository.EnrollmentTicket) (*service.BookingService, *stubBookings, map[uint64]*model.Room) {
	rooms := map[uint64]*model.Room{
		101: {ID: 101, Name: "101", Capacity: 2, HotelID: 1, CreatedAt: time.Now(), UpdatedAt: time.Now()},
		102: {ID: 102, Name: "102", Capacity: 3, HotelID: 1, CreatedAt: time.Now(), UpdatedAt: time.Now()},
	}
	bookings := &stubBookings{rooms: rooms, byID: map[uint64]*model.Booking{}, nextID: 1}
	svc := service.NewBookingService(bookings, &stubRooms{rooms: rooms}, &stubTickets{ticket: ticket})
	return svc, bookings, rooms
}

func TestCreateBooking_NoEnrollment(t *testing.T) {
	svc := service.NewBookingService(
		&stubBookings{rooms: map[uint64]*model.Room{}, byID: map[uint64]*model.Booking{}},
		&stubRooms{rooms: map[uint64]*model.Room{}},
		&stubTickets{err: repository.ErrEnrollmentNotFound},
	)

	_, err := svc.CreateBooking(context.Background(), 1, 101)
	assert.ErrorIs(t, err, service.ErrForbidden)
}

func TestCreateBooking_RemoteTicket(t *testing.T) {
	ticket := paidHotelTicket()
	ticket.IsRemote = true
	svc, _, _ := newFixture(ticket)

	_, err := svc.CreateBooking(context.Background(), 1, 101)
	assert.ErrorIs(t, err, service.ErrForbidden)
}

func TestCreateBooking_TicketWithoutHotel(t *testing.T) {
	ticket := paidHotelTicket()
	ticket.IncludesHotel = false
	svc, _, _ := newFixture(ticket)

	_, err := svc.CreateBooking(context.Background(), 1, 101)
	assert.ErrorIs(t, err, service.ErrForbidden)
}

func TestCreateBooking_TicketNotPaid(t *testing.T) {
	ticket := paidHotelTicket()
	ticket.Status = model.TicketStatusReserved
	svc, _, _ := newFixture(ticket)

	_, err := svc.CreateBooking(context.Background(), 1, 101)
	assert.ErrorIs(t, err, service.ErrForbidden)
}

func TestCreateBooking_RoomNotFound(t *testing.T) {
	svc, _, _ := newFixture(paidHotelTicket())

	_, err := svc.CreateBooking(context.Background(), 1, 999)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestCreateBooking_RoomOccupied(t *testing.T) {
	svc, bookings, _ := newFixture(paidHotelTicket())
	// user 2 already booked room 101
	_, err := bookings.Create(context.Background(), 2, 101)
	require.NoError(t, err)

	_, err = svc.CreateBooking(context.Background(), 1, 101)
	assert.ErrorIs(t, err, service.ErrForbidden)
}

func TestCreateBooking_ThenFetch(t *testing.T) {
	svc, _, rooms := newFixture(paidHotelTicket())

	id, err := svc.CreateBooking(context.Background(), 1, 101)
	require.NoError(t, err)
	assert.NotZero(t, id)

	det, err := svc.GetBooking(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, id, det.ID)
	assert.Equal(t, *rooms[101], det.Room)
}

func TestGetBooking_NotFound(t *testing.T) {
	svc, _, _ := newFixture(paidHotelTicket())

	_, err := svc.GetBooking(context.Background(), 1)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestGetBooking_StoreFaultPassesThrough(t *testing.T) {
	boom := errors.New("connection refused")
	rooms := map[uint64]*model.Room{}
	svc := service.NewBookingService(
		&stubBookings{rooms: rooms, byID: map[uint64]*model.Booking{}, findErr: boom},
		&stubRooms{rooms: rooms},
		&stubTickets{ticket: paidHotelTicket()},
	)

	_, err := svc.GetBooking(context.Background(), 1)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, service.ErrNotFound)
	assert.NotErrorIs(t, err, service.ErrForbidden)
}

func TestChangeBookingRoom_Success(t *testing.T) {
	svc, _, _ := newFixture(paidHotelTicket())
	id, err := svc.CreateBooking(context.Background(), 1, 101)
	require.NoError(t, err)

	got, err := svc.ChangeBookingRoom(context.Background(), 1, id, 102)
	require.NoError(t, err)
	assert.Equal(t, id, got)

	det, err := svc.GetBooking(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(102), det.Room.ID)
}

func TestChangeBookingRoom_NoBooking(t *testing.T) {
	svc, _, _ := newFixture(paidHotelTicket())

	_, err := svc.ChangeBookingRoom(context.Background(), 1, 1, 102)
	assert.ErrorIs(t, err, service.ErrForbidden)
}

func TestChangeBookingRoom_NotOwner(t *testing.T) {
	svc, bookings, _ := newFixture(paidHotelTicket())
	// booking 1 belongs to user 1; user 2 holds booking 2 on room 102
	ownID, err := svc.CreateBooking(context.Background(), 1, 101)
	require.NoError(t, err)
	otherID, err := bookings.Create(context.Background(), 2, 102)
	require.NoError(t, err)
	require.NotEqual(t, ownID, otherID)

	_, err = svc.ChangeBookingRoom(context.Background(), 1, otherID, 102)
	assert.ErrorIs(t, err, service.ErrForbidden)
}

func TestChangeBookingRoom_RoomNotFound(t *testing.T) {
	svc, _, _ := newFixture(paidHotelTicket())
	id, err := svc.CreateBooking(context.Background(), 1, 101)
	require.NoError(t, err)

	_, err = svc.ChangeBookingRoom(context.Background(), 1, id, 999)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestChangeBookingRoom_TargetOccupied(t *testing.T) {
	svc, bookings, _ := newFixture(paidHotelTicket())
	id, err := svc.CreateBooking(context.Background(), 1, 101)
	require.NoError(t, err)
	_, err = bookings.Create(context.Background(), 2, 102)
	require.NoError(t, err)

	_, err = svc.ChangeBookingRoom(context.Background(), 1, id, 102)
	assert.ErrorIs(t, err, service.ErrForbidden)
}

func TestChangeBookingRoom_IneligibleTicket(t *testing.T) {
	// the eligibility check runs on update too, before any lookups
	ticket := paidHotelTicket()
	ticket.Status = model.TicketStatusReserved
	svc, _, _ := newFixture(ticket)

	_, err := svc.ChangeBookingRoom(context.Background(), 1, 1, 102)
	assert.ErrorIs(t, err, service.ErrForbidden)
}
