package repository // repository holds data access logic for domain entities

import (
	"context"      // context is used to manage deadlines and cancellation
	"database/sql" // sql provides DB primitives
	"errors"       // errors allows sentinel comparisons

	"github.com/mreira/hotel-booking/internal/model"
)

// BookingDetail is the shape returned to a user fetching their current
// booking: the booking id plus the full room record.  The capitalized
// "Room" key matches the platform's wire format.
type BookingDetail struct {
	ID   uint64     `json:"id"`
	Room model.Room `json:"Room"`
}

// BookingRepo provides point lookups and single-row writes for
// bookings.  No transactions and no batching: every operation is one
// statement against the bookings table.
type BookingRepo struct {
	db *sql.DB // db is the underlying database connection
}

// NewBookingRepo constructs a BookingRepo with the given DB handle.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

// FindByUser returns the user's booking joined with its room.  It
// returns ErrBookingNotFound when the user holds no booking.
func (r *BookingRepo) FindByUser(ctx context.Context, userID uint64) (*BookingDetail, error) {
	const q = `SELECT b.id, rm.id, rm.name, rm.capacity, rm.hotel_id, rm.created_at, rm.updated_at
	           FROM bookings b
	           JOIN rooms rm ON rm.id = b.room_id
	           WHERE b.user_id = ?
	           LIMIT 1`
	var det BookingDetail
	err := r.db.QueryRowContext(ctx, q, userID).Scan(
		&det.ID,
		&det.Room.ID, &det.Room.Name, &det.Room.Capacity, &det.Room.HotelID,
		&det.Room.CreatedAt, &det.Room.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &det, nil
}

// FindByID retrieves a booking row by its primary key.  Returns
// ErrBookingNotFound when no row exists.
func (r *BookingRepo) FindByID(ctx context.Context, id uint64) (*model.Booking, error) {
	const q = `SELECT id, user_id, room_id, created_at, updated_at FROM bookings WHERE id = ?`
	var b model.Booking
	err := r.db.QueryRowContext(ctx, q, id).Scan(&b.ID, &b.UserID, &b.RoomID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &b, nil
}

// FindByRoom returns the booking currently referencing the given room,
// if any.  Used as the occupancy check before create and update.
func (r *BookingRepo) FindByRoom(ctx context.Context, roomID uint64) (*model.Booking, error) {
	const q = `SELECT id, user_id, room_id, created_at, updated_at FROM bookings WHERE room_id = ? LIMIT 1`
	var b model.Booking
	err := r.db.QueryRowContext(ctx, q, roomID).Scan(&b.ID, &b.UserID, &b.RoomID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &b, nil
}

// Create inserts a booking linking the user to the room and returns
// the generated booking id.
func (r *BookingRepo) Create(ctx context.Context, userID, roomID uint64) (uint64, error) {
	const q = `INSERT INTO bookings (user_id, room_id) VALUES (?, ?)`
	res, err := r.db.ExecContext(ctx, q, userID, roomID)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// UpdateRoom swaps the room reference of an existing booking in place.
// Returns ErrBookingNotFound when the booking id matches no row.
func (r *BookingRepo) UpdateRoom(ctx context.Context, bookingID, roomID uint64) error {
	const q = `UPDATE bookings SET room_id = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, roomID, bookingID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrBookingNotFound
	}
	return nil
}
