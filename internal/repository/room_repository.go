package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mreira/hotel-booking/internal/model"
)

// RoomRepo reads room reference data.  Rooms are never created or
// mutated by this service.
type RoomRepo struct {
	db *sql.DB
}

// NewRoomRepo constructs a RoomRepo with the given DB handle.
func NewRoomRepo(db *sql.DB) *RoomRepo { return &RoomRepo{db: db} }

// FindByID retrieves a room by its ID.  Returns ErrRoomNotFound when
// no row is found.
func (r *RoomRepo) FindByID(ctx context.Context, id uint64) (*model.Room, error) {
	const q = `SELECT id, name, capacity, hotel_id, created_at, updated_at FROM rooms WHERE id = ?`
	var rm model.Room
	err := r.db.QueryRowContext(ctx, q, id).Scan(&rm.ID, &rm.Name, &rm.Capacity, &rm.HotelID, &rm.CreatedAt, &rm.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return &rm, nil
}
