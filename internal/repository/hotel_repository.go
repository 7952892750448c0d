package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mreira/hotel-booking/internal/model"
)

// HotelRepo serves the browse endpoints: listing hotels and the rooms
// of one hotel.
type HotelRepo struct {
	db *sql.DB
}

// NewHotelRepo constructs a HotelRepo with the given DB handle.
func NewHotelRepo(db *sql.DB) *HotelRepo { return &HotelRepo{db: db} }

// List returns all hotels ordered by id.
func (r *HotelRepo) List(ctx context.Context) ([]*model.Hotel, error) {
	const q = `SELECT id, name, image, created_at, updated_at FROM hotels ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Hotel
	for rows.Next() {
		h := new(model.Hotel)
		if err := rows.Scan(&h.ID, &h.Name, &h.Image, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// FindByID retrieves one hotel.  Returns ErrHotelNotFound when no row
// is found.
func (r *HotelRepo) FindByID(ctx context.Context, id uint64) (*model.Hotel, error) {
	const q = `SELECT id, name, image, created_at, updated_at FROM hotels WHERE id = ?`
	var h model.Hotel
	err := r.db.QueryRowContext(ctx, q, id).Scan(&h.ID, &h.Name, &h.Image, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}
	return &h, nil
}

// ListRooms returns all rooms belonging to a hotel ordered by id.
func (r *HotelRepo) ListRooms(ctx context.Context, hotelID uint64) ([]*model.Room, error) {
	const q = `SELECT id, name, capacity, hotel_id, created_at, updated_at
	           FROM rooms
	           WHERE hotel_id = ?
	           ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q, hotelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Room
	for rows.Next() {
		rm := new(model.Room)
		if err := rows.Scan(&rm.ID, &rm.Name, &rm.Capacity, &rm.HotelID, &rm.CreatedAt, &rm.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
