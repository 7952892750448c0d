package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mreira/hotel-booking/internal/repository"
)

func TestBookingRepo_FindByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "id", "name", "capacity", "hotel_id", "created_at", "updated_at"}).
		AddRow(7, 101, "101", 2, 1, now, now)
	mock.ExpectQuery(`SELECT b\.id, rm\.id, rm\.name`).
		WithArgs(uint64(3)).
		WillReturnRows(rows)

	repo := repository.NewBookingRepo(db)
	det, err := repo.FindByUser(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), det.ID)
	assert.Equal(t, uint64(101), det.Room.ID)
	assert.Equal(t, "101", det.Room.Name)
	assert.Equal(t, uint32(2), det.Room.Capacity)
	assert.Equal(t, uint64(1), det.Room.HotelID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepo_FindByUser_NoBooking(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT b\.id, rm\.id, rm\.name`).
		WithArgs(uint64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "id", "name", "capacity", "hotel_id", "created_at", "updated_at"}))

	repo := repository.NewBookingRepo(db)
	_, err = repo.FindByUser(context.Background(), 3)
	assert.ErrorIs(t, err, repository.ErrBookingNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepo_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`SELECT id, user_id, room_id, .+ FROM bookings WHERE id = \?`).
		WithArgs(uint64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "room_id", "created_at", "updated_at"}).
			AddRow(7, 3, 101, now, now))

	repo := repository.NewBookingRepo(db)
	b, err := repo.FindByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), b.UserID)
	assert.Equal(t, uint64(101), b.RoomID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepo_FindByRoom_Free(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, user_id, room_id, .+ WHERE room_id = \?`).
		WithArgs(uint64(101)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "room_id", "created_at", "updated_at"}))

	repo := repository.NewBookingRepo(db)
	_, err = repo.FindByRoom(context.Background(), 101)
	assert.ErrorIs(t, err, repository.ErrBookingNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepo_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO bookings \(user_id, room_id\)`).
		WithArgs(uint64(3), uint64(101)).
		WillReturnResult(sqlmock.NewResult(7, 1))

	repo := repository.NewBookingRepo(db)
	id, err := repo.Create(context.Background(), 3, 101)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepo_UpdateRoom(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`UPDATE bookings SET room_id = \?`).
		WithArgs(uint64(102), uint64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := repository.NewBookingRepo(db)
	require.NoError(t, repo.UpdateRoom(context.Background(), 7, 102))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepo_UpdateRoom_MissingBooking(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`UPDATE bookings SET room_id = \?`).
		WithArgs(uint64(102), uint64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := repository.NewBookingRepo(db)
	err = repo.UpdateRoom(context.Background(), 99, 102)
	assert.ErrorIs(t, err, repository.ErrBookingNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepo_CreateFaultPassesThrough(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	boom := errors.New("driver: bad connection")
	mock.ExpectExec(`INSERT INTO bookings`).
		WithArgs(uint64(3), uint64(101)).
		WillReturnError(boom)

	repo := repository.NewBookingRepo(db)
	_, err = repo.Create(context.Background(), 3, 101)
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}
