package repository_test

import (
	"context"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mreira/hotel-booking/internal/repository"
)

func TestEnrollmentRepo_FindTicketByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT t\.status, tt\.name`).
		WithArgs(uint64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"status", "name", "is_remote", "includes_hotel"}).
			AddRow("PAID", "Presencial + Hotel", false, true))

	repo := repository.NewEnrollmentRepo(db)
	et, err := repo.FindTicketByUser(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "PAID", et.Status)
	assert.Equal(t, "Presencial + Hotel", et.TicketType)
	assert.False(t, et.IsRemote)
	assert.True(t, et.IncludesHotel)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnrollmentRepo_FindTicketByUser_NoEnrollment(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT t\.status, tt\.name`).
		WithArgs(uint64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"status", "name", "is_remote", "includes_hotel"}))

	repo := repository.NewEnrollmentRepo(db)
	_, err = repo.FindTicketByUser(context.Background(), 3)
	assert.ErrorIs(t, err, repository.ErrEnrollmentNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
