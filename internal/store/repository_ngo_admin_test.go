package store

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/vote-monitor/internal/logger"
	"github.com/MKhiriev/vote-monitor/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNgoAdminRepository_SQLite_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	db := newTestSQLiteDB(t)
	ngo := seedNgo(t, db)
	repo := NewNgoAdminRepository(db, logger.Nop())

	created, err := repo.CreateNgoAdmin(ctx, models.NgoAdmin{NgoID: ngo.ID, Account: "admin", Password: "hash"})
	require.NoError(t, err)
	assert.Positive(t, created.ID)

	found, err := repo.FindNgoAdminByCredentials(ctx, "admin", "hash")
	require.NoError(t, err)
	assert.Equal(t, created, found)

	_, err = repo.FindNgoAdminByCredentials(ctx, "admin", "wrong")
	assert.ErrorIs(t, err, ErrNgoAdminNotFound)
}

func TestNgoAdminRepository_SQLite_DuplicateAccount(t *testing.T) {
	ctx := context.Background()
	db := newTestSQLiteDB(t)
	ngo := seedNgo(t, db)
	repo := NewNgoAdminRepository(db, logger.Nop())

	admin := models.NgoAdmin{NgoID: ngo.ID, Account: "admin", Password: "hash"}
	_, err := repo.CreateNgoAdmin(ctx, admin)
	require.NoError(t, err)

	_, err = repo.CreateNgoAdmin(ctx, admin)
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestNgoAdminRepository_Mock_QueryError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNgoAdminRepository(db, logger.Nop())

	mock.ExpectQuery("FROM ngo_admins").WillReturnError(errors.New("boom"))

	_, err := repo.FindNgoAdminByCredentials(context.Background(), "admin", "hash")
	assert.ErrorIs(t, err, ErrExecutingQuery)
}
