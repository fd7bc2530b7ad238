package store

import (
	"context"
	"testing"

	"github.com/MKhiriev/vote-monitor/internal/config"
	"github.com/MKhiriev/vote-monitor/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConnection_UnsupportedDriver(t *testing.T) {
	_, err := NewConnection(context.Background(), config.DB{Driver: "mysql", DSN: "x"}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}

func TestNewConnection_SQLite(t *testing.T) {
	db, err := NewConnection(context.Background(), config.DB{Driver: config.DriverSQLite, DSN: ":memory:"}, logger.Nop())
	require.NoError(t, err)
	defer db.Close()

	assert.Equal(t, config.DriverSQLite, db.Driver())
	assert.IsType(t, &SQLiteErrorClassifier{}, db.errorClassificator)
	assert.Equal(t, 1, db.Stats().MaxOpenConnections)
}

func TestNewStorages(t *testing.T) {
	db := newTestSQLiteDB(t)

	s := NewStorages(db, logger.Nop())

	assert.NotNil(t, s.ObserverRepository)
	assert.NotNil(t, s.NgoRepository)
	assert.NotNil(t, s.NgoAdminRepository)
}

func Test_isInMemory(t *testing.T) {
	assert.True(t, isInMemory(":memory:"))
	assert.True(t, isInMemory("file:test?mode=memory&cache=shared"))
	assert.False(t, isInMemory("file:votemonitor.db"))
}
