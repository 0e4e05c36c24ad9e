package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"

	"noticeboard/internal/shared/config"
)

func TestOpen_SQLite(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Driver:          config.DriverSQLite,
		Path:            filepath.Join(t.TempDir(), "board.db"),
		LogLevel:        "silent",
		ConnMaxLifetime: 60,
	}

	database, err := Open(cfg)
	require.NoError(t, err)

	sqlDB, err := database.DB()
	require.NoError(t, err)
	defer sqlDB.Close()

	var fk int
	require.NoError(t, database.Raw("PRAGMA foreign_keys").Scan(&fk).Error)
	assert.Equal(t, 1, fk)
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(&config.DatabaseConfig{Driver: "oracle"})
	assert.Error(t, err)
}

func TestInitPingClose(t *testing.T) {
	assert.Error(t, Ping(context.Background()))

	cfg := &config.DatabaseConfig{
		Driver:   config.DriverSQLite,
		Path:     filepath.Join(t.TempDir(), "board.db"),
		LogLevel: "silent",
	}
	require.NoError(t, Init(cfg))
	assert.NotNil(t, Get())
	assert.NoError(t, Ping(context.Background()))

	require.NoError(t, Close())
	assert.Nil(t, Get())
	assert.NoError(t, Close())
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, logger.Silent, parseLogLevel("silent"))
	assert.Equal(t, logger.Error, parseLogLevel("ERROR"))
	assert.Equal(t, logger.Info, parseLogLevel("info"))
	assert.Equal(t, logger.Warn, parseLogLevel(""))
}
