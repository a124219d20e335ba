package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"starauto/internal/config"
	"starauto/internal/docstore"
	"starauto/internal/infrastructure/migration"
)

func noMigrations(string, string) (migration.Migrator, error) {
	panic("migrations must not run without a driver")
}

func TestOpen_JSONOnly(t *testing.T) {
	cfg := &config.Config{DB: config.DB{
		Driver:   config.DriverNone,
		JSONPath: filepath.Join(t.TempDir(), "db.json"),
	}}

	stores, err := Open(context.Background(), cfg, noMigrations, slog.Default())
	require.NoError(t, err)
	defer stores.Close()

	assert.Nil(t, stores.Driver)
	assert.Nil(t, stores.Monitor)
	assert.Equal(t, docstore.ModeEmulated, stores.Factory.Mode())
	assert.FileExists(t, cfg.DB.JSONPath)
}

func TestOpen_UnknownDriver(t *testing.T) {
	cfg := &config.Config{DB: config.DB{
		Driver:   "mongo",
		JSONPath: filepath.Join(t.TempDir(), "db.json"),
	}}

	_, err := Open(context.Background(), cfg, noMigrations, slog.Default())
	assert.ErrorContains(t, err, "unknown db driver")
}
