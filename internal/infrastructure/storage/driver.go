package storage

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"

	"starauto/internal/config"
	"starauto/internal/docstore"
	"starauto/internal/infrastructure/migration"
	"starauto/internal/infrastructure/storage/postgres"
	"starauto/internal/infrastructure/storage/sqlite"
)

// driverBackend is a database backed docstore.Backend.
type driverBackend interface {
	docstore.Backend
	Pinger
	Close() error
}

// Stores is everything the application persists through.
type Stores struct {
	JSON    *docstore.JSONStore
	Driver  docstore.Backend
	Monitor *Monitor
	Factory *docstore.Factory

	closeDriver func() error
}

// Open opens the JSON store and, when configured, the database driver. A
// database that cannot be migrated or reached is logged and the factory falls
// back to the JSON store.
func Open(ctx context.Context, cfg *config.Config, engine migration.MigrationEngine, log *slog.Logger) (*Stores, error) {
	jsonStore, err := docstore.OpenJSON(cfg.DB.JSONPath, log)
	if err != nil {
		return nil, fmt.Errorf("open json store: %w", err)
	}

	s := &Stores{JSON: jsonStore}

	driver, err := openDriver(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	var probe docstore.Prober
	if driver != nil {
		if err := migration.NewMigration(cfg, engine).Up(); err != nil {
			log.Error("database migration failed", slog.String("error", err.Error()))
		}

		s.Driver = driver
		s.closeDriver = driver.Close
		s.Monitor = NewMonitor(driver, cfg.DB.ProbeInterval, log)
		s.Monitor.Check(ctx)
		probe = s.Monitor
	}

	s.Factory = docstore.NewFactory(jsonStore, s.Driver, probe, log)
	return s, nil
}

func openDriver(ctx context.Context, cfg *config.Config, log *slog.Logger) (driverBackend, error) {
	switch cfg.DB.Driver {
	case config.DriverPostgres:
		st, err := postgres.New(ctx, cfg.DB.DatabaseURI, log)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		return st, nil
	case config.DriverSQLite:
		st, err := sqlite.New(cfg.DB.DatabaseURI, log)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		return st, nil
	case config.DriverNone, "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown db driver %q", cfg.DB.Driver)
	}
}

func (s *Stores) Close() error {
	if s.closeDriver == nil {
		return nil
	}
	return s.closeDriver()
}
