package migration

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	// Blank imports register the database drivers and the file source
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"starauto/internal/config"
)

var ErrNoDriver = errors.New("no database driver configured")

// Migrator — интерфейс для самой библиотеки migrate.Migrate
type Migrator interface {
	Up() error
	Close() (error, error)
}

// MigrationEngine — фабрика для создания мигратора (чтобы не лезть в ФС и БД в тестах)
type MigrationEngine func(sourceURL, databaseURL string) (Migrator, error)

type Migration struct {
	cfg    *config.Config
	engine MigrationEngine
}

func NewMigration(conf *config.Config, engine MigrationEngine) *Migration {
	return &Migration{
		cfg:    conf,
		engine: engine,
	}
}

// DefaultEngine — реальная реализация для продакшена
func DefaultEngine(sourceURL, databaseURL string) (Migrator, error) {
	return migrate.New(sourceURL, databaseURL)
}

// SourceURL points at the migrations directory of the configured driver.
func SourceURL(cfg *config.Config) string {
	return "file://" + filepath.ToSlash(filepath.Join(cfg.DB.Migrations, cfg.DB.Driver))
}

// DatabaseURL turns the configured DSN into a URL golang-migrate understands.
func DatabaseURL(cfg *config.Config) (string, error) {
	switch cfg.DB.Driver {
	case config.DriverPostgres:
		return cfg.DB.DatabaseURI, nil
	case config.DriverSQLite:
		return "sqlite3://" + cfg.DB.DatabaseURI, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrNoDriver, cfg.DB.Driver)
	}
}

func (mg *Migration) Up() (err error) {
	dbURL, err := DatabaseURL(mg.cfg)
	if err != nil {
		return err
	}

	m, err := mg.engine(SourceURL(mg.cfg), dbURL)
	if err != nil {
		return err
	}
	defer func() {
		serr, dberr := m.Close()
		if serr != nil {
			if err != nil {
				err = fmt.Errorf("%w; migration source error: %v", err, serr)
			} else {
				err = serr
			}
		}
		if dberr != nil {
			if err != nil {
				err = fmt.Errorf("%w; migration database error: %v", err, dberr)
			} else {
				err = dberr
			}
		}
	}()
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration up: %w", err)
	}
	return nil
}
