package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	// registers the "sqlite3" database/sql driver
	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/exp/slog"

	"starauto/internal/docstore"
)

const maxIDRetries = 5

// Storage keeps every collection in one table of JSON text documents, queried
// through the JSON1 functions.
type Storage struct {
	db    *sql.DB
	log   *slog.Logger
	now   func() time.Time
	newID docstore.IDGenerator
}

// New opens the database file at path. Schema migrations are applied by the
// caller.
func New(path string, log *slog.Logger) (*Storage, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// one writer at a time; sqlite locks the whole file anyway
	db.SetMaxOpenConns(1)
	return NewFromDB(db, log), nil
}

func NewFromDB(db *sql.DB, log *slog.Logger) *Storage {
	return &Storage{
		db:    db,
		log:   log.With("component", "sqlite"),
		now:   time.Now,
		newID: docstore.LegacyID,
	}
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Storage) Collection(name string) (docstore.Collection, error) {
	if name == "" {
		return nil, fmt.Errorf("open collection: %w", docstore.ErrUnknownCollection)
	}
	return &collection{storage: s, name: name}, nil
}
