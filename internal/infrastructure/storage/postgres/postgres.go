package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"starauto/internal/docstore"
)

// Storage keeps every collection in one JSONB table, documents.
type Storage struct {
	pool  *pgxpool.Pool
	log   *slog.Logger
	newID docstore.IDGenerator
}

// New opens a connection pool. Schema migrations are applied by the caller.
func New(ctx context.Context, uri string, log *slog.Logger) (*Storage, error) {
	pool, err := pgxpool.New(ctx, uri)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	return &Storage{
		pool:  pool,
		log:   log.With("component", "postgres"),
		newID: docstore.LegacyID,
	}, nil
}

func (s *Storage) Close() error {
	s.pool.Close()
	return nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *Storage) Pool() *pgxpool.Pool {
	return s.pool
}

func (s *Storage) Collection(name string) (docstore.Collection, error) {
	if name == "" {
		return nil, fmt.Errorf("open collection: %w", docstore.ErrUnknownCollection)
	}
	return &collection{storage: s, name: name}, nil
}
