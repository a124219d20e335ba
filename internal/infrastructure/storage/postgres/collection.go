package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"starauto/internal/docstore"
)

type collection struct {
	storage *Storage
	name    string
}

func (c *collection) Name() string {
	return c.name
}

func (c *collection) Find(ctx context.Context, f docstore.Filter) ([]docstore.Record, error) {
	where, args, err := whereClause(c.name, f)
	if err != nil {
		return nil, err
	}

	rows, err := c.storage.pool.Query(ctx,
		"SELECT body FROM documents WHERE "+where+" ORDER BY seq", args...)
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", c.name, err)
	}
	defer rows.Close()

	out := []docstore.Record{}
	for rows.Next() {
		var body []byte
		if err := rows.Scan(&body); err != nil {
			return nil, fmt.Errorf("scan %s: %w", c.name, err)
		}
		r, err := decode(body)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("find in %s: %w", c.name, err)
	}
	return out, nil
}

func (c *collection) FindOne(ctx context.Context, f docstore.Filter) (docstore.Record, error) {
	where, args, err := whereClause(c.name, f)
	if err != nil {
		return nil, err
	}

	return c.queryOne(ctx, "find in",
		"SELECT body FROM documents WHERE "+where+" ORDER BY seq LIMIT 1", args...)
}

func (c *collection) FindByID(ctx context.Context, id any) (docstore.Record, error) {
	return c.FindOne(ctx, docstore.Filter{docstore.ByID(id)})
}

func (c *collection) Count(ctx context.Context, f docstore.Filter) (int, error) {
	where, args, err := whereClause(c.name, f)
	if err != nil {
		return 0, err
	}

	var n int
	err = c.storage.pool.QueryRow(ctx, "SELECT count(*) FROM documents WHERE "+where, args...).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", c.name, err)
	}
	return n, nil
}

func (c *collection) Create(ctx context.Context, fields docstore.Record) (docstore.Record, error) {
	now := time.Now()
	rec, generated := docstore.PrepareCreate(fields, now, c.storage.newID)

	for attempt := 0; ; attempt++ {
		body, err := json.Marshal(rec)
		if err != nil {
			return nil, fmt.Errorf("encode %s document: %w", c.name, err)
		}

		_, err = c.storage.pool.Exec(ctx,
			`INSERT INTO documents (collection, id, body) VALUES ($1, $2, $3::jsonb)`,
			c.name, rec.ID(), string(body))
		if err == nil {
			return rec, nil
		}
		if !isUniqueViolation(err) {
			return nil, fmt.Errorf("create in %s: %w", c.name, err)
		}
		if !generated || attempt >= maxIDRetries {
			return nil, fmt.Errorf("create in %s: %w: %s", c.name, docstore.ErrConflict, rec.ID())
		}
		rec[docstore.FieldID] = c.storage.newID(now)
	}
}

// UpdateOne always persists the merge; opts only exist for the emulated store.
func (c *collection) UpdateOne(ctx context.Context, f docstore.Filter, patch docstore.Patch, _ docstore.UpdateOptions) (docstore.Record, error) {
	where, args, err := whereClause(c.name, f)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(docstore.PreparePatch(patch, time.Now()))
	if err != nil {
		return nil, fmt.Errorf("encode %s patch: %w", c.name, err)
	}
	args = append(args, string(body))

	query := fmt.Sprintf(
		"UPDATE documents SET body = body || $%d::jsonb WHERE collection = $1 AND id = (%s) RETURNING body",
		len(args), firstMatch(where))
	return c.queryOne(ctx, "update in", query, args...)
}

func (c *collection) UpdateByID(ctx context.Context, id any, patch docstore.Patch, opts docstore.UpdateOptions) (docstore.Record, error) {
	return c.UpdateOne(ctx, docstore.Filter{docstore.ByID(id)}, patch, opts)
}

func (c *collection) DeleteOne(ctx context.Context, f docstore.Filter) (docstore.Record, error) {
	where, args, err := whereClause(c.name, f)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(
		"DELETE FROM documents WHERE collection = $1 AND id = (%s) RETURNING body", firstMatch(where))
	return c.queryOne(ctx, "delete in", query, args...)
}

func (c *collection) DeleteByID(ctx context.Context, id any) (docstore.Record, error) {
	return c.DeleteOne(ctx, docstore.Filter{docstore.ByID(id)})
}

func (c *collection) DeleteMany(ctx context.Context, f docstore.Filter) (int, error) {
	where, args, err := whereClause(c.name, f)
	if err != nil {
		return 0, err
	}

	tag, err := c.storage.pool.Exec(ctx, "DELETE FROM documents WHERE "+where, args...)
	if err != nil {
		return 0, fmt.Errorf("delete in %s: %w", c.name, err)
	}
	return int(tag.RowsAffected()), nil
}

// Import upserts records as given inside one transaction.
func (c *collection) Import(ctx context.Context, records []docstore.Record) (int, error) {
	tx, err := c.storage.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin import: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	for _, r := range records {
		id := r.ID()
		if id == "" {
			return 0, fmt.Errorf("import into %s: record without id", c.name)
		}
		doc := r.Clone()
		doc[docstore.FieldID] = id

		body, err := json.Marshal(doc)
		if err != nil {
			return 0, fmt.Errorf("encode %s document: %w", c.name, err)
		}
		_, err = tx.Exec(ctx,
			`INSERT INTO documents (collection, id, body) VALUES ($1, $2, $3::jsonb)
			 ON CONFLICT (collection, id) DO UPDATE SET body = EXCLUDED.body`,
			c.name, id, string(body))
		if err != nil {
			return 0, fmt.Errorf("import into %s: %w", c.name, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit import: %w", err)
	}
	return len(records), nil
}

func (c *collection) queryOne(ctx context.Context, verb, query string, args ...any) (docstore.Record, error) {
	var body []byte
	err := c.storage.pool.QueryRow(ctx, query, args...).Scan(&body)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", verb, c.name, err)
	}
	return decode(body)
}
