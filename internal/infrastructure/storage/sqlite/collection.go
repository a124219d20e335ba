package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

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
	where, args := whereClause(c.name, f)

	rows, err := c.storage.db.QueryContext(ctx,
		"SELECT body FROM documents WHERE "+where+" ORDER BY seq", args...)
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", c.name, err)
	}
	defer rows.Close()

	out := []docstore.Record{}
	for rows.Next() {
		var body string
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
	where, args := whereClause(c.name, f)

	var body string
	err := c.storage.db.QueryRowContext(ctx,
		"SELECT body FROM documents WHERE "+where+" ORDER BY seq LIMIT 1", args...).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", c.name, err)
	}
	return decode(body)
}

func (c *collection) FindByID(ctx context.Context, id any) (docstore.Record, error) {
	return c.FindOne(ctx, docstore.Filter{docstore.ByID(id)})
}

func (c *collection) Count(ctx context.Context, f docstore.Filter) (int, error) {
	where, args := whereClause(c.name, f)

	var n int
	err := c.storage.db.QueryRowContext(ctx, "SELECT count(*) FROM documents WHERE "+where, args...).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", c.name, err)
	}
	return n, nil
}

func (c *collection) Create(ctx context.Context, fields docstore.Record) (docstore.Record, error) {
	now := c.storage.now()
	rec, generated := docstore.PrepareCreate(fields, now, c.storage.newID)

	for attempt := 0; ; attempt++ {
		body, err := encode(rec)
		if err != nil {
			return nil, err
		}

		res, err := c.storage.db.ExecContext(ctx,
			"INSERT INTO documents (collection, id, body) VALUES (?, ?, ?) ON CONFLICT (collection, id) DO NOTHING",
			c.name, rec.ID(), body)
		if err != nil {
			return nil, fmt.Errorf("create in %s: %w", c.name, err)
		}
		if n, _ := res.RowsAffected(); n == 1 {
			return rec, nil
		}

		if !generated || attempt >= maxIDRetries {
			return nil, fmt.Errorf("create in %s: %w: %s", c.name, docstore.ErrConflict, rec.ID())
		}
		rec[docstore.FieldID] = c.storage.newID(now)
	}
}

// UpdateOne always persists the merge; opts only exist for the emulated store.
func (c *collection) UpdateOne(ctx context.Context, f docstore.Filter, patch docstore.Patch, _ docstore.UpdateOptions) (docstore.Record, error) {
	var updated docstore.Record
	err := c.withFirst(ctx, f, func(tx *sql.Tx, seq int64, rec docstore.Record) error {
		updated = docstore.Merge(rec, docstore.PreparePatch(patch, c.storage.now()))
		body, err := encode(updated)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, "UPDATE documents SET body = ? WHERE seq = ?", body, seq)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("update in %s: %w", c.name, err)
	}
	return updated, nil
}

func (c *collection) UpdateByID(ctx context.Context, id any, patch docstore.Patch, opts docstore.UpdateOptions) (docstore.Record, error) {
	return c.UpdateOne(ctx, docstore.Filter{docstore.ByID(id)}, patch, opts)
}

func (c *collection) DeleteOne(ctx context.Context, f docstore.Filter) (docstore.Record, error) {
	var removed docstore.Record
	err := c.withFirst(ctx, f, func(tx *sql.Tx, seq int64, rec docstore.Record) error {
		removed = rec
		_, err := tx.ExecContext(ctx, "DELETE FROM documents WHERE seq = ?", seq)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("delete in %s: %w", c.name, err)
	}
	return removed, nil
}

func (c *collection) DeleteByID(ctx context.Context, id any) (docstore.Record, error) {
	return c.DeleteOne(ctx, docstore.Filter{docstore.ByID(id)})
}

func (c *collection) DeleteMany(ctx context.Context, f docstore.Filter) (int, error) {
	where, args := whereClause(c.name, f)

	res, err := c.storage.db.ExecContext(ctx, "DELETE FROM documents WHERE "+where, args...)
	if err != nil {
		return 0, fmt.Errorf("delete in %s: %w", c.name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete in %s: %w", c.name, err)
	}
	return int(n), nil
}

// Import upserts records as given inside one transaction.
func (c *collection) Import(ctx context.Context, records []docstore.Record) (int, error) {
	tx, err := c.storage.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin import: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	for _, r := range records {
		id := r.ID()
		if id == "" {
			return 0, fmt.Errorf("import into %s: record without id", c.name)
		}
		doc := r.Clone()
		doc[docstore.FieldID] = id

		body, err := encode(doc)
		if err != nil {
			return 0, err
		}
		_, err = tx.ExecContext(ctx,
			"INSERT INTO documents (collection, id, body) VALUES (?, ?, ?) ON CONFLICT (collection, id) DO UPDATE SET body = excluded.body",
			c.name, id, body)
		if err != nil {
			return 0, fmt.Errorf("import into %s: %w", c.name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit import: %w", err)
	}
	return len(records), nil
}

// withFirst runs fn in a transaction on the earliest inserted document
// matching f. Nothing happens when no document matches.
func (c *collection) withFirst(ctx context.Context, f docstore.Filter, fn func(tx *sql.Tx, seq int64, rec docstore.Record) error) error {
	where, args := whereClause(c.name, f)

	tx, err := c.storage.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck

	var (
		seq  int64
		body string
	)
	err = tx.QueryRowContext(ctx,
		"SELECT seq, body FROM documents WHERE "+where+" ORDER BY seq LIMIT 1", args...).Scan(&seq, &body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return err
	}

	rec, err := decode(body)
	if err != nil {
		return err
	}
	if err := fn(tx, seq, rec); err != nil {
		return err
	}
	return tx.Commit()
}
