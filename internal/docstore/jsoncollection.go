package docstore

import (
	"context"
	"fmt"
)

type jsonCollection struct {
	store *JSONStore
	name  string
}

func (c *jsonCollection) Name() string {
	return c.name
}

func (c *jsonCollection) Find(ctx context.Context, f Filter) ([]Record, error) {
	out := []Record{}
	err := c.store.view(ctx, func(db database) error {
		for _, r := range db[c.name] {
			if f.Match(r) {
				out = append(out, r)
			}
		}
		return nil
	})
	return out, err
}

func (c *jsonCollection) FindOne(ctx context.Context, f Filter) (Record, error) {
	var found Record
	err := c.store.view(ctx, func(db database) error {
		if i := indexOf(db[c.name], f); i >= 0 {
			found = db[c.name][i]
		}
		return nil
	})
	return found, err
}

func (c *jsonCollection) FindByID(ctx context.Context, id any) (Record, error) {
	return c.FindOne(ctx, Filter{ByID(id)})
}

func (c *jsonCollection) Count(ctx context.Context, f Filter) (int, error) {
	records, err := c.Find(ctx, f)
	return len(records), err
}

func (c *jsonCollection) Create(ctx context.Context, fields Record) (Record, error) {
	var created Record
	err := c.store.mutate(ctx, func(db database) (bool, error) {
		records := db[c.name]
		now := c.store.now()

		rec, generated := PrepareCreate(fields, now, c.store.newID)
		for attempt := 0; indexOf(records, Filter{ByID(rec[FieldID])}) >= 0; attempt++ {
			if !generated || attempt >= maxIDRetries {
				return false, fmt.Errorf("create in %s: %w: %s", c.name, ErrConflict, rec.ID())
			}
			rec[FieldID] = c.store.newID(now)
		}

		db[c.name] = append(records, rec)
		created = rec
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (c *jsonCollection) UpdateOne(ctx context.Context, f Filter, patch Patch, opts UpdateOptions) (Record, error) {
	var result Record
	err := c.store.mutate(ctx, func(db database) (bool, error) {
		records := db[c.name]
		i := indexOf(records, f)
		if i < 0 {
			return false, nil
		}

		if !opts.ReturnUpdated {
			result = records[i]
			return false, nil
		}

		records[i] = Merge(records[i], PreparePatch(patch, c.store.now()))
		result = records[i]
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *jsonCollection) UpdateByID(ctx context.Context, id any, patch Patch, opts UpdateOptions) (Record, error) {
	return c.UpdateOne(ctx, Filter{ByID(id)}, patch, opts)
}

func (c *jsonCollection) DeleteOne(ctx context.Context, f Filter) (Record, error) {
	var removed Record
	err := c.store.mutate(ctx, func(db database) (bool, error) {
		records := db[c.name]
		i := indexOf(records, f)
		if i < 0 {
			return false, nil
		}
		removed = records[i]
		db[c.name] = append(records[:i], records[i+1:]...)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return removed, nil
}

func (c *jsonCollection) DeleteByID(ctx context.Context, id any) (Record, error) {
	return c.DeleteOne(ctx, Filter{ByID(id)})
}

func (c *jsonCollection) DeleteMany(ctx context.Context, f Filter) (int, error) {
	var deleted int
	err := c.store.mutate(ctx, func(db database) (bool, error) {
		records := db[c.name]
		kept := make([]Record, 0, len(records))
		for _, r := range records {
			if f.Match(r) {
				deleted++
				continue
			}
			kept = append(kept, r)
		}
		if deleted == 0 {
			return false, nil
		}
		db[c.name] = kept
		return true, nil
	})
	return deleted, err
}

// Import stores records as given, replacing any record with the same id.
func (c *jsonCollection) Import(ctx context.Context, records []Record) (int, error) {
	err := c.store.mutate(ctx, func(db database) (bool, error) {
		existing := db[c.name]
		for _, r := range records {
			if r.ID() == "" {
				return false, fmt.Errorf("import into %s: record without id", c.name)
			}
			if i := indexOf(existing, Filter{ByID(r.ID())}); i >= 0 {
				existing[i] = r.Clone()
				continue
			}
			existing = append(existing, r.Clone())
		}
		db[c.name] = existing
		return len(records) > 0, nil
	})
	if err != nil {
		return 0, err
	}
	return len(records), nil
}

func indexOf(records []Record, f Filter) int {
	for i, r := range records {
		if f.Match(r) {
			return i
		}
	}
	return -1
}
