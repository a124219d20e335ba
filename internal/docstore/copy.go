package docstore

import (
	"context"
	"fmt"
)

// Copy reconciles dst with src by writing every record of src into dst.
// Records keep their ids and timestamps when dst implements Importer;
// otherwise they are re-created through Create or merged through UpdateByID.
func Copy(ctx context.Context, src, dst Collection) (int, error) {
	records, err := src.Find(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", src.Name(), err)
	}

	if imp, ok := dst.(Importer); ok {
		n, err := imp.Import(ctx, records)
		if err != nil {
			return n, fmt.Errorf("import %s: %w", dst.Name(), err)
		}
		return n, nil
	}

	var copied int
	for _, r := range records {
		existing, err := dst.FindByID(ctx, r.ID())
		if err != nil {
			return copied, fmt.Errorf("lookup %s/%s: %w", dst.Name(), r.ID(), err)
		}

		if existing == nil {
			_, err = dst.Create(ctx, r)
		} else {
			_, err = dst.UpdateByID(ctx, r.ID(), Patch(r), UpdateOptions{ReturnUpdated: true})
		}
		if err != nil {
			return copied, fmt.Errorf("write %s/%s: %w", dst.Name(), r.ID(), err)
		}
		copied++
	}
	return copied, nil
}

// CopyAll runs Copy for every application collection.
func CopyAll(ctx context.Context, src, dst Backend) (map[string]int, error) {
	counts := make(map[string]int, len(Collections))
	for _, name := range Collections {
		from, err := src.Collection(name)
		if err != nil {
			return counts, err
		}
		to, err := dst.Collection(name)
		if err != nil {
			return counts, err
		}
		n, err := Copy(ctx, from, to)
		counts[name] = n
		if err != nil {
			return counts, err
		}
	}
	return counts, nil
}
