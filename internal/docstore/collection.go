package docstore

import "context"

const (
	Users     = "users"
	Cars      = "cars"
	Messages  = "messages"
	Favorites = "favorites"
)

// Collections lists every collection the application uses.
var Collections = []string{Users, Cars, Messages, Favorites}

// Known reports whether name is one of Collections.
func Known(name string) bool {
	for _, c := range Collections {
		if c == name {
			return true
		}
	}
	return false
}

type UpdateOptions struct {
	// ReturnUpdated asks for the post-merge record. On the emulated store a
	// false value returns the record as it was and discards the merge.
	// Driver-backed collections always persist and return the merged record.
	ReturnUpdated bool
}

// Collection is the verb set every backing store exposes. Lookups that match
// nothing return a nil Record and a nil error.
type Collection interface {
	Name() string

	Find(ctx context.Context, f Filter) ([]Record, error)
	FindOne(ctx context.Context, f Filter) (Record, error)
	FindByID(ctx context.Context, id any) (Record, error)
	Count(ctx context.Context, f Filter) (int, error)

	Create(ctx context.Context, fields Record) (Record, error)

	UpdateOne(ctx context.Context, f Filter, patch Patch, opts UpdateOptions) (Record, error)
	UpdateByID(ctx context.Context, id any, patch Patch, opts UpdateOptions) (Record, error)

	DeleteOne(ctx context.Context, f Filter) (Record, error)
	DeleteByID(ctx context.Context, id any) (Record, error)
	DeleteMany(ctx context.Context, f Filter) (int, error)
}

// Importer is implemented by collections that can store records verbatim,
// keeping their ids and timestamps. Existing ids are replaced.
type Importer interface {
	Import(ctx context.Context, records []Record) (int, error)
}

// Backend hands out collection handles.
type Backend interface {
	Collection(name string) (Collection, error)
}
