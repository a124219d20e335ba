package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/moby/sys/atomicwriter"
	"golang.org/x/exp/slog"

	"starauto/internal/utils/logger"
)

// database is the whole on-disk document: collection name -> records.
type database map[string][]Record

func emptyDatabase() database {
	db := make(database, len(Collections))
	for _, name := range Collections {
		db[name] = []Record{}
	}
	return db
}

// JSONStore emulates a document database on top of one pretty-printed JSON
// file. Every operation reads the whole file; every mutation rewrites it.
// Mutations are serialized by a mutex and the file is replaced atomically, so
// concurrent read-modify-write cycles within the process do not lose updates.
type JSONStore struct {
	path  string
	mu    sync.RWMutex
	now   func() time.Time
	newID IDGenerator
	log   *slog.Logger

	// corrupt is set when the last read found bytes that are not valid JSON.
	// The next write moves those bytes aside before replacing the file.
	corrupt atomic.Bool
}

type Option func(*JSONStore)

func WithClock(now func() time.Time) Option {
	return func(s *JSONStore) { s.now = now }
}

func WithIDGenerator(gen IDGenerator) Option {
	return func(s *JSONStore) { s.newID = gen }
}

// OpenJSON prepares the store at path, creating the parent directory and an
// empty four-collection document when the file does not exist yet.
func OpenJSON(path string, log *slog.Logger, opts ...Option) (*JSONStore, error) {
	s := &JSONStore{
		path:  path,
		now:   time.Now,
		newID: LegacyID,
		log:   log.With("component", "json_store", "path", path),
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	_, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err := s.save(emptyDatabase()); err != nil {
			return nil, fmt.Errorf("init json store: %w", err)
		}
		s.log.Info("json store initialized")
	case err != nil:
		return nil, fmt.Errorf("stat json store: %w", err)
	}

	return s, nil
}

func (s *JSONStore) Path() string {
	return s.path
}

// Collection returns a handle on name. Any non-empty name is accepted; the
// collection springs into existence on its first write.
func (s *JSONStore) Collection(name string) (Collection, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty name", ErrUnknownCollection)
	}
	return &jsonCollection{store: s, name: name}, nil
}

// snapshot returns a copy of every collection currently on disk.
func (s *JSONStore) snapshot(ctx context.Context) (map[string][]Record, error) {
	var out map[string][]Record
	err := s.view(ctx, func(db database) error {
		out = make(map[string][]Record, len(db))
		for name, records := range db {
			out[name] = records
		}
		return nil
	})
	return out, err
}

// load never fails: a missing, unreadable or corrupt file yields the default
// empty document. Corruption is logged and remembered for the next write.
func (s *JSONStore) load() database {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.log.Warn("failed to read json store, serving empty collections", logger.Err(err))
		}
		return emptyDatabase()
	}

	var raw map[string][]Record
	if err := json.Unmarshal(data, &raw); err != nil {
		s.corrupt.Store(true)
		s.log.Error("json store is corrupt, serving empty collections",
			logger.Err(fmt.Errorf("%w: %v", ErrCorruptStore, err)))
		return emptyDatabase()
	}

	db := emptyDatabase()
	for name, records := range raw {
		if records == nil {
			records = []Record{}
		}
		db[name] = records
	}
	return db
}

func (s *JSONStore) save(db database) error {
	if s.corrupt.Load() {
		if err := s.quarantine(); err != nil {
			return err
		}
	}

	data, err := json.MarshalIndent(db, "", "  ")
	if err != nil {
		return fmt.Errorf("encode json store: %w", err)
	}

	if err := atomicwriter.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write json store: %w", err)
	}
	return nil
}

// quarantine moves the corrupt file next to itself so the following write
// does not destroy it.
func (s *JSONStore) quarantine() error {
	target := s.path + ".corrupt-" + strconv.FormatInt(s.now().UnixMilli(), 10)
	if err := os.Rename(s.path, target); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("quarantine corrupt json store: %w", err)
	}
	s.corrupt.Store(false)
	s.log.Warn("corrupt json store moved aside", "target", target)
	return nil
}

func (s *JSONStore) view(ctx context.Context, fn func(db database) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	return fn(s.load())
}

// mutate runs fn on a fresh copy of the file under the write lock and saves
// the result when fn reports a change.
func (s *JSONStore) mutate(ctx context.Context, fn func(db database) (bool, error)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	db := s.load()
	changed, err := fn(db)
	if err != nil || !changed {
		return err
	}
	return s.save(db)
}
