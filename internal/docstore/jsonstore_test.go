package docstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(time.Millisecond)
	return c.t
}

func newTestStore(t *testing.T, opts ...Option) *JSONStore {
	t.Helper()
	clock := &fakeClock{t: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)}
	opts = append([]Option{WithClock(clock.Now)}, opts...)

	s, err := OpenJSON(filepath.Join(t.TempDir(), "data", "db.json"), slog.Default(), opts...)
	require.NoError(t, err)
	return s
}

func collection(t *testing.T, s *JSONStore, name string) Collection {
	t.Helper()
	c, err := s.Collection(name)
	require.NoError(t, err)
	return c
}

func TestOpenJSON_CreatesDefaultDocument(t *testing.T) {
	s := newTestStore(t)

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.JSONEq(t, `{"users":[],"cars":[],"messages":[],"favorites":[]}`, string(data))
	assert.Contains(t, string(data), "\n  ", "file should be pretty printed")
}

func TestOpenJSON_KeepsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"cars":[{"id":"1","marque":"BMW"}]}`), 0o644))

	s, err := OpenJSON(path, slog.Default())
	require.NoError(t, err)

	cars, err := collection(t, s, Cars).Find(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, cars, 1)
	assert.Equal(t, "BMW", cars[0]["marque"])

	users, err := collection(t, s, Users).Find(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, users, "missing top-level keys default to empty")
}

func TestJSONStore_CreateRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	cars := collection(t, s, Cars)

	first, err := cars.Create(ctx, Record{"marque": "Audi", "annee": 2022})
	require.NoError(t, err)
	second, err := cars.Create(ctx, Record{"marque": "BMW", "annee": 2023})
	require.NoError(t, err)

	assert.NotEmpty(t, second.ID())
	assert.NotEqual(t, first.ID(), second.ID())
	assert.NotEmpty(t, second[FieldCreatedAt])
	assert.Equal(t, second[FieldCreatedAt], second[FieldUpdatedAt])

	got, err := cars.FindByID(ctx, second.ID())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "BMW", got["marque"])
	assert.EqualValues(t, 2023, got["annee"])
	assert.Equal(t, second[FieldCreatedAt], got[FieldCreatedAt])

	all, err := cars.Find(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, first.ID(), all[0].ID())
	assert.Equal(t, second.ID(), all[1].ID(), "insertion order is preserved")
}

func TestJSONStore_CreateKeepsCallerID(t *testing.T) {
	ctx := context.Background()
	cars := collection(t, newTestStore(t), Cars)

	rec, err := cars.Create(ctx, Record{"id": "car-1", "marque": "Kia"})
	require.NoError(t, err)
	assert.Equal(t, "car-1", rec.ID())

	_, err = cars.Create(ctx, Record{"id": "car-1", "marque": "Kia"})
	assert.ErrorIs(t, err, ErrConflict)

	n, err := cars.Count(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestJSONStore_CreateRegeneratesCollidingID(t *testing.T) {
	ctx := context.Background()
	ids := []string{"dup", "dup", "fresh"}
	var i int
	gen := func(time.Time) string {
		id := ids[i]
		i++
		return id
	}
	cars := collection(t, newTestStore(t, WithIDGenerator(gen)), Cars)

	first, err := cars.Create(ctx, Record{"marque": "Fiat"})
	require.NoError(t, err)
	second, err := cars.Create(ctx, Record{"marque": "Seat"})
	require.NoError(t, err)

	assert.Equal(t, "dup", first.ID())
	assert.Equal(t, "fresh", second.ID())
}

func TestJSONStore_BulkCreateUniqueIDs(t *testing.T) {
	if testing.Short() {
		t.Skip("writes the store file a thousand times")
	}
	ctx := context.Background()
	s, err := OpenJSON(filepath.Join(t.TempDir(), "db.json"), slog.Default())
	require.NoError(t, err)
	msgs := collection(t, s, Messages)

	const n = 1000
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		rec, err := msgs.Create(ctx, Record{"n": i})
		require.NoError(t, err)
		seen[rec.ID()] = struct{}{}
	}
	assert.Len(t, seen, n)
}

func TestJSONStore_UpdateReturnUpdatedFalseWritesNothing(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	cars := collection(t, s, Cars)

	rec, err := cars.Create(ctx, Record{"marque": "Opel", "prix": 10000})
	require.NoError(t, err)

	before, err := os.ReadFile(s.Path())
	require.NoError(t, err)

	got, err := cars.UpdateByID(ctx, rec.ID(), Patch{"prix": 9000}, UpdateOptions{ReturnUpdated: false})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.EqualValues(t, 10000, got["prix"], "pre-merge record is returned")
	assert.Equal(t, rec[FieldUpdatedAt], got[FieldUpdatedAt])

	after, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestJSONStore_UpdateReturnUpdatedTruePersists(t *testing.T) {
	ctx := context.Background()
	cars := collection(t, newTestStore(t), Cars)

	rec, err := cars.Create(ctx, Record{"marque": "Opel", "prix": 10000, "couleur": "Noir"})
	require.NoError(t, err)

	got, err := cars.UpdateByID(ctx, rec.ID(), Patch{"prix": 9000, "id": "hijack", "createdAt": "never"}, UpdateOptions{ReturnUpdated: true})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.EqualValues(t, 9000, got["prix"])
	assert.Equal(t, "Noir", got["couleur"], "unspecified fields are untouched")
	assert.Equal(t, rec.ID(), got.ID(), "id is immutable")
	assert.Equal(t, rec[FieldCreatedAt], got[FieldCreatedAt], "createdAt is immutable")
	assert.NotEqual(t, rec[FieldUpdatedAt], got[FieldUpdatedAt])

	stored, err := cars.FindByID(ctx, rec.ID())
	require.NoError(t, err)
	assert.EqualValues(t, 9000, stored["prix"])
	assert.Equal(t, got[FieldUpdatedAt], stored[FieldUpdatedAt])
}

func TestJSONStore_UpdateMissing(t *testing.T) {
	cars := collection(t, newTestStore(t), Cars)

	got, err := cars.UpdateByID(context.Background(), "nope", Patch{"prix": 1}, UpdateOptions{ReturnUpdated: true})
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestJSONStore_UpdateOneTargetsFirstMatch(t *testing.T) {
	ctx := context.Background()
	msgs := collection(t, newTestStore(t), Messages)

	first, err := msgs.Create(ctx, Record{"lu": false})
	require.NoError(t, err)
	second, err := msgs.Create(ctx, Record{"lu": false})
	require.NoError(t, err)

	got, err := msgs.UpdateOne(ctx, Filter{Eq("lu", false)}, Patch{"lu": true}, UpdateOptions{ReturnUpdated: true})
	require.NoError(t, err)
	assert.Equal(t, first.ID(), got.ID())

	unread, err := msgs.Find(ctx, Filter{Eq("lu", false)})
	require.NoError(t, err)
	require.Len(t, unread, 1)
	assert.Equal(t, second.ID(), unread[0].ID())
}

func TestJSONStore_FindTolerantID(t *testing.T) {
	ctx := context.Background()
	cars := collection(t, newTestStore(t), Cars)

	_, err := cars.Create(ctx, Record{"id": "123", "marque": "Dacia"})
	require.NoError(t, err)

	byString, err := cars.Find(ctx, Where(map[string]any{"id": "123"}))
	require.NoError(t, err)
	byNumber, err := cars.Find(ctx, Where(map[string]any{"id": 123}))
	require.NoError(t, err)

	require.Len(t, byString, 1)
	assert.Equal(t, byString, byNumber)

	got, err := cars.FindByID(ctx, 123)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Dacia", got["marque"])
}

func TestJSONStore_RoleAlias(t *testing.T) {
	ctx := context.Background()
	users := collection(t, newTestStore(t), Users)

	for _, role := range []string{RoleClient, RoleUser, RoleAdmin, RoleClient} {
		_, err := users.Create(ctx, Record{"role": role})
		require.NoError(t, err)
	}

	found, err := users.Find(ctx, Where(map[string]any{"role": "USER"}))
	require.NoError(t, err)
	require.Len(t, found, 2)
	for _, u := range found {
		assert.Equal(t, RoleClient, u["role"])
	}

	n, err := users.Count(ctx, Filter{ByRole(RoleUser)})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestJSONStore_DeleteMissingTwice(t *testing.T) {
	ctx := context.Background()
	cars := collection(t, newTestStore(t), Cars)

	for i := 0; i < 2; i++ {
		got, err := cars.DeleteByID(ctx, "ghost")
		require.NoError(t, err)
		assert.Nil(t, got)
	}
}

func TestJSONStore_DeleteReturnsRemoved(t *testing.T) {
	ctx := context.Background()
	cars := collection(t, newTestStore(t), Cars)

	a, err := cars.Create(ctx, Record{"marque": "A"})
	require.NoError(t, err)
	b, err := cars.Create(ctx, Record{"marque": "B"})
	require.NoError(t, err)

	removed, err := cars.DeleteByID(ctx, a.ID())
	require.NoError(t, err)
	require.NotNil(t, removed)
	assert.Equal(t, "A", removed["marque"])

	rest, err := cars.Find(ctx, nil)
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Equal(t, b.ID(), rest[0].ID())
}

func TestJSONStore_DeleteMany(t *testing.T) {
	ctx := context.Background()
	favs := collection(t, newTestStore(t), Favorites)

	for _, pair := range [][2]string{{"u1", "c1"}, {"u1", "c2"}, {"u2", "c1"}} {
		_, err := favs.Create(ctx, Record{"userId": pair[0], "carId": pair[1]})
		require.NoError(t, err)
	}

	n, err := favs.DeleteMany(ctx, Filter{Eq("carId", "c1")})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = favs.DeleteMany(ctx, Filter{Eq("carId", "c1")})
	require.NoError(t, err)
	assert.Zero(t, n)

	left, err := favs.Count(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, left)
}

func TestJSONStore_CollectionsAreIndependent(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	car, err := collection(t, s, Cars).Create(ctx, Record{"marque": "Tesla"})
	require.NoError(t, err)
	_, err = collection(t, s, Favorites).Create(ctx, Record{"carId": car.ID(), "userId": "u1"})
	require.NoError(t, err)

	_, err = collection(t, s, Cars).DeleteByID(ctx, car.ID())
	require.NoError(t, err)

	n, err := collection(t, s, Favorites).Count(ctx, Filter{Eq("carId", car.ID())})
	require.NoError(t, err)
	assert.Equal(t, 1, n, "no cascade between collections")
}

// Mutations are serialized: concurrent patches of different fields on one
// record all survive, and concurrent creates are all kept.
func TestJSONStore_ConcurrentUpdatesAreSerialized(t *testing.T) {
	ctx := context.Background()
	cars := collection(t, newTestStore(t), Cars)

	rec, err := cars.Create(ctx, Record{"marque": "Peugeot"})
	require.NoError(t, err)

	const workers = 40
	var wg sync.WaitGroup
	errs := make(chan error, workers*2)
	for i := 0; i < workers; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_, err := cars.UpdateByID(ctx, rec.ID(), Patch{fmt.Sprintf("f%d", i): i}, UpdateOptions{ReturnUpdated: true})
			errs <- err
		}(i)
		go func(i int) {
			defer wg.Done()
			_, err := cars.Create(ctx, Record{"n": i})
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	got, err := cars.FindByID(ctx, rec.ID())
	require.NoError(t, err)
	for i := 0; i < workers; i++ {
		assert.EqualValues(t, i, got[fmt.Sprintf("f%d", i)], "update %d was lost", i)
	}

	n, err := cars.Count(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, workers+1, n)
}

func TestJSONStore_MalformedFileRecovery(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	cars := collection(t, s, Cars)

	require.NoError(t, os.WriteFile(s.Path(), []byte("{not json"), 0o644))

	found, err := cars.Find(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, found)

	snap, err := s.snapshot(ctx)
	require.NoError(t, err)
	assert.Len(t, snap, 4)
	for _, name := range Collections {
		assert.Empty(t, snap[name])
	}

	_, err = cars.Create(ctx, Record{"marque": "Renault"})
	require.NoError(t, err)

	moved, err := filepath.Glob(s.Path() + ".corrupt-*")
	require.NoError(t, err)
	require.Len(t, moved, 1)
	kept, err := os.ReadFile(moved[0])
	require.NoError(t, err)
	assert.Equal(t, "{not json", string(kept))

	n, err := cars.Count(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestJSONStore_WriteFailurePropagates(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("root ignores directory permissions")
	}
	ctx := context.Background()
	s := newTestStore(t)
	cars := collection(t, s, Cars)

	dir := filepath.Dir(s.Path())
	require.NoError(t, os.Chmod(dir, 0o500))
	t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })

	_, err := cars.Create(ctx, Record{"marque": "Skoda"})
	assert.Error(t, err)
}

func TestJSONStore_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := collection(t, newTestStore(t), Cars).Find(ctx, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestJSONStore_Import(t *testing.T) {
	ctx := context.Background()
	cars := collection(t, newTestStore(t), Cars)

	_, err := cars.Create(ctx, Record{"id": "a", "marque": "old"})
	require.NoError(t, err)

	imp := cars.(Importer)
	n, err := imp.Import(ctx, []Record{
		{"id": "a", "marque": "new", "createdAt": "2020-01-01T00:00:00.000Z"},
		{"id": "b", "marque": "other", "createdAt": "2020-01-02T00:00:00.000Z"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	a, err := cars.FindByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "new", a["marque"])
	assert.Equal(t, "2020-01-01T00:00:00.000Z", a[FieldCreatedAt])

	_, err = imp.Import(ctx, []Record{{"marque": "no id"}})
	assert.Error(t, err)
}
