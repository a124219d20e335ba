package sqlite

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"starauto/internal/docstore"
)

var testNow = time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)

func newMockStorage(t *testing.T) (*Storage, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	s := NewFromDB(db, slog.Default())
	s.now = func() time.Time { return testNow }
	return s, mock
}

func cars(t *testing.T, s *Storage) docstore.Collection {
	t.Helper()
	c, err := s.Collection(docstore.Cars)
	require.NoError(t, err)
	return c
}

func q(sql string) string {
	return regexp.QuoteMeta(sql)
}

func TestWhereClause(t *testing.T) {
	tests := []struct {
		name   string
		filter docstore.Filter
		where  string
		args   []any
	}{
		{
			name:  "empty",
			where: "collection = ?",
			args:  []any{"cars"},
		},
		{
			name:   "tolerant id",
			filter: docstore.Filter{docstore.ByID(42)},
			where:  "collection = ? AND id = ?",
			args:   []any{"cars", "42"},
		},
		{
			name:   "bool",
			filter: docstore.Filter{docstore.Eq("disponibilite", true)},
			where:  "collection = ? AND json_type(body, ?) = ?",
			args:   []any{"cars", `$."disponibilite"`, "true"},
		},
		{
			name:   "null",
			filter: docstore.Filter{docstore.Eq("couleur", nil)},
			where:  "collection = ? AND json_type(body, ?) = 'null'",
			args:   []any{"cars", `$."couleur"`},
		},
		{
			name:   "number",
			filter: docstore.Filter{docstore.Eq("annee", 2020)},
			where:  "collection = ? AND json_type(body, ?) IN ('integer', 'real') AND json_extract(body, ?) = ?",
			args:   []any{"cars", `$."annee"`, `$."annee"`, 2020},
		},
		{
			name:   "composite",
			filter: docstore.Filter{docstore.Eq("images", []any{})},
			where:  "collection = ? AND 0",
			args:   []any{"cars"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := whereClause("cars", tt.filter)
			assert.Equal(t, tt.where, where)
			assert.Equal(t, tt.args, args)
		})
	}
}

func TestJSONPath(t *testing.T) {
	assert.Equal(t, `$."a.b"`, jsonPath("a.b"))
	assert.Equal(t, `$."x\"y"`, jsonPath(`x"y`))
}

func TestCollection_Find(t *testing.T) {
	s, mock := newMockStorage(t)

	mock.ExpectQuery(q("SELECT body FROM documents WHERE collection = ? AND json_type(body, ?) = 'text' AND json_extract(body, ?) = ? ORDER BY seq")).
		WithArgs("cars", `$."marque"`, `$."marque"`, "BMW").
		WillReturnRows(sqlmock.NewRows([]string{"body"}).
			AddRow(`{"id":"1","marque":"BMW"}`).
			AddRow(`{"id":"2","marque":"BMW"}`))

	got, err := cars(t, s).Find(context.Background(), docstore.Filter{docstore.Eq("marque", "BMW")})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID())
	assert.Equal(t, "2", got[1].ID())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCollection_FindByID_NotFound(t *testing.T) {
	s, mock := newMockStorage(t)

	mock.ExpectQuery(q("SELECT body FROM documents WHERE collection = ? AND id = ? ORDER BY seq LIMIT 1")).
		WithArgs("cars", "404").
		WillReturnRows(sqlmock.NewRows([]string{"body"}))

	got, err := cars(t, s).FindByID(context.Background(), 404)
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCollection_Create(t *testing.T) {
	s, mock := newMockStorage(t)
	insert := q("INSERT INTO documents (collection, id, body) VALUES (?, ?, ?) ON CONFLICT (collection, id) DO NOTHING")

	ids := []string{"dup", "fresh"}
	s.newID = func(time.Time) string {
		id := ids[0]
		ids = ids[1:]
		return id
	}

	mock.ExpectExec(insert).WithArgs("cars", "dup", sqlmock.AnyArg()).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(insert).WithArgs("cars", "fresh", sqlmock.AnyArg()).WillReturnResult(sqlmock.NewResult(1, 1))

	rec, err := cars(t, s).Create(context.Background(), docstore.Record{"marque": "Audi"})
	require.NoError(t, err)
	assert.Equal(t, "fresh", rec.ID())
	assert.Equal(t, docstore.FormatTime(testNow), rec[docstore.FieldCreatedAt])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCollection_Create_CallerIDConflict(t *testing.T) {
	s, mock := newMockStorage(t)

	mock.ExpectExec(q("INSERT INTO documents")).
		WithArgs("cars", "7", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := cars(t, s).Create(context.Background(), docstore.Record{"id": 7})
	assert.ErrorIs(t, err, docstore.ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCollection_UpdateByID(t *testing.T) {
	s, mock := newMockStorage(t)

	mock.ExpectBegin()
	mock.ExpectQuery(q("SELECT seq, body FROM documents WHERE collection = ? AND id = ? ORDER BY seq LIMIT 1")).
		WithArgs("cars", "1").
		WillReturnRows(sqlmock.NewRows([]string{"seq", "body"}).
			AddRow(int64(7), `{"id":"1","prix":100,"createdAt":"2024-01-01T00:00:00.000Z"}`))
	mock.ExpectExec(q("UPDATE documents SET body = ? WHERE seq = ?")).
		WithArgs(sqlmock.AnyArg(), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	got, err := cars(t, s).UpdateByID(context.Background(), "1",
		docstore.Patch{"prix": 90, "id": "hijack"}, docstore.UpdateOptions{})
	require.NoError(t, err)
	assert.Equal(t, "1", got.ID())
	assert.Equal(t, 90, got["prix"])
	assert.Equal(t, "2024-01-01T00:00:00.000Z", got[docstore.FieldCreatedAt])
	assert.Equal(t, docstore.FormatTime(testNow), got[docstore.FieldUpdatedAt])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCollection_UpdateByID_NotFound(t *testing.T) {
	s, mock := newMockStorage(t)

	mock.ExpectBegin()
	mock.ExpectQuery(q("SELECT seq, body FROM documents")).
		WithArgs("cars", "1").
		WillReturnRows(sqlmock.NewRows([]string{"seq", "body"}))
	mock.ExpectRollback()

	got, err := cars(t, s).UpdateByID(context.Background(), "1", docstore.Patch{"prix": 1}, docstore.UpdateOptions{ReturnUpdated: true})
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCollection_DeleteByID(t *testing.T) {
	s, mock := newMockStorage(t)

	mock.ExpectBegin()
	mock.ExpectQuery(q("SELECT seq, body FROM documents")).
		WithArgs("cars", "1").
		WillReturnRows(sqlmock.NewRows([]string{"seq", "body"}).AddRow(int64(3), `{"id":"1"}`))
	mock.ExpectExec(q("DELETE FROM documents WHERE seq = ?")).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	got, err := cars(t, s).DeleteByID(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "1", got.ID())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCollection_DeleteMany(t *testing.T) {
	s, mock := newMockStorage(t)
	users, err := s.Collection(docstore.Users)
	require.NoError(t, err)

	mock.ExpectExec(q("DELETE FROM documents WHERE collection = ? AND json_type(body, ?) = 'text' AND json_extract(body, ?) = ?")).
		WithArgs("users", `$."role"`, `$."role"`, docstore.RoleClient).
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := users.DeleteMany(context.Background(), docstore.Filter{docstore.ByRole(docstore.RoleUser)})
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCollection_Import(t *testing.T) {
	s, mock := newMockStorage(t)
	upsert := q("INSERT INTO documents (collection, id, body) VALUES (?, ?, ?) ON CONFLICT (collection, id) DO UPDATE SET body = excluded.body")

	mock.ExpectBegin()
	mock.ExpectExec(upsert).WithArgs("cars", "a", `{"id":"a"}`).WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(upsert).WithArgs("cars", "5", `{"id":"5"}`).WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	importer, ok := cars(t, s).(docstore.Importer)
	require.True(t, ok)

	n, err := importer.Import(context.Background(), []docstore.Record{{"id": "a"}, {"id": 5}})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
