package docstore

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEq_Match(t *testing.T) {
	rec := Record{"marque": "BMW", "annee": float64(2023), "disponibilite": true, "images": []any{"a"}}

	tests := []struct {
		name  string
		pred  Predicate
		match bool
	}{
		{name: "string equal", pred: Eq("marque", "BMW"), match: true},
		{name: "string differs", pred: Eq("marque", "bmw"), match: false},
		{name: "int against stored float", pred: Eq("annee", 2023), match: true},
		{name: "json number", pred: Eq("annee", json.Number("2023")), match: true},
		{name: "number against string", pred: Eq("annee", "2023"), match: false},
		{name: "bool", pred: Eq("disponibilite", true), match: true},
		{name: "missing field", pred: Eq("couleur", nil), match: false},
		{name: "composite never equal", pred: Eq("images", []any{"a"}), match: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.match, tt.pred.Match(rec))
		})
	}
}

func TestByID_Tolerant(t *testing.T) {
	tests := []struct {
		name   string
		stored any
		want   any
		match  bool
	}{
		{name: "string/string", stored: "123", want: "123", match: true},
		{name: "string/int", stored: "123", want: 123, match: true},
		{name: "float/string", stored: float64(123), want: "123", match: true},
		{name: "legacy id", stored: "1717171717171abcdefghi", want: "1717171717171abcdefghi", match: true},
		{name: "different", stored: "123", want: "124", match: false},
		{name: "nil want", stored: "123", want: nil, match: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.match, ByID(tt.want).Match(Record{"id": tt.stored}))
		})
	}

	assert.False(t, ByID("1").Match(Record{"marque": "x"}))
	assert.Equal(t, Term{Field: FieldID, Value: "42"}, ByID(42).Term())
}

func TestByRole_Alias(t *testing.T) {
	assert.True(t, ByRole(RoleUser).Match(Record{"role": RoleClient}))
	assert.False(t, ByRole(RoleUser).Match(Record{"role": RoleUser}))
	assert.True(t, ByRole(RoleAdmin).Match(Record{"role": RoleAdmin}))
	assert.True(t, ByRole(RoleClient).Match(Record{"role": RoleClient}))
	assert.Equal(t, Term{Field: FieldRole, Value: RoleClient}, ByRole(RoleUser).Term())
}

func TestWhere(t *testing.T) {
	f := Where(map[string]any{"role": "USER", "id": 7, "lu": false})

	assert.Equal(t, Filter{ByID(7), Eq("lu", false), ByRole("USER")}, f)
	assert.True(t, f.Match(Record{"id": "7", "lu": false, "role": RoleClient}))
	assert.False(t, f.Match(Record{"id": "7", "lu": true, "role": RoleClient}))

	nonString := Where(map[string]any{"role": 1})
	assert.Equal(t, Filter{Eq("role", 1)}, nonString)

	assert.True(t, Where(nil).Match(Record{"anything": 1}))
}

func TestFilter_Terms(t *testing.T) {
	f := Filter{ByID(1), ByRole(RoleUser), Eq("annee", 2020)}

	assert.Equal(t, []Term{
		{Field: "id", Value: "1"},
		{Field: "role", Value: "CLIENT"},
		{Field: "annee", Value: 2020},
	}, f.Terms())
}
