package docstore

import (
	"sort"
)

const (
	RoleAdmin  = "ADMIN"
	RoleClient = "CLIENT"
	// RoleUser is a legacy spelling of RoleClient used by older callers.
	RoleUser = "USER"
)

// Term is the normalized field/value pair a predicate reduces to. SQL drivers
// translate terms into WHERE clauses.
type Term struct {
	Field string
	Value any
}

// Predicate is one condition of a Filter.
type Predicate interface {
	Match(r Record) bool
	Term() Term
}

// Filter selects records matching every predicate. An empty filter matches
// everything.
type Filter []Predicate

func (f Filter) Match(r Record) bool {
	for _, p := range f {
		if !p.Match(r) {
			return false
		}
	}
	return true
}

func (f Filter) Terms() []Term {
	terms := make([]Term, 0, len(f))
	for _, p := range f {
		terms = append(terms, p.Term())
	}
	return terms
}

type eqPredicate struct {
	field string
	value any
}

// Eq matches records whose field strictly equals value. Numbers compare by
// value regardless of their Go type.
func Eq(field string, value any) Predicate {
	return eqPredicate{field: field, value: value}
}

func (p eqPredicate) Match(r Record) bool {
	v, ok := r[p.field]
	if !ok {
		return false
	}
	return equalValues(v, p.value)
}

func (p eqPredicate) Term() Term {
	return Term{Field: p.field, Value: p.value}
}

type idPredicate struct {
	value any
}

// ByID matches on the id field with tolerant equality: 123 and "123" are the
// same id.
func ByID(id any) Predicate {
	return idPredicate{value: id}
}

func (p idPredicate) Match(r Record) bool {
	stored, ok := r[FieldID]
	if !ok {
		return false
	}
	return MatchID(stored, p.value)
}

func (p idPredicate) Term() Term {
	s, _ := stringify(p.value)
	return Term{Field: FieldID, Value: s}
}

// MatchID reports whether two id values are equal either directly or after
// conversion to their string form.
func MatchID(stored, want any) bool {
	if equalValues(stored, want) {
		return true
	}
	a, okA := stringify(stored)
	b, okB := stringify(want)
	return okA && okB && a == b
}

type rolePredicate struct {
	role string
}

// ByRole matches on the role field. Asking for RoleUser selects records stored
// as RoleClient and never records literally stored as RoleUser.
func ByRole(role string) Predicate {
	return rolePredicate{role: role}
}

// EffectiveRole applies the legacy USER -> CLIENT alias.
func EffectiveRole(role string) string {
	if role == RoleUser {
		return RoleClient
	}
	return role
}

func (p rolePredicate) Match(r Record) bool {
	v, ok := r[FieldRole]
	if !ok {
		return false
	}
	return equalValues(v, EffectiveRole(p.role))
}

func (p rolePredicate) Term() Term {
	return Term{Field: FieldRole, Value: EffectiveRole(p.role)}
}

// Where builds a filter from a flat field -> value mapping with the same
// special cases the store has always applied: "id" uses ByID and a string
// "role" uses ByRole. Predicates are ordered by field name.
func Where(m map[string]any) Filter {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f := make(Filter, 0, len(keys))
	for _, k := range keys {
		v := m[k]
		switch {
		case k == FieldID:
			f = append(f, ByID(v))
		case k == FieldRole:
			if role, ok := v.(string); ok {
				f = append(f, ByRole(role))
				continue
			}
			f = append(f, Eq(k, v))
		default:
			f = append(f, Eq(k, v))
		}
	}
	return f
}
