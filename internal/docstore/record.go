package docstore

import (
	"encoding/json"
	"math"
	"strconv"
	"time"
)

const (
	FieldID        = "id"
	FieldCreatedAt = "createdAt"
	FieldUpdatedAt = "updatedAt"
	FieldRole      = "role"
)

// TimeLayout is the ISO-8601 form stored in createdAt/updatedAt
// (millisecond precision, UTC, "Z" suffix).
const TimeLayout = "2006-01-02T15:04:05.000Z07:00"

// Record is a single stored document.
type Record map[string]any

// Patch is merged shallowly over an existing record on update.
type Patch map[string]any

// ID returns the record id as a string, or "" when it is absent.
func (r Record) ID() string {
	s, _ := stringify(r[FieldID])
	return s
}

// String returns a string field or "".
func (r Record) String(field string) string {
	s, _ := r[field].(string)
	return s
}

// Clone returns a deep copy of nested maps and slices.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case Record:
		return t.Clone()
	case map[string]any:
		m := make(map[string]any, len(t))
		for k, x := range t {
			m[k] = cloneValue(x)
		}
		return m
	case []any:
		s := make([]any, len(t))
		for i, x := range t {
			s[i] = cloneValue(x)
		}
		return s
	case []string:
		return append([]string(nil), t...)
	default:
		return v
	}
}

// FormatTime renders t the way timestamps are persisted.
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// PrepareCreate copies fields into a new record, assigns an id when the caller
// did not supply one and stamps both timestamps. generated reports whether the
// id came from gen.
func PrepareCreate(fields Record, now time.Time, gen IDGenerator) (rec Record, generated bool) {
	rec = fields.Clone()
	if rec == nil {
		rec = Record{}
	}

	if id, ok := stringify(rec[FieldID]); ok && id != "" {
		rec[FieldID] = id
	} else {
		rec[FieldID] = gen(now)
		generated = true
	}

	ts := FormatTime(now)
	rec[FieldCreatedAt] = ts
	rec[FieldUpdatedAt] = ts

	return rec, generated
}

// PreparePatch drops immutable fields from p and stamps updatedAt.
func PreparePatch(p Patch, now time.Time) Patch {
	out := make(Patch, len(p)+1)
	for k, v := range p {
		if k == FieldID || k == FieldCreatedAt {
			continue
		}
		out[k] = cloneValue(v)
	}
	out[FieldUpdatedAt] = FormatTime(now)
	return out
}

// Merge returns base with every patch field replacing the same-named one.
func Merge(base Record, p Patch) Record {
	out := base.Clone()
	if out == nil {
		out = Record{}
	}
	for k, v := range p {
		out[k] = v
	}
	return out
}

// stringify renders scalar values the way a JavaScript toString would.
// Composite and nil values report ok=false.
func stringify(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case bool:
		return strconv.FormatBool(t), true
	case json.Number:
		return t.String(), true
	}

	if f, ok := toFloat(v); ok {
		if math.Trunc(f) == f && math.Abs(f) < 1e21 {
			return strconv.FormatFloat(f, 'f', -1, 64), true
		}
		return strconv.FormatFloat(f, 'g', -1, 64), true
	}

	return "", false
}

func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int8:
		return float64(t), true
	case int16:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case uint:
		return float64(t), true
	case uint8:
		return float64(t), true
	case uint16:
		return float64(t), true
	case uint32:
		return float64(t), true
	case uint64:
		return float64(t), true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	}
	return 0, false
}

// equalValues is strict scalar equality with all numeric types compared as
// float64. Maps and slices never compare equal.
func equalValues(a, b any) bool {
	if fa, ok := toFloat(a); ok {
		fb, ok := toFloat(b)
		return ok && fa == fb
	}

	switch ta := a.(type) {
	case nil:
		return b == nil
	case string:
		tb, ok := b.(string)
		return ok && ta == tb
	case bool:
		tb, ok := b.(bool)
		return ok && ta == tb
	}

	return false
}

// Scalar reports whether v is a value equality filters can match: nil, a
// string, a bool or a number.
func Scalar(v any) bool {
	switch v.(type) {
	case nil, string, bool:
		return true
	}
	_, ok := toFloat(v)
	return ok
}
