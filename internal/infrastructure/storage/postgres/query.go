package postgres

import (
	"encoding/json"
	"fmt"
	"strings"

	"starauto/internal/docstore"
)

// whereClause translates f into a condition over the documents table. The
// collection name is always the first argument.
func whereClause(collection string, f docstore.Filter) (string, []any, error) {
	conds := []string{"collection = $1"}
	args := []any{collection}

	for _, term := range f.Terms() {
		if term.Field == docstore.FieldID {
			args = append(args, term.Value)
			conds = append(conds, fmt.Sprintf("id = $%d", len(args)))
			continue
		}
		if !docstore.Scalar(term.Value) {
			conds = append(conds, "FALSE")
			continue
		}

		doc, err := json.Marshal(map[string]any{term.Field: term.Value})
		if err != nil {
			return "", nil, fmt.Errorf("encode filter on %s: %w", term.Field, err)
		}
		args = append(args, string(doc))
		conds = append(conds, fmt.Sprintf("body @> $%d::jsonb", len(args)))
	}

	return strings.Join(conds, " AND "), args, nil
}

// firstMatch selects the id of the earliest inserted document matching where.
func firstMatch(where string) string {
	return "SELECT id FROM documents WHERE " + where + " ORDER BY seq LIMIT 1"
}

func decode(body []byte) (docstore.Record, error) {
	var r docstore.Record
	if err := json.Unmarshal(body, &r); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return r, nil
}
