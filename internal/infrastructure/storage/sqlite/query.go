package sqlite

import (
	"encoding/json"
	"fmt"
	"strings"

	"starauto/internal/docstore"
)

// jsonPath quotes field as a single JSON1 path step.
func jsonPath(field string) string {
	return `$."` + strings.ReplaceAll(field, `"`, `\"`) + `"`
}

// whereClause translates f into a condition over the documents table. The
// collection name is always the first argument.
func whereClause(collection string, f docstore.Filter) (string, []any) {
	conds := []string{"collection = ?"}
	args := []any{collection}

	for _, term := range f.Terms() {
		if term.Field == docstore.FieldID {
			conds = append(conds, "id = ?")
			args = append(args, term.Value)
			continue
		}

		path := jsonPath(term.Field)
		switch v := term.Value.(type) {
		case nil:
			conds = append(conds, "json_type(body, ?) = 'null'")
			args = append(args, path)
		case bool:
			conds = append(conds, "json_type(body, ?) = ?")
			args = append(args, path, fmt.Sprint(v))
		case string:
			conds = append(conds, "json_type(body, ?) = 'text' AND json_extract(body, ?) = ?")
			args = append(args, path, path, v)
		default:
			if !docstore.Scalar(v) {
				conds = append(conds, "0")
				continue
			}
			conds = append(conds, "json_type(body, ?) IN ('integer', 'real') AND json_extract(body, ?) = ?")
			args = append(args, path, path, v)
		}
	}

	return strings.Join(conds, " AND "), args
}

func encode(r any) (string, error) {
	b, err := json.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("encode document: %w", err)
	}
	return string(b), nil
}

func decode(body string) (docstore.Record, error) {
	var r docstore.Record
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return r, nil
}
