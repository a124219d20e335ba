// Package document implements the domain repositories on top of docstore
// collections, so they work on every backend the factory can select.
package document

import (
	"fmt"

	"starauto/internal/docstore"
)

func decodeOne[T any](rec docstore.Record, err error) (*T, error) {
	if err != nil || rec == nil {
		return nil, err
	}
	var v T
	if err := docstore.Decode(rec, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func decodeNew[T any](rec docstore.Record, err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	v, err := decodeOne[T](rec, nil)
	if err != nil {
		return zero, err
	}
	if v == nil {
		return zero, fmt.Errorf("store returned no record")
	}
	return *v, nil
}

var returnUpdated = docstore.UpdateOptions{ReturnUpdated: true}
