package car

import "errors"

var (
	ErrNotFound     = errors.New("car not found")
	ErrInvalidInput = errors.New("invalid input")
)
