package favorite

import "errors"

var (
	ErrCarNotFound     = errors.New("car not found")
	ErrAlreadyFavorite = errors.New("car already in favorites")
	ErrNotFavorite     = errors.New("car not in favorites")
)
