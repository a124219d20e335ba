package docstore

import "errors"

var (
	ErrConflict          = errors.New("record id already exists")
	ErrCorruptStore      = errors.New("store file is corrupt")
	ErrUnknownCollection = errors.New("unknown collection")
)
