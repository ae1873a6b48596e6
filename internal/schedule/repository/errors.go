package repository

import "errors"

var (
	ErrFailedToLoad    = errors.New("failed to load schedule store")
	ErrFailedToPersist = errors.New("failed to persist schedule store")
)
