package domain

import "errors"

var (
	ErrEmptyContent     = errors.New("content must not be empty")
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrCacheUnavailable = errors.New("cache unavailable")
)
