package repository

import "errors"

// ErrKeyNotFound is returned when a key has never been saved.
var ErrKeyNotFound = errors.New("key not found")
