package repository

import (
	"errors"

	"github.com/webnova/backend/internal/storage"
)

// ErrNotFound is returned when a requested record does not exist in the store.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when a write would violate a uniqueness rule,
// such as a second subscriber with the same email address.
var ErrDuplicate = errors.New("duplicate record")

// ErrCorrupt is returned when a stored document exists but cannot be decoded.
var ErrCorrupt = storage.ErrCorrupt
