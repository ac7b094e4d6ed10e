// Package storage persists record collections as whole JSON documents on
// the local filesystem.
package storage

import "errors"

// ErrCorrupt is returned when a document exists but does not decode as a
// JSON array. A missing document is not corrupt; it reads as empty.
var ErrCorrupt = errors.New("storage: corrupt document")
