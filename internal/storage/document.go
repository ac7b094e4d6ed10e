package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// Document is a JSON array of T stored as a single file. Every write
// re-serializes the whole collection. A mutex covers each read-modify-write
// cycle so two mutations of the same document never interleave.
type Document[T any] struct {
	path string
	mu   sync.Mutex
}

// OpenDocument returns the document at path, creating its directory and
// initializing the file to an empty array when it does not exist yet.
func OpenDocument[T any](path string) (*Document[T], error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("storage: mkdir: %w", err)
	}

	d := &Document[T]{path: path}
	_, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err := d.saveAll([]T{}); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, fmt.Errorf("storage: stat: %w", err)
	}
	return d, nil
}

// Path returns the file backing the document.
func (d *Document[T]) Path() string { return d.path }

// Load returns every record in the document, in stored order.
func (d *Document[T]) Load(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.loadAll()
}

// Mutate passes the current records to fn and, if fn succeeds, writes the
// returned slice back as the new document. When fn returns an error nothing
// is written and that error is returned unchanged.
func (d *Document[T]) Mutate(ctx context.Context, fn func(records []T) ([]T, error)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	records, err := d.loadAll()
	if err != nil {
		return err
	}
	records, err = fn(records)
	if err != nil {
		return err
	}
	return d.saveAll(records)
}

func (d *Document[T]) loadAll() ([]T, error) {
	data, err := os.ReadFile(d.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: read: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return []T{}, nil
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, d.path, err)
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

// saveAll writes records to a temp file next to the document and renames it
// into place, so a reader sees either the old or the new document.
func (d *Document[T]) saveAll(records []T) error {
	if records == nil {
		records = []T{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("storage: encode: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(d.path), "."+filepath.Base(d.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("storage: create: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("storage: write: %w", err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("storage: chmod: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: close: %w", err)
	}
	if err := os.Rename(tmpName, d.path); err != nil {
		return fmt.Errorf("storage: rename: %w", err)
	}
	return nil
}
