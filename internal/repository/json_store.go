package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/webnova/backend/internal/model"
	"github.com/webnova/backend/internal/storage"
)

// Document file names inside the data directory.
const (
	ContactsFile   = "contacts.json"
	NewsletterFile = "newsletter.json"
)

// JSONStore keeps contacts and subscribers as two JSON array documents in
// one directory.
type JSONStore struct {
	dir         string
	Contacts    *JSONContactRepository
	Subscribers *JSONSubscriberRepository
}

// OpenJSONStore opens (and on first use creates) both documents under dir.
func OpenJSONStore(dir string) (*JSONStore, error) {
	contacts, err := storage.OpenDocument[model.Contact](filepath.Join(dir, ContactsFile))
	if err != nil {
		return nil, fmt.Errorf("open contacts document: %w", err)
	}
	subscribers, err := storage.OpenDocument[model.Subscriber](filepath.Join(dir, NewsletterFile))
	if err != nil {
		return nil, fmt.Errorf("open newsletter document: %w", err)
	}
	return &JSONStore{
		dir:         dir,
		Contacts:    NewJSONContactRepository(contacts),
		Subscribers: NewJSONSubscriberRepository(subscribers),
	}, nil
}

// Ping reports whether the data directory is still reachable.
func (s *JSONStore) Ping(_ context.Context) error {
	info, err := os.Stat(s.dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", s.dir)
	}
	return nil
}
