package repository

import (
	"context"
	"time"

	"github.com/webnova/backend/internal/model"
)

// DB reports whether the backing store is reachable.
type DB interface {
	Ping(ctx context.Context) error
}

// ContactRepository is the persistence interface for contact messages.
// It is defined here (in repository) to avoid an import cycle with service.
type ContactRepository interface {
	// Create assigns c.ID and persists c.
	Create(ctx context.Context, c *model.Contact) error
	// List returns every contact in insertion order.
	List(ctx context.Context) ([]*model.Contact, error)
	FindByID(ctx context.Context, id int64) (*model.Contact, error)
	// Update merges patch into the stored contact and returns the result.
	Update(ctx context.Context, id int64, patch model.ContactPatch, at time.Time) (*model.Contact, error)
	Delete(ctx context.Context, id int64) error
}

// SubscriberRepository is the persistence interface for newsletter subscribers.
type SubscriberRepository interface {
	// Create assigns s.ID and persists s. It returns ErrDuplicate when a
	// subscriber with the same email (case-insensitive) already exists.
	Create(ctx context.Context, s *model.Subscriber) error
	List(ctx context.Context) ([]*model.Subscriber, error)
}
