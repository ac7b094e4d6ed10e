package repository

import (
	"context"
	"strings"
	"time"

	"github.com/webnova/backend/internal/model"
	"github.com/webnova/backend/internal/storage"
)

// JSONSubscriberRepository is the JSON document implementation of SubscriberRepository.
type JSONSubscriberRepository struct {
	doc *storage.Document[model.Subscriber]
}

// NewJSONSubscriberRepository creates a JSONSubscriberRepository backed by doc.
func NewJSONSubscriberRepository(doc *storage.Document[model.Subscriber]) *JSONSubscriberRepository {
	return &JSONSubscriberRepository{doc: doc}
}

var _ SubscriberRepository = (*JSONSubscriberRepository)(nil)

// Create appends s unless an existing subscriber has the same email,
// compared case-insensitively. The check and the append happen under the
// same document lock.
func (r *JSONSubscriberRepository) Create(ctx context.Context, s *model.Subscriber) error {
	return r.doc.Mutate(ctx, func(subs []model.Subscriber) ([]model.Subscriber, error) {
		var floor int64
		for _, existing := range subs {
			if strings.EqualFold(strings.TrimSpace(existing.Email), s.Email) {
				return nil, ErrDuplicate
			}
			floor = max(floor, existing.ID)
		}
		s.ID = nextID(time.Now(), floor)
		return append(subs, *s), nil
	})
}

func (r *JSONSubscriberRepository) List(ctx context.Context) ([]*model.Subscriber, error) {
	subs, err := r.doc.Load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*model.Subscriber, len(subs))
	for i := range subs {
		out[i] = &subs[i]
	}
	return out, nil
}
