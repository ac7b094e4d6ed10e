package repository

import (
	"context"
	"time"

	"github.com/webnova/backend/internal/model"
	"github.com/webnova/backend/internal/storage"
)

// JSONContactRepository is the JSON document implementation of ContactRepository.
type JSONContactRepository struct {
	doc *storage.Document[model.Contact]
}

// NewJSONContactRepository creates a JSONContactRepository backed by doc.
func NewJSONContactRepository(doc *storage.Document[model.Contact]) *JSONContactRepository {
	return &JSONContactRepository{doc: doc}
}

// Ensure JSONContactRepository implements ContactRepository at compile time.
var _ ContactRepository = (*JSONContactRepository)(nil)

func (r *JSONContactRepository) Create(ctx context.Context, c *model.Contact) error {
	return r.doc.Mutate(ctx, func(contacts []model.Contact) ([]model.Contact, error) {
		var floor int64
		for _, existing := range contacts {
			floor = max(floor, existing.ID)
		}
		c.ID = nextID(time.Now(), floor)
		return append(contacts, *c), nil
	})
}

func (r *JSONContactRepository) List(ctx context.Context) ([]*model.Contact, error) {
	contacts, err := r.doc.Load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*model.Contact, len(contacts))
	for i := range contacts {
		out[i] = &contacts[i]
	}
	return out, nil
}

func (r *JSONContactRepository) FindByID(ctx context.Context, id int64) (*model.Contact, error) {
	contacts, err := r.doc.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range contacts {
		if contacts[i].ID == id {
			return &contacts[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *JSONContactRepository) Update(ctx context.Context, id int64, patch model.ContactPatch, at time.Time) (*model.Contact, error) {
	var updated model.Contact
	err := r.doc.Mutate(ctx, func(contacts []model.Contact) ([]model.Contact, error) {
		for i := range contacts {
			if contacts[i].ID == id {
				patch.Apply(&contacts[i], at)
				updated = contacts[i]
				return contacts, nil
			}
		}
		return nil, ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *JSONContactRepository) Delete(ctx context.Context, id int64) error {
	return r.doc.Mutate(ctx, func(contacts []model.Contact) ([]model.Contact, error) {
		kept := contacts[:0]
		for _, c := range contacts {
			if c.ID != id {
				kept = append(kept, c)
			}
		}
		if len(kept) == len(contacts) {
			return nil, ErrNotFound
		}
		return kept, nil
	})
}
