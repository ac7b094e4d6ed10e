package service

import (
	"context"

	"github.com/webnova/backend/internal/model"
)

// ContactInput is a contact form submission as received from the client.
type ContactInput struct {
	Name    string
	Email   string
	Phone   string
	Service string
	Message string
}

// ContactService defines the business logic for contact form submissions.
type ContactService interface {
	// Submit validates and normalizes in, then stores it as a new contact
	// with status "new". Invalid input yields a *ValidationError.
	Submit(ctx context.Context, in ContactInput) (*model.Contact, error)

	// List returns every contact in submission order.
	List(ctx context.Context) ([]*model.Contact, error)

	Get(ctx context.Context, id int64) (*model.Contact, error)

	// Update merges the non-blank fields of patch and stamps updatedAt.
	Update(ctx context.Context, id int64, patch model.ContactPatch) (*model.Contact, error)

	Delete(ctx context.Context, id int64) error
}
