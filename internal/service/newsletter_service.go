package service

import (
	"context"
	"errors"

	"github.com/webnova/backend/internal/model"
)

// ErrAlreadySubscribed is returned when the email is already on the list.
var ErrAlreadySubscribed = errors.New("already subscribed")

// NewsletterService defines the business logic for newsletter sign-ups.
type NewsletterService interface {
	// Subscribe validates and normalizes email and appends a subscriber.
	// It returns a *ValidationError for bad input and ErrAlreadySubscribed
	// when the address (case-insensitive) is already subscribed.
	Subscribe(ctx context.Context, email string) (*model.Subscriber, error)

	List(ctx context.Context) ([]*model.Subscriber, error)
}
