package service

import (
	"context"
	"errors"

	"github.com/webnova/backend/internal/model"
	"github.com/webnova/backend/internal/repository"
)

type newsletterServiceImpl struct {
	repo repository.SubscriberRepository
}

// NewNewsletterService creates a NewsletterService backed by the given repository.
func NewNewsletterService(repo repository.SubscriberRepository) NewsletterService {
	return &newsletterServiceImpl{repo: repo}
}

func (s *newsletterServiceImpl) Subscribe(ctx context.Context, email string) (*model.Subscriber, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return nil, &ValidationError{Message: MsgEmailRequired}
	}
	if !ValidEmail(email) {
		return nil, &ValidationError{Message: MsgEmailInvalid}
	}

	sub := &model.Subscriber{Email: email, SubscribedAt: now()}
	if err := s.repo.Create(ctx, sub); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAlreadySubscribed
		}
		return nil, err
	}
	return sub, nil
}

func (s *newsletterServiceImpl) List(ctx context.Context) ([]*model.Subscriber, error) {
	return s.repo.List(ctx)
}
