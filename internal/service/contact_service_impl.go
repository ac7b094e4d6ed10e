package service

import (
	"context"
	"strings"
	"time"

	"github.com/webnova/backend/internal/model"
	"github.com/webnova/backend/internal/repository"
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo repository.ContactRepository
}

// NewContactService creates a ContactService backed by the given repository.
func NewContactService(repo repository.ContactRepository) ContactService {
	return &contactServiceImpl{repo: repo}
}

// now returns the current UTC time at millisecond precision, the resolution
// every backend stores.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

func (s *contactServiceImpl) Submit(ctx context.Context, in ContactInput) (*model.Contact, error) {
	c := &model.Contact{
		Name:    strings.TrimSpace(in.Name),
		Email:   NormalizeEmail(in.Email),
		Phone:   strings.TrimSpace(in.Phone),
		Service: strings.TrimSpace(in.Service),
		Message: strings.TrimSpace(in.Message),
	}
	if c.Name == "" || c.Email == "" || c.Service == "" || c.Message == "" {
		return nil, &ValidationError{Message: MsgContactFieldsRequired}
	}
	if !ValidEmail(c.Email) {
		return nil, &ValidationError{Message: MsgEmailInvalid}
	}

	c.Status = model.ContactStatusNew
	c.CreatedAt = now()
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *contactServiceImpl) List(ctx context.Context) ([]*model.Contact, error) {
	return s.repo.List(ctx)
}

func (s *contactServiceImpl) Get(ctx context.Context, id int64) (*model.Contact, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *contactServiceImpl) Update(ctx context.Context, id int64, patch model.ContactPatch) (*model.Contact, error) {
	patch.Status = strings.TrimSpace(patch.Status)
	patch.Notes = strings.TrimSpace(patch.Notes)
	return s.repo.Update(ctx, id, patch, now())
}

func (s *contactServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
