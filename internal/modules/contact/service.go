package contact

import (
	"context"
	"errors"

	"eventagency/internal/domain"
	"eventagency/internal/repository"
)

var ErrNotFound = errors.New("message not found")

type ContactRepository interface {
	Create(ctx context.Context, msg *domain.ContactMessage) error
	GetByID(ctx context.Context, id int64) (*domain.ContactMessage, error)
	List(ctx context.Context, status string) ([]domain.ContactMessage, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ContactStatus) error
	Delete(ctx context.Context, id int64) error
}

type Service struct {
	messages ContactRepository
}

func NewService(messages ContactRepository) *Service {
	return &Service{messages: messages}
}

// Submit stores a new message from the public form. Status always starts
// at new regardless of the payload.
func (s *Service) Submit(ctx context.Context, msg *domain.ContactMessage) error {
	msg.Status = domain.ContactNew
	return s.messages.Create(ctx, msg)
}

func (s *Service) List(ctx context.Context, status string) ([]domain.ContactMessage, error) {
	return s.messages.List(ctx, status)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.ContactMessage, error) {
	msg, err := s.messages.GetByID(ctx, id)
	return msg, notFound(err)
}

func (s *Service) UpdateStatus(ctx context.Context, id int64, status domain.ContactStatus) error {
	return notFound(s.messages.UpdateStatus(ctx, id, status))
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return notFound(s.messages.Delete(ctx, id))
}

func notFound(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
