package contact

import (
	"context"
	"testing"

	"eventagency/internal/domain"
	"eventagency/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) Create(ctx context.Context, msg *domain.ContactMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockContactRepository) GetByID(ctx context.Context, id int64) (*domain.ContactMessage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContactMessage), args.Error(1)
}

func (m *MockContactRepository) List(ctx context.Context, status string) ([]domain.ContactMessage, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ContactMessage), args.Error(1)
}

func (m *MockContactRepository) UpdateStatus(ctx context.Context, id int64, status domain.ContactStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockContactRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestSubmit_ForcesNewStatus(t *testing.T) {
	mockMessages := new(MockContactRepository)
	mockMessages.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockMessages)

	msg := &domain.ContactMessage{
		Name:    "Olga",
		Email:   "olga@mail.test",
		Message: "Hello",
		Status:  domain.ContactArchived, // ignored
	}
	assert.NoError(t, service.Submit(context.Background(), msg))
	assert.Equal(t, domain.ContactNew, msg.Status)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	mockMessages := new(MockContactRepository)
	mockMessages.On("UpdateStatus", mock.Anything, int64(3), domain.ContactRead).Return(repository.ErrNotFound)

	service := NewService(mockMessages)

	err := service.UpdateStatus(context.Background(), 3, domain.ContactRead)

	assert.ErrorIs(t, err, ErrNotFound)
}
