package auth

import (
	"context"
	"testing"
	"time"

	"eventagency/internal/domain"
	jwtsvc "eventagency/internal/pkg/jwt"
	"eventagency/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.AdminUser, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdminUser), args.Error(1)
}

func testAdmin(t *testing.T, password string) *domain.AdminUser {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return &domain.AdminUser{
		ID:           1,
		Email:        "admin@agency.local",
		PasswordHash: string(hash),
		Name:         "Administrator",
	}
}

func TestLogin_Success(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockUsers.On("GetByEmail", mock.Anything, "admin@agency.local").Return(testAdmin(t, "admin123"), nil)

	service := NewService(mockUsers, jwtsvc.New("test-secret", time.Hour))

	token, user, err := service.Login(context.Background(), "admin@agency.local", "admin123")

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "admin@agency.local", user.Email)
}

func TestLogin_WrongPassword(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockUsers.On("GetByEmail", mock.Anything, "admin@agency.local").Return(testAdmin(t, "admin123"), nil)

	service := NewService(mockUsers, jwtsvc.New("test-secret", time.Hour))

	_, _, err := service.Login(context.Background(), "admin@agency.local", "wrong")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	mockUsers := new(MockUserRepository)
	mockUsers.On("GetByEmail", mock.Anything, "ghost@agency.local").Return(nil, repository.ErrNotFound)

	service := NewService(mockUsers, jwtsvc.New("test-secret", time.Hour))

	_, _, err := service.Login(context.Background(), "ghost@agency.local", "admin123")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
