package repository

import (
	"context"
	"time"

	"eventagency/internal/domain"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func toDomainAdmin(m adminUserModel) *domain.AdminUser {
	return &domain.AdminUser{
		ID:           m.ID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Name:         m.Name,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.AdminUser, error) {
	var m adminUserModel
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		return nil, translate(err)
	}
	return toDomainAdmin(m), nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.AdminUser, error) {
	var m adminUserModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, translate(err)
	}
	return toDomainAdmin(m), nil
}

func (r *UserRepository) Create(ctx context.Context, u *domain.AdminUser) error {
	m := adminUserModel{
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Name:         u.Name,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return translate(err)
	}
	*u = *toDomainAdmin(m)
	return nil
}
