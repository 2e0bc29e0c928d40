package repository

import (
	"context"
	"time"

	"eventagency/internal/domain"

	"gorm.io/gorm"
)

type ContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

func toDomainContact(m contactMessageModel) domain.ContactMessage {
	return domain.ContactMessage{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Subject:   m.Subject,
		Message:   m.Message,
		Status:    domain.ContactStatus(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func (r *ContactRepository) Create(ctx context.Context, msg *domain.ContactMessage) error {
	m := contactMessageModel{
		Name:      msg.Name,
		Email:     msg.Email,
		Phone:     msg.Phone,
		Subject:   msg.Subject,
		Message:   msg.Message,
		Status:    string(msg.Status),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return translate(err)
	}
	*msg = toDomainContact(m)
	return nil
}

func (r *ContactRepository) GetByID(ctx context.Context, id int64) (*domain.ContactMessage, error) {
	var m contactMessageModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, translate(err)
	}
	msg := toDomainContact(m)
	return &msg, nil
}

// List returns messages newest first, optionally filtered by status.
func (r *ContactRepository) List(ctx context.Context, status string) ([]domain.ContactMessage, error) {
	q := r.db.WithContext(ctx).Model(&contactMessageModel{})
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var models []contactMessageModel
	if err := q.Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, translate(err)
	}

	out := make([]domain.ContactMessage, 0, len(models))
	for _, m := range models {
		out = append(out, toDomainContact(m))
	}
	return out, nil
}

func (r *ContactRepository) UpdateStatus(ctx context.Context, id int64, status domain.ContactStatus) error {
	res := r.db.WithContext(ctx).Model(&contactMessageModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": string(status), "updated_at": time.Now()})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ContactRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&contactMessageModel{}, id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ContactRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	q := r.db.WithContext(ctx).Model(&contactMessageModel{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var cnt int64
	err := q.Count(&cnt).Error
	return cnt, translate(err)
}

// Recent returns the newest messages for the dashboard.
func (r *ContactRepository) Recent(ctx context.Context, limit int) ([]domain.ContactMessage, error) {
	var models []contactMessageModel
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, translate(err)
	}

	out := make([]domain.ContactMessage, 0, len(models))
	for _, m := range models {
		out = append(out, toDomainContact(m))
	}
	return out, nil
}
