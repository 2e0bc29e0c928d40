package repository

import (
	"context"
	"time"

	"eventagency/internal/domain"

	"gorm.io/gorm"
)

type PartnerRepository struct {
	db *gorm.DB
}

func NewPartnerRepository(db *gorm.DB) *PartnerRepository {
	return &PartnerRepository{db: db}
}

func toDomainPartner(m partnerModel) domain.Partner {
	return domain.Partner{
		ID:          m.ID,
		Name:        m.Name,
		Category:    m.Category,
		LogoURL:     m.LogoURL,
		WebsiteURL:  m.WebsiteURL,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func (r *PartnerRepository) GetAll(ctx context.Context) ([]domain.Partner, error) {
	var models []partnerModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&models).Error; err != nil {
		return nil, translate(err)
	}
	out := make([]domain.Partner, 0, len(models))
	for _, m := range models {
		out = append(out, toDomainPartner(m))
	}
	return out, nil
}

func (r *PartnerRepository) GetByID(ctx context.Context, id int64) (*domain.Partner, error) {
	var m partnerModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, translate(err)
	}
	p := toDomainPartner(m)
	return &p, nil
}

func (r *PartnerRepository) Create(ctx context.Context, p *domain.Partner) error {
	m := partnerModel{
		Name:        p.Name,
		Category:    p.Category,
		LogoURL:     p.LogoURL,
		WebsiteURL:  p.WebsiteURL,
		Description: p.Description,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return translate(err)
	}
	*p = toDomainPartner(m)
	return nil
}

func (r *PartnerRepository) Update(ctx context.Context, p *domain.Partner) error {
	res := r.db.WithContext(ctx).Model(&partnerModel{}).
		Where("id = ?", p.ID).
		Updates(map[string]any{
			"name":        p.Name,
			"category":    p.Category,
			"logo_url":    p.LogoURL,
			"website_url": p.WebsiteURL,
			"description": p.Description,
			"updated_at":  time.Now(),
		})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PartnerRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&partnerModel{}, id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PartnerRepository) Count(ctx context.Context) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&partnerModel{}).Count(&cnt).Error
	return cnt, translate(err)
}

type StaffRepository struct {
	db *gorm.DB
}

func NewStaffRepository(db *gorm.DB) *StaffRepository {
	return &StaffRepository{db: db}
}

func toDomainStaff(m staffModel) domain.Staff {
	return domain.Staff{
		ID:           m.ID,
		Name:         m.Name,
		Role:         m.Role,
		Bio:          m.Bio,
		PhotoURL:     m.PhotoURL,
		Email:        m.Email,
		Phone:        m.Phone,
		DisplayOrder: m.DisplayOrder,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func (r *StaffRepository) GetAll(ctx context.Context) ([]domain.Staff, error) {
	var models []staffModel
	err := r.db.WithContext(ctx).
		Order("display_order ASC, name ASC").
		Find(&models).Error
	if err != nil {
		return nil, translate(err)
	}
	out := make([]domain.Staff, 0, len(models))
	for _, m := range models {
		out = append(out, toDomainStaff(m))
	}
	return out, nil
}

func (r *StaffRepository) GetByID(ctx context.Context, id int64) (*domain.Staff, error) {
	var m staffModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, translate(err)
	}
	s := toDomainStaff(m)
	return &s, nil
}

func (r *StaffRepository) Create(ctx context.Context, s *domain.Staff) error {
	m := staffModel{
		Name:         s.Name,
		Role:         s.Role,
		Bio:          s.Bio,
		PhotoURL:     s.PhotoURL,
		Email:        s.Email,
		Phone:        s.Phone,
		DisplayOrder: s.DisplayOrder,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return translate(err)
	}
	*s = toDomainStaff(m)
	return nil
}

func (r *StaffRepository) Update(ctx context.Context, s *domain.Staff) error {
	res := r.db.WithContext(ctx).Model(&staffModel{}).
		Where("id = ?", s.ID).
		Updates(map[string]any{
			"name":          s.Name,
			"role":          s.Role,
			"bio":           s.Bio,
			"photo_url":     s.PhotoURL,
			"email":         s.Email,
			"phone":         s.Phone,
			"display_order": s.DisplayOrder,
			"updated_at":    time.Now(),
		})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *StaffRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&staffModel{}, id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *StaffRepository) Count(ctx context.Context) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&staffModel{}).Count(&cnt).Error
	return cnt, translate(err)
}
