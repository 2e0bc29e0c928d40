package repository

import (
	"context"
	"time"

	"eventagency/internal/domain"

	"gorm.io/gorm"
)

type TourRepository struct {
	db *gorm.DB
}

func NewTourRepository(db *gorm.DB) *TourRepository {
	return &TourRepository{db: db}
}

// TourFilters narrows tour listings.
type TourFilters struct {
	Region     string
	ActiveOnly bool
}

func toDomainTour(m tourModel) domain.Tour {
	return domain.Tour{
		ID:           m.ID,
		Name:         m.Name,
		Region:       m.Region,
		Description:  m.Description,
		DurationDays: m.DurationDays,
		Price:        m.Price,
		MaxGroupSize: m.MaxGroupSize,
		ImageURL:     m.ImageURL,
		Activities:   decodeStrings(m.Activities),
		Active:       m.Active,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toTourModel(t *domain.Tour) tourModel {
	return tourModel{
		ID:           t.ID,
		Name:         t.Name,
		Region:       t.Region,
		Description:  t.Description,
		DurationDays: t.DurationDays,
		Price:        t.Price,
		MaxGroupSize: t.MaxGroupSize,
		ImageURL:     t.ImageURL,
		Activities:   encodeStrings(t.Activities),
		Active:       t.Active,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

func (r *TourRepository) GetAll(ctx context.Context, f TourFilters) ([]domain.Tour, error) {
	q := r.db.WithContext(ctx).Model(&tourModel{})
	if f.Region != "" {
		q = q.Where("region = ?", f.Region)
	}
	if f.ActiveOnly {
		q = q.Where("active = ?", true)
	}

	var models []tourModel
	if err := q.Order("name ASC").Find(&models).Error; err != nil {
		return nil, translate(err)
	}

	out := make([]domain.Tour, 0, len(models))
	for _, m := range models {
		out = append(out, toDomainTour(m))
	}
	return out, nil
}

func (r *TourRepository) GetByID(ctx context.Context, id int64) (*domain.Tour, error) {
	var m tourModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, translate(err)
	}
	t := toDomainTour(m)
	return &t, nil
}

func (r *TourRepository) Create(ctx context.Context, t *domain.Tour) error {
	m := toTourModel(t)
	m.CreatedAt = time.Now()
	m.UpdatedAt = m.CreatedAt
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return translate(err)
	}
	*t = toDomainTour(m)
	return nil
}

func (r *TourRepository) Update(ctx context.Context, t *domain.Tour) error {
	m := toTourModel(t)
	m.UpdatedAt = time.Now()
	res := r.db.WithContext(ctx).Model(&tourModel{}).
		Where("id = ?", t.ID).
		Updates(map[string]any{
			"name":           m.Name,
			"region":         m.Region,
			"description":    m.Description,
			"duration_days":  m.DurationDays,
			"price":          m.Price,
			"max_group_size": m.MaxGroupSize,
			"image_url":      m.ImageURL,
			"activities":     m.Activities,
			"active":         m.Active,
			"updated_at":     m.UpdatedAt,
		})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *TourRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&tourModel{}, id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *TourRepository) Count(ctx context.Context) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&tourModel{}).Count(&cnt).Error
	return cnt, translate(err)
}
