package repository

import (
	"context"
	"time"

	"eventagency/internal/domain"

	"gorm.io/gorm"
)

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

// EventFilters narrows public and admin event listings.
type EventFilters struct {
	Category     string
	FeaturedOnly bool
	ActiveOnly   bool
}

func toDomainEvent(m eventModel) domain.Event {
	return domain.Event{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Category:    m.Category,
		Location:    m.Location,
		Date:        m.Date,
		Price:       m.Price,
		Capacity:    m.Capacity,
		ImageURL:    m.ImageURL,
		Featured:    m.Featured,
		Active:      m.Active,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toEventModel(e *domain.Event) eventModel {
	return eventModel{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Category:    e.Category,
		Location:    e.Location,
		Date:        e.Date,
		Price:       e.Price,
		Capacity:    e.Capacity,
		ImageURL:    e.ImageURL,
		Featured:    e.Featured,
		Active:      e.Active,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func (r *EventRepository) GetAll(ctx context.Context, f EventFilters) ([]domain.Event, error) {
	q := r.db.WithContext(ctx).Model(&eventModel{})
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.FeaturedOnly {
		q = q.Where("featured = ?", true)
	}
	if f.ActiveOnly {
		q = q.Where("active = ?", true)
	}

	var models []eventModel
	if err := q.Order("date ASC").Find(&models).Error; err != nil {
		return nil, translate(err)
	}

	out := make([]domain.Event, 0, len(models))
	for _, m := range models {
		out = append(out, toDomainEvent(m))
	}
	return out, nil
}

func (r *EventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	var m eventModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, translate(err)
	}
	e := toDomainEvent(m)
	return &e, nil
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	m := toEventModel(e)
	m.CreatedAt = time.Now()
	m.UpdatedAt = m.CreatedAt
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return translate(err)
	}
	*e = toDomainEvent(m)
	return nil
}

func (r *EventRepository) Update(ctx context.Context, e *domain.Event) error {
	m := toEventModel(e)
	m.UpdatedAt = time.Now()
	res := r.db.WithContext(ctx).Model(&eventModel{}).
		Where("id = ?", e.ID).
		Updates(map[string]any{
			"title":       m.Title,
			"description": m.Description,
			"category":    m.Category,
			"location":    m.Location,
			"date":        m.Date,
			"price":       m.Price,
			"capacity":    m.Capacity,
			"image_url":   m.ImageURL,
			"featured":    m.Featured,
			"active":      m.Active,
			"updated_at":  m.UpdatedAt,
		})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&eventModel{}, id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *EventRepository) Count(ctx context.Context) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&eventModel{}).Count(&cnt).Error
	return cnt, translate(err)
}
