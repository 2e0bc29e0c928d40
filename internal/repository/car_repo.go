package repository

import (
	"context"
	"encoding/json"
	"time"

	"eventagency/internal/domain"

	"gorm.io/gorm"
)

type CarRepository struct {
	db *gorm.DB
}

func NewCarRepository(db *gorm.DB) *CarRepository {
	return &CarRepository{db: db}
}

// CarFilters narrows car listings.
type CarFilters struct {
	Category      string
	AvailableOnly bool
}

func encodeStrings(v []string) string {
	if len(v) == 0 {
		return "[]"
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "[]"
	}
	return string(b)
}

func decodeStrings(s string) []string {
	if s == "" {
		return []string{}
	}
	var out []string
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return []string{}
	}
	return out
}

func toDomainCar(m carModel) domain.Car {
	return domain.Car{
		ID:           m.ID,
		Name:         m.Name,
		Brand:        m.Brand,
		Category:     m.Category,
		Seats:        m.Seats,
		PricePerDay:  m.PricePerDay,
		Transmission: m.Transmission,
		FuelType:     m.FuelType,
		ImageURL:     m.ImageURL,
		Features:     decodeStrings(m.Features),
		Available:    m.Available,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toCarModel(c *domain.Car) carModel {
	return carModel{
		ID:           c.ID,
		Name:         c.Name,
		Brand:        c.Brand,
		Category:     c.Category,
		Seats:        c.Seats,
		PricePerDay:  c.PricePerDay,
		Transmission: c.Transmission,
		FuelType:     c.FuelType,
		ImageURL:     c.ImageURL,
		Features:     encodeStrings(c.Features),
		Available:    c.Available,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func (r *CarRepository) GetAll(ctx context.Context, f CarFilters) ([]domain.Car, error) {
	q := r.db.WithContext(ctx).Model(&carModel{})
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.AvailableOnly {
		q = q.Where("available = ?", true)
	}

	var models []carModel
	if err := q.Order("name ASC").Find(&models).Error; err != nil {
		return nil, translate(err)
	}

	out := make([]domain.Car, 0, len(models))
	for _, m := range models {
		out = append(out, toDomainCar(m))
	}
	return out, nil
}

func (r *CarRepository) GetByID(ctx context.Context, id int64) (*domain.Car, error) {
	var m carModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, translate(err)
	}
	c := toDomainCar(m)
	return &c, nil
}

func (r *CarRepository) Create(ctx context.Context, c *domain.Car) error {
	m := toCarModel(c)
	m.CreatedAt = time.Now()
	m.UpdatedAt = m.CreatedAt
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return translate(err)
	}
	*c = toDomainCar(m)
	return nil
}

func (r *CarRepository) Update(ctx context.Context, c *domain.Car) error {
	m := toCarModel(c)
	m.UpdatedAt = time.Now()
	res := r.db.WithContext(ctx).Model(&carModel{}).
		Where("id = ?", c.ID).
		Updates(map[string]any{
			"name":          m.Name,
			"brand":         m.Brand,
			"category":      m.Category,
			"seats":         m.Seats,
			"price_per_day": m.PricePerDay,
			"transmission":  m.Transmission,
			"fuel_type":     m.FuelType,
			"image_url":     m.ImageURL,
			"features":      m.Features,
			"available":     m.Available,
			"updated_at":    m.UpdatedAt,
		})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *CarRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&carModel{}, id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *CarRepository) Count(ctx context.Context) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&carModel{}).Count(&cnt).Error
	return cnt, translate(err)
}
