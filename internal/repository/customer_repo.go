package repository

import (
	"context"
	"time"

	"eventagency/internal/domain"

	"gorm.io/gorm"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func toDomainCustomer(m customerModel) domain.Customer {
	return domain.Customer{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Notes:     m.Notes,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// Search matches name, email or phone when query is non-empty.
func (r *CustomerRepository) GetAll(ctx context.Context, query string) ([]domain.Customer, error) {
	q := r.db.WithContext(ctx).Model(&customerModel{})
	if query != "" {
		like := "%" + query + "%"
		q = q.Where("name LIKE ? OR email LIKE ? OR phone LIKE ?", like, like, like)
	}

	var models []customerModel
	if err := q.Order("name ASC").Find(&models).Error; err != nil {
		return nil, translate(err)
	}

	out := make([]domain.Customer, 0, len(models))
	for _, m := range models {
		out = append(out, toDomainCustomer(m))
	}
	return out, nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	var m customerModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, translate(err)
	}
	c := toDomainCustomer(m)
	return &c, nil
}

func (r *CustomerRepository) Create(ctx context.Context, c *domain.Customer) error {
	m := customerModel{
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Notes:     c.Notes,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return translate(err)
	}
	*c = toDomainCustomer(m)
	return nil
}

func (r *CustomerRepository) Update(ctx context.Context, c *domain.Customer) error {
	res := r.db.WithContext(ctx).Model(&customerModel{}).
		Where("id = ?", c.ID).
		Updates(map[string]any{
			"name":       c.Name,
			"email":      c.Email,
			"phone":      c.Phone,
			"notes":      c.Notes,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&customerModel{}, id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *CustomerRepository) Count(ctx context.Context) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&customerModel{}).Count(&cnt).Error
	return cnt, translate(err)
}
