package customer

import (
	"context"
	"errors"

	"eventagency/internal/domain"
	"eventagency/internal/repository"
)

var (
	ErrNotFound = errors.New("customer not found")
	// ErrHasBookings blocks deletion while bookings still reference the customer.
	ErrHasBookings = errors.New("customer has bookings")
)

type CustomerRepository interface {
	GetAll(ctx context.Context, query string) ([]domain.Customer, error)
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	Create(ctx context.Context, c *domain.Customer) error
	Update(ctx context.Context, c *domain.Customer) error
	Delete(ctx context.Context, id int64) error
}

type BookingCounter interface {
	CountByCustomer(ctx context.Context, customerID int64) (int64, error)
}

type Service struct {
	customers CustomerRepository
	bookings  BookingCounter
}

func NewService(customers CustomerRepository, bookings BookingCounter) *Service {
	return &Service{customers: customers, bookings: bookings}
}

func (s *Service) List(ctx context.Context, query string) ([]domain.Customer, error) {
	return s.customers.GetAll(ctx, query)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Customer, error) {
	c, err := s.customers.GetByID(ctx, id)
	return c, notFound(err)
}

func (s *Service) Create(ctx context.Context, c *domain.Customer) error {
	return s.customers.Create(ctx, c)
}

func (s *Service) Update(ctx context.Context, c *domain.Customer) error {
	return notFound(s.customers.Update(ctx, c))
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	n, err := s.bookings.CountByCustomer(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrHasBookings
	}
	return notFound(s.customers.Delete(ctx, id))
}

func notFound(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
