package booking

import (
	"context"
	"time"

	"eventagency/internal/domain"
	"eventagency/internal/repository"
)

type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	List(ctx context.Context, f repository.BookingFilters) ([]domain.BookingDetails, error)
	Update(ctx context.Context, b *domain.Booking) error
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	UpdatePaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus) error
	Delete(ctx context.Context, id int64) error
	Summary(ctx context.Context) (*domain.BookingSummary, error)
	RevenueBetween(ctx context.Context, from, to time.Time) (float64, error)
	ListConfirmedEndedBefore(ctx context.Context, cutoff time.Time) ([]domain.Booking, error)
}

type CustomerRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
}

// ServiceResolver resolves the offering a booking points at. Implemented by
// the catalog service.
type ServiceResolver interface {
	ResolveServiceName(ctx context.Context, t domain.ServiceType, id int64) (string, error)
}
