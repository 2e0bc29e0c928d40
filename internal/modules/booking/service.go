package booking

import (
	"context"
	"errors"
	"time"

	"eventagency/internal/domain"
	"eventagency/internal/metrics"
	"eventagency/internal/repository"
)

type Service struct {
	bookings  BookingRepository
	customers CustomerRepository
	resolver  ServiceResolver

	// allowAnyTransition reproduces the legacy behavior where admins can set
	// any status in any order; the default is the guarded state machine.
	allowAnyTransition bool
}

func NewService(bookings BookingRepository, customers CustomerRepository, resolver ServiceResolver, allowAnyTransition bool) *Service {
	return &Service{
		bookings:           bookings,
		customers:          customers,
		resolver:           resolver,
		allowAnyTransition: allowAnyTransition,
	}
}

// Create applies the field defaults (guests 1, price 0, pending/unpaid),
// verifies the referenced customer and service exist, and inserts the
// booking. The booking number is assigned inside the repository transaction.
func (s *Service) Create(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		return nil, ErrValidation
	}

	if _, err := s.customers.GetByID(ctx, req.CustomerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}

	serviceType := domain.ServiceType(req.ServiceType)
	if _, err := s.resolver.ResolveServiceName(ctx, serviceType, req.ServiceID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}

	b := &domain.Booking{
		CustomerID:    req.CustomerID,
		ServiceType:   serviceType,
		ServiceID:     req.ServiceID,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		EventDate:     req.EventDate,
		Guests:        req.Guests,
		TotalPrice:    req.TotalPrice,
		Status:        domain.BookingStatus(req.Status),
		PaymentStatus: domain.PaymentStatus(req.PaymentStatus),
		Notes:         req.Notes,
	}
	if b.Guests < 1 {
		b.Guests = 1
	}
	if b.TotalPrice < 0 {
		b.TotalPrice = 0
	}
	if b.Status == "" {
		b.Status = domain.BookingPending
	}
	if b.PaymentStatus == "" {
		b.PaymentStatus = domain.PaymentUnpaid
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateNumber
		}
		return nil, err
	}

	metrics.IncBookingsCreated()
	return b, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *Service) List(ctx context.Context, f repository.BookingFilters) ([]domain.BookingDetails, error) {
	return s.bookings.List(ctx, f)
}

// Update is a full field replacement. The booking number and creation time
// never change; a status change goes through the same transition guard as the
// dedicated endpoints.
func (s *Service) Update(ctx context.Context, id int64, req UpdateBookingRequest) (*domain.Booking, error) {
	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		return nil, ErrValidation
	}

	current, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	newStatus := domain.BookingStatus(req.Status)
	if err := s.checkStatusTransition(current.Status, newStatus); err != nil {
		return nil, err
	}
	newPayment := domain.PaymentStatus(req.PaymentStatus)
	if err := s.checkPaymentTransition(current.PaymentStatus, newPayment); err != nil {
		return nil, err
	}

	b := &domain.Booking{
		ID:            id,
		CustomerID:    req.CustomerID,
		ServiceType:   domain.ServiceType(req.ServiceType),
		ServiceID:     req.ServiceID,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		EventDate:     req.EventDate,
		Guests:        req.Guests,
		TotalPrice:    req.TotalPrice,
		Status:        newStatus,
		PaymentStatus: newPayment,
		Notes:         req.Notes,
	}
	if b.Guests < 1 {
		b.Guests = 1
	}

	if err := s.bookings.Update(ctx, b); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return s.GetByID(ctx, id)
}

// UpdateStatus changes only the fulfillment status (and updated_at). Setting
// the current value again succeeds without touching the row.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) (*domain.Booking, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status == status {
		return current, nil
	}
	if err := s.checkStatusTransition(current.Status, status); err != nil {
		return nil, err
	}

	if err := s.bookings.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.GetByID(ctx, id)
}

// UpdatePayment changes only the payment status (and updated_at).
func (s *Service) UpdatePayment(ctx context.Context, id int64, status domain.PaymentStatus) (*domain.Booking, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.PaymentStatus == status {
		return current, nil
	}
	if err := s.checkPaymentTransition(current.PaymentStatus, status); err != nil {
		return nil, err
	}

	if err := s.bookings.UpdatePaymentStatus(ctx, id, status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.GetByID(ctx, id)
}

// Delete removes the booking row. Hard delete, no tombstone.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.bookings.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// Stats returns the status counts and revenue aggregates, plus month-over-
// month growth. Growth is 0 when the previous month had no paid revenue.
func (s *Service) Stats(ctx context.Context) (*domain.BookingSummary, error) {
	return s.statsAt(ctx, time.Now())
}

func (s *Service) statsAt(ctx context.Context, now time.Time) (*domain.BookingSummary, error) {
	summary, err := s.bookings.Summary(ctx)
	if err != nil {
		return nil, err
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	prevStart := monthStart.AddDate(0, -1, 0)
	nextStart := monthStart.AddDate(0, 1, 0)

	summary.MonthRevenue, err = s.bookings.RevenueBetween(ctx, monthStart, nextStart)
	if err != nil {
		return nil, err
	}
	summary.LastMonthRevenue, err = s.bookings.RevenueBetween(ctx, prevStart, monthStart)
	if err != nil {
		return nil, err
	}

	summary.GrowthPercent = Growth(summary.MonthRevenue, summary.LastMonthRevenue)
	return summary, nil
}

// Growth is the period-over-period revenue change in percent, guarded
// against a zero previous period.
func Growth(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return (current - previous) / previous * 100
}

// CompletePastBookings marks confirmed bookings whose relevant date has
// passed as completed. Returns how many were updated. Called by the cron job.
func (s *Service) CompletePastBookings(ctx context.Context, now time.Time) (int, error) {
	ended, err := s.bookings.ListConfirmedEndedBefore(ctx, now)
	if err != nil {
		return 0, err
	}

	done := 0
	for _, b := range ended {
		if err := s.bookings.UpdateStatus(ctx, b.ID, domain.BookingCompleted); err != nil {
			return done, err
		}
		done++
	}
	return done, nil
}

func (s *Service) checkStatusTransition(from, to domain.BookingStatus) error {
	if s.allowAnyTransition || from == to {
		return nil
	}
	if !canTransitionStatus(from, to) {
		return ErrInvalidTransition
	}
	return nil
}

func (s *Service) checkPaymentTransition(from, to domain.PaymentStatus) error {
	if s.allowAnyTransition || from == to {
		return nil
	}
	if !canTransitionPayment(from, to) {
		return ErrInvalidTransition
	}
	return nil
}
