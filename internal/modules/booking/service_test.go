package booking

import (
	"context"
	"testing"
	"time"

	"eventagency/internal/domain"
	"eventagency/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock repositories
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	if b != nil {
		b.ID = 999 // simulate DB insert
		b.BookingNumber = domain.FormatBookingNumber(time.Now(), 1)
	}
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) List(ctx context.Context, f repository.BookingFilters) ([]domain.BookingDetails, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BookingDetails), args.Error(1)
}

func (m *MockBookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockBookingRepository) UpdatePaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockBookingRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBookingRepository) Summary(ctx context.Context) (*domain.BookingSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BookingSummary), args.Error(1)
}

func (m *MockBookingRepository) RevenueBetween(ctx context.Context, from, to time.Time) (float64, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockBookingRepository) ListConfirmedEndedBefore(ctx context.Context, cutoff time.Time) ([]domain.Booking, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

type MockServiceResolver struct {
	mock.Mock
}

func (m *MockServiceResolver) ResolveServiceName(ctx context.Context, t domain.ServiceType, id int64) (string, error) {
	args := m.Called(ctx, t, id)
	return args.String(0), args.Error(1)
}

func newTestService(bookings *MockBookingRepository, customers *MockCustomerRepository, resolver *MockServiceResolver) *Service {
	return NewService(bookings, customers, resolver, false)
}

func TestService_Create_AppliesDefaults(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockCustomers := new(MockCustomerRepository)
	mockResolver := new(MockServiceResolver)

	mockCustomers.On("GetByID", mock.Anything, int64(5)).Return(&domain.Customer{ID: 5, Name: "Aigerim"}, nil)
	mockResolver.On("ResolveServiceName", mock.Anything, domain.ServiceEvent, int64(3)).Return("City Jazz Night", nil)
	mockBookings.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := newTestService(mockBookings, mockCustomers, mockResolver)

	b, err := service.Create(context.Background(), CreateBookingRequest{
		CustomerID:  5,
		ServiceType: "event",
		ServiceID:   3,
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, b.Guests)
	assert.Equal(t, 0.0, b.TotalPrice)
	assert.Equal(t, domain.BookingPending, b.Status)
	assert.Equal(t, domain.PaymentUnpaid, b.PaymentStatus)
	assert.NotEmpty(t, b.BookingNumber)
}

func TestService_Create_CustomerMissing(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockCustomers := new(MockCustomerRepository)
	mockResolver := new(MockServiceResolver)

	mockCustomers.On("GetByID", mock.Anything, int64(42)).Return(nil, repository.ErrNotFound)

	service := newTestService(mockBookings, mockCustomers, mockResolver)

	_, err := service.Create(context.Background(), CreateBookingRequest{
		CustomerID:  42,
		ServiceType: "car",
		ServiceID:   1,
	})

	assert.ErrorIs(t, err, ErrCustomerNotFound)
	mockBookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Create_ServiceMissing(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockCustomers := new(MockCustomerRepository)
	mockResolver := new(MockServiceResolver)

	mockCustomers.On("GetByID", mock.Anything, int64(5)).Return(&domain.Customer{ID: 5}, nil)
	mockResolver.On("ResolveServiceName", mock.Anything, domain.ServiceTour, int64(77)).Return("", repository.ErrNotFound)

	service := newTestService(mockBookings, mockCustomers, mockResolver)

	_, err := service.Create(context.Background(), CreateBookingRequest{
		CustomerID:  5,
		ServiceType: "tour",
		ServiceID:   77,
	})

	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestService_Create_EndBeforeStart(t *testing.T) {
	service := newTestService(new(MockBookingRepository), new(MockCustomerRepository), new(MockServiceResolver))

	start := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, -2)

	_, err := service.Create(context.Background(), CreateBookingRequest{
		CustomerID:  5,
		ServiceType: "car",
		ServiceID:   1,
		StartDate:   &start,
		EndDate:     &end,
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_UpdateStatus_ValidTransition(t *testing.T) {
	mockBookings := new(MockBookingRepository)

	current := &domain.Booking{ID: 1, Status: domain.BookingPending, PaymentStatus: domain.PaymentUnpaid}
	confirmed := &domain.Booking{ID: 1, Status: domain.BookingConfirmed, PaymentStatus: domain.PaymentUnpaid}
	mockBookings.On("GetByID", mock.Anything, int64(1)).Return(current, nil).Once()
	mockBookings.On("UpdateStatus", mock.Anything, int64(1), domain.BookingConfirmed).Return(nil)
	mockBookings.On("GetByID", mock.Anything, int64(1)).Return(confirmed, nil).Once()

	service := newTestService(mockBookings, new(MockCustomerRepository), new(MockServiceResolver))

	b, err := service.UpdateStatus(context.Background(), 1, domain.BookingConfirmed)

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingConfirmed, b.Status)
	// payment status untouched
	assert.Equal(t, domain.PaymentUnpaid, b.PaymentStatus)
}

func TestService_UpdateStatus_InvalidTransition(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockBookings.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Booking{ID: 1, Status: domain.BookingCompleted}, nil)

	service := newTestService(mockBookings, new(MockCustomerRepository), new(MockServiceResolver))

	_, err := service.UpdateStatus(context.Background(), 1, domain.BookingPending)

	assert.ErrorIs(t, err, ErrInvalidTransition)
	mockBookings.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_UpdateStatus_SameValueIsNoop(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockBookings.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Booking{ID: 1, Status: domain.BookingConfirmed}, nil)

	service := newTestService(mockBookings, new(MockCustomerRepository), new(MockServiceResolver))

	b, err := service.UpdateStatus(context.Background(), 1, domain.BookingConfirmed)

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingConfirmed, b.Status)
	mockBookings.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_UpdateStatus_AnyTransitionAllowed(t *testing.T) {
	mockBookings := new(MockBookingRepository)

	cancelled := &domain.Booking{ID: 1, Status: domain.BookingCancelled}
	reopened := &domain.Booking{ID: 1, Status: domain.BookingPending}
	mockBookings.On("GetByID", mock.Anything, int64(1)).Return(cancelled, nil).Once()
	mockBookings.On("UpdateStatus", mock.Anything, int64(1), domain.BookingPending).Return(nil)
	mockBookings.On("GetByID", mock.Anything, int64(1)).Return(reopened, nil).Once()

	service := NewService(mockBookings, new(MockCustomerRepository), new(MockServiceResolver), true)

	b, err := service.UpdateStatus(context.Background(), 1, domain.BookingPending)

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingPending, b.Status)
}

func TestService_UpdatePayment_RefundRequiresPaid(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockBookings.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.Booking{ID: 1, PaymentStatus: domain.PaymentUnpaid}, nil)

	service := newTestService(mockBookings, new(MockCustomerRepository), new(MockServiceResolver))

	_, err := service.UpdatePayment(context.Background(), 1, domain.PaymentRefunded)

	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestService_Stats_Growth(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockBookings.On("Summary", mock.Anything).Return(&domain.BookingSummary{Total: 3, Revenue: 150}, nil)

	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	monthStart := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	prevStart := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	nextStart := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	mockBookings.On("RevenueBetween", mock.Anything, monthStart, nextStart).Return(100.0, nil)
	mockBookings.On("RevenueBetween", mock.Anything, prevStart, monthStart).Return(50.0, nil)

	service := newTestService(mockBookings, new(MockCustomerRepository), new(MockServiceResolver))

	summary, err := service.statsAt(context.Background(), now)

	assert.NoError(t, err)
	assert.Equal(t, 100.0, summary.MonthRevenue)
	assert.Equal(t, 50.0, summary.LastMonthRevenue)
	assert.Equal(t, 100.0, summary.GrowthPercent)
}

func TestGrowth_ZeroPrevious(t *testing.T) {
	assert.Equal(t, 0.0, Growth(500, 0))
	assert.Equal(t, 0.0, Growth(0, 0))
	assert.Equal(t, -50.0, Growth(50, 100))
}

func TestService_CompletePastBookings(t *testing.T) {
	mockBookings := new(MockBookingRepository)

	now := time.Date(2026, 8, 28, 3, 0, 0, 0, time.UTC)
	ended := []domain.Booking{
		{ID: 1, Status: domain.BookingConfirmed},
		{ID: 2, Status: domain.BookingConfirmed},
	}
	mockBookings.On("ListConfirmedEndedBefore", mock.Anything, now).Return(ended, nil)
	mockBookings.On("UpdateStatus", mock.Anything, int64(1), domain.BookingCompleted).Return(nil)
	mockBookings.On("UpdateStatus", mock.Anything, int64(2), domain.BookingCompleted).Return(nil)

	service := newTestService(mockBookings, new(MockCustomerRepository), new(MockServiceResolver))

	n, err := service.CompletePastBookings(context.Background(), now)

	assert.NoError(t, err)
	assert.Equal(t, 2, n)
	mockBookings.AssertExpectations(t)
}
