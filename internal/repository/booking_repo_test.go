package repository

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"eventagency/internal/database"
	"eventagency/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))
	return db
}

func seedCustomer(t *testing.T, db *gorm.DB) *domain.Customer {
	t.Helper()
	c := &domain.Customer{Name: "Aigerim", Email: "aigerim@mail.test", Phone: "+7 701 000 1001"}
	require.NoError(t, NewCustomerRepository(db).Create(context.Background(), c))
	return c
}

func seedEvent(t *testing.T, db *gorm.DB) *domain.Event {
	t.Helper()
	e := &domain.Event{Title: "City Jazz Night", Active: true}
	require.NoError(t, NewEventRepository(db).Create(context.Background(), e))
	return e
}

func TestBookingCreate_AssignsSequentialNumbers(t *testing.T) {
	db := testDB(t)
	repo := NewBookingRepository(db)
	customer := seedCustomer(t, db)
	event := seedEvent(t, db)
	ctx := context.Background()

	month := domain.SequenceMonth(time.Now())
	for i := 1; i <= 3; i++ {
		b := &domain.Booking{
			CustomerID:    customer.ID,
			ServiceType:   domain.ServiceEvent,
			ServiceID:     event.ID,
			Guests:        2,
			TotalPrice:    1000,
			Status:        domain.BookingPending,
			PaymentStatus: domain.PaymentUnpaid,
		}
		require.NoError(t, repo.Create(ctx, b))
		assert.Equal(t, fmt.Sprintf("BK-%s-%04d", month, i), b.BookingNumber)
	}
}

func TestBookingCreate_ConcurrentCreatesAllSucceed(t *testing.T) {
	db := testDB(t)
	repo := NewBookingRepository(db)
	customer := seedCustomer(t, db)
	event := seedEvent(t, db)
	ctx := context.Background()

	const workers = 8
	numbers := make(chan string, workers)
	errs := make(chan error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b := &domain.Booking{
				CustomerID:    customer.ID,
				ServiceType:   domain.ServiceEvent,
				ServiceID:     event.ID,
				Guests:        1,
				Status:        domain.BookingPending,
				PaymentStatus: domain.PaymentUnpaid,
			}
			if err := repo.Create(ctx, b); err != nil {
				errs <- err
				return
			}
			numbers <- b.BookingNumber
		}()
	}
	wg.Wait()
	close(numbers)
	close(errs)

	for err := range errs {
		t.Errorf("concurrent create failed: %v", err)
	}

	seen := make(map[string]bool, workers)
	for n := range numbers {
		assert.Falsef(t, seen[n], "booking number %s issued twice", n)
		seen[n] = true
	}
	assert.Len(t, seen, workers)
}

func TestBookingCreate_DuplicateNumberIsErrDuplicate(t *testing.T) {
	db := testDB(t)
	repo := NewBookingRepository(db)
	customer := seedCustomer(t, db)
	event := seedEvent(t, db)
	ctx := context.Background()

	b := &domain.Booking{
		CustomerID:    customer.ID,
		ServiceType:   domain.ServiceEvent,
		ServiceID:     event.ID,
		Guests:        1,
		Status:        domain.BookingPending,
		PaymentStatus: domain.PaymentUnpaid,
	}
	require.NoError(t, repo.Create(ctx, b))

	clash := toBookingModel(b)
	clash.ID = 0
	err := translate(db.Create(&clash).Error)
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestBookingCreate_MonthRolloverResetsCounter(t *testing.T) {
	db := testDB(t)
	repo := NewBookingRepository(db)
	customer := seedCustomer(t, db)
	event := seedEvent(t, db)
	ctx := context.Background()

	newBooking := func() *domain.Booking {
		return &domain.Booking{
			CustomerID:    customer.ID,
			ServiceType:   domain.ServiceEvent,
			ServiceID:     event.ID,
			Guests:        1,
			Status:        domain.BookingPending,
			PaymentStatus: domain.PaymentUnpaid,
		}
	}

	january := time.Date(2026, 1, 20, 9, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return january }

	first := newBooking()
	require.NoError(t, repo.Create(ctx, first))
	second := newBooking()
	require.NoError(t, repo.Create(ctx, second))
	assert.Equal(t, "BK-2601-0001", first.BookingNumber)
	assert.Equal(t, "BK-2601-0002", second.BookingNumber)

	repo.now = func() time.Time { return january.AddDate(0, 1, 0) }

	third := newBooking()
	require.NoError(t, repo.Create(ctx, third))
	assert.Equal(t, "BK-2602-0001", third.BookingNumber)
}

func TestBookingList_ResolvesServiceName(t *testing.T) {
	db := testDB(t)
	repo := NewBookingRepository(db)
	customer := seedCustomer(t, db)
	event := seedEvent(t, db)
	ctx := context.Background()

	b := &domain.Booking{
		CustomerID:    customer.ID,
		ServiceType:   domain.ServiceEvent,
		ServiceID:     event.ID,
		Guests:        1,
		Status:        domain.BookingPending,
		PaymentStatus: domain.PaymentUnpaid,
	}
	require.NoError(t, repo.Create(ctx, b))

	rows, err := repo.List(ctx, BookingFilters{})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, "City Jazz Night", rows[0].ServiceName)
	assert.Equal(t, "Aigerim", rows[0].CustomerName)
	assert.Equal(t, b.BookingNumber, rows[0].BookingNumber)
}

func TestBookingList_Filters(t *testing.T) {
	db := testDB(t)
	repo := NewBookingRepository(db)
	customer := seedCustomer(t, db)
	event := seedEvent(t, db)
	ctx := context.Background()

	statuses := []domain.BookingStatus{domain.BookingPending, domain.BookingConfirmed}
	for _, st := range statuses {
		b := &domain.Booking{
			CustomerID:    customer.ID,
			ServiceType:   domain.ServiceEvent,
			ServiceID:     event.ID,
			Guests:        1,
			Status:        st,
			PaymentStatus: domain.PaymentUnpaid,
		}
		require.NoError(t, repo.Create(ctx, b))
	}

	rows, err := repo.List(ctx, BookingFilters{Status: "confirmed"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, domain.BookingConfirmed, rows[0].Status)

	rows, err = repo.List(ctx, BookingFilters{ServiceType: "car"})
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestBookingSummary(t *testing.T) {
	db := testDB(t)
	repo := NewBookingRepository(db)
	customer := seedCustomer(t, db)
	event := seedEvent(t, db)
	ctx := context.Background()

	fixtures := []struct {
		status  domain.BookingStatus
		payment domain.PaymentStatus
		price   float64
	}{
		{domain.BookingPending, domain.PaymentUnpaid, 100},
		{domain.BookingConfirmed, domain.PaymentPaid, 200},
		{domain.BookingCompleted, domain.PaymentPaid, 300},
		{domain.BookingCancelled, domain.PaymentRefunded, 400},
	}
	for _, f := range fixtures {
		b := &domain.Booking{
			CustomerID:    customer.ID,
			ServiceType:   domain.ServiceEvent,
			ServiceID:     event.ID,
			Guests:        1,
			TotalPrice:    f.price,
			Status:        f.status,
			PaymentStatus: f.payment,
		}
		require.NoError(t, repo.Create(ctx, b))
	}

	summary, err := repo.Summary(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(4), summary.Total)
	assert.Equal(t, int64(1), summary.Pending)
	assert.Equal(t, int64(1), summary.Confirmed)
	assert.Equal(t, int64(1), summary.Completed)
	assert.Equal(t, int64(1), summary.Cancelled)
	assert.Equal(t, 500.0, summary.Revenue)
	assert.Equal(t, 100.0, summary.PendingRevenue)
}

func TestBookingUpdate_PreservesNumber(t *testing.T) {
	db := testDB(t)
	repo := NewBookingRepository(db)
	customer := seedCustomer(t, db)
	event := seedEvent(t, db)
	ctx := context.Background()

	b := &domain.Booking{
		CustomerID:    customer.ID,
		ServiceType:   domain.ServiceEvent,
		ServiceID:     event.ID,
		Guests:        1,
		Status:        domain.BookingPending,
		PaymentStatus: domain.PaymentUnpaid,
	}
	require.NoError(t, repo.Create(ctx, b))
	number := b.BookingNumber

	b.Guests = 4
	b.BookingNumber = "BK-0000-9999" // must be ignored
	require.NoError(t, repo.Update(ctx, b))

	got, err := repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, number, got.BookingNumber)
	assert.Equal(t, 4, got.Guests)
}

func TestBookingDelete_NotFound(t *testing.T) {
	db := testDB(t)
	repo := NewBookingRepository(db)

	err := repo.Delete(context.Background(), 12345)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListConfirmedEndedBefore(t *testing.T) {
	db := testDB(t)
	repo := NewBookingRepository(db)
	customer := seedCustomer(t, db)
	event := seedEvent(t, db)
	ctx := context.Background()

	past := time.Now().AddDate(0, 0, -2)
	future := time.Now().AddDate(0, 0, 2)

	ended := &domain.Booking{
		CustomerID:    customer.ID,
		ServiceType:   domain.ServiceEvent,
		ServiceID:     event.ID,
		EventDate:     &past,
		Guests:        1,
		Status:        domain.BookingConfirmed,
		PaymentStatus: domain.PaymentPaid,
	}
	require.NoError(t, repo.Create(ctx, ended))

	upcoming := &domain.Booking{
		CustomerID:    customer.ID,
		ServiceType:   domain.ServiceEvent,
		ServiceID:     event.ID,
		EventDate:     &future,
		Guests:        1,
		Status:        domain.BookingConfirmed,
		PaymentStatus: domain.PaymentUnpaid,
	}
	require.NoError(t, repo.Create(ctx, upcoming))

	got, err := repo.ListConfirmedEndedBefore(ctx, time.Now())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, ended.ID, got[0].ID)
}

func TestCountByCustomer(t *testing.T) {
	db := testDB(t)
	repo := NewBookingRepository(db)
	customer := seedCustomer(t, db)
	event := seedEvent(t, db)
	ctx := context.Background()

	b := &domain.Booking{
		CustomerID:    customer.ID,
		ServiceType:   domain.ServiceEvent,
		ServiceID:     event.ID,
		Guests:        1,
		Status:        domain.BookingPending,
		PaymentStatus: domain.PaymentUnpaid,
	}
	require.NoError(t, repo.Create(ctx, b))

	n, err := repo.CountByCustomer(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = repo.CountByCustomer(ctx, customer.ID+1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}
