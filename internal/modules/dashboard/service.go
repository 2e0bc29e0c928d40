package dashboard

import (
	"context"
	"encoding/json"
	"time"

	"eventagency/internal/cache"
	"eventagency/internal/domain"
)

const (
	cacheKey    = "dashboard:summary"
	recentLimit = 5
)

type Counter interface {
	Count(ctx context.Context) (int64, error)
}

type BookingStats interface {
	Stats(ctx context.Context) (*domain.BookingSummary, error)
}

type BookingReader interface {
	Recent(ctx context.Context, limit int) ([]domain.Booking, error)
}

type ContactReader interface {
	CountByStatus(ctx context.Context, status string) (int64, error)
	Recent(ctx context.Context, limit int) ([]domain.ContactMessage, error)
}

// Summary is the aggregated payload behind the admin dashboard.
type Summary struct {
	Counts   Counts                `json:"counts"`
	Bookings domain.BookingSummary `json:"bookings"`
	Recent   RecentActivity        `json:"recent"`
}

type Counts struct {
	Events      int64 `json:"events"`
	Cars        int64 `json:"cars"`
	Tours       int64 `json:"tours"`
	Partners    int64 `json:"partners"`
	Staff       int64 `json:"staff"`
	Customers   int64 `json:"customers"`
	NewMessages int64 `json:"new_messages"`
}

type RecentActivity struct {
	Bookings []domain.Booking        `json:"bookings"`
	Messages []domain.ContactMessage `json:"messages"`
}

type Service struct {
	events    Counter
	cars      Counter
	tours     Counter
	partners  Counter
	staff     Counter
	customers Counter
	stats     BookingStats
	bookings  BookingReader
	contacts  ContactReader
	cache     cache.Cache
	ttl       time.Duration
}

func NewService(
	events, cars, tours, partners, staff, customers Counter,
	stats BookingStats,
	bookings BookingReader,
	contacts ContactReader,
	c cache.Cache,
	ttl time.Duration,
) *Service {
	return &Service{
		events:    events,
		cars:      cars,
		tours:     tours,
		partners:  partners,
		staff:     staff,
		customers: customers,
		stats:     stats,
		bookings:  bookings,
		contacts:  contacts,
		cache:     c,
		ttl:       ttl,
	}
}

// Summary builds the dashboard payload, serving from cache when a fresh
// copy exists. Cache errors are treated as misses.
func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	if raw, ok, err := s.cache.Get(ctx, cacheKey); err == nil && ok {
		var cached Summary
		if json.Unmarshal(raw, &cached) == nil {
			return &cached, nil
		}
	}

	out, err := s.build(ctx)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(out); err == nil {
		_ = s.cache.Set(ctx, cacheKey, raw, s.ttl)
	}
	return out, nil
}

// Invalidate drops the cached summary so the next read rebuilds it.
func (s *Service) Invalidate(ctx context.Context) {
	_ = s.cache.Delete(ctx, cacheKey)
}

func (s *Service) build(ctx context.Context) (*Summary, error) {
	var (
		out Summary
		err error
	)

	counts := []struct {
		dst *int64
		src Counter
	}{
		{&out.Counts.Events, s.events},
		{&out.Counts.Cars, s.cars},
		{&out.Counts.Tours, s.tours},
		{&out.Counts.Partners, s.partners},
		{&out.Counts.Staff, s.staff},
		{&out.Counts.Customers, s.customers},
	}
	for _, c := range counts {
		if *c.dst, err = c.src.Count(ctx); err != nil {
			return nil, err
		}
	}

	out.Counts.NewMessages, err = s.contacts.CountByStatus(ctx, string(domain.ContactNew))
	if err != nil {
		return nil, err
	}

	stats, err := s.stats.Stats(ctx)
	if err != nil {
		return nil, err
	}
	out.Bookings = *stats

	out.Recent.Bookings, err = s.bookings.Recent(ctx, recentLimit)
	if err != nil {
		return nil, err
	}
	out.Recent.Messages, err = s.contacts.Recent(ctx, recentLimit)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
