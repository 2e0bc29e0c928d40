package catalog

import (
	"context"
	"errors"

	"eventagency/internal/domain"
	"eventagency/internal/repository"
)

type EventRepository interface {
	GetAll(ctx context.Context, f repository.EventFilters) ([]domain.Event, error)
	GetByID(ctx context.Context, id int64) (*domain.Event, error)
	Create(ctx context.Context, e *domain.Event) error
	Update(ctx context.Context, e *domain.Event) error
	Delete(ctx context.Context, id int64) error
}

type CarRepository interface {
	GetAll(ctx context.Context, f repository.CarFilters) ([]domain.Car, error)
	GetByID(ctx context.Context, id int64) (*domain.Car, error)
	Create(ctx context.Context, c *domain.Car) error
	Update(ctx context.Context, c *domain.Car) error
	Delete(ctx context.Context, id int64) error
}

type TourRepository interface {
	GetAll(ctx context.Context, f repository.TourFilters) ([]domain.Tour, error)
	GetByID(ctx context.Context, id int64) (*domain.Tour, error)
	Create(ctx context.Context, t *domain.Tour) error
	Update(ctx context.Context, t *domain.Tour) error
	Delete(ctx context.Context, id int64) error
}

type Service struct {
	events EventRepository
	cars   CarRepository
	tours  TourRepository
}

func NewService(events EventRepository, cars CarRepository, tours TourRepository) *Service {
	return &Service{events: events, cars: cars, tours: tours}
}

func (s *Service) ListEvents(ctx context.Context, f repository.EventFilters) ([]domain.Event, error) {
	return s.events.GetAll(ctx, f)
}

func (s *Service) GetEvent(ctx context.Context, id int64) (*domain.Event, error) {
	e, err := s.events.GetByID(ctx, id)
	return e, notFound(err)
}

func (s *Service) CreateEvent(ctx context.Context, req EventRequest) (*domain.Event, error) {
	e := eventFromRequest(req)
	if err := s.events.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *Service) UpdateEvent(ctx context.Context, id int64, req EventRequest) (*domain.Event, error) {
	e := eventFromRequest(req)
	e.ID = id
	if err := s.events.Update(ctx, e); err != nil {
		return nil, notFound(err)
	}
	return s.GetEvent(ctx, id)
}

func (s *Service) DeleteEvent(ctx context.Context, id int64) error {
	return notFound(s.events.Delete(ctx, id))
}

func (s *Service) ListCars(ctx context.Context, f repository.CarFilters) ([]domain.Car, error) {
	return s.cars.GetAll(ctx, f)
}

func (s *Service) GetCar(ctx context.Context, id int64) (*domain.Car, error) {
	c, err := s.cars.GetByID(ctx, id)
	return c, notFound(err)
}

func (s *Service) CreateCar(ctx context.Context, req CarRequest) (*domain.Car, error) {
	c := carFromRequest(req)
	if err := s.cars.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) UpdateCar(ctx context.Context, id int64, req CarRequest) (*domain.Car, error) {
	c := carFromRequest(req)
	c.ID = id
	if err := s.cars.Update(ctx, c); err != nil {
		return nil, notFound(err)
	}
	return s.GetCar(ctx, id)
}

func (s *Service) DeleteCar(ctx context.Context, id int64) error {
	return notFound(s.cars.Delete(ctx, id))
}

func (s *Service) ListTours(ctx context.Context, f repository.TourFilters) ([]domain.Tour, error) {
	return s.tours.GetAll(ctx, f)
}

func (s *Service) GetTour(ctx context.Context, id int64) (*domain.Tour, error) {
	t, err := s.tours.GetByID(ctx, id)
	return t, notFound(err)
}

func (s *Service) CreateTour(ctx context.Context, req TourRequest) (*domain.Tour, error) {
	t := tourFromRequest(req)
	if err := s.tours.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) UpdateTour(ctx context.Context, id int64, req TourRequest) (*domain.Tour, error) {
	t := tourFromRequest(req)
	t.ID = id
	if err := s.tours.Update(ctx, t); err != nil {
		return nil, notFound(err)
	}
	return s.GetTour(ctx, id)
}

func (s *Service) DeleteTour(ctx context.Context, id int64) error {
	return notFound(s.tours.Delete(ctx, id))
}

// ResolveServiceName looks the offering up by type. Satisfies the booking
// module's ServiceResolver.
func (s *Service) ResolveServiceName(ctx context.Context, t domain.ServiceType, id int64) (string, error) {
	switch t {
	case domain.ServiceEvent:
		e, err := s.events.GetByID(ctx, id)
		if err != nil {
			return "", err
		}
		return e.Title, nil
	case domain.ServiceCar:
		c, err := s.cars.GetByID(ctx, id)
		if err != nil {
			return "", err
		}
		return c.Name, nil
	case domain.ServiceTour:
		tour, err := s.tours.GetByID(ctx, id)
		if err != nil {
			return "", err
		}
		return tour.Name, nil
	default:
		return "", repository.ErrNotFound
	}
}

func eventFromRequest(req EventRequest) *domain.Event {
	active := true
	if req.Active != nil {
		active = *req.Active
	}
	return &domain.Event{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Location:    req.Location,
		Date:        req.Date,
		Price:       req.Price,
		Capacity:    req.Capacity,
		ImageURL:    req.ImageURL,
		Featured:    req.Featured,
		Active:      active,
	}
}

func carFromRequest(req CarRequest) *domain.Car {
	available := true
	if req.Available != nil {
		available = *req.Available
	}
	seats := req.Seats
	if seats < 1 {
		seats = 4
	}
	return &domain.Car{
		Name:         req.Name,
		Brand:        req.Brand,
		Category:     req.Category,
		Seats:        seats,
		PricePerDay:  req.PricePerDay,
		Transmission: req.Transmission,
		FuelType:     req.FuelType,
		ImageURL:     req.ImageURL,
		Features:     req.Features,
		Available:    available,
	}
}

func tourFromRequest(req TourRequest) *domain.Tour {
	active := true
	if req.Active != nil {
		active = *req.Active
	}
	duration := req.DurationDays
	if duration < 1 {
		duration = 1
	}
	return &domain.Tour{
		Name:         req.Name,
		Region:       req.Region,
		Description:  req.Description,
		DurationDays: duration,
		Price:        req.Price,
		MaxGroupSize: req.MaxGroupSize,
		ImageURL:     req.ImageURL,
		Activities:   req.Activities,
		Active:       active,
	}
}

func notFound(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
