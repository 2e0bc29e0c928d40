package company

import (
	"context"
	"errors"

	"eventagency/internal/domain"
	"eventagency/internal/repository"
)

var ErrNotFound = errors.New("not found")

type PartnerRepository interface {
	GetAll(ctx context.Context) ([]domain.Partner, error)
	GetByID(ctx context.Context, id int64) (*domain.Partner, error)
	Create(ctx context.Context, p *domain.Partner) error
	Update(ctx context.Context, p *domain.Partner) error
	Delete(ctx context.Context, id int64) error
}

type StaffRepository interface {
	GetAll(ctx context.Context) ([]domain.Staff, error)
	GetByID(ctx context.Context, id int64) (*domain.Staff, error)
	Create(ctx context.Context, s *domain.Staff) error
	Update(ctx context.Context, s *domain.Staff) error
	Delete(ctx context.Context, id int64) error
}

// Service covers the "about us" content: partners and team members.
type Service struct {
	partners PartnerRepository
	staff    StaffRepository
}

func NewService(partners PartnerRepository, staff StaffRepository) *Service {
	return &Service{partners: partners, staff: staff}
}

func (s *Service) ListPartners(ctx context.Context) ([]domain.Partner, error) {
	return s.partners.GetAll(ctx)
}

func (s *Service) GetPartner(ctx context.Context, id int64) (*domain.Partner, error) {
	p, err := s.partners.GetByID(ctx, id)
	return p, notFound(err)
}

func (s *Service) CreatePartner(ctx context.Context, p *domain.Partner) error {
	return s.partners.Create(ctx, p)
}

func (s *Service) UpdatePartner(ctx context.Context, p *domain.Partner) error {
	return notFound(s.partners.Update(ctx, p))
}

func (s *Service) DeletePartner(ctx context.Context, id int64) error {
	return notFound(s.partners.Delete(ctx, id))
}

func (s *Service) ListStaff(ctx context.Context) ([]domain.Staff, error) {
	return s.staff.GetAll(ctx)
}

func (s *Service) GetStaff(ctx context.Context, id int64) (*domain.Staff, error) {
	m, err := s.staff.GetByID(ctx, id)
	return m, notFound(err)
}

func (s *Service) CreateStaff(ctx context.Context, m *domain.Staff) error {
	return s.staff.Create(ctx, m)
}

func (s *Service) UpdateStaff(ctx context.Context, m *domain.Staff) error {
	return notFound(s.staff.Update(ctx, m))
}

func (s *Service) DeleteStaff(ctx context.Context, id int64) error {
	return notFound(s.staff.Delete(ctx, id))
}

func notFound(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
