package patient

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, p *Patient) error {
	if p.HN == "" {
		return fmt.Errorf("hn is required")
	}
	if p.FirstName == "" || p.LastName == "" {
		return fmt.Errorf("first_name and last_name are required")
	}
	return s.repo.Create(ctx, p)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByHN(ctx context.Context, hn string) (*Patient, error) {
	return s.repo.GetByHN(ctx, hn)
}

func (s *Service) Update(ctx context.Context, p *Patient) error {
	if p.HN == "" {
		return fmt.Errorf("hn is required")
	}
	return s.repo.Update(ctx, p)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Patient, int, error) {
	return s.repo.List(ctx, limit, offset)
}

// BirthDate implements the pathway domain's PatientReader: it returns the
// patient's date of birth, or nil when none is recorded.
func (s *Service) BirthDate(ctx context.Context, id uuid.UUID) (*time.Time, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return p.DateOfBirth, nil
}
