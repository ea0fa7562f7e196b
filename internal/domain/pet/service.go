package pet

import (
	"context"
	"fmt"
)

type Service struct {
	pets Repository
}

func NewService(pets Repository) *Service {
	return &Service{pets: pets}
}

var validGenders = map[string]bool{
	"male": true, "female": true, "unknown": true,
}

func (s *Service) Create(ctx context.Context, p *Pet) error {
	if p.Name == "" {
		return fmt.Errorf("name is required")
	}
	if p.Species == "" {
		return fmt.Errorf("species is required")
	}
	if p.Gender != "" && !validGenders[p.Gender] {
		return fmt.Errorf("invalid gender: %s", p.Gender)
	}
	return s.pets.Create(ctx, p)
}

func (s *Service) Get(ctx context.Context, id string) (*Pet, error) {
	return s.pets.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, p *Pet) error {
	if p.ID == "" {
		return fmt.Errorf("id is required")
	}
	if p.Gender != "" && !validGenders[p.Gender] {
		return fmt.Errorf("invalid gender: %s", p.Gender)
	}
	return s.pets.Update(ctx, p)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.pets.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Pet, int, error) {
	return s.pets.List(ctx, limit, offset)
}

func (s *Service) ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]*Pet, int, error) {
	return s.pets.ListByOwner(ctx, ownerID, limit, offset)
}
