package building

import (
	"context"
	"strings"
)

type CreateRequest struct {
	Name    string
	Address string
}

type UpdateRequest struct {
	Name    *string
	Address *string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Building, error)
	GetByID(ctx context.Context, id string) (*Building, error)
	List(ctx context.Context, filter Filter) ([]*Building, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Building, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Building, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrNameRequired
	}

	b := &Building{
		Name:    strings.TrimSpace(req.Name),
		Address: strings.TrimSpace(req.Address),
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Building, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Building, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Building, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrNameRequired
		}
		b.Name = strings.TrimSpace(*req.Name)
	}
	if req.Address != nil {
		b.Address = strings.TrimSpace(*req.Address)
	}

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	// Check existence first
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
