package room

import (
	"context"
	"strings"

	"github.com/montelzek/mydorm-backend/internal/building"
)

type CreateRequest struct {
	Number     string
	Capacity   int
	BuildingID string
}

type UpdateRequest struct {
	Number   *string
	Capacity *int
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Room, error)
	GetByID(ctx context.Context, id string) (*Room, error)
	List(ctx context.Context, filter Filter) ([]*Room, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Room, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo        Repository
	bldgService building.Service
}

func NewService(repo Repository, bldgService building.Service) Service {
	return &service{
		repo:        repo,
		bldgService: bldgService,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Room, error) {
	if strings.TrimSpace(req.Number) == "" {
		return nil, ErrNumberRequired
	}
	if req.Capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	if req.BuildingID == "" {
		return nil, ErrInvalidBuilding
	}

	// Validation: Check if Building exists
	if _, err := s.bldgService.GetByID(ctx, req.BuildingID); err != nil {
		return nil, ErrInvalidBuilding
	}

	r := &Room{
		Number:     strings.TrimSpace(req.Number),
		Capacity:   req.Capacity,
		BuildingID: req.BuildingID,
	}

	if err := s.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Room, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Room, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Room, error) {
	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Number != nil {
		if strings.TrimSpace(*req.Number) == "" {
			return nil, ErrNumberRequired
		}
		r.Number = strings.TrimSpace(*req.Number)
	}
	if req.Capacity != nil {
		if *req.Capacity < 1 {
			return nil, ErrInvalidCapacity
		}
		r.Capacity = *req.Capacity
	}

	if err := s.repo.Update(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
