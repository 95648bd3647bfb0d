package resource

import (
	"context"
	"strings"

	"github.com/montelzek/mydorm-backend/internal/building"
)

type CreateRequest struct {
	Name        string
	Description string
	Type        string
	BuildingID  string
}

type UpdateRequest struct {
	Name        *string
	Description *string
	IsActive    *bool
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Resource, error)
	GetByID(ctx context.Context, id string) (*Resource, error)
	List(ctx context.Context, filter Filter) ([]*Resource, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Resource, error)
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

func (s *service) Create(ctx context.Context, req CreateRequest) (*Resource, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrEmptyName
	}
	if req.BuildingID == "" {
		return nil, ErrInvalidBuilding
	}

	// Validate resource type is a valid enum value
	validType := false
	for _, t := range ValidTypes {
		if Type(req.Type) == t {
			validType = true
			break
		}
	}
	if !validType {
		return nil, ErrInvalidType
	}

	// Validation: Check if Building exists
	if _, err := s.bldgService.GetByID(ctx, req.BuildingID); err != nil {
		return nil, ErrInvalidBuilding
	}

	// A resource name must be unique within its building.
	taken, err := s.repo.NameExists(ctx, req.BuildingID, req.Name)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrNameTaken
	}

	res := &Resource{
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		Type:        Type(req.Type),
		BuildingID:  req.BuildingID,
		IsActive:    true,
	}

	if err := s.repo.Create(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Resource, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Resource, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Resource, error) {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrEmptyName
		}
		res.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		res.Description = strings.TrimSpace(*req.Description)
	}
	if req.IsActive != nil {
		res.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
