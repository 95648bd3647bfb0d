package reservation

import (
	"context"
	"errors"
	"time"

	"github.com/montelzek/mydorm-backend/internal/resource"
	"github.com/montelzek/mydorm-backend/internal/user"
)

// CreateRequest carries the raw client input for a new reservation. Times
// arrive as strings because format tolerance is part of the contract: both
// offset-qualified and bare local date-times are accepted.
type CreateRequest struct {
	ResourceID string
	UserID     string
	StartTime  string
	EndTime    string
}

// AdminQuery carries the admin listing filters before date parsing.
type AdminQuery struct {
	ResourceID string
	BuildingID string
	Date       string
	Search     string

	Page     int
	PageSize int
	SortDesc bool
}

type Service interface {
	// Create runs the full validation pipeline and commits the reservation.
	// Rules run in a fixed order and the first violation is returned.
	Create(ctx context.Context, req CreateRequest) (*Reservation, error)

	// Cancel cancels a confirmed reservation. Non-owners are rejected unless
	// bypassOwnership is set (admin cancellation). Past reservations cannot
	// be cancelled; cancelling twice reports ErrAlreadyCancelled.
	Cancel(ctx context.Context, id, actorID string, bypassOwnership bool) error

	GetByID(ctx context.Context, id string) (*Reservation, error)
	ListByUser(ctx context.Context, userID string) ([]*Reservation, error)

	// AvailableSlots returns the free catalog windows of a resource on the
	// given YYYY-MM-DD date, in dormitory wall-clock terms.
	AvailableSlots(ctx context.Context, resourceID, date string) ([]TimeWindow, error)

	// AdminPage lists future confirmed reservations with conjunctive
	// filters, sorted by start time.
	AdminPage(ctx context.Context, q AdminQuery) ([]*Reservation, int, error)
}

type service struct {
	repo       Repository
	resources  resource.Service
	users      user.Service
	normalizer *Normalizer
	validator  *Validator
	now        func() time.Time
}

func NewService(repo Repository, resources resource.Service, users user.Service, loc *time.Location, now func() time.Time) Service {
	if now == nil {
		now = time.Now
	}
	return &service{
		repo:       repo,
		resources:  resources,
		users:      users,
		normalizer: NewNormalizer(loc),
		validator:  NewValidator(loc, now),
		now:        now,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Reservation, error) {
	start, err := s.normalizer.Parse(req.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := s.normalizer.Parse(req.EndTime)
	if err != nil {
		return nil, err
	}

	if err := s.validator.ValidateWindow(start, end); err != nil {
		return nil, err
	}

	res, err := s.resources.GetByID(ctx, req.ResourceID)
	if err != nil {
		if errors.Is(err, resource.ErrNotFound) {
			return nil, ErrResourceNotFound
		}
		return nil, err
	}
	if !res.IsActive {
		return nil, ErrResourceNotFound
	}

	u, err := s.users.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if err := s.validator.ValidateRules(res, u, start, end); err != nil {
		return nil, err
	}

	rsv := &Reservation{
		ResourceID: res.ID,
		UserID:     u.ID,
		StartTime:  start,
		EndTime:    end,
		Status:     StatusConfirmed,
	}
	if err := s.repo.CreateConfirmed(ctx, rsv); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, rsv.ID)
}

func (s *service) Cancel(ctx context.Context, id, actorID string, bypassOwnership bool) error {
	rsv, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !bypassOwnership && rsv.UserID != actorID {
		return ErrNotOwner
	}
	if rsv.StartTime.In(s.normalizer.Zone()).Before(s.now().In(s.normalizer.Zone())) {
		return ErrCancelPast
	}
	if rsv.Status != StatusConfirmed {
		return ErrAlreadyCancelled
	}
	return s.repo.Cancel(ctx, id)
}

func (s *service) GetByID(ctx context.Context, id string) (*Reservation, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListByUser(ctx context.Context, userID string) ([]*Reservation, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *service) AvailableSlots(ctx context.Context, resourceID, date string) ([]TimeWindow, error) {
	day, err := s.normalizer.ParseDate(date)
	if err != nil {
		return nil, err
	}

	res, err := s.resources.GetByID(ctx, resourceID)
	if err != nil {
		if errors.Is(err, resource.ErrNotFound) {
			return nil, ErrResourceNotFound
		}
		return nil, err
	}
	if !res.IsActive {
		return nil, ErrResourceNotFound
	}

	booked, err := s.repo.FindConfirmedWindows(ctx, res.ID, day, day.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	if res.Type == resource.TypeLaundry {
		return AvailableLaundrySlots(booked), nil
	}
	return AvailableStandardSlots(booked), nil
}

func (s *service) AdminPage(ctx context.Context, q AdminQuery) ([]*Reservation, int, error) {
	filter := AdminFilter{
		ResourceID: q.ResourceID,
		BuildingID: q.BuildingID,
		Search:     q.Search,
		Page:       q.Page,
		PageSize:   q.PageSize,
		SortDesc:   q.SortDesc,
	}
	if q.Date != "" {
		day, err := s.normalizer.ParseDate(q.Date)
		if err != nil {
			return nil, 0, err
		}
		filter.Date = &day
	}
	return s.repo.AdminPage(ctx, filter, s.now().In(s.normalizer.Zone()))
}
