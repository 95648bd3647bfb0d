package reservation

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/montelzek/mydorm-backend/internal/resource"
	"github.com/montelzek/mydorm-backend/internal/user"
)

// fakeRepo mirrors the repository contract in memory: conflict checks and
// the insert happen under one lock, like the transactional implementation.
type fakeRepo struct {
	mu   sync.Mutex
	seq  int
	rows map[string]*Reservation

	adminFilter AdminFilter
	adminNow    time.Time
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{rows: make(map[string]*Reservation)}
}

func (r *fakeRepo) CreateConfirmed(ctx context.Context, rsv *Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, row := range r.rows {
		if row.Status != StatusConfirmed {
			continue
		}
		if !row.StartTime.Before(rsv.EndTime) || !row.EndTime.After(rsv.StartTime) {
			continue
		}
		if row.ResourceID == rsv.ResourceID {
			return ErrResourceConflict
		}
		if row.UserID == rsv.UserID {
			return ErrUserConflict
		}
	}

	r.seq++
	rsv.ID = fmt.Sprintf("rsv-%d", r.seq)
	rsv.CreatedAt = time.Now()
	rsv.UpdatedAt = rsv.CreatedAt
	stored := *rsv
	r.rows[rsv.ID] = &stored
	return nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id string) (*Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *row
	return &copied, nil
}

func (r *fakeRepo) ListByUser(ctx context.Context, userID string) ([]*Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*Reservation
	for _, row := range r.rows {
		if row.UserID == userID {
			copied := *row
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeRepo) Cancel(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok || row.Status != StatusConfirmed {
		return ErrAlreadyCancelled
	}
	row.Status = StatusCancelled
	return nil
}

func (r *fakeRepo) FindConfirmedWindows(ctx context.Context, resourceID string, dayStart, dayEnd time.Time) ([]TimeWindow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []TimeWindow
	for _, row := range r.rows {
		if row.ResourceID != resourceID || row.Status != StatusConfirmed {
			continue
		}
		if row.StartTime.Before(dayStart) || !row.StartTime.Before(dayEnd) {
			continue
		}
		out = append(out, TimeWindow{Start: ClockOf(row.StartTime), End: ClockOf(row.EndTime)})
	}
	return out, nil
}

func (r *fakeRepo) AdminPage(ctx context.Context, filter AdminFilter, now time.Time) ([]*Reservation, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.adminFilter = filter
	r.adminNow = now

	// Same scope the SQL enforces: confirmed rows starting strictly after
	// now, narrowed by the optional filters.
	var out []*Reservation
	for _, row := range r.rows {
		if row.Status != StatusConfirmed || !row.StartTime.After(now) {
			continue
		}
		if filter.ResourceID != "" && row.ResourceID != filter.ResourceID {
			continue
		}
		copied := *row
		out = append(out, &copied)
	}
	return out, len(out), nil
}

type fakeResources struct {
	byID map[string]*resource.Resource
}

func (f *fakeResources) GetByID(ctx context.Context, id string) (*resource.Resource, error) {
	res, ok := f.byID[id]
	if !ok {
		return nil, resource.ErrNotFound
	}
	return res, nil
}

func (f *fakeResources) Create(ctx context.Context, req resource.CreateRequest) (*resource.Resource, error) {
	return nil, nil
}
func (f *fakeResources) List(ctx context.Context, filter resource.Filter) ([]*resource.Resource, int, error) {
	return nil, 0, nil
}
func (f *fakeResources) Update(ctx context.Context, id string, req resource.UpdateRequest) (*resource.Resource, error) {
	return nil, nil
}
func (f *fakeResources) Delete(ctx context.Context, id string) error { return nil }

type fakeUsers struct {
	byID map[string]*user.User
}

func (f *fakeUsers) GetByID(ctx context.Context, id string) (*user.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	return u, nil
}

func (f *fakeUsers) Register(ctx context.Context, req user.RegisterRequest) (*user.User, error) {
	return nil, nil
}
func (f *fakeUsers) Login(ctx context.Context, email, password string) (*user.User, error) {
	return nil, nil
}
func (f *fakeUsers) List(ctx context.Context, filter user.Filter) ([]*user.User, int, error) {
	return nil, 0, nil
}
func (f *fakeUsers) AssignRoom(ctx context.Context, userID, roomID string) (*user.User, error) {
	return nil, nil
}

type fixture struct {
	repo    *fakeRepo
	service Service
	loc     *time.Location
}

func newFixture(t *testing.T, now time.Time) *fixture {
	t.Helper()
	loc := warsaw(t)

	bldg1 := "bldg-1"
	repo := newFakeRepo()
	resources := &fakeResources{byID: map[string]*resource.Resource{
		"std-1": {ID: "std-1", Name: "Common Room", Type: resource.TypeStandard, BuildingID: bldg1, IsActive: true},
		"lnd-1": {ID: "lnd-1", Name: "Laundry A", Type: resource.TypeLaundry, BuildingID: bldg1, IsActive: true},
		"off-1": {ID: "off-1", Name: "Closed Room", Type: resource.TypeStandard, BuildingID: bldg1, IsActive: false},
	}}
	users := &fakeUsers{byID: map[string]*user.User{
		"anna": {ID: "anna", FirstName: "Anna", LastName: "Nowak", Role: user.RoleResident, BuildingID: &bldg1},
		"jan":  {ID: "jan", FirstName: "Jan", LastName: "Kowalski", Role: user.RoleResident, BuildingID: &bldg1},
	}}

	return &fixture{
		repo:    repo,
		service: NewService(repo, resources, users, loc, fixedClock(now)),
		loc:     loc,
	}
}

func TestServiceCreate(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Warsaw")
	require.NoError(t, err)
	now := time.Date(2026, 7, 10, 12, 0, 0, 0, loc)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		f := newFixture(t, now)
		rsv, err := f.service.Create(ctx, CreateRequest{
			ResourceID: "std-1",
			UserID:     "anna",
			StartTime:  "2026-07-11T09:00:00",
			EndTime:    "2026-07-11T11:00:00",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, rsv.ID)
		assert.Equal(t, StatusConfirmed, rsv.Status)
		assert.Equal(t, 9, rsv.StartTime.In(f.loc).Hour())
		assert.Equal(t, 11, rsv.EndTime.In(f.loc).Hour())
	})

	t.Run("zoned and zone-less input create the same window", func(t *testing.T) {
		f := newFixture(t, now)
		first, err := f.service.Create(ctx, CreateRequest{
			ResourceID: "std-1", UserID: "anna",
			StartTime: "2026-07-11T09:00:00", EndTime: "2026-07-11T10:00:00",
		})
		require.NoError(t, err)

		// Same instant expressed with a UTC offset collides.
		_, err = f.service.Create(ctx, CreateRequest{
			ResourceID: "std-1", UserID: "jan",
			StartTime: "2026-07-11T07:00:00Z", EndTime: "2026-07-11T08:00:00Z",
		})
		assert.ErrorIs(t, err, ErrResourceConflict)
		assert.Equal(t, 9, first.StartTime.In(f.loc).Hour())
	})

	t.Run("unparseable time wins over every later rule", func(t *testing.T) {
		f := newFixture(t, now)
		_, err := f.service.Create(ctx, CreateRequest{
			ResourceID: "missing", UserID: "ghost",
			StartTime: "bogus", EndTime: "2026-07-11T10:00:00",
		})
		assert.ErrorIs(t, err, ErrInvalidTimeFormat)
	})

	t.Run("window sanity before resource lookup", func(t *testing.T) {
		f := newFixture(t, now)
		_, err := f.service.Create(ctx, CreateRequest{
			ResourceID: "missing", UserID: "anna",
			StartTime: "2026-07-11T11:00:00", EndTime: "2026-07-11T10:00:00",
		})
		assert.ErrorIs(t, err, ErrInvalidWindow)
	})

	t.Run("unknown resource", func(t *testing.T) {
		f := newFixture(t, now)
		_, err := f.service.Create(ctx, CreateRequest{
			ResourceID: "missing", UserID: "anna",
			StartTime: "2026-07-11T09:00:00", EndTime: "2026-07-11T10:00:00",
		})
		assert.ErrorIs(t, err, ErrResourceNotFound)
	})

	t.Run("inactive resource behaves as missing", func(t *testing.T) {
		f := newFixture(t, now)
		_, err := f.service.Create(ctx, CreateRequest{
			ResourceID: "off-1", UserID: "anna",
			StartTime: "2026-07-11T09:00:00", EndTime: "2026-07-11T10:00:00",
		})
		assert.ErrorIs(t, err, ErrResourceNotFound)
	})

	t.Run("unknown user", func(t *testing.T) {
		f := newFixture(t, now)
		_, err := f.service.Create(ctx, CreateRequest{
			ResourceID: "std-1", UserID: "ghost",
			StartTime: "2026-07-11T09:00:00", EndTime: "2026-07-11T10:00:00",
		})
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("resource conflict", func(t *testing.T) {
		f := newFixture(t, now)
		_, err := f.service.Create(ctx, CreateRequest{
			ResourceID: "std-1", UserID: "anna",
			StartTime: "2026-07-11T09:00:00", EndTime: "2026-07-11T11:00:00",
		})
		require.NoError(t, err)

		_, err = f.service.Create(ctx, CreateRequest{
			ResourceID: "std-1", UserID: "jan",
			StartTime: "2026-07-11T10:00:00", EndTime: "2026-07-11T12:00:00",
		})
		assert.ErrorIs(t, err, ErrResourceConflict)
	})

	t.Run("back-to-back windows do not conflict", func(t *testing.T) {
		f := newFixture(t, now)
		_, err := f.service.Create(ctx, CreateRequest{
			ResourceID: "std-1", UserID: "anna",
			StartTime: "2026-07-11T09:00:00", EndTime: "2026-07-11T10:00:00",
		})
		require.NoError(t, err)

		_, err = f.service.Create(ctx, CreateRequest{
			ResourceID: "std-1", UserID: "jan",
			StartTime: "2026-07-11T10:00:00", EndTime: "2026-07-11T11:00:00",
		})
		assert.NoError(t, err)
	})

	t.Run("user double-booked on another resource", func(t *testing.T) {
		f := newFixture(t, now)
		_, err := f.service.Create(ctx, CreateRequest{
			ResourceID: "std-1", UserID: "anna",
			StartTime: "2026-07-11T09:00:00", EndTime: "2026-07-11T11:00:00",
		})
		require.NoError(t, err)

		_, err = f.service.Create(ctx, CreateRequest{
			ResourceID: "lnd-1", UserID: "anna",
			StartTime: "2026-07-11T08:00:00", EndTime: "2026-07-11T11:00:00",
		})
		assert.ErrorIs(t, err, ErrUserConflict)
	})

	t.Run("racing requests for one slot produce one reservation", func(t *testing.T) {
		f := newFixture(t, now)

		const attempts = 16
		users := []string{"anna", "jan"}
		errs := make([]error, attempts)

		var wg sync.WaitGroup
		for i := 0; i < attempts; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, errs[i] = f.service.Create(ctx, CreateRequest{
					ResourceID: "std-1",
					UserID:     users[i%len(users)],
					StartTime:  "2026-07-11T09:00:00",
					EndTime:    "2026-07-11T10:00:00",
				})
			}(i)
		}
		wg.Wait()

		succeeded := 0
		for _, err := range errs {
			if err == nil {
				succeeded++
			} else {
				assert.True(t,
					err == ErrResourceConflict || err == ErrUserConflict,
					"unexpected error: %v", err)
			}
		}
		assert.Equal(t, 1, succeeded)
	})
}

func TestServiceCancel(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Warsaw")
	require.NoError(t, err)
	now := time.Date(2026, 7, 10, 12, 0, 0, 0, loc)
	ctx := context.Background()

	create := func(t *testing.T, f *fixture) string {
		t.Helper()
		rsv, err := f.service.Create(ctx, CreateRequest{
			ResourceID: "std-1", UserID: "anna",
			StartTime: "2026-07-11T09:00:00", EndTime: "2026-07-11T10:00:00",
		})
		require.NoError(t, err)
		return rsv.ID
	}

	t.Run("owner cancels", func(t *testing.T) {
		f := newFixture(t, now)
		id := create(t, f)
		require.NoError(t, f.service.Cancel(ctx, id, "anna", false))

		rsv, err := f.service.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, StatusCancelled, rsv.Status)
	})

	t.Run("cancelled slot becomes bookable again", func(t *testing.T) {
		f := newFixture(t, now)
		id := create(t, f)
		require.NoError(t, f.service.Cancel(ctx, id, "anna", false))

		_, err := f.service.Create(ctx, CreateRequest{
			ResourceID: "std-1", UserID: "jan",
			StartTime: "2026-07-11T09:00:00", EndTime: "2026-07-11T10:00:00",
		})
		assert.NoError(t, err)
	})

	t.Run("non-owner rejected", func(t *testing.T) {
		f := newFixture(t, now)
		id := create(t, f)
		assert.ErrorIs(t, f.service.Cancel(ctx, id, "jan", false), ErrNotOwner)
	})

	t.Run("admin bypasses ownership", func(t *testing.T) {
		f := newFixture(t, now)
		id := create(t, f)
		assert.NoError(t, f.service.Cancel(ctx, id, "someone-else", true))
	})

	t.Run("second cancel reports already cancelled", func(t *testing.T) {
		f := newFixture(t, now)
		id := create(t, f)
		require.NoError(t, f.service.Cancel(ctx, id, "anna", false))
		assert.ErrorIs(t, f.service.Cancel(ctx, id, "anna", false), ErrAlreadyCancelled)
	})

	t.Run("past reservation cannot be cancelled", func(t *testing.T) {
		f := newFixture(t, now)
		id := create(t, f)

		// Same data, clock moved past the start.
		late := NewService(f.repo, &fakeResources{}, &fakeUsers{}, loc,
			fixedClock(time.Date(2026, 7, 11, 9, 30, 0, 0, loc)))
		assert.ErrorIs(t, late.Cancel(ctx, id, "anna", false), ErrCancelPast)
	})

	t.Run("unknown reservation", func(t *testing.T) {
		f := newFixture(t, now)
		assert.ErrorIs(t, f.service.Cancel(ctx, "missing", "anna", false), ErrNotFound)
	})
}

func TestServiceAvailableSlots(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Warsaw")
	require.NoError(t, err)
	now := time.Date(2026, 7, 10, 12, 0, 0, 0, loc)
	ctx := context.Background()

	t.Run("standard resource loses overlapped slots", func(t *testing.T) {
		f := newFixture(t, now)
		_, err := f.service.Create(ctx, CreateRequest{
			ResourceID: "std-1", UserID: "anna",
			StartTime: "2026-07-11T10:00:00", EndTime: "2026-07-11T13:00:00",
		})
		require.NoError(t, err)

		slots, err := f.service.AvailableSlots(ctx, "std-1", "2026-07-11")
		require.NoError(t, err)
		assert.Len(t, slots, 13)
	})

	t.Run("laundry resource loses the booked slot only", func(t *testing.T) {
		f := newFixture(t, now)
		_, err := f.service.Create(ctx, CreateRequest{
			ResourceID: "lnd-1", UserID: "anna",
			StartTime: "2026-07-11T11:00:00", EndTime: "2026-07-11T14:00:00",
		})
		require.NoError(t, err)

		slots, err := f.service.AvailableSlots(ctx, "lnd-1", "2026-07-11")
		require.NoError(t, err)
		assert.Len(t, slots, 4)
	})

	t.Run("bookings on another date do not leak in", func(t *testing.T) {
		f := newFixture(t, now)
		_, err := f.service.Create(ctx, CreateRequest{
			ResourceID: "lnd-1", UserID: "anna",
			StartTime: "2026-07-11T11:00:00", EndTime: "2026-07-11T14:00:00",
		})
		require.NoError(t, err)

		slots, err := f.service.AvailableSlots(ctx, "lnd-1", "2026-07-12")
		require.NoError(t, err)
		assert.Len(t, slots, 5)
	})

	t.Run("invalid date", func(t *testing.T) {
		f := newFixture(t, now)
		_, err := f.service.AvailableSlots(ctx, "std-1", "11.07.2026")
		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("unknown resource", func(t *testing.T) {
		f := newFixture(t, now)
		_, err := f.service.AvailableSlots(ctx, "missing", "2026-07-11")
		assert.ErrorIs(t, err, ErrResourceNotFound)
	})

	t.Run("inactive resource behaves as missing", func(t *testing.T) {
		// Must match the create path: an unbookable resource publishes no
		// slots either.
		f := newFixture(t, now)
		_, err := f.service.AvailableSlots(ctx, "off-1", "2026-07-11")
		assert.ErrorIs(t, err, ErrResourceNotFound)
	})
}

func TestServiceAdminPage(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Warsaw")
	require.NoError(t, err)
	now := time.Date(2026, 7, 10, 12, 0, 0, 0, loc)
	ctx := context.Background()

	t.Run("filters forwarded with parsed date", func(t *testing.T) {
		f := newFixture(t, now)
		_, _, err := f.service.AdminPage(ctx, AdminQuery{
			ResourceID: "std-1",
			BuildingID: "bldg-1",
			Date:       "2026-07-11",
			Search:     "nowak",
			Page:       2,
			PageSize:   10,
		})
		require.NoError(t, err)

		got := f.repo.adminFilter
		assert.Equal(t, "std-1", got.ResourceID)
		assert.Equal(t, "bldg-1", got.BuildingID)
		assert.Equal(t, "nowak", got.Search)
		assert.Equal(t, 2, got.Page)
		require.NotNil(t, got.Date)
		assert.Equal(t, time.Date(2026, 7, 11, 0, 0, 0, 0, loc), *got.Date)
		assert.True(t, f.repo.adminNow.Equal(now))
	})

	t.Run("empty date stays unset", func(t *testing.T) {
		f := newFixture(t, now)
		_, _, err := f.service.AdminPage(ctx, AdminQuery{})
		require.NoError(t, err)
		assert.Nil(t, f.repo.adminFilter.Date)
	})

	t.Run("invalid date rejected", func(t *testing.T) {
		f := newFixture(t, now)
		_, _, err := f.service.AdminPage(ctx, AdminQuery{Date: "next tuesday"})
		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("cancelled and past rows stay out of scope", func(t *testing.T) {
		f := newFixture(t, now)
		seed := func(id string, start time.Time, status Status) {
			f.repo.rows[id] = &Reservation{
				ID:         id,
				ResourceID: "std-1",
				UserID:     "anna",
				StartTime:  start,
				EndTime:    start.Add(time.Hour),
				Status:     status,
			}
		}
		seed("future-confirmed", now.Add(24*time.Hour), StatusConfirmed)
		seed("future-cancelled", now.Add(24*time.Hour), StatusCancelled)
		seed("past-confirmed", now.Add(-24*time.Hour), StatusConfirmed)
		seed("starting-now", now, StatusConfirmed)

		rows, total, err := f.service.AdminPage(ctx, AdminQuery{})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, rows, 1)
		assert.Equal(t, "future-confirmed", rows[0].ID)
	})
}
