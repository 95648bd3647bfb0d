package reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	// CreateConfirmed commits a pre-validated reservation. The conflict
	// checks run inside the same transaction as the insert, serialized per
	// resource and per user with advisory locks, so two racing requests for
	// the same slot cannot both succeed. Returns ErrResourceConflict or
	// ErrUserConflict when the slot is taken.
	CreateConfirmed(ctx context.Context, rsv *Reservation) error

	GetByID(ctx context.Context, id string) (*Reservation, error)
	ListByUser(ctx context.Context, userID string) ([]*Reservation, error)

	// Cancel flips a confirmed reservation to cancelled. Returns
	// ErrAlreadyCancelled when the row exists but is no longer confirmed.
	Cancel(ctx context.Context, id string) error

	// FindConfirmedWindows returns the occupied windows of a resource whose
	// start time falls within [dayStart, dayEnd).
	FindConfirmedWindows(ctx context.Context, resourceID string, dayStart, dayEnd time.Time) ([]TimeWindow, error)

	// AdminPage lists confirmed reservations starting after now, filtered
	// and paginated. Returns the page plus the total match count.
	AdminPage(ctx context.Context, filter AdminFilter, now time.Time) ([]*Reservation, int, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

const reservationColumns = `rv.id, rv.resource_id, r.name, r.resource_type, r.building_id, b.name,
	rv.user_id, u.first_name, u.last_name, rm.number, ub.name,
	rv.start_time, rv.end_time, rv.status, rv.created_at, rv.updated_at`

const reservationJoins = `public.reservations rv
	JOIN public.resources r ON rv.resource_id = r.id
	JOIN public.buildings b ON r.building_id = b.id
	JOIN public.users u ON rv.user_id = u.id
	LEFT JOIN public.rooms rm ON u.room_id = rm.id
	LEFT JOIN public.buildings ub ON rm.building_id = ub.id`

func scanReservation(row pgx.Row) (*Reservation, error) {
	var rsv Reservation
	err := row.Scan(
		&rsv.ID, &rsv.ResourceID, &rsv.ResourceName, &rsv.ResourceType, &rsv.BuildingID, &rsv.BuildingName,
		&rsv.UserID, &rsv.UserFirstName, &rsv.UserLastName, &rsv.UserRoomNumber, &rsv.UserBuildingName,
		&rsv.StartTime, &rsv.EndTime, &rsv.Status, &rsv.CreatedAt, &rsv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rsv, nil
}

func (r *pgxRepository) CreateConfirmed(ctx context.Context, rsv *Reservation) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin create reservation tx failed: %w", err)
	}
	defer tx.Rollback(ctx)

	// Transaction-scoped advisory locks on the resource and the user,
	// acquired in key order so two requests touching the same pair cannot
	// deadlock. Released automatically at commit/rollback.
	_, err = tx.Exec(ctx, `
		SELECT pg_advisory_xact_lock(k)
		FROM (
			SELECT unnest(ARRAY[
				hashtextextended('reservation:resource:' || $1::text, 0),
				hashtextextended('reservation:user:' || $2::text, 0)
			]) AS k
			ORDER BY k
		) locks`,
		rsv.ResourceID, rsv.UserID,
	)
	if err != nil {
		return fmt.Errorf("acquire reservation locks failed: %w", err)
	}

	var taken bool
	err = tx.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM public.reservations
			WHERE resource_id = $1
			  AND status = 'CONFIRMED'
			  AND start_time < $3
			  AND end_time > $2
		)`,
		rsv.ResourceID, rsv.StartTime, rsv.EndTime,
	).Scan(&taken)
	if err != nil {
		return fmt.Errorf("check resource conflict failed: %w", err)
	}
	if taken {
		return ErrResourceConflict
	}

	err = tx.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM public.reservations
			WHERE user_id = $1
			  AND status = 'CONFIRMED'
			  AND start_time < $3
			  AND end_time > $2
		)`,
		rsv.UserID, rsv.StartTime, rsv.EndTime,
	).Scan(&taken)
	if err != nil {
		return fmt.Errorf("check user conflict failed: %w", err)
	}
	if taken {
		return ErrUserConflict
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO public.reservations (resource_id, user_id, start_time, end_time, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`,
		rsv.ResourceID, rsv.UserID, rsv.StartTime, rsv.EndTime, rsv.Status,
	).Scan(&rsv.ID, &rsv.CreatedAt, &rsv.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert reservation failed: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit create reservation failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Reservation, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE rv.id = $1`, reservationColumns, reservationJoins)

	rsv, err := scanReservation(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get reservation failed: %w", err)
	}
	return rsv, nil
}

func (r *pgxRepository) ListByUser(ctx context.Context, userID string) ([]*Reservation, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE rv.user_id = $1 ORDER BY rv.start_time DESC`,
		reservationColumns, reservationJoins)

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list user reservations failed: %w", err)
	}
	defer rows.Close()

	var reservations []*Reservation
	for rows.Next() {
		rsv, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reservation failed: %w", err)
		}
		reservations = append(reservations, rsv)
	}
	return reservations, rows.Err()
}

func (r *pgxRepository) Cancel(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE public.reservations
		SET status = 'CANCELLED', updated_at = now()
		WHERE id = $1 AND status = 'CONFIRMED'`,
		id,
	)
	if err != nil {
		return fmt.Errorf("cancel reservation failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		// The service checks existence and status first; this guards the
		// race between its read and this write.
		return ErrAlreadyCancelled
	}
	return nil
}

func (r *pgxRepository) FindConfirmedWindows(ctx context.Context, resourceID string, dayStart, dayEnd time.Time) ([]TimeWindow, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT start_time, end_time FROM public.reservations
		WHERE resource_id = $1
		  AND status = 'CONFIRMED'
		  AND start_time >= $2
		  AND start_time < $3
		ORDER BY start_time`,
		resourceID, dayStart, dayEnd,
	)
	if err != nil {
		return nil, fmt.Errorf("find reserved windows failed: %w", err)
	}
	defer rows.Close()

	var windows []TimeWindow
	for rows.Next() {
		var start, end time.Time
		if err := rows.Scan(&start, &end); err != nil {
			return nil, fmt.Errorf("scan reserved window failed: %w", err)
		}
		windows = append(windows, TimeWindow{Start: ClockOf(start), End: ClockOf(end)})
	}
	return windows, rows.Err()
}

func (r *pgxRepository) AdminPage(ctx context.Context, filter AdminFilter, now time.Time) ([]*Reservation, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"rv.id", "rv.resource_id", "r.name", "r.resource_type", "r.building_id", "b.name",
		"rv.user_id", "u.first_name", "u.last_name", "rm.number", "ub.name",
		"rv.start_time", "rv.end_time", "rv.status", "rv.created_at", "rv.updated_at",
		"count(*) OVER() as total_count",
	).
		From("public.reservations rv").
		Join("public.resources r ON rv.resource_id = r.id").
		Join("public.buildings b ON r.building_id = b.id").
		Join("public.users u ON rv.user_id = u.id").
		LeftJoin("public.rooms rm ON u.room_id = rm.id").
		LeftJoin("public.buildings ub ON rm.building_id = ub.id").
		Where(squirrel.Eq{"rv.status": StatusConfirmed}).
		Where(squirrel.Gt{"rv.start_time": now})

	if filter.ResourceID != "" {
		query = query.Where(squirrel.Eq{"rv.resource_id": filter.ResourceID})
	}
	if filter.BuildingID != "" {
		query = query.Where(squirrel.Eq{"r.building_id": filter.BuildingID})
	}
	if filter.Date != nil {
		d := *filter.Date
		dayStart := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
		query = query.
			Where(squirrel.GtOrEq{"rv.start_time": dayStart}).
			Where(squirrel.Lt{"rv.start_time": dayStart.AddDate(0, 0, 1)})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(squirrel.Or{
			squirrel.ILike{"u.first_name": pattern},
			squirrel.ILike{"u.last_name": pattern},
			squirrel.ILike{"rm.number": pattern},
			squirrel.ILike{"r.name": pattern},
		})
	}

	orderDir := "ASC"
	if filter.SortDesc {
		orderDir = "DESC"
	}
	query = query.OrderBy("rv.start_time " + orderDir)

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize
	query = query.Limit(uint64(filter.PageSize)).Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build admin reservations query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list admin reservations failed: %w", err)
	}
	defer rows.Close()

	var reservations []*Reservation
	var total int
	for rows.Next() {
		var rsv Reservation
		if err := rows.Scan(
			&rsv.ID, &rsv.ResourceID, &rsv.ResourceName, &rsv.ResourceType, &rsv.BuildingID, &rsv.BuildingName,
			&rsv.UserID, &rsv.UserFirstName, &rsv.UserLastName, &rsv.UserRoomNumber, &rsv.UserBuildingName,
			&rsv.StartTime, &rsv.EndTime, &rsv.Status, &rsv.CreatedAt, &rsv.UpdatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan admin reservation failed: %w", err)
		}
		reservations = append(reservations, &rsv)
	}
	return reservations, total, rows.Err()
}
