package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context, filter Filter) ([]*User, int, error)
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
	SetRoom(ctx context.Context, id string, roomID *string) error

	// AssignRoomGuarded places the user in the room only while fewer than
	// capacity users occupy it. The count and the update run in a single
	// transaction serialized per room, so racing assignments cannot both
	// take the last free spot. Returns ErrRoomCapacityExceeded when full.
	AssignRoomGuarded(ctx context.Context, userID, roomID string, capacity int) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

const userColumns = `
	u.id, u.email, u.password_hash, u.first_name, u.last_name, u.role, u.is_active,
	u.room_id, r.room_number, r.building_id, b.name,
	u.created_at, u.last_login_at
`

const userJoins = `
	FROM public.users u
	LEFT JOIN public.rooms r ON u.room_id = r.id
	LEFT JOIN public.buildings b ON r.building_id = b.id
`

func scanUser(row pgx.Row) (*User, error) {
	var u User
	err := row.Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName, &u.Role, &u.IsActive,
		&u.RoomID, &u.RoomNumber, &u.BuildingID, &u.BuildingName,
		&u.CreatedAt, &u.LastLoginAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *pgxRepository) Create(ctx context.Context, u *User) error {
	const query = `
		INSERT INTO public.users (email, password_hash, first_name, last_name, role, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	err := r.pool.QueryRow(ctx, query,
		u.Email, u.PasswordHash, u.FirstName, u.LastName, u.Role, u.IsActive,
	).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrEmailAlreadyUsed
		}
		return fmt.Errorf("create user failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*User, error) {
	query := "SELECT " + userColumns + userJoins + " WHERE u.id = $1"

	u, err := scanUser(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user failed: %w", err)
	}
	return u, nil
}

func (r *pgxRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	query := "SELECT " + userColumns + userJoins + " WHERE u.email = $1"

	u, err := scanUser(r.pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user by email failed: %w", err)
	}
	return u, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*User, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"u.id", "u.email", "u.password_hash", "u.first_name", "u.last_name", "u.role", "u.is_active",
		"u.room_id", "r.room_number", "r.building_id", "b.name",
		"u.created_at", "u.last_login_at",
		"count(*) OVER() as total_count",
	).
		From("public.users u").
		LeftJoin("public.rooms r ON u.room_id = r.id").
		LeftJoin("public.buildings b ON r.building_id = b.id")

	if filter.Keyword != "" {
		like := "%" + filter.Keyword + "%"
		query = query.Where(squirrel.Or{
			squirrel.ILike{"u.first_name": like},
			squirrel.ILike{"u.last_name": like},
			squirrel.ILike{"u.email": like},
		})
	}
	if filter.BuildingID != "" {
		query = query.Where(squirrel.Eq{"r.building_id": filter.BuildingID})
	}
	if filter.IsActive != nil {
		query = query.Where(squirrel.Eq{"u.is_active": *filter.IsActive})
	}

	query = query.OrderBy("u.last_name ASC", "u.first_name ASC")

	// Pagination
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
		return nil, 0, fmt.Errorf("build list users query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list users failed: %w", err)
	}
	defer rows.Close()

	var result []*User
	var total int

	for rows.Next() {
		var u User
		if err := rows.Scan(
			&u.ID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName, &u.Role, &u.IsActive,
			&u.RoomID, &u.RoomNumber, &u.BuildingID, &u.BuildingName,
			&u.CreatedAt, &u.LastLoginAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan user failed: %w", err)
		}
		result = append(result, &u)
	}

	return result, total, nil
}

func (r *pgxRepository) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	const query = `UPDATE public.users SET last_login_at = $2 WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id, at)
	if err != nil {
		return fmt.Errorf("update last login failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) SetRoom(ctx context.Context, id string, roomID *string) error {
	const query = `UPDATE public.users SET room_id = $2 WHERE id = $1`
	ct, err := r.pool.Exec(ctx, query, id, roomID)
	if err != nil {
		return fmt.Errorf("set user room failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) AssignRoomGuarded(ctx context.Context, userID, roomID string, capacity int) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin assign room tx failed: %w", err)
	}
	defer tx.Rollback(ctx)

	// Transaction-scoped advisory lock on the room. Released automatically
	// at commit/rollback.
	_, err = tx.Exec(ctx,
		`SELECT pg_advisory_xact_lock(hashtextextended('user:room:' || $1::text, 0))`,
		roomID,
	)
	if err != nil {
		return fmt.Errorf("acquire room lock failed: %w", err)
	}

	var occupants int
	err = tx.QueryRow(ctx,
		`SELECT count(*) FROM public.users WHERE room_id = $1`,
		roomID,
	).Scan(&occupants)
	if err != nil {
		return fmt.Errorf("count room occupants failed: %w", err)
	}
	if occupants >= capacity {
		return ErrRoomCapacityExceeded
	}

	ct, err := tx.Exec(ctx,
		`UPDATE public.users SET room_id = $2 WHERE id = $1`,
		userID, roomID,
	)
	if err != nil {
		return fmt.Errorf("set user room failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit assign room failed: %w", err)
	}
	return nil
}
