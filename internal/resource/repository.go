package resource

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, res *Resource) error
	GetByID(ctx context.Context, id string) (*Resource, error)
	List(ctx context.Context, filter Filter) ([]*Resource, int, error)
	Update(ctx context.Context, res *Resource) error
	Delete(ctx context.Context, id string) error
	NameExists(ctx context.Context, buildingID, name string) (bool, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, res *Resource) error {
	const query = `
		INSERT INTO public.resources (name, description, resource_type, building_id, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	err := r.pool.QueryRow(ctx, query,
		res.Name, res.Description, res.Type, res.BuildingID, res.IsActive,
	).Scan(&res.ID, &res.CreatedAt, &res.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create resource failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Resource, error) {
	const query = `
		SELECT res.id, res.name, res.description, res.resource_type, res.building_id, b.name,
		       res.is_active, res.created_at, res.updated_at
		FROM public.resources res
		JOIN public.buildings b ON res.building_id = b.id
		WHERE res.id = $1
	`
	row := r.pool.QueryRow(ctx, query, id)

	var res Resource
	if err := row.Scan(
		&res.ID, &res.Name, &res.Description, &res.Type, &res.BuildingID, &res.BuildingName,
		&res.IsActive, &res.CreatedAt, &res.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get resource failed: %w", err)
	}
	return &res, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Resource, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"res.id", "res.name", "res.description", "res.resource_type", "res.building_id", "b.name",
		"res.is_active", "res.created_at", "res.updated_at",
		"count(*) OVER() as total_count",
	).
		From("public.resources res").
		Join("public.buildings b ON res.building_id = b.id")

	if filter.BuildingID != "" {
		query = query.Where(squirrel.Eq{"res.building_id": filter.BuildingID})
	}
	if filter.Type != "" {
		query = query.Where(squirrel.Eq{"res.resource_type": filter.Type})
	}
	if filter.IsActive != nil {
		query = query.Where(squirrel.Eq{"res.is_active": *filter.IsActive})
	}

	query = query.OrderBy("res.name ASC")

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
		return nil, 0, fmt.Errorf("build list resources query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list resources failed: %w", err)
	}
	defer rows.Close()

	var result []*Resource
	var total int

	for rows.Next() {
		var res Resource
		if err := rows.Scan(
			&res.ID, &res.Name, &res.Description, &res.Type, &res.BuildingID, &res.BuildingName,
			&res.IsActive, &res.CreatedAt, &res.UpdatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan resource failed: %w", err)
		}
		result = append(result, &res)
	}

	return result, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, res *Resource) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.resources").
		Set("name", res.Name).
		Set("description", res.Description).
		Set("is_active", res.IsActive).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": res.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update resource query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update resource failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.resources").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete resource query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete resource failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) NameExists(ctx context.Context, buildingID, name string) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM public.resources
			WHERE building_id = $1 AND lower(name) = lower($2)
		)
	`
	var exists bool
	if err := r.pool.QueryRow(ctx, query, buildingID, name).Scan(&exists); err != nil {
		return false, fmt.Errorf("check resource name failed: %w", err)
	}
	return exists, nil
}
