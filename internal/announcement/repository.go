package announcement

import (
	"context"
	"errors"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, a *Announcement) error
	GetByID(ctx context.Context, id string) (*Announcement, error)
	List(ctx context.Context, filter Filter) ([]*Announcement, int, error)
	Update(ctx context.Context, a *Announcement) error
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var selectColumns = []string{
	"a.id", "a.title", "a.content", "a.author_id",
	"u.first_name", "u.last_name",
	"a.building_id", "b.name",
	"a.created_at", "a.updated_at",
}

func scanAnnouncement(row pgx.Row) (*Announcement, int, error) {
	var a Announcement
	var total int
	err := row.Scan(
		&a.ID, &a.Title, &a.Content, &a.AuthorID,
		&a.AuthorFirstName, &a.AuthorLastName,
		&a.BuildingID, &a.BuildingName,
		&a.CreatedAt, &a.UpdatedAt, &total,
	)
	if err != nil {
		return nil, 0, err
	}
	return &a, total, nil
}

func (r *pgxRepository) Create(ctx context.Context, a *Announcement) error {
	query, args, err := psql.Insert("public.announcements").
		Columns("title", "content", "author_id", "building_id").
		Values(a.Title, a.Content, a.AuthorID, a.BuildingID).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return err
	}

	return r.pool.QueryRow(ctx, query, args...).
		Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Announcement, error) {
	cols := append(append([]string{}, selectColumns...), "0")
	query, args, err := psql.Select(cols...).
		From("public.announcements a").
		LeftJoin("public.users u ON a.author_id = u.id").
		LeftJoin("public.buildings b ON a.building_id = b.id").
		Where(squirrel.Eq{"a.id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	a, _, err := scanAnnouncement(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Announcement, int, error) {
	cols := append(append([]string{}, selectColumns...), "count(*) OVER() as total_count")
	query := psql.Select(cols...).
		From("public.announcements a").
		LeftJoin("public.users u ON a.author_id = u.id").
		LeftJoin("public.buildings b ON a.building_id = b.id")

	if filter.Keyword != "" {
		like := "%" + filter.Keyword + "%"
		query = query.Where(squirrel.Or{
			squirrel.ILike{"a.title": like},
			squirrel.ILike{"a.content": like},
		})
	}

	// Scoped listing still includes dormitory-wide posts.
	if filter.BuildingID != "" {
		query = query.Where(squirrel.Or{
			squirrel.Eq{"a.building_id": filter.BuildingID},
			squirrel.Eq{"a.building_id": nil},
		})
	}

	sortBy := "a.created_at"
	switch filter.SortBy {
	case "title":
		sortBy = "a.title"
	case "updated_at":
		sortBy = "a.updated_at"
	}
	sortOrder := "DESC"
	if strings.EqualFold(filter.SortOrder, "asc") {
		sortOrder = "ASC"
	}
	query = query.OrderBy(sortBy + " " + sortOrder)

	offset := (filter.Page - 1) * filter.PageSize
	query = query.Limit(uint64(filter.PageSize)).Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var announcements []*Announcement
	var total int
	for rows.Next() {
		a, t, err := scanAnnouncement(rows)
		if err != nil {
			return nil, 0, err
		}
		total = t
		announcements = append(announcements, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return announcements, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, a *Announcement) error {
	query, args, err := psql.Update("public.announcements").
		Set("title", a.Title).
		Set("content", a.Content).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": a.ID}).
		ToSql()
	if err != nil {
		return err
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	query, args, err := psql.Delete("public.announcements").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
