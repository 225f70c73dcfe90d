// Package profile implements the profiles collection repository using
// PostgreSQL. It exposes per-collection operations only; the read-time
// post/profile join belongs to the service layer.
package profile

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/foundersapp/founders-backend/internal/adapter/postgres"
	"github.com/foundersapp/founders-backend/internal/domain"
)

const table = "profiles"

var columns = []string{"id", "username", "name", "bio", "profile_picture_url", "created_at", "updated_at"}

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides profile persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new profile repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

type row struct {
	ID                uuid.UUID `db:"id"`
	Username          string    `db:"username"`
	Name              string    `db:"name"`
	Bio               string    `db:"bio"`
	ProfilePictureURL *string   `db:"profile_picture_url"`
	CreatedAt         time.Time `db:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"`
}

func (w row) toDomain() domain.Profile {
	return domain.Profile{
		ID:                w.ID,
		Username:          w.Username,
		Name:              w.Name,
		Bio:               w.Bio,
		ProfilePictureURL: w.ProfilePictureURL,
		CreatedAt:         w.CreatedAt,
		UpdatedAt:         w.UpdatedAt,
	}
}

// GetByID returns a profile by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	sql, args, err := builder.Select(columns...).From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "profile", id)
	}

	var w row
	if err := pgxscan.Get(ctx, r.q(ctx), &w, sql, args...); err != nil {
		return nil, postgres.MapError(err, "profile", id)
	}

	p := w.toDomain()
	return &p, nil
}

// GetByIDs returns the profiles for the given ids. Missing ids are simply
// absent from the result; callers decide fallback behavior.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Profile, error) {
	if len(ids) == 0 {
		return []domain.Profile{}, nil
	}

	sql, args, err := builder.Select(columns...).From(table).
		Where(sq.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "profile", uuid.Nil)
	}

	var rows []row
	if err := pgxscan.Select(ctx, r.q(ctx), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "profile", uuid.Nil)
	}

	profiles := make([]domain.Profile, 0, len(rows))
	for _, w := range rows {
		profiles = append(profiles, w.toDomain())
	}
	return profiles, nil
}

// List returns the entire profile directory in the store's enumeration
// order (creation order). Directory search filters client-side over this
// full set, which bounds the design to directories of modest size.
func (r *Repo) List(ctx context.Context) ([]domain.Profile, error) {
	sql, args, err := builder.Select(columns...).From(table).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "profile", uuid.Nil)
	}

	var rows []row
	if err := pgxscan.Select(ctx, r.q(ctx), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "profile", uuid.Nil)
	}

	profiles := make([]domain.Profile, 0, len(rows))
	for _, w := range rows {
		profiles = append(profiles, w.toDomain())
	}
	return profiles, nil
}

// GetByUsername returns a profile by its unique username.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.Profile, error) {
	sql, args, err := builder.Select(columns...).From(table).
		Where(sq.Eq{"username": username}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "profile", uuid.Nil)
	}

	var w row
	if err := pgxscan.Get(ctx, r.q(ctx), &w, sql, args...); err != nil {
		return nil, postgres.MapError(err, "profile", uuid.Nil)
	}

	p := w.toDomain()
	return &p, nil
}

// Create inserts a new profile and returns the persisted record.
func (r *Repo) Create(ctx context.Context, p *domain.Profile) (*domain.Profile, error) {
	sql, args, err := builder.Insert(table).
		Columns("id", "username", "name", "bio", "profile_picture_url").
		Values(p.ID, p.Username, p.Name, p.Bio, p.ProfilePictureURL).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "profile", p.ID)
	}

	var w row
	if err := pgxscan.Get(ctx, r.q(ctx), &w, sql, args...); err != nil {
		return nil, postgres.MapError(err, "profile", p.ID)
	}

	created := w.toDomain()
	return &created, nil
}

// Update modifies name and bio for the given profile. Nil fields are left
// unchanged.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, name *string, bio *string) (*domain.Profile, error) {
	sql, args, err := builder.Update(table).
		Set("name", sq.Expr("COALESCE(?, name)", name)).
		Set("bio", sq.Expr("COALESCE(?, bio)", bio)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "profile", id)
	}

	var w row
	if err := pgxscan.Get(ctx, r.q(ctx), &w, sql, args...); err != nil {
		return nil, postgres.MapError(err, "profile", id)
	}

	updated := w.toDomain()
	return &updated, nil
}

// UpdatePicture sets the profile picture URL.
func (r *Repo) UpdatePicture(ctx context.Context, id uuid.UUID, url string) (*domain.Profile, error) {
	sql, args, err := builder.Update(table).
		Set("profile_picture_url", url).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "profile", id)
	}

	var w row
	if err := pgxscan.Get(ctx, r.q(ctx), &w, sql, args...); err != nil {
		return nil, postgres.MapError(err, "profile", id)
	}

	updated := w.toDomain()
	return &updated, nil
}

func columnList() string {
	s := columns[0]
	for _, c := range columns[1:] {
		s += ", " + c
	}
	return s
}
