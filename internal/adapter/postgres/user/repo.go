// Package user implements the auth identity repository using PostgreSQL.
package user

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/foundersapp/founders-backend/internal/adapter/postgres"
	"github.com/foundersapp/founders-backend/internal/domain"
)

const table = "users"

var columns = []string{"id", "email", "password_hash", "created_at", "updated_at"}

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

type row struct {
	ID           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (w row) toDomain() domain.User {
	return domain.User{
		ID:           w.ID,
		Email:        w.Email,
		PasswordHash: w.PasswordHash,
		CreatedAt:    w.CreatedAt,
		UpdatedAt:    w.UpdatedAt,
	}
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	sql, args, err := builder.Select(columns...).From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	var w row
	if err := pgxscan.Get(ctx, r.q(ctx), &w, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	u := w.toDomain()
	return &u, nil
}

// GetByEmail returns a user by email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	sql, args, err := builder.Select(columns...).From(table).
		Where(sq.Eq{"email": email}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}

	var w row
	if err := pgxscan.Get(ctx, r.q(ctx), &w, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}

	u := w.toDomain()
	return &u, nil
}

// Create inserts a new user and returns the persisted record.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	sql, args, err := builder.Insert(table).
		Columns("id", "email", "password_hash").
		Values(u.ID, u.Email, u.PasswordHash).
		Suffix("RETURNING id, email, password_hash, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}

	var w row
	if err := pgxscan.Get(ctx, r.q(ctx), &w, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}

	created := w.toDomain()
	return &created, nil
}
