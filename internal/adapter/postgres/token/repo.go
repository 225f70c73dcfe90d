// Package token implements the refresh token repository using PostgreSQL.
package token

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/foundersapp/founders-backend/internal/adapter/postgres"
	"github.com/foundersapp/founders-backend/internal/domain"
)

const table = "refresh_tokens"

var columns = []string{"id", "user_id", "token_hash", "expires_at", "created_at", "revoked_at"}

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides refresh token persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new token repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

type row struct {
	ID        uuid.UUID  `db:"id"`
	UserID    uuid.UUID  `db:"user_id"`
	TokenHash string     `db:"token_hash"`
	ExpiresAt time.Time  `db:"expires_at"`
	CreatedAt time.Time  `db:"created_at"`
	RevokedAt *time.Time `db:"revoked_at"`
}

func (w row) toDomain() domain.RefreshToken {
	return domain.RefreshToken{
		ID:        w.ID,
		UserID:    w.UserID,
		TokenHash: w.TokenHash,
		ExpiresAt: w.ExpiresAt,
		CreatedAt: w.CreatedAt,
		RevokedAt: w.RevokedAt,
	}
}

// Create stores a new refresh token hash.
func (r *Repo) Create(ctx context.Context, t *domain.RefreshToken) error {
	sql, args, err := builder.Insert(table).
		Columns("user_id", "token_hash", "expires_at").
		Values(t.UserID, t.TokenHash, t.ExpiresAt).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "refresh_token", t.UserID)
	}

	if _, err := r.q(ctx).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "refresh_token", t.UserID)
	}
	return nil
}

// GetByHash returns a refresh token by its hash.
func (r *Repo) GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	sql, args, err := builder.Select(columns...).From(table).
		Where(sq.Eq{"token_hash": tokenHash}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "refresh_token", uuid.Nil)
	}

	var w row
	if err := pgxscan.Get(ctx, r.q(ctx), &w, sql, args...); err != nil {
		return nil, postgres.MapError(err, "refresh_token", uuid.Nil)
	}

	t := w.toDomain()
	return &t, nil
}

// RevokeByID marks a single token as revoked.
func (r *Repo) RevokeByID(ctx context.Context, id uuid.UUID) error {
	sql, args, err := builder.Update(table).
		Set("revoked_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "revoked_at": nil}).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "refresh_token", id)
	}

	if _, err := r.q(ctx).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "refresh_token", id)
	}
	return nil
}

// RevokeAllByUser marks every live token of a user as revoked (sign-out).
func (r *Repo) RevokeAllByUser(ctx context.Context, userID uuid.UUID) error {
	sql, args, err := builder.Update(table).
		Set("revoked_at", sq.Expr("now()")).
		Where(sq.Eq{"user_id": userID, "revoked_at": nil}).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "refresh_token", userID)
	}

	if _, err := r.q(ctx).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "refresh_token", userID)
	}
	return nil
}

// DeleteExpired removes tokens past their expiry. Intended for cron use.
func (r *Repo) DeleteExpired(ctx context.Context) (int64, error) {
	sql, args, err := builder.Delete(table).
		Where(sq.Expr("expires_at < now()")).
		ToSql()
	if err != nil {
		return 0, postgres.MapError(err, "refresh_token", uuid.Nil)
	}

	tag, err := r.q(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "refresh_token", uuid.Nil)
	}
	return tag.RowsAffected(), nil
}
