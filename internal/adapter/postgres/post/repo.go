// Package post implements the posts collection repository using PostgreSQL.
//
// posts.user_id deliberately carries no foreign key: a dangling author
// reference must degrade the joined display fields at read time, never fail
// a write or a feed load.
package post

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/foundersapp/founders-backend/internal/adapter/postgres"
	"github.com/foundersapp/founders-backend/internal/domain"
)

const table = "posts"

var columns = []string{"id", "user_id", "content", "likes", "comments", "created_at"}

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides post persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new post repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

type row struct {
	ID        uuid.UUID        `db:"id"`
	UserID    uuid.UUID        `db:"user_id"`
	Content   string           `db:"content"`
	Likes     []uuid.UUID      `db:"likes"`
	Comments  []domain.Comment `db:"comments"`
	CreatedAt time.Time        `db:"created_at"`
}

func (w row) toDomain() domain.Post {
	return domain.Post{
		ID:        w.ID,
		UserID:    w.UserID,
		Content:   w.Content,
		Likes:     w.Likes,
		Comments:  w.Comments,
		CreatedAt: w.CreatedAt,
	}
}

// ListOrdered returns all posts newest-first. The store-assigned id breaks
// created_at ties, giving a deterministic total order.
func (r *Repo) ListOrdered(ctx context.Context) ([]domain.Post, error) {
	sql, args, err := builder.Select(columns...).From(table).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "post", uuid.Nil)
	}

	var rows []row
	if err := pgxscan.Select(ctx, r.q(ctx), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "post", uuid.Nil)
	}

	posts := make([]domain.Post, 0, len(rows))
	for _, w := range rows {
		posts = append(posts, w.toDomain())
	}
	return posts, nil
}

// GetByID returns a post by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	sql, args, err := builder.Select(columns...).From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "post", id)
	}

	var w row
	if err := pgxscan.Get(ctx, r.q(ctx), &w, sql, args...); err != nil {
		return nil, postgres.MapError(err, "post", id)
	}

	p := w.toDomain()
	return &p, nil
}

// Create inserts a new post. The id and creation timestamp are
// store-assigned; the persisted record is returned.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, content string) (*domain.Post, error) {
	sql, args, err := builder.Insert(table).
		Columns("user_id", "content").
		Values(userID, content).
		Suffix("RETURNING id, user_id, content, likes, comments, created_at").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "post", uuid.Nil)
	}

	var w row
	if err := pgxscan.Get(ctx, r.q(ctx), &w, sql, args...); err != nil {
		return nil, postgres.MapError(err, "post", uuid.Nil)
	}

	p := w.toDomain()
	return &p, nil
}

// Delete removes a post by id. Returns domain.ErrNotFound if no row matched.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := builder.Delete(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return postgres.MapError(err, "post", id)
	}

	tag, err := r.q(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "post", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(domain.ErrNotFound, "post", id)
	}
	return nil
}
