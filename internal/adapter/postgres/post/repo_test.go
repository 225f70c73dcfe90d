package post

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foundersapp/founders-backend/internal/domain"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func postRows(posts ...domain.Post) *pgxmock.Rows {
	rows := pgxmock.NewRows([]string{"id", "user_id", "content", "likes", "comments", "created_at"})
	for _, p := range posts {
		rows.AddRow(p.ID, p.UserID, p.Content, p.Likes, p.Comments, p.CreatedAt)
	}
	return rows
}

func TestRepo_ListOrdered(t *testing.T) {
	t.Parallel()

	now := time.Now()
	newer := domain.Post{ID: uuid.New(), UserID: uuid.New(), Content: "second", CreatedAt: now}
	older := domain.Post{ID: uuid.New(), UserID: uuid.New(), Content: "first", CreatedAt: now.Add(-time.Hour)}

	mock := newMock(t)
	mock.ExpectQuery(`SELECT .+ FROM posts ORDER BY created_at DESC, id DESC`).
		WillReturnRows(postRows(newer, older))

	repo := New(mock)
	got, err := repo.ListOrdered(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "second", got[0].Content)
	assert.Equal(t, "first", got[1].Content)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_GetByID_NotFound(t *testing.T) {
	t.Parallel()

	id := uuid.New()

	mock := newMock(t)
	mock.ExpectQuery(`SELECT .+ FROM posts`).
		WithArgs(id).
		WillReturnError(pgx.ErrNoRows)

	repo := New(mock)
	_, err := repo.GetByID(context.Background(), id)

	require.ErrorIs(t, err, domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_Create(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	persisted := domain.Post{
		ID:        uuid.New(),
		UserID:    userID,
		Content:   "Hello",
		Likes:     []uuid.UUID{},
		Comments:  []domain.Comment{},
		CreatedAt: time.Now(),
	}

	mock := newMock(t)
	mock.ExpectQuery(`INSERT INTO posts .+ RETURNING`).
		WithArgs(userID, "Hello").
		WillReturnRows(postRows(persisted))

	repo := New(mock)
	got, err := repo.Create(context.Background(), userID, "Hello")

	require.NoError(t, err)
	assert.Equal(t, persisted.ID, got.ID)
	assert.Equal(t, "Hello", got.Content)
	assert.False(t, got.CreatedAt.IsZero())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_Delete(t *testing.T) {
	t.Parallel()

	id := uuid.New()

	mock := newMock(t)
	mock.ExpectExec(`DELETE FROM posts WHERE id =`).
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	repo := New(mock)
	require.NoError(t, repo.Delete(context.Background(), id))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_Delete_NotFound(t *testing.T) {
	t.Parallel()

	id := uuid.New()

	mock := newMock(t)
	mock.ExpectExec(`DELETE FROM posts WHERE id =`).
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	repo := New(mock)
	err := repo.Delete(context.Background(), id)

	require.ErrorIs(t, err, domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
