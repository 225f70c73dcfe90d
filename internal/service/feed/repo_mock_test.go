package feed

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/foundersapp/founders-backend/internal/domain"
)

var (
	_ postRepo    = &postRepoMock{}
	_ profileRepo = &profileRepoMock{}
)

type postRepoMock struct {
	ListOrderedFunc func(ctx context.Context) ([]domain.Post, error)
	GetByIDFunc     func(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	CreateFunc      func(ctx context.Context, userID uuid.UUID, content string) (*domain.Post, error)
	DeleteFunc      func(ctx context.Context, id uuid.UUID) error

	mu    sync.Mutex
	calls struct {
		ListOrdered int
		GetByID     int
		Create      int
		Delete      int
	}
}

func (m *postRepoMock) ListOrdered(ctx context.Context) ([]domain.Post, error) {
	if m.ListOrderedFunc == nil {
		panic("postRepoMock.ListOrderedFunc: method is nil but ListOrdered was just called")
	}
	m.mu.Lock()
	m.calls.ListOrdered++
	m.mu.Unlock()
	return m.ListOrderedFunc(ctx)
}

func (m *postRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	if m.GetByIDFunc == nil {
		panic("postRepoMock.GetByIDFunc: method is nil but GetByID was just called")
	}
	m.mu.Lock()
	m.calls.GetByID++
	m.mu.Unlock()
	return m.GetByIDFunc(ctx, id)
}

func (m *postRepoMock) Create(ctx context.Context, userID uuid.UUID, content string) (*domain.Post, error) {
	if m.CreateFunc == nil {
		panic("postRepoMock.CreateFunc: method is nil but Create was just called")
	}
	m.mu.Lock()
	m.calls.Create++
	m.mu.Unlock()
	return m.CreateFunc(ctx, userID, content)
}

func (m *postRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc == nil {
		panic("postRepoMock.DeleteFunc: method is nil but Delete was just called")
	}
	m.mu.Lock()
	m.calls.Delete++
	m.mu.Unlock()
	return m.DeleteFunc(ctx, id)
}

func (m *postRepoMock) CreateCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Create
}

func (m *postRepoMock) DeleteCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Delete
}

type profileRepoMock struct {
	GetByIDsFunc func(ctx context.Context, ids []uuid.UUID) ([]domain.Profile, error)

	mu    sync.Mutex
	calls struct {
		GetByIDs int
	}
	gotIDs [][]uuid.UUID
}

func (m *profileRepoMock) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Profile, error) {
	if m.GetByIDsFunc == nil {
		panic("profileRepoMock.GetByIDsFunc: method is nil but GetByIDs was just called")
	}
	m.mu.Lock()
	m.calls.GetByIDs++
	m.gotIDs = append(m.gotIDs, ids)
	m.mu.Unlock()
	return m.GetByIDsFunc(ctx, ids)
}

func (m *profileRepoMock) GetByIDsCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.GetByIDs
}

func (m *profileRepoMock) GetByIDsArgs() [][]uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.gotIDs
}
