package profile

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/foundersapp/founders-backend/internal/domain"
)

var _ profileRepo = &profileRepoMock{}

type profileRepoMock struct {
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	UpdateFunc        func(ctx context.Context, id uuid.UUID, name *string, bio *string) (*domain.Profile, error)
	UpdatePictureFunc func(ctx context.Context, id uuid.UUID, url string) (*domain.Profile, error)

	mu    sync.Mutex
	calls struct {
		GetByID       int
		Update        int
		UpdatePicture int
	}
}

func (m *profileRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	if m.GetByIDFunc == nil {
		panic("profileRepoMock.GetByIDFunc: method is nil but GetByID was just called")
	}
	m.mu.Lock()
	m.calls.GetByID++
	m.mu.Unlock()
	return m.GetByIDFunc(ctx, id)
}

func (m *profileRepoMock) GetByIDCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.GetByID
}

func (m *profileRepoMock) Update(ctx context.Context, id uuid.UUID, name *string, bio *string) (*domain.Profile, error) {
	if m.UpdateFunc == nil {
		panic("profileRepoMock.UpdateFunc: method is nil but Update was just called")
	}
	m.mu.Lock()
	m.calls.Update++
	m.mu.Unlock()
	return m.UpdateFunc(ctx, id, name, bio)
}

func (m *profileRepoMock) UpdateCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Update
}

func (m *profileRepoMock) UpdatePicture(ctx context.Context, id uuid.UUID, url string) (*domain.Profile, error) {
	if m.UpdatePictureFunc == nil {
		panic("profileRepoMock.UpdatePictureFunc: method is nil but UpdatePicture was just called")
	}
	m.mu.Lock()
	m.calls.UpdatePicture++
	m.mu.Unlock()
	return m.UpdatePictureFunc(ctx, id, url)
}
