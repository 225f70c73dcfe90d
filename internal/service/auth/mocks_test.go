package auth

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/foundersapp/founders-backend/internal/domain"
)

var (
	_ userRepo    = &userRepoMock{}
	_ profileRepo = &profileRepoMock{}
	_ tokenRepo   = &tokenRepoMock{}
	_ txManager   = &txManagerMock{}
	_ jwtManager  = &jwtManagerMock{}
)

type userRepoMock struct {
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
	CreateFunc     func(ctx context.Context, user *domain.User) (*domain.User, error)

	mu    sync.Mutex
	calls struct {
		Create int
	}
}

func (m *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but GetByID was just called")
	}
	return m.GetByIDFunc(ctx, id)
}

func (m *userRepoMock) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFunc == nil {
		panic("userRepoMock.GetByEmailFunc: method is nil but GetByEmail was just called")
	}
	return m.GetByEmailFunc(ctx, email)
}

func (m *userRepoMock) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if m.CreateFunc == nil {
		panic("userRepoMock.CreateFunc: method is nil but Create was just called")
	}
	m.mu.Lock()
	m.calls.Create++
	m.mu.Unlock()
	return m.CreateFunc(ctx, user)
}

func (m *userRepoMock) CreateCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Create
}

type profileRepoMock struct {
	CreateFunc func(ctx context.Context, profile *domain.Profile) (*domain.Profile, error)

	mu    sync.Mutex
	calls struct {
		Create int
	}
}

func (m *profileRepoMock) Create(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
	if m.CreateFunc == nil {
		panic("profileRepoMock.CreateFunc: method is nil but Create was just called")
	}
	m.mu.Lock()
	m.calls.Create++
	m.mu.Unlock()
	return m.CreateFunc(ctx, profile)
}

func (m *profileRepoMock) CreateCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Create
}

type tokenRepoMock struct {
	CreateFunc          func(ctx context.Context, token *domain.RefreshToken) error
	GetByHashFunc       func(ctx context.Context, tokenHash string) (*domain.RefreshToken, error)
	RevokeByIDFunc      func(ctx context.Context, id uuid.UUID) error
	RevokeAllByUserFunc func(ctx context.Context, userID uuid.UUID) error
	DeleteExpiredFunc   func(ctx context.Context) (int64, error)

	mu    sync.Mutex
	calls struct {
		Create          int
		RevokeByID      int
		RevokeAllByUser int
	}
}

func (m *tokenRepoMock) Create(ctx context.Context, token *domain.RefreshToken) error {
	if m.CreateFunc == nil {
		panic("tokenRepoMock.CreateFunc: method is nil but Create was just called")
	}
	m.mu.Lock()
	m.calls.Create++
	m.mu.Unlock()
	return m.CreateFunc(ctx, token)
}

func (m *tokenRepoMock) GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	if m.GetByHashFunc == nil {
		panic("tokenRepoMock.GetByHashFunc: method is nil but GetByHash was just called")
	}
	return m.GetByHashFunc(ctx, tokenHash)
}

func (m *tokenRepoMock) RevokeByID(ctx context.Context, id uuid.UUID) error {
	if m.RevokeByIDFunc == nil {
		panic("tokenRepoMock.RevokeByIDFunc: method is nil but RevokeByID was just called")
	}
	m.mu.Lock()
	m.calls.RevokeByID++
	m.mu.Unlock()
	return m.RevokeByIDFunc(ctx, id)
}

func (m *tokenRepoMock) RevokeAllByUser(ctx context.Context, userID uuid.UUID) error {
	if m.RevokeAllByUserFunc == nil {
		panic("tokenRepoMock.RevokeAllByUserFunc: method is nil but RevokeAllByUser was just called")
	}
	m.mu.Lock()
	m.calls.RevokeAllByUser++
	m.mu.Unlock()
	return m.RevokeAllByUserFunc(ctx, userID)
}

func (m *tokenRepoMock) DeleteExpired(ctx context.Context) (int64, error) {
	if m.DeleteExpiredFunc == nil {
		panic("tokenRepoMock.DeleteExpiredFunc: method is nil but DeleteExpired was just called")
	}
	return m.DeleteExpiredFunc(ctx)
}

func (m *tokenRepoMock) CreateCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Create
}

func (m *tokenRepoMock) RevokeByIDCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.RevokeByID
}

// txManagerMock runs the callback directly without a real transaction.
type txManagerMock struct{}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type jwtManagerMock struct {
	GenerateAccessTokenFunc  func(userID uuid.UUID) (string, error)
	ValidateAccessTokenFunc  func(token string) (uuid.UUID, error)
	GenerateRefreshTokenFunc func() (string, string, error)
}

func (m *jwtManagerMock) GenerateAccessToken(userID uuid.UUID) (string, error) {
	if m.GenerateAccessTokenFunc == nil {
		return "access-" + userID.String(), nil
	}
	return m.GenerateAccessTokenFunc(userID)
}

func (m *jwtManagerMock) ValidateAccessToken(token string) (uuid.UUID, error) {
	if m.ValidateAccessTokenFunc == nil {
		panic("jwtManagerMock.ValidateAccessTokenFunc: method is nil but ValidateAccessToken was just called")
	}
	return m.ValidateAccessTokenFunc(token)
}

func (m *jwtManagerMock) GenerateRefreshToken() (string, string, error) {
	if m.GenerateRefreshTokenFunc == nil {
		return "raw-refresh", "hash-refresh", nil
	}
	return m.GenerateRefreshTokenFunc()
}
