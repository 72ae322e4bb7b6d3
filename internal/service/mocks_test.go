package service_test

import (
	"context"
	"time"

	"hvz-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockOrganizationRepo
type MockOrganizationRepo struct {
	mock.Mock
}

func (m *MockOrganizationRepo) Create(ctx context.Context, org *domain.Organization) error {
	args := m.Called(ctx, org)
	return args.Error(0)
}
func (m *MockOrganizationRepo) FindByID(ctx context.Context, id string) (*domain.Organization, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Organization), args.Error(1)
}
func (m *MockOrganizationRepo) FindByName(ctx context.Context, name string) (*domain.Organization, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Organization), args.Error(1)
}
func (m *MockOrganizationRepo) FindByURL(ctx context.Context, url string) (*domain.Organization, error) {
	args := m.Called(ctx, url)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Organization), args.Error(1)
}
func (m *MockOrganizationRepo) SetActiveGame(ctx context.Context, orgID, gameID string) (*domain.Organization, error) {
	args := m.Called(ctx, orgID, gameID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Organization), args.Error(1)
}
func (m *MockOrganizationRepo) ClaimActiveGame(ctx context.Context, orgID, gameID string) (*domain.Organization, error) {
	args := m.Called(ctx, orgID, gameID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Organization), args.Error(1)
}
func (m *MockOrganizationRepo) ReleaseActiveGame(ctx context.Context, orgID, gameID string) (*domain.Organization, error) {
	args := m.Called(ctx, orgID, gameID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Organization), args.Error(1)
}
func (m *MockOrganizationRepo) ListWithActiveGame(ctx context.Context) ([]domain.Organization, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Organization), args.Error(1)
}
func (m *MockOrganizationRepo) AddAdmin(ctx context.Context, orgID, userID string) (*domain.Organization, error) {
	args := m.Called(ctx, orgID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Organization), args.Error(1)
}
func (m *MockOrganizationRepo) RemoveAdmin(ctx context.Context, orgID, userID string) (*domain.Organization, error) {
	args := m.Called(ctx, orgID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Organization), args.Error(1)
}
func (m *MockOrganizationRepo) AddModerator(ctx context.Context, orgID, userID string) (*domain.Organization, error) {
	args := m.Called(ctx, orgID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Organization), args.Error(1)
}
func (m *MockOrganizationRepo) RemoveModerator(ctx context.Context, orgID, userID string) (*domain.Organization, error) {
	args := m.Called(ctx, orgID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Organization), args.Error(1)
}
func (m *MockOrganizationRepo) AppendGame(ctx context.Context, orgID, gameID string) (*domain.Organization, error) {
	args := m.Called(ctx, orgID, gameID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Organization), args.Error(1)
}
func (m *MockOrganizationRepo) SetOwner(ctx context.Context, orgID, userID string) (*domain.Organization, error) {
	args := m.Called(ctx, orgID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Organization), args.Error(1)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockGameRepo
type MockGameRepo struct {
	mock.Mock
}

func (m *MockGameRepo) Create(ctx context.Context, game *domain.Game) error {
	args := m.Called(ctx, game)
	return args.Error(0)
}
func (m *MockGameRepo) GetByID(ctx context.Context, id string) (*domain.Game, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Game), args.Error(1)
}
func (m *MockGameRepo) MarkInactive(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockGameRepo) ListActiveCreatedBefore(ctx context.Context, cutoff time.Time) ([]domain.Game, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Game), args.Error(1)
}
