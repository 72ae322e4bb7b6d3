package repository

import (
	"context"
	"time"

	"hvz-backend/internal/domain"
)

// OrganizationRepository persists orgs as single rows and applies every
// mutation as one guarded conditional update returning the post-image, so
// invariants hold under concurrent callers. Find* methods return (nil, nil)
// when no row matches.
type OrganizationRepository interface {
	Create(ctx context.Context, org *domain.Organization) error
	FindByID(ctx context.Context, id string) (*domain.Organization, error)
	FindByName(ctx context.Context, name string) (*domain.Organization, error)
	FindByURL(ctx context.Context, url string) (*domain.Organization, error)

	// SetActiveGame overwrites active_game_id unconditionally.
	SetActiveGame(ctx context.Context, orgID, gameID string) (*domain.Organization, error)
	// ClaimActiveGame sets active_game_id only while it is empty and fails
	// with domain.ErrConflict otherwise.
	ClaimActiveGame(ctx context.Context, orgID, gameID string) (*domain.Organization, error)
	// ReleaseActiveGame clears active_game_id only while it still names
	// gameID; a pointer that moved on is left alone.
	ReleaseActiveGame(ctx context.Context, orgID, gameID string) (*domain.Organization, error)
	// ListWithActiveGame returns all orgs whose active_game_id is set.
	ListWithActiveGame(ctx context.Context) ([]domain.Organization, error)

	AddAdmin(ctx context.Context, orgID, userID string) (*domain.Organization, error)
	RemoveAdmin(ctx context.Context, orgID, userID string) (*domain.Organization, error)
	AddModerator(ctx context.Context, orgID, userID string) (*domain.Organization, error)
	RemoveModerator(ctx context.Context, orgID, userID string) (*domain.Organization, error)
	AppendGame(ctx context.Context, orgID, gameID string) (*domain.Organization, error)
	SetOwner(ctx context.Context, orgID, userID string) (*domain.Organization, error)
}

// UserRepository is the org core's user lookup. GetByID fails with
// domain.ErrNotFound for unknown ids.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	Exists(ctx context.Context, id string) (bool, error)
}

// GameRepository is the org core's game directory.
type GameRepository interface {
	Create(ctx context.Context, game *domain.Game) error
	GetByID(ctx context.Context, id string) (*domain.Game, error)
	MarkInactive(ctx context.Context, id string) error
	ListActiveCreatedBefore(ctx context.Context, cutoff time.Time) ([]domain.Game, error)
}
