package service

import (
	"context"

	"hvz-backend/internal/domain"
)

// OrganizationService owns the organization lifecycle: creation, lookup,
// membership changes, ownership transfer and the game-creation gate. Find*
// lookups return (nil, nil) when nothing matches; Get* lookups fail with
// domain.ErrNotFound. Every mutation returns the org as read back from the
// store after the write.
type OrganizationService interface {
	CreateOrg(ctx context.Context, name, url, creatorID string) (*domain.Organization, error)

	FindOrgByID(ctx context.Context, id string) (*domain.Organization, error)
	FindOrgByName(ctx context.Context, name string) (*domain.Organization, error)
	FindOrgByURL(ctx context.Context, url string) (*domain.Organization, error)
	GetOrgByID(ctx context.Context, id string) (*domain.Organization, error)
	GetOrgByName(ctx context.Context, name string) (*domain.Organization, error)
	GetOrgByURL(ctx context.Context, url string) (*domain.Organization, error)

	SetActiveGame(ctx context.Context, orgID, gameID string) (*domain.Organization, error)
	FindActiveGame(ctx context.Context, orgID string) (*domain.Game, error)
	CreateGame(ctx context.Context, name, requesterID, orgID string) (*domain.Game, error)

	GetAdmins(ctx context.Context, orgID string) ([]string, error)
	GetModerators(ctx context.Context, orgID string) ([]string, error)
	AddAdmin(ctx context.Context, orgID, userID string) (*domain.Organization, error)
	RemoveAdmin(ctx context.Context, orgID, userID string) (*domain.Organization, error)
	AddModerator(ctx context.Context, orgID, userID string) (*domain.Organization, error)
	RemoveModerator(ctx context.Context, orgID, userID string) (*domain.Organization, error)
	SetOwner(ctx context.Context, orgID, newOwnerID string) (*domain.Organization, error)
}

type UserService interface {
	CreateUser(ctx context.Context, name, email string) (*domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
}
