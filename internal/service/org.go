package service

import (
	"context"
	"errors"
	"fmt"

	"hvz-backend/internal/domain"
	"hvz-backend/internal/repository"
)

type organizationService struct {
	orgRepo  repository.OrganizationRepository
	userRepo repository.UserRepository
	gameRepo repository.GameRepository
}

func NewOrganizationService(orgRepo repository.OrganizationRepository, userRepo repository.UserRepository, gameRepo repository.GameRepository) OrganizationService {
	return &organizationService{
		orgRepo:  orgRepo,
		userRepo: userRepo,
		gameRepo: gameRepo,
	}
}

func (s *organizationService) CreateOrg(ctx context.Context, name, url, creatorID string) (*domain.Organization, error) {
	// Sanity check that the creator exists before persisting anything.
	if _, err := s.userRepo.GetByID(ctx, creatorID); err != nil {
		return nil, fmt.Errorf("creator of org %q: %w", name, err)
	}

	org := &domain.Organization{
		Name:           name,
		URL:            url,
		OwnerID:        creatorID,
		Administrators: []string{creatorID},
		Moderators:     []string{},
		Games:          []string{},
		ActiveGameID:   "",
	}
	if err := s.orgRepo.Create(ctx, org); err != nil {
		return nil, fmt.Errorf("failed to create org %q: %w", name, err)
	}
	return org, nil
}

func (s *organizationService) FindOrgByID(ctx context.Context, id string) (*domain.Organization, error) {
	if id == "" {
		return nil, nil
	}
	return s.orgRepo.FindByID(ctx, id)
}

func (s *organizationService) FindOrgByName(ctx context.Context, name string) (*domain.Organization, error) {
	if name == "" {
		return nil, nil
	}
	return s.orgRepo.FindByName(ctx, name)
}

func (s *organizationService) FindOrgByURL(ctx context.Context, url string) (*domain.Organization, error) {
	if url == "" {
		return nil, nil
	}
	return s.orgRepo.FindByURL(ctx, url)
}

func (s *organizationService) GetOrgByID(ctx context.Context, id string) (*domain.Organization, error) {
	org, err := s.FindOrgByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, fmt.Errorf("org with id %s: %w", id, domain.ErrNotFound)
	}
	return org, nil
}

func (s *organizationService) GetOrgByName(ctx context.Context, name string) (*domain.Organization, error) {
	org, err := s.FindOrgByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, fmt.Errorf("org with name %q: %w", name, domain.ErrNotFound)
	}
	return org, nil
}

func (s *organizationService) GetOrgByURL(ctx context.Context, url string) (*domain.Organization, error) {
	org, err := s.FindOrgByURL(ctx, url)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, fmt.Errorf("org with url %q: %w", url, domain.ErrNotFound)
	}
	return org, nil
}

func (s *organizationService) SetActiveGame(ctx context.Context, orgID, gameID string) (*domain.Organization, error) {
	org, err := s.GetOrgByID(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if org.ActiveGameID == gameID {
		// Idempotent no-op, skip the write.
		return org, nil
	}
	return s.orgRepo.SetActiveGame(ctx, orgID, gameID)
}

func (s *organizationService) FindActiveGame(ctx context.Context, orgID string) (*domain.Game, error) {
	org, err := s.GetOrgByID(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if !org.HasActiveGame() {
		return nil, nil
	}
	return s.gameRepo.GetByID(ctx, org.ActiveGameID)
}

// CreateGame is the gate for starting a new game: only administrators may
// start one, and only while the org has no active game. The active-game slot
// is claimed with a conditional update, so of two concurrent calls exactly
// one wins and the loser's game record is retired before the error returns.
func (s *organizationService) CreateGame(ctx context.Context, name, requesterID, orgID string) (*domain.Game, error) {
	org, err := s.GetOrgByID(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if !org.IsAdmin(requesterID) {
		return nil, fmt.Errorf("user %s is not an administrator of org %s and cannot create a game: %w",
			requesterID, orgID, domain.ErrUnauthorized)
	}
	if org.HasActiveGame() {
		return nil, fmt.Errorf("org with id %s already has an active game: %w", orgID, domain.ErrConflict)
	}

	game := &domain.Game{
		Name:      name,
		CreatorID: requesterID,
		OrgID:     orgID,
		IsActive:  true,
	}
	if err := s.gameRepo.Create(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game %q for org %s: %w", name, orgID, err)
	}

	if _, err := s.orgRepo.ClaimActiveGame(ctx, orgID, game.ID); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			// Lost the race to a concurrent CreateGame; retire our record.
			_ = s.gameRepo.MarkInactive(ctx, game.ID)
		}
		return nil, err
	}
	if _, err := s.orgRepo.AppendGame(ctx, orgID, game.ID); err != nil {
		return nil, err
	}
	return game, nil
}

func (s *organizationService) GetAdmins(ctx context.Context, orgID string) ([]string, error) {
	org, err := s.GetOrgByID(ctx, orgID)
	if err != nil {
		return nil, err
	}
	return org.Administrators, nil
}

func (s *organizationService) GetModerators(ctx context.Context, orgID string) ([]string, error) {
	org, err := s.GetOrgByID(ctx, orgID)
	if err != nil {
		return nil, err
	}
	return org.Moderators, nil
}

func (s *organizationService) AddAdmin(ctx context.Context, orgID, userID string) (*domain.Organization, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("cannot add admin to org %s: %w", orgID, err)
	}
	return s.orgRepo.AddAdmin(ctx, orgID, userID)
}

func (s *organizationService) RemoveAdmin(ctx context.Context, orgID, userID string) (*domain.Organization, error) {
	return s.orgRepo.RemoveAdmin(ctx, orgID, userID)
}

func (s *organizationService) AddModerator(ctx context.Context, orgID, userID string) (*domain.Organization, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("cannot add moderator to org %s: %w", orgID, err)
	}
	return s.orgRepo.AddModerator(ctx, orgID, userID)
}

func (s *organizationService) RemoveModerator(ctx context.Context, orgID, userID string) (*domain.Organization, error) {
	return s.orgRepo.RemoveModerator(ctx, orgID, userID)
}

func (s *organizationService) SetOwner(ctx context.Context, orgID, newOwnerID string) (*domain.Organization, error) {
	return s.orgRepo.SetOwner(ctx, orgID, newOwnerID)
}
