package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"hvz-backend/internal/domain"
	"hvz-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const orgCols = `id, name, url, owner_id, administrators, moderators, games, active_game_id, created_at`

type organizationRepository struct {
	db *sql.DB
}

func NewOrganizationRepository(db *sql.DB) repository.OrganizationRepository {
	return &organizationRepository{db: db}
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanOrg(s scanner) (*domain.Organization, error) {
	o := &domain.Organization{}
	err := s.Scan(&o.ID, &o.Name, &o.URL, &o.OwnerID,
		pq.Array(&o.Administrators), pq.Array(&o.Moderators), pq.Array(&o.Games),
		&o.ActiveGameID, &o.CreatedAt)
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (r *organizationRepository) Create(ctx context.Context, o *domain.Organization) error {
	o.ID = uuid.NewString()
	o.CreatedAt = time.Now().UTC()
	query := `INSERT INTO orgs (id, name, url, owner_id, administrators, moderators, games, active_game_id, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.ExecContext(ctx, query, o.ID, o.Name, o.URL, o.OwnerID,
		pq.Array(o.Administrators), pq.Array(o.Moderators), pq.Array(o.Games),
		o.ActiveGameID, o.CreatedAt)
	return err
}

func (r *organizationRepository) findOne(ctx context.Context, where string, arg any) (*domain.Organization, error) {
	query := `SELECT ` + orgCols + ` FROM orgs WHERE ` + where
	org, err := scanOrg(r.db.QueryRowContext(ctx, query, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return org, err
}

func (r *organizationRepository) FindByID(ctx context.Context, id string) (*domain.Organization, error) {
	return r.findOne(ctx, `id = $1`, id)
}

func (r *organizationRepository) FindByName(ctx context.Context, name string) (*domain.Organization, error) {
	return r.findOne(ctx, `name = $1`, name)
}

func (r *organizationRepository) FindByURL(ctx context.Context, url string) (*domain.Organization, error) {
	return r.findOne(ctx, `url = $1`, url)
}

// requireByID re-reads an org after a guarded update matched no rows, so the
// caller can tell "org missing" apart from "guard fired".
func (r *organizationRepository) requireByID(ctx context.Context, orgID string) (*domain.Organization, error) {
	org, err := r.FindByID(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, fmt.Errorf("org with id %s: %w", orgID, domain.ErrNotFound)
	}
	return org, nil
}

func (r *organizationRepository) SetActiveGame(ctx context.Context, orgID, gameID string) (*domain.Organization, error) {
	query := `UPDATE orgs SET active_game_id = $2 WHERE id = $1 RETURNING ` + orgCols
	org, err := scanOrg(r.db.QueryRowContext(ctx, query, orgID, gameID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("org with id %s: %w", orgID, domain.ErrNotFound)
	}
	return org, err
}

func (r *organizationRepository) ClaimActiveGame(ctx context.Context, orgID, gameID string) (*domain.Organization, error) {
	query := `UPDATE orgs SET active_game_id = $2 WHERE id = $1 AND active_game_id = '' RETURNING ` + orgCols
	org, err := scanOrg(r.db.QueryRowContext(ctx, query, orgID, gameID))
	if errors.Is(err, sql.ErrNoRows) {
		if _, rerr := r.requireByID(ctx, orgID); rerr != nil {
			return nil, rerr
		}
		return nil, fmt.Errorf("org with id %s already has an active game: %w", orgID, domain.ErrConflict)
	}
	return org, err
}

func (r *organizationRepository) ReleaseActiveGame(ctx context.Context, orgID, gameID string) (*domain.Organization, error) {
	query := `UPDATE orgs SET active_game_id = '' WHERE id = $1 AND active_game_id = $2 RETURNING ` + orgCols
	org, err := scanOrg(r.db.QueryRowContext(ctx, query, orgID, gameID))
	if errors.Is(err, sql.ErrNoRows) {
		// Pointer already moved on, or org gone. Report current state.
		return r.requireByID(ctx, orgID)
	}
	return org, err
}

func (r *organizationRepository) ListWithActiveGame(ctx context.Context) ([]domain.Organization, error) {
	query := `SELECT ` + orgCols + ` FROM orgs WHERE active_game_id <> ''`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orgs []domain.Organization
	for rows.Next() {
		org, err := scanOrg(rows)
		if err != nil {
			return nil, err
		}
		orgs = append(orgs, *org)
	}
	return orgs, rows.Err()
}

// addToSet appends userID to col only while absent; a no-op add reads the
// row back instead so the caller still observes the current state.
func (r *organizationRepository) addToSet(ctx context.Context, col, orgID, userID string) (*domain.Organization, error) {
	query := `UPDATE orgs SET ` + col + ` = array_append(` + col + `, $2)
	          WHERE id = $1 AND NOT ($2 = ANY(` + col + `)) RETURNING ` + orgCols
	org, err := scanOrg(r.db.QueryRowContext(ctx, query, orgID, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return r.requireByID(ctx, orgID)
	}
	return org, err
}

func (r *organizationRepository) AddAdmin(ctx context.Context, orgID, userID string) (*domain.Organization, error) {
	return r.addToSet(ctx, "administrators", orgID, userID)
}

func (r *organizationRepository) RemoveAdmin(ctx context.Context, orgID, userID string) (*domain.Organization, error) {
	query := `UPDATE orgs SET administrators = array_remove(administrators, $2)
	          WHERE id = $1 AND owner_id <> $2 RETURNING ` + orgCols
	org, err := scanOrg(r.db.QueryRowContext(ctx, query, orgID, userID))
	if errors.Is(err, sql.ErrNoRows) {
		if _, rerr := r.requireByID(ctx, orgID); rerr != nil {
			return nil, rerr
		}
		return nil, fmt.Errorf("user %s owns org %s and cannot be removed from its admins: %w",
			userID, orgID, domain.ErrInvalidOperation)
	}
	return org, err
}

func (r *organizationRepository) AddModerator(ctx context.Context, orgID, userID string) (*domain.Organization, error) {
	return r.addToSet(ctx, "moderators", orgID, userID)
}

func (r *organizationRepository) RemoveModerator(ctx context.Context, orgID, userID string) (*domain.Organization, error) {
	query := `UPDATE orgs SET moderators = array_remove(moderators, $2)
	          WHERE id = $1 RETURNING ` + orgCols
	org, err := scanOrg(r.db.QueryRowContext(ctx, query, orgID, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("org with id %s: %w", orgID, domain.ErrNotFound)
	}
	return org, err
}

func (r *organizationRepository) AppendGame(ctx context.Context, orgID, gameID string) (*domain.Organization, error) {
	return r.addToSet(ctx, "games", orgID, gameID)
}

func (r *organizationRepository) SetOwner(ctx context.Context, orgID, userID string) (*domain.Organization, error) {
	query := `UPDATE orgs SET owner_id = $2 WHERE id = $1 AND $2 = ANY(administrators) RETURNING ` + orgCols
	org, err := scanOrg(r.db.QueryRowContext(ctx, query, orgID, userID))
	if errors.Is(err, sql.ErrNoRows) {
		if _, rerr := r.requireByID(ctx, orgID); rerr != nil {
			return nil, rerr
		}
		return nil, fmt.Errorf("user %s is not an administrator of org %s and cannot become its owner: %w",
			userID, orgID, domain.ErrInvalidOperation)
	}
	return org, err
}
