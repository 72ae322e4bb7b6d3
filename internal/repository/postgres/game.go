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
)

const gameCols = `id, name, creator_id, org_id, is_active, created_at`

type gameRepository struct {
	db *sql.DB
}

func NewGameRepository(db *sql.DB) repository.GameRepository {
	return &gameRepository{db: db}
}

func (r *gameRepository) Create(ctx context.Context, g *domain.Game) error {
	g.ID = uuid.NewString()
	g.CreatedAt = time.Now().UTC()
	query := `INSERT INTO games (id, name, creator_id, org_id, is_active, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecContext(ctx, query, g.ID, g.Name, g.CreatorID, g.OrgID, g.IsActive, g.CreatedAt)
	return err
}

func (r *gameRepository) GetByID(ctx context.Context, id string) (*domain.Game, error) {
	g := &domain.Game{}
	query := `SELECT ` + gameCols + ` FROM games WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&g.ID, &g.Name, &g.CreatorID, &g.OrgID, &g.IsActive, &g.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("game with id %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return g, nil
}

func (r *gameRepository) MarkInactive(ctx context.Context, id string) error {
	query := `UPDATE games SET is_active = FALSE WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("game with id %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *gameRepository) ListActiveCreatedBefore(ctx context.Context, cutoff time.Time) ([]domain.Game, error) {
	query := `SELECT ` + gameCols + ` FROM games WHERE is_active AND created_at < $1`
	rows, err := r.db.QueryContext(ctx, query, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var games []domain.Game
	for rows.Next() {
		var g domain.Game
		if err := rows.Scan(&g.ID, &g.Name, &g.CreatorID, &g.OrgID, &g.IsActive, &g.CreatedAt); err != nil {
			return nil, err
		}
		games = append(games, g)
	}
	return games, rows.Err()
}
