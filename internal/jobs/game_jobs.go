package jobs

import (
	"context"
	"time"

	"hvz-backend/internal/logger"
)

// ReleaseStaleActiveGames retires active games older than the configured
// maximum age and clears the owning org's active-game pointer. The release
// is conditional on the pointer still naming the stale game, so an org that
// already moved to a newer game is left untouched.
func (jr *JobRunner) ReleaseStaleActiveGames() {
	jr.runWithRecovery("ReleaseStaleActiveGames", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		maxAge := time.Duration(jr.config.Scheduler.MaxActiveGameAgeHours) * time.Hour
		cutoff := time.Now().UTC().Add(-maxAge)

		games, err := jr.store.GameRepository.ListActiveCreatedBefore(ctx, cutoff)
		if err != nil {
			logger.Error("Failed to list stale active games", "error", err)
			return
		}

		for _, game := range games {
			if err := jr.store.GameRepository.MarkInactive(ctx, game.ID); err != nil {
				logger.Error("Failed to mark game inactive", "game_id", game.ID, "error", err)
				continue
			}
			if _, err := jr.store.OrganizationRepository.ReleaseActiveGame(ctx, game.OrgID, game.ID); err != nil {
				logger.Error("Failed to release active game", "org_id", game.OrgID, "game_id", game.ID, "error", err)
				continue
			}
			logger.Info("Released stale active game", "org_id", game.OrgID, "game_id", game.ID,
				"created_at", game.CreatedAt)
		}
	})
}
