package domain

import "time"

// Game carries only what the org core needs; play state (players, tags,
// roles) lives with the game subsystem.
type Game struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatorID string    `json:"creator_id"`
	OrgID     string    `json:"org_id"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}
