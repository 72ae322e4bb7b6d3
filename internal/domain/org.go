package domain

import "time"

// Organization groups users, games and roles for a Humans-vs-Zombies event.
// The owner is always a member of Administrators; at most one game is active
// at a time. Membership fields are sets: order carries no meaning and ids
// appear at most once.
type Organization struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	URL            string    `json:"url"`
	OwnerID        string    `json:"owner_id"`
	Administrators []string  `json:"administrators"`
	Moderators     []string  `json:"moderators"`
	Games          []string  `json:"games"`
	ActiveGameID   string    `json:"active_game_id,omitempty"` // empty means no active game
	CreatedAt      time.Time `json:"created_at"`
}

func (o *Organization) IsAdmin(userID string) bool {
	return contains(o.Administrators, userID)
}

func (o *Organization) IsModerator(userID string) bool {
	return contains(o.Moderators, userID)
}

func (o *Organization) HasActiveGame() bool {
	return o.ActiveGameID != ""
}

func contains(set []string, id string) bool {
	for _, v := range set {
		if v == id {
			return true
		}
	}
	return false
}
