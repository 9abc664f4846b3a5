package player

import (
	"time"

	"github.com/KirkDiggler/cribbage/internal/models"
)

// SavePlayerInput contains parameters for saving a player
type SavePlayerInput struct {
	Player *models.Player
}

// GetPlayerInput contains parameters for retrieving a player
type GetPlayerInput struct {
	PlayerID string
}

// GetPlayersInMatchInput contains parameters for retrieving players in a match
type GetPlayersInMatchInput struct {
	MatchID string
}

// GetPlayersInMatchOutput contains the result of retrieving players in a match
type GetPlayersInMatchOutput struct {
	Players []*models.Player
}

// RecordResultInput describes one player's side of a finished match
type RecordResultInput struct {
	PlayerID string
	Name     string
	MatchID  string

	Won bool

	// Skunk is the match's skunk status; it counts as given for the
	// winner and taken for the loser
	Skunk models.SkunkStatus

	Points   int
	BestHand int

	Timestamp time.Time
}
