package player

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/cribbage/internal/repositories/player Repository

import (
	"context"

	"github.com/KirkDiggler/cribbage/internal/models"
)

// Repository defines the interface for player stats persistence
type Repository interface {
	// SavePlayer persists a player
	SavePlayer(ctx context.Context, input *SavePlayerInput) error

	// GetPlayer retrieves a player by ID
	GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.Player, error)

	// GetPlayersInMatch retrieves everyone who played a match
	GetPlayersInMatch(ctx context.Context, input *GetPlayersInMatchInput) (*GetPlayersInMatchOutput, error)

	// RecordResult folds a finished match into a player's stats
	RecordResult(ctx context.Context, input *RecordResultInput) (*models.Player, error)
}
