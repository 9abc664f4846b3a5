package match

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/cribbage/internal/repositories/match Repository

import (
	"context"

	"github.com/KirkDiggler/cribbage/internal/models"
)

// Repository defines the interface for finished-match persistence
type Repository interface {
	// SaveMatch persists a finished match
	SaveMatch(ctx context.Context, input *SaveMatchInput) error

	// GetMatch retrieves a match by ID
	GetMatch(ctx context.Context, input *GetMatchInput) (*models.Match, error)

	// GetMatchesByChannel retrieves the most recent matches played in a channel
	GetMatchesByChannel(ctx context.Context, input *GetMatchesByChannelInput) (*GetMatchesByChannelOutput, error)

	// DeleteMatch removes a match
	DeleteMatch(ctx context.Context, input *DeleteMatchInput) error
}
