package score

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/cribbage/internal/repositories/score Repository

import (
	"context"
)

// Repository defines the interface for the score ledger
type Repository interface {
	// AddScoreRecord adds a scoring event to the ledger
	AddScoreRecord(ctx context.Context, input *AddScoreRecordInput) error

	// GetScoreRecordsForMatch retrieves every scoring event of a match, oldest first
	GetScoreRecordsForMatch(ctx context.Context, input *GetScoreRecordsForMatchInput) (*GetScoreRecordsForMatchOutput, error)

	// GetScoreRecordsForPlayer retrieves a player's scoring events, oldest first
	GetScoreRecordsForPlayer(ctx context.Context, input *GetScoreRecordsForPlayerInput) (*GetScoreRecordsForPlayerOutput, error)

	// GetScoreTotals retrieves a player's lifetime points per kind
	GetScoreTotals(ctx context.Context, input *GetScoreTotalsInput) (*GetScoreTotalsOutput, error)
}
