package game

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/cribbage/internal/services/game Service

import "context"

// Service defines the interface for cribbage operations
type Service interface {
	// PlayMatch plays two players against each other until one reaches the target score
	PlayMatch(ctx context.Context, input *PlayMatchInput) (*PlayMatchOutput, error)

	// ScoreHand counts a four card hand or crib with the starter
	ScoreHand(ctx context.Context, input *ScoreHandInput) (*ScoreHandOutput, error)

	// ScorePegging replays a sequence of played cards and reports what each one pegged
	ScorePegging(ctx context.Context, input *ScorePeggingInput) (*ScorePeggingOutput, error)

	// GetPlayerStats returns the recorded stats of one player
	GetPlayerStats(ctx context.Context, input *GetPlayerStatsInput) (*GetPlayerStatsOutput, error)

	// GetMatchHistory returns the latest finished matches of a channel
	GetMatchHistory(ctx context.Context, input *GetMatchHistoryInput) (*GetMatchHistoryOutput, error)
}
