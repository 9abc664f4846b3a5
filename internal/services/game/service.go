package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/cribbage/internal/common/clock"
	"github.com/KirkDiggler/cribbage/internal/common/uuid"
	"github.com/KirkDiggler/cribbage/internal/pegging"
	matchRepo "github.com/KirkDiggler/cribbage/internal/repositories/match"
	playerRepo "github.com/KirkDiggler/cribbage/internal/repositories/player"
	scoreRepo "github.com/KirkDiggler/cribbage/internal/repositories/score"
	"github.com/KirkDiggler/cribbage/internal/rng"
	"github.com/KirkDiggler/cribbage/internal/scoring"
)

// service implements the Service interface
type service struct {
	roller rng.Roller
	clock  clock.Clock
	uuid   uuid.UUID

	matchRepo  matchRepo.Repository
	playerRepo playerRepo.Repository
	scoreRepo  scoreRepo.Repository

	display Display
	logger  *slog.Logger

	targetScore int
	maxRounds   int
	maxTurns    int
}

// New creates a new game service with the provided configuration
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Roller == nil {
		return nil, ErrNilRoller
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUID == nil {
		return nil, ErrNilUUIDGenerator
	}

	s := &service{
		roller:      cfg.Roller,
		clock:       cfg.Clock,
		uuid:        cfg.UUID,
		matchRepo:   cfg.MatchRepo,
		playerRepo:  cfg.PlayerRepo,
		scoreRepo:   cfg.ScoreRepo,
		display:     cfg.Display,
		logger:      cfg.Logger,
		targetScore: cfg.TargetScore,
		maxRounds:   cfg.MaxRounds,
		maxTurns:    cfg.MaxTurns,
	}

	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.targetScore <= 0 {
		s.targetScore = DefaultTargetScore
	}
	if s.maxRounds <= 0 {
		s.maxRounds = DefaultMaxRounds
	}
	if s.maxTurns <= 0 {
		s.maxTurns = DefaultMaxTurns
	}

	return s, nil
}

// ScoreHand counts a hand or crib
func (s *service) ScoreHand(ctx context.Context, input *ScoreHandInput) (*ScoreHandOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	breakdown, err := scoring.Score(input.Hand, input.Starter, input.IsCrib)
	if err != nil {
		return nil, err
	}

	return &ScoreHandOutput{
		Breakdown: breakdown,
	}, nil
}

// ScorePegging replays cards onto a stack. A card that would push the count
// past 31 starts a new stack, and the card before it is credited with the GO
// unless it made 31.
func (s *service) ScorePegging(ctx context.Context, input *ScorePeggingInput) (*ScorePeggingOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if len(input.Cards) == 0 {
		return nil, ErrEmptySequence
	}

	stack := pegging.New()
	plays := make([]*PeggingPlay, 0, len(input.Cards))

	for i, card := range input.Cards {
		if !card.Valid() {
			return nil, fmt.Errorf("card %d: %w", i+1, errInvalidCard(card))
		}

		newStack := i == 0
		if stack.Score()+card.Value() > pegging.MaxCount {
			if stack.Score() != pegging.MaxCount {
				last := plays[len(plays)-1]
				last.Points.Go = 1
				last.Points.Total++
			}
			stack = pegging.New()
			newStack = true
		}

		stack.AddCard(card)
		plays = append(plays, &PeggingPlay{
			Card:     card,
			Count:    stack.Score(),
			Points:   stack.CurrentPoints(),
			NewStack: newStack,
		})
	}

	total := 0
	for _, play := range plays {
		total += play.Points.Total
	}

	return &ScorePeggingOutput{
		Plays: plays,
		Total: total,
	}, nil
}

// GetPlayerStats returns a player's recorded stats
func (s *service) GetPlayerStats(ctx context.Context, input *GetPlayerStatsInput) (*GetPlayerStatsOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.PlayerID == "" {
		return nil, ErrMissingPlayer
	}

	if s.playerRepo == nil {
		return nil, fmt.Errorf("player stats: %w", ErrRepositoryNotConfigured)
	}

	player, err := s.playerRepo.GetPlayer(ctx, &playerRepo.GetPlayerInput{
		PlayerID: input.PlayerID,
	})
	if err != nil {
		return nil, err
	}

	output := &GetPlayerStatsOutput{
		Player: player,
	}

	if s.scoreRepo != nil {
		totals, err := s.scoreRepo.GetScoreTotals(ctx, &scoreRepo.GetScoreTotalsInput{
			PlayerID: input.PlayerID,
		})
		if err != nil {
			// Totals are a nice-to-have next to the stats
			s.logger.Warn("failed to get score totals", "player_id", input.PlayerID, "error", err)
		} else {
			output.Totals = totals.Totals
		}
	}

	return output, nil
}

// GetMatchHistory lists the latest matches of a channel
func (s *service) GetMatchHistory(ctx context.Context, input *GetMatchHistoryInput) (*GetMatchHistoryOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.ChannelID == "" {
		return nil, ErrMissingChannel
	}

	if s.matchRepo == nil {
		return nil, fmt.Errorf("match history: %w", ErrRepositoryNotConfigured)
	}

	output, err := s.matchRepo.GetMatchesByChannel(ctx, &matchRepo.GetMatchesByChannelInput{
		ChannelID: input.ChannelID,
		Limit:     input.Limit,
	})
	if err != nil {
		return nil, err
	}

	return &GetMatchHistoryOutput{
		Matches: output.Matches,
	}, nil
}

// IsNotFound reports whether err means the requested record does not exist
func IsNotFound(err error) bool {
	return errors.Is(err, playerRepo.ErrPlayerNotFound) || errors.Is(err, matchRepo.ErrMatchNotFound)
}
