package match

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/cribbage/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	matchKeyPrefix          = "match:"
	channelMatchesKeyPrefix = "channel_matches:"

	// DefaultHistoryLimit is used when no limit is given
	DefaultHistoryLimit = 10
)

// ErrMatchNotFound is returned when a match is not found
var ErrMatchNotFound = errors.New("match not found")

// Config holds configuration for the Redis match repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed match repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveMatch persists a finished match to Redis
func (r *redisRepository) SaveMatch(ctx context.Context, input *SaveMatchInput) error {
	if input == nil || input.Match == nil {
		return errors.New("input and match cannot be nil")
	}

	if input.Match.ID == "" {
		return errors.New("match ID cannot be empty")
	}

	matchJSON, err := json.Marshal(input.Match)
	if err != nil {
		return fmt.Errorf("failed to marshal match: %w", err)
	}

	pipe := r.client.Pipeline()

	matchKey := fmt.Sprintf("%s%s", matchKeyPrefix, input.Match.ID)
	pipe.Set(ctx, matchKey, matchJSON, 0)

	// Index by channel, ordered by finish time
	if input.Match.ChannelID != "" {
		channelKey := fmt.Sprintf("%s%s", channelMatchesKeyPrefix, input.Match.ChannelID)
		pipe.ZAdd(ctx, channelKey, redis.Z{
			Score:  float64(input.Match.FinishedAt.UnixNano()),
			Member: input.Match.ID,
		})
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save match: %w", err)
	}

	return nil
}

// GetMatch retrieves a match by ID from Redis
func (r *redisRepository) GetMatch(ctx context.Context, input *GetMatchInput) (*models.Match, error) {
	if input == nil || input.MatchID == "" {
		return nil, errors.New("input and match ID cannot be empty")
	}

	matchKey := fmt.Sprintf("%s%s", matchKeyPrefix, input.MatchID)
	matchJSON, err := r.client.Get(ctx, matchKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	var match models.Match
	if err := json.Unmarshal([]byte(matchJSON), &match); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match: %w", err)
	}

	return &match, nil
}

// GetMatchesByChannel retrieves the newest matches for a channel
func (r *redisRepository) GetMatchesByChannel(ctx context.Context, input *GetMatchesByChannelInput) (*GetMatchesByChannelOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("input and channel ID cannot be empty")
	}

	limit := input.Limit
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	channelKey := fmt.Sprintf("%s%s", channelMatchesKeyPrefix, input.ChannelID)
	matchIDs, err := r.client.ZRevRange(ctx, channelKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get match IDs for channel: %w", err)
	}

	if len(matchIDs) == 0 {
		return &GetMatchesByChannelOutput{
			Matches: []*models.Match{},
		}, nil
	}

	// Fetch all matches in one round trip
	pipe := r.client.Pipeline()
	cmds := make([]*redis.StringCmd, len(matchIDs))
	for i, matchID := range matchIDs {
		cmds[i] = pipe.Get(ctx, fmt.Sprintf("%s%s", matchKeyPrefix, matchID))
	}

	// redis.Nil from a deleted match is handled per command below
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get matches: %w", err)
	}

	matches := make([]*models.Match, 0, len(matchIDs))
	for i, cmd := range cmds {
		matchJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get match %s: %w", matchIDs[i], err)
		}

		var match models.Match
		if err := json.Unmarshal([]byte(matchJSON), &match); err != nil {
			return nil, fmt.Errorf("failed to unmarshal match %s: %w", matchIDs[i], err)
		}
		matches = append(matches, &match)
	}

	return &GetMatchesByChannelOutput{
		Matches: matches,
	}, nil
}

// DeleteMatch removes a match and its channel index entry
func (r *redisRepository) DeleteMatch(ctx context.Context, input *DeleteMatchInput) error {
	if input == nil || input.MatchID == "" {
		return errors.New("input and match ID cannot be empty")
	}

	match, err := r.GetMatch(ctx, &GetMatchInput{
		MatchID: input.MatchID,
	})
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, fmt.Sprintf("%s%s", matchKeyPrefix, input.MatchID))
	if match.ChannelID != "" {
		pipe.ZRem(ctx, fmt.Sprintf("%s%s", channelMatchesKeyPrefix, match.ChannelID), input.MatchID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete match: %w", err)
	}

	return nil
}
