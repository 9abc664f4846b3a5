package player

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
	playerKeyPrefix       = "player:"
	matchPlayersKeyPrefix = "match_players:"

	// recordResultRetries bounds optimistic-lock retries in RecordResult
	recordResultRetries = 5
)

// ErrPlayerNotFound is returned when a player is not found
var ErrPlayerNotFound = errors.New("player not found")

// Config holds configuration for the Redis player repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed player repository
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

// SavePlayer persists a player to Redis
func (r *redisRepository) SavePlayer(ctx context.Context, input *SavePlayerInput) error {
	if input == nil || input.Player == nil {
		return errors.New("input and player cannot be nil")
	}

	player := input.Player
	if player.ID == "" {
		return errors.New("player ID cannot be empty")
	}

	playerJSON, err := json.Marshal(player)
	if err != nil {
		return fmt.Errorf("failed to marshal player: %w", err)
	}

	pipe := r.client.Pipeline()

	playerKey := fmt.Sprintf("%s%s", playerKeyPrefix, player.ID)
	pipe.Set(ctx, playerKey, playerJSON, 0)

	if player.LastMatchID != "" {
		matchPlayersKey := fmt.Sprintf("%s%s", matchPlayersKeyPrefix, player.LastMatchID)
		pipe.SAdd(ctx, matchPlayersKey, player.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save player: %w", err)
	}

	return nil
}

// GetPlayer retrieves a player by ID from Redis
func (r *redisRepository) GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.Player, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	return r.getPlayer(ctx, r.client, input.PlayerID)
}

func (r *redisRepository) getPlayer(ctx context.Context, c redis.Cmdable, playerID string) (*models.Player, error) {
	playerKey := fmt.Sprintf("%s%s", playerKeyPrefix, playerID)
	playerJSON, err := c.Get(ctx, playerKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	var player models.Player
	if err := json.Unmarshal([]byte(playerJSON), &player); err != nil {
		return nil, fmt.Errorf("failed to unmarshal player: %w", err)
	}

	return &player, nil
}

// GetPlayersInMatch retrieves all players recorded against a match
func (r *redisRepository) GetPlayersInMatch(ctx context.Context, input *GetPlayersInMatchInput) (*GetPlayersInMatchOutput, error) {
	if input == nil || input.MatchID == "" {
		return nil, errors.New("input and match ID cannot be empty")
	}

	matchPlayersKey := fmt.Sprintf("%s%s", matchPlayersKeyPrefix, input.MatchID)
	playerIDs, err := r.client.SMembers(ctx, matchPlayersKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get player IDs for match: %w", err)
	}

	if len(playerIDs) == 0 {
		return &GetPlayersInMatchOutput{
			Players: []*models.Player{},
		}, nil
	}

	pipe := r.client.Pipeline()
	playerCommands := make(map[string]*redis.StringCmd, len(playerIDs))
	for _, playerID := range playerIDs {
		playerCommands[playerID] = pipe.Get(ctx, fmt.Sprintf("%s%s", playerKeyPrefix, playerID))
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get players: %w", err)
	}

	players := make([]*models.Player, 0, len(playerIDs))
	for playerID, cmd := range playerCommands {
		playerJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get player %s: %w", playerID, err)
		}

		var player models.Player
		if err := json.Unmarshal([]byte(playerJSON), &player); err != nil {
			return nil, fmt.Errorf("failed to unmarshal player %s: %w", playerID, err)
		}
		players = append(players, &player)
	}

	return &GetPlayersInMatchOutput{
		Players: players,
	}, nil
}

// RecordResult loads (or starts) a player's stats, applies the result and
// writes it back under WATCH so concurrent results are not lost
func (r *redisRepository) RecordResult(ctx context.Context, input *RecordResultInput) (*models.Player, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	if input.MatchID == "" {
		return nil, errors.New("match ID cannot be empty")
	}

	playerKey := fmt.Sprintf("%s%s", playerKeyPrefix, input.PlayerID)
	matchPlayersKey := fmt.Sprintf("%s%s", matchPlayersKeyPrefix, input.MatchID)

	var updated *models.Player
	txf := func(tx *redis.Tx) error {
		player, err := r.getPlayer(ctx, tx, input.PlayerID)
		if err != nil && !errors.Is(err, ErrPlayerNotFound) {
			return err
		}
		if player == nil {
			player = &models.Player{ID: input.PlayerID}
		}

		applyResult(player, input)

		playerJSON, err := json.Marshal(player)
		if err != nil {
			return fmt.Errorf("failed to marshal player: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, playerKey, playerJSON, 0)
			pipe.SAdd(ctx, matchPlayersKey, input.PlayerID)
			return nil
		})
		if err != nil {
			return err
		}

		updated = player
		return nil
	}

	for i := 0; i < recordResultRetries; i++ {
		err := r.client.Watch(ctx, txf, playerKey)
		if err == nil {
			return updated, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return nil, fmt.Errorf("failed to record result: %w", err)
	}

	return nil, errors.New("failed to record result: too much contention")
}

func applyResult(player *models.Player, input *RecordResultInput) {
	if input.Name != "" {
		player.Name = input.Name
	}

	player.MatchesPlayed++
	player.TotalPoints += input.Points

	skunked := input.Skunk == models.SkunkSingle || input.Skunk == models.SkunkDouble
	if input.Won {
		player.Wins++
		if skunked {
			player.SkunksGiven++
		}
	} else {
		player.Losses++
		if skunked {
			player.SkunksTaken++
		}
	}

	if input.BestHand > player.BestHand {
		player.BestHand = input.BestHand
	}

	player.LastMatchID = input.MatchID
	player.UpdatedAt = input.Timestamp
}
