package score

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/KirkDiggler/cribbage/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	scoreKeyPrefix            = "score:"
	matchScoresKeyPrefix      = "match_scores:"
	playerScoresKeyPrefix     = "player_scores:"
	playerScoreStatsKeyPrefix = "player_score_stats:"
)

// Config holds configuration for the Redis score repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed score repository
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

// AddScoreRecord adds a score record to the ledger
func (r *redisRepository) AddScoreRecord(ctx context.Context, input *AddScoreRecordInput) error {
	if input == nil || input.Record == nil {
		return errors.New("input and record cannot be nil")
	}

	record := input.Record
	if record.ID == "" {
		return errors.New("score record ID cannot be empty")
	}

	if record.MatchID == "" || record.PlayerID == "" {
		return errors.New("score record needs a match and a player")
	}

	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal score record: %w", err)
	}

	pipe := r.client.Pipeline()

	pipe.Set(ctx, fmt.Sprintf("%s%s", scoreKeyPrefix, record.ID), recordJSON, 0)

	z := redis.Z{
		Score:  float64(record.Timestamp.UnixNano()),
		Member: record.ID,
	}
	pipe.ZAdd(ctx, fmt.Sprintf("%s%s", matchScoresKeyPrefix, record.MatchID), z)
	pipe.ZAdd(ctx, fmt.Sprintf("%s%s", playerScoresKeyPrefix, record.PlayerID), z)

	statsKey := fmt.Sprintf("%s%s", playerScoreStatsKeyPrefix, record.PlayerID)
	pipe.HIncrBy(ctx, statsKey, string(record.Kind), int64(record.Points))

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to add score record: %w", err)
	}

	return nil
}

// GetScoreRecordsForMatch retrieves all score records for a match
func (r *redisRepository) GetScoreRecordsForMatch(ctx context.Context, input *GetScoreRecordsForMatchInput) (*GetScoreRecordsForMatchOutput, error) {
	if input == nil || input.MatchID == "" {
		return nil, errors.New("input and match ID cannot be empty")
	}

	records, err := r.getRecords(ctx, fmt.Sprintf("%s%s", matchScoresKeyPrefix, input.MatchID))
	if err != nil {
		return nil, err
	}

	return &GetScoreRecordsForMatchOutput{
		Records: records,
	}, nil
}

// GetScoreRecordsForPlayer retrieves all score records for a player
func (r *redisRepository) GetScoreRecordsForPlayer(ctx context.Context, input *GetScoreRecordsForPlayerInput) (*GetScoreRecordsForPlayerOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	records, err := r.getRecords(ctx, fmt.Sprintf("%s%s", playerScoresKeyPrefix, input.PlayerID))
	if err != nil {
		return nil, err
	}

	return &GetScoreRecordsForPlayerOutput{
		Records: records,
	}, nil
}

// GetScoreTotals reads the per-kind totals hash for a player
func (r *redisRepository) GetScoreTotals(ctx context.Context, input *GetScoreTotalsInput) (*GetScoreTotalsOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	statsKey := fmt.Sprintf("%s%s", playerScoreStatsKeyPrefix, input.PlayerID)
	raw, err := r.client.HGetAll(ctx, statsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get score totals: %w", err)
	}

	totals := make(map[models.ScoreKind]int, len(raw))
	for kind, value := range raw {
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("invalid total for %s: %w", kind, err)
		}
		totals[models.ScoreKind(kind)] = n
	}

	return &GetScoreTotalsOutput{
		Totals: totals,
	}, nil
}

// getRecords loads every record referenced by an index key in index order
func (r *redisRepository) getRecords(ctx context.Context, indexKey string) ([]*models.ScoreRecord, error) {
	recordIDs, err := r.client.ZRange(ctx, indexKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get score record IDs: %w", err)
	}

	if len(recordIDs) == 0 {
		return []*models.ScoreRecord{}, nil
	}

	pipe := r.client.Pipeline()
	cmds := make([]*redis.StringCmd, len(recordIDs))
	for i, recordID := range recordIDs {
		cmds[i] = pipe.Get(ctx, fmt.Sprintf("%s%s", scoreKeyPrefix, recordID))
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get score records: %w", err)
	}

	records := make([]*models.ScoreRecord, 0, len(recordIDs))
	for i, cmd := range cmds {
		recordJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get score record %s: %w", recordIDs[i], err)
		}

		var record models.ScoreRecord
		if err := json.Unmarshal([]byte(recordJSON), &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal score record %s: %w", recordIDs[i], err)
		}
		records = append(records, &record)
	}

	return records, nil
}
