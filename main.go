package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/KirkDiggler/cribbage/internal/common/clock"
	"github.com/KirkDiggler/cribbage/internal/common/uuid"
	"github.com/KirkDiggler/cribbage/internal/controller"
	"github.com/KirkDiggler/cribbage/internal/display"
	"github.com/KirkDiggler/cribbage/internal/player"
	"github.com/KirkDiggler/cribbage/internal/repositories/match"
	playerRepo "github.com/KirkDiggler/cribbage/internal/repositories/player"
	"github.com/KirkDiggler/cribbage/internal/repositories/score"
	"github.com/KirkDiggler/cribbage/internal/rng"
	gameService "github.com/KirkDiggler/cribbage/internal/services/game"
	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
	"github.com/redis/go-redis/v9"
)

const (
	humanIDPrefix = "terminal:"
	computerID    = "computer"
	computerName  = "Computer"
)

func main() {
	// A missing .env file is fine
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Stdin, os.Stdout)
	stop()

	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

// run plays one match at the terminal. An abandoned match is not an error.
func run(ctx context.Context, in io.Reader, out io.Writer) error {
	logLevel := pterm.LogLevelWarn
	if getEnv("CRIBBAGE_DEBUG", "") != "" {
		logLevel = pterm.LogLevelDebug
	}
	logger := slog.New(pterm.NewSlogHandler(pterm.DefaultLogger.WithLevel(logLevel)))

	seed, err := strconv.ParseInt(getEnv("CRIBBAGE_SEED", "0"), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid CRIBBAGE_SEED: %w", err)
	}

	targetScore, err := strconv.Atoi(getEnv("CRIBBAGE_TARGET_SCORE", strconv.Itoa(gameService.DefaultTargetScore)))
	if err != nil {
		return fmt.Errorf("invalid CRIBBAGE_TARGET_SCORE: %w", err)
	}

	name := getEnv("CRIBBAGE_PLAYER_NAME", "Player")
	humanID := humanIDPrefix + name

	roller := rng.New(&rng.Config{Seed: seed})

	var ids uuid.UUID = uuid.New()
	if seed != 0 {
		ids = uuid.NewSequential(strconv.FormatInt(seed, 10))
	}

	cfg := &gameService.Config{
		Roller:      roller,
		Clock:       &clock.DefaultClock{},
		UUID:        ids,
		Display:     display.New(&display.Config{ViewerID: humanID, Writer: out}),
		Logger:      logger,
		TargetScore: targetScore,
	}

	// Results are only kept when Redis is configured
	if addr := getEnv("REDIS_ADDR", ""); addr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       0,
		})
		defer redisClient.Close()

		if err := wireRepositories(ctx, cfg, redisClient); err != nil {
			return fmt.Errorf("failed to set up storage: %w", err)
		}
	}

	svc, err := gameService.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create game service: %w", err)
	}

	computer, err := controller.NewRandom(&controller.RandomConfig{Roller: roller})
	if err != nil {
		return fmt.Errorf("failed to create computer player: %w", err)
	}

	// Plain mode reads card numbers line by line, for piped input and dumb terminals
	var human controller.Controller = display.NewSelector("", nil)
	if getEnv("CRIBBAGE_PLAIN", "") != "" {
		pterm.DisableStyling()
		human, err = controller.NewPrompt(&controller.PromptConfig{In: in, Out: out})
		if err != nil {
			return fmt.Errorf("failed to create prompt: %w", err)
		}
	}

	pterm.Fprintln(out, pterm.DefaultHeader.WithFullWidth().Sprint("Cribbage"))

	output, err := svc.PlayMatch(ctx, &gameService.PlayMatchInput{
		Players: []*gameService.Seat{
			{ID: humanID, Name: name, Controller: human},
			{ID: computerID, Name: computerName, Controller: computer},
		},
	})
	switch {
	case errors.Is(err, player.ErrNoChoice), errors.Is(err, context.Canceled):
		pterm.Fprintln(out, pterm.Warning.Sprint("Match abandoned"))
		return nil
	case err != nil:
		return fmt.Errorf("match failed: %w", err)
	}

	if output.Match.WinnerID == humanID {
		pterm.Fprintln(out, pterm.Success.Sprint("You win!"))
	} else {
		pterm.Fprintln(out, pterm.Info.Sprint("The computer wins this one."))
	}

	if cfg.PlayerRepo == nil {
		return nil
	}

	stats, err := svc.GetPlayerStats(ctx, &gameService.GetPlayerStatsInput{PlayerID: humanID})
	if err != nil {
		pterm.Fprintln(out, pterm.Warning.Sprintf("Could not load your stats: %v", err))
		return nil
	}
	p := stats.Player
	pterm.Fprintln(out, pterm.Info.Sprintf("Lifetime record %d-%d, best hand %d, skunks given %d", p.Wins, p.Losses, p.BestHand, p.SkunksGiven))
	return nil
}

// wireRepositories attaches the Redis repositories to the game config
func wireRepositories(ctx context.Context, cfg *gameService.Config, redisClient *redis.Client) error {
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		return err
	}

	matches, err := match.NewRedis(&match.Config{RedisClient: redisClient})
	if err != nil {
		return err
	}

	players, err := playerRepo.NewRedis(&playerRepo.Config{RedisClient: redisClient})
	if err != nil {
		return err
	}

	scores, err := score.NewRedis(&score.Config{RedisClient: redisClient})
	if err != nil {
		return err
	}

	cfg.MatchRepo = matches
	cfg.PlayerRepo = players
	cfg.ScoreRepo = scores
	return nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
