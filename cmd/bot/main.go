package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/cribbage/internal/common/clock"
	"github.com/KirkDiggler/cribbage/internal/common/uuid"
	"github.com/KirkDiggler/cribbage/internal/display"
	"github.com/KirkDiggler/cribbage/internal/handlers/discord"
	"github.com/KirkDiggler/cribbage/internal/repositories/match"
	"github.com/KirkDiggler/cribbage/internal/repositories/player"
	"github.com/KirkDiggler/cribbage/internal/repositories/score"
	"github.com/KirkDiggler/cribbage/internal/rng"
	gameService "github.com/KirkDiggler/cribbage/internal/services/game"
	"github.com/KirkDiggler/cribbage/internal/services/messaging"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	// A missing .env file is fine
	_ = godotenv.Load()

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	matchRepo, err := match.NewRedis(&match.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create match repository: %v", err)
	}

	playerRepo, err := player.NewRedis(&player.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create player repository: %v", err)
	}

	scoreRepo, err := score.NewRedis(&score.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create score repository: %v", err)
	}

	roller := rng.New(&rng.Config{})

	gameSvc, err := gameService.New(&gameService.Config{
		Roller:     roller,
		Clock:      &clock.DefaultClock{},
		UUID:       uuid.New(),
		MatchRepo:  matchRepo,
		PlayerRepo: playerRepo,
		ScoreRepo:  scoreRepo,
		Display:    display.NoOp{},
	})
	if err != nil {
		log.Fatalf("Failed to create game service: %v", err)
	}

	messagingSvc, err := messaging.New(&messaging.Config{
		Roller: roller,
	})
	if err != nil {
		log.Fatalf("Failed to create messaging service: %v", err)
	}

	discordToken := getEnv("DISCORD_TOKEN", "")
	if discordToken == "" {
		log.Fatal("DISCORD_TOKEN environment variable is required")
	}

	bot, err := discord.New(&discord.Config{
		Token:            discordToken,
		ApplicationID:    getEnv("APPLICATION_ID", ""),
		GuildID:          getEnv("GUILD_ID", ""),
		GameService:      gameSvc,
		MessagingService: messagingSvc,
		Roller:           roller,
	})
	if err != nil {
		log.Fatalf("Failed to create Discord bot: %v", err)
	}

	if err := bot.Start(); err != nil {
		log.Fatalf("Failed to start Discord bot: %v", err)
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	if err := bot.Stop(); err != nil {
		log.Printf("Error stopping bot: %v", err)
	}

	log.Println("Bot has been shut down")
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
