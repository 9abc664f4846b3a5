package rng

import (
	"math/rand"
	"sync"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/KirkDiggler/cribbage/internal/rng Roller

// Roller provides the randomness for shuffles, cuts and random card picks
type Roller interface {
	// Roll returns a value in [1, sides]
	Roll(sides int) int

	// Shuffle permutes n elements through swap
	Shuffle(n int, swap func(i, j int))
}

// DefaultRoller implements Roller with math/rand. It is safe for concurrent use.
type DefaultRoller struct {
	mu     sync.Mutex
	random *rand.Rand
}

// Config for the roller
type Config struct {
	// Optional seed for reproducible games
	Seed int64
}

// New creates a new roller
func New(cfg *Config) *DefaultRoller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &DefaultRoller{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Roll returns a uniform value in [1, sides]
func (r *DefaultRoller) Roll(sides int) int {
	if sides < 1 {
		return 1
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.random.Intn(sides) + 1
}

// Shuffle permutes n elements through swap
func (r *DefaultRoller) Shuffle(n int, swap func(i, j int)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.random.Shuffle(n, swap)
}
