package controller

import (
	"github.com/KirkDiggler/cribbage/internal/cards"
	"github.com/KirkDiggler/cribbage/internal/rng"
)

// RandomConfig holds configuration for the random controller
type RandomConfig struct {
	// Roller picks the index
	Roller rng.Roller
}

// Random picks uniformly among the available cards
type Random struct {
	roller rng.Roller
}

// NewRandom creates a random controller
func NewRandom(cfg *RandomConfig) (*Random, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Roller == nil {
		return nil, ErrNilRoller
	}

	return &Random{roller: cfg.Roller}, nil
}

// GetCardIndex returns a random index, or false when nothing is available
func (c *Random) GetCardIndex(available []cards.Card) (int, bool) {
	if len(available) == 0 {
		return 0, false
	}
	return c.roller.Roll(len(available)) - 1, true
}
