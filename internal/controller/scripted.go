package controller

import (
	"github.com/KirkDiggler/cribbage/internal/cards"
)

// Scripted replays a fixed queue of card indices. Indices are handed back
// unchecked; a bad script surfaces as an out-of-range error from the caller.
type Scripted struct {
	indices []int
}

// NewScripted creates a controller that answers with indices in order
func NewScripted(indices ...int) *Scripted {
	return &Scripted{indices: append([]int(nil), indices...)}
}

// GetCardIndex pops the next scripted index
func (c *Scripted) GetCardIndex(available []cards.Card) (int, bool) {
	if len(available) == 0 || len(c.indices) == 0 {
		return 0, false
	}
	index := c.indices[0]
	c.indices = c.indices[1:]
	return index, true
}

// Remaining returns how many scripted answers are left
func (c *Scripted) Remaining() int {
	return len(c.indices)
}
