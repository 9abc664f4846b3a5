package pegging

import "github.com/KirkDiggler/cribbage/internal/cards"

// Points is what a single play earned, by category
type Points struct {
	Run       int `json:"run"`
	Pairs     int `json:"pairs"`
	Fifteen   int `json:"fifteen"`
	ThirtyOne int `json:"thirty_one"`
	Go        int `json:"go"`
	Total     int `json:"total"`
}

// PlayResult describes one call to PlayOnce
type PlayResult struct {
	// Played is false when the player had no legal card and passed
	Played bool

	// Card is the card put on the stack
	Card cards.Card

	// Count is the stack count after the play
	Count int

	// Points is what the play pegged, GO included
	Points Points
}
