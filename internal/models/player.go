package models

import "time"

// Player holds the running stats of someone who has finished matches
type Player struct {
	// ID is the unique identifier for the player
	ID string

	// Name is the player's display name
	Name string

	// MatchesPlayed counts finished matches
	MatchesPlayed int

	// Wins counts matches won
	Wins int

	// Losses counts matches lost
	Losses int

	// SkunksGiven counts wins where the opponent was skunked
	SkunksGiven int

	// SkunksTaken counts losses where this player was skunked
	SkunksTaken int

	// BestHand is the highest hand or crib count ever recorded
	BestHand int

	// TotalPoints is the sum of final scores over all matches
	TotalPoints int

	// LastMatchID is the most recent match the player finished
	LastMatchID string

	// UpdatedAt is when the stats last changed
	UpdatedAt time.Time
}
