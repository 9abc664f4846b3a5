package models

import (
	"time"
)

// Skunk margins below the target score: at 121 a loser under 91 is skunked
// and under 61 double skunked
const (
	SkunkMargin       = 30
	DoubleSkunkMargin = 60
)

// SkunkStatus describes how badly the loser lost
type SkunkStatus string

const (
	// SkunkNone is an ordinary loss
	SkunkNone SkunkStatus = "none"

	// SkunkSingle is a loss more than SkunkMargin points short of the target
	SkunkSingle SkunkStatus = "skunk"

	// SkunkDouble is a loss more than DoubleSkunkMargin points short of the target
	SkunkDouble SkunkStatus = "double_skunk"
)

// SkunkFor returns the skunk status of a losing score in a match played to
// targetScore. Short games can have no skunk at all.
func SkunkFor(targetScore, loserPoints int) SkunkStatus {
	switch {
	case loserPoints < targetScore-DoubleSkunkMargin:
		return SkunkDouble
	case loserPoints < targetScore-SkunkMargin:
		return SkunkSingle
	default:
		return SkunkNone
	}
}

// MatchPlayer is one side of a finished match
type MatchPlayer struct {
	// ID is the player's identifier
	ID string

	// Name is the player's display name
	Name string

	// Points is the final score
	Points int

	// BestHand is the highest hand or crib count during the match
	BestHand int

	// PeggingPoints is the total pegged during play phases, GO included
	PeggingPoints int
}

// Match is the record of a completed match
type Match struct {
	// ID is the unique identifier for the match
	ID string

	// ChannelID is where the match was started (empty for terminal games)
	ChannelID string

	// Players holds both sides in seat order
	Players []*MatchPlayer

	// WinnerID is the ID of the player who reached the target score
	WinnerID string

	// TargetScore is the score needed to win
	TargetScore int

	// Rounds is how many deals were played
	Rounds int

	// Skunk is the loser's skunk status
	Skunk SkunkStatus

	// StartedAt is when the match started
	StartedAt time.Time

	// FinishedAt is when the match ended
	FinishedAt time.Time
}

// Winner returns the winning side, or nil when the match has no winner
func (m *Match) Winner() *MatchPlayer {
	for _, p := range m.Players {
		if p.ID == m.WinnerID {
			return p
		}
	}
	return nil
}

// Loser returns the losing side, or nil when the match has no winner
func (m *Match) Loser() *MatchPlayer {
	if m.WinnerID == "" {
		return nil
	}
	for _, p := range m.Players {
		if p.ID != m.WinnerID {
			return p
		}
	}
	return nil
}
