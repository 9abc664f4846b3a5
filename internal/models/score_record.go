package models

import (
	"time"
)

// ScoreKind is what a score record was earned for
type ScoreKind string

const (
	// ScoreKindHand is a counted hand
	ScoreKindHand ScoreKind = "hand"

	// ScoreKindCrib is a counted crib
	ScoreKindCrib ScoreKind = "crib"

	// ScoreKindHeels is the dealer's two for a jack starter
	ScoreKindHeels ScoreKind = "heels"

	// ScoreKindPegging is the total pegged in one play phase
	ScoreKindPegging ScoreKind = "pegging"
)

// ScoreRecord is one entry in the score ledger
type ScoreRecord struct {
	// ID is the unique identifier for the record
	ID string

	// MatchID is the match the points were scored in
	MatchID string

	// PlayerID is who scored
	PlayerID string

	// Round is the deal number, starting at 1
	Round int

	// Kind is what the points were for
	Kind ScoreKind

	// Points is the amount scored
	Points int

	// Cards are the counted cards in short form, e.g. "5H"
	Cards []string

	// Starter is the starter card in short form
	Starter string

	// Timestamp is when the points were scored
	Timestamp time.Time
}
