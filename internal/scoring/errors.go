package scoring

// ScoringError is a custom error type for scoring input violations
type ScoringError string

// Error implements the error interface
func (e ScoringError) Error() string {
	return string(e)
}

const (
	ErrHandSize    ScoringError = "hand must hold exactly 4 cards"
	ErrInvalidRank ScoringError = "card rank out of range"
	ErrInvalidSuit ScoringError = "card suit out of range"
)
