package match

import "github.com/KirkDiggler/cribbage/internal/models"

type SaveMatchInput struct {
	Match *models.Match
}

type GetMatchInput struct {
	MatchID string
}

type GetMatchesByChannelInput struct {
	ChannelID string

	// Limit caps the number of matches returned; zero means DefaultHistoryLimit
	Limit int
}

type GetMatchesByChannelOutput struct {
	// Matches are newest first
	Matches []*models.Match
}

type DeleteMatchInput struct {
	MatchID string
}
