package score

import "github.com/KirkDiggler/cribbage/internal/models"

// AddScoreRecordInput contains parameters for adding a score record
type AddScoreRecordInput struct {
	Record *models.ScoreRecord
}

// GetScoreRecordsForMatchInput contains parameters for retrieving a match's records
type GetScoreRecordsForMatchInput struct {
	MatchID string
}

// GetScoreRecordsForMatchOutput contains the records of a match
type GetScoreRecordsForMatchOutput struct {
	Records []*models.ScoreRecord
}

// GetScoreRecordsForPlayerInput contains parameters for retrieving a player's records
type GetScoreRecordsForPlayerInput struct {
	PlayerID string
}

// GetScoreRecordsForPlayerOutput contains the records of a player
type GetScoreRecordsForPlayerOutput struct {
	Records []*models.ScoreRecord
}

// GetScoreTotalsInput contains parameters for retrieving a player's totals
type GetScoreTotalsInput struct {
	PlayerID string
}

// GetScoreTotalsOutput holds lifetime points keyed by kind
type GetScoreTotalsOutput struct {
	Totals map[models.ScoreKind]int
}
