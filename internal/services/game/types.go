package game

import (
	"log/slog"

	"github.com/KirkDiggler/cribbage/internal/cards"
	"github.com/KirkDiggler/cribbage/internal/common/clock"
	"github.com/KirkDiggler/cribbage/internal/common/uuid"
	"github.com/KirkDiggler/cribbage/internal/controller"
	"github.com/KirkDiggler/cribbage/internal/models"
	"github.com/KirkDiggler/cribbage/internal/pegging"
	matchRepo "github.com/KirkDiggler/cribbage/internal/repositories/match"
	playerRepo "github.com/KirkDiggler/cribbage/internal/repositories/player"
	scoreRepo "github.com/KirkDiggler/cribbage/internal/repositories/score"
	"github.com/KirkDiggler/cribbage/internal/rng"
	"github.com/KirkDiggler/cribbage/internal/scoring"
)

const (
	// DefaultTargetScore is the length of the board
	DefaultTargetScore = 121

	// DefaultMaxRounds bounds the number of deals in one match
	DefaultMaxRounds = 1000

	// DefaultMaxTurns bounds the turns of one play phase
	DefaultMaxTurns = 100

	// DealSize is the number of cards dealt to each player
	DealSize = 6

	// DiscardCount is the number of cards each player lays away to the crib
	DiscardCount = 2

	// maxCuts bounds the recuts when both players cut the same rank
	maxCuts = 20
)

// Display receives every step of a match as it happens
type Display interface {
	Render(event *Event)
}

// Config holds configuration for the game service
type Config struct {
	// Roller shuffles decks
	Roller rng.Roller

	// Clock stamps matches and score records
	Clock clock.Clock

	// UUID generates match and score record IDs
	UUID uuid.UUID

	// Optional repositories; results are only recorded when set
	MatchRepo  matchRepo.Repository
	PlayerRepo playerRepo.Repository
	ScoreRepo  scoreRepo.Repository

	// Display is told about every step; NoOp when nil
	Display Display

	// Logger defaults to slog.Default()
	Logger *slog.Logger

	// TargetScore defaults to DefaultTargetScore
	TargetScore int

	// MaxRounds defaults to DefaultMaxRounds
	MaxRounds int

	// MaxTurns defaults to DefaultMaxTurns
	MaxTurns int
}

// Seat describes one player taking part in a match
type Seat struct {
	ID         string
	Name       string
	Controller controller.Controller
}

// PlayMatchInput contains parameters for playing a match
type PlayMatchInput struct {
	// ChannelID is where the match was started; empty for terminal games
	ChannelID string

	// Players must hold exactly two seats
	Players []*Seat

	// Deck, when set, is used unshuffled for the cut and for every deal
	Deck []cards.Card
}

// PlayMatchOutput contains the result of a match
type PlayMatchOutput struct {
	Match *models.Match

	// Records are the scoring events of the match in order
	Records []*models.ScoreRecord
}

// ScoreHandInput contains parameters for counting a hand
type ScoreHandInput struct {
	Hand    []cards.Card
	Starter cards.Card
	IsCrib  bool
}

// ScoreHandOutput contains the counted hand
type ScoreHandOutput struct {
	Breakdown *scoring.Breakdown
}

// ScorePeggingInput contains the cards to replay, in play order
type ScorePeggingInput struct {
	Cards []cards.Card
}

// PeggingPlay is one replayed card
type PeggingPlay struct {
	Card cards.Card

	// Count is the stack count after the card
	Count int

	// Points includes a GO point when the next card had to start a new stack
	Points pegging.Points

	// NewStack is set when this card started a fresh stack
	NewStack bool
}

// ScorePeggingOutput contains the replayed sequence
type ScorePeggingOutput struct {
	Plays []*PeggingPlay
	Total int
}

// GetPlayerStatsInput contains parameters for looking up a player
type GetPlayerStatsInput struct {
	PlayerID string
}

// GetPlayerStatsOutput contains a player's stats
type GetPlayerStatsOutput struct {
	Player *models.Player

	// Totals are lifetime points per kind; nil without a score repository
	Totals map[models.ScoreKind]int
}

// GetMatchHistoryInput contains parameters for listing matches
type GetMatchHistoryInput struct {
	ChannelID string
	Limit     int
}

// GetMatchHistoryOutput contains recent matches, newest first
type GetMatchHistoryOutput struct {
	Matches []*models.Match
}

// EventKind names a step of a match
type EventKind string

const (
	EventCut      EventKind = "cut"
	EventDeal     EventKind = "deal"
	EventDiscard  EventKind = "discard"
	EventStarter  EventKind = "starter"
	EventHeels    EventKind = "heels"
	EventPlay     EventKind = "play"
	EventGo       EventKind = "go"
	EventReset    EventKind = "reset"
	EventCount    EventKind = "count"
	EventGameOver EventKind = "game_over"
)

// PlayerView is a snapshot of one player at the time of an event
type PlayerView struct {
	ID       string
	Name     string
	Points   int
	Hand     []cards.Card
	Crib     []cards.Card
	IsDealer bool
}

// Event is one step of a match as reported to a Display
type Event struct {
	Kind  EventKind
	Round int

	// Players are both sides, first seat first
	Players []PlayerView

	// PlayerID is who acted or scored, when anyone did
	PlayerID string

	// Cards are the cards involved: both cuts, a discard or a counted hand
	Cards []cards.Card

	Starter *cards.Card

	// Stack and Count describe the play stack
	Stack []cards.Card
	Count int

	// Points is what PlayerID scored with this event
	Points int

	Peg       *pegging.Points
	Breakdown *scoring.Breakdown
	IsCrib    bool

	// Match is set on EventGameOver
	Match *models.Match
}
