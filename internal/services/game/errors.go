package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig               GameError = "config cannot be nil"
	ErrNilRoller               GameError = "roller cannot be nil"
	ErrNilClock                GameError = "clock cannot be nil"
	ErrNilUUIDGenerator        GameError = "UUID generator cannot be nil"
	ErrNilInput                GameError = "input cannot be nil"
	ErrInvalidPlayers          GameError = "a match needs exactly two players with controllers"
	ErrDuplicatePlayer         GameError = "players must have distinct IDs"
	ErrInvalidDeck             GameError = "a fixed deck must hold 52 distinct valid cards"
	ErrCutLimit                GameError = "cut for deal kept tying"
	ErrTurnLimit               GameError = "pegging did not finish within the turn limit"
	ErrRoundLimit              GameError = "match did not finish within the round limit"
	ErrRepositoryNotConfigured GameError = "repository not configured"
	ErrEmptySequence           GameError = "card sequence cannot be empty"
	ErrMissingChannel          GameError = "channel ID is required"
	ErrMissingPlayer           GameError = "player ID is required"
)
