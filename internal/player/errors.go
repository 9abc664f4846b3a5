package player

// PlayerError is a custom error type for player errors
type PlayerError string

// Error implements the error interface
func (e PlayerError) Error() string {
	return string(e)
}

const (
	ErrNilConfig        PlayerError = "config cannot be nil"
	ErrEmptyName        PlayerError = "player name cannot be empty"
	ErrNilController    PlayerError = "controller cannot be nil"
	ErrNoChoice         PlayerError = "controller made no choice"
	ErrInvalidCardIndex PlayerError = "controller chose a card index out of range"
	ErrNoLegalCard      PlayerError = "no legal card to play"
)
