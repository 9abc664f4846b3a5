package cards

// CardError is a custom error type for card and container errors
type CardError string

// Error implements the error interface
func (e CardError) Error() string {
	return string(e)
}

const (
	ErrInvalidCard     CardError = "invalid card"
	ErrEmptyDeck       CardError = "deck is empty"
	ErrIndexOutOfRange CardError = "card index out of range"
	ErrNilShuffler     CardError = "shuffler cannot be nil"
)
