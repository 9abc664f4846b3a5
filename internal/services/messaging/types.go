package messaging

import (
	"github.com/KirkDiggler/cribbage/internal/models"
	"github.com/KirkDiggler/cribbage/internal/rng"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"

	// ToneSarcastic is a sarcastic tone
	ToneSarcastic MessageTone = "sarcastic"

	// ToneCelebration is a celebratory tone
	ToneCelebration MessageTone = "celebration"
)

// ErrorType names the failures the bot explains to users
type ErrorType string

const (
	ErrorTypeInvalidCards       ErrorType = "invalid_cards"
	ErrorTypeHandSize           ErrorType = "hand_size"
	ErrorTypeStorageUnavailable ErrorType = "storage_unavailable"
	ErrorTypeNotFound           ErrorType = "not_found"
)

// Hand thresholds that change the tone of a comment
const (
	PerfectHand = 29
	BigHand     = 16
)

// Config contains configuration for the messaging service
type Config struct {
	// Roller picks among the candidate messages
	Roller rng.Roller
}

// GetHandScoreMessageInput contains parameters for a hand comment
type GetHandScoreMessageInput struct {
	PlayerName string
	Points     int
	IsCrib     bool
}

// GetHandScoreMessageOutput contains a hand comment
type GetHandScoreMessageOutput struct {
	Title   string
	Message string
	Tone    MessageTone
}

// GetMatchResultMessageInput contains parameters for a match announcement
type GetMatchResultMessageInput struct {
	WinnerName   string
	LoserName    string
	WinnerPoints int
	LoserPoints  int
	Skunk        models.SkunkStatus
}

// GetMatchResultMessageOutput contains a match announcement
type GetMatchResultMessageOutput struct {
	Title   string
	Message string
	Tone    MessageTone
}

// GetErrorMessageInput contains parameters for getting an error message
type GetErrorMessageInput struct {
	ErrorType ErrorType
}

// GetErrorMessageOutput contains the result of getting an error message
type GetErrorMessageOutput struct {
	Message string
	Tone    MessageTone
}
