package messaging

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/cribbage/internal/models"
	"github.com/KirkDiggler/cribbage/internal/rng"
)

// service implements the Service interface
type service struct {
	roller rng.Roller
}

// New creates a new messaging service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Roller == nil {
		return nil, errors.New("roller cannot be nil")
	}

	return &service{
		roller: cfg.Roller,
	}, nil
}

// pick returns one of messages at random
func (s *service) pick(messages []string) string {
	return messages[s.roller.Roll(len(messages))-1]
}

// GetHandScoreMessage comments on a counted hand
func (s *service) GetHandScoreMessage(ctx context.Context, input *GetHandScoreMessageInput) (*GetHandScoreMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	name := input.PlayerName
	if name == "" {
		name = "Someone"
	}

	what := "hand"
	if input.IsCrib {
		what = "crib"
	}

	var messages []string
	var title string
	var tone MessageTone

	switch {
	case input.Points == PerfectHand:
		title = "Twenty-nine!"
		tone = ToneCelebration
		messages = []string{
			fmt.Sprintf("%s just counted the perfect %s. Frame it.", name, what),
			fmt.Sprintf("Three fives, a jack and the right starter. %s will be telling this story for years.", name),
			fmt.Sprintf("The one-in-216,580 %s. Buy %s a lottery ticket.", what, name),
		}
	case input.Points == 0:
		title = "Nineteen"
		tone = ToneSarcastic
		messages = []string{
			fmt.Sprintf("%s counts \"nineteen\". That's cribbage for nothing at all.", name),
			fmt.Sprintf("Not a single fifteen in that %s. Bold strategy, %s.", what, name),
			fmt.Sprintf("Zero. %s may want to rethink that discard.", name),
		}
	case input.Points >= BigHand:
		title = fmt.Sprintf("%d points", input.Points)
		tone = ToneCelebration
		messages = []string{
			fmt.Sprintf("%s pegs %d with that %s. The board is shaking.", name, input.Points, what),
			fmt.Sprintf("A %d point %s? Somebody stacked the deck, %s.", input.Points, what, name),
			fmt.Sprintf("%d! %s is moving up the board in a hurry.", input.Points, name),
		}
	default:
		title = fmt.Sprintf("%d points", input.Points)
		tone = ToneNeutral
		messages = []string{
			fmt.Sprintf("%s counts %d for the %s.", name, input.Points, what),
			fmt.Sprintf("A solid %d for %s. Keep pegging.", input.Points, name),
			fmt.Sprintf("%d points. Not bad, %s, not bad.", input.Points, name),
		}
	}

	return &GetHandScoreMessageOutput{
		Title:   title,
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}

// GetMatchResultMessage announces a finished match
func (s *service) GetMatchResultMessage(ctx context.Context, input *GetMatchResultMessageInput) (*GetMatchResultMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var messages []string
	var title string
	tone := ToneCelebration

	switch input.Skunk {
	case models.SkunkDouble:
		title = "Double Skunk!"
		tone = ToneFunny
		messages = []string{
			fmt.Sprintf("%s wins %d to %d. %s didn't even make it past 60. Double skunk!", input.WinnerName, input.WinnerPoints, input.LoserPoints, input.LoserName),
			fmt.Sprintf("%s is still looking for the second street. %s takes it with a double skunk.", input.LoserName, input.WinnerName),
		}
	case models.SkunkSingle:
		title = "Skunked!"
		tone = ToneFunny
		messages = []string{
			fmt.Sprintf("%s wins %d to %d and %s smells a little funny. Skunk!", input.WinnerName, input.WinnerPoints, input.LoserPoints, input.LoserName),
			fmt.Sprintf("%s never made it to the last street. %s skunks them %d to %d.", input.LoserName, input.WinnerName, input.WinnerPoints, input.LoserPoints),
		}
	default:
		title = fmt.Sprintf("%s wins!", input.WinnerName)
		messages = []string{
			fmt.Sprintf("%s pegs out first, %d to %d. Good game, %s.", input.WinnerName, input.WinnerPoints, input.LoserPoints, input.LoserName),
			fmt.Sprintf("%s crosses the line at %d. %s finishes on %d.", input.WinnerName, input.WinnerPoints, input.LoserName, input.LoserPoints),
			fmt.Sprintf("That's game! %s beats %s %d to %d.", input.WinnerName, input.LoserName, input.WinnerPoints, input.LoserPoints),
		}
	}

	return &GetMatchResultMessageOutput{
		Title:   title,
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}

// GetErrorMessage returns a user-friendly error message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var messages []string
	tone := ToneFunny

	switch input.ErrorType {
	case ErrorTypeInvalidCards:
		messages = []string{
			"I can't read those cards. Try something like `5H 5D 5C JS`.",
			"That's not a card I've ever seen in a deck. Use rank then suit, like `10D` or `QS`.",
		}
	case ErrorTypeHandSize:
		messages = []string{
			"A hand is exactly four cards, plus the starter.",
			"Count again: four cards in the hand, one starter.",
		}
	case ErrorTypeStorageUnavailable:
		tone = ToneNeutral
		messages = []string{
			"The scoreboard is unavailable right now. Try again in a bit.",
			"I lost my pegboard. Results can't be loaded at the moment.",
		}
	case ErrorTypeNotFound:
		tone = ToneNeutral
		messages = []string{
			"Nothing on the board yet. Play a match first!",
			"No results found. Try `/cribbage simulate` to get started.",
		}
	default:
		messages = []string{
			"Something went wrong. Muggins!",
			"Oops, I misdealt. Please try again.",
		}
	}

	return &GetErrorMessageOutput{
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}
