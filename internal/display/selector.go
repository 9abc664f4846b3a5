package display

import (
	"fmt"
	"slices"

	"github.com/KirkDiggler/cribbage/internal/cards"
	"github.com/pterm/pterm"
)

// blindAbove is the most cards a Selector shows face up; bigger choices are
// a cut from the deck and are offered by position only
const blindAbove = 6

// ShowFunc asks the user to pick one of options and returns the choice
type ShowFunc func(prompt string, options []string) (string, error)

// Selector is a controller that asks the person at the keyboard through
// pterm's interactive select
type Selector struct {
	prompt string
	show   ShowFunc
}

// NewSelector creates a Selector. A nil show uses pterm.DefaultInteractiveSelect.
func NewSelector(prompt string, show ShowFunc) *Selector {
	if prompt == "" {
		prompt = "Choose a card"
	}
	if show == nil {
		show = interactiveSelect
	}
	return &Selector{prompt: prompt, show: show}
}

func interactiveSelect(prompt string, options []string) (string, error) {
	return pterm.DefaultInteractiveSelect.
		WithOptions(options).
		WithMaxHeight(len(options)).
		Show(prompt)
}

// GetCardIndex shows the choices and maps the answer back to an index
func (s *Selector) GetCardIndex(available []cards.Card) (int, bool) {
	if len(available) == 0 {
		return 0, false
	}

	options := make([]string, len(available))
	prompt := s.prompt
	if len(available) > blindAbove {
		prompt = "Cut the deck"
		for i := range available {
			options[i] = fmt.Sprintf("Card %d", i+1)
		}
	} else {
		for i, c := range available {
			options[i] = c.String()
		}
	}

	choice, err := s.show(prompt, options)
	if err != nil {
		return 0, false
	}

	index := slices.Index(options, choice)
	if index < 0 {
		return 0, false
	}
	return index, true
}
