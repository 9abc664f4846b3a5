package controller

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/KirkDiggler/cribbage/internal/cards"
)

// PromptConfig holds configuration for the line-based prompt controller
type PromptConfig struct {
	// In is where answers are read from, one per line
	In io.Reader

	// Out receives the prompt and any complaint about the answer
	Out io.Writer
}

// Prompt asks for a 1-based card number on a text stream. It keeps asking
// until it gets a number in range or the input ends.
type Prompt struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewPrompt creates a prompt controller
func NewPrompt(cfg *PromptConfig) (*Prompt, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.In == nil {
		return nil, ErrNilReader
	}

	if cfg.Out == nil {
		return nil, ErrNilWriter
	}

	return &Prompt{
		scanner: bufio.NewScanner(cfg.In),
		out:     cfg.Out,
	}, nil
}

// GetCardIndex lists the cards and reads the choice
func (c *Prompt) GetCardIndex(available []cards.Card) (int, bool) {
	if len(available) == 0 {
		return 0, false
	}

	for {
		for i, card := range available {
			fmt.Fprintf(c.out, "  %d) %s\n", i+1, card)
		}
		fmt.Fprintf(c.out, "Choose a card (1 to %d): ", len(available))

		if !c.scanner.Scan() {
			return 0, false
		}

		input := strings.TrimSpace(c.scanner.Text())
		choice, err := strconv.Atoi(input)
		switch {
		case err != nil:
			fmt.Fprintf(c.out, "%s is not a number!\n", input)
		case choice < 1 || choice > len(available):
			fmt.Fprintf(c.out, "%d is out of bounds. Please choose a number between 1 and %d!\n", choice, len(available))
		default:
			return choice - 1, true
		}
	}
}
