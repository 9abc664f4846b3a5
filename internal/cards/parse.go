package cards

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

var rankCodes = map[string]Rank{
	"A": Ace, "2": Two, "3": Three, "4": Four, "5": Five, "6": Six, "7": Seven,
	"8": Eight, "9": Nine, "10": Ten, "T": Ten, "J": Jack, "Q": Queen, "K": King,
}

var suitCodes = map[rune]Suit{
	'C': Clubs, '♣': Clubs,
	'D': Diamonds, '♦': Diamonds,
	'H': Hearts, '♥': Hearts,
	'S': Spades, '♠': Spades,
}

// Parse reads a card written as rank followed by suit: "5H", "10d", "TD", "J♣".
func Parse(code string) (Card, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	suitRune, size := utf8.DecodeLastRuneInString(code)
	if suitRune == utf8.RuneError || size == len(code) {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, code)
	}

	suit, ok := suitCodes[suitRune]
	if !ok {
		return Card{}, fmt.Errorf("%w: unknown suit in %q", ErrInvalidCard, code)
	}

	rank, ok := rankCodes[code[:len(code)-size]]
	if !ok {
		return Card{}, fmt.Errorf("%w: unknown rank in %q", ErrInvalidCard, code)
	}

	return New(rank, suit), nil
}

// ParseList reads cards separated by spaces and/or commas
func ParseList(list string) ([]Card, error) {
	fields := strings.FieldsFunc(list, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})

	result := make([]Card, 0, len(fields))
	for _, field := range fields {
		card, err := Parse(field)
		if err != nil {
			return nil, err
		}
		result = append(result, card)
	}

	return result, nil
}

// MustParseList is ParseList for fixed inputs; it panics on error
func MustParseList(list string) []Card {
	result, err := ParseList(list)
	if err != nil {
		panic(err)
	}
	return result
}
