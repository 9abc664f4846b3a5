package cards

import "fmt"

// Rank is a card rank. The underlying value is the dense ordinal used to
// index rank-count arrays, Ace=0 through King=12.
type Rank int

const (
	Ace Rank = iota
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// NumRanks is the size of any rank-indexed counting array
const NumRanks = 13

var rankNames = [NumRanks]string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

// Ordinal returns the zero-based position of the rank, Ace=0 … King=12
func (r Rank) Ordinal() int {
	return int(r)
}

// Value returns the counting value: Ace=1, pips at face value, tens and faces 10
func (r Rank) Value() int {
	if r >= Ten {
		return 10
	}
	return int(r) + 1
}

// Valid reports whether the rank is one of the thirteen ranks
func (r Rank) Valid() bool {
	return r >= Ace && r <= King
}

func (r Rank) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Rank(%d)", int(r))
	}
	return rankNames[r]
}

// Suit is one of the four card suits
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// NumSuits is the number of suits in a deck
const NumSuits = 4

var (
	suitSymbols = [NumSuits]string{"♣", "♦", "♥", "♠"}
	suitLetters = [NumSuits]string{"C", "D", "H", "S"}
)

// Valid reports whether the suit is one of the four suits
func (s Suit) Valid() bool {
	return s >= Clubs && s <= Spades
}

// Red reports whether the suit is diamonds or hearts
func (s Suit) Red() bool {
	return s == Diamonds || s == Hearts
}

// Letter returns the single-letter code used when parsing cards
func (s Suit) Letter() string {
	if !s.Valid() {
		return "?"
	}
	return suitLetters[s]
}

func (s Suit) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Suit(%d)", int(s))
	}
	return suitSymbols[s]
}

// Card is an immutable playing card. It is passed by value everywhere.
type Card struct {
	// Rank is the rank of the card
	Rank Rank `json:"rank"`

	// Suit is the suit of the card
	Suit Suit `json:"suit"`
}

// New returns the card with the given rank and suit
func New(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// Value returns the counting value of the card
func (c Card) Value() int {
	return c.Rank.Value()
}

// Valid reports whether both rank and suit are in range
func (c Card) Valid() bool {
	return c.Rank.Valid() && c.Suit.Valid()
}

// String renders the card as rank and suit symbol, e.g. 5♥
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Code renders the card in the short ASCII form accepted by Parse, e.g. 5H
func (c Card) Code() string {
	return c.Rank.String() + c.Suit.Letter()
}

// Compare orders cards by rank, then suit
func Compare(a, b Card) int {
	if a.Rank != b.Rank {
		return int(a.Rank) - int(b.Rank)
	}
	return int(a.Suit) - int(b.Suit)
}

// Less reports whether c sorts before other
func (c Card) Less(other Card) bool {
	return Compare(c, other) < 0
}
