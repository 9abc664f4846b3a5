package cards

import "strings"

// Shuffler permutes n elements through swap
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// Deck is a stack of cards dealt from the top
type Deck struct {
	cards []Card
}

// NewDeck creates an ordered 52-card deck
func NewDeck() *Deck {
	cards := make([]Card, 0, NumRanks*NumSuits)
	for suit := Clubs; suit <= Spades; suit++ {
		for rank := Ace; rank <= King; rank++ {
			cards = append(cards, New(rank, suit))
		}
	}
	return &Deck{cards: cards}
}

// NewDeckWith creates a deck holding a copy of the given cards, top card first
func NewDeckWith(cards []Card) *Deck {
	return &Deck{cards: append([]Card(nil), cards...)}
}

// Shuffle randomises the deck order
func (d *Deck) Shuffle(shuffler Shuffler) error {
	if shuffler == nil {
		return ErrNilShuffler
	}
	shuffler.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
	return nil
}

// Deal removes and returns the top card
func (d *Deck) Deal() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrEmptyDeck
	}
	card := d.cards[0]
	d.cards = d.cards[1:]
	return card, nil
}

// Take removes and returns the card at index, as when cutting the deck
func (d *Deck) Take(index int) (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrEmptyDeck
	}
	if index < 0 || index >= len(d.cards) {
		return Card{}, ErrIndexOutOfRange
	}
	card := d.cards[index]
	d.cards = append(d.cards[:index], d.cards[index+1:]...)
	return card, nil
}

// Return puts cards back on the bottom of the deck
func (d *Deck) Return(cards ...Card) {
	d.cards = append(d.cards, cards...)
}

// Len returns the number of cards left
func (d *Deck) Len() int {
	return len(d.cards)
}

// Cards returns a copy of the remaining cards, top first
func (d *Deck) Cards() []Card {
	return append([]Card(nil), d.cards...)
}

// Clone returns an independent copy of the deck
func (d *Deck) Clone() *Deck {
	return NewDeckWith(d.cards)
}

func (d *Deck) String() string {
	return joinCards(d.cards)
}

func joinCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, card := range cards {
		parts[i] = card.String()
	}
	return strings.Join(parts, " ")
}
