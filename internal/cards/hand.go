package cards

import (
	"slices"
)

// Hand is an ordered card container. Cards are kept sorted so the display
// order does not depend on deal order.
type Hand struct {
	cards []Card
}

// NewHand creates a hand holding the given cards
func NewHand(cards ...Card) *Hand {
	h := &Hand{cards: make([]Card, 0, len(cards))}
	for _, card := range cards {
		h.Add(card)
	}
	return h
}

// Add inserts a card at its sorted position
func (h *Hand) Add(card Card) {
	i, _ := slices.BinarySearchFunc(h.cards, card, Compare)
	h.cards = slices.Insert(h.cards, i, card)
}

// Discard removes and returns the card at index
func (h *Hand) Discard(index int) (Card, error) {
	if index < 0 || index >= len(h.cards) {
		return Card{}, ErrIndexOutOfRange
	}
	card := h.cards[index]
	h.cards = slices.Delete(h.cards, index, index+1)
	return card, nil
}

// DiscardMatching removes the first card equal to card
func (h *Hand) DiscardMatching(card Card) (Card, bool) {
	i := slices.Index(h.cards, card)
	if i < 0 {
		return Card{}, false
	}
	h.cards = slices.Delete(h.cards, i, i+1)
	return card, true
}

// Cards returns a copy of the cards in sorted order
func (h *Hand) Cards() []Card {
	return slices.Clone(h.cards)
}

// Len returns the number of cards held
func (h *Hand) Len() int {
	return len(h.cards)
}

// Empty reports whether the hand holds no cards
func (h *Hand) Empty() bool {
	return len(h.cards) == 0
}

// Clear removes and returns every card
func (h *Hand) Clear() []Card {
	cards := h.cards
	h.cards = nil
	return cards
}

func (h *Hand) String() string {
	return joinCards(h.cards)
}
