// Package player holds one side of a cribbage game: the cards it owns, the
// points it has pegged and the controller that makes its choices.
package player

import (
	"fmt"
	"slices"

	"github.com/KirkDiggler/cribbage/internal/cards"
	"github.com/KirkDiggler/cribbage/internal/controller"
)

// Config holds configuration for a player
type Config struct {
	// ID identifies the player in stored results
	ID string

	// Name is shown on the board
	Name string

	// Controller makes the player's choices
	Controller controller.Controller
}

// Player is one side of the board
type Player struct {
	id         string
	name       string
	controller controller.Controller
	points     int

	hand   *cards.Hand
	crib   *cards.Hand
	played []cards.Card
}

// New creates a player with an empty hand
func New(cfg *Config) (*Player, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Name == "" {
		return nil, ErrEmptyName
	}

	if cfg.Controller == nil {
		return nil, ErrNilController
	}

	id := cfg.ID
	if id == "" {
		id = cfg.Name
	}

	return &Player{
		id:         id,
		name:       cfg.Name,
		controller: cfg.Controller,
		hand:       cards.NewHand(),
		crib:       cards.NewHand(),
	}, nil
}

// ID returns the player's identifier
func (p *Player) ID() string {
	return p.id
}

// Name returns the player's display name
func (p *Player) Name() string {
	return p.name
}

// Points returns the points pegged so far
func (p *Player) Points() int {
	return p.points
}

// AddPoints pegs points
func (p *Player) AddPoints(points int) {
	p.points += points
}

// AddCard puts a dealt card into the hand
func (p *Player) AddCard(card cards.Card) {
	p.hand.Add(card)
}

// Hand returns the cards currently held, in sorted order
func (p *Player) Hand() []cards.Card {
	return p.hand.Cards()
}

// HasCards reports whether the hand still holds any card
func (p *Player) HasCards() bool {
	return !p.hand.Empty()
}

// HasCardWithValueAtMost reports whether any held card could be played
// with value room left on the stack
func (p *Player) HasCardWithValueAtMost(value int) bool {
	return slices.ContainsFunc(p.hand.Cards(), func(c cards.Card) bool {
		return c.Value() <= value
	})
}

// Discard gives up a card of the controller's choosing, for the crib
func (p *Player) Discard() (cards.Card, error) {
	index, err := p.choose(p.hand.Cards())
	if err != nil {
		return cards.Card{}, err
	}
	return p.hand.Discard(index)
}

// Play gives up a card worth at most maxValue onto the play stack. Only
// legal cards are offered to the controller.
func (p *Player) Play(maxValue int) (cards.Card, error) {
	var legal []cards.Card
	for _, card := range p.hand.Cards() {
		if card.Value() <= maxValue {
			legal = append(legal, card)
		}
	}
	if len(legal) == 0 {
		return cards.Card{}, fmt.Errorf("%w: nothing worth %d or less", ErrNoLegalCard, maxValue)
	}

	index, err := p.choose(legal)
	if err != nil {
		return cards.Card{}, err
	}

	card, _ := p.hand.DiscardMatching(legal[index])
	p.played = append(p.played, card)
	return card, nil
}

// LastPlayed returns the most recent card this player put on the stack
func (p *Player) LastPlayed() (cards.Card, bool) {
	if len(p.played) == 0 {
		return cards.Card{}, false
	}
	return p.played[len(p.played)-1], true
}

// GatherPlayed takes the cards played during pegging back into the hand
// for counting
func (p *Player) GatherPlayed() {
	for _, card := range p.played {
		p.hand.Add(card)
	}
	p.played = nil
}

// SetCrib hands the crib to this player as dealer
func (p *Player) SetCrib(crib []cards.Card) {
	p.crib = cards.NewHand(crib...)
}

// Crib returns the crib cards, empty unless this player is dealer
func (p *Player) Crib() []cards.Card {
	return p.crib.Cards()
}

// HasCrib reports whether this player holds the crib
func (p *Player) HasCrib() bool {
	return !p.crib.Empty()
}

// ChooseCut takes the card the controller picks out of deck
func (p *Player) ChooseCut(deck *cards.Deck) (cards.Card, error) {
	index, err := p.choose(deck.Cards())
	if err != nil {
		return cards.Card{}, err
	}
	return deck.Take(index)
}

// RemoveAll empties the hand, crib and played pile and returns every card
func (p *Player) RemoveAll() []cards.Card {
	all := p.hand.Clear()
	all = append(all, p.crib.Clear()...)
	all = append(all, p.played...)
	p.played = nil
	return all
}

func (p *Player) choose(available []cards.Card) (int, error) {
	index, ok := p.controller.GetCardIndex(available)
	if !ok {
		return 0, fmt.Errorf("%s: %w", p.name, ErrNoChoice)
	}
	if index < 0 || index >= len(available) {
		return 0, fmt.Errorf("%s: %w: %d of %d", p.name, ErrInvalidCardIndex, index, len(available))
	}
	return index, nil
}
