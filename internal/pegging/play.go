// Package pegging scores the play phase: one stack of played cards whose
// running count may not pass 31.
package pegging

import (
	"slices"

	"github.com/KirkDiggler/cribbage/internal/cards"
)

// MaxCount is the ceiling of a stack's running count
const MaxCount = 31

// Holder is anything that may or may not hold a card small enough to play
type Holder interface {
	HasCardWithValueAtMost(value int) bool
}

// Player is a Holder that can choose and give up a legal card and be awarded points
type Player interface {
	Holder

	// Play removes a card with value at most maxValue from the hand
	Play(maxValue int) (cards.Card, error)

	// AddPoints pegs points for the player
	AddPoints(points int)
}

// PlayData is one stack segment of the play phase
type PlayData struct {
	stack []cards.Card
	score int
}

// New creates an empty stack
func New() *PlayData {
	return &PlayData{}
}

// NewWith creates a stack by adding the given cards in order
func NewWith(played ...cards.Card) *PlayData {
	d := New()
	for _, card := range played {
		d.AddCard(card)
	}
	return d
}

// AddCard pushes a card and adds its value to the count. Legality is the
// caller's job: check CanPlay first.
func (d *PlayData) AddCard(card cards.Card) {
	d.stack = append(d.stack, card)
	d.score += card.Value()
}

// Stack returns a copy of the played cards, oldest first
func (d *PlayData) Stack() []cards.Card {
	return slices.Clone(d.stack)
}

// Score returns the running count of the stack
func (d *PlayData) Score() int {
	return d.score
}

// Len returns the number of cards on the stack
func (d *PlayData) Len() int {
	return len(d.stack)
}

// CanPlay reports whether p holds a card that keeps the count at or under 31
func (d *PlayData) CanPlay(p Holder) bool {
	remaining := MaxCount - d.score
	if remaining < 0 {
		remaining = 0
	}
	return p.HasCardWithValueAtMost(remaining)
}

// AnyCanPlay reports whether either side can extend the stack
func (d *PlayData) AnyCanPlay(a, b Holder) bool {
	return d.CanPlay(a) || d.CanPlay(b)
}

// ResetIfNeeded clears the stack when neither side can play and reports
// whether it did
func (d *PlayData) ResetIfNeeded(a, b Holder) bool {
	if d.AnyCanPlay(a, b) {
		return false
	}
	d.stack = nil
	d.score = 0
	return true
}

// PlayOnce lets player put down one legal card and pegs what it earns. A
// player who cannot play passes and nothing changes.
func (d *PlayData) PlayOnce(player Player, opponent Holder) (*PlayResult, error) {
	if !d.CanPlay(player) {
		return &PlayResult{Count: d.score}, nil
	}

	card, err := player.Play(MaxCount - d.score)
	if err != nil {
		return nil, err
	}
	d.AddCard(card)

	points := d.CurrentPoints()
	if !d.AnyCanPlay(player, opponent) && d.score != MaxCount {
		points.Go = 1
	}
	points.Total += points.Go

	player.AddPoints(points.Total)

	return &PlayResult{
		Played: true,
		Card:   card,
		Count:  d.score,
		Points: points,
	}, nil
}

// CurrentPoints scores the card on top of the stack against the cards
// beneath it. The GO point depends on the hands and is left at zero.
func (d *PlayData) CurrentPoints() Points {
	p := Points{
		Run:       d.largestRun(),
		Pairs:     d.pairs(),
		Fifteen:   d.fifteen(),
		ThirtyOne: d.thirtyOne(),
	}
	p.Total = p.Run + p.Pairs + p.Fifteen + p.ThirtyOne
	return p
}

// largestRun tries run lengths 7 down to 3. For length n only cards within
// n positions of the top and within n ranks of the top card take part.
func (d *PlayData) largestRun() int {
	if len(d.stack) < 3 {
		return 0
	}

	topIndex := len(d.stack) - 1
	topRank := d.stack[topIndex].Rank.Ordinal()

	for n := 7; n >= 3; n-- {
		var counts [cards.NumRanks]int
		for i, card := range d.stack {
			rank := card.Rank.Ordinal()
			if abs(topIndex-i) < n && abs(topRank-rank) < n {
				counts[rank]++
			}
		}
		if isRunOf(counts, n) {
			return n
		}
	}

	return 0
}

// isRunOf reports whether the first unbroken block of occupied ranks is n long
func isRunOf(counts [cards.NumRanks]int, n int) bool {
	run := 0
	for _, count := range counts {
		if count > 0 {
			run++
		} else if run > 0 {
			break
		}
	}
	return run == n
}

func (d *PlayData) pairs() int {
	if len(d.stack) < 2 {
		return 0
	}

	top := len(d.stack) - 1
	matches := 0
	for i := top - 1; i >= 0 && i >= top-3; i-- {
		if d.stack[i].Rank != d.stack[top].Rank {
			break
		}
		matches++
	}

	switch matches {
	case 3:
		return 12
	case 2:
		return 6
	case 1:
		return 2
	default:
		return 0
	}
}

func (d *PlayData) fifteen() int {
	if d.score == 15 {
		return 2
	}
	return 0
}

func (d *PlayData) thirtyOne() int {
	if d.score == MaxCount {
		return 2
	}
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
