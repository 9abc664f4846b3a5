// Package scoring counts a cribbage hand or crib together with the starter.
package scoring

import (
	"fmt"

	"github.com/KirkDiggler/cribbage/internal/cards"
)

// HandSize is the number of held cards counted with the starter
const HandSize = 4

// Breakdown holds each scoring category for one counted hand
type Breakdown struct {
	// Fifteens is 2 points per card combination summing to 15
	Fifteens int `json:"fifteens"`

	// Pairs is 2 points per pair of equal rank
	Pairs int `json:"pairs"`

	// Runs is the longest run times its duplicate-rank multiplier
	Runs int `json:"runs"`

	// Flush is 4 or 5 for a flush, with the crib restriction applied
	Flush int `json:"flush"`

	// Nobs is 1 for the jack of the starter's suit
	Nobs int `json:"nobs"`

	// Total is the sum of the categories above
	Total int `json:"total"`
}

// Score counts hand with starter. A crib only scores a flush when the
// starter matches as well.
func Score(hand []cards.Card, starter cards.Card, isCrib bool) (*Breakdown, error) {
	if len(hand) != HandSize {
		return nil, fmt.Errorf("%w: got %d", ErrHandSize, len(hand))
	}

	all := make([]cards.Card, 0, HandSize+1)
	all = append(all, hand...)
	all = append(all, starter)
	for _, card := range all {
		if !card.Rank.Valid() {
			return nil, fmt.Errorf("%w: %d", ErrInvalidRank, int(card.Rank))
		}
		if !card.Suit.Valid() {
			return nil, fmt.Errorf("%w: %d", ErrInvalidSuit, int(card.Suit))
		}
	}

	b := &Breakdown{
		Fifteens: fifteens(all),
		Pairs:    pairs(all),
		Runs:     runs(all),
		Flush:    flush(hand, starter, isCrib),
		Nobs:     nobs(hand, starter),
	}
	b.Total = b.Fifteens + b.Pairs + b.Runs + b.Flush + b.Nobs

	return b, nil
}

// Total is Score reduced to the point total
func Total(hand []cards.Card, starter cards.Card, isCrib bool) (int, error) {
	b, err := Score(hand, starter, isCrib)
	if err != nil {
		return 0, err
	}
	return b.Total, nil
}

// HisHeels is the dealer's bonus for turning a jack as the starter
func HisHeels(starter cards.Card) int {
	if starter.Rank == cards.Jack {
		return 2
	}
	return 0
}

func fifteens(all []cards.Card) int {
	count := 0
	for k := 1; k <= len(all); k++ {
		combinations(len(all), k, func(idx []int) {
			sum := 0
			for _, i := range idx {
				sum += all[i].Value()
			}
			if sum == 15 {
				count++
			}
		})
	}
	return 2 * count
}

func pairs(all []cards.Card) int {
	count := 0
	combinations(len(all), 2, func(idx []int) {
		if all[idx[0]].Rank == all[idx[1]].Rank {
			count++
		}
	})
	return 2 * count
}

// runs scores the longest unbroken rank sequence of three or more. The
// multiplier is the product of the rank counts inside that sequence, so a
// double run of three scores 6 and a double-double run scores 12.
func runs(all []cards.Card) int {
	var counts [cards.NumRanks]int
	for _, card := range all {
		counts[card.Rank.Ordinal()]++
	}

	bestLen, bestMult := 0, 1
	curLen, curMult := 0, 1
	for i := 0; i <= cards.NumRanks; i++ {
		if i < cards.NumRanks && counts[i] > 0 {
			curLen++
			curMult *= counts[i]
			continue
		}
		if curLen > bestLen {
			bestLen, bestMult = curLen, curMult
		}
		curLen, curMult = 0, 1
	}

	if bestLen < 3 {
		return 0
	}
	return bestLen * bestMult
}

func flush(hand []cards.Card, starter cards.Card, isCrib bool) int {
	suit := hand[0].Suit
	for _, card := range hand[1:] {
		if card.Suit != suit {
			return 0
		}
	}

	switch {
	case starter.Suit == suit:
		return 5
	case isCrib:
		return 0
	default:
		return 4
	}
}

func nobs(hand []cards.Card, starter cards.Card) int {
	for _, card := range hand {
		if card.Rank == cards.Jack && card.Suit == starter.Suit {
			return 1
		}
	}
	return 0
}
