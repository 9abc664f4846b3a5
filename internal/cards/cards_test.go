package cards

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/suite"
)

type CardsTestSuite struct {
	suite.Suite
}

func TestCardsTestSuite(t *testing.T) {
	suite.Run(t, new(CardsTestSuite))
}

func (s *CardsTestSuite) TestRankValues() {
	s.Equal(1, Ace.Value())
	s.Equal(5, Five.Value())
	s.Equal(9, Nine.Value())
	s.Equal(10, Ten.Value())
	s.Equal(10, Jack.Value())
	s.Equal(10, Queen.Value())
	s.Equal(10, King.Value())

	s.Equal(0, Ace.Ordinal())
	s.Equal(12, King.Ordinal())
	s.False(Rank(13).Valid())
	s.False(Rank(-1).Valid())
}

func (s *CardsTestSuite) TestCardString() {
	s.Equal("10♥", New(Ten, Hearts).String())
	s.Equal("A♠", New(Ace, Spades).String())
	s.Equal("JC", New(Jack, Clubs).Code())
	s.True(Diamonds.Red())
	s.False(Clubs.Red())
}

func (s *CardsTestSuite) TestCompare() {
	s.True(New(Two, Spades).Less(New(Three, Clubs)))
	s.True(New(Five, Clubs).Less(New(Five, Hearts)))
	s.False(New(King, Clubs).Less(New(King, Clubs)))
	s.Equal(0, Compare(New(Queen, Diamonds), New(Queen, Diamonds)))
}

func (s *CardsTestSuite) TestParse() {
	testCases := []struct {
		name     string
		input    string
		expected Card
	}{
		{name: "letter suit", input: "5H", expected: New(Five, Hearts)},
		{name: "lower case ten", input: "10d", expected: New(Ten, Diamonds)},
		{name: "ten as T", input: "TS", expected: New(Ten, Spades)},
		{name: "face card", input: "jc", expected: New(Jack, Clubs)},
		{name: "symbol suit", input: "A♠", expected: New(Ace, Spades)},
		{name: "padded", input: "  KD ", expected: New(King, Diamonds)},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			card, err := Parse(tc.input)
			s.Require().NoError(err)
			s.Equal(tc.expected, card)
		})
	}
}

func (s *CardsTestSuite) TestParseInvalid() {
	for _, input := range []string{"", "H", "1H", "11C", "5X", "ZZ"} {
		_, err := Parse(input)
		s.ErrorIs(err, ErrInvalidCard, input)
	}
}

func (s *CardsTestSuite) TestParseList() {
	hand, err := ParseList("5H 5D, 5S,JC")
	s.Require().NoError(err)
	s.Equal([]Card{
		New(Five, Hearts),
		New(Five, Diamonds),
		New(Five, Spades),
		New(Jack, Clubs),
	}, hand)

	_, err = ParseList("5H QQ")
	s.ErrorIs(err, ErrInvalidCard)
}

func (s *CardsTestSuite) TestNewDeck() {
	deck := NewDeck()
	s.Equal(52, deck.Len())

	seen := make(map[Card]bool)
	for _, card := range deck.Cards() {
		s.True(card.Valid())
		seen[card] = true
	}
	s.Len(seen, 52)

	top, err := deck.Deal()
	s.Require().NoError(err)
	s.Equal(New(Ace, Clubs), top)
	s.Equal(51, deck.Len())
}

func (s *CardsTestSuite) TestDealEmpty() {
	deck := NewDeckWith(nil)
	_, err := deck.Deal()
	s.ErrorIs(err, ErrEmptyDeck)

	_, err = deck.Take(0)
	s.ErrorIs(err, ErrEmptyDeck)
}

func (s *CardsTestSuite) TestTakeAndReturn() {
	deck := NewDeckWith(MustParseList("AC 2C 3C"))

	card, err := deck.Take(1)
	s.Require().NoError(err)
	s.Equal(New(Two, Clubs), card)
	s.Equal(MustParseList("AC 3C"), deck.Cards())

	_, err = deck.Take(5)
	s.ErrorIs(err, ErrIndexOutOfRange)

	deck.Return(card)
	s.Equal(MustParseList("AC 3C 2C"), deck.Cards())
}

func (s *CardsTestSuite) TestShuffleKeepsCards() {
	deck := NewDeck()
	clone := deck.Clone()

	s.Require().NoError(deck.Shuffle(rand.New(rand.NewSource(7))))
	s.Equal(52, deck.Len())
	s.ElementsMatch(clone.Cards(), deck.Cards())
	s.NotEqual(clone.Cards(), deck.Cards())

	s.ErrorIs(deck.Shuffle(nil), ErrNilShuffler)
}

func (s *CardsTestSuite) TestHandKeepsSortedOrder() {
	hand := NewHand(MustParseList("KD 2S 5H 2C")...)
	s.Equal(MustParseList("2C 2S 5H KD"), hand.Cards())

	hand.Add(New(Ace, Hearts))
	s.Equal(New(Ace, Hearts), hand.Cards()[0])
	s.Equal(5, hand.Len())
}

func (s *CardsTestSuite) TestHandDiscard() {
	hand := NewHand(MustParseList("3C 4C 5C")...)

	card, err := hand.Discard(2)
	s.Require().NoError(err)
	s.Equal(New(Five, Clubs), card)

	_, err = hand.Discard(2)
	s.ErrorIs(err, ErrIndexOutOfRange)
	_, err = hand.Discard(-1)
	s.ErrorIs(err, ErrIndexOutOfRange)

	matched, ok := hand.DiscardMatching(New(Three, Clubs))
	s.True(ok)
	s.Equal(New(Three, Clubs), matched)

	_, ok = hand.DiscardMatching(New(Three, Clubs))
	s.False(ok)

	s.Equal([]Card{New(Four, Clubs)}, hand.Clear())
	s.True(hand.Empty())
}
