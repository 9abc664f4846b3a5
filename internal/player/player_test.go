package player

import (
	"testing"

	"github.com/KirkDiggler/cribbage/internal/cards"
	"github.com/KirkDiggler/cribbage/internal/controller"
	"github.com/KirkDiggler/cribbage/internal/controller/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PlayerTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockController *mocks.MockController
	player         *Player
}

func (s *PlayerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockController = mocks.NewMockController(s.mockCtrl)

	p, err := New(&Config{
		ID:         "player-1",
		Name:       "Muggins",
		Controller: s.mockController,
	})
	s.Require().NoError(err)
	s.player = p

	for _, card := range cards.MustParseList("KD 5H 2C 9S") {
		s.player.AddCard(card)
	}
}

func (s *PlayerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPlayerTestSuite(t *testing.T) {
	suite.Run(t, new(PlayerTestSuite))
}

func (s *PlayerTestSuite) TestNewValidation() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{Controller: s.mockController})
	s.ErrorIs(err, ErrEmptyName)

	_, err = New(&Config{Name: "x"})
	s.ErrorIs(err, ErrNilController)

	p, err := New(&Config{Name: "Solo", Controller: s.mockController})
	s.Require().NoError(err)
	s.Equal("Solo", p.ID())
}

func (s *PlayerTestSuite) TestHandIsSorted() {
	s.Equal(cards.MustParseList("2C 5H 9S KD"), s.player.Hand())
	s.True(s.player.HasCards())
}

func (s *PlayerTestSuite) TestHasCardWithValueAtMost() {
	s.True(s.player.HasCardWithValueAtMost(2))
	s.False(s.player.HasCardWithValueAtMost(1))
}

func (s *PlayerTestSuite) TestDiscard() {
	s.mockController.EXPECT().
		GetCardIndex(cards.MustParseList("2C 5H 9S KD")).
		Return(3, true)

	card, err := s.player.Discard()
	s.Require().NoError(err)
	s.Equal(cards.New(cards.King, cards.Diamonds), card)
	s.Equal(cards.MustParseList("2C 5H 9S"), s.player.Hand())
}

func (s *PlayerTestSuite) TestPlayOffersOnlyLegalCards() {
	s.mockController.EXPECT().
		GetCardIndex(cards.MustParseList("2C 5H")).
		Return(1, true)

	card, err := s.player.Play(6)
	s.Require().NoError(err)
	s.Equal(cards.New(cards.Five, cards.Hearts), card)

	last, ok := s.player.LastPlayed()
	s.True(ok)
	s.Equal(card, last)
	s.Equal(cards.MustParseList("2C 9S KD"), s.player.Hand())
}

func (s *PlayerTestSuite) TestPlayWithNothingLegal() {
	_, err := s.player.Play(1)
	s.ErrorIs(err, ErrNoLegalCard)
}

func (s *PlayerTestSuite) TestOutOfRangeChoiceIsAnError() {
	s.mockController.EXPECT().GetCardIndex(gomock.Any()).Return(4, true)

	_, err := s.player.Discard()
	s.ErrorIs(err, ErrInvalidCardIndex)
	s.Len(s.player.Hand(), 4)
}

func (s *PlayerTestSuite) TestNoChoiceIsAnError() {
	s.mockController.EXPECT().GetCardIndex(gomock.Any()).Return(0, false)

	_, err := s.player.Play(10)
	s.ErrorIs(err, ErrNoChoice)
}

func (s *PlayerTestSuite) TestGatherPlayed() {
	p, err := New(&Config{Name: "Scripted", Controller: controller.NewScripted(0, 0)})
	s.Require().NoError(err)
	p.AddCard(cards.New(cards.Three, cards.Clubs))
	p.AddCard(cards.New(cards.Four, cards.Clubs))

	_, err = p.Play(10)
	s.Require().NoError(err)
	_, err = p.Play(10)
	s.Require().NoError(err)
	s.False(p.HasCards())

	p.GatherPlayed()
	s.Equal(cards.MustParseList("3C 4C"), p.Hand())
	_, ok := p.LastPlayed()
	s.False(ok)
}

func (s *PlayerTestSuite) TestCrib() {
	s.False(s.player.HasCrib())

	s.player.SetCrib(cards.MustParseList("QH 3D AS 3C"))
	s.True(s.player.HasCrib())
	s.Equal(cards.MustParseList("AS 3C 3D QH"), s.player.Crib())
}

func (s *PlayerTestSuite) TestChooseCut() {
	deck := cards.NewDeckWith(cards.MustParseList("AC 7D QS"))
	s.mockController.EXPECT().GetCardIndex(deck.Cards()).Return(1, true)

	card, err := s.player.ChooseCut(deck)
	s.Require().NoError(err)
	s.Equal(cards.New(cards.Seven, cards.Diamonds), card)
	s.Equal(2, deck.Len())
}

func (s *PlayerTestSuite) TestRemoveAll() {
	s.player.SetCrib(cards.MustParseList("QH 3D"))
	s.mockController.EXPECT().GetCardIndex(gomock.Any()).Return(0, true)
	_, err := s.player.Play(10)
	s.Require().NoError(err)

	all := s.player.RemoveAll()
	s.Len(all, 6)
	s.False(s.player.HasCards())
	s.False(s.player.HasCrib())
}

func (s *PlayerTestSuite) TestPoints() {
	s.player.AddPoints(5)
	s.player.AddPoints(2)
	s.Equal(7, s.player.Points())
}
