package game

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/KirkDiggler/cribbage/internal/cards"
	"github.com/KirkDiggler/cribbage/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/cribbage/internal/common/uuid/mocks"
	"github.com/KirkDiggler/cribbage/internal/controller"
	"github.com/KirkDiggler/cribbage/internal/models"
	"github.com/KirkDiggler/cribbage/internal/player"
	matchRepo "github.com/KirkDiggler/cribbage/internal/repositories/match"
	matchMocks "github.com/KirkDiggler/cribbage/internal/repositories/match/mocks"
	playerRepo "github.com/KirkDiggler/cribbage/internal/repositories/player"
	playerMocks "github.com/KirkDiggler/cribbage/internal/repositories/player/mocks"
	scoreRepo "github.com/KirkDiggler/cribbage/internal/repositories/score"
	scoreMocks "github.com/KirkDiggler/cribbage/internal/repositories/score/mocks"
	"github.com/KirkDiggler/cribbage/internal/rng"
	rngMocks "github.com/KirkDiggler/cribbage/internal/rng/mocks"
	"github.com/KirkDiggler/cribbage/internal/scoring"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// recordingDisplay keeps every event it is shown
type recordingDisplay struct {
	events []*Event
}

func (d *recordingDisplay) Render(event *Event) {
	d.events = append(d.events, event)
}

func (d *recordingDisplay) kinds() []EventKind {
	kinds := make([]EventKind, len(d.events))
	for i, e := range d.events {
		kinds[i] = e.Kind
	}
	return kinds
}

func (d *recordingDisplay) count(kind EventKind) int {
	n := 0
	for _, e := range d.events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

type GameServiceTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockMatchRepo  *matchMocks.MockRepository
	mockPlayerRepo *playerMocks.MockRepository
	mockScoreRepo  *scoreMocks.MockRepository
	mockRoller     *rngMocks.MockRoller
	mockClock      *mocks.MockClock
	mockUUID       *uuidMocks.MockUUID
	display        *recordingDisplay
	ctx            context.Context

	testTime      time.Time
	testChannelID string
	nextID        int
}

func (s *GameServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockMatchRepo = matchMocks.NewMockRepository(s.mockCtrl)
	s.mockPlayerRepo = playerMocks.NewMockRepository(s.mockCtrl)
	s.mockScoreRepo = scoreMocks.NewMockRepository(s.mockCtrl)
	s.mockRoller = rngMocks.NewMockRoller(s.mockCtrl)
	s.mockClock = mocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.display = &recordingDisplay{}
	s.ctx = context.Background()

	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.testChannelID = "test-channel-id"
	s.nextID = 0

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()
	s.mockUUID.EXPECT().NewUUID().DoAndReturn(func() string {
		s.nextID++
		return fmt.Sprintf("id-%d", s.nextID)
	}).AnyTimes()
}

func (s *GameServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestGameServiceSuite(t *testing.T) {
	suite.Run(t, new(GameServiceTestSuite))
}

// newService builds a service with the shared mocks; repos are left out
// unless the test wires them in
func (s *GameServiceTestSuite) newService(modify func(cfg *Config)) *service {
	cfg := &Config{
		Roller:  s.mockRoller,
		Clock:   s.mockClock,
		UUID:    s.mockUUID,
		Display: s.display,
	}
	if modify != nil {
		modify(cfg)
	}

	svc, err := New(cfg)
	s.Require().NoError(err)
	return svc
}

func zeros(n int) []int {
	return make([]int, n)
}

// seats returns two scripted seats that always pick the lowest offered card
func (s *GameServiceTestSuite) seats(answers int) (*controller.Scripted, *controller.Scripted, []*Seat) {
	alice := controller.NewScripted(zeros(answers)...)
	bob := controller.NewScripted(zeros(answers)...)
	return alice, bob, []*Seat{
		{ID: "alice", Name: "Alice", Controller: alice},
		{ID: "bob", Name: "Bob", Controller: bob},
	}
}

func (s *GameServiceTestSuite) TestNewValidation() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{Clock: s.mockClock, UUID: s.mockUUID})
	s.ErrorIs(err, ErrNilRoller)

	_, err = New(&Config{Roller: s.mockRoller, UUID: s.mockUUID})
	s.ErrorIs(err, ErrNilClock)

	_, err = New(&Config{Roller: s.mockRoller, Clock: s.mockClock})
	s.ErrorIs(err, ErrNilUUIDGenerator)
}

func (s *GameServiceTestSuite) TestNewDefaults() {
	svc := s.newService(nil)
	s.Equal(DefaultTargetScore, svc.targetScore)
	s.Equal(DefaultMaxRounds, svc.maxRounds)
	s.Equal(DefaultMaxTurns, svc.maxTurns)
	s.NotNil(svc.logger)
}

func (s *GameServiceTestSuite) TestScoreHand() {
	svc := s.newService(nil)

	output, err := svc.ScoreHand(s.ctx, &ScoreHandInput{
		Hand:    cards.MustParseList("5C 5D 5H JS"),
		Starter: cards.New(cards.Five, cards.Spades),
	})
	s.Require().NoError(err)
	s.Equal(29, output.Breakdown.Total)
	s.Equal(16, output.Breakdown.Fifteens)
	s.Equal(12, output.Breakdown.Pairs)
	s.Equal(1, output.Breakdown.Nobs)
}

func (s *GameServiceTestSuite) TestScoreHandCribFlush() {
	svc := s.newService(nil)
	hand := cards.MustParseList("2C 3C 5C JC")

	asHand, err := svc.ScoreHand(s.ctx, &ScoreHandInput{Hand: hand, Starter: cards.New(cards.Five, cards.Spades)})
	s.Require().NoError(err)
	asCrib, err := svc.ScoreHand(s.ctx, &ScoreHandInput{Hand: hand, Starter: cards.New(cards.Five, cards.Spades), IsCrib: true})
	s.Require().NoError(err)

	s.Equal(4, asHand.Breakdown.Flush)
	s.Equal(0, asCrib.Breakdown.Flush)
}

func (s *GameServiceTestSuite) TestScoreHandErrors() {
	svc := s.newService(nil)

	_, err := svc.ScoreHand(s.ctx, nil)
	s.ErrorIs(err, ErrNilInput)

	_, err = svc.ScoreHand(s.ctx, &ScoreHandInput{
		Hand:    cards.MustParseList("5C 5D 5H"),
		Starter: cards.New(cards.Five, cards.Spades),
	})
	s.ErrorIs(err, scoring.ErrHandSize)
}

func (s *GameServiceTestSuite) TestScorePegging() {
	svc := s.newService(nil)

	output, err := svc.ScorePegging(s.ctx, &ScorePeggingInput{
		Cards: cards.MustParseList("4C 5H 6D JS"),
	})
	s.Require().NoError(err)
	s.Require().Len(output.Plays, 4)

	totals := make([]int, len(output.Plays))
	for i, play := range output.Plays {
		totals[i] = play.Points.Total
	}
	s.Equal([]int{0, 0, 5, 0}, totals)
	s.Equal(3, output.Plays[2].Points.Run)
	s.Equal(2, output.Plays[2].Points.Fifteen)
	s.Equal(25, output.Plays[3].Count)
	s.Equal(5, output.Total)
	s.True(output.Plays[0].NewStack)
	s.False(output.Plays[3].NewStack)
}

func (s *GameServiceTestSuite) TestScorePeggingCreditsGoOnNewStack() {
	svc := s.newService(nil)

	output, err := svc.ScorePegging(s.ctx, &ScorePeggingInput{
		Cards: cards.MustParseList("KC QD JH 10S"),
	})
	s.Require().NoError(err)
	s.Require().Len(output.Plays, 4)

	s.Equal(3, output.Plays[2].Points.Run)
	s.Equal(1, output.Plays[2].Points.Go)
	s.Equal(4, output.Plays[2].Points.Total)
	s.Equal(30, output.Plays[2].Count)

	s.True(output.Plays[3].NewStack)
	s.Equal(10, output.Plays[3].Count)
	s.Equal(4, output.Total)
}

func (s *GameServiceTestSuite) TestScorePeggingNoGoAfterThirtyOne() {
	svc := s.newService(nil)

	output, err := svc.ScorePegging(s.ctx, &ScorePeggingInput{
		Cards: cards.MustParseList("10C 10D 10H AS 5C"),
	})
	s.Require().NoError(err)

	totals := make([]int, len(output.Plays))
	for i, play := range output.Plays {
		totals[i] = play.Points.Total
	}
	s.Equal([]int{0, 2, 6, 2, 0}, totals)
	s.Equal(2, output.Plays[3].Points.ThirtyOne)
	s.Equal(0, output.Plays[3].Points.Go)
	s.True(output.Plays[4].NewStack)
	s.Equal(5, output.Plays[4].Count)
	s.Equal(10, output.Total)
}

func (s *GameServiceTestSuite) TestScorePeggingErrors() {
	svc := s.newService(nil)

	_, err := svc.ScorePegging(s.ctx, nil)
	s.ErrorIs(err, ErrNilInput)

	_, err = svc.ScorePegging(s.ctx, &ScorePeggingInput{})
	s.ErrorIs(err, ErrEmptySequence)

	_, err = svc.ScorePegging(s.ctx, &ScorePeggingInput{
		Cards: []cards.Card{{Rank: cards.Rank(20), Suit: cards.Clubs}},
	})
	s.ErrorIs(err, cards.ErrInvalidCard)
}

func (s *GameServiceTestSuite) TestGetPlayerStats() {
	svc := s.newService(func(cfg *Config) {
		cfg.PlayerRepo = s.mockPlayerRepo
		cfg.ScoreRepo = s.mockScoreRepo
	})

	expected := &models.Player{ID: "alice", Name: "Alice", Wins: 3}
	s.mockPlayerRepo.EXPECT().
		GetPlayer(s.ctx, &playerRepo.GetPlayerInput{PlayerID: "alice"}).
		Return(expected, nil)
	s.mockScoreRepo.EXPECT().
		GetScoreTotals(s.ctx, &scoreRepo.GetScoreTotalsInput{PlayerID: "alice"}).
		Return(&scoreRepo.GetScoreTotalsOutput{
			Totals: map[models.ScoreKind]int{models.ScoreKindHand: 40},
		}, nil)

	output, err := svc.GetPlayerStats(s.ctx, &GetPlayerStatsInput{PlayerID: "alice"})
	s.Require().NoError(err)
	s.Equal(expected, output.Player)
	s.Equal(40, output.Totals[models.ScoreKindHand])
}

func (s *GameServiceTestSuite) TestGetPlayerStatsIgnoresTotalsFailure() {
	svc := s.newService(func(cfg *Config) {
		cfg.PlayerRepo = s.mockPlayerRepo
		cfg.ScoreRepo = s.mockScoreRepo
	})

	s.mockPlayerRepo.EXPECT().GetPlayer(gomock.Any(), gomock.Any()).
		Return(&models.Player{ID: "alice"}, nil)
	s.mockScoreRepo.EXPECT().GetScoreTotals(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("redis down"))

	output, err := svc.GetPlayerStats(s.ctx, &GetPlayerStatsInput{PlayerID: "alice"})
	s.Require().NoError(err)
	s.Nil(output.Totals)
}

func (s *GameServiceTestSuite) TestGetPlayerStatsErrors() {
	svc := s.newService(nil)

	_, err := svc.GetPlayerStats(s.ctx, &GetPlayerStatsInput{PlayerID: "alice"})
	s.ErrorIs(err, ErrRepositoryNotConfigured)

	_, err = svc.GetPlayerStats(s.ctx, &GetPlayerStatsInput{})
	s.ErrorIs(err, ErrMissingPlayer)

	svc = s.newService(func(cfg *Config) {
		cfg.PlayerRepo = s.mockPlayerRepo
	})
	s.mockPlayerRepo.EXPECT().GetPlayer(gomock.Any(), gomock.Any()).
		Return(nil, playerRepo.ErrPlayerNotFound)

	_, err = svc.GetPlayerStats(s.ctx, &GetPlayerStatsInput{PlayerID: "ghost"})
	s.True(IsNotFound(err))
}

func (s *GameServiceTestSuite) TestGetMatchHistory() {
	svc := s.newService(func(cfg *Config) {
		cfg.MatchRepo = s.mockMatchRepo
	})

	matches := []*models.Match{{ID: "m2"}, {ID: "m1"}}
	s.mockMatchRepo.EXPECT().
		GetMatchesByChannel(s.ctx, &matchRepo.GetMatchesByChannelInput{ChannelID: s.testChannelID, Limit: 5}).
		Return(&matchRepo.GetMatchesByChannelOutput{Matches: matches}, nil)

	output, err := svc.GetMatchHistory(s.ctx, &GetMatchHistoryInput{ChannelID: s.testChannelID, Limit: 5})
	s.Require().NoError(err)
	s.Equal(matches, output.Matches)
}

func (s *GameServiceTestSuite) TestGetMatchHistoryErrors() {
	svc := s.newService(nil)

	_, err := svc.GetMatchHistory(s.ctx, &GetMatchHistoryInput{ChannelID: s.testChannelID})
	s.ErrorIs(err, ErrRepositoryNotConfigured)

	_, err = svc.GetMatchHistory(s.ctx, &GetMatchHistoryInput{})
	s.ErrorIs(err, ErrMissingChannel)
}

func (s *GameServiceTestSuite) TestPlayMatchValidation() {
	svc := s.newService(nil)

	_, err := svc.PlayMatch(s.ctx, nil)
	s.ErrorIs(err, ErrNilInput)

	_, _, seats := s.seats(0)
	_, err = svc.PlayMatch(s.ctx, &PlayMatchInput{Players: seats[:1]})
	s.ErrorIs(err, ErrInvalidPlayers)

	_, err = svc.PlayMatch(s.ctx, &PlayMatchInput{Players: []*Seat{seats[0], {ID: "x", Name: "X"}}})
	s.ErrorIs(err, ErrInvalidPlayers)

	_, err = svc.PlayMatch(s.ctx, &PlayMatchInput{Players: []*Seat{seats[0], seats[0]}})
	s.ErrorIs(err, ErrDuplicatePlayer)

	_, err = svc.PlayMatch(s.ctx, &PlayMatchInput{Players: seats, Deck: cards.MustParseList("AC 2C")})
	s.ErrorIs(err, ErrInvalidDeck)

	duplicated := cards.NewDeck().Cards()
	duplicated[1] = duplicated[0]
	_, err = svc.PlayMatch(s.ctx, &PlayMatchInput{Players: seats, Deck: duplicated})
	s.ErrorIs(err, ErrInvalidDeck)
}

// With the ordered deck and lowest-card choices, the first round goes:
// Alice cuts AC and deals. Bob holds 5C 7C 9C JC, Alice 6C 8C 10C QC, the
// crib is AC 2C 3C 4C and the starter KC. Bob pegs 7 and Alice 6, then
// Bob's hand counts 10, Alice's hand 5 and her crib 13.
func (s *GameServiceTestSuite) TestPlayMatchFixedDeckWinOnCrib() {
	svc := s.newService(func(cfg *Config) {
		cfg.TargetScore = 20
	})
	alice, bob, seats := s.seats(7)

	output, err := svc.PlayMatch(s.ctx, &PlayMatchInput{
		ChannelID: s.testChannelID,
		Players:   seats,
		Deck:      cards.NewDeck().Cards(),
	})
	s.Require().NoError(err)
	s.Zero(alice.Remaining())
	s.Zero(bob.Remaining())

	match := output.Match
	s.Equal("id-1", match.ID)
	s.Equal(s.testChannelID, match.ChannelID)
	s.Equal("alice", match.WinnerID)
	s.Equal(1, match.Rounds)
	s.Equal(20, match.TargetScore)
	s.Equal(models.SkunkNone, match.Skunk)
	s.Equal(s.testTime, match.StartedAt)
	s.Equal(s.testTime, match.FinishedAt)

	s.Equal(24, match.Players[0].Points)
	s.Equal(13, match.Players[0].BestHand)
	s.Equal(6, match.Players[0].PeggingPoints)
	s.Equal(17, match.Players[1].Points)
	s.Equal(10, match.Players[1].BestHand)
	s.Equal(7, match.Players[1].PeggingPoints)

	s.Require().Len(output.Records, 5)
	expected := []struct {
		playerID string
		kind     models.ScoreKind
		points   int
	}{
		{"alice", models.ScoreKindPegging, 6},
		{"bob", models.ScoreKindPegging, 7},
		{"bob", models.ScoreKindHand, 10},
		{"alice", models.ScoreKindHand, 5},
		{"alice", models.ScoreKindCrib, 13},
	}
	for i, want := range expected {
		record := output.Records[i]
		s.Equal(want.playerID, record.PlayerID, "record %d", i)
		s.Equal(want.kind, record.Kind, "record %d", i)
		s.Equal(want.points, record.Points, "record %d", i)
		s.Equal(match.ID, record.MatchID)
		s.Equal(1, record.Round)
		s.Equal("KC", record.Starter)
	}
	s.Equal([]string{"AC", "2C", "3C", "4C"}, output.Records[4].Cards)

	s.Equal(1, s.display.count(EventCut))
	s.Equal(2, s.display.count(EventDiscard))
	s.Equal(8, s.display.count(EventPlay))
	s.Equal(3, s.display.count(EventReset))
	s.Equal(0, s.display.count(EventGo))
	s.Equal(3, s.display.count(EventCount))

	// Turns alternate across resets: Alice closes the first stack at 26,
	// so Bob leads the second.
	var plays []string
	for _, e := range s.display.events {
		if e.Kind == EventPlay {
			plays = append(plays, e.PlayerID+" "+e.Cards[0].Code())
		}
	}
	s.Equal([]string{
		"bob 5C", "alice 6C", "bob 7C", "alice 8C",
		"bob 9C", "alice 10C", "bob JC",
		"alice QC",
	}, plays)

	kinds := s.display.kinds()
	s.Equal([]EventKind{EventCut, EventDeal, EventDiscard, EventDiscard, EventStarter, EventPlay}, kinds[:6])
	s.Equal(EventGameOver, kinds[len(kinds)-1])

	cut := s.display.events[0]
	s.Equal("alice", cut.PlayerID)
	s.Equal(cards.MustParseList("AC 2C"), cut.Cards)

	// Bob leads as pone
	s.Equal("bob", s.display.events[5].PlayerID)
	s.Equal(cards.MustParseList("5C"), s.display.events[5].Cards)
}

func (s *GameServiceTestSuite) TestPlayMatchWinOnPoneHandSkipsDealerCount() {
	svc := s.newService(func(cfg *Config) {
		cfg.TargetScore = 15
	})
	_, _, seats := s.seats(7)

	output, err := svc.PlayMatch(s.ctx, &PlayMatchInput{Players: seats, Deck: cards.NewDeck().Cards()})
	s.Require().NoError(err)

	s.Equal("bob", output.Match.WinnerID)
	s.Equal(17, output.Match.Players[1].Points)
	s.Equal(6, output.Match.Players[0].Points)
	s.Len(output.Records, 3)
	s.Equal(1, s.display.count(EventCount))
}

func (s *GameServiceTestSuite) TestPlayMatchWinDuringPegging() {
	svc := s.newService(func(cfg *Config) {
		cfg.TargetScore = 5
	})
	_, _, seats := s.seats(7)

	output, err := svc.PlayMatch(s.ctx, &PlayMatchInput{Players: seats, Deck: cards.NewDeck().Cards()})
	s.Require().NoError(err)

	// Alice's 8C makes a run of four with the GO
	s.Equal("alice", output.Match.WinnerID)
	s.Equal(5, output.Match.Players[0].Points)
	s.Equal(3, output.Match.Players[1].Points)
	s.Equal(4, s.display.count(EventPlay))
	s.Equal(0, s.display.count(EventCount))

	s.Require().Len(output.Records, 2)
	s.Equal(models.ScoreKindPegging, output.Records[0].Kind)
	s.Equal(5, output.Records[0].Points)
	s.Equal(3, output.Records[1].Points)
}

func (s *GameServiceTestSuite) TestPlayMatchHisHeels() {
	svc := s.newService(func(cfg *Config) {
		cfg.TargetScore = 2
	})
	_, _, seats := s.seats(7)

	// Move the jack of clubs into the starter position
	deck := cards.NewDeck().Cards()
	deck[10], deck[12] = deck[12], deck[10]

	output, err := svc.PlayMatch(s.ctx, &PlayMatchInput{Players: seats, Deck: deck})
	s.Require().NoError(err)

	s.Equal("alice", output.Match.WinnerID)
	s.Equal(2, output.Match.Players[0].Points)
	s.Equal(models.SkunkNone, output.Match.Skunk)

	s.Require().Len(output.Records, 1)
	s.Equal(models.ScoreKindHeels, output.Records[0].Kind)
	s.Equal(2, output.Records[0].Points)
	s.Equal("JC", output.Records[0].Starter)
	s.Equal([]EventKind{
		EventCut, EventDeal, EventDiscard, EventDiscard, EventStarter, EventHeels, EventGameOver,
	}, s.display.kinds())
}

// The fixed deck restarts in order each round, so the second round mirrors
// the first with the seats swapped
func (s *GameServiceTestSuite) TestPlayMatchSwapsDealer() {
	svc := s.newService(func(cfg *Config) {
		cfg.TargetScore = 40
	})
	alice, bob, seats := s.seats(13)

	output, err := svc.PlayMatch(s.ctx, &PlayMatchInput{Players: seats, Deck: cards.NewDeck().Cards()})
	s.Require().NoError(err)
	s.Zero(alice.Remaining())
	s.Zero(bob.Remaining())

	s.Equal(2, output.Match.Rounds)
	s.Equal("alice", output.Match.WinnerID)
	s.Equal(41, output.Match.Players[0].Points)
	s.Equal(23, output.Match.Players[1].Points)

	var dealers []string
	for _, e := range s.display.events {
		if e.Kind != EventDeal {
			continue
		}
		for _, p := range e.Players {
			if p.IsDealer {
				dealers = append(dealers, p.ID)
			}
		}
	}
	s.Equal([]string{"alice", "bob"}, dealers)
}

func (s *GameServiceTestSuite) TestPlayMatchRoundLimit() {
	svc := s.newService(func(cfg *Config) {
		cfg.MaxRounds = 1
	})
	_, _, seats := s.seats(7)

	_, err := svc.PlayMatch(s.ctx, &PlayMatchInput{Players: seats, Deck: cards.NewDeck().Cards()})
	s.ErrorIs(err, ErrRoundLimit)
}

func (s *GameServiceTestSuite) TestPlayMatchTurnLimit() {
	svc := s.newService(func(cfg *Config) {
		cfg.MaxTurns = 3
	})
	_, _, seats := s.seats(7)

	_, err := svc.PlayMatch(s.ctx, &PlayMatchInput{Players: seats, Deck: cards.NewDeck().Cards()})
	s.ErrorIs(err, ErrTurnLimit)
}

func (s *GameServiceTestSuite) TestPlayMatchCutTiesForever() {
	svc := s.newService(nil)

	// Both top cards are fives, so every cut ties
	deck := cards.NewDeck().Cards()
	deck[0], deck[4] = deck[4], deck[0]
	deck[1], deck[17] = deck[17], deck[1]

	_, _, seats := s.seats(maxCuts)
	_, err := svc.PlayMatch(s.ctx, &PlayMatchInput{Players: seats, Deck: deck})
	s.ErrorIs(err, ErrCutLimit)
	s.Equal(maxCuts, s.display.count(EventCut))
}

func (s *GameServiceTestSuite) TestPlayMatchControllerGivesUp() {
	svc := s.newService(nil)
	_, _, seats := s.seats(0)

	_, err := svc.PlayMatch(s.ctx, &PlayMatchInput{Players: seats, Deck: cards.NewDeck().Cards()})
	s.ErrorIs(err, player.ErrNoChoice)
}

func (s *GameServiceTestSuite) TestPlayMatchCancelled() {
	svc := s.newService(nil)
	_, _, seats := s.seats(7)

	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := svc.PlayMatch(ctx, &PlayMatchInput{Players: seats, Deck: cards.NewDeck().Cards()})
	s.ErrorIs(err, context.Canceled)
}

func (s *GameServiceTestSuite) TestPlayMatchRecordsResults() {
	svc := s.newService(func(cfg *Config) {
		cfg.TargetScore = 20
		cfg.MatchRepo = s.mockMatchRepo
		cfg.PlayerRepo = s.mockPlayerRepo
		cfg.ScoreRepo = s.mockScoreRepo
	})
	_, _, seats := s.seats(7)

	s.mockMatchRepo.EXPECT().SaveMatch(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *matchRepo.SaveMatchInput) error {
			s.Equal("alice", input.Match.WinnerID)
			return nil
		})
	s.mockPlayerRepo.EXPECT().RecordResult(s.ctx, &playerRepo.RecordResultInput{
		PlayerID:  "alice",
		Name:      "Alice",
		MatchID:   "id-1",
		Won:       true,
		Skunk:     models.SkunkNone,
		Points:    24,
		BestHand:  13,
		Timestamp: s.testTime,
	}).Return(&models.Player{ID: "alice"}, nil)
	s.mockPlayerRepo.EXPECT().RecordResult(s.ctx, &playerRepo.RecordResultInput{
		PlayerID:  "bob",
		Name:      "Bob",
		MatchID:   "id-1",
		Won:       false,
		Skunk:     models.SkunkNone,
		Points:    17,
		BestHand:  10,
		Timestamp: s.testTime,
	}).Return(&models.Player{ID: "bob"}, nil)
	s.mockScoreRepo.EXPECT().AddScoreRecord(s.ctx, gomock.Any()).Return(nil).Times(5)

	_, err := svc.PlayMatch(s.ctx, &PlayMatchInput{Players: seats, Deck: cards.NewDeck().Cards()})
	s.Require().NoError(err)
}

func (s *GameServiceTestSuite) TestPlayMatchRecordFailure() {
	svc := s.newService(func(cfg *Config) {
		cfg.TargetScore = 20
		cfg.MatchRepo = s.mockMatchRepo
	})
	_, _, seats := s.seats(7)

	s.mockMatchRepo.EXPECT().SaveMatch(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	_, err := svc.PlayMatch(s.ctx, &PlayMatchInput{Players: seats, Deck: cards.NewDeck().Cards()})
	s.Error(err)
	s.Contains(err.Error(), "failed to save match")
}

// A seeded random match must obey the board's bookkeeping rules
func (s *GameServiceTestSuite) TestPlayMatchRandomInvariants() {
	for _, seed := range []int64{1, 7, 42, 2024} {
		roller := rng.New(&rng.Config{Seed: seed})
		svc := s.newService(func(cfg *Config) {
			cfg.Roller = roller
			cfg.Display = nil
		})

		first, err := controller.NewRandom(&controller.RandomConfig{Roller: roller})
		s.Require().NoError(err)
		second, err := controller.NewRandom(&controller.RandomConfig{Roller: roller})
		s.Require().NoError(err)

		output, err := svc.PlayMatch(s.ctx, &PlayMatchInput{
			Players: []*Seat{
				{ID: "alice", Name: "Alice", Controller: first},
				{ID: "bob", Name: "Bob", Controller: second},
			},
		})
		s.Require().NoError(err, "seed %d", seed)

		match := output.Match
		winner, loser := match.Winner(), match.Loser()
		s.Require().NotNil(winner)
		s.Require().NotNil(loser)
		s.GreaterOrEqual(winner.Points, DefaultTargetScore, "seed %d", seed)
		s.Less(loser.Points, DefaultTargetScore, "seed %d", seed)
		s.Equal(models.SkunkFor(match.TargetScore, loser.Points), match.Skunk)
		s.GreaterOrEqual(match.Rounds, 1)

		sums := map[string]int{}
		for _, record := range output.Records {
			sums[record.PlayerID] += record.Points
			if record.Kind == models.ScoreKindHand || record.Kind == models.ScoreKindCrib {
				s.Len(record.Cards, scoring.HandSize)
			}
		}
		s.Equal(winner.Points, sums[winner.ID], "seed %d", seed)
		s.Equal(loser.Points, sums[loser.ID], "seed %d", seed)
	}
}
