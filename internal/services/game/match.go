package game

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/cribbage/internal/cards"
	"github.com/KirkDiggler/cribbage/internal/models"
	"github.com/KirkDiggler/cribbage/internal/pegging"
	"github.com/KirkDiggler/cribbage/internal/player"
	matchRepo "github.com/KirkDiggler/cribbage/internal/repositories/match"
	playerRepo "github.com/KirkDiggler/cribbage/internal/repositories/player"
	scoreRepo "github.com/KirkDiggler/cribbage/internal/repositories/score"
	"github.com/KirkDiggler/cribbage/internal/scoring"
)

// table is one match in progress. Seats keep their index for the whole
// match; dealer says which of them deals this round.
type table struct {
	svc *service

	match *models.Match
	seats [2]*player.Player
	stats [2]*models.MatchPlayer

	deck  *cards.Deck
	fixed []cards.Card

	round      int
	dealer     int
	starter    cards.Card
	hasStarter bool
	winner     int

	records []*models.ScoreRecord
}

// PlayMatch plays a full match between two seats
func (s *service) PlayMatch(ctx context.Context, input *PlayMatchInput) (*PlayMatchOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	t, err := s.newTable(input)
	if err != nil {
		return nil, err
	}

	s.logger.Info("match started",
		"match_id", t.match.ID,
		"channel_id", t.match.ChannelID,
		"players", []string{t.seats[0].Name(), t.seats[1].Name()})

	if err := t.cutForDeal(); err != nil {
		return nil, err
	}

	for t.winner < 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if t.round >= s.maxRounds {
			return nil, ErrRoundLimit
		}
		t.round++

		if err := t.playRound(); err != nil {
			return nil, fmt.Errorf("round %d: %w", t.round, err)
		}

		s.logger.Debug("round finished",
			"match_id", t.match.ID,
			"round", t.round,
			"points", []int{t.seats[0].Points(), t.seats[1].Points()})

		if t.winner >= 0 {
			break
		}

		if err := t.resetDeck(); err != nil {
			return nil, fmt.Errorf("round %d: %w", t.round, err)
		}
		t.dealer = 1 - t.dealer
	}

	match := t.finish()
	t.emit(&Event{Kind: EventGameOver, PlayerID: match.WinnerID, Match: match})

	s.logger.Info("match finished",
		"match_id", match.ID,
		"winner", match.Winner().Name,
		"rounds", match.Rounds,
		"skunk", match.Skunk)

	if err := s.recordMatch(ctx, match, t.records); err != nil {
		return nil, err
	}

	return &PlayMatchOutput{
		Match:   match,
		Records: t.records,
	}, nil
}

func (s *service) newTable(input *PlayMatchInput) (*table, error) {
	if len(input.Players) != 2 {
		return nil, ErrInvalidPlayers
	}

	t := &table{
		svc:    s,
		winner: -1,
	}

	for i, seat := range input.Players {
		if seat == nil || seat.Controller == nil {
			return nil, ErrInvalidPlayers
		}

		p, err := player.New(&player.Config{
			ID:         seat.ID,
			Name:       seat.Name,
			Controller: seat.Controller,
		})
		if err != nil {
			return nil, fmt.Errorf("seat %d: %w", i+1, err)
		}

		t.seats[i] = p
		t.stats[i] = &models.MatchPlayer{
			ID:   p.ID(),
			Name: p.Name(),
		}
	}

	if t.seats[0].ID() == t.seats[1].ID() {
		return nil, ErrDuplicatePlayer
	}

	if input.Deck != nil {
		if err := validateDeck(input.Deck); err != nil {
			return nil, err
		}
		t.fixed = append([]cards.Card(nil), input.Deck...)
		t.deck = cards.NewDeckWith(t.fixed)
	} else {
		t.deck = cards.NewDeck()
		if err := t.deck.Shuffle(s.roller); err != nil {
			return nil, err
		}
	}

	t.match = &models.Match{
		ID:          s.uuid.NewUUID(),
		ChannelID:   input.ChannelID,
		Players:     t.stats[:],
		TargetScore: s.targetScore,
		StartedAt:   s.clock.Now(),
	}

	return t, nil
}

func validateDeck(deck []cards.Card) error {
	if len(deck) != cards.NumRanks*cards.NumSuits {
		return fmt.Errorf("%w: got %d cards", ErrInvalidDeck, len(deck))
	}

	seen := make(map[cards.Card]bool, len(deck))
	for _, card := range deck {
		if !card.Valid() {
			return fmt.Errorf("%w: %v", ErrInvalidDeck, errInvalidCard(card))
		}
		if seen[card] {
			return fmt.Errorf("%w: %s appears twice", ErrInvalidDeck, card)
		}
		seen[card] = true
	}

	return nil
}

func errInvalidCard(card cards.Card) error {
	return fmt.Errorf("%w: %s", cards.ErrInvalidCard, card)
}

// cutForDeal has each seat cut a copy of the deck. The lower rank deals;
// equal ranks cut again.
func (t *table) cutForDeal() error {
	for attempt := 0; attempt < maxCuts; attempt++ {
		cutDeck := t.deck.Clone()
		if t.fixed == nil {
			if err := cutDeck.Shuffle(t.svc.roller); err != nil {
				return err
			}
		}

		first, err := t.seats[0].ChooseCut(cutDeck)
		if err != nil {
			return fmt.Errorf("cut for deal: %w", err)
		}
		second, err := t.seats[1].ChooseCut(cutDeck)
		if err != nil {
			return fmt.Errorf("cut for deal: %w", err)
		}

		event := &Event{
			Kind:  EventCut,
			Cards: []cards.Card{first, second},
		}

		if first.Rank == second.Rank {
			t.emit(event)
			continue
		}

		t.dealer = 0
		if second.Rank < first.Rank {
			t.dealer = 1
		}
		event.PlayerID = t.seats[t.dealer].ID()
		t.emit(event)
		return nil
	}

	return ErrCutLimit
}

func (t *table) playRound() error {
	pone := 1 - t.dealer
	order := [2]int{pone, t.dealer}

	for i := 0; i < DealSize; i++ {
		for _, seat := range order {
			card, err := t.deck.Deal()
			if err != nil {
				return fmt.Errorf("deal: %w", err)
			}
			t.seats[seat].AddCard(card)
		}
	}
	t.emit(&Event{Kind: EventDeal, PlayerID: t.seats[t.dealer].ID()})

	crib := make([]cards.Card, 0, 2*DiscardCount)
	for _, seat := range order {
		discarded := make([]cards.Card, 0, DiscardCount)
		for i := 0; i < DiscardCount; i++ {
			card, err := t.seats[seat].Discard()
			if err != nil {
				return fmt.Errorf("discard: %w", err)
			}
			discarded = append(discarded, card)
		}
		crib = append(crib, discarded...)
		t.emit(&Event{Kind: EventDiscard, PlayerID: t.seats[seat].ID(), Cards: discarded})
	}
	t.seats[t.dealer].SetCrib(crib)

	starter, err := t.deck.Deal()
	if err != nil {
		return fmt.Errorf("starter: %w", err)
	}
	t.starter = starter
	t.hasStarter = true
	t.emit(&Event{Kind: EventStarter})

	if heels := scoring.HisHeels(starter); heels > 0 {
		t.seats[t.dealer].AddPoints(heels)
		t.record(t.dealer, models.ScoreKindHeels, heels, []cards.Card{starter})
		t.emit(&Event{Kind: EventHeels, PlayerID: t.seats[t.dealer].ID(), Points: heels})
		if t.checkWin() {
			return nil
		}
	}

	if err := t.peg(pone); err != nil {
		return err
	}
	if t.winner >= 0 {
		return nil
	}

	return t.count(pone)
}

// peg runs the play phase. The pone leads and turns strictly alternate;
// a seat that cannot play passes.
func (t *table) peg(pone int) error {
	stack := pegging.New()
	var pegged [2]int

	defer func() {
		for seat, points := range pegged {
			if points > 0 {
				t.record(seat, models.ScoreKindPegging, points, nil)
			}
		}
		t.seats[0].GatherPlayed()
		t.seats[1].GatherPlayed()
	}()

	for turn := 0; t.seats[0].HasCards() || t.seats[1].HasCards(); turn++ {
		if turn >= t.svc.maxTurns {
			return ErrTurnLimit
		}

		current := (pone + turn) % 2
		opponent := 1 - current

		result, err := stack.PlayOnce(t.seats[current], t.seats[opponent])
		if err != nil {
			return fmt.Errorf("play: %w", err)
		}

		if result.Played {
			pegged[current] += result.Points.Total
			t.stats[current].PeggingPoints += result.Points.Total

			points := result.Points
			t.emit(&Event{
				Kind:     EventPlay,
				PlayerID: t.seats[current].ID(),
				Cards:    []cards.Card{result.Card},
				Stack:    stack.Stack(),
				Count:    result.Count,
				Points:   points.Total,
				Peg:      &points,
			})

			if t.checkWin() {
				return nil
			}
		} else if t.seats[current].HasCards() {
			t.emit(&Event{
				Kind:     EventGo,
				PlayerID: t.seats[current].ID(),
				Stack:    stack.Stack(),
				Count:    stack.Score(),
			})
		}

		if stack.ResetIfNeeded(t.seats[0], t.seats[1]) {
			t.emit(&Event{Kind: EventReset})
		}
	}

	return nil
}

// count scores the pone's hand, then the dealer's hand, then the crib,
// stopping as soon as someone wins
func (t *table) count(pone int) error {
	counts := []struct {
		seat   int
		isCrib bool
	}{
		{seat: pone},
		{seat: t.dealer},
		{seat: t.dealer, isCrib: true},
	}

	for _, c := range counts {
		seat := t.seats[c.seat]

		hand := seat.Hand()
		kind := models.ScoreKindHand
		if c.isCrib {
			hand = seat.Crib()
			kind = models.ScoreKindCrib
		}

		breakdown, err := scoring.Score(hand, t.starter, c.isCrib)
		if err != nil {
			return fmt.Errorf("count %s: %w", seat.Name(), err)
		}

		seat.AddPoints(breakdown.Total)
		if breakdown.Total > t.stats[c.seat].BestHand {
			t.stats[c.seat].BestHand = breakdown.Total
		}
		t.record(c.seat, kind, breakdown.Total, hand)

		t.emit(&Event{
			Kind:      EventCount,
			PlayerID:  seat.ID(),
			Cards:     hand,
			Points:    breakdown.Total,
			Breakdown: breakdown,
			IsCrib:    c.isCrib,
		})

		if t.checkWin() {
			return nil
		}
	}

	return nil
}

// resetDeck gathers every card for the next deal. A fixed deck starts over
// from its original order instead of being shuffled.
func (t *table) resetDeck() error {
	all := t.seats[0].RemoveAll()
	all = append(all, t.seats[1].RemoveAll()...)
	if t.hasStarter {
		all = append(all, t.starter)
		t.hasStarter = false
	}

	if t.fixed != nil {
		t.deck = cards.NewDeckWith(t.fixed)
		return nil
	}

	t.deck.Return(all...)
	if t.deck.Len() != cards.NumRanks*cards.NumSuits {
		return fmt.Errorf("deck holds %d cards after gathering", t.deck.Len())
	}
	return t.deck.Shuffle(t.svc.roller)
}

func (t *table) checkWin() bool {
	for i, seat := range t.seats {
		if seat.Points() >= t.svc.targetScore {
			t.winner = i
			return true
		}
	}
	return false
}

func (t *table) record(seat int, kind models.ScoreKind, points int, counted []cards.Card) {
	codes := make([]string, len(counted))
	for i, card := range counted {
		codes[i] = card.Code()
	}

	record := &models.ScoreRecord{
		ID:        t.svc.uuid.NewUUID(),
		MatchID:   t.match.ID,
		PlayerID:  t.seats[seat].ID(),
		Round:     t.round,
		Kind:      kind,
		Points:    points,
		Cards:     codes,
		Timestamp: t.svc.clock.Now(),
	}
	if t.hasStarter {
		record.Starter = t.starter.Code()
	}

	t.records = append(t.records, record)
}

func (t *table) finish() *models.Match {
	for i, seat := range t.seats {
		t.stats[i].Points = seat.Points()
	}

	loser := t.seats[1-t.winner]

	t.match.WinnerID = t.seats[t.winner].ID()
	t.match.Rounds = t.round
	t.match.Skunk = models.SkunkFor(t.match.TargetScore, loser.Points())
	t.match.FinishedAt = t.svc.clock.Now()

	return t.match
}

func (t *table) emit(event *Event) {
	if t.svc.display == nil {
		return
	}

	event.Round = t.round
	if t.hasStarter {
		starter := t.starter
		event.Starter = &starter
	}

	event.Players = make([]PlayerView, len(t.seats))
	for i, seat := range t.seats {
		event.Players[i] = PlayerView{
			ID:       seat.ID(),
			Name:     seat.Name(),
			Points:   seat.Points(),
			Hand:     seat.Hand(),
			Crib:     seat.Crib(),
			IsDealer: i == t.dealer,
		}
	}

	t.svc.display.Render(event)
}

// recordMatch stores the finished match in whichever repositories are configured
func (s *service) recordMatch(ctx context.Context, match *models.Match, records []*models.ScoreRecord) error {
	if s.matchRepo != nil {
		if err := s.matchRepo.SaveMatch(ctx, &matchRepo.SaveMatchInput{Match: match}); err != nil {
			return fmt.Errorf("failed to save match: %w", err)
		}
	}

	if s.playerRepo != nil {
		for _, mp := range match.Players {
			_, err := s.playerRepo.RecordResult(ctx, &playerRepo.RecordResultInput{
				PlayerID:  mp.ID,
				Name:      mp.Name,
				MatchID:   match.ID,
				Won:       mp.ID == match.WinnerID,
				Skunk:     match.Skunk,
				Points:    mp.Points,
				BestHand:  mp.BestHand,
				Timestamp: match.FinishedAt,
			})
			if err != nil {
				return fmt.Errorf("failed to record result for %s: %w", mp.Name, err)
			}
		}
	}

	if s.scoreRepo != nil {
		for _, record := range records {
			if err := s.scoreRepo.AddScoreRecord(ctx, &scoreRepo.AddScoreRecordInput{Record: record}); err != nil {
				return fmt.Errorf("failed to add score record: %w", err)
			}
		}
	}

	return nil
}
