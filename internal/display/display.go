// Package display draws a match in the terminal with pterm.
package display

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/KirkDiggler/cribbage/internal/cards"
	"github.com/KirkDiggler/cribbage/internal/models"
	"github.com/KirkDiggler/cribbage/internal/pegging"
	"github.com/KirkDiggler/cribbage/internal/scoring"
	"github.com/KirkDiggler/cribbage/internal/services/game"
	"github.com/pterm/pterm"
)

// Config holds configuration for the terminal display
type Config struct {
	// ViewerID is the player at the keyboard. Other hands stay hidden until
	// they are counted. Empty shows every hand.
	ViewerID string

	// Writer defaults to stdout
	Writer io.Writer
}

// Terminal renders game events as pterm boxes, lines and tables
type Terminal struct {
	viewerID string
	writer   io.Writer
}

// New creates a terminal display
func New(cfg *Config) *Terminal {
	t := &Terminal{writer: os.Stdout}
	if cfg != nil {
		t.viewerID = cfg.ViewerID
		if cfg.Writer != nil {
			t.writer = cfg.Writer
		}
	}
	return t
}

// Render prints one event
func (t *Terminal) Render(event *game.Event) {
	if event == nil {
		return
	}
	if out := t.Format(event); out != "" {
		pterm.Fprintln(t.writer, out)
	}
}

// Format returns the text Render would print
func (t *Terminal) Format(event *game.Event) string {
	switch event.Kind {
	case game.EventCut:
		return t.formatCut(event)
	case game.EventDeal:
		return t.formatDeal(event)
	case game.EventDiscard:
		return t.formatDiscard(event)
	case game.EventStarter:
		return pterm.Info.Sprintf("Starter: %s", Card(*event.Starter))
	case game.EventHeels:
		return pterm.Success.Sprintf("%s scores 2 for his heels", nameOf(event, event.PlayerID))
	case game.EventPlay:
		return t.formatPlay(event)
	case game.EventGo:
		return fmt.Sprintf("%s says go (count %d)", nameOf(event, event.PlayerID), event.Count)
	case game.EventReset:
		return pterm.Gray("-- count starts again at 0 --")
	case game.EventCount:
		return t.formatCount(event)
	case game.EventGameOver:
		return t.formatGameOver(event)
	default:
		return ""
	}
}

func (t *Terminal) formatCut(event *game.Event) string {
	if len(event.Cards) != 2 || len(event.Players) != 2 {
		return ""
	}

	line := fmt.Sprintf("%s cuts %s, %s cuts %s",
		event.Players[0].Name, Card(event.Cards[0]),
		event.Players[1].Name, Card(event.Cards[1]))

	if event.PlayerID == "" {
		return pterm.Warning.Sprint(line + ". A tie, cut again.")
	}
	return pterm.Info.Sprintf("%s. %s deals first.", line, nameOf(event, event.PlayerID))
}

func (t *Terminal) formatDeal(event *game.Event) string {
	var b strings.Builder

	for _, p := range event.Players {
		role := "pone"
		if p.IsDealer {
			role = "dealer"
		}
		fmt.Fprintf(&b, "%s (%s): %d\n", pterm.LightCyan(p.Name), role, p.Points)
	}

	for _, p := range event.Players {
		if t.reveals(p.ID) {
			fmt.Fprintf(&b, "\n%s holds %s", p.Name, Cards(p.Hand))
		}
	}

	return pterm.DefaultBox.
		WithTitle(pterm.LightYellow(fmt.Sprintf("|ROUND %d|", event.Round))).
		WithTitleTopCenter().
		Sprint(strings.TrimRight(b.String(), "\n"))
}

func (t *Terminal) formatDiscard(event *game.Event) string {
	name := nameOf(event, event.PlayerID)
	if t.reveals(event.PlayerID) {
		return fmt.Sprintf("%s lays away %s", name, Cards(event.Cards))
	}
	return fmt.Sprintf("%s lays away %d cards", name, len(event.Cards))
}

func (t *Terminal) formatPlay(event *game.Event) string {
	if len(event.Cards) == 0 {
		return ""
	}

	line := fmt.Sprintf("%s plays %s  [%s]  count %d",
		nameOf(event, event.PlayerID), Card(event.Cards[0]), Cards(event.Stack), event.Count)

	if event.Points == 0 || event.Peg == nil {
		return line
	}
	return line + "  " + pterm.LightGreen(fmt.Sprintf("+%d (%s)", event.Points, describePeg(*event.Peg)))
}

func describePeg(p pegging.Points) string {
	var parts []string
	if p.Fifteen > 0 {
		parts = append(parts, fmt.Sprintf("fifteen %d", p.Fifteen))
	}
	if p.ThirtyOne > 0 {
		parts = append(parts, fmt.Sprintf("thirty-one %d", p.ThirtyOne))
	}
	if p.Pairs > 0 {
		parts = append(parts, fmt.Sprintf("pairs %d", p.Pairs))
	}
	if p.Run > 0 {
		parts = append(parts, fmt.Sprintf("run %d", p.Run))
	}
	if p.Go > 0 {
		parts = append(parts, fmt.Sprintf("go %d", p.Go))
	}
	return strings.Join(parts, ", ")
}

func (t *Terminal) formatCount(event *game.Event) string {
	what := "hand"
	if event.IsCrib {
		what = "crib"
	}

	title := fmt.Sprintf("%s's %s: %s", nameOf(event, event.PlayerID), what, Cards(event.Cards))
	if event.Starter != nil {
		title += " + " + Card(*event.Starter)
	}

	table := BreakdownTable(event.Breakdown)
	return pterm.DefaultSection.Sprint(title) + table
}

// BreakdownTable renders a counted hand as a two column table
func BreakdownTable(b *scoring.Breakdown) string {
	if b == nil {
		return ""
	}

	data := pterm.TableData{
		{"Category", "Points"},
		{"Fifteens", fmt.Sprint(b.Fifteens)},
		{"Pairs", fmt.Sprint(b.Pairs)},
		{"Runs", fmt.Sprint(b.Runs)},
		{"Flush", fmt.Sprint(b.Flush)},
		{"Nobs", fmt.Sprint(b.Nobs)},
		{"Total", fmt.Sprint(b.Total)},
	}

	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return fmt.Sprintf("Total %d", b.Total)
	}
	return out
}

func (t *Terminal) formatGameOver(event *game.Event) string {
	match := event.Match
	if match == nil {
		return ""
	}

	winner, loser := match.Winner(), match.Loser()
	if winner == nil || loser == nil {
		return ""
	}

	body := fmt.Sprintf("%s wins %d to %d after %d rounds", winner.Name, winner.Points, loser.Points, match.Rounds)
	switch match.Skunk {
	case models.SkunkSingle:
		body += "\n" + pterm.LightMagenta("Skunk!")
	case models.SkunkDouble:
		body += "\n" + pterm.LightMagenta("Double skunk!")
	}

	return pterm.DefaultBox.
		WithTitle(pterm.LightGreen("|GAME OVER|")).
		WithTitleTopCenter().
		Sprint(body)
}

// reveals reports whether the viewer may see this player's cards
func (t *Terminal) reveals(playerID string) bool {
	return t.viewerID == "" || t.viewerID == playerID
}

func nameOf(event *game.Event, playerID string) string {
	for _, p := range event.Players {
		if p.ID == playerID {
			return p.Name
		}
	}
	return playerID
}

// Card renders a card with red suits in red
func Card(c cards.Card) string {
	if c.Suit.Red() {
		return pterm.LightRed(c.String())
	}
	return c.String()
}

// Cards renders cards separated by spaces
func Cards(list []cards.Card) string {
	parts := make([]string, len(list))
	for i, c := range list {
		parts[i] = Card(c)
	}
	return strings.Join(parts, " ")
}
