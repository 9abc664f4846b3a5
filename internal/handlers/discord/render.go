package discord

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/cribbage/internal/cards"
	"github.com/KirkDiggler/cribbage/internal/models"
	"github.com/KirkDiggler/cribbage/internal/scoring"
	"github.com/KirkDiggler/cribbage/internal/services/game"
	"github.com/KirkDiggler/cribbage/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
)

func toneColor(tone messaging.MessageTone) int {
	switch tone {
	case messaging.ToneCelebration:
		return colorGold
	case messaging.ToneSarcastic:
		return colorRed
	case messaging.ToneFunny:
		return colorBlue
	default:
		return colorGreen
	}
}

func joinCards(list []cards.Card) string {
	parts := make([]string, len(list))
	for i, c := range list {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

func handEmbed(hand []cards.Card, starter cards.Card, isCrib bool, b *scoring.Breakdown, msg *messaging.GetHandScoreMessageOutput) *discordgo.MessageEmbed {
	label := "Hand"
	if isCrib {
		label = "Crib"
	}

	fields := []*discordgo.MessageEmbedField{
		{Name: label, Value: joinCards(hand), Inline: true},
		{Name: "Starter", Value: starter.String(), Inline: true},
	}

	var lines []string
	for _, row := range []struct {
		name   string
		points int
	}{
		{"Fifteens", b.Fifteens},
		{"Pairs", b.Pairs},
		{"Runs", b.Runs},
		{"Flush", b.Flush},
		{"Nobs", b.Nobs},
	} {
		if row.points > 0 {
			lines = append(lines, fmt.Sprintf("%-9s %2d", row.name, row.points))
		}
	}
	lines = append(lines, fmt.Sprintf("%-9s %2d", "Total", b.Total))

	fields = append(fields, &discordgo.MessageEmbedField{
		Name:  "Count",
		Value: "```\n" + strings.Join(lines, "\n") + "\n```",
	})

	return &discordgo.MessageEmbed{
		Title:       msg.Title,
		Description: msg.Message,
		Color:       toneColor(msg.Tone),
		Fields:      fields,
	}
}

func peggingEmbed(output *game.ScorePeggingOutput) *discordgo.MessageEmbed {
	var b strings.Builder
	b.WriteString("```\n")
	for i, play := range output.Plays {
		if play.NewStack && i > 0 {
			b.WriteString("-- new count --\n")
		}
		fmt.Fprintf(&b, "%-4s count %2d", play.Card.String(), play.Count)
		if play.Points.Total > 0 {
			fmt.Fprintf(&b, "  +%d", play.Points.Total)
			if play.Points.Go > 0 {
				b.WriteString(" (go)")
			}
		}
		b.WriteString("\n")
	}
	b.WriteString("```")

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Pegging: %d points", output.Total),
		Description: b.String(),
		Color:       colorGreen,
	}
}

func matchEmbed(match *models.Match, msg *messaging.GetMatchResultMessageOutput) *discordgo.MessageEmbed {
	fields := make([]*discordgo.MessageEmbedField, 0, len(match.Players)+1)
	for _, p := range match.Players {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   p.Name,
			Value:  fmt.Sprintf("%d points\nBest hand %d\nPegged %d", p.Points, p.BestHand, p.PeggingPoints),
			Inline: true,
		})
	}
	fields = append(fields, &discordgo.MessageEmbedField{
		Name:  "Rounds",
		Value: fmt.Sprintf("%d", match.Rounds),
	})

	return &discordgo.MessageEmbed{
		Title:       msg.Title,
		Description: msg.Message,
		Color:       toneColor(msg.Tone),
		Fields:      fields,
	}
}

func statsEmbed(output *game.GetPlayerStatsOutput) *discordgo.MessageEmbed {
	p := output.Player

	winRate := 0.0
	average := 0
	if p.MatchesPlayed > 0 {
		winRate = float64(p.Wins) / float64(p.MatchesPlayed) * 100
		average = p.TotalPoints / p.MatchesPlayed
	}

	fields := []*discordgo.MessageEmbedField{
		{Name: "Matches", Value: fmt.Sprintf("%d", p.MatchesPlayed), Inline: true},
		{Name: "Record", Value: fmt.Sprintf("%d-%d (%.0f%%)", p.Wins, p.Losses, winRate), Inline: true},
		{Name: "Best hand", Value: fmt.Sprintf("%d", p.BestHand), Inline: true},
		{Name: "Skunks", Value: fmt.Sprintf("%d given, %d taken", p.SkunksGiven, p.SkunksTaken), Inline: true},
		{Name: "Average score", Value: fmt.Sprintf("%d", average), Inline: true},
	}

	if len(output.Totals) > 0 {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name: "Points by kind",
			Value: fmt.Sprintf("Hands %d\nCribs %d\nPegging %d\nHeels %d",
				output.Totals[models.ScoreKindHand],
				output.Totals[models.ScoreKindCrib],
				output.Totals[models.ScoreKindPegging],
				output.Totals[models.ScoreKindHeels]),
		})
	}

	return &discordgo.MessageEmbed{
		Title:  fmt.Sprintf("%s's cribbage stats", p.Name),
		Color:  colorBlue,
		Fields: fields,
	}
}

func historyEmbed(matches []*models.Match) *discordgo.MessageEmbed {
	var b strings.Builder
	for _, match := range matches {
		winner, loser := match.Winner(), match.Loser()
		if winner == nil || loser == nil {
			continue
		}

		fmt.Fprintf(&b, "**%s** %d to %d %s", winner.Name, winner.Points, loser.Points, loser.Name)
		switch match.Skunk {
		case models.SkunkSingle:
			b.WriteString(" (skunk)")
		case models.SkunkDouble:
			b.WriteString(" (double skunk)")
		}
		fmt.Fprintf(&b, " <t:%d:R>\n", match.FinishedAt.Unix())
	}

	return &discordgo.MessageEmbed{
		Title:       "Recent matches",
		Description: strings.TrimRight(b.String(), "\n"),
		Color:       colorBlue,
	}
}
