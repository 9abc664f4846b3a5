package discord

import (
	"context"
	"errors"
	"fmt"
	"log"
	"slices"

	"github.com/KirkDiggler/cribbage/internal/cards"
	"github.com/KirkDiggler/cribbage/internal/controller"
	"github.com/KirkDiggler/cribbage/internal/rng"
	"github.com/KirkDiggler/cribbage/internal/services/game"
	"github.com/KirkDiggler/cribbage/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
)

// House is the opponent of every simulated match
const (
	HouseID   = "house"
	HouseName = "The House"

	historyLimit = 5
)

// CribbageCommandConfig holds the dependencies of the /cribbage command
type CribbageCommandConfig struct {
	GameService      game.Service
	MessagingService messaging.Service

	// Roller drives both sides of a simulated match; defaults to a clock-seeded roller
	Roller rng.Roller
}

// CribbageCommand handles the /cribbage command
type CribbageCommand struct {
	BaseCommand
	gameService      game.Service
	messagingService messaging.Service
	roller           rng.Roller
}

// request is one invocation of a subcommand
type request struct {
	ChannelID  string
	UserID     string
	UserName   string
	Subcommand string
	Options    map[string]*discordgo.ApplicationCommandInteractionDataOption
}

// reply is what a subcommand answers with
type reply struct {
	Content   string
	Embed     *discordgo.MessageEmbed
	Ephemeral bool
}

// NewCribbageCommand creates the /cribbage command handler
func NewCribbageCommand(cfg *CribbageCommandConfig) (*CribbageCommand, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}

	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	roller := cfg.Roller
	if roller == nil {
		roller = rng.New(nil)
	}

	return &CribbageCommand{
		BaseCommand: BaseCommand{
			Name:        "cribbage",
			Description: "Cribbage scoring and simulated matches",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "hand",
					Description: "Count a four card hand with its starter",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "cards",
							Description: "Four cards, e.g. 5H 5D JC QS",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "starter",
							Description: "The starter card, e.g. 5S",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionBoolean,
							Name:        "crib",
							Description: "Count as the crib",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "peg",
					Description: "Score a sequence of played cards",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "cards",
							Description: "Cards in play order, e.g. 5H 10D 5C",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "simulate",
					Description: "Play a random match against the house",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "stats",
					Description: "Show your match stats",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "history",
					Description: "Show recent matches in this channel",
				},
			},
		},
		gameService:      cfg.GameService,
		messagingService: cfg.MessagingService,
		roller:           roller,
	}, nil
}

// Handle processes a Discord interaction for the cribbage command
func (c *CribbageCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	req := &request{
		ChannelID:  i.ChannelID,
		Subcommand: data.Options[0].Name,
		Options:    make(map[string]*discordgo.ApplicationCommandInteractionDataOption),
	}
	for _, opt := range data.Options[0].Options {
		req.Options[opt.Name] = opt
	}

	// Member is nil in direct messages
	if i.Member != nil && i.Member.User != nil {
		req.UserID = i.Member.User.ID
		req.UserName = i.Member.User.Username
		if i.Member.Nick != "" {
			req.UserName = i.Member.Nick
		}
	} else if i.User != nil {
		req.UserID = i.User.ID
		req.UserName = i.User.Username
	}

	r := c.run(context.Background(), req)

	responseData := &discordgo.InteractionResponseData{Content: r.Content}
	if r.Embed != nil {
		responseData.Embeds = []*discordgo.MessageEmbed{r.Embed}
	}
	if r.Ephemeral {
		responseData.Flags = discordgo.MessageFlagsEphemeral
	}

	return respond(s, i, responseData)
}

// run answers one subcommand
func (c *CribbageCommand) run(ctx context.Context, req *request) *reply {
	switch req.Subcommand {
	case "hand":
		return c.handleHand(ctx, req)
	case "peg":
		return c.handlePeg(ctx, req)
	case "simulate":
		return c.handleSimulate(ctx, req)
	case "stats":
		return c.handleStats(ctx, req)
	case "history":
		return c.handleHistory(ctx, req)
	default:
		return &reply{Embed: errorEmbed("Unknown subcommand"), Ephemeral: true}
	}
}

func (c *CribbageCommand) handleHand(ctx context.Context, req *request) *reply {
	hand, err := cards.ParseList(stringOption(req, "cards"))
	if err != nil {
		return c.userError(ctx, messaging.ErrorTypeInvalidCards, err)
	}
	if len(hand) != 4 {
		return c.userError(ctx, messaging.ErrorTypeHandSize, nil)
	}

	starter, err := cards.Parse(stringOption(req, "starter"))
	if err != nil {
		return c.userError(ctx, messaging.ErrorTypeInvalidCards, err)
	}

	if dup, ok := duplicate(append(slices.Clone(hand), starter)); ok {
		return c.userError(ctx, messaging.ErrorTypeInvalidCards, fmt.Errorf("%s appears twice", dup))
	}

	isCrib := boolOption(req, "crib")
	output, err := c.gameService.ScoreHand(ctx, &game.ScoreHandInput{
		Hand:    hand,
		Starter: starter,
		IsCrib:  isCrib,
	})
	if err != nil {
		return c.userError(ctx, messaging.ErrorTypeInvalidCards, err)
	}

	msg, err := c.messagingService.GetHandScoreMessage(ctx, &messaging.GetHandScoreMessageInput{
		PlayerName: req.UserName,
		Points:     output.Breakdown.Total,
		IsCrib:     isCrib,
	})
	if err != nil {
		log.Printf("Error getting hand message: %v", err)
		msg = &messaging.GetHandScoreMessageOutput{Title: "Hand count", Tone: messaging.ToneNeutral}
	}

	return &reply{Embed: handEmbed(hand, starter, isCrib, output.Breakdown, msg)}
}

func (c *CribbageCommand) handlePeg(ctx context.Context, req *request) *reply {
	sequence, err := cards.ParseList(stringOption(req, "cards"))
	if err != nil {
		return c.userError(ctx, messaging.ErrorTypeInvalidCards, err)
	}

	if dup, ok := duplicate(sequence); ok {
		return c.userError(ctx, messaging.ErrorTypeInvalidCards, fmt.Errorf("%s appears twice", dup))
	}

	output, err := c.gameService.ScorePegging(ctx, &game.ScorePeggingInput{
		Cards: sequence,
	})
	if err != nil {
		return c.userError(ctx, messaging.ErrorTypeInvalidCards, err)
	}

	return &reply{Embed: peggingEmbed(output)}
}

func (c *CribbageCommand) handleSimulate(ctx context.Context, req *request) *reply {
	caller, err := controller.NewRandom(&controller.RandomConfig{Roller: c.roller})
	if err != nil {
		return &reply{Embed: errorEmbed(err.Error()), Ephemeral: true}
	}
	house, err := controller.NewRandom(&controller.RandomConfig{Roller: c.roller})
	if err != nil {
		return &reply{Embed: errorEmbed(err.Error()), Ephemeral: true}
	}

	output, err := c.gameService.PlayMatch(ctx, &game.PlayMatchInput{
		ChannelID: req.ChannelID,
		Players: []*game.Seat{
			{ID: req.UserID, Name: req.UserName, Controller: caller},
			{ID: HouseID, Name: HouseName, Controller: house},
		},
	})
	if err != nil {
		log.Printf("Error simulating match in channel %s: %v", req.ChannelID, err)
		return c.serviceError(ctx, err)
	}

	match := output.Match
	winner, loser := match.Winner(), match.Loser()
	msg, err := c.messagingService.GetMatchResultMessage(ctx, &messaging.GetMatchResultMessageInput{
		WinnerName:   winner.Name,
		LoserName:    loser.Name,
		WinnerPoints: winner.Points,
		LoserPoints:  loser.Points,
		Skunk:        match.Skunk,
	})
	if err != nil {
		log.Printf("Error getting match message: %v", err)
		msg = &messaging.GetMatchResultMessageOutput{Title: "Match over", Tone: messaging.ToneNeutral}
	}

	return &reply{Embed: matchEmbed(match, msg)}
}

func (c *CribbageCommand) handleStats(ctx context.Context, req *request) *reply {
	output, err := c.gameService.GetPlayerStats(ctx, &game.GetPlayerStatsInput{
		PlayerID: req.UserID,
	})
	if err != nil {
		if game.IsNotFound(err) {
			return c.userError(ctx, messaging.ErrorTypeNotFound, nil)
		}
		log.Printf("Error getting stats for %s: %v", req.UserID, err)
		return c.serviceError(ctx, err)
	}

	return &reply{Embed: statsEmbed(output)}
}

func (c *CribbageCommand) handleHistory(ctx context.Context, req *request) *reply {
	output, err := c.gameService.GetMatchHistory(ctx, &game.GetMatchHistoryInput{
		ChannelID: req.ChannelID,
		Limit:     historyLimit,
	})
	if err != nil {
		log.Printf("Error getting history for channel %s: %v", req.ChannelID, err)
		return c.serviceError(ctx, err)
	}

	if len(output.Matches) == 0 {
		return c.userError(ctx, messaging.ErrorTypeNotFound, nil)
	}

	return &reply{Embed: historyEmbed(output.Matches)}
}

// userError explains a problem with the caller's input, visible only to them
func (c *CribbageCommand) userError(ctx context.Context, errorType messaging.ErrorType, cause error) *reply {
	content := c.errorText(ctx, errorType)
	if cause != nil {
		content = fmt.Sprintf("%s\n`%v`", content, cause)
	}
	return &reply{Content: content, Ephemeral: true}
}

// serviceError reports a failure on our side as a red embed
func (c *CribbageCommand) serviceError(ctx context.Context, err error) *reply {
	if errors.Is(err, game.ErrRepositoryNotConfigured) {
		return &reply{Embed: errorEmbed(c.errorText(ctx, messaging.ErrorTypeStorageUnavailable))}
	}
	return &reply{Embed: errorEmbed(fmt.Sprintf("%s\n`%v`", c.errorText(ctx, messaging.ErrorTypeStorageUnavailable), err))}
}

func (c *CribbageCommand) errorText(ctx context.Context, errorType messaging.ErrorType) string {
	output, err := c.messagingService.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{
		ErrorType: errorType,
	})
	if err != nil {
		log.Printf("Error getting error message: %v", err)
		return "Something went wrong."
	}
	return output.Message
}

func stringOption(req *request, name string) string {
	opt, ok := req.Options[name]
	if !ok || opt.Type != discordgo.ApplicationCommandOptionString {
		return ""
	}
	return opt.StringValue()
}

func boolOption(req *request, name string) bool {
	opt, ok := req.Options[name]
	if !ok || opt.Type != discordgo.ApplicationCommandOptionBoolean {
		return false
	}
	return opt.BoolValue()
}

// duplicate returns the first card that appears more than once
func duplicate(list []cards.Card) (cards.Card, bool) {
	seen := make(map[cards.Card]struct{}, len(list))
	for _, c := range list {
		if _, ok := seen[c]; ok {
			return c, true
		}
		seen[c] = struct{}{}
	}
	return cards.Card{}, false
}
