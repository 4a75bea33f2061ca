// internal/app/commands.go
package app

import "github.com/bwmarrin/discordgo"

var commands = []*discordgo.ApplicationCommand{
	{
		Name:        "track",
		Description: "Follow a Challonge tournament in the bracket channel",
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "tournament",
				Description: "Numeric id or challonge url slug",
				Required:    true,
			},
		},
	},
	{
		Name:        "untrack",
		Description: "Stop following a tournament",
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "tournament",
				Description: "Numeric id or challonge url slug",
				Required:    true,
			},
		},
	},
	{
		Name:        "bracket",
		Description: "Show the current bracket (only you see it)",
		Type:        discordgo.ChatApplicationCommand,
	},
	{
		Name:        "report",
		Description: "Report the result of an open match",
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "match",
				Description: "Bracket letter of the match (A, B, ...)",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "winner",
				Description: "Which side won",
				Required:    true,
				Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: "player 1", Value: 1},
					{Name: "player 2", Value: 2},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "scores",
				Description: "Set scores, e.g. 3-1,3-2",
				Required:    true,
			},
		},
	},
}

// RegisterCommands creates (or updates) guild-level commands.
func RegisterCommands(s *discordgo.Session, appID, guildID string) error {
	for _, c := range commands {
		if _, err := s.ApplicationCommandCreate(appID, guildID, c); err != nil {
			return err
		}
	}
	return nil
}
