// internal/ui/components.go
// Build Discord components (buttons/select-menus) for the bracket UI.

package ui

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// ComponentsForBracket returns rows for:
//   - Row 1: Refresh
//   - Row 2: Report-winner select over the open matches — optional
//
// Each open match contributes two options (one per possible winner), capped
// at Discord's 25-option limit.
func ComponentsForBracket(cards []MatchCard) []discordgo.MessageComponent {
	components := []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Refrescar",
					Style:    discordgo.SecondaryButton,
					CustomID: "bracket_refresh",
					Emoji:    &discordgo.ComponentEmoji{Name: "🔄"},
				},
			},
		},
	}

	opts := reportOptions(cards)
	if len(opts) > 0 {
		components = append(components, discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.SelectMenu{
					CustomID:    "match_report",
					Placeholder: "Reportar ganador…",
					Options:     opts,
				},
			},
		})
	}

	return components
}

func reportOptions(cards []MatchCard) []discordgo.SelectMenuOption {
	opts := make([]discordgo.SelectMenuOption, 0, 25)
	for _, c := range cards {
		if c.State != "open" {
			continue
		}
		for slot, name := range []string{1: c.Player1, 2: c.Player2} {
			if slot == 0 || name == "" {
				continue
			}
			opts = append(opts, discordgo.SelectMenuOption{
				Label:       fmt.Sprintf("%s gana %s", name, c.Identifier),
				Value:       fmt.Sprintf("win:%d:%d", c.MatchID, slot),
				Description: fmt.Sprintf("%s vs %s", c.Player1, c.Player2),
			})
			if len(opts) == 25 {
				return opts
			}
		}
	}
	return opts
}
