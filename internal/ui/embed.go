package ui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
)

// MatchCard is the render-ready view of one bracket match. The app layer
// fills it from the API records so this package never imports the client.
type MatchCard struct {
	MatchID    uint64
	Identifier string // bracket letter
	Round      int64  // negative for losers bracket
	Player1    string
	Player2    string
	Scores     string // "3-1,3-2", empty until reported
	State      string // pending / open / complete
	Winner     string
	Started    time.Time
}

// BracketView is everything the public bracket embed needs.
type BracketView struct {
	Name      string
	URL       string // full challonge page, for the title link
	State     string // pending / underway / complete
	GameName  string
	Players   int
	Cards     []MatchCard
	Champion  string // set once the tournament completed
	UpdatedAt time.Time
}

func matchLine(c MatchCard) string {
	left, right := safe(c.Player1), safe(c.Player2)
	switch c.State {
	case "complete":
		if c.Winner != "" && c.Winner == c.Player1 {
			left = "**" + left + "**"
		} else if c.Winner != "" && c.Winner == c.Player2 {
			right = "**" + right + "**"
		}
		return fmt.Sprintf("`%s` %s vs %s — %s", safe(c.Identifier), left, right, safe(c.Scores))
	case "open":
		return fmt.Sprintf("`%s` %s vs %s — 🎮 en juego (%s)", safe(c.Identifier), left, right, humanSince(c.Started))
	default:
		return fmt.Sprintf("`%s` %s vs %s — ⏳", safe(c.Identifier), left, right)
	}
}

func roundName(r int64) string {
	if r < 0 {
		return fmt.Sprintf("Losers R%d", -r)
	}
	return fmt.Sprintf("Round %d", r)
}

// buildRoundsDescription groups the cards by round, winners bracket first.
func buildRoundsDescription(cards []MatchCard) string {
	if len(cards) == 0 {
		return "_Sin partidas todavía. El bracket aparece al iniciar el torneo._"
	}

	byRound := map[int64][]MatchCard{}
	for _, c := range cards {
		byRound[c.Round] = append(byRound[c.Round], c)
	}
	rounds := make([]int64, 0, len(byRound))
	for r := range byRound {
		rounds = append(rounds, r)
	}
	sort.Slice(rounds, func(i, j int) bool {
		// winners rounds ascending, then losers rounds
		ri, rj := rounds[i], rounds[j]
		if (ri > 0) != (rj > 0) {
			return ri > 0
		}
		if ri > 0 {
			return ri < rj
		}
		return ri > rj
	})

	var b strings.Builder
	for _, r := range rounds {
		fmt.Fprintf(&b, "**%s**\n", roundName(r))
		for _, c := range byRound[r] {
			b.WriteString(matchLine(c))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// ---------- principal embed (just one per channel) ----------
func RenderBracketEmbed(v BracketView) *discordgo.MessageEmbed {
	color := map[string]int{
		"underway": 0x57F287,
		"complete": 0xFEE75C,
	}[v.State]
	if color == 0 {
		color = 0x808080
	}

	emb := &discordgo.MessageEmbed{
		Title:       bracketTitle(v.Name, v.State),
		URL:         v.URL,
		Description: buildRoundsDescription(v.Cards),
		Color:       color,
	}

	if v.GameName != "" || v.Players > 0 {
		emb.Fields = append(emb.Fields, &discordgo.MessageEmbedField{
			Name:   "Info",
			Value:  fmt.Sprintf("%s • %d jugadores", safe(v.GameName), v.Players),
			Inline: false,
		})
	}
	if v.Champion != "" {
		emb.Fields = append(emb.Fields, &discordgo.MessageEmbedField{
			Name:   "🏆 Campeón",
			Value:  v.Champion,
			Inline: false,
		})
	}
	if !v.UpdatedAt.IsZero() {
		emb.Footer = &discordgo.MessageEmbedFooter{
			Text: "actualizado " + humanSince(v.UpdatedAt),
		}
	}
	return emb
}
