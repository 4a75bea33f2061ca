// internal/app/router.go
package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	d "github.com/jose-valero/challonge-bracket-bot/internal/adapters/discord"
	"github.com/jose-valero/challonge-bracket-bot/internal/challonge"
	"github.com/jose-valero/challonge-bracket-bot/internal/ui"
)

func (b *Bot) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		b.handleSlash(s, i)
	case discordgo.InteractionMessageComponent:
		b.handleComponent(s, i)
	}
}

func optString(i *discordgo.InteractionCreate, name string) string {
	for _, o := range i.ApplicationCommandData().Options {
		if o.Name == name {
			return o.StringValue()
		}
	}
	return ""
}

func optInt(i *discordgo.InteractionCreate, name string) int64 {
	for _, o := range i.ApplicationCommandData().Options {
		if o.Name == name {
			return o.IntValue()
		}
	}
	return 0
}

// parseTournamentRef turns user input into a tournament reference: all
// digits is the numeric id, anything else a url slug under the configured
// subdomain.
func parseTournamentRef(raw, subdomain string) challonge.TournamentID {
	raw = strings.TrimSpace(raw)
	if n, err := strconv.ParseUint(raw, 10, 64); err == nil {
		return challonge.NewTournamentID(n)
	}
	return challonge.TournamentURL(subdomain, raw)
}

// apiErrText flattens a client error into something postable.
func apiErrText(err error) string {
	var ve *challonge.ValidationError
	if errors.As(err, &ve) {
		return strings.Join(ve.Errors, "; ")
	}
	if errors.Is(err, challonge.ErrStatus) {
		return err.Error()
	}
	if errors.Is(err, challonge.ErrTransport) {
		return "challonge no responde, probá de nuevo"
	}
	return err.Error()
}

// ------------------- Slash -------------------

func (b *Bot) handleSlash(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.ChannelID != b.Cfg.BracketChannelID {
		_ = d.SendEphemeral(s, i, "Use this command in the designated bracket channel.")
		return
	}

	name := i.ApplicationCommandData().Name
	log.Printf("[slash] %s in channel %s", name, i.ChannelID)

	switch name {

	case "track":
		if !d.IsPrivileged(i) {
			_ = d.SendEphemeral(s, i, "Solo admins pueden trackear torneos.")
			return
		}
		id := parseTournamentRef(optString(i, "tournament"), b.Cfg.ChallongeSubdomain)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		tr, err := b.CH.GetTournament(ctx, id, challonge.IncludeAll)
		cancel()
		if err != nil {
			_ = d.SendEphemeral(s, i, "⚠️ "+apiErrText(err))
			return
		}

		t := Tracked{
			Key:     id.String(),
			ID:      id,
			Name:    tr.Name,
			URL:     tr.FullChallongeURL,
			Game:    tr.GameName,
			Players: int(tr.ParticipantsCount),
			AddedAt: time.Now(),
		}
		TrackPut(t)
		_ = d.SendEphemeral(s, i, fmt.Sprintf("✅ Tracking **%s** (%d jugadores).", tr.Name, tr.ParticipantsCount))

		// primer render fuera de la interacción
		go b.pollTournament(t)
		return

	case "untrack":
		if !d.IsPrivileged(i) {
			_ = d.SendEphemeral(s, i, "Solo admins pueden dejar de trackear.")
			return
		}
		key := parseTournamentRef(optString(i, "tournament"), b.Cfg.ChallongeSubdomain).String()
		if !TrackRemove(key) {
			_ = d.SendEphemeral(s, i, "⚠️ Ese torneo no estaba tracked.")
			return
		}
		_ = d.SendEphemeral(s, i, "👋 Dejé de seguir **"+key+"**.")
		return

	case "bracket":
		ts := TrackList()
		if len(ts) == 0 {
			_ = d.SendEphemeral(s, i, "⚠️ No hay torneos tracked. Usá `/track` primero.")
			return
		}
		t := ts[0]
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		names, ms, err := b.fetchState(ctx, t)
		cancel()
		if err != nil {
			_ = d.SendEphemeral(s, i, "⚠️ "+apiErrText(err))
			return
		}
		_ = d.SendEphemeralEmbed(s, i, ui.RenderBracketEmbed(buildView(t, names, ms)))
		return

	case "report":
		if !d.RequireReporter(s, i) {
			return
		}
		ident := strings.ToUpper(strings.TrimSpace(optString(i, "match")))
		slot := optInt(i, "winner")
		scores := challonge.ParseMatchScores(optString(i, "scores"))
		b.reportByIdentifier(s, i, ident, slot, scores)
		return
	}
}

// reportByIdentifier finds the open match with the given bracket letter in
// the tracked tournaments and submits the result.
func (b *Bot) reportByIdentifier(s *discordgo.Session, i *discordgo.InteractionCreate, ident string, slot int64, scores challonge.MatchScores) {
	open := challonge.MatchOpen
	for _, t := range TrackList() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		ms, err := b.CH.ListMatches(ctx, t.ID, &open, nil)
		cancel()
		if err != nil {
			_ = d.SendEphemeral(s, i, "⚠️ "+apiErrText(err))
			return
		}
		for _, m := range ms {
			if !strings.EqualFold(m.Identifier, ident) {
				continue
			}
			winner := m.Player1.ID
			if slot == 2 {
				winner = m.Player2.ID
			}
			b.submitResult(s, i, t, m.ID, winner, scores)
			return
		}
	}
	_ = d.SendEphemeral(s, i, "⚠️ No encontré una partida abierta `"+ident+"`.")
}

func (b *Bot) submitResult(s *discordgo.Session, i *discordgo.InteractionCreate, t Tracked, mid challonge.MatchID, winner challonge.ParticipantID, scores challonge.MatchScores) {
	mu := challonge.NewMatchUpdate().SetScores(scores).SetWinner(winner)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	_, err := b.CH.UpdateMatch(ctx, t.ID, mid, mu)
	cancel()
	if err != nil {
		_ = d.SendEphemeral(s, i, "⚠️ "+apiErrText(err))
		return
	}
	_ = d.SendEphemeral(s, i, "✅ Resultado cargado: "+scores.String())
	go b.pollTournament(t)
}

// ------------------- Components -------------------

func (b *Bot) handleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.ChannelID != b.Cfg.BracketChannelID {
		_ = d.SendEphemeral(s, i, "Use buttons in the designated bracket channel.")
		return
	}

	customID := i.MessageComponentData().CustomID
	log.Printf("[component] %s by %s", customID, d.SafeName(d.UserOf(i)))

	switch customID {

	case "bracket_refresh":
		_ = d.SendEphemeral(s, i, "🔄 Actualizando…")
		for _, t := range TrackList() {
			go b.pollTournament(t)
		}
		return

	// Select: report winner ("win:<matchID>:<slot>")
	case "match_report":
		if !d.RequireReporter(s, i) {
			return
		}
		vals := i.MessageComponentData().Values
		if len(vals) == 0 {
			_ = d.SendEphemeral(s, i, "⚠️ Invalid selection.")
			return
		}
		parts := strings.Split(vals[0], ":")
		if len(parts) != 3 || parts[0] != "win" {
			_ = d.SendEphemeral(s, i, "⚠️ Invalid selection.")
			return
		}
		mid, _ := strconv.ParseUint(parts[1], 10, 64)
		slot, _ := strconv.Atoi(parts[2])

		key, ok := MatchOwner(mid)
		if !ok {
			_ = d.SendEphemeral(s, i, "⚠️ Esa partida ya no está tracked.")
			return
		}
		t, ok := TrackGet(key)
		if !ok {
			_ = d.SendEphemeral(s, i, "⚠️ Ese torneo ya no está tracked.")
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		m, err := b.CH.GetMatch(ctx, t.ID, challonge.MatchID(mid), false)
		cancel()
		if err != nil {
			_ = d.SendEphemeral(s, i, "⚠️ "+apiErrText(err))
			return
		}
		if m.State != challonge.MatchOpen {
			_ = d.SendEphemeral(s, i, "⚠️ Esa partida ya no está abierta.")
			return
		}

		// reporte rápido sin sets detallados
		winner := m.Player1.ID
		quick := challonge.MatchScores{{P1: 1, P2: 0}}
		if slot == 2 {
			winner = m.Player2.ID
			quick = challonge.MatchScores{{P1: 0, P2: 1}}
		}
		b.submitResult(s, i, t, m.ID, winner, quick)
		return
	}
}
