// internal/app/poller.go
package app

import (
	"context"
	"log"
	"sync"
	"time"

	d "github.com/jose-valero/challonge-bracket-bot/internal/adapters/discord"
	"github.com/jose-valero/challonge-bracket-bot/internal/challonge"
	events "github.com/jose-valero/challonge-bracket-bot/internal/domain/events"
	"github.com/jose-valero/challonge-bracket-bot/internal/ui"
)

var pollOnce sync.Once

func (b *Bot) StartBracketPoller() {
	pollOnce.Do(func() {
		go func() {
			ticker := time.NewTicker(b.Cfg.PollInterval)
			defer ticker.Stop()

			for range ticker.C {
				// No hay torneos o no hay cliente: nada que hacer.
				if b == nil || b.CH == nil || TrackCount() == 0 {
					continue
				}
				for _, t := range TrackList() {
					b.pollTournament(t)

					// micro-pausa entre torneos, por cortesía con la API
					time.Sleep(1200 * time.Millisecond)
				}
			}
		}()
	})
}

// fetchState pulls the participant names and the match list of one tracked
// tournament.
func (b *Bot) fetchState(ctx context.Context, t Tracked) (map[challonge.ParticipantID]string, challonge.MatchIndex, error) {
	parts, err := b.CH.ListParticipants(ctx, t.ID)
	if err != nil {
		return nil, nil, err
	}
	names := make(map[challonge.ParticipantID]string, len(parts))
	for _, p := range parts {
		names[p.ID] = p.Name
	}

	ms, err := b.CH.ListMatches(ctx, t.ID, nil, nil)
	if err != nil {
		return nil, nil, err
	}
	return names, ms, nil
}

func buildView(t Tracked, names map[challonge.ParticipantID]string, ms challonge.MatchIndex) ui.BracketView {
	view := ui.BracketView{
		Name:      t.Name,
		URL:       t.URL,
		GameName:  t.Game,
		Players:   len(names),
		State:     bracketState(ms),
		Cards:     buildCards(ms, names),
		UpdatedAt: time.Now(),
	}
	if view.State == "complete" {
		view.Champion = champion(ms, names)
	}
	return view
}

// pollTournament fetches the latest state of one tracked tournament,
// publishes transition events and re-renders the public bracket embed.
// Also invoked directly by the router for /track and the refresh button.
func (b *Bot) pollTournament(t Tracked) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	names, ms, err := b.fetchState(ctx, t)
	if err != nil {
		log.Printf("[poll] %s err: %v", t.Key, err)
		return
	}

	b.diffAndPublish(t, ms, names)

	view := buildView(t, names, ms)
	_ = d.PublishOrEditBracketMessage(
		b.Sess, b.Cfg.BracketChannelID,
		ui.RenderBracketEmbed(view),
		ui.ComponentsForBracket(view.Cards),
	)
}

// diffAndPublish compares the fresh match list with the last snapshot and
// emits events for every transition. The first snapshot of a tournament is
// recorded silently so a /track of a running bracket does not replay
// history.
func (b *Bot) diffAndPublish(t Tracked, ms challonge.MatchIndex, names map[challonge.ParticipantID]string) {
	b.seenMu.Lock()
	defer b.seenMu.Unlock()

	prev, had := b.seen[t.Key]
	next := make(map[uint64]challonge.MatchState, len(ms))

	for _, m := range ms {
		mid := uint64(m.ID)
		next[mid] = m.State
		MatchOwnerPut(mid, t.Key)
		if !had {
			continue
		}
		if prev[mid] == m.State {
			continue
		}
		switch m.State {
		case challonge.MatchOpen:
			events.Publish(events.MatchOpened{
				TournamentID: t.Key,
				MatchID:      mid,
				Identifier:   m.Identifier,
				Round:        m.Round,
				Player1:      names[m.Player1.ID],
				Player2:      names[m.Player2.ID],
			})
		case challonge.MatchComplete:
			events.Publish(events.MatchCompleted{
				TournamentID: t.Key,
				MatchID:      mid,
				Identifier:   m.Identifier,
				Winner:       nameOf(names, m.WinnerID),
				Loser:        nameOf(names, m.LoserID),
				Scores:       m.Scores.String(),
			})
		}
	}
	b.seen[t.Key] = next

	if len(ms) > 0 && allComplete(ms) && !b.done[t.Key] {
		b.done[t.Key] = true
		if had {
			events.Publish(events.TournamentCompleted{
				TournamentID: t.Key,
				Name:         t.Name,
				Winner:       champion(ms, names),
			})
		}
	}
}

func buildCards(ms challonge.MatchIndex, names map[challonge.ParticipantID]string) []ui.MatchCard {
	cards := make([]ui.MatchCard, 0, len(ms))
	for _, m := range ms {
		c := ui.MatchCard{
			MatchID:    uint64(m.ID),
			Identifier: m.Identifier,
			Round:      m.Round,
			Player1:    names[m.Player1.ID],
			Player2:    names[m.Player2.ID],
			State:      m.State.String(),
			Winner:     nameOf(names, m.WinnerID),
		}
		if m.State == challonge.MatchComplete {
			c.Scores = m.Scores.String()
		}
		if m.StartedAt != nil {
			c.Started = *m.StartedAt
		}
		cards = append(cards, c)
	}
	return cards
}

func nameOf(names map[challonge.ParticipantID]string, id *challonge.ParticipantID) string {
	if id == nil {
		return ""
	}
	return names[*id]
}

func allComplete(ms challonge.MatchIndex) bool {
	for _, m := range ms {
		if m.State != challonge.MatchComplete {
			return false
		}
	}
	return true
}

func bracketState(ms challonge.MatchIndex) string {
	if len(ms) == 0 {
		return "pending"
	}
	if allComplete(ms) {
		return "complete"
	}
	for _, m := range ms {
		if m.State == challonge.MatchOpen || m.State == challonge.MatchComplete {
			return "underway"
		}
	}
	return "pending"
}

// champion is the winner of the highest winners-bracket round.
func champion(ms challonge.MatchIndex, names map[challonge.ParticipantID]string) string {
	var best *challonge.Match
	for i := range ms {
		m := &ms[i]
		if m.WinnerID == nil {
			continue
		}
		if best == nil || m.Round > best.Round {
			best = m
		}
	}
	if best == nil {
		return ""
	}
	return nameOf(names, best.WinnerID)
}
