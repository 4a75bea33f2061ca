// internal/app/subscribers.go
package app

import (
	"fmt"
	"log"
	"sync"
	"time"

	d "github.com/jose-valero/challonge-bracket-bot/internal/adapters/discord"
	events "github.com/jose-valero/challonge-bracket-bot/internal/domain/events"
)

var subsOnce sync.Once
var subsCancel func() = func() {}
var handled sync.Map

func recentlyHandled(key string, ttl time.Duration) bool {
	now := time.Now()
	if v, ok := handled.Load(key); ok {
		if now.Sub(v.(time.Time)) < ttl {
			return true
		}
	}
	handled.Store(key, now)
	return false
}

func (b *Bot) StartEventSubscribers() func() {
	subsOnce.Do(func() {
		var cancels []func()
		channelID := b.Cfg.AnnounceChannelID

		// ---------- MATCH OPENED ----------
		cancels = append(cancels, events.Subscribe(func(ev events.MatchOpened) {
			key := fmt.Sprintf("open:%s:%d", ev.TournamentID, ev.MatchID)
			if recentlyHandled(key, 3*time.Second) {
				return
			}
			_ = d.Announce(b.Sess, channelID, fmt.Sprintf(
				"🎮 **%s** vs **%s** — partida `%s` abierta, a jugar!",
				ev.Player1, ev.Player2, ev.Identifier,
			))
			log.Printf("[bus] MatchOpened %s/%s", ev.TournamentID, ev.Identifier)
		}))

		// ---------- MATCH COMPLETED ----------
		cancels = append(cancels, events.Subscribe(func(ev events.MatchCompleted) {
			key := fmt.Sprintf("done:%s:%d", ev.TournamentID, ev.MatchID)
			if recentlyHandled(key, 3*time.Second) {
				return
			}
			_ = d.Announce(b.Sess, channelID, fmt.Sprintf(
				"🏁 `%s`: **%s** le ganó a %s (%s)",
				ev.Identifier, ev.Winner, ev.Loser, ev.Scores,
			))
			log.Printf("[bus] MatchCompleted %s/%s", ev.TournamentID, ev.Identifier)
		}))

		// ---------- TOURNAMENT COMPLETED ----------
		cancels = append(cancels, events.Subscribe(func(ev events.TournamentCompleted) {
			if recentlyHandled("champ:"+ev.TournamentID, 3*time.Second) {
				return
			}
			_ = d.Announce(b.Sess, channelID, fmt.Sprintf(
				"🏆 **%s** terminó — campeón: **%s**",
				ev.Name, ev.Winner,
			))
			log.Printf("[bus] TournamentCompleted %s", ev.TournamentID)
		}))

		log.Printf("[bus] subscribers registered (once)")
		log.Printf("[bus] counts: MatchOpened=%d MatchCompleted=%d TournamentCompleted=%d",
			events.Count[events.MatchOpened](),
			events.Count[events.MatchCompleted](),
			events.Count[events.TournamentCompleted](),
		)

		subsCancel = func() {
			for _, c := range cancels {
				c()
			}
		}
	})

	return subsCancel
}
