package app

import (
	"sync"

	"github.com/bwmarrin/discordgo"

	"github.com/jose-valero/challonge-bracket-bot/internal/challonge"
	"github.com/jose-valero/challonge-bracket-bot/pkg/config"
)

type Bot struct {
	Sess *discordgo.Session
	Cfg  *config.Config
	CH   *challonge.Client

	cancelBus func()

	// poller state: last known match states per tracked tournament, and
	// which tournaments already got their completion announcement
	seenMu sync.Mutex
	seen   map[string]map[uint64]challonge.MatchState
	done   map[string]bool
}

func NewBot(s *discordgo.Session, cfg *config.Config, ch *challonge.Client) *Bot {
	return &Bot{
		Sess: s,
		Cfg:  cfg,
		CH:   ch,
		seen: map[string]map[uint64]challonge.MatchState{},
		done: map[string]bool{},
	}
}

func (b *Bot) RegisterHandlers() {
	// 1) Router de interacciones (slash/buttons/selects)
	b.Sess.AddHandler(b.HandleInteraction)

	// 2) SUSCRIPTORES del bus: anuncian partidas y campeones
	b.cancelBus = b.StartEventSubscribers()

	// 3) registrar/actualizar slash commands
	_ = RegisterCommands(b.Sess, b.Cfg.AppID, b.Cfg.GuildID)
}

// Llamable desde main si quieres parar subs limpio (opcional)
func (b *Bot) Stop() {
	if b.cancelBus != nil {
		b.cancelBus()
	}
}
