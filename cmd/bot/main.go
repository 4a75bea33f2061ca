// Command bot starts the discord bracket bot process
//
// this binary:
//  1. Load config from enviroment variables (.env during dev)
//  2. creates a discord session and a challonge client
//  3. registers the app handlers and starts the bracket poller
//  4. open connection to gateway and waits a signal from OS to exit
package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"

	"github.com/jose-valero/challonge-bracket-bot/internal/app"
	"github.com/jose-valero/challonge-bracket-bot/internal/challonge"
	"github.com/jose-valero/challonge-bracket-bot/pkg/config"
)

func main() {
	// read and validate the minimal config to work (loads .env itself)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	// create a session of discord
	//  the prefix "Bot " is required for bot tokens
	sess, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		log.Fatalf("discord session error: %v", err)
	}

	// solo necesitamos guilds e interacciones, nada de message content
	sess.Identify.Intents = discordgo.IntentsGuilds

	ch := challonge.New(cfg.ChallongeUser, cfg.ChallongeKey)

	// instance the app Bot and register all handlers
	// this layer keeps wiring separate from domain
	b := app.NewBot(sess, cfg, ch)
	b.RegisterHandlers()
	b.StartBracketPoller()

	// open websocket gateway
	if err := sess.Open(); err != nil {
		log.Fatalf("open gateway error: %v", err)
	}
	defer sess.Close() //--> close de connection to leave

	log.Printf("🤖 bot ready - %s", cfg.Redacted())

	// block the process till get SIGINT/SIGTERM
	// this allow a clean shutdown (Ctrl+c, kill, etc)
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-stop
	b.Stop()
}
