package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Token   string `env:"DISCORD_BOT_TOKEN"`
	AppID   string `env:"DISCORD_APP_ID"`
	GuildID string `env:"DISCORD_GUILD_ID"`

	// Canal donde vive el embed del bracket
	BracketChannelID string `env:"DISCORD_BRACKET_CHANNEL_ID"`
	// Canal de anuncios; si falta, usamos el del bracket
	AnnounceChannelID string `env:"DISCORD_ANNOUNCE_CHANNEL_ID"`

	ChallongeUser string `env:"CHALLONGE_USERNAME"`
	ChallongeKey  string `env:"CHALLONGE_API_KEY"`

	// Subdominio de organizacion (opcional, para /track por url)
	ChallongeSubdomain string `env:"CHALLONGE_SUBDOMAIN"`

	PollInterval time.Duration `env:"POLL_INTERVAL" envDefault:"60s"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	if cfg.Token == "" {
		return nil, errors.New("missing DISCORD_BOT_TOKEN")
	}
	if cfg.AppID == "" {
		return nil, errors.New("missing DISCORD_APP_ID")
	}
	if cfg.GuildID == "" {
		return nil, errors.New("missing DISCORD_GUILD_ID")
	}
	if cfg.BracketChannelID == "" {
		return nil, errors.New("missing DISCORD_BRACKET_CHANNEL_ID")
	}
	if cfg.AnnounceChannelID == "" {
		cfg.AnnounceChannelID = cfg.BracketChannelID
	}
	if cfg.ChallongeUser == "" || cfg.ChallongeKey == "" {
		return nil, errors.New("missing CHALLONGE_USERNAME / CHALLONGE_API_KEY")
	}
	if cfg.PollInterval < 10*time.Second {
		return nil, fmt.Errorf("POLL_INTERVAL too aggressive: %s", cfg.PollInterval)
	}

	return cfg, nil
}

func (c *Config) Redacted() string {
	tok := "[set]"
	if c.Token == "" {
		tok = "[empty]"
	}
	key := "[set]"
	if c.ChallongeKey == "" {
		key = "[empty]"
	}
	return fmt.Sprintf(
		"appID=%s guildID=%s bracketChannelID=%s announceChannelID=%s challongeUser=%s poll=%s token=%s apiKey=%s",
		c.AppID, c.GuildID, c.BracketChannelID, c.AnnounceChannelID, c.ChallongeUser, c.PollInterval, tok, key,
	)
}
