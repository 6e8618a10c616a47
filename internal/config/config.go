package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	HTTPAddr string     `env:"HTTP_ADDR" envDefault:":8080"`
	DBPath   string     `env:"DB_PATH" envDefault:"data/catalog.db"`
	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`

	// AdminKey is the shared GM secret. Change it for any real event.
	AdminKey string `env:"ADMIN_KEY" envDefault:"dev-admin-key"`

	GameDuration  time.Duration `env:"GAME_DURATION" envDefault:"75m"`
	BaselineScore int           `env:"BASELINE_SCORE" envDefault:"50"`

	StealAmount      int `env:"STEAL_AMOUNT" envDefault:"50"`
	MinusPenalty     int `env:"MINUS_PENALTY" envDefault:"25"`
	DoubleMultiplier int `env:"DOUBLE_MULTIPLIER" envDefault:"2"`

	// Deck composition per deck; the counts double as the weights of
	// the stateless strategy.
	DeckDouble int `env:"DECK_DOUBLE" envDefault:"5"`
	DeckMinus  int `env:"DECK_MINUS" envDefault:"3"`
	DeckSteal  int `env:"DECK_STEAL" envDefault:"2"`

	// ChanceStrategy selects the reward-draw policy: "deck" or "weighted".
	ChanceStrategy string `env:"CHANCE_STRATEGY" envDefault:"deck"`
}

func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	if cfg.ChanceStrategy != "deck" && cfg.ChanceStrategy != "weighted" {
		return nil, fmt.Errorf("CHANCE_STRATEGY must be deck or weighted, got %q", cfg.ChanceStrategy)
	}
	if cfg.DoubleMultiplier < 2 {
		return nil, fmt.Errorf("DOUBLE_MULTIPLIER must be at least 2, got %d", cfg.DoubleMultiplier)
	}
	if cfg.DeckDouble+cfg.DeckMinus+cfg.DeckSteal <= 0 {
		return nil, fmt.Errorf("deck composition must contain at least one card")
	}
	return &cfg, nil
}
