package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mysteria/outpost/internal/catalog"
	"github.com/mysteria/outpost/internal/config"
	"github.com/mysteria/outpost/internal/database"
	"github.com/mysteria/outpost/internal/game"
	"github.com/mysteria/outpost/internal/migrations"
	"github.com/mysteria/outpost/internal/server"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	// --- Post catalog (SQLite, read-only after load) ---
	db, err := database.Open(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("connecting to sqlite: %w", err)
	}
	defer db.Close()

	if err := migrations.Run(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	if err := catalog.Seed(ctx, db); err != nil {
		return fmt.Errorf("seeding catalog: %w", err)
	}
	cat, err := catalog.Load(ctx, db)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}
	logger.Info("catalog loaded", "path", cfg.DBPath, "posts", cat.Len())

	// --- Game session (in-memory; a restart starts a fresh game) ---
	session := game.NewSession(gameConfig(cfg), cat, chanceStrategy(cfg))
	logger.Info("session ready",
		"duration", cfg.GameDuration,
		"baseline_score", cfg.BaselineScore,
		"chance_strategy", cfg.ChanceStrategy,
	)

	// --- HTTP server ---
	srv, err := server.New(cfg.HTTPAddr, logger, session, cfg.AdminKey, db)
	if err != nil {
		return fmt.Errorf("building server: %w", err)
	}

	// --- Run ---
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting http server", "addr", cfg.HTTPAddr)
		return srv.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")
		return srv.Shutdown(context.Background())
	})

	return g.Wait()
}

func gameConfig(cfg *config.Config) game.Config {
	return game.Config{
		Duration:         cfg.GameDuration,
		BaselineScore:    cfg.BaselineScore,
		StealAmount:      cfg.StealAmount,
		MinusPenalty:     cfg.MinusPenalty,
		DoubleMultiplier: cfg.DoubleMultiplier,
		Deck: game.DeckComposition{
			Double: cfg.DeckDouble,
			Minus:  cfg.DeckMinus,
			Steal:  cfg.DeckSteal,
		},
	}
}

func chanceStrategy(cfg *config.Config) game.ChanceStrategy {
	comp := game.DeckComposition{
		Double: cfg.DeckDouble,
		Minus:  cfg.DeckMinus,
		Steal:  cfg.DeckSteal,
	}
	rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	if cfg.ChanceStrategy == "weighted" {
		return game.NewWeightedStrategy(comp, rng)
	}
	return game.NewDeckStrategy(comp, rng)
}
