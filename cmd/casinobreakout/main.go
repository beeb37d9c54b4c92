// Package main is the entry point for Casino Breakout.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/samdwyer/casinobreakout/internal/game"
	"github.com/samdwyer/casinobreakout/internal/telemetry"
	"github.com/samdwyer/casinobreakout/internal/ui"
)

func main() {
	// Load .env file for local development
	// This makes HONEYCOMB_CASINOBREAKOUT_API_KEY available
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cmd := &cli.Command{
		Name:  "casinobreakout",
		Usage: "sneak out of the casino with at least $10",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "seed",
				Usage: "random seed for a reproducible run (0 picks one from the clock)",
			},
			&cli.BoolFlag{
				Name:  "no-telemetry",
				Usage: "do not export traces",
			},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatalf("Game error: %v", err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	cfg := game.Config{
		Seed:      cmd.Int("seed"),
		Telemetry: !cmd.Bool("no-telemetry"),
	}

	if cfg.Telemetry {
		// Set up OTEL environment variables from our .env variables
		otelCfg, err := telemetry.LoadConfigFromEnv()
		if err != nil {
			return err
		}
		if err := otelCfg.Apply(); err != nil {
			return err
		}

		shutdown, err := telemetry.Setup(ctx, telemetry.NewSessionID())
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
			log.Printf("Game will run without observability")
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.Printf("Error shutting down telemetry: %v", err)
				}
			}()
		}
	}

	g, err := game.New(cfg)
	if err != nil {
		return fmt.Errorf("initialize game: %w", err)
	}

	// Run releases the terminal before returning, so the summary prints to
	// the normal shell.
	outcome, err := g.Run(ctx)
	if err != nil {
		return err
	}

	fmt.Println(ui.Summary(outcome, g.Snapshot()))
	return nil
}
