package game

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/casinobreakout/internal/engine"
	"github.com/samdwyer/casinobreakout/internal/telemetry"
	"github.com/samdwyer/casinobreakout/internal/ui"
)

const pressAnyKey = " Press any key."

// Game holds the loop state around a single run.
type Game struct {
	cfg      Config
	screen   *ui.Screen
	renderer *ui.Renderer
	engine   *engine.Engine
	state    *engine.State
	mode     Mode
	outcome  engine.Outcome
}

// New creates a new game instance on the terminal.
func New(cfg Config) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	return newWithScreen(cfg, screen), nil
}

func newWithScreen(cfg Config, screen *ui.Screen) *Game {
	return &Game{
		cfg:      cfg,
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		mode:     ModePlaying,
		outcome:  engine.OutcomeContinue,
	}
}

// Run sets up the casino and plays turns until the run ends or the player
// quits. The screen is closed before Run returns.
func (g *Game) Run(ctx context.Context) (engine.Outcome, error) {
	defer g.screen.Close()

	tracer := telemetry.Tracer("game")

	ctx, initSpan := tracer.Start(ctx, "game.init")
	rng := engine.NewRandom(g.cfg.Seed)
	state, err := engine.NewState(ctx, rng)
	if err != nil {
		initSpan.RecordError(err)
		initSpan.End()
		return engine.OutcomeContinue, fmt.Errorf("set up casino: %w", err)
	}
	g.state = state
	g.engine = engine.New(rng, telemetry.Tracer("engine"))

	initSpan.SetAttributes(
		attribute.Int64("game.seed", g.cfg.Seed),
		attribute.Int("board.width", state.Board.Width),
		attribute.Int("board.height", state.Board.Height),
		attribute.Int("enemies", len(state.Enemies)),
		attribute.Int("objects", len(state.Objects)),
	)
	initSpan.End()

	for g.mode != ModeDone {
		g.renderer.Render(g.state.Snapshot(), g.status())
		g.handleInput(ctx)
	}

	return g.outcome, nil
}

// status returns the line shown under the log.
func (g *Game) status() string {
	if g.mode == ModeOver {
		return g.outcome.Verdict() + pressAnyKey
	}
	return ui.Prompt
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	case nil:
		// The screen was finalized underneath us.
		g.mode = ModeDone
	}
}

// handleKeyEvent resolves a key as a turn, or dismisses the verdict.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	if g.mode == ModeOver {
		g.mode = ModeDone
		return
	}

	intent, ok := ui.IntentForKey(ev)
	if !ok {
		return
	}

	outcome := g.engine.Resolve(ctx, g.state, intent)
	switch {
	case outcome == engine.OutcomeQuit:
		g.outcome = outcome
		g.mode = ModeDone
	case outcome.Terminal():
		g.outcome = outcome
		g.mode = ModeOver
	}
}

// Mode returns the loop's current mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// Snapshot returns a copy of the current run, for the end-of-run summary.
// It is the zero Snapshot before Run has set up the casino.
func (g *Game) Snapshot() engine.Snapshot {
	if g.state == nil {
		return engine.Snapshot{}
	}
	return g.state.Snapshot()
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
