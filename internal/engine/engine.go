package engine

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/casinobreakout/internal/combat"
	"github.com/samdwyer/casinobreakout/internal/entity"
	"github.com/samdwyer/casinobreakout/internal/telemetry"
	"github.com/samdwyer/casinobreakout/internal/world"
)

const (
	moveStaminaCost = 1
	restStamina     = 3
	restHealth      = 1

	maxWager      = 3
	jackpotBand   = 0.25
	luckySpinBand = 0.55
	gambleWanted  = 1

	exhaustionDamage = 1
	turnStaminaRegen = 1
)

const (
	msgBump          = "You bump into a wall of neon and chrome."
	msgCash          = "You scoop up $%d from the floor."
	msgHazard        = "You slip! The spill stings. HP down."
	msgHeal          = "Found a med kit. HP restored."
	msgEscaped       = "You slide through the service exit with cash in hand. Freedom!"
	msgNeedCash      = "You found the exit but need at least $10 to bribe the driver!"
	msgRest          = "You catch your breath behind a slot machine."
	msgNoChips       = "No chips to gamble."
	msgJackpot       = "Jackpot! You win $%d."
	msgLuckySpin     = "Lucky spin. You gain $%d."
	msgHouseWins     = "House wins. You lose the chips."
	msgUnknown       = "Unknown action. Use WASD, diagonals, R, F, or X."
	msgExhausted     = "You are exhausted and lose HP."
	msgStunned       = "You stun the %s! It reels."
	msgHitBack       = "%s hits back! HP -3."
	msgCornered      = "%s corners you!"
	msgCameraSweep   = "Camera sweep increases the alert level."
	msgPickpocket    = "A pickpocket nicks a dollar from your stash."
	msgUnguardedBill = "You spot an unguarded bill. Scoop! +$1"
)

// Engine resolves one intent at a time against a State.
type Engine struct {
	rng    Random
	fights *combat.Resolver
	tracer trace.Tracer
}

// New creates an engine drawing all chance rolls from rng. A nil tracer
// disables tracing.
func New(rng Random, tracer trace.Tracer) *Engine {
	if tracer == nil {
		tracer = telemetry.NoopTracer()
	}
	return &Engine{
		rng:    rng,
		fights: combat.NewResolver(rng),
		tracer: tracer,
	}
}

// Resolve runs one full turn for the intent and returns the outcome.
//
// The pipeline is: the intent itself (including any combat), one world
// event roll, the enemy step, then turn bookkeeping. End conditions are
// evaluated only after all of it. A quit intent stops at once and returns
// OutcomeQuit without touching the state.
func (e *Engine) Resolve(ctx context.Context, s *State, in Intent) Outcome {
	ctx, span := e.tracer.Start(ctx, "turn.resolve")
	defer span.End()
	span.SetAttributes(
		attribute.String("intent", in.String()),
		attribute.Int("turn", s.Turn),
	)

	if in.Action == ActionQuit {
		span.SetAttributes(attribute.String("outcome", OutcomeQuit.String()))
		return OutcomeQuit
	}

	e.resolveIntent(ctx, s, in)
	e.rollWorldEvent(ctx, s)
	e.moveEnemies(ctx, s)
	e.endTurn(s)

	outcome := Evaluate(s)
	span.SetAttributes(
		attribute.String("outcome", outcome.String()),
		attribute.Int("player.health", s.Player.Health),
		attribute.Int("player.stamina", s.Player.Stamina),
		attribute.Int("player.cash", s.Player.Cash),
		attribute.Int("alert", s.Alert),
		attribute.Int("wanted", s.Wanted),
	)
	return outcome
}

func (e *Engine) resolveIntent(ctx context.Context, s *State, in Intent) {
	switch in.Action {
	case ActionMove:
		if !IsDirection(in.Dir) {
			s.Log.Add(msgUnknown)
			return
		}
		e.tryMove(ctx, s, in.Dir)
	case ActionRest:
		s.Player.AdjustStamina(restStamina)
		s.Player.AdjustHealth(restHealth)
		s.Log.Add(msgRest)
	case ActionGamble:
		e.gamble(ctx, s)
	default:
		s.Log.Add(msgUnknown)
	}
}

// tryMove attempts to step the runner by dir. Walls cost stamina, a living
// enemy turns the step into a fight, and anything else is walked onto.
func (e *Engine) tryMove(ctx context.Context, s *State, dir entity.Position) {
	player := s.Player
	dest := player.Pos.Add(dir)

	if !s.Board.IsPassable(dest) {
		s.Log.Add(msgBump)
		player.AdjustStamina(-moveStaminaCost)
		return
	}

	if enemy := s.EnemyAt(dest); enemy != nil {
		e.fight(ctx, s, enemy)
		return
	}

	player.Move(dir, s.Board.Width, s.Board.Height)
	player.AdjustStamina(-moveStaminaCost)
	pickUp(ctx, s, player.Pos)

	if player.Pos == s.Exit {
		if player.Cash >= WinCash {
			s.Log.Add(msgEscaped)
		} else {
			s.Log.Add(msgNeedCash)
		}
	}
}

// pickUp applies and removes the object at pos, if any.
func pickUp(ctx context.Context, s *State, pos entity.Position) {
	obj, ok := s.Objects[pos]
	if !ok {
		return
	}

	switch obj.Effect {
	case world.EffectCash:
		s.Player.Cash += obj.Value
		s.Log.Addf(msgCash, obj.Value)
	case world.EffectHazard:
		s.Player.AdjustHealth(obj.Value)
		s.Log.Add(msgHazard)
	case world.EffectHeal:
		s.Player.AdjustHealth(obj.Value)
		s.Log.Add(msgHeal)
	}
	delete(s.Objects, pos)

	trace.SpanFromContext(ctx).AddEvent("pickup", trace.WithAttributes(
		attribute.String("object", obj.Description),
		attribute.String("effect", string(obj.Effect)),
		attribute.Int("value", obj.Value),
	))
}

// gamble wagers up to maxWager on a single spin.
func (e *Engine) gamble(ctx context.Context, s *State) {
	player := s.Player
	if player.Cash <= 0 {
		s.Log.Add(msgNoChips)
		return
	}

	wager := min(maxWager, player.Cash)
	player.Cash -= wager

	payout := 0
	roll := e.rng.Float64()
	switch {
	case roll < jackpotBand:
		payout = wager * 3
		s.Log.Addf(msgJackpot, payout)
	case roll < luckySpinBand:
		payout = wager * 2
		s.Log.Addf(msgLuckySpin, payout)
	default:
		s.Log.Add(msgHouseWins)
	}
	player.Cash += payout
	s.RaiseWanted(gambleWanted)

	trace.SpanFromContext(ctx).AddEvent("gamble", trace.WithAttributes(
		attribute.Int("wager", wager),
		attribute.Int("payout", payout),
		attribute.Float64("roll", roll),
	))
}

// endTurn advances the turn counter and settles stamina. An exhausted runner
// loses health before the per-turn stamina regeneration applies.
func (e *Engine) endTurn(s *State) {
	s.Turn++
	if s.Player.Stamina <= 0 {
		s.Player.AdjustHealth(-exhaustionDamage)
		s.Log.Add(msgExhausted)
	}
	s.Player.AdjustStamina(turnStaminaRegen)
}
