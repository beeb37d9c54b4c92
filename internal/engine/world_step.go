package engine

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// World event bands, checked in order against a single draw.
const (
	cameraSweepBand   = 0.08
	pickpocketBand    = 0.14
	unguardedBillBand = 0.20
)

const (
	cornerDamage = 2
	cornerWanted = 1
)

// rollWorldEvent draws once and applies at most one event.
func (e *Engine) rollWorldEvent(ctx context.Context, s *State) {
	roll := e.rng.Float64()

	var event string
	switch {
	case roll < cameraSweepBand:
		event = "camera_sweep"
		s.RaiseAlert(1)
		s.RaiseWanted(1)
		s.Log.Add(msgCameraSweep)
	case roll < pickpocketBand && s.Player.Cash > 0:
		event = "pickpocket"
		s.Player.Cash--
		s.Log.Add(msgPickpocket)
	case roll < unguardedBillBand:
		event = "unguarded_bill"
		s.Player.Cash++
		s.Log.Add(msgUnguardedBill)
	default:
		return
	}

	trace.SpanFromContext(ctx).AddEvent("world_event", trace.WithAttributes(
		attribute.String("event", event),
		attribute.Float64("roll", roll),
	))
}

// moveEnemies steps every living enemy, in spawn order, one cell toward the
// runner. A blocked step is skipped. Each enemy landing on the runner
// corners them on its own.
func (e *Engine) moveEnemies(ctx context.Context, s *State) {
	target := s.Player.Pos
	for _, enemy := range s.Enemies {
		if !enemy.IsAlive() {
			continue
		}

		dest := enemy.Pos.Add(enemy.Pos.StepToward(target))
		if s.Board.IsPassable(dest) {
			enemy.Pos = dest
		}

		if enemy.Pos == target {
			s.Log.Addf(msgCornered, enemy.Name)
			s.Player.AdjustHealth(-cornerDamage)
			s.RaiseWanted(cornerWanted)

			trace.SpanFromContext(ctx).AddEvent("cornered", trace.WithAttributes(
				attribute.String("enemy", enemy.Name),
			))
		}
	}
}
