package engine

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/casinobreakout/internal/entity"
)

const (
	stunWanted   = 2
	hitBackAlert = 1
)

// fight resolves the runner shoving into a living enemy. Neither side moves.
func (e *Engine) fight(ctx context.Context, s *State, enemy *entity.Entity) {
	result := e.fights.Resolve(s.Player, enemy)

	if result.AttackerWins {
		s.Log.Addf(msgStunned, enemy.Name)
		s.RaiseWanted(stunWanted)
	} else {
		s.Log.Addf(msgHitBack, enemy.Name)
		s.RaiseAlert(hitBackAlert)
	}

	trace.SpanFromContext(ctx).AddEvent("combat", trace.WithAttributes(
		attribute.String("enemy", enemy.Name),
		attribute.Int("player_roll", result.AttackerRoll),
		attribute.Int("enemy_roll", result.DefenderRoll),
		attribute.Bool("player_won", result.AttackerWins),
		attribute.Int("enemy.health", enemy.Health),
	))
}
