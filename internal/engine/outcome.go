package engine

// Outcome is the result of a resolved turn.
type Outcome int

const (
	// OutcomeContinue means the run goes on.
	OutcomeContinue Outcome = iota
	// OutcomeDefeat means the runner collapsed.
	OutcomeDefeat
	// OutcomeVictory means the runner left through the exit with enough cash.
	OutcomeVictory
	// OutcomeEscalation means the alert level brought in reinforcements.
	OutcomeEscalation
	// OutcomeQuit means the player walked away. Evaluate never returns it.
	OutcomeQuit
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeContinue:
		return "continue"
	case OutcomeDefeat:
		return "defeat"
	case OutcomeVictory:
		return "victory"
	case OutcomeEscalation:
		return "escalation"
	case OutcomeQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Terminal reports whether the run is over.
func (o Outcome) Terminal() bool {
	return o != OutcomeContinue
}

// Verdict returns the closing line shown for a terminal outcome.
func (o Outcome) Verdict() string {
	switch o {
	case OutcomeDefeat:
		return "You collapse. Security drags you back inside."
	case OutcomeVictory:
		return "You made it out! The getaway car peels away into the night."
	case OutcomeEscalation:
		return "Alarms blare. Reinforcements swarm the halls."
	case OutcomeQuit:
		return "You duck into a maintenance closet and wait out the heat. Game over."
	default:
		return ""
	}
}

// Evaluate checks the end conditions in order: defeat, victory, escalation.
func Evaluate(s *State) Outcome {
	switch {
	case s.Player.Health <= 0:
		return OutcomeDefeat
	case s.Player.Pos == s.Exit && s.Player.Cash >= WinCash:
		return OutcomeVictory
	case s.Alert >= EscalationAlert:
		return OutcomeEscalation
	default:
		return OutcomeContinue
	}
}
