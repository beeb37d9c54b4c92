// Package combat resolves the dice contest fought when the runner shoves
// into an enemy.
package combat

const (
	// DieSides is the size of the die each side rolls.
	DieSides = 6
	// StunDamage is dealt to the defender when the attacker wins.
	StunDamage = 4
	// CounterDamage is dealt to the attacker when the defender wins.
	CounterDamage = 3
	// StaminaCost is paid by the attacker whatever the result.
	StaminaCost = 1
)

// Combatant is the interface for any entity that can take part in a contest.
type Combatant interface {
	GetName() string
	GetStamina() int
	AdjustHealth(amount int)
	AdjustStamina(amount int)
}

// Dice yields uniform integers in [0, n).
type Dice interface {
	Intn(n int) int
}

// Result contains the outcome of one contest.
type Result struct {
	AttackerRoll int
	DefenderRoll int
	AttackerWins bool
	Damage       int // Damage dealt to the loser
}

// Resolver rolls and applies contests.
type Resolver struct {
	dice Dice
}

// NewResolver creates a resolver drawing from dice.
func NewResolver(dice Dice) *Resolver {
	return &Resolver{dice: dice}
}

// Roll returns one die roll plus the combatant's stamina.
func (r *Resolver) Roll(c Combatant) int {
	return r.dice.Intn(DieSides) + 1 + c.GetStamina()
}

// Resolve rolls for the attacker, then for the defender, and applies the
// result. Ties go to the attacker. The attacker pays StaminaCost either way.
func (r *Resolver) Resolve(attacker, defender Combatant) Result {
	result := Result{
		AttackerRoll: r.Roll(attacker),
		DefenderRoll: r.Roll(defender),
	}

	if result.AttackerRoll >= result.DefenderRoll {
		result.AttackerWins = true
		result.Damage = StunDamage
		defender.AdjustHealth(-StunDamage)
	} else {
		result.Damage = CounterDamage
		attacker.AdjustHealth(-CounterDamage)
	}

	attacker.AdjustStamina(-StaminaCost)
	return result
}
