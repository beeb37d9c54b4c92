package combat

import "testing"

// mockCombatant is a test implementation of the Combatant interface.
type mockCombatant struct {
	name    string
	hp      int
	stamina int
}

func (m *mockCombatant) GetName() string          { return m.name }
func (m *mockCombatant) GetStamina() int          { return m.stamina }
func (m *mockCombatant) AdjustHealth(amount int)  { m.hp += amount }
func (m *mockCombatant) AdjustStamina(amount int) { m.stamina += amount }

// scriptedDice returns queued values in order, then zeros.
type scriptedDice struct {
	values []int
	calls  []int
}

func (d *scriptedDice) Intn(n int) int {
	d.calls = append(d.calls, n)
	if len(d.values) == 0 {
		return 0
	}
	v := d.values[0]
	d.values = d.values[1:]
	return v
}

func TestResolveAttackerWins(t *testing.T) {
	// Attacker: die 4 + stamina 8 = 12; defender: die 1 + stamina 8 = 9
	dice := &scriptedDice{values: []int{3, 0}}
	attacker := &mockCombatant{name: "Runner", hp: 10, stamina: 8}
	defender := &mockCombatant{name: "Drone", hp: 4, stamina: 8}

	result := NewResolver(dice).Resolve(attacker, defender)

	if !result.AttackerWins {
		t.Fatalf("AttackerWins = false, want true (rolls %d vs %d)", result.AttackerRoll, result.DefenderRoll)
	}
	if result.AttackerRoll != 12 || result.DefenderRoll != 9 {
		t.Errorf("rolls = %d vs %d, want 12 vs 9", result.AttackerRoll, result.DefenderRoll)
	}
	if defender.hp != 0 {
		t.Errorf("defender hp = %d, want 0", defender.hp)
	}
	if attacker.hp != 10 {
		t.Errorf("attacker hp = %d, want 10", attacker.hp)
	}
	if attacker.stamina != 7 {
		t.Errorf("attacker stamina = %d, want 7", attacker.stamina)
	}
}

func TestResolveDefenderWins(t *testing.T) {
	dice := &scriptedDice{values: []int{0, 5}}
	attacker := &mockCombatant{name: "Runner", hp: 10, stamina: 8}
	defender := &mockCombatant{name: "Guard Captain", hp: 10, stamina: 8}

	result := NewResolver(dice).Resolve(attacker, defender)

	if result.AttackerWins {
		t.Fatal("AttackerWins = true, want false")
	}
	if result.Damage != CounterDamage {
		t.Errorf("Damage = %d, want %d", result.Damage, CounterDamage)
	}
	if attacker.hp != 7 || defender.hp != 10 {
		t.Errorf("hp attacker/defender = %d/%d, want 7/10", attacker.hp, defender.hp)
	}
	if attacker.stamina != 7 {
		t.Errorf("attacker stamina = %d, want 7", attacker.stamina)
	}
}

func TestResolveTieFavorsAttacker(t *testing.T) {
	// Both roll 3 + 6 = 9
	dice := &scriptedDice{values: []int{2, 2}}
	attacker := &mockCombatant{name: "Runner", hp: 10, stamina: 6}
	defender := &mockCombatant{name: "Security", hp: 6, stamina: 6}

	result := NewResolver(dice).Resolve(attacker, defender)

	if result.AttackerRoll != result.DefenderRoll {
		t.Fatalf("rolls = %d vs %d, want a tie", result.AttackerRoll, result.DefenderRoll)
	}
	if !result.AttackerWins {
		t.Error("tie should favor the attacker")
	}
	if defender.hp != 2 || attacker.hp != 10 {
		t.Errorf("hp attacker/defender = %d/%d, want 10/2", attacker.hp, defender.hp)
	}
}

func TestResolveRollsAttackerFirst(t *testing.T) {
	dice := &scriptedDice{values: []int{5, 0}}
	attacker := &mockCombatant{name: "Runner", stamina: 0}
	defender := &mockCombatant{name: "Drone", stamina: 0}

	result := NewResolver(dice).Resolve(attacker, defender)

	if result.AttackerRoll != 6 || result.DefenderRoll != 1 {
		t.Errorf("rolls = %d vs %d, want 6 vs 1", result.AttackerRoll, result.DefenderRoll)
	}
	if len(dice.calls) != 2 || dice.calls[0] != DieSides || dice.calls[1] != DieSides {
		t.Errorf("dice calls = %v, want two d%d rolls", dice.calls, DieSides)
	}
}
