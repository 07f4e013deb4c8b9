package testutil

import (
	"github.com/Antigono00/pvp21/internal/formula"
	"github.com/Antigono00/pvp21/internal/model"
	"github.com/Antigono00/pvp21/internal/rng"
)

// StubFormulas is a formula.Formulas whose outputs are fixed by the test.
//
// DeriveBattleStats returns a copy of BaseStats[creature.ID], falling back to
// DefaultStats. CalculateDamage returns Outcome (DamageType filled from the
// requested attack type) and records its inputs.
type StubFormulas struct {
	BaseStats    map[string]model.Stats
	DefaultStats model.Stats
	Outcome      formula.DamageOutcome
	Combo        func(level int) float64

	DeriveCalls  int
	LastAttack   model.AttackType
	LastCombo    float64
	LastAttacker *model.Creature
}

var _ formula.Formulas = (*StubFormulas)(nil)

// DeriveBattleStats implements formula.Formulas.
func (s *StubFormulas) DeriveBattleStats(c *model.Creature) model.Stats {
	s.DeriveCalls++
	if st, ok := s.BaseStats[c.ID]; ok {
		return st.Clone()
	}
	return s.DefaultStats.Clone()
}

// CalculateDamage implements formula.Formulas.
func (s *StubFormulas) CalculateDamage(_ rng.Source, attacker, _ *model.Creature, attackType model.AttackType, comboMultiplier float64) formula.DamageOutcome {
	s.LastAttack = attackType
	s.LastCombo = comboMultiplier
	s.LastAttacker = attacker.Clone()
	out := s.Outcome
	out.DamageType = attackType
	if out.Effectiveness == "" {
		out.Effectiveness = model.EffectivenessNeutral
	}
	return out
}

// ComboMultiplier implements formula.Formulas.
func (s *StubFormulas) ComboMultiplier(level int) float64 {
	if s.Combo != nil {
		return s.Combo(level)
	}
	return formula.Default{}.ComboMultiplier(level)
}
