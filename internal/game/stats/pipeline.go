// Package stats derives a creature's effective battle stats from its base
// attributes, active effect modifiers, permanent modifications and
// combination level.
package stats

import (
	"math"

	"github.com/Antigono00/pvp21/internal/formula"
	"github.com/Antigono00/pvp21/internal/model"
)

const (
	minAttackDefense = 1
	minMaxHealth     = 10

	// CombinationStep is the per-level multiplier bonus of fused creatures.
	CombinationStep = 0.08
)

// Pipeline recomputes battle stats. Safe to share: it holds no mutable state.
type Pipeline struct {
	formulas formula.Formulas
}

// NewPipeline creates a Pipeline using f for base stat derivation.
// A nil f selects formula.Default.
func NewPipeline(f formula.Formulas) *Pipeline {
	if f == nil {
		f = formula.Default{}
	}
	return &Pipeline{formulas: f}
}

// Formulas returns the formulas the pipeline derives base stats with.
func (p *Pipeline) Formulas() formula.Formulas {
	return p.formulas
}

// Recalculate returns fresh battle stats for c without modifying it.
//
// Order matters:
//  1. derive base stats (external formula)
//  2. add summed StatModifications of active effects
//  3. clamp per family: attack/defense >= 1, maxHealth >= 10, rest >= 0
//  4. add permanent modifications (not clamped)
//  5. scale everything except chance stats and energyCost by 1 + 0.08×combination level
//
// Given the same effect list and base stats the result is identical.
func (p *Pipeline) Recalculate(c *model.Creature) model.Stats {
	out := p.formulas.DeriveBattleStats(c)
	if out == nil {
		out = make(model.Stats, len(model.BattleStatKeys))
	}

	mods := SumModifications(c.ActiveEffects)
	for _, k := range model.BattleStatKeys {
		if d := mods.Get(k); d != 0 {
			out[k] += d
		}
	}

	for _, k := range model.BattleStatKeys {
		if _, ok := out[k]; !ok {
			continue
		}
		out[k] = clampFamily(k, out[k])
	}

	for _, k := range model.BattleStatKeys {
		if d := c.PermanentModifications.Get(k); d != 0 {
			out[k] += d
		}
	}

	if c.CombinationLevel > 0 {
		mult := 1 + CombinationStep*float64(c.CombinationLevel)
		for _, k := range model.BattleStatKeys {
			v, ok := out[k]
			if !ok || k.IsChance() || k == model.StatEnergyCost {
				continue
			}
			out[k] = int(math.Round(float64(v) * mult))
		}
	}

	return out
}

// Refresh recalculates c's battle stats in place and clamps its current
// health down to the new maximum. Health never increases here.
// Only call on a creature the caller owns.
func (p *Pipeline) Refresh(c *model.Creature) {
	c.BattleStats = p.Recalculate(c)
	if max := c.MaxHealth(); c.CurrentHealth > max {
		c.CurrentHealth = max
	}
}

// SumModifications adds up StatModifications across effects that are still
// active (duration > 0, well-formed).
func SumModifications(effects []model.Effect) model.Stats {
	sum := make(model.Stats)
	for _, e := range effects {
		if e.Duration <= 0 || e.Malformed() {
			continue
		}
		for k, v := range e.StatModifications {
			if k.Valid() {
				sum[k] += v
			}
		}
	}
	return sum
}

func clampFamily(k model.StatKey, v int) int {
	switch {
	case k.IsAttackOrDefense():
		return max(v, minAttackDefense)
	case k == model.StatMaxHealth:
		return max(v, minMaxHealth)
	default:
		return max(v, 0)
	}
}
