// Package formula holds the pure stat and damage formulas the battle core
// calls into. They sit behind the Formulas interface so balance changes and
// tests can swap them without touching the resolvers.
package formula

import (
	"math"

	"github.com/Antigono00/pvp21/internal/data"
	"github.com/Antigono00/pvp21/internal/model"
	"github.com/Antigono00/pvp21/internal/rng"
)

// DamageOutcome is what the damage formula reports for one attack.
type DamageOutcome struct {
	Damage        int
	IsDodged      bool
	IsCritical    bool
	Effectiveness model.Effectiveness
	DamageType    model.AttackType
}

// Formulas are the external collaborators of the battle core.
type Formulas interface {
	// DeriveBattleStats computes fresh battle stats from base attributes,
	// rarity and form. Must be pure.
	DeriveBattleStats(c *model.Creature) model.Stats

	// CalculateDamage resolves raw damage, dodge and crit for an attack whose
	// type is already resolved (physical or magical).
	CalculateDamage(src rng.Source, attacker, defender *model.Creature, attackType model.AttackType, comboMultiplier float64) DamageOutcome

	// ComboMultiplier maps a combo level to a damage multiplier. Monotonic,
	// capped.
	ComboMultiplier(level int) float64
}

const (
	critMultiplier      = 1.5
	defendingMultiplier = 1.5
	minDamageRatio      = 0.1

	comboStep     = 0.1
	comboMaxBonus = 0.5
)

var energyCostByRarity = map[model.Rarity]int{
	model.RarityCommon:    2,
	model.RarityRare:      3,
	model.RarityEpic:      4,
	model.RarityLegendary: 6,
}

// Default implements Formulas with the standard balance.
type Default struct{}

var _ Formulas = Default{}

// DeriveBattleStats implements Formulas.
func (Default) DeriveBattleStats(c *model.Creature) model.Stats {
	b := c.Base
	m := data.RarityMultiplier(c.Rarity) * data.FormMultiplier(c.FormLevel)
	scale := func(v int) int { return int(math.Round(float64(v) * m)) }

	cost, ok := energyCostByRarity[c.Rarity]
	if !ok {
		cost = 2
	}

	return model.Stats{
		model.StatPhysicalAttack:  scale(10 + b.Strength*3),
		model.StatMagicalAttack:   scale(10 + b.Magic*3),
		model.StatPhysicalDefense: scale(5 + b.Stamina*2 + b.Strength),
		model.StatMagicalDefense:  scale(5 + b.Magic*2 + b.Energy),
		model.StatMaxHealth:       scale(40 + b.Stamina*10),
		model.StatInitiative:      scale(b.Speed * 2),
		model.StatCriticalChance:  5 + b.Speed/2,
		model.StatDodgeChance:     3 + b.Speed/2,
		model.StatEnergyCost:      cost,
	}
}

// CalculateDamage implements Formulas.
// Rolls in order: dodge, then crit.
func (Default) CalculateDamage(src rng.Source, attacker, defender *model.Creature, attackType model.AttackType, comboMultiplier float64) DamageOutcome {
	src = rng.OrGlobal(src)
	out := DamageOutcome{
		DamageType:    attackType,
		Effectiveness: data.Effectiveness(attacker.Element, defender.Element),
	}

	if rng.Chance(src, float64(defender.BattleStats.Get(model.StatDodgeChance))) {
		out.IsDodged = true
		return out
	}

	atk := float64(attacker.BattleStats.Get(attackType.AttackStat()))
	def := float64(defender.BattleStats.Get(attackType.DefenseStat()))
	if defender.IsDefending {
		def *= defendingMultiplier
	}

	raw := atk - def
	if floor := math.Ceil(atk * minDamageRatio); raw < floor {
		raw = floor
	}
	if raw < 1 {
		raw = 1
	}

	raw *= data.EffectivenessMultiplier(out.Effectiveness)

	if rng.Chance(src, float64(attacker.BattleStats.Get(model.StatCriticalChance))) {
		out.IsCritical = true
		raw *= critMultiplier
	}

	if comboMultiplier > 0 {
		raw *= comboMultiplier
	}

	out.Damage = int(math.Round(raw))
	return out
}

// ComboMultiplier implements Formulas: +10% per level above 1, capped at +50%.
func (Default) ComboMultiplier(level int) float64 {
	if level <= 1 {
		return 1.0
	}
	return 1.0 + math.Min(float64(level-1)*comboStep, comboMaxBonus)
}
