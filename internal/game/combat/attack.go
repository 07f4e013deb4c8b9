// Package combat resolves a single attack between two creatures.
package combat

import (
	"fmt"
	"log/slog"

	"github.com/Antigono00/pvp21/internal/formula"
	"github.com/Antigono00/pvp21/internal/game/stats"
	"github.com/Antigono00/pvp21/internal/model"
	"github.com/Antigono00/pvp21/internal/rng"
)

// Proc chances (percent) and the debuffs they attach to the defender.
const (
	ArmorCrackChance        = 20.0
	ElementalWeaknessChance = 25.0
)

// ArmorCrack returns the debuff attached on a critical hit.
func ArmorCrack() model.Effect {
	return model.Effect{
		Name:        "Armor Crack",
		Description: "A critical blow cracked the creature's defenses",
		Kind:        model.EffectDebuff,
		Origin:      model.OriginCombat,
		Duration:    1,
		StatModifications: model.Stats{
			model.StatPhysicalDefense: -3,
			model.StatMagicalDefense:  -3,
		},
	}
}

// ElementalWeakness returns the debuff attached on a favorable matchup.
func ElementalWeakness() model.Effect {
	return model.Effect{
		Name:        "Elemental Weakness",
		Description: "Elemental pressure leaves the creature exposed",
		Kind:        model.EffectDebuff,
		Origin:      model.OriginCombat,
		Duration:    2,
		StatModifications: model.Stats{
			model.StatMagicalDefense:  -3,
			model.StatPhysicalDefense: -2,
		},
	}
}

// AttackResult is the outcome of one attack. Damage is the health actually
// removed from the defender (0 when dodged).
//
// On invalid input Attacker and Defender are the untouched originals and Err
// wraps model.ErrInvalidInput.
type AttackResult struct {
	Attacker *model.Creature
	Defender *model.Creature

	Damage        int
	IsDodged      bool
	IsCritical    bool
	Effectiveness model.Effectiveness
	DamageType    model.AttackType

	ComboLevel      int
	ComboMultiplier float64
	BonusConsumed   int

	// Debuffs lists the proc effects attached to the defender.
	Debuffs []model.Effect

	Log string
	Err error
}

// Resolver processes attacks. One per match: it shares the match's random
// source. Roll order per attack: dodge, crit (inside the damage formula),
// then armor crack, then elemental weakness.
type Resolver struct {
	formulas formula.Formulas
	pipeline *stats.Pipeline
	src      rng.Source
	logger   *slog.Logger
}

// NewResolver creates a Resolver using the pipeline's formulas.
// Nil arguments select defaults.
func NewResolver(p *stats.Pipeline, src rng.Source, logger *slog.Logger) *Resolver {
	if p == nil {
		p = stats.NewPipeline(nil)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{
		formulas: p.Formulas(),
		pipeline: p,
		src:      rng.OrGlobal(src),
		logger:   logger,
	}
}

// ProcessAttack resolves attacker hitting defender. Inputs are never mutated:
// the result carries updated copies of both.
func (r *Resolver) ProcessAttack(attacker, defender *model.Creature, attackType model.AttackType, comboLevel int) AttackResult {
	if !attacker.HasBattleStats() || !defender.HasBattleStats() {
		return r.reject(attacker, defender, "missing battle stats")
	}
	if !attackType.Valid() {
		return r.reject(attacker, defender, fmt.Sprintf("unknown attack type %q", attackType))
	}

	atk := attacker.Clone()
	def := defender.Clone()

	if attackType == model.AttackAuto {
		attackType = ResolveAuto(atk)
	}
	stat := attackType.AttackStat()

	// charged bonus is spent on this attack whatever the outcome
	bonus := atk.NextAttackBonus
	if bonus > 0 {
		atk.BattleStats[stat] += bonus
		atk.NextAttackBonus = 0
	}

	combo := r.formulas.ComboMultiplier(comboLevel)
	out := r.formulas.CalculateDamage(r.src, atk, def, attackType, combo)

	if bonus > 0 {
		atk.BattleStats[stat] -= bonus
	}

	res := AttackResult{
		Attacker:        atk,
		Defender:        def,
		IsDodged:        out.IsDodged,
		IsCritical:      out.IsCritical && !out.IsDodged,
		Effectiveness:   out.Effectiveness,
		DamageType:      attackType,
		ComboLevel:      comboLevel,
		ComboMultiplier: combo,
		BonusConsumed:   max(bonus, 0),
	}

	if !out.IsDodged {
		before := def.CurrentHealth
		def.CurrentHealth = max(before-max(out.Damage, 0), 0)
		res.Damage = before - def.CurrentHealth

		if !def.IsDefeated() {
			if res.IsCritical && rng.Chance(r.src, ArmorCrackChance) {
				res.Debuffs = append(res.Debuffs, ArmorCrack())
			}
			if out.Effectiveness.Favorable() && rng.Chance(r.src, ElementalWeaknessChance) {
				res.Debuffs = append(res.Debuffs, ElementalWeakness())
			}
			if len(res.Debuffs) > 0 {
				for _, e := range res.Debuffs {
					def.AddEffect(e.Clone())
				}
				r.pipeline.Refresh(def)
			}
		}
	}

	res.Log = attackLog(res)
	r.logger.Debug("attack resolved",
		"attacker", atk.ID,
		"defender", def.ID,
		"type", attackType,
		"damage", res.Damage,
		"dodged", res.IsDodged,
		"critical", res.IsCritical,
		"combo", comboLevel,
		"defenderHealth", def.CurrentHealth)
	return res
}

// ResolveAuto picks the attack type with the larger attack stat; ties go
// physical.
func ResolveAuto(c *model.Creature) model.AttackType {
	if c.BattleStats.Get(model.StatMagicalAttack) > c.BattleStats.Get(model.StatPhysicalAttack) {
		return model.AttackMagical
	}
	return model.AttackPhysical
}

func (r *Resolver) reject(attacker, defender *model.Creature, reason string) AttackResult {
	r.logger.Debug("attack rejected", "reason", reason)
	return AttackResult{
		Attacker: attacker,
		Defender: defender,
		Log:      "The attack fails: " + reason,
		Err:      fmt.Errorf("process attack: %s: %w", reason, model.ErrInvalidInput),
	}
}
