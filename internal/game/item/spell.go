package item

import (
	"fmt"
	"math"
	"strings"

	"github.com/Antigono00/pvp21/internal/data"
	"github.com/Antigono00/pvp21/internal/model"
	"github.com/Antigono00/pvp21/internal/rng"
)

// SpellResult is the outcome of a spell cast.
// On invalid input Caster and Target are the untouched originals, Effect is
// nil and Err wraps model.ErrInvalidInput.
type SpellResult struct {
	Caster *model.Creature
	Target *model.Creature

	// Effect is the timed effect appended to the target (nil for instant spells).
	Effect *model.Effect
	// CasterEffect mirrors drained stats onto the caster for the same duration.
	CasterEffect *model.Effect

	StatChanges model.Stats
	Drained     model.Stats
	Damage      int
	Healed      int
	SelfHealed  int
	IsCritical  bool
	PowerLevel  model.PowerLevel

	Log string
	Err error
}

// SpellPower returns the raw power of a spell cast by caster:
// difficulty item power × (1 + (caster stat − 5) × 0.05), where the caster
// stat is the base attribute matching the spell category.
func SpellPower(caster *model.Creature, category model.ItemCategory, difficulty model.Difficulty) float64 {
	stat := caster.Base.Get(category.BaseStat())
	return data.Profile(difficulty).ItemPower * (1 + float64(stat-spellStatPivot)*spellPowerPerStat)
}

// SpellCritChance returns the crit percentage of a damaging spell:
// 3 + floor(magic × 0.3), capped at 15.
func SpellCritChance(caster *model.Creature) float64 {
	return math.Min(spellCritBase+math.Floor(float64(caster.Base.Magic)*spellCritPerMag), spellCritMax)
}

// ApplySpell resolves spell cast by caster on target. Caster and target may
// be the same creature. Inputs are never mutated.
func (r *Resolver) ApplySpell(caster, target *model.Creature, spell model.Item, difficulty model.Difficulty, turn int) SpellResult {
	if !caster.HasBattleStats() {
		return r.rejectSpell(caster, target, spell, "caster has no battle stats")
	}
	if !target.HasBattleStats() {
		return r.rejectSpell(caster, target, spell, "target has no battle stats")
	}
	if !spell.Valid() {
		return r.rejectSpell(caster, target, spell, "spell is missing category or tag")
	}
	base, ok := data.SpellEffect(spell.Category, spell.Tag)
	if !ok {
		return r.rejectSpell(caster, target, spell, "no effect for spell")
	}

	s := newScaler(SpellPower(caster, spell.Category, difficulty), spellStatCap, spellHealCap)
	level := PowerLevelFor(s.mult)

	cst := caster.Clone()
	tgt := cst
	if target != caster {
		tgt = target.Clone()
	}
	res := SpellResult{Caster: cst, Target: tgt, PowerLevel: level}

	deltas := s.stats(base.StatChanges)
	applyDeltas(tgt, deltas)
	res.StatChanges = deltas

	res.Healed = heal(tgt, s.amount(base.Healing, spellHealCap))
	res.SelfHealed = heal(cst, s.amount(base.SelfHeal, spellSelfHealCap))

	if base.Damage > 0 {
		dmg := float64(base.Damage) * s.mult
		if rng.Chance(r.src, SpellCritChance(caster)) {
			res.IsCritical = true
			dmg *= spellCritMult
		}
		if base.ArmorPiercing || s.mult >= armorPierceThreshold {
			dmg *= armorPierceBonus
		}
		res.Damage = hurt(tgt, min(int(math.Round(dmg)), spellDamageCap))
	}

	drained := s.stats(base.DrainStats)
	if len(drained) > 0 {
		res.Drained = drained
		for _, k := range model.BattleStatKeys {
			amt := drained.Get(k)
			if amt == 0 {
				continue
			}
			tgt.BattleStats[k] = max(tgt.BattleStats.Get(k)-amt, 0)
			cst.BattleStats[k] += amt
		}
	}

	if base.Duration > 0 {
		eff := model.Effect{
			Name:              base.Name,
			Description:       base.Description,
			Kind:              base.Kind,
			Origin:            model.OriginSpell,
			Duration:          base.Duration,
			StartTurn:         turn,
			StatModifications: deltas.Clone(),
			Rounding:          model.RoundingFor(model.OriginSpell),
			PowerLevel:        level,
		}
		if base.HealthOverTime != 0 {
			limit := spellHealCap
			if base.HealthOverTime < 0 {
				limit = spellDamageCap
			}
			eff.HealthOverTime = s.amount(base.HealthOverTime, limit)
			eff.BaseHealthOverTime = eff.HealthOverTime
		}
		if base.Charge != nil {
			eff.Charge = s.charge(base.Charge)
			eff.StatModifications = nil
		}
		if len(drained) > 0 {
			eff.StatModifications = negate(drained)
			gain := model.Effect{
				Name:              base.Name + " (drained)",
				Description:       base.Description,
				Kind:              model.EffectEnhancement,
				Origin:            model.OriginSpell,
				Duration:          base.Duration,
				StartTurn:         turn,
				StatModifications: drained.Clone(),
				Rounding:          model.RoundingFor(model.OriginSpell),
				PowerLevel:        level,
			}
			cst.AddEffect(gain)
			gainView := gain.Clone()
			res.CasterEffect = &gainView
		}
		tgt.AddEffect(eff)
		view := eff.Clone()
		res.Effect = &view

		r.pipeline.Refresh(tgt)
		if res.CasterEffect != nil && cst != tgt {
			r.pipeline.Refresh(cst)
		}
	}

	res.Log = spellLog(cst, tgt, base, res)
	r.logger.Debug("spell cast",
		"caster", cst.ID,
		"target", tgt.ID,
		"spell", base.Name,
		"difficulty", difficulty,
		"power", s.mult,
		"damage", res.Damage,
		"critical", res.IsCritical)
	return res
}

func (r *Resolver) rejectSpell(caster, target *model.Creature, spell model.Item, reason string) SpellResult {
	err := invalid("apply spell", reason)
	r.logger.Debug("spell rejected", "spell", spell.Name, "reason", reason)
	return SpellResult{
		Caster: caster,
		Target: target,
		Log:    fmt.Sprintf("Spell %s fizzles: %s", toolName(spell), reason),
		Err:    err,
	}
}

func negate(s model.Stats) model.Stats {
	out := make(model.Stats, len(s))
	for k, v := range s {
		out[k] = -v
	}
	return out
}

func spellLog(caster, target *model.Creature, base data.ItemEffect, res SpellResult) string {
	var b strings.Builder
	if caster == target {
		fmt.Fprintf(&b, "%s casts %s", caster.DisplayName(), base.Name)
	} else {
		fmt.Fprintf(&b, "%s casts %s on %s", caster.DisplayName(), base.Name, target.DisplayName())
	}
	if res.Damage > 0 {
		if res.IsCritical {
			fmt.Fprintf(&b, ", critical hit for %d damage", res.Damage)
		} else {
			fmt.Fprintf(&b, ", dealing %d damage", res.Damage)
		}
	}
	if d := describeDeltas(res.StatChanges); d != "" {
		fmt.Fprintf(&b, ": %s", d)
	}
	if d := describeDeltas(res.Drained); d != "" {
		fmt.Fprintf(&b, ", draining %s", strings.ReplaceAll(d, "+", ""))
	}
	if res.Healed > 0 {
		fmt.Fprintf(&b, ", healing %d", res.Healed)
	}
	if res.SelfHealed > 0 {
		fmt.Fprintf(&b, ", recovering %d", res.SelfHealed)
	}
	if target.IsDefeated() {
		fmt.Fprintf(&b, ". %s is defeated!", target.DisplayName())
	}
	return b.String()
}
