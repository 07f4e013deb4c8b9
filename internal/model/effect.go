package model

import "math"

// EffectKind is the tag of an active effect.
type EffectKind string

const (
	EffectStat              EffectKind = "stat"
	EffectCharge            EffectKind = "charge"
	EffectEcho              EffectKind = "echo"
	EffectLegendaryBlessing EffectKind = "legendary_blessing"
	EffectEnergyBurst       EffectKind = "energy_burst"
	EffectEpicBlessing      EffectKind = "epic_blessing"
	EffectDebuff            EffectKind = "debuff"
	EffectDefense           EffectKind = "defense"
	EffectEnhancement       EffectKind = "enhancement"
	EffectMagic             EffectKind = "magic"
)

// Valid reports whether k is a known effect kind.
func (k EffectKind) Valid() bool {
	switch k {
	case EffectStat, EffectCharge, EffectEcho, EffectLegendaryBlessing, EffectEnergyBurst,
		EffectEpicBlessing, EffectDebuff, EffectDefense, EffectEnhancement, EffectMagic:
		return true
	}
	return false
}

// Origin records which subsystem created an effect.
type Origin string

const (
	OriginTool    Origin = "tool"
	OriginSpell   Origin = "spell"
	OriginCombat  Origin = "combat"
	OriginTrigger Origin = "trigger"
)

// Rounding selects how fractional ramp values are turned into integers.
type Rounding int8

const (
	RoundFloor   Rounding = iota // toward zero
	RoundNearest                 // math.Round
)

// Apply converts v to an int using the rounding mode.
func (r Rounding) Apply(v float64) int {
	if r == RoundNearest {
		return int(math.Round(v))
	}
	return int(math.Trunc(v))
}

// RoundingFor returns the ramp rounding used by effects of the given origin:
// spells round to nearest, everything else truncates.
func RoundingFor(o Origin) Rounding {
	if o == OriginSpell {
		return RoundNearest
	}
	return RoundFloor
}

// PowerLevel is the display classification of an item effect's strength.
type PowerLevel string

const (
	PowerWeak   PowerLevel = "weak"
	PowerNormal PowerLevel = "normal"
	PowerStrong PowerLevel = "strong"
)

// ChargeSpec describes a linear ramp toward a one-shot attack bonus.
type ChargeSpec struct {
	TargetStat   StatKey
	PerTurnBonus int
	MaxTurns     int
	FinalBurst   int
}

// Effect — активный эффект на существе (бафф, дебафф, заряд, эхо).
//
// Duration counts remaining ticks; an effect is present while Duration > 0.
// StatModifications are summed by the recalculation pipeline while active.
type Effect struct {
	Name        string
	Description string
	Kind        EffectKind
	Origin      Origin
	Duration    int
	StartTurn   int

	StatModifications Stats

	// HealthOverTime is applied once per tick (positive heals, negative damages).
	// BaseHealthOverTime keeps the unscaled amount for kinds that re-scale it.
	HealthOverTime     int
	BaseHealthOverTime int

	Charge   *ChargeSpec
	Rounding Rounding

	PowerLevel PowerLevel
}

// Clone returns an independent copy of e.
func (e Effect) Clone() Effect {
	out := e
	out.StatModifications = e.StatModifications.Clone()
	if e.Charge != nil {
		c := *e.Charge
		out.Charge = &c
	}
	return out
}

// Malformed reports whether the effect cannot be processed and should be dropped.
func (e Effect) Malformed() bool {
	if !e.Kind.Valid() {
		return true
	}
	if e.Kind == EffectCharge {
		return e.Charge == nil || e.Charge.MaxTurns <= 0 || !e.Charge.TargetStat.Valid()
	}
	return false
}

// Elapsed returns the number of turns since the effect started (never negative).
func (e Effect) Elapsed(turn int) int {
	if turn < e.StartTurn {
		return 0
	}
	return turn - e.StartTurn
}
