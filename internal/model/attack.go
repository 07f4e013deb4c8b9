package model

// AttackType selects which attack/defense pair an attack uses.
type AttackType string

const (
	AttackPhysical AttackType = "physical"
	AttackMagical  AttackType = "magical"
	AttackAuto     AttackType = "auto"
)

// Valid reports whether t is a known attack type.
func (t AttackType) Valid() bool {
	switch t {
	case AttackPhysical, AttackMagical, AttackAuto:
		return true
	}
	return false
}

// AttackStat returns the attacker stat used by t (auto must be resolved first).
func (t AttackType) AttackStat() StatKey {
	if t == AttackMagical {
		return StatMagicalAttack
	}
	return StatPhysicalAttack
}

// DefenseStat returns the defender stat used by t.
func (t AttackType) DefenseStat() StatKey {
	if t == AttackMagical {
		return StatMagicalDefense
	}
	return StatPhysicalDefense
}

// Effectiveness is the elemental matchup outcome of an attack.
type Effectiveness string

const (
	EffectivenessNeutral       Effectiveness = "neutral"
	EffectivenessResisted      Effectiveness = "not_very_effective"
	EffectivenessEffective     Effectiveness = "effective"
	EffectivenessVeryEffective Effectiveness = "very_effective"
)

// Favorable reports whether the outcome is effective or very effective.
func (e Effectiveness) Favorable() bool {
	return e == EffectivenessEffective || e == EffectivenessVeryEffective
}
