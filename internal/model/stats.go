package model

// StatKey — ключ боевого параметра существа.
// Closed enumeration: every derived battle stat the engine knows about.
type StatKey string

const (
	StatPhysicalAttack  StatKey = "physicalAttack"
	StatMagicalAttack   StatKey = "magicalAttack"
	StatPhysicalDefense StatKey = "physicalDefense"
	StatMagicalDefense  StatKey = "magicalDefense"
	StatMaxHealth       StatKey = "maxHealth"
	StatInitiative      StatKey = "initiative"
	StatCriticalChance  StatKey = "criticalChance"
	StatDodgeChance     StatKey = "dodgeChance"
	StatEnergyCost      StatKey = "energyCost"
)

// BattleStatKeys lists all battle stats in canonical order.
// Iteration over Stats maps must go through this slice so output stays deterministic.
var BattleStatKeys = []StatKey{
	StatPhysicalAttack,
	StatMagicalAttack,
	StatPhysicalDefense,
	StatMagicalDefense,
	StatMaxHealth,
	StatInitiative,
	StatCriticalChance,
	StatDodgeChance,
	StatEnergyCost,
}

// Valid reports whether k is one of the known battle stats.
func (k StatKey) Valid() bool {
	for _, s := range BattleStatKeys {
		if s == k {
			return true
		}
	}
	return false
}

// IsChance reports whether k is a percentage roll stat (crit, dodge).
func (k StatKey) IsChance() bool {
	return k == StatCriticalChance || k == StatDodgeChance
}

// IsAttackOrDefense reports whether k belongs to the attack/defense family.
func (k StatKey) IsAttackOrDefense() bool {
	switch k {
	case StatPhysicalAttack, StatMagicalAttack, StatPhysicalDefense, StatMagicalDefense:
		return true
	}
	return false
}

// Label returns a short human-readable name used in battle log lines.
func (k StatKey) Label() string {
	switch k {
	case StatPhysicalAttack:
		return "Physical Attack"
	case StatMagicalAttack:
		return "Magical Attack"
	case StatPhysicalDefense:
		return "Physical Defense"
	case StatMagicalDefense:
		return "Magical Defense"
	case StatMaxHealth:
		return "Max Health"
	case StatInitiative:
		return "Initiative"
	case StatCriticalChance:
		return "Critical Chance"
	case StatDodgeChance:
		return "Dodge Chance"
	case StatEnergyCost:
		return "Energy Cost"
	}
	return string(k)
}

// Stats is a set of numeric battle stats (or deltas) keyed by StatKey.
// A nil Stats behaves as all-zero for reads.
type Stats map[StatKey]int

// Get returns the value for k (0 when absent).
func (s Stats) Get(k StatKey) int {
	if s == nil {
		return 0
	}
	return s[k]
}

// Clone returns an independent copy. Clone of nil is nil.
func (s Stats) Clone() Stats {
	if s == nil {
		return nil
	}
	out := make(Stats, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// BaseStat — базовый атрибут существа (шкала ~1..10).
type BaseStat string

const (
	BaseEnergy   BaseStat = "energy"
	BaseStrength BaseStat = "strength"
	BaseMagic    BaseStat = "magic"
	BaseStamina  BaseStat = "stamina"
	BaseSpeed    BaseStat = "speed"
)

// BaseStatKeys lists base attributes in canonical order.
var BaseStatKeys = []BaseStat{BaseEnergy, BaseStrength, BaseMagic, BaseStamina, BaseSpeed}

// BaseStats holds the immutable attributes a creature was minted with.
type BaseStats struct {
	Energy   int `yaml:"energy"`
	Strength int `yaml:"strength"`
	Magic    int `yaml:"magic"`
	Stamina  int `yaml:"stamina"`
	Speed    int `yaml:"speed"`

	// Specialties are the stats this creature is tagged as specialized in.
	Specialties []BaseStat `yaml:"specialties"`
}

// Get returns the attribute value for s.
func (b BaseStats) Get(s BaseStat) int {
	switch s {
	case BaseEnergy:
		return b.Energy
	case BaseStrength:
		return b.Strength
	case BaseMagic:
		return b.Magic
	case BaseStamina:
		return b.Stamina
	case BaseSpeed:
		return b.Speed
	}
	return 0
}

// HasSpecialty reports whether s is among the creature's specialty tags.
func (b BaseStats) HasSpecialty(s BaseStat) bool {
	for _, sp := range b.Specialties {
		if sp == s {
			return true
		}
	}
	return false
}

// Spread returns max-min across the five attributes.
func (b BaseStats) Spread() int {
	lo, hi := b.Energy, b.Energy
	for _, s := range BaseStatKeys[1:] {
		v := b.Get(s)
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return hi - lo
}

func (b BaseStats) clone() BaseStats {
	out := b
	if b.Specialties != nil {
		out.Specialties = append([]BaseStat(nil), b.Specialties...)
	}
	return out
}
