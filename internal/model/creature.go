package model

import "errors"

// ErrInvalidInput is the only failure kind the battle core recognizes:
// a missing or malformed creature, tool, spell or effect. Resolvers never
// panic on it; they return a sentinel result whose Err wraps it.
var ErrInvalidInput = errors.New("invalid input")

// Rarity — редкость существа.
type Rarity string

const (
	RarityCommon    Rarity = "Common"
	RarityRare      Rarity = "Rare"
	RarityEpic      Rarity = "Epic"
	RarityLegendary Rarity = "Legendary"
)

// Valid reports whether r is a known rarity.
func (r Rarity) Valid() bool {
	switch r {
	case RarityCommon, RarityRare, RarityEpic, RarityLegendary:
		return true
	}
	return false
}

// Element is a creature's elemental affinity.
type Element string

const (
	ElementFire  Element = "fire"
	ElementWater Element = "water"
	ElementEarth Element = "earth"
	ElementAir   Element = "air"
	ElementLight Element = "light"
	ElementDark  Element = "dark"
)

// Creature — участник боя.
//
// A creature is exclusively owned by the field that contains it. Resolvers
// work on Clone() snapshots and hand back new instances; callers swap the
// field reference instead of mutating shared originals.
type Creature struct {
	ID               string
	Species          string
	Element          Element
	Rarity           Rarity
	FormLevel        int
	CombinationLevel int

	Base BaseStats

	// BattleStats are derived; only the recalculation pipeline writes them
	// (item resolution applies immediate deltas that the next recalculation
	// reconciles).
	BattleStats   Stats
	CurrentHealth int

	// ActiveEffects keeps application order.
	ActiveEffects []Effect

	IsDefending            bool
	NextAttackBonus        int
	PermanentModifications Stats
}

// Clone returns a deep structural copy: mutating the copy never aliases c.
func (c *Creature) Clone() *Creature {
	if c == nil {
		return nil
	}
	out := *c
	out.Base = c.Base.clone()
	out.BattleStats = c.BattleStats.Clone()
	out.PermanentModifications = c.PermanentModifications.Clone()
	if c.ActiveEffects != nil {
		out.ActiveEffects = make([]Effect, len(c.ActiveEffects))
		for i, e := range c.ActiveEffects {
			out.ActiveEffects[i] = e.Clone()
		}
	}
	return &out
}

// HasBattleStats reports whether the creature carries usable derived stats.
func (c *Creature) HasBattleStats() bool {
	return c != nil && len(c.BattleStats) > 0 && c.BattleStats.Get(StatMaxHealth) > 0
}

// MaxHealth returns battleStats.maxHealth.
func (c *Creature) MaxHealth() int {
	return c.BattleStats.Get(StatMaxHealth)
}

// IsDefeated reports whether health reached zero.
func (c *Creature) IsDefeated() bool {
	return c.CurrentHealth <= 0
}

// HealthRatio returns current/max health in [0,1] (0 when max is unknown).
func (c *Creature) HealthRatio() float64 {
	max := c.MaxHealth()
	if max <= 0 {
		return 0
	}
	return float64(c.CurrentHealth) / float64(max)
}

// ClampHealth keeps CurrentHealth inside [0, maxHealth].
func (c *Creature) ClampHealth() {
	if c.CurrentHealth < 0 {
		c.CurrentHealth = 0
	}
	if max := c.MaxHealth(); max > 0 && c.CurrentHealth > max {
		c.CurrentHealth = max
	}
}

// AddEffect appends e to the active effect list.
func (c *Creature) AddEffect(e Effect) {
	c.ActiveEffects = append(c.ActiveEffects, e)
}

// EffectsOfKind returns the active effects with the given kind.
func (c *Creature) EffectsOfKind(kind EffectKind) []Effect {
	var out []Effect
	for _, e := range c.ActiveEffects {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// DisplayName returns the species name, falling back to the ID.
func (c *Creature) DisplayName() string {
	if c == nil {
		return ""
	}
	if c.Species != "" {
		return c.Species
	}
	return c.ID
}
