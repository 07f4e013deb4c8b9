// Package item resolves tools (used on an own creature) and spells (cast by
// one creature on a target) into immediate changes plus an optional timed
// effect.
package item

import (
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/Antigono00/pvp21/internal/game/stats"
	"github.com/Antigono00/pvp21/internal/model"
	"github.com/Antigono00/pvp21/internal/rng"
)

// Caps applied while scaling base effects by item power.
const (
	maxPowerMultiplier = 1.5

	toolStatCap = 10
	toolHealCap = 50

	spellStatCap     = 12
	spellHealCap     = 80
	spellSelfHealCap = 40
	spellDamageCap   = 100

	spellPowerPerStat = 0.05
	spellStatPivot    = 5

	spellCritBase   = 3
	spellCritPerMag = 0.3
	spellCritMax    = 15
	spellCritMult   = 1.5

	armorPierceThreshold = 1.3
	armorPierceBonus     = 1.2
)

// Resolver applies tools and spells. One per match: it shares the match's
// random source.
type Resolver struct {
	pipeline *stats.Pipeline
	src      rng.Source
	logger   *slog.Logger
}

// NewResolver creates a Resolver. Nil arguments select defaults.
func NewResolver(p *stats.Pipeline, src rng.Source, logger *slog.Logger) *Resolver {
	if p == nil {
		p = stats.NewPipeline(nil)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{pipeline: p, src: rng.OrGlobal(src), logger: logger}
}

// PowerLevelFor classifies a power multiplier for display.
func PowerLevelFor(mult float64) model.PowerLevel {
	switch {
	case mult < 1.1:
		return model.PowerWeak
	case mult < 1.3:
		return model.PowerNormal
	default:
		return model.PowerStrong
	}
}

// scaler turns base magnitudes into resolved ones for one item use.
type scaler struct {
	mult    float64
	statCap int
	healCap int
}

func newScaler(power float64, statCap, healCap int) scaler {
	return scaler{
		mult:    math.Max(0, math.Min(power, maxPowerMultiplier)),
		statCap: statCap,
		healCap: healCap,
	}
}

// stat scales one stat delta. maxHealth is bounded by the heal cap instead of
// the stat cap.
func (s scaler) stat(k model.StatKey, v int) int {
	limit := s.statCap
	if k == model.StatMaxHealth {
		limit = s.healCap
	}
	return int(math.Round(float64(clampAbs(v, limit)) * s.mult))
}

func (s scaler) stats(in model.Stats) model.Stats {
	if len(in) == 0 {
		return nil
	}
	out := make(model.Stats, len(in))
	for _, k := range model.BattleStatKeys {
		if v := in.Get(k); v != 0 {
			out[k] = s.stat(k, v)
		}
	}
	return out
}

// amount scales a heal/damage quantity and applies limit afterwards.
func (s scaler) amount(v, limit int) int {
	return clampAbs(int(math.Round(float64(v)*s.mult)), limit)
}

func (s scaler) charge(c *model.ChargeSpec) *model.ChargeSpec {
	if c == nil {
		return nil
	}
	out := *c
	out.PerTurnBonus = s.stat(c.TargetStat, c.PerTurnBonus)
	out.FinalBurst = int(math.Round(float64(c.FinalBurst) * s.mult))
	return &out
}

func clampAbs(v, limit int) int {
	if v > limit {
		return limit
	}
	if v < -limit {
		return -limit
	}
	return v
}

// applyDeltas adds deltas onto battle stats, flooring each stat at 0.
func applyDeltas(c *model.Creature, deltas model.Stats) {
	if len(deltas) == 0 {
		return
	}
	if c.BattleStats == nil {
		c.BattleStats = make(model.Stats)
	}
	for _, k := range model.BattleStatKeys {
		if d := deltas.Get(k); d != 0 {
			c.BattleStats[k] = max(c.BattleStats[k]+d, 0)
		}
	}
}

// heal raises current health by up to amount, never above max. Returns the
// amount actually restored.
func heal(c *model.Creature, amount int) int {
	if amount <= 0 {
		return 0
	}
	before := c.CurrentHealth
	c.CurrentHealth = min(c.CurrentHealth+amount, c.MaxHealth())
	if c.CurrentHealth < before {
		c.CurrentHealth = before
	}
	return c.CurrentHealth - before
}

// hurt lowers current health by amount, never below 0. Returns the amount
// actually removed.
func hurt(c *model.Creature, amount int) int {
	if amount <= 0 {
		return 0
	}
	before := c.CurrentHealth
	c.CurrentHealth = max(c.CurrentHealth-amount, 0)
	return before - c.CurrentHealth
}

func describeDeltas(deltas model.Stats) string {
	var parts []string
	for _, k := range model.BattleStatKeys {
		if d := deltas.Get(k); d != 0 {
			parts = append(parts, fmt.Sprintf("%+d %s", d, k.Label()))
		}
	}
	return strings.Join(parts, ", ")
}

func invalid(op, reason string) error {
	return fmt.Errorf("%s: %s: %w", op, reason, model.ErrInvalidInput)
}
