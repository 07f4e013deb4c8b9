package effect

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/Antigono00/pvp21/internal/data"
	"github.com/Antigono00/pvp21/internal/game/stats"
	"github.com/Antigono00/pvp21/internal/model"
)

// TickResult is the outcome of advancing one creature by one turn.
type TickResult struct {
	Creature *model.Creature

	Burst   int // next-attack bonus granted by completed charges
	Healed  int
	Damaged int
	Expired []string
	Log     []string
}

// Ticker advances all effects of a creature once per turn.
type Ticker struct {
	pipeline *stats.Pipeline
	logger   *slog.Logger
}

// NewTicker creates a Ticker. A nil logger selects slog.Default().
func NewTicker(p *stats.Pipeline, logger *slog.Logger) *Ticker {
	if logger == nil {
		logger = slog.Default()
	}
	if p == nil {
		p = stats.NewPipeline(nil)
	}
	return &Ticker{pipeline: p, logger: logger}
}

// Tick returns a copy of c with every active effect advanced for turn.
//
// For each effect in application order: malformed entries are dropped,
// the effect is advanced, charge bursts go to NextAttackBonus, health over
// time is applied with difficulty and rarity scaling, and the duration is
// decremented. Effects reaching duration 0 are purged. Stats are then
// recalculated from the surviving effects. Defending status never survives
// a tick.
func (t *Ticker) Tick(c *model.Creature, turn int, difficulty model.Difficulty) TickResult {
	if c == nil {
		return TickResult{}
	}
	out := c.Clone()
	res := TickResult{Creature: out}
	profile := data.Profile(difficulty)
	rarity := data.RarityMultiplier(out.Rarity)
	alive := !out.IsDefeated()

	kept := out.ActiveEffects[:0]
	for _, e := range c.ActiveEffects {
		if e.Malformed() {
			t.logger.Debug("dropping malformed effect",
				"creature", out.ID,
				"effect", e.Name,
				"kind", e.Kind)
			continue
		}
		if e.Duration <= 0 {
			continue
		}

		next, burst := Advance(e, turn)
		if burst > 0 {
			out.NextAttackBonus += burst
			res.Burst += burst
			res.Log = append(res.Log, fmt.Sprintf("%s's %s is fully charged (+%d on next attack)", out.DisplayName(), e.Name, burst))
		}
		if alive && next.HealthOverTime != 0 {
			t.applyHealthOverTime(out, &res, next, rarity, profile)
		}

		next.Duration--
		if next.Duration <= 0 {
			res.Expired = append(res.Expired, next.Name)
			t.logger.Debug("effect expired",
				"creature", out.ID,
				"effect", next.Name,
				"turn", turn)
			continue
		}
		kept = append(kept, next)
	}
	if len(kept) == 0 {
		kept = nil
	}
	out.ActiveEffects = kept
	out.IsDefending = false

	t.pipeline.Refresh(out)
	out.ClampHealth()
	return res
}

// TickField ticks every creature of a field and returns the new field.
func (t *Ticker) TickField(field []*model.Creature, turn int, difficulty model.Difficulty) ([]*model.Creature, []string) {
	if field == nil {
		return nil, nil
	}
	out := make([]*model.Creature, len(field))
	var log []string
	for i, c := range field {
		r := t.Tick(c, turn, difficulty)
		out[i] = r.Creature
		log = append(log, r.Log...)
	}
	return out, log
}

func (t *Ticker) applyHealthOverTime(c *model.Creature, res *TickResult, e model.Effect, rarity float64, profile data.DifficultyProfile) {
	hot := float64(e.HealthOverTime)
	if hot > 0 {
		amount := int(math.Round(hot * rarity * profile.HealScale))
		before := c.CurrentHealth
		c.CurrentHealth += amount
		c.ClampHealth()
		healed := c.CurrentHealth - before
		res.Healed += healed
		if healed > 0 {
			res.Log = append(res.Log, fmt.Sprintf("%s recovers %d health from %s", c.DisplayName(), healed, e.Name))
		}
		return
	}

	amount := int(math.Round(-hot * profile.DamageScale / rarity))
	before := c.CurrentHealth
	c.CurrentHealth -= amount
	c.ClampHealth()
	lost := before - c.CurrentHealth
	res.Damaged += lost
	if lost > 0 {
		res.Log = append(res.Log, fmt.Sprintf("%s takes %d damage from %s", c.DisplayName(), lost, e.Name))
	}
}
