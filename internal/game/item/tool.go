package item

import (
	"fmt"
	"strings"

	"github.com/Antigono00/pvp21/internal/data"
	"github.com/Antigono00/pvp21/internal/model"
)

// ToolResult is the outcome of using a tool on an own creature.
// On invalid input Creature is the untouched original, Effect is nil and Err
// wraps model.ErrInvalidInput.
type ToolResult struct {
	Creature *model.Creature
	Effect   *model.Effect

	StatChanges model.Stats
	Healed      int
	PowerLevel  model.PowerLevel

	Log string
	Err error
}

// ApplyTool resolves tool on c for the given difficulty and turn.
// c is never mutated; the result carries an updated copy.
func (r *Resolver) ApplyTool(c *model.Creature, tool model.Item, difficulty model.Difficulty, turn int) ToolResult {
	if !c.HasBattleStats() {
		return r.rejectTool(c, tool, "creature has no battle stats")
	}
	if !tool.Valid() {
		return r.rejectTool(c, tool, "tool is missing category or tag")
	}
	base, ok := data.ToolEffect(tool.Category, tool.Tag)
	if !ok {
		return r.rejectTool(c, tool, "no effect for tool")
	}

	power := data.Profile(difficulty).ItemPower
	s := newScaler(power, toolStatCap, toolHealCap)
	level := PowerLevelFor(s.mult)

	out := c.Clone()
	res := ToolResult{Creature: out, PowerLevel: level}

	deltas := s.stats(base.StatChanges)
	applyDeltas(out, deltas)
	res.StatChanges = deltas

	res.Healed = heal(out, s.amount(base.Healing, toolHealCap))

	if base.Duration > 0 {
		eff := model.Effect{
			Name:              base.Name,
			Description:       base.Description,
			Kind:              base.Kind,
			Origin:            model.OriginTool,
			Duration:          base.Duration,
			StartTurn:         turn,
			StatModifications: deltas.Clone(),
			Rounding:          model.RoundingFor(model.OriginTool),
			PowerLevel:        level,
		}
		if hot := s.amount(base.HealthOverTime, toolHealCap); hot != 0 {
			eff.HealthOverTime = hot
			eff.BaseHealthOverTime = hot
		}
		if base.Charge != nil {
			eff.Charge = s.charge(base.Charge)
			eff.StatModifications = nil
		}
		out.AddEffect(eff)
		r.pipeline.Refresh(out)
		view := eff.Clone()
		res.Effect = &view
	}

	res.Log = toolLog(out, base, res)
	r.logger.Debug("tool applied",
		"creature", out.ID,
		"tool", base.Name,
		"difficulty", difficulty,
		"power", s.mult,
		"healed", res.Healed)
	return res
}

func (r *Resolver) rejectTool(c *model.Creature, tool model.Item, reason string) ToolResult {
	err := invalid("apply tool", reason)
	r.logger.Debug("tool rejected", "tool", tool.Name, "reason", reason)
	return ToolResult{
		Creature: c,
		Log:      fmt.Sprintf("Tool %s could not be used: %s", toolName(tool), reason),
		Err:      err,
	}
}

func toolLog(c *model.Creature, base data.ItemEffect, res ToolResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s used %s", c.DisplayName(), base.Name)
	if d := describeDeltas(res.StatChanges); d != "" {
		fmt.Fprintf(&b, ": %s", d)
	}
	if res.Healed > 0 {
		fmt.Fprintf(&b, ", healed %d", res.Healed)
	}
	if res.Effect != nil {
		fmt.Fprintf(&b, " (%d turns, %s)", res.Effect.Duration, res.PowerLevel)
	}
	return b.String()
}

func toolName(t model.Item) string {
	if t.Name != "" {
		return t.Name
	}
	return string(t.Category) + " " + string(t.Tag)
}
