// Package effect advances timed effects one turn at a time.
//
// Lifecycle of an effect on a creature:
//
//	created (duration N, startTurn T) → Advance → decrement → purge when duration ≤ 0
//
// Charge effects ramp a stat bonus and end with a one-shot next-attack
// bonus. Echo effects oscillate their per-turn health change.
package effect

import (
	"math"

	"github.com/Antigono00/pvp21/internal/model"
)

const (
	echoBase      = 0.8
	echoAmplitude = 0.3
)

// Advance computes the effect's state for currentTurn. It never mutates e.
//
// The second return value is the burst a charge releases when it completes
// (0 otherwise). A completed charge comes back with duration 0 so the caller
// purges it on the same tick; the burst is therefore granted exactly once.
//
// Duration is not decremented here.
func Advance(e model.Effect, currentTurn int) (model.Effect, int) {
	out := e.Clone()
	elapsed := e.Elapsed(currentTurn)

	switch e.Kind {
	case model.EffectCharge:
		if e.Charge == nil || e.Charge.MaxTurns <= 0 {
			return out, 0
		}
		progress := math.Min(float64(elapsed)/float64(e.Charge.MaxTurns), 1)
		if progress >= 1 {
			out.StatModifications = nil
			out.Duration = 0
			return out, e.Charge.FinalBurst
		}
		bonus := e.Rounding.Apply(float64(e.Charge.PerTurnBonus) * progress)
		out.StatModifications = model.Stats{e.Charge.TargetStat: bonus}

	case model.EffectEcho:
		base := e.BaseHealthOverTime
		if base == 0 {
			base = e.HealthOverTime
			out.BaseHealthOverTime = base
		}
		factor := echoBase + echoAmplitude*math.Sin(float64(elapsed)*math.Pi/3)
		out.HealthOverTime = e.Rounding.Apply(float64(base) * factor)
	}

	return out, 0
}
