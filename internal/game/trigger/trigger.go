// Package trigger sweeps defeated creatures off a field and fires their
// death triggers on allies and opponents.
package trigger

import (
	"fmt"
	"log/slog"

	"github.com/Antigono00/pvp21/internal/game/stats"
	"github.com/Antigono00/pvp21/internal/model"
)

// FinalGift is granted to each surviving ally when a Legendary falls.
func FinalGift(turn int) model.Effect {
	return model.Effect{
		Name:        "Final Gift",
		Description: "A fallen legend's power lives on in its allies",
		Kind:        model.EffectLegendaryBlessing,
		Origin:      model.OriginTrigger,
		Duration:    5,
		StartTurn:   turn,
		StatModifications: model.Stats{
			model.StatPhysicalAttack: 2,
			model.StatMagicalAttack:  2,
		},
	}
}

// EnergyRelease is granted to each surviving ally when an energy specialist falls.
func EnergyRelease(turn int) model.Effect {
	return model.Effect{
		Name:              "Energy Release",
		Description:       "Released energy makes abilities cheaper",
		Kind:              model.EffectEnergyBurst,
		Origin:            model.OriginTrigger,
		Duration:          2,
		StartTurn:         turn,
		StatModifications: model.Stats{model.StatEnergyCost: -1},
	}
}

// EpicEssence is granted to each surviving ally when an Epic falls.
func EpicEssence(turn int) model.Effect {
	return model.Effect{
		Name:        "Epic Essence",
		Description: "Essence of a fallen champion",
		Kind:        model.EffectEpicBlessing,
		Origin:      model.OriginTrigger,
		Duration:    3,
		StartTurn:   turn,
		StatModifications: model.Stats{
			model.StatPhysicalAttack: 1,
			model.StatMagicalAttack:  1,
		},
	}
}

// GuiltyConscience hits every opposing creature when a Legendary or Epic falls.
func GuiltyConscience(turn int) model.Effect {
	return model.Effect{
		Name:        "Guilty Conscience",
		Description: "Felling a great creature weighs on the victors",
		Kind:        model.EffectDebuff,
		Origin:      model.OriginTrigger,
		Duration:    2,
		StartTurn:   turn,
		StatModifications: model.Stats{
			model.StatInitiative:  -2,
			model.StatDodgeChance: -1,
		},
	}
}

// SweepResult is the outcome of removing defeated creatures from a field.
// Survivors and Opposing are new slices holding copies of every creature that
// received an effect; untouched creatures are shared with the input.
type SweepResult struct {
	Survivors []*model.Creature
	Opposing  []*model.Creature
	Defeated  []*model.Creature
	Log       []string
}

// Sweeper processes defeated creatures.
type Sweeper struct {
	pipeline *stats.Pipeline
	logger   *slog.Logger
}

// NewSweeper creates a Sweeper. Nil arguments select defaults.
func NewSweeper(p *stats.Pipeline, logger *slog.Logger) *Sweeper {
	if p == nil {
		p = stats.NewPipeline(nil)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Sweeper{pipeline: p, logger: logger}
}

// ProcessDefeated removes creatures with health ≤ 0 from own, in field order,
// and fires their triggers:
//
//   - Legendary: Final Gift on each surviving ally
//   - energy specialty: Energy Release on each surviving ally
//   - Epic: Epic Essence on each surviving ally
//   - Legendary or Epic: Guilty Conscience on every opposing creature
//
// Effects from several defeated creatures stack independently. Every
// creature that gained an effect is recalculated.
func (s *Sweeper) ProcessDefeated(own, opposing []*model.Creature, turn int) SweepResult {
	res := SweepResult{}
	for _, c := range own {
		if c == nil {
			continue
		}
		if c.IsDefeated() {
			res.Defeated = append(res.Defeated, c)
			continue
		}
		res.Survivors = append(res.Survivors, c)
	}
	res.Opposing = append([]*model.Creature(nil), opposing...)

	if len(res.Defeated) == 0 {
		return res
	}

	touchedOwn := make(map[int]bool)
	touchedOpp := make(map[int]bool)
	grantAll := func(field []*model.Creature, touched map[int]bool, e model.Effect) {
		for i, c := range field {
			if c == nil {
				continue
			}
			if !touched[i] {
				field[i] = c.Clone()
				touched[i] = true
			}
			field[i].AddEffect(e.Clone())
		}
	}

	for _, d := range res.Defeated {
		name := d.DisplayName()
		res.Log = append(res.Log, fmt.Sprintf("%s has been defeated!", name))

		if d.Rarity == model.RarityLegendary && len(res.Survivors) > 0 {
			grantAll(res.Survivors, touchedOwn, FinalGift(turn))
			res.Log = append(res.Log, fmt.Sprintf("%s leaves a Final Gift to its allies.", name))
		}
		if d.Base.HasSpecialty(model.BaseEnergy) && len(res.Survivors) > 0 {
			grantAll(res.Survivors, touchedOwn, EnergyRelease(turn))
			res.Log = append(res.Log, fmt.Sprintf("%s releases its stored energy.", name))
		}
		if d.Rarity == model.RarityEpic && len(res.Survivors) > 0 {
			grantAll(res.Survivors, touchedOwn, EpicEssence(turn))
			res.Log = append(res.Log, fmt.Sprintf("%s's essence empowers its allies.", name))
		}
		if (d.Rarity == model.RarityLegendary || d.Rarity == model.RarityEpic) && len(res.Opposing) > 0 {
			grantAll(res.Opposing, touchedOpp, GuiltyConscience(turn))
			res.Log = append(res.Log, fmt.Sprintf("The opposing side is struck by a Guilty Conscience over %s.", name))
		}

		s.logger.Debug("creature defeated",
			"creature", d.ID,
			"rarity", d.Rarity,
			"turn", turn)
	}

	for i := range touchedOwn {
		s.pipeline.Refresh(res.Survivors[i])
	}
	for i := range touchedOpp {
		s.pipeline.Refresh(res.Opposing[i])
	}
	return res
}
