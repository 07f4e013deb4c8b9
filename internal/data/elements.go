package data

import "github.com/Antigono00/pvp21/internal/model"

// advantage: attacker element → elements it beats.
// Fire > Air > Earth > Water > Fire; Light and Dark beat each other hard.
var advantage = map[model.Element]model.Element{
	model.ElementFire:  model.ElementAir,
	model.ElementAir:   model.ElementEarth,
	model.ElementEarth: model.ElementWater,
	model.ElementWater: model.ElementFire,
}

var effectivenessMultipliers = map[model.Effectiveness]float64{
	model.EffectivenessNeutral:       1.0,
	model.EffectivenessResisted:      0.8,
	model.EffectivenessEffective:     1.25,
	model.EffectivenessVeryEffective: 1.5,
}

// Effectiveness returns the matchup outcome of attacker element vs defender element.
func Effectiveness(attacker, defender model.Element) model.Effectiveness {
	if (attacker == model.ElementLight && defender == model.ElementDark) ||
		(attacker == model.ElementDark && defender == model.ElementLight) {
		return model.EffectivenessVeryEffective
	}
	if beats, ok := advantage[attacker]; ok && beats == defender {
		return model.EffectivenessEffective
	}
	if beats, ok := advantage[defender]; ok && beats == attacker {
		return model.EffectivenessResisted
	}
	return model.EffectivenessNeutral
}

// EffectivenessMultiplier returns the damage multiplier for e.
func EffectivenessMultiplier(e model.Effectiveness) float64 {
	if m, ok := effectivenessMultipliers[e]; ok {
		return m
	}
	return 1.0
}
