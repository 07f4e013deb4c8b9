package data

import "github.com/Antigono00/pvp21/internal/model"

// rarityMultipliers — множители редкости (всегда >= 1.0).
var rarityMultipliers = map[model.Rarity]float64{
	model.RarityCommon:    1.0,
	model.RarityRare:      1.15,
	model.RarityEpic:      1.3,
	model.RarityLegendary: 1.5,
}

// formMultipliers indexed by form level; levels past the table extend the
// last step by formStepAfterTable each.
var formMultipliers = []float64{1.0, 1.1, 1.2, 1.35}

const formStepAfterTable = 0.1

// RarityMultiplier returns the stat multiplier for r. Unknown rarities map to 1.0.
func RarityMultiplier(r model.Rarity) float64 {
	if m, ok := rarityMultipliers[r]; ok {
		return m
	}
	return 1.0
}

// FormMultiplier returns the stat multiplier for an evolution form level.
func FormMultiplier(form int) float64 {
	if form <= 0 {
		return formMultipliers[0]
	}
	if form < len(formMultipliers) {
		return formMultipliers[form]
	}
	last := len(formMultipliers) - 1
	return formMultipliers[last] + float64(form-last)*formStepAfterTable
}
