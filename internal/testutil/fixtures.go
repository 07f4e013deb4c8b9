package testutil

import "github.com/Antigono00/pvp21/internal/model"

// FlatStats returns a full stat block with every attack/defense stat set to
// v, maxHealth to hp and the remaining stats to small fixed values.
func FlatStats(v, hp int) model.Stats {
	return model.Stats{
		model.StatPhysicalAttack:  v,
		model.StatMagicalAttack:   v,
		model.StatPhysicalDefense: v,
		model.StatMagicalDefense:  v,
		model.StatMaxHealth:       hp,
		model.StatInitiative:      5,
		model.StatCriticalChance:  5,
		model.StatDodgeChance:     5,
		model.StatEnergyCost:      3,
	}
}

// NewCreature создаёт существо с готовыми боевыми статами и полным HP.
func NewCreature(id string, rarity model.Rarity, stats model.Stats) *model.Creature {
	return &model.Creature{
		ID:      id,
		Species: id,
		Element: model.ElementEarth,
		Rarity:  rarity,
		Base: model.BaseStats{
			Energy: 5, Strength: 5, Magic: 5, Stamina: 5, Speed: 5,
		},
		BattleStats:   stats.Clone(),
		CurrentHealth: stats.Get(model.StatMaxHealth),
	}
}
