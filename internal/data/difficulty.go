package data

import "github.com/Antigono00/pvp21/internal/model"

// DifficultyProfile bundles every difficulty-dependent constant the core uses.
type DifficultyProfile struct {
	// ItemPower is the base power multiplier for tools and spells.
	ItemPower float64

	// Energy regeneration base per side (player gets less on harder settings,
	// the enemy mirrors it).
	PlayerRegenBase int
	EnemyRegenBase  int

	// Energy cap base per side, before the per-creature allowance.
	PlayerEnergyCap float64
	EnemyEnergyCap  float64

	// HandCap is the hand size below which a card is drawn each turn.
	HandCap int

	// Health-over-time scaling: heals and damage ticks.
	HealScale   float64
	DamageScale float64
}

// EnergyCapPerCreature is the cap allowance each fielded creature adds.
const EnergyCapPerCreature = 0.25

var difficultyProfiles = map[model.Difficulty]DifficultyProfile{
	model.DifficultyEasy: {
		ItemPower:       0.9,
		PlayerRegenBase: 5,
		EnemyRegenBase:  2,
		PlayerEnergyCap: 12,
		EnemyEnergyCap:  8,
		HandCap:         5,
		HealScale:       1.2,
		DamageScale:     0.8,
	},
	model.DifficultyMedium: {
		ItemPower:       1.0,
		PlayerRegenBase: 4,
		EnemyRegenBase:  3,
		PlayerEnergyCap: 10,
		EnemyEnergyCap:  10,
		HandCap:         4,
		HealScale:       1.0,
		DamageScale:     1.0,
	},
	model.DifficultyHard: {
		ItemPower:       1.1,
		PlayerRegenBase: 3,
		EnemyRegenBase:  4,
		PlayerEnergyCap: 9,
		EnemyEnergyCap:  11,
		HandCap:         4,
		HealScale:       0.9,
		DamageScale:     1.1,
	},
	model.DifficultyExpert: {
		ItemPower:       1.2,
		PlayerRegenBase: 2,
		EnemyRegenBase:  5,
		PlayerEnergyCap: 8,
		EnemyEnergyCap:  12,
		HandCap:         3,
		HealScale:       0.8,
		DamageScale:     1.25,
	},
}

// Profile returns the profile for d; unknown difficulties fall back to medium.
func Profile(d model.Difficulty) DifficultyProfile {
	return difficultyProfiles[d.OrDefault()]
}

// RegenBase returns the energy regeneration base for a side.
func (p DifficultyProfile) RegenBase(side model.SideID) int {
	if side == model.SidePlayer {
		return p.PlayerRegenBase
	}
	return p.EnemyRegenBase
}

// EnergyCapBase returns the energy cap base for a side.
func (p DifficultyProfile) EnergyCapBase(side model.SideID) float64 {
	if side == model.SidePlayer {
		return p.PlayerEnergyCap
	}
	return p.EnemyEnergyCap
}
