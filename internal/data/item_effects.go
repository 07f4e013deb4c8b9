package data

import (
	"fmt"

	"github.com/Antigono00/pvp21/internal/model"
)

// ItemEffect is the unscaled base definition an item resolves to.
// All magnitudes are scaled by the item power multiplier at resolution time;
// durations are not.
type ItemEffect struct {
	Name        string
	Description string
	Kind        model.EffectKind
	Duration    int

	// StatChanges are applied immediately and carried by the resulting effect.
	StatChanges model.Stats

	Healing        int // heal on the affected creature (tool) / spell target
	SelfHeal       int // spell only: heal on the caster
	Damage         int // spell only: direct damage to the target
	HealthOverTime int // per-tick heal (+) or damage (-)

	// DrainStats are moved from the spell target to the caster, stat for stat.
	DrainStats model.Stats

	Charge        *model.ChargeSpec
	ArmorPiercing bool
}

type itemKey struct {
	category model.ItemCategory
	tag      model.EffectTag
}

// toolEffects — базовые эффекты инструментов (применяются к своему существу).
var toolEffects = map[itemKey]ItemEffect{
	// energy
	{model.CategoryEnergy, model.TagSurge}: {
		Name: "Energy Surge", Kind: model.EffectEnergyBurst, Duration: 2,
		StatChanges: model.Stats{model.StatEnergyCost: -1, model.StatInitiative: 2},
		Description: "Floods the creature with energy, lowering its energy cost",
	},
	{model.CategoryEnergy, model.TagShield}: {
		Name: "Energy Barrier", Kind: model.EffectDefense, Duration: 2,
		StatChanges: model.Stats{model.StatMagicalDefense: 6, model.StatMaxHealth: 10},
		Healing:     5,
		Description: "A crackling barrier that absorbs magical blows",
	},
	{model.CategoryEnergy, model.TagEcho}: {
		Name: "Energy Echo", Kind: model.EffectEcho, Duration: 3,
		HealthOverTime: 6,
		Description:    "Waves of energy that mend the creature each turn",
	},
	{model.CategoryEnergy, model.TagDrain}: {
		Name: "Energy Siphon", Kind: model.EffectEnhancement, Duration: 3,
		StatChanges: model.Stats{model.StatMagicalAttack: 5, model.StatInitiative: -2},
		Description: "Trades speed for raw magical output",
	},
	{model.CategoryEnergy, model.TagCharge}: {
		Name: "Energy Charge", Kind: model.EffectCharge, Duration: 3,
		Charge:      &model.ChargeSpec{TargetStat: model.StatMagicalAttack, PerTurnBonus: 6, MaxTurns: 3, FinalBurst: 12},
		Description: "Builds magical power that is released on the next attack",
	},

	// strength
	{model.CategoryStrength, model.TagSurge}: {
		Name: "Strength Surge", Kind: model.EffectStat, Duration: 2,
		StatChanges: model.Stats{model.StatPhysicalAttack: 8},
		Description: "A burst of raw physical power",
	},
	{model.CategoryStrength, model.TagShield}: {
		Name: "Iron Guard", Kind: model.EffectDefense, Duration: 2,
		StatChanges: model.Stats{model.StatPhysicalDefense: 8, model.StatMaxHealth: 10},
		Healing:     5,
		Description: "Plates of iron harden the creature's hide",
	},
	{model.CategoryStrength, model.TagEcho}: {
		Name: "Battle Echo", Kind: model.EffectEcho, Duration: 3,
		HealthOverTime: 5,
		Description:    "The rhythm of battle restores vigor",
	},
	{model.CategoryStrength, model.TagDrain}: {
		Name: "Berserker Draught", Kind: model.EffectEnhancement, Duration: 3,
		StatChanges: model.Stats{model.StatPhysicalAttack: 7, model.StatPhysicalDefense: -3},
		Description: "Reckless fury at the cost of guard",
	},
	{model.CategoryStrength, model.TagCharge}: {
		Name: "Power Charge", Kind: model.EffectCharge, Duration: 3,
		Charge:      &model.ChargeSpec{TargetStat: model.StatPhysicalAttack, PerTurnBonus: 6, MaxTurns: 3, FinalBurst: 15},
		Description: "Winds up a devastating blow",
	},

	// magic
	{model.CategoryMagic, model.TagSurge}: {
		Name: "Arcane Surge", Kind: model.EffectMagic, Duration: 2,
		StatChanges: model.Stats{model.StatMagicalAttack: 8},
		Description: "Arcane power surges through the creature",
	},
	{model.CategoryMagic, model.TagShield}: {
		Name: "Arcane Shield", Kind: model.EffectDefense, Duration: 2,
		StatChanges: model.Stats{model.StatPhysicalDefense: 10, model.StatMaxHealth: 15},
		Healing:     5,
		Description: "A shimmering ward that toughens and mends",
	},
	{model.CategoryMagic, model.TagEcho}: {
		Name: "Mystic Echo", Kind: model.EffectEcho, Duration: 3,
		HealthOverTime: 7,
		Description:    "Oscillating mystic energy that heals in waves",
	},
	{model.CategoryMagic, model.TagDrain}: {
		Name: "Mana Leech", Kind: model.EffectEnhancement, Duration: 3,
		StatChanges: model.Stats{model.StatMagicalAttack: 6, model.StatMagicalDefense: -2},
		Description: "Pulls mana inward, leaving the creature exposed",
	},
	{model.CategoryMagic, model.TagCharge}: {
		Name: "Arcane Charge", Kind: model.EffectCharge, Duration: 3,
		Charge:      &model.ChargeSpec{TargetStat: model.StatMagicalAttack, PerTurnBonus: 6, MaxTurns: 3, FinalBurst: 15},
		Description: "Gathers arcane energy for a final release",
	},

	// stamina
	{model.CategoryStamina, model.TagSurge}: {
		Name: "Vitality Surge", Kind: model.EffectStat, Duration: 2,
		StatChanges: model.Stats{model.StatMaxHealth: 20},
		Healing:     10,
		Description: "Swells the creature's vitality",
	},
	{model.CategoryStamina, model.TagShield}: {
		Name: "Stone Skin", Kind: model.EffectDefense, Duration: 3,
		StatChanges: model.Stats{model.StatPhysicalDefense: 6, model.StatMagicalDefense: 6},
		Description: "Skin hardens like granite",
	},
	{model.CategoryStamina, model.TagEcho}: {
		Name: "Regeneration", Kind: model.EffectEcho, Duration: 4,
		HealthOverTime: 8,
		Description:    "Wounds close in steady pulses",
	},
	{model.CategoryStamina, model.TagDrain}: {
		Name: "Bloodroot Tonic", Kind: model.EffectEnhancement, Duration: 3,
		StatChanges: model.Stats{model.StatMaxHealth: 15, model.StatInitiative: -2},
		Healing:     10,
		Description: "Heavy tonic: sturdier but slower",
	},
	{model.CategoryStamina, model.TagCharge}: {
		Name: "Endurance Charge", Kind: model.EffectCharge, Duration: 3,
		Charge:      &model.ChargeSpec{TargetStat: model.StatPhysicalDefense, PerTurnBonus: 6, MaxTurns: 3, FinalBurst: 10},
		Description: "Braces steadily, then lashes out",
	},

	// speed
	{model.CategorySpeed, model.TagSurge}: {
		Name: "Swift Surge", Kind: model.EffectStat, Duration: 2,
		StatChanges: model.Stats{model.StatInitiative: 6, model.StatDodgeChance: 4},
		Description: "Lightning reflexes",
	},
	{model.CategorySpeed, model.TagShield}: {
		Name: "Evasion Veil", Kind: model.EffectDefense, Duration: 2,
		StatChanges: model.Stats{model.StatDodgeChance: 6, model.StatPhysicalDefense: 4},
		Description: "A blur that makes the creature hard to hit",
	},
	{model.CategorySpeed, model.TagEcho}: {
		Name: "Tailwind", Kind: model.EffectEcho, Duration: 3,
		HealthOverTime: 4,
		Description:    "A gentle restoring wind",
	},
	{model.CategorySpeed, model.TagDrain}: {
		Name: "Adrenaline Rush", Kind: model.EffectEnhancement, Duration: 2,
		StatChanges: model.Stats{model.StatCriticalChance: 5, model.StatPhysicalDefense: -2},
		Description: "Sharper strikes, sloppier guard",
	},
	{model.CategorySpeed, model.TagCharge}: {
		Name: "Momentum", Kind: model.EffectCharge, Duration: 3,
		Charge:      &model.ChargeSpec{TargetStat: model.StatInitiative, PerTurnBonus: 6, MaxTurns: 3, FinalBurst: 10},
		Description: "Builds speed into a crashing finish",
	},
}

// spellEffects — базовые эффекты заклинаний (кастер → цель).
var spellEffects = map[itemKey]ItemEffect{
	// energy
	{model.CategoryEnergy, model.TagSurge}: {
		Name: "Energy Bolt", Kind: model.EffectMagic,
		Damage:      25,
		Description: "A bolt of pure energy",
	},
	{model.CategoryEnergy, model.TagShield}: {
		Name: "Energy Ward", Kind: model.EffectDefense, Duration: 2,
		StatChanges: model.Stats{model.StatMagicalDefense: 8},
		Healing:     10,
		Description: "Wraps the target in protective energy",
	},
	{model.CategoryEnergy, model.TagEcho}: {
		Name: "Resonance", Kind: model.EffectEcho, Duration: 3,
		HealthOverTime: -8,
		Description:    "Harmful resonance that pulses through the target",
	},
	{model.CategoryEnergy, model.TagDrain}: {
		Name: "Energy Drain", Kind: model.EffectDebuff, Duration: 2,
		Damage:      10,
		SelfHeal:    10,
		DrainStats:  model.Stats{model.StatInitiative: 3},
		Description: "Siphons energy and momentum from the target",
	},
	{model.CategoryEnergy, model.TagCharge}: {
		Name: "Overcharge", Kind: model.EffectCharge, Duration: 3,
		Charge:      &model.ChargeSpec{TargetStat: model.StatMagicalAttack, PerTurnBonus: 8, MaxTurns: 3, FinalBurst: 20},
		Description: "Overloads the target with building power",
	},

	// strength
	{model.CategoryStrength, model.TagSurge}: {
		Name: "Crushing Blow", Kind: model.EffectStat,
		Damage:        30,
		ArmorPiercing: true,
		Description:   "A conjured blow that ignores armor",
	},
	{model.CategoryStrength, model.TagShield}: {
		Name: "Bulwark", Kind: model.EffectDefense, Duration: 2,
		StatChanges: model.Stats{model.StatPhysicalDefense: 10},
		Healing:     10,
		Description: "Raises a bulwark around the target",
	},
	{model.CategoryStrength, model.TagEcho}: {
		Name: "Tremor", Kind: model.EffectEcho, Duration: 3,
		HealthOverTime: -10,
		Description:    "Aftershocks batter the target",
	},
	{model.CategoryStrength, model.TagDrain}: {
		Name: "Sap Strength", Kind: model.EffectDebuff, Duration: 3,
		SelfHeal:    15,
		DrainStats:  model.Stats{model.StatPhysicalAttack: 5},
		Description: "Steals the target's strength",
	},
	{model.CategoryStrength, model.TagCharge}: {
		Name: "Titan Charge", Kind: model.EffectCharge, Duration: 3,
		Charge:      &model.ChargeSpec{TargetStat: model.StatPhysicalAttack, PerTurnBonus: 8, MaxTurns: 3, FinalBurst: 20},
		Description: "Titanic strength builds over time",
	},

	// magic
	{model.CategoryMagic, model.TagSurge}: {
		Name: "Arcane Blast", Kind: model.EffectMagic,
		Damage:      35,
		Description: "A blast of raw arcane force",
	},
	{model.CategoryMagic, model.TagShield}: {
		Name: "Mirror Shield", Kind: model.EffectDefense, Duration: 2,
		StatChanges: model.Stats{model.StatMagicalDefense: 12},
		Healing:     15,
		Description: "Reflective ward against spells",
	},
	{model.CategoryMagic, model.TagEcho}: {
		Name: "Arcane Echo", Kind: model.EffectEcho, Duration: 4,
		HealthOverTime: -9,
		Description:    "Echoing arcane damage in waves",
	},
	{model.CategoryMagic, model.TagDrain}: {
		Name: "Mind Drain", Kind: model.EffectDebuff, Duration: 3,
		Damage:      15,
		SelfHeal:    20,
		DrainStats:  model.Stats{model.StatMagicalAttack: 6},
		Description: "Drains the target's magical might",
	},
	{model.CategoryMagic, model.TagCharge}: {
		Name: "Spell Weave", Kind: model.EffectCharge, Duration: 3,
		Charge:      &model.ChargeSpec{TargetStat: model.StatMagicalAttack, PerTurnBonus: 9, MaxTurns: 3, FinalBurst: 24},
		Description: "Weaves layered spells into a final release",
	},

	// stamina
	{model.CategoryStamina, model.TagSurge}: {
		Name: "Restoration", Kind: model.EffectMagic,
		Healing:     40,
		Description: "Restores a large amount of health",
	},
	{model.CategoryStamina, model.TagShield}: {
		Name: "Fortify", Kind: model.EffectDefense, Duration: 3,
		StatChanges: model.Stats{model.StatPhysicalDefense: 6, model.StatMagicalDefense: 6, model.StatMaxHealth: 20},
		Healing:     20,
		Description: "Fortifies body and spirit",
	},
	{model.CategoryStamina, model.TagEcho}: {
		Name: "Renewal", Kind: model.EffectEcho, Duration: 4,
		HealthOverTime: 10,
		Description:    "Life returns in gentle waves",
	},
	{model.CategoryStamina, model.TagDrain}: {
		Name: "Life Drain", Kind: model.EffectDebuff, Duration: 2,
		Damage:      20,
		SelfHeal:    25,
		DrainStats:  model.Stats{model.StatPhysicalDefense: 3},
		Description: "Feeds on the target's life force",
	},
	{model.CategoryStamina, model.TagCharge}: {
		Name: "Bastion", Kind: model.EffectCharge, Duration: 3,
		Charge:      &model.ChargeSpec{TargetStat: model.StatPhysicalDefense, PerTurnBonus: 8, MaxTurns: 3, FinalBurst: 15},
		Description: "Gradually becomes an unbreakable bastion",
	},

	// speed
	{model.CategorySpeed, model.TagSurge}: {
		Name: "Quick Strike", Kind: model.EffectStat,
		Damage:        20,
		ArmorPiercing: true,
		Description:   "Strikes through gaps in armor",
	},
	{model.CategorySpeed, model.TagShield}: {
		Name: "Blur", Kind: model.EffectDefense, Duration: 2,
		StatChanges: model.Stats{model.StatDodgeChance: 8},
		Description: "The target's outline blurs",
	},
	{model.CategorySpeed, model.TagEcho}: {
		Name: "Gale", Kind: model.EffectEcho, Duration: 3,
		HealthOverTime: -7,
		Description:    "Cutting winds in gusts",
	},
	{model.CategorySpeed, model.TagDrain}: {
		Name: "Slow", Kind: model.EffectDebuff, Duration: 2,
		DrainStats:  model.Stats{model.StatInitiative: 5, model.StatDodgeChance: 2},
		Description: "Steals the target's speed",
	},
	{model.CategorySpeed, model.TagCharge}: {
		Name: "Haste", Kind: model.EffectCharge, Duration: 3,
		Charge:      &model.ChargeSpec{TargetStat: model.StatInitiative, PerTurnBonus: 8, MaxTurns: 3, FinalBurst: 12},
		Description: "Accelerates toward a sudden strike",
	},
}

func init() {
	// Both tables must cover every (category, tag) pair.
	for _, cat := range model.ItemCategories {
		for _, tag := range model.EffectTags {
			k := itemKey{cat, tag}
			if _, ok := toolEffects[k]; !ok {
				panic(fmt.Sprintf("data: tool effect table missing %s/%s", cat, tag))
			}
			if _, ok := spellEffects[k]; !ok {
				panic(fmt.Sprintf("data: spell effect table missing %s/%s", cat, tag))
			}
		}
	}
}

// ToolEffect returns the base effect of a tool (category, tag).
func ToolEffect(cat model.ItemCategory, tag model.EffectTag) (ItemEffect, bool) {
	e, ok := toolEffects[itemKey{cat, tag}]
	return e.clone(), ok
}

// SpellEffect returns the base effect of a spell (category, tag).
func SpellEffect(cat model.ItemCategory, tag model.EffectTag) (ItemEffect, bool) {
	e, ok := spellEffects[itemKey{cat, tag}]
	return e.clone(), ok
}

// clone keeps callers from mutating the shared table entries.
func (e ItemEffect) clone() ItemEffect {
	out := e
	out.StatChanges = e.StatChanges.Clone()
	out.DrainStats = e.DrainStats.Clone()
	if e.Charge != nil {
		c := *e.Charge
		out.Charge = &c
	}
	return out
}
