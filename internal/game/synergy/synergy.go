// Package synergy detects bonuses that arise from a field's composition.
//
// Synergies are stateless: they are recomputed from the current field on every
// query and never stored on creatures.
package synergy

import (
	"fmt"

	"github.com/Antigono00/pvp21/internal/model"
)

// Kind identifies a synergy family.
type Kind string

const (
	KindSpeciesPack       Kind = "species_pack"
	KindSpecialtyLink     Kind = "specialty_link"
	KindLegendaryPresence Kind = "legendary_presence"
	KindBalanced          Kind = "balanced"
	KindFullField         Kind = "full_field"
)

const (
	fullFieldSize   = 5
	balancedSpread  = 2
	packBonus       = 2
	linkBonus       = 1
	presenceBonus   = 1
	balancedBonus   = 1
	fullFieldHealth = 5
)

// linkedStat maps a base attribute specialty to the battle stat it boosts.
var linkedStat = map[model.BaseStat]model.StatKey{
	model.BaseEnergy:   model.StatMagicalDefense,
	model.BaseStrength: model.StatPhysicalAttack,
	model.BaseMagic:    model.StatMagicalAttack,
	model.BaseStamina:  model.StatPhysicalDefense,
	model.BaseSpeed:    model.StatInitiative,
}

// Synergy is one detected bonus and the creatures it applies to.
type Synergy struct {
	Kind        Kind
	Name        string
	Description string
	Members     []string
	Bonus       model.Stats
}

// Detect returns the synergies present on a field, in a stable order.
func Detect(field []*model.Creature) []Synergy {
	var out []Synergy
	live := make([]*model.Creature, 0, len(field))
	for _, c := range field {
		if c != nil && !c.IsDefeated() {
			live = append(live, c)
		}
	}
	if len(live) == 0 {
		return nil
	}

	var species []string
	bySpecies := make(map[string][]string)
	for _, c := range live {
		if _, seen := bySpecies[c.Species]; !seen {
			species = append(species, c.Species)
		}
		bySpecies[c.Species] = append(bySpecies[c.Species], c.ID)
	}
	for _, s := range species {
		if ids := bySpecies[s]; len(ids) >= 2 {
			out = append(out, Synergy{
				Kind:        KindSpeciesPack,
				Name:        s + " Pack",
				Description: fmt.Sprintf("%d %s fight together", len(ids), s),
				Members:     ids,
				Bonus:       model.Stats{model.StatPhysicalAttack: packBonus},
			})
		}
	}

	for _, stat := range model.BaseStatKeys {
		var ids []string
		for _, c := range live {
			if c.Base.HasSpecialty(stat) {
				ids = append(ids, c.ID)
			}
		}
		if len(ids) >= 2 {
			out = append(out, Synergy{
				Kind:        KindSpecialtyLink,
				Name:        fmt.Sprintf("Shared %s", stat),
				Description: fmt.Sprintf("%d creatures specialize in %s", len(ids), stat),
				Members:     ids,
				Bonus:       model.Stats{linkedStat[stat]: linkBonus},
			})
		}
	}

	for _, c := range live {
		if c.Rarity == model.RarityLegendary {
			out = append(out, Synergy{
				Kind:        KindLegendaryPresence,
				Name:        "Legendary Presence",
				Description: c.DisplayName() + " inspires the whole field",
				Members:     ids(live),
				Bonus: model.Stats{
					model.StatPhysicalDefense: presenceBonus,
					model.StatMagicalDefense:  presenceBonus,
				},
			})
			break
		}
	}

	for _, c := range live {
		if c.Base.Spread() <= balancedSpread {
			out = append(out, Synergy{
				Kind:        KindBalanced,
				Name:        "Balanced",
				Description: c.DisplayName() + " has well-rounded attributes",
				Members:     []string{c.ID},
				Bonus:       model.Stats{model.StatInitiative: balancedBonus},
			})
		}
	}

	if len(live) >= fullFieldSize {
		out = append(out, Synergy{
			Kind:        KindFullField,
			Name:        "Full Field",
			Description: "A full field stands together",
			Members:     ids(live),
			Bonus:       model.Stats{model.StatMaxHealth: fullFieldHealth},
		})
	}
	return out
}

// Apply returns copies of the field's creatures with synergy bonuses added to
// their battle stats. Current health is left as is. The input is not modified.
func Apply(field []*model.Creature, synergies []Synergy) []*model.Creature {
	if field == nil {
		return nil
	}
	out := make([]*model.Creature, len(field))
	for i, c := range field {
		out[i] = c.Clone()
		if c == nil {
			continue
		}
		bonus := Bonus(c.ID, synergies)
		if len(bonus) == 0 {
			continue
		}
		if out[i].BattleStats == nil {
			out[i].BattleStats = make(model.Stats)
		}
		for _, k := range model.BattleStatKeys {
			if v := bonus.Get(k); v != 0 {
				out[i].BattleStats[k] += v
			}
		}
	}
	return out
}

// Bonus sums the synergy bonuses that apply to one creature (nil when none do).
func Bonus(id string, synergies []Synergy) model.Stats {
	var sum model.Stats
	for _, s := range synergies {
		for _, m := range s.Members {
			if m != id {
				continue
			}
			if sum == nil {
				sum = make(model.Stats)
			}
			for k, v := range s.Bonus {
				sum[k] += v
			}
		}
	}
	return sum
}

func ids(field []*model.Creature) []string {
	out := make([]string, len(field))
	for i, c := range field {
		out[i] = c.ID
	}
	return out
}
