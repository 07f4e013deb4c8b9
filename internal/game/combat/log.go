package combat

import (
	"fmt"
	"strings"

	"github.com/Antigono00/pvp21/internal/model"
)

const (
	criticalWoundRatio = 0.25
	woundRatio         = 0.5
)

func attackLog(res AttackResult) string {
	atk, def := res.Attacker.DisplayName(), res.Defender.DisplayName()
	if res.IsDodged {
		return fmt.Sprintf("%s dodged %s's attack!", def, atk)
	}

	var b strings.Builder
	if res.IsCritical {
		fmt.Fprintf(&b, "%s landed a critical hit on %s for %d %s damage!", atk, def, res.Damage, res.DamageType)
	} else {
		fmt.Fprintf(&b, "%s attacked %s for %d %s damage.", atk, def, res.Damage, res.DamageType)
	}
	if res.BonusConsumed > 0 {
		fmt.Fprintf(&b, " (+%d charged power)", res.BonusConsumed)
	}
	if res.ComboLevel > 1 {
		fmt.Fprintf(&b, " [Combo x%d]", res.ComboLevel)
	}
	if tag := effectivenessTag(res.Effectiveness); tag != "" {
		b.WriteString(" ")
		b.WriteString(tag)
	}
	for _, e := range res.Debuffs {
		fmt.Fprintf(&b, " %s suffers %s!", def, e.Name)
	}
	if status := woundText(res.Defender); status != "" {
		b.WriteString(" ")
		b.WriteString(status)
	}
	return b.String()
}

func effectivenessTag(e model.Effectiveness) string {
	switch e {
	case model.EffectivenessVeryEffective:
		return "It's devastatingly effective!"
	case model.EffectivenessEffective:
		return "It's super effective!"
	case model.EffectivenessResisted:
		return "It's not very effective..."
	}
	return ""
}

// woundText describes the defender's state after a hit; defeat text depends
// on rarity.
func woundText(c *model.Creature) string {
	name := c.DisplayName()
	if c.IsDefeated() {
		switch c.Rarity {
		case model.RarityLegendary:
			return fmt.Sprintf("The legendary %s has fallen!", name)
		case model.RarityEpic:
			return fmt.Sprintf("%s collapses in a blaze of power!", name)
		case model.RarityRare:
			return fmt.Sprintf("%s has been defeated!", name)
		default:
			return fmt.Sprintf("%s was knocked out!", name)
		}
	}
	switch ratio := c.HealthRatio(); {
	case ratio <= criticalWoundRatio:
		return fmt.Sprintf("%s is critically wounded!", name)
	case ratio <= woundRatio:
		return fmt.Sprintf("%s is badly wounded.", name)
	}
	return ""
}
