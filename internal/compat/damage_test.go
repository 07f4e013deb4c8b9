package compat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"

	"github.com/Antigono00/pvp21/internal/game/combat"
	"github.com/Antigono00/pvp21/internal/model"
)

func TestFromAttack_AliasesAgree(t *testing.T) {
	t.Parallel()

	for _, dmg := range []int{0, 1, 37} {
		v := FromAttack(combat.AttackResult{
			Damage:        dmg,
			Effectiveness: model.EffectivenessEffective,
			DamageType:    model.AttackMagical,
			Log:           "hit",
		})
		assert.Equal(t, dmg, v.Damage)
		assert.Equal(t, v.Damage, v.FinalDamage)
		assert.Equal(t, v.Damage, v.TotalDamage)
		assert.Equal(t, v.Damage, v.DamageDealt)
		assert.Equal(t, v.Damage, v.ActualDamage)
		assert.Equal(t, "effective", v.Effectiveness)
		assert.Equal(t, "magical", v.DamageType)
	}
}

func TestAttackView_YAMLKeys(t *testing.T) {
	t.Parallel()

	out, err := yaml.Marshal(FromAttack(combat.AttackResult{Damage: 12, IsDodged: false}))
	assert.NoError(t, err)

	var m map[string]any
	assert.NoError(t, yaml.Unmarshal(out, &m))
	for _, k := range []string{"damage", "finalDamage", "totalDamage", "damageDealt", "actualDamage"} {
		assert.Equal(t, 12, m[k], k)
	}
}
