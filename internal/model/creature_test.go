package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCloneFixture() *Creature {
	return &Creature{
		ID:      "c1",
		Species: "Emberfox",
		Rarity:  RarityEpic,
		Base: BaseStats{
			Energy: 5, Strength: 7, Magic: 3, Stamina: 4, Speed: 6,
			Specialties: []BaseStat{BaseStrength},
		},
		BattleStats:   Stats{StatPhysicalAttack: 30, StatMaxHealth: 100},
		CurrentHealth: 80,
		ActiveEffects: []Effect{{
			Name:              "Might",
			Kind:              EffectCharge,
			Duration:          3,
			StatModifications: Stats{StatPhysicalAttack: 2},
			Charge:            &ChargeSpec{TargetStat: StatPhysicalAttack, PerTurnBonus: 3, MaxTurns: 3, FinalBurst: 9},
		}},
		PermanentModifications: Stats{StatMaxHealth: 5},
	}
}

func TestCreatureClone_Independent(t *testing.T) {
	t.Parallel()

	orig := newCloneFixture()
	cp := orig.Clone()

	cp.BattleStats[StatPhysicalAttack] = 99
	cp.ActiveEffects[0].StatModifications[StatPhysicalAttack] = 50
	cp.ActiveEffects[0].Charge.FinalBurst = 1
	cp.ActiveEffects[0].Duration = 0
	cp.PermanentModifications[StatMaxHealth] = 0
	cp.Base.Specialties[0] = BaseMagic
	cp.CurrentHealth = 1

	assert.Equal(t, 30, orig.BattleStats[StatPhysicalAttack])
	assert.Equal(t, 2, orig.ActiveEffects[0].StatModifications[StatPhysicalAttack])
	assert.Equal(t, 9, orig.ActiveEffects[0].Charge.FinalBurst)
	assert.Equal(t, 3, orig.ActiveEffects[0].Duration)
	assert.Equal(t, 5, orig.PermanentModifications[StatMaxHealth])
	assert.Equal(t, BaseStrength, orig.Base.Specialties[0])
	assert.Equal(t, 80, orig.CurrentHealth)
}

func TestCreatureClone_Nil(t *testing.T) {
	t.Parallel()

	var c *Creature
	assert.Nil(t, c.Clone())
}

func TestCreature_ClampHealth(t *testing.T) {
	t.Parallel()

	c := newCloneFixture()
	c.CurrentHealth = 250
	c.ClampHealth()
	assert.Equal(t, 100, c.CurrentHealth)

	c.CurrentHealth = -4
	c.ClampHealth()
	assert.Equal(t, 0, c.CurrentHealth)
	assert.True(t, c.IsDefeated())
}

func TestCreature_HasBattleStats(t *testing.T) {
	t.Parallel()

	assert.True(t, newCloneFixture().HasBattleStats())
	assert.False(t, (&Creature{}).HasBattleStats())
	assert.False(t, (*Creature)(nil).HasBattleStats())
}

func TestEffect_Malformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		eff  Effect
		want bool
	}{
		{name: "stat ok", eff: Effect{Kind: EffectStat, Duration: 1}},
		{name: "unknown kind", eff: Effect{Kind: "poison", Duration: 1}, want: true},
		{name: "charge without spec", eff: Effect{Kind: EffectCharge, Duration: 3}, want: true},
		{name: "charge zero turns", eff: Effect{Kind: EffectCharge, Charge: &ChargeSpec{TargetStat: StatPhysicalAttack}}, want: true},
		{name: "charge ok", eff: Effect{Kind: EffectCharge, Charge: &ChargeSpec{TargetStat: StatMagicalAttack, MaxTurns: 2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.eff.Malformed())
		})
	}
}

func TestGameStateClone_DeepCopiesFields(t *testing.T) {
	t.Parallel()

	g := &GameState{
		Player: Side{
			Field:  []*Creature{newCloneFixture()},
			Hand:   []Card{{ID: "h1"}},
			Deck:   []Card{{ID: "d1"}, {ID: "d2"}},
			Energy: 4,
		},
		Turn:       3,
		Difficulty: DifficultyHard,
	}

	cp := g.Clone()
	require.NotSame(t, g.Player.Field[0], cp.Player.Field[0])

	cp.Player.Field[0].CurrentHealth = 1
	cp.Player.Deck[0].ID = "changed"
	cp.Player.Hand = append(cp.Player.Hand, Card{ID: "h2"})

	assert.Equal(t, 80, g.Player.Field[0].CurrentHealth)
	assert.Equal(t, "d1", g.Player.Deck[0].ID)
	assert.Len(t, g.Player.Hand, 1)
	assert.Equal(t, 3, cp.Turn)
}

func TestBaseStats_Spread(t *testing.T) {
	t.Parallel()

	b := BaseStats{Energy: 5, Strength: 7, Magic: 3, Stamina: 4, Speed: 6}
	assert.Equal(t, 4, b.Spread())
	assert.Equal(t, 7, b.Get(BaseStrength))
	assert.False(t, b.HasSpecialty(BaseEnergy))
}
