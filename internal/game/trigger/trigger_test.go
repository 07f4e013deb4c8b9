package trigger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Antigono00/pvp21/internal/game/stats"
	"github.com/Antigono00/pvp21/internal/model"
	"github.com/Antigono00/pvp21/internal/testutil"
)

func newSweeper() *Sweeper {
	f := &testutil.StubFormulas{DefaultStats: testutil.FlatStats(20, 100)}
	return NewSweeper(stats.NewPipeline(f), nil)
}

func creature(id string, rarity model.Rarity, health int) *model.Creature {
	c := testutil.NewCreature(id, rarity, testutil.FlatStats(20, 100))
	c.CurrentHealth = health
	return c
}

func TestProcessDefeated_LegendaryGivesFinalGift(t *testing.T) {
	t.Parallel()

	own := []*model.Creature{
		creature("a", model.RarityCommon, 50),
		creature("legend", model.RarityLegendary, 0),
		creature("b", model.RarityRare, 10),
		creature("c", model.RarityCommon, 100),
	}

	res := newSweeper().ProcessDefeated(own, nil, 4)
	require.Len(t, res.Survivors, 3)
	require.Len(t, res.Defeated, 1)
	assert.Equal(t, "legend", res.Defeated[0].ID)

	for _, c := range res.Survivors {
		blessings := c.EffectsOfKind(model.EffectLegendaryBlessing)
		require.Len(t, blessings, 1, c.ID)
		assert.Equal(t, 5, blessings[0].Duration)
		assert.Equal(t, 2, blessings[0].StatModifications.Get(model.StatPhysicalAttack))
		assert.Equal(t, 2, blessings[0].StatModifications.Get(model.StatMagicalAttack))
		assert.Equal(t, 4, blessings[0].StartTurn)
		assert.Equal(t, 22, c.BattleStats.Get(model.StatPhysicalAttack))
	}
	assert.Empty(t, own[0].ActiveEffects, "input creatures untouched")
}

func TestProcessDefeated_EpicAndEnergySpecialty(t *testing.T) {
	t.Parallel()

	epic := creature("epic", model.RarityEpic, 0)
	epic.Base.Specialties = []model.BaseStat{model.BaseEnergy}
	ally := creature("ally", model.RarityCommon, 30)
	foe1 := creature("foe1", model.RarityCommon, 30)
	foe2 := creature("foe2", model.RarityRare, 30)

	res := newSweeper().ProcessDefeated([]*model.Creature{epic, ally}, []*model.Creature{foe1, foe2}, 2)
	require.Len(t, res.Survivors, 1)

	got := res.Survivors[0]
	assert.Len(t, got.EffectsOfKind(model.EffectEnergyBurst), 1)
	assert.Len(t, got.EffectsOfKind(model.EffectEpicBlessing), 1)
	assert.Equal(t, 2, got.BattleStats.Get(model.StatEnergyCost))
	assert.Equal(t, 21, got.BattleStats.Get(model.StatPhysicalAttack))

	require.Len(t, res.Opposing, 2)
	for _, f := range res.Opposing {
		require.Len(t, f.EffectsOfKind(model.EffectDebuff), 1, f.ID)
		assert.Equal(t, 3, f.BattleStats.Get(model.StatInitiative))
		assert.Equal(t, 4, f.BattleStats.Get(model.StatDodgeChance))
	}
	assert.Empty(t, foe1.ActiveEffects)
	assert.NotEmpty(t, res.Log)
}

func TestProcessDefeated_EffectsStack(t *testing.T) {
	t.Parallel()

	own := []*model.Creature{
		creature("l1", model.RarityLegendary, 0),
		creature("l2", model.RarityLegendary, -5),
		creature("s", model.RarityCommon, 40),
	}
	foe := creature("f", model.RarityCommon, 40)

	res := newSweeper().ProcessDefeated(own, []*model.Creature{foe}, 1)
	require.Len(t, res.Survivors, 1)
	assert.Len(t, res.Survivors[0].EffectsOfKind(model.EffectLegendaryBlessing), 2)
	assert.Equal(t, 24, res.Survivors[0].BattleStats.Get(model.StatPhysicalAttack))
	assert.Len(t, res.Opposing[0].EffectsOfKind(model.EffectDebuff), 2)
}

func TestProcessDefeated_CommonHasNoTriggers(t *testing.T) {
	t.Parallel()

	ally := creature("ally", model.RarityCommon, 30)
	foe := creature("foe", model.RarityCommon, 30)

	res := newSweeper().ProcessDefeated(
		[]*model.Creature{creature("x", model.RarityCommon, 0), ally},
		[]*model.Creature{foe}, 1)

	require.Len(t, res.Survivors, 1)
	assert.Same(t, ally, res.Survivors[0])
	assert.Same(t, foe, res.Opposing[0])
	assert.Len(t, res.Defeated, 1)
}

func TestProcessDefeated_NoneDefeated(t *testing.T) {
	t.Parallel()

	own := []*model.Creature{creature("a", model.RarityLegendary, 1)}
	res := newSweeper().ProcessDefeated(own, nil, 1)
	assert.Equal(t, own, res.Survivors)
	assert.Empty(t, res.Defeated)
	assert.Empty(t, res.Log)
}
