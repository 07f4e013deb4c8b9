package combat

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Antigono00/pvp21/internal/formula"
	"github.com/Antigono00/pvp21/internal/game/stats"
	"github.com/Antigono00/pvp21/internal/model"
	"github.com/Antigono00/pvp21/internal/rng"
	"github.com/Antigono00/pvp21/internal/testutil"
)

func stubResolver(outcome formula.DamageOutcome, src rng.Source) (*Resolver, *testutil.StubFormulas) {
	f := &testutil.StubFormulas{DefaultStats: testutil.FlatStats(20, 100), Outcome: outcome}
	return NewResolver(stats.NewPipeline(f), src, nil), f
}

func TestProcessAttack_DefaultFormula(t *testing.T) {
	t.Parallel()

	r := NewResolver(stats.NewPipeline(formula.Default{}), testutil.NeverRNG(), nil)
	attacker := testutil.NewCreature("a", model.RarityCommon, testutil.FlatStats(50, 100))
	defender := testutil.NewCreature("d", model.RarityCommon, testutil.FlatStats(20, 100))

	res := r.ProcessAttack(attacker, defender, model.AttackPhysical, 1)
	require.NoError(t, res.Err)

	assert.Equal(t, 30, res.Damage)
	assert.Equal(t, 70, res.Defender.CurrentHealth)
	assert.False(t, res.IsDodged)
	assert.False(t, res.IsCritical)
	assert.Equal(t, model.EffectivenessNeutral, res.Effectiveness)
	assert.Equal(t, model.AttackPhysical, res.DamageType)
	assert.Empty(t, res.Debuffs)

	// inputs untouched
	assert.Equal(t, 100, defender.CurrentHealth)
	assert.NotSame(t, defender, res.Defender)
	assert.NotSame(t, attacker, res.Attacker)
}

func TestProcessAttack_DodgeConservesHealth(t *testing.T) {
	t.Parallel()

	r, _ := stubResolver(formula.DamageOutcome{IsDodged: true, Damage: 99}, testutil.AlwaysRNG())
	defender := testutil.NewCreature("d", model.RarityCommon, testutil.FlatStats(20, 100))
	defender.CurrentHealth = 64

	res := r.ProcessAttack(testutil.NewCreature("a", model.RarityCommon, testutil.FlatStats(50, 100)), defender, model.AttackMagical, 1)
	require.NoError(t, res.Err)
	assert.True(t, res.IsDodged)
	assert.Zero(t, res.Damage)
	assert.Equal(t, 64, res.Defender.CurrentHealth)
	assert.Empty(t, res.Debuffs)
	assert.Contains(t, res.Log, "dodged")
}

func TestProcessAttack_AutoType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		physical int
		magical  int
		want     model.AttackType
	}{
		{name: "magical larger", physical: 50, magical: 60, want: model.AttackMagical},
		{name: "physical larger", physical: 60, magical: 50, want: model.AttackPhysical},
		{name: "tie goes physical", physical: 55, magical: 55, want: model.AttackPhysical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r, f := stubResolver(formula.DamageOutcome{Damage: 5}, testutil.NeverRNG())
			a := testutil.NewCreature("a", model.RarityCommon, testutil.FlatStats(20, 100))
			a.BattleStats[model.StatPhysicalAttack] = tt.physical
			a.BattleStats[model.StatMagicalAttack] = tt.magical

			res := r.ProcessAttack(a, testutil.NewCreature("d", model.RarityCommon, testutil.FlatStats(20, 100)), model.AttackAuto, 0)
			require.NoError(t, res.Err)
			assert.Equal(t, tt.want, f.LastAttack)
			assert.Equal(t, tt.want, res.DamageType)
		})
	}
}

func TestProcessAttack_ConsumesNextAttackBonus(t *testing.T) {
	t.Parallel()

	r, f := stubResolver(formula.DamageOutcome{Damage: 5}, testutil.NeverRNG())
	a := testutil.NewCreature("a", model.RarityCommon, testutil.FlatStats(50, 100))
	a.NextAttackBonus = 15

	res := r.ProcessAttack(a, testutil.NewCreature("d", model.RarityCommon, testutil.FlatStats(20, 100)), model.AttackPhysical, 0)
	require.NoError(t, res.Err)

	require.NotNil(t, f.LastAttacker)
	assert.Equal(t, 65, f.LastAttacker.BattleStats.Get(model.StatPhysicalAttack))
	assert.Equal(t, 50, res.Attacker.BattleStats.Get(model.StatPhysicalAttack))
	assert.Zero(t, res.Attacker.NextAttackBonus)
	assert.Equal(t, 15, res.BonusConsumed)
	assert.Equal(t, 15, a.NextAttackBonus)
	assert.Contains(t, res.Log, "+15 charged power")
}

func TestProcessAttack_Procs(t *testing.T) {
	t.Parallel()

	outcome := formula.DamageOutcome{Damage: 10, IsCritical: true, Effectiveness: model.EffectivenessEffective}

	r, _ := stubResolver(outcome, testutil.AlwaysRNG())
	res := r.ProcessAttack(
		testutil.NewCreature("a", model.RarityCommon, testutil.FlatStats(50, 100)),
		testutil.NewCreature("d", model.RarityCommon, testutil.FlatStats(20, 100)),
		model.AttackPhysical, 0)
	require.NoError(t, res.Err)

	require.Len(t, res.Debuffs, 2)
	assert.Equal(t, "Armor Crack", res.Debuffs[0].Name)
	assert.Equal(t, 1, res.Debuffs[0].Duration)
	assert.Equal(t, "Elemental Weakness", res.Debuffs[1].Name)
	assert.Equal(t, 2, res.Debuffs[1].Duration)

	def := res.Defender
	require.Len(t, def.ActiveEffects, 2)
	assert.Equal(t, 15, def.BattleStats.Get(model.StatPhysicalDefense))
	assert.Equal(t, 14, def.BattleStats.Get(model.StatMagicalDefense))
	assert.Equal(t, 90, def.CurrentHealth)
	assert.Contains(t, res.Log, "super effective")

	r, _ = stubResolver(outcome, testutil.NeverRNG())
	res = r.ProcessAttack(
		testutil.NewCreature("a", model.RarityCommon, testutil.FlatStats(50, 100)),
		testutil.NewCreature("d", model.RarityCommon, testutil.FlatStats(20, 100)),
		model.AttackPhysical, 0)
	assert.Empty(t, res.Debuffs)
	assert.Empty(t, res.Defender.ActiveEffects)
}

func TestProcessAttack_DamageClampedAtZeroHealth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		rarity  model.Rarity
		wantLog string
	}{
		{rarity: model.RarityCommon, wantLog: "knocked out"},
		{rarity: model.RarityRare, wantLog: "has been defeated"},
		{rarity: model.RarityEpic, wantLog: "blaze of power"},
		{rarity: model.RarityLegendary, wantLog: "The legendary"},
	}

	for _, tt := range tests {
		t.Run(string(tt.rarity), func(t *testing.T) {
			t.Parallel()

			r, _ := stubResolver(formula.DamageOutcome{Damage: 500, IsCritical: true}, testutil.AlwaysRNG())
			d := testutil.NewCreature("d", tt.rarity, testutil.FlatStats(20, 100))
			d.CurrentHealth = 40

			res := r.ProcessAttack(testutil.NewCreature("a", model.RarityCommon, testutil.FlatStats(50, 100)), d, model.AttackPhysical, 0)
			assert.Equal(t, 40, res.Damage)
			assert.Zero(t, res.Defender.CurrentHealth)
			assert.Empty(t, res.Debuffs, "no procs on a defeated creature")
			assert.Contains(t, res.Log, tt.wantLog)
		})
	}
}

func TestProcessAttack_WoundText(t *testing.T) {
	t.Parallel()

	r, _ := stubResolver(formula.DamageOutcome{Damage: 80}, testutil.NeverRNG())
	res := r.ProcessAttack(
		testutil.NewCreature("a", model.RarityCommon, testutil.FlatStats(50, 100)),
		testutil.NewCreature("d", model.RarityCommon, testutil.FlatStats(20, 100)),
		model.AttackPhysical, 0)
	assert.Contains(t, res.Log, "critically wounded")

	r, _ = stubResolver(formula.DamageOutcome{Damage: 55}, testutil.NeverRNG())
	res = r.ProcessAttack(
		testutil.NewCreature("a", model.RarityCommon, testutil.FlatStats(50, 100)),
		testutil.NewCreature("d", model.RarityCommon, testutil.FlatStats(20, 100)),
		model.AttackPhysical, 0)
	assert.Contains(t, res.Log, "badly wounded")
}

func TestProcessAttack_ComboMultiplier(t *testing.T) {
	t.Parallel()

	r, f := stubResolver(formula.DamageOutcome{Damage: 5}, testutil.NeverRNG())
	res := r.ProcessAttack(
		testutil.NewCreature("a", model.RarityCommon, testutil.FlatStats(50, 100)),
		testutil.NewCreature("d", model.RarityCommon, testutil.FlatStats(20, 100)),
		model.AttackPhysical, 3)
	assert.InDelta(t, 1.2, f.LastCombo, 1e-9)
	assert.InDelta(t, 1.2, res.ComboMultiplier, 1e-9)
	assert.Contains(t, res.Log, "[Combo x3]")
}

func TestProcessAttack_InvalidInput(t *testing.T) {
	t.Parallel()

	r, _ := stubResolver(formula.DamageOutcome{Damage: 5}, testutil.NeverRNG())
	a := testutil.NewCreature("a", model.RarityCommon, testutil.FlatStats(50, 100))
	bare := &model.Creature{ID: "bare", CurrentHealth: 10}

	res := r.ProcessAttack(a, bare, model.AttackPhysical, 0)
	assert.True(t, errors.Is(res.Err, model.ErrInvalidInput))
	assert.Zero(t, res.Damage)
	assert.Same(t, a, res.Attacker)
	assert.Same(t, bare, res.Defender)
	assert.Equal(t, 10, bare.CurrentHealth)

	res = r.ProcessAttack(a, a.Clone(), "psychic", 0)
	assert.True(t, errors.Is(res.Err, model.ErrInvalidInput))
}
