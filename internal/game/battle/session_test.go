package battle

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Antigono00/pvp21/internal/data"
	"github.com/Antigono00/pvp21/internal/model"
	"github.com/Antigono00/pvp21/internal/rng"
	"github.com/Antigono00/pvp21/internal/testutil"
)

func TestMain(m *testing.M) {
	if err := data.LoadCatalog(); err != nil {
		panic("loading catalog: " + err.Error())
	}
	os.Exit(m.Run())
}

func card(t *testing.T, id string) model.Card {
	t.Helper()
	for _, c := range data.CardPool {
		if c.ID == id {
			return c
		}
	}
	t.Fatalf("card %s not in catalog", id)
	return model.Card{}
}

func mint(t *testing.T, species, id string) *model.Creature {
	t.Helper()
	c, err := data.NewCreature(species, id, 0, 0)
	require.NoError(t, err)
	return c
}

func newTestSession(t *testing.T, state *model.GameState) *Session {
	t.Helper()
	return NewSession(NewEngine(nil, testutil.NeverRNG(), nil), state)
}

func TestNewSession_DerivesStats(t *testing.T) {
	t.Parallel()

	state := &model.GameState{Player: model.Side{Field: []*model.Creature{mint(t, "Thornback", "p1")}}}
	s := newTestSession(t, state)

	got := s.State().Player.Field[0]
	assert.True(t, got.HasBattleStats())
	assert.Equal(t, 100, got.MaxHealth())
	assert.Equal(t, 100, got.CurrentHealth)
	assert.Equal(t, model.DifficultyMedium, s.State().Difficulty)
	assert.False(t, state.Player.Field[0].HasBattleStats(), "input state untouched")
	assert.NotEqual(t, [16]byte{}, [16]byte(s.ID))
}

func TestPlayCreature(t *testing.T) {
	t.Parallel()

	s := newTestSession(t, &model.GameState{
		Player: model.Side{Energy: 5, Hand: []model.Card{card(t, "c-emberfox"), card(t, "t-arcane-shield")}},
		Enemy:  model.Side{Field: []*model.Creature{mint(t, "Thornback", "e1")}},
	})

	c, err := s.PlayCreature(model.SidePlayer, 0)
	require.NoError(t, err)
	assert.Equal(t, "Emberfox", c.Species)
	assert.True(t, c.HasBattleStats())
	assert.Equal(t, c.MaxHealth(), c.CurrentHealth)

	st := s.State()
	assert.Equal(t, 3, st.Player.Energy)
	require.Len(t, st.Player.Field, 1)
	require.Len(t, st.Player.Hand, 1)
	assert.Equal(t, "t-arcane-shield", st.Player.Hand[0].ID)
	assert.Contains(t, s.Log()[len(s.Log())-1], "summons Emberfox")

	_, err = s.PlayCreature(model.SidePlayer, 0)
	assert.True(t, errors.Is(err, model.ErrInvalidInput), "tool card is not a creature")
	_, err = s.PlayCreature(model.SidePlayer, 7)
	assert.True(t, errors.Is(err, model.ErrInvalidInput))
}

func TestPlayCreature_NotEnoughEnergy(t *testing.T) {
	t.Parallel()

	s := newTestSession(t, &model.GameState{
		Player: model.Side{Energy: 1, Hand: []model.Card{card(t, "c-seraph")}},
		Enemy:  model.Side{Field: []*model.Creature{mint(t, "Thornback", "e1")}},
	})

	_, err := s.PlayCreature(model.SidePlayer, 0)
	assert.ErrorIs(t, err, ErrNotEnoughEnergy)
	st := s.State()
	assert.Equal(t, 1, st.Player.Energy)
	assert.Len(t, st.Player.Hand, 1)
	assert.Empty(t, st.Player.Field)
}

func TestCardPlay_NotEnoughEnergyLeavesStateUntouched(t *testing.T) {
	t.Parallel()

	s := newTestSession(t, &model.GameState{
		Player: model.Side{
			Energy: 1,
			Hand:   []model.Card{card(t, "t-arcane-shield"), card(t, "s-arcane-blast")},
			Field:  []*model.Creature{mint(t, "Thornback", "p1")},
		},
		Enemy: model.Side{Field: []*model.Creature{mint(t, "Thornback", "e1")}},
	})
	before := s.State()
	logLen := len(s.Log())

	assert.ErrorIs(t, s.UseTool(model.SidePlayer, 0, 0), ErrNotEnoughEnergy)
	assert.ErrorIs(t, s.CastSpell(model.SidePlayer, 1, 0, model.SideEnemy, 0), ErrNotEnoughEnergy)

	after := s.State()
	assert.Equal(t, before, after)
	assert.Len(t, s.Log(), logLen)
}

func TestUseTool(t *testing.T) {
	t.Parallel()

	s := newTestSession(t, &model.GameState{
		Player: model.Side{Energy: 4, Hand: []model.Card{card(t, "t-arcane-shield")}, Field: []*model.Creature{mint(t, "Thornback", "p1")}},
		Enemy:  model.Side{Field: []*model.Creature{mint(t, "Thornback", "e1")}},
	})
	before := s.State().Player.Field[0]

	require.NoError(t, s.UseTool(model.SidePlayer, 0, 0))
	after := s.State().Player.Field[0]
	assert.Equal(t, before.BattleStats.Get(model.StatPhysicalDefense)+10, after.BattleStats.Get(model.StatPhysicalDefense))
	assert.Equal(t, before.MaxHealth()+15, after.MaxHealth())
	assert.Len(t, after.ActiveEffects, 1)
	assert.Equal(t, 2, s.State().Player.Energy)
	assert.Empty(t, before.ActiveEffects)
}

func TestCastSpell(t *testing.T) {
	t.Parallel()

	s := newTestSession(t, &model.GameState{
		Player: model.Side{Energy: 4, Hand: []model.Card{card(t, "s-arcane-blast")}, Field: []*model.Creature{mint(t, "Thornback", "p1")}},
		Enemy:  model.Side{Field: []*model.Creature{mint(t, "Thornback", "e1")}},
	})

	require.NoError(t, s.CastSpell(model.SidePlayer, 0, 0, model.SideEnemy, 0))
	st := s.State()
	// magic 5 at medium: 35 damage, no crit
	assert.Equal(t, 65, st.Enemy.Field[0].CurrentHealth)
	assert.Equal(t, 1, st.Player.Energy)
	assert.Empty(t, st.Player.Hand)
}

func TestAttack(t *testing.T) {
	t.Parallel()

	s := newTestSession(t, &model.GameState{
		Player: model.Side{Field: []*model.Creature{mint(t, "Thornback", "p1"), mint(t, "Stone Golem", "p2")}},
		Enemy:  model.Side{Field: []*model.Creature{mint(t, "Thornback", "e1")}},
	})

	res, err := s.Attack(model.SidePlayer, 0, 0, model.AttackAuto)
	require.NoError(t, err)
	assert.Equal(t, model.AttackPhysical, res.DamageType)
	assert.Equal(t, 1, res.ComboLevel)
	assert.Equal(t, 5, res.Damage) // 28 vs 23
	assert.Equal(t, 95, s.State().Enemy.Field[0].CurrentHealth)

	_, err = s.Attack(model.SidePlayer, 0, 0, model.AttackAuto)
	assert.ErrorIs(t, err, ErrAlreadyAttacked)

	res, err = s.Attack(model.SidePlayer, 1, 0, model.AttackPhysical)
	require.NoError(t, err)
	assert.Equal(t, 2, res.ComboLevel)

	require.NoError(t, s.EndTurn())
	res, err = s.Attack(model.SidePlayer, 0, 0, model.AttackAuto)
	require.NoError(t, err)
	assert.Equal(t, 1, res.ComboLevel, "combo resets each turn")
}

func TestDefendClearedByEndTurn(t *testing.T) {
	t.Parallel()

	s := newTestSession(t, &model.GameState{
		Player: model.Side{Field: []*model.Creature{mint(t, "Thornback", "p1")}},
		Enemy:  model.Side{Field: []*model.Creature{mint(t, "Thornback", "e1")}},
	})

	require.NoError(t, s.Defend(model.SidePlayer, 0))
	assert.True(t, s.State().Player.Field[0].IsDefending)

	require.NoError(t, s.EndTurn())
	assert.False(t, s.State().Player.Field[0].IsDefending)
	assert.Equal(t, 1, s.Turn())
}

func TestWinner(t *testing.T) {
	t.Parallel()

	weak := mint(t, "Gale Sprite", "e1")
	s := newTestSession(t, &model.GameState{
		Player: model.Side{Field: []*model.Creature{mint(t, "Stone Golem", "p1")}},
		Enemy:  model.Side{Field: []*model.Creature{weak}},
	})
	_, over := s.Winner()
	require.False(t, over)

	s.state.Enemy.Field[0].CurrentHealth = 1
	_, err := s.Attack(model.SidePlayer, 0, 0, model.AttackPhysical)
	require.NoError(t, err)

	w, over := s.Winner()
	require.True(t, over)
	assert.Equal(t, model.SidePlayer, w)
	assert.ErrorIs(t, s.EndTurn(), ErrMatchOver)
	assert.ErrorIs(t, s.Defend(model.SidePlayer, 0), ErrMatchOver)
}

func TestAutoPlay_FullMatch(t *testing.T) {
	t.Parallel()

	deck := func() []model.Card {
		var out []model.Card
		for _, id := range []string{"c-emberfox", "t-arcane-shield", "c-turtle", "s-arcane-blast", "c-golem", "s-tremor", "t-power-charge", "c-sprite"} {
			out = append(out, card(t, id))
		}
		return out
	}
	state := &model.GameState{
		Difficulty: model.DifficultyHard,
		Player:     model.Side{Energy: 4, Deck: deck()},
		Enemy:      model.Side{Energy: 4, Deck: deck()},
	}
	state.Player.Hand, state.Player.Deck = state.Player.Deck[:3], state.Player.Deck[3:]
	state.Enemy.Hand, state.Enemy.Deck = state.Enemy.Deck[:3], state.Enemy.Deck[3:]

	s := NewSession(NewEngine(nil, rng.New(42), nil), state)
	for range 60 {
		if _, over := s.Winner(); over {
			break
		}
		for _, side := range []model.SideID{model.SidePlayer, model.SideEnemy} {
			_, err := s.AutoPlay(side)
			require.NoError(t, err)
		}
		if _, over := s.Winner(); over {
			break
		}
		require.NoError(t, s.EndTurn())
	}

	assert.NotEmpty(t, s.Log())
	assert.Greater(t, s.Turn(), 0)
	st := s.State()
	for _, c := range st.AllCreatures() {
		assert.GreaterOrEqual(t, c.CurrentHealth, 0)
		assert.LessOrEqual(t, c.CurrentHealth, c.MaxHealth())
	}
}
