package battle

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Antigono00/pvp21/internal/data"
	"github.com/Antigono00/pvp21/internal/game/combat"
	"github.com/Antigono00/pvp21/internal/game/synergy"
	"github.com/Antigono00/pvp21/internal/model"
)

// MaxFieldSize is the number of creatures a side may have on the field.
const MaxFieldSize = 5

var (
	// ErrNotEnoughEnergy is returned when a card costs more than the side has.
	ErrNotEnoughEnergy = fmt.Errorf("not enough energy: %w", model.ErrInvalidInput)
	// ErrAlreadyAttacked is returned when a creature attacks twice in a turn.
	ErrAlreadyAttacked = fmt.Errorf("creature already attacked this turn: %w", model.ErrInvalidInput)
	// ErrMatchOver is returned for actions after a winner is decided.
	ErrMatchOver = errors.New("match is over")
)

// Session is one match in progress.
//
// Every action validates first and changes nothing on error. On success the
// updated creatures returned by the resolvers replace the old field entries.
type Session struct {
	ID     uuid.UUID
	engine *Engine
	state  *model.GameState

	attacked map[string]bool
	combo    map[model.SideID]int
	minted   int

	log []string
}

// NewSession starts a match from state. Fielded creatures without battle
// stats get them derived, at full health.
func NewSession(e *Engine, state *model.GameState) *Session {
	if e == nil {
		e = NewEngine(nil, nil, nil)
	}
	st := state.Clone()
	if st == nil {
		st = &model.GameState{}
	}
	st.Difficulty = st.Difficulty.OrDefault()
	for _, c := range st.AllCreatures() {
		if c != nil && !c.HasBattleStats() {
			e.Pipeline.Refresh(c)
			c.CurrentHealth = c.MaxHealth()
		}
	}
	s := &Session{
		ID:       uuid.New(),
		engine:   e,
		state:    st,
		attacked: make(map[string]bool),
		combo:    make(map[model.SideID]int),
	}
	e.logger.Info("match started",
		"match", s.ID,
		"difficulty", st.Difficulty,
		"playerField", len(st.Player.Field),
		"enemyField", len(st.Enemy.Field))
	return s
}

// State returns a copy of the current state.
func (s *Session) State() *model.GameState {
	return s.state.Clone()
}

// Log returns the accumulated battle log.
func (s *Session) Log() []string {
	return append([]string(nil), s.log...)
}

// Turn returns the current turn number.
func (s *Session) Turn() int {
	return s.state.Turn
}

func (s *Session) add(msg string) {
	if msg != "" {
		s.log = append(s.log, msg)
	}
}

// PlayCreature plays the creature card at handIndex onto side's field.
func (s *Session) PlayCreature(side model.SideID, handIndex int) (*model.Creature, error) {
	if err := s.checkOpen(); err != nil {
		return nil, err
	}
	sd := s.state.Side(side)
	card, err := handCard(sd, handIndex, model.CardCreature)
	if err != nil {
		return nil, err
	}
	if len(sd.Field) >= MaxFieldSize {
		return nil, fmt.Errorf("play creature: field full: %w", model.ErrInvalidInput)
	}
	if sd.Energy < card.Cost {
		return nil, ErrNotEnoughEnergy
	}

	s.minted++
	c, err := data.NewCreature(card.Species, fmt.Sprintf("%s-%s-%d", side, card.ID, s.minted), 0, 0)
	if err != nil {
		return nil, fmt.Errorf("play creature: %w", err)
	}
	s.engine.Pipeline.Refresh(c)
	c.CurrentHealth = c.MaxHealth()

	sd.Energy -= card.Cost
	sd.Hand = removeCard(sd.Hand, handIndex)
	sd.Field = append(sd.Field, c)
	s.add(fmt.Sprintf("%s summons %s (%s).", side, c.DisplayName(), c.Rarity))
	return c, nil
}

// UseTool plays the tool card at handIndex on side's creature at fieldIndex.
func (s *Session) UseTool(side model.SideID, handIndex, fieldIndex int) error {
	if err := s.checkOpen(); err != nil {
		return err
	}
	sd := s.state.Side(side)
	card, err := handCard(sd, handIndex, model.CardTool)
	if err != nil {
		return err
	}
	target, err := fieldCreature(sd, fieldIndex)
	if err != nil {
		return err
	}
	if sd.Energy < card.Cost {
		return ErrNotEnoughEnergy
	}

	res := s.engine.Items.ApplyTool(target, card.Item(), s.state.Difficulty, s.state.Turn)
	if res.Err != nil {
		s.add(res.Log)
		return res.Err
	}
	sd.Energy -= card.Cost
	sd.Hand = removeCard(sd.Hand, handIndex)
	sd.Field[fieldIndex] = res.Creature
	s.add(res.Log)
	return nil
}

// CastSpell plays the spell card at handIndex. The caster is side's creature
// at casterIndex; the target is targetIndex on targetSide's field.
func (s *Session) CastSpell(side model.SideID, handIndex, casterIndex int, targetSide model.SideID, targetIndex int) error {
	if err := s.checkOpen(); err != nil {
		return err
	}
	sd := s.state.Side(side)
	card, err := handCard(sd, handIndex, model.CardSpell)
	if err != nil {
		return err
	}
	caster, err := fieldCreature(sd, casterIndex)
	if err != nil {
		return err
	}
	td := s.state.Side(targetSide)
	target, err := fieldCreature(td, targetIndex)
	if err != nil {
		return err
	}
	if sd.Energy < card.Cost {
		return ErrNotEnoughEnergy
	}

	res := s.engine.Items.ApplySpell(caster, target, card.Item(), s.state.Difficulty, s.state.Turn)
	if res.Err != nil {
		s.add(res.Log)
		return res.Err
	}
	sd.Energy -= card.Cost
	sd.Hand = removeCard(sd.Hand, handIndex)
	sd.Field[casterIndex] = res.Caster
	td.Field[targetIndex] = res.Target
	s.add(res.Log)
	return nil
}

// Attack makes side's creature at attackerIndex attack the opposing creature
// at targetIndex. Each creature attacks at most once per turn; consecutive
// attacks by one side in a turn raise the combo level.
func (s *Session) Attack(side model.SideID, attackerIndex, targetIndex int, attackType model.AttackType) (combat.AttackResult, error) {
	if err := s.checkOpen(); err != nil {
		return combat.AttackResult{}, err
	}
	sd := s.state.Side(side)
	od := s.state.Side(side.Opponent())
	attacker, err := fieldCreature(sd, attackerIndex)
	if err != nil {
		return combat.AttackResult{}, err
	}
	defender, err := fieldCreature(od, targetIndex)
	if err != nil {
		return combat.AttackResult{}, err
	}
	if s.attacked[attacker.ID] {
		return combat.AttackResult{}, ErrAlreadyAttacked
	}

	// synergies shape the stats the attack is resolved with, never the stored creature
	boostedAtk := s.withSynergy(sd.Field, attackerIndex)
	boostedDef := s.withSynergy(od.Field, targetIndex)

	combo := s.combo[side] + 1
	res := s.engine.Combat.ProcessAttack(boostedAtk, boostedDef, attackType, combo)
	if res.Err != nil {
		s.add(res.Log)
		return res, res.Err
	}

	s.combo[side] = combo
	s.attacked[attacker.ID] = true

	updatedAtk := attacker.Clone()
	updatedAtk.NextAttackBonus = res.Attacker.NextAttackBonus

	updatedDef := defender.Clone()
	updatedDef.CurrentHealth = res.Defender.CurrentHealth
	if len(res.Debuffs) > 0 {
		for _, e := range res.Debuffs {
			updatedDef.AddEffect(e)
		}
		s.engine.Pipeline.Refresh(updatedDef)
	}

	sd.Field[attackerIndex] = updatedAtk
	od.Field[targetIndex] = updatedDef
	s.add(res.Log)
	return res, nil
}

// Defend puts side's creature at fieldIndex into a defensive stance until the
// next turn.
func (s *Session) Defend(side model.SideID, fieldIndex int) error {
	if err := s.checkOpen(); err != nil {
		return err
	}
	sd := s.state.Side(side)
	c, err := fieldCreature(sd, fieldIndex)
	if err != nil {
		return err
	}
	if c.IsDefending {
		return nil
	}
	updated := c.Clone()
	updated.IsDefending = true
	sd.Field[fieldIndex] = updated
	s.add(fmt.Sprintf("%s takes a defensive stance.", c.DisplayName()))
	return nil
}

// EndTurn runs the turn orchestrator and resets per-turn attack tracking.
func (s *Session) EndTurn() error {
	if err := s.checkOpen(); err != nil {
		return err
	}
	res, err := s.engine.Turns.ProcessTurn(s.state, s.state.Difficulty)
	if err != nil {
		return err
	}
	s.state = res.State
	clear(s.attacked)
	clear(s.combo)
	for _, line := range res.Log {
		s.add(line)
	}

	s.engine.logger.Debug("turn ended",
		"match", s.ID,
		"turn", s.state.Turn,
		"defeated", len(res.Defeated))
	if w, ok := s.Winner(); ok {
		s.add(fmt.Sprintf("The %s side wins!", w))
		s.engine.logger.Info("match finished", "match", s.ID, "winner", w, "turn", s.state.Turn)
	}
	return nil
}

// Winner reports the winning side once the other one has no creature left on
// the field and no creature card left to play.
func (s *Session) Winner() (model.SideID, bool) {
	playerOut := s.eliminated(model.SidePlayer)
	enemyOut := s.eliminated(model.SideEnemy)
	switch {
	case playerOut && !enemyOut:
		return model.SideEnemy, true
	case enemyOut && !playerOut:
		return model.SidePlayer, true
	}
	return 0, false
}

// Synergies returns the synergies currently active on side's field.
func (s *Session) Synergies(side model.SideID) []synergy.Synergy {
	return synergy.Detect(s.state.Side(side).Field)
}

func (s *Session) eliminated(side model.SideID) bool {
	sd := s.state.Side(side)
	for _, c := range sd.Field {
		if c != nil && !c.IsDefeated() {
			return false
		}
	}
	for _, cards := range [][]model.Card{sd.Hand, sd.Deck} {
		for _, c := range cards {
			if c.Kind == model.CardCreature {
				return false
			}
		}
	}
	return true
}

func (s *Session) checkOpen() error {
	if _, over := s.Winner(); over {
		return ErrMatchOver
	}
	return nil
}

func (s *Session) withSynergy(field []*model.Creature, idx int) *model.Creature {
	syn := synergy.Detect(field)
	if len(syn) == 0 {
		return field[idx]
	}
	return synergy.Apply(field[idx:idx+1], syn)[0]
}

func handCard(sd *model.Side, idx int, kind model.CardKind) (model.Card, error) {
	if idx < 0 || idx >= len(sd.Hand) {
		return model.Card{}, fmt.Errorf("hand index %d out of range: %w", idx, model.ErrInvalidInput)
	}
	card := sd.Hand[idx]
	if card.Kind != kind {
		return model.Card{}, fmt.Errorf("card %s is a %s, not a %s: %w", card.ID, card.Kind, kind, model.ErrInvalidInput)
	}
	return card, nil
}

func fieldCreature(sd *model.Side, idx int) (*model.Creature, error) {
	if idx < 0 || idx >= len(sd.Field) || sd.Field[idx] == nil {
		return nil, fmt.Errorf("field index %d out of range: %w", idx, model.ErrInvalidInput)
	}
	c := sd.Field[idx]
	if c.IsDefeated() {
		return nil, fmt.Errorf("creature %s is defeated: %w", c.ID, model.ErrInvalidInput)
	}
	return c, nil
}

func removeCard(hand []model.Card, idx int) []model.Card {
	out := make([]model.Card, 0, len(hand)-1)
	out = append(out, hand[:idx]...)
	return append(out, hand[idx+1:]...)
}
