package battle

import (
	"errors"

	"github.com/Antigono00/pvp21/internal/data"
	"github.com/Antigono00/pvp21/internal/model"
)

// AutoPlay takes a greedy turn for side: summon what it can afford, spend
// tools on its most wounded creature, aim spells, then attack the weakest
// opposing creature with every creature that has not attacked yet.
// It does not end the turn. Returns the number of actions taken.
func (s *Session) AutoPlay(side model.SideID) (int, error) {
	actions := 0
	step := func(err error) (bool, error) {
		switch {
		case err == nil:
			actions++
			return true, nil
		case errors.Is(err, ErrMatchOver):
			return false, err
		case errors.Is(err, model.ErrInvalidInput):
			return false, nil
		default:
			return false, err
		}
	}

	for played := true; played; {
		played = false
		sd := s.state.Side(side)
		for i, card := range sd.Hand {
			if card.Kind != model.CardCreature || card.Cost > sd.Energy || len(sd.Field) >= MaxFieldSize {
				continue
			}
			_, err := s.PlayCreature(side, i)
			ok, err := step(err)
			if err != nil {
				return actions, stopErr(err)
			}
			if ok {
				played = true
				break
			}
		}
	}

	for played := true; played; {
		played = false
		sd := s.state.Side(side)
		for i, card := range sd.Hand {
			if card.Cost > sd.Energy {
				continue
			}
			var err error
			switch card.Kind {
			case model.CardTool:
				target := weakest(sd.Field, true)
				if target < 0 {
					continue
				}
				err = s.UseTool(side, i, target)
			case model.CardSpell:
				caster := strongestCaster(sd.Field, card.Category)
				if caster < 0 {
					continue
				}
				targetSide, target := side, weakest(sd.Field, true)
				if !spellTargetsAlly(card) {
					targetSide = side.Opponent()
					target = weakest(s.state.Side(targetSide).Field, false)
				}
				if target < 0 {
					continue
				}
				err = s.CastSpell(side, i, caster, targetSide, target)
			default:
				continue
			}
			ok, err := step(err)
			if err != nil {
				return actions, stopErr(err)
			}
			if ok {
				played = true
				break
			}
		}
	}

	sd := s.state.Side(side)
	for i := range sd.Field {
		target := weakest(s.state.Side(side.Opponent()).Field, false)
		if target < 0 {
			break
		}
		c := sd.Field[i]
		if c == nil || c.IsDefeated() || s.attacked[c.ID] {
			continue
		}
		_, err := s.Attack(side, i, target, model.AttackAuto)
		if _, err := step(err); err != nil {
			return actions, stopErr(err)
		}
	}
	return actions, nil
}

func stopErr(err error) error {
	if errors.Is(err, ErrMatchOver) {
		return nil
	}
	return err
}

// weakest returns the index of the living creature with the lowest health
// ratio (ratio=true) or lowest absolute health, or -1.
func weakest(field []*model.Creature, ratio bool) int {
	best := -1
	bestVal := 0.0
	for i, c := range field {
		if c == nil || c.IsDefeated() {
			continue
		}
		v := float64(c.CurrentHealth)
		if ratio {
			v = c.HealthRatio()
		}
		if best < 0 || v < bestVal {
			best, bestVal = i, v
		}
	}
	return best
}

func strongestCaster(field []*model.Creature, cat model.ItemCategory) int {
	best, bestVal := -1, -1
	for i, c := range field {
		if c == nil || c.IsDefeated() {
			continue
		}
		if v := c.Base.Get(cat.BaseStat()); v > bestVal {
			best, bestVal = i, v
		}
	}
	return best
}

// spellTargetsAlly reports whether a spell helps its target.
func spellTargetsAlly(card model.Card) bool {
	e, ok := data.SpellEffect(card.Category, card.Tag)
	if !ok {
		return false
	}
	return e.Damage == 0 && len(e.DrainStats) == 0 && e.HealthOverTime >= 0
}
