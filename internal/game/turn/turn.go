// Package turn advances a whole match by one turn: energy, effect ticks,
// death triggers and card draw.
package turn

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/Antigono00/pvp21/internal/data"
	"github.com/Antigono00/pvp21/internal/game/effect"
	"github.com/Antigono00/pvp21/internal/game/stats"
	"github.com/Antigono00/pvp21/internal/game/trigger"
	"github.com/Antigono00/pvp21/internal/model"
)

// ErrTurnInProgress is returned when a turn is requested while another one is
// still being processed for the same state.
var ErrTurnInProgress = fmt.Errorf("turn already in progress: %w", model.ErrInvalidInput)

const energyRegenPerStat = 0.1

// Result is the outcome of one turn.
type Result struct {
	State *model.GameState

	// EnergyGained is never negative; a side already above its cap is
	// clamped down to it without reporting a loss.
	EnergyGained map[model.SideID]int
	Drawn        map[model.SideID]*model.Card
	Defeated     []*model.Creature
	Log          []string
}

// Orchestrator runs the per-turn sequence.
type Orchestrator struct {
	ticker  *effect.Ticker
	sweeper *trigger.Sweeper
	logger  *slog.Logger
}

// NewOrchestrator creates an Orchestrator. Nil arguments select defaults.
func NewOrchestrator(p *stats.Pipeline, logger *slog.Logger) *Orchestrator {
	if p == nil {
		p = stats.NewPipeline(nil)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{
		ticker:  effect.NewTicker(p, logger),
		sweeper: trigger.NewSweeper(p, logger),
		logger:  logger,
	}
}

// ProcessTurn returns the state after one turn. The turn counter advances
// first, then:
//
//  1. each side regenerates energy up to its cap
//  2. both fields tick once
//  3. defeated creatures are swept, player side first; the enemy sweep sees
//     the updated player field
//  4. each side below its hand cap draws the top card of its deck
//
// state itself is not modified apart from its TurnInProgress guard, which is
// held for the duration of the call. A state whose guard is already set is
// rejected with ErrTurnInProgress.
func (o *Orchestrator) ProcessTurn(state *model.GameState, difficulty model.Difficulty) (Result, error) {
	if state == nil {
		return Result{}, fmt.Errorf("process turn: nil state: %w", model.ErrInvalidInput)
	}
	if state.TurnInProgress {
		return Result{State: state}, ErrTurnInProgress
	}
	state.TurnInProgress = true
	defer func() { state.TurnInProgress = false }()

	if !difficulty.Valid() {
		difficulty = state.Difficulty.OrDefault()
	}
	profile := data.Profile(difficulty)

	next := state.Clone()
	next.TurnInProgress = false
	next.Turn++
	turn := next.Turn

	res := Result{
		State:        next,
		EnergyGained: make(map[model.SideID]int, 2),
		Drawn:        make(map[model.SideID]*model.Card, 2),
	}
	res.Log = append(res.Log, fmt.Sprintf("--- Turn %d ---", turn))

	for _, id := range []model.SideID{model.SidePlayer, model.SideEnemy} {
		side := next.Side(id)
		before := side.Energy
		side.Energy = min(side.Energy+EnergyRegen(side.Field, profile, id), EnergyCap(side.Field, profile, id))
		res.EnergyGained[id] = max(side.Energy-before, 0)
	}

	var tickLog []string
	next.Player.Field, tickLog = o.ticker.TickField(next.Player.Field, turn, difficulty)
	res.Log = append(res.Log, tickLog...)
	next.Enemy.Field, tickLog = o.ticker.TickField(next.Enemy.Field, turn, difficulty)
	res.Log = append(res.Log, tickLog...)

	sweep := o.sweeper.ProcessDefeated(next.Player.Field, next.Enemy.Field, turn)
	next.Player.Field, next.Enemy.Field = sweep.Survivors, sweep.Opposing
	res.Defeated = append(res.Defeated, sweep.Defeated...)
	res.Log = append(res.Log, sweep.Log...)

	sweep = o.sweeper.ProcessDefeated(next.Enemy.Field, next.Player.Field, turn)
	next.Enemy.Field, next.Player.Field = sweep.Survivors, sweep.Opposing
	res.Defeated = append(res.Defeated, sweep.Defeated...)
	res.Log = append(res.Log, sweep.Log...)

	for _, id := range []model.SideID{model.SidePlayer, model.SideEnemy} {
		if card, ok := draw(next.Side(id), profile.HandCap); ok {
			res.Drawn[id] = &card
		}
	}

	o.logger.Debug("turn processed",
		"turn", turn,
		"difficulty", difficulty,
		"playerEnergy", next.Player.Energy,
		"enemyEnergy", next.Enemy.Energy,
		"playerField", len(next.Player.Field),
		"enemyField", len(next.Enemy.Field),
		"defeated", len(res.Defeated))
	return res, nil
}

// EnergyCap returns floor(capBase + 0.25 × fielded creatures).
func EnergyCap(field []*model.Creature, profile data.DifficultyProfile, side model.SideID) int {
	return int(math.Floor(profile.EnergyCapBase(side) + data.EnergyCapPerCreature*float64(len(field))))
}

// EnergyRegen returns the energy a side regenerates this turn: the difficulty
// base, plus floor(Σ energy × 0.1 × rarity × form) over the field, plus one
// per energy specialist.
func EnergyRegen(field []*model.Creature, profile data.DifficultyProfile, side model.SideID) int {
	var sum float64
	specialists := 0
	for _, c := range field {
		if c == nil {
			continue
		}
		sum += float64(c.Base.Energy) * energyRegenPerStat * data.RarityMultiplier(c.Rarity) * data.FormMultiplier(c.FormLevel)
		if c.Base.HasSpecialty(model.BaseEnergy) {
			specialists++
		}
	}
	return profile.RegenBase(side) + int(math.Floor(sum)) + specialists
}

func draw(side *model.Side, handCap int) (model.Card, bool) {
	if len(side.Hand) >= handCap || len(side.Deck) == 0 {
		return model.Card{}, false
	}
	card := side.Deck[0]
	side.Deck = side.Deck[1:]
	side.Hand = append(side.Hand, card)
	return card, true
}
