// Package battle drives a match: it owns the game state, spends energy on
// card play and swaps updated creatures back into the fields.
package battle

import (
	"log/slog"

	"github.com/Antigono00/pvp21/internal/formula"
	"github.com/Antigono00/pvp21/internal/game/combat"
	"github.com/Antigono00/pvp21/internal/game/item"
	"github.com/Antigono00/pvp21/internal/game/stats"
	"github.com/Antigono00/pvp21/internal/game/turn"
	"github.com/Antigono00/pvp21/internal/rng"
)

// Engine bundles the resolvers of one match. They share a single random
// source, so an Engine must not be used by two goroutines at once.
type Engine struct {
	Pipeline *stats.Pipeline
	Items    *item.Resolver
	Combat   *combat.Resolver
	Turns    *turn.Orchestrator

	logger *slog.Logger
}

// NewEngine wires the resolvers. Nil arguments select defaults.
func NewEngine(f formula.Formulas, src rng.Source, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	src = rng.OrGlobal(src)
	p := stats.NewPipeline(f)
	return &Engine{
		Pipeline: p,
		Items:    item.NewResolver(p, src, logger),
		Combat:   combat.NewResolver(p, src, logger),
		Turns:    turn.NewOrchestrator(p, logger),
		logger:   logger,
	}
}
