// Package sim runs seeded auto-play matches and turns them into reports.
package sim

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Antigono00/pvp21/internal/config"
	"github.com/Antigono00/pvp21/internal/data"
	"github.com/Antigono00/pvp21/internal/formula"
	"github.com/Antigono00/pvp21/internal/game/battle"
	"github.com/Antigono00/pvp21/internal/model"
	"github.com/Antigono00/pvp21/internal/rng"
)

// Match describes one simulated match. Both sides start from the same deck,
// each shuffled by the match source.
type Match struct {
	Seed       uint64
	Difficulty model.Difficulty
	MaxTurns   int
	Deck       []model.Card
	HandSize   int
	Energy     int
}

// BuildDeck resolves catalog card IDs.
func BuildDeck(ids []string) ([]model.Card, error) {
	deck := make([]model.Card, 0, len(ids))
	for _, id := range ids {
		c, ok := data.GetCard(id)
		if !ok {
			return nil, fmt.Errorf("unknown card %q: %w", id, model.ErrInvalidInput)
		}
		deck = append(deck, c)
	}
	return deck, nil
}

// Run plays m to completion or until MaxTurns turns have ended. A match that
// hits the turn limit is reported as a draw.
func Run(ctx context.Context, m Match, f formula.Formulas, logger *slog.Logger) (model.MatchReport, error) {
	if logger == nil {
		logger = slog.Default()
	}
	src := rng.New(m.Seed)
	state := &model.GameState{
		Difficulty: m.Difficulty,
		Player:     deal(src, m),
		Enemy:      deal(src, m),
	}
	s := battle.NewSession(battle.NewEngine(f, src, logger), state)

	for s.Turn() < m.MaxTurns {
		if err := ctx.Err(); err != nil {
			return model.MatchReport{}, fmt.Errorf("match %s: %w", s.ID, err)
		}
		over, err := playRound(s)
		if err != nil {
			return model.MatchReport{}, fmt.Errorf("match %s: turn %d: %w", s.ID, s.Turn(), err)
		}
		if over {
			break
		}
		if err := s.EndTurn(); err != nil {
			return model.MatchReport{}, fmt.Errorf("match %s: ending turn %d: %w", s.ID, s.Turn(), err)
		}
	}

	winner, decided := s.Winner()
	final := s.State()
	return model.MatchReport{
		ID:              s.ID,
		Seed:            m.Seed,
		Difficulty:      final.Difficulty,
		Turns:           s.Turn(),
		Winner:          model.OutcomeFor(winner, decided),
		PlayerSurvivors: final.Player.Survivors(),
		EnemySurvivors:  final.Enemy.Survivors(),
		Log:             s.Log(),
		CreatedAt:       time.Now().UTC(),
	}, nil
}

// playRound lets both sides act and reports whether the match is decided.
func playRound(s *battle.Session) (bool, error) {
	for _, side := range []model.SideID{model.SidePlayer, model.SideEnemy} {
		if _, over := s.Winner(); over {
			return true, nil
		}
		if _, err := s.AutoPlay(side); err != nil {
			return false, fmt.Errorf("%s auto-play: %w", side, err)
		}
	}
	_, over := s.Winner()
	return over, nil
}

func deal(src *rand.Rand, m Match) model.Side {
	deck := append([]model.Card(nil), m.Deck...)
	src.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })
	n := min(m.HandSize, len(deck))
	return model.Side{
		Energy: m.Energy,
		Hand:   deck[:n:n],
		Deck:   deck[n:],
	}
}

// RunAll plays cfg.Matches matches, at most cfg.Concurrency at a time. Match
// i uses seed cfg.Seed+i; a zero cfg.Seed is replaced with a random one.
// Reports are returned in match order.
func RunAll(ctx context.Context, cfg config.BattleConfig, f formula.Formulas, logger *slog.Logger) ([]model.MatchReport, error) {
	if logger == nil {
		logger = slog.Default()
	}
	deck, err := BuildDeck(cfg.Deck)
	if err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		if seed, err = rng.NewSeed(); err != nil {
			return nil, err
		}
	}
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	reports := make([]model.MatchReport, cfg.Matches)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(cfg.Concurrency, 1))
	for i := range cfg.Matches {
		m := Match{
			Seed:       seed + uint64(i),
			Difficulty: cfg.Difficulty,
			MaxTurns:   cfg.MaxTurns,
			Deck:       deck,
			HandSize:   cfg.HandSize,
			Energy:     cfg.Energy,
		}
		g.Go(func() error {
			rep, err := Run(gctx, m, f, logger.With("seed", m.Seed))
			if err != nil {
				return err
			}
			reports[i] = rep
			logger.Info("match complete",
				"match", rep.ID,
				"seed", rep.Seed,
				"winner", rep.Winner,
				"turns", rep.Turns)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
