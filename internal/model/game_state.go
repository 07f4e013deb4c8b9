package model

// Difficulty — уровень сложности матча.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
	DifficultyExpert Difficulty = "expert"
)

// Valid reports whether d is a known difficulty.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyExpert:
		return true
	}
	return false
}

// OrDefault returns d, or medium when d is unknown.
func (d Difficulty) OrDefault() Difficulty {
	if d.Valid() {
		return d
	}
	return DifficultyMedium
}

// SideID identifies one of the two sides of a match.
type SideID int8

const (
	SidePlayer SideID = iota
	SideEnemy
)

// Opponent returns the other side.
func (s SideID) Opponent() SideID {
	if s == SidePlayer {
		return SideEnemy
	}
	return SidePlayer
}

func (s SideID) String() string {
	if s == SidePlayer {
		return "player"
	}
	return "enemy"
}

// Side is one participant's board: field, hand, deck and energy pool.
type Side struct {
	Field  []*Creature
	Hand   []Card
	Deck   []Card
	Energy int
}

func (s Side) clone() Side {
	out := Side{Energy: s.Energy}
	if s.Field != nil {
		out.Field = make([]*Creature, len(s.Field))
		for i, c := range s.Field {
			out.Field[i] = c.Clone()
		}
	}
	if s.Hand != nil {
		out.Hand = append([]Card(nil), s.Hand...)
	}
	if s.Deck != nil {
		out.Deck = append([]Card(nil), s.Deck...)
	}
	return out
}

// GameState is the whole in-memory state of one match.
type GameState struct {
	Player     Side
	Enemy      Side
	Turn       int
	Difficulty Difficulty

	// TurnInProgress guards the turn orchestrator against re-entry.
	TurnInProgress bool
}

// Clone returns a deep copy of the state.
func (g *GameState) Clone() *GameState {
	if g == nil {
		return nil
	}
	out := *g
	out.Player = g.Player.clone()
	out.Enemy = g.Enemy.clone()
	return &out
}

// Side returns a pointer to the requested side.
func (g *GameState) Side(id SideID) *Side {
	if id == SidePlayer {
		return &g.Player
	}
	return &g.Enemy
}

// AllCreatures returns both fields' creatures, player first.
func (g *GameState) AllCreatures() []*Creature {
	out := make([]*Creature, 0, len(g.Player.Field)+len(g.Enemy.Field))
	out = append(out, g.Player.Field...)
	return append(out, g.Enemy.Field...)
}
