package model

import (
	"time"

	"github.com/google/uuid"
)

// Outcome of a finished (or abandoned) match.
type Outcome string

const (
	OutcomePlayer Outcome = "player"
	OutcomeEnemy  Outcome = "enemy"
	OutcomeDraw   Outcome = "draw" // turn limit reached
)

// OutcomeFor converts a session winner into an Outcome.
func OutcomeFor(winner SideID, decided bool) Outcome {
	if !decided {
		return OutcomeDraw
	}
	if winner == SidePlayer {
		return OutcomePlayer
	}
	return OutcomeEnemy
}

// MatchReport — итог одного матча для архива.
type MatchReport struct {
	ID              uuid.UUID
	Seed            uint64
	Difficulty      Difficulty
	Turns           int
	Winner          Outcome
	PlayerSurvivors int
	EnemySurvivors  int
	Log             []string
	CreatedAt       time.Time
}

// Survivors counts living creatures on a side's field.
func (s Side) Survivors() int {
	n := 0
	for _, c := range s.Field {
		if c != nil && !c.IsDefeated() {
			n++
		}
	}
	return n
}
