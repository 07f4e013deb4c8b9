package db_test

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Antigono00/pvp21/internal/db"
	"github.com/Antigono00/pvp21/internal/model"
	"github.com/Antigono00/pvp21/internal/testutil"
)

func TestReportRepository(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	repo := db.NewReportRepository(pool)
	ctx := context.Background()

	t.Run("save and get", func(t *testing.T) {
		saved, err := repo.Save(ctx, model.MatchReport{
			Seed:            math.MaxUint64,
			Difficulty:      model.DifficultyHard,
			Turns:           12,
			Winner:          model.OutcomePlayer,
			PlayerSurvivors: 2,
			Log:             []string{"player summons Emberfox (common).", "The player side wins!"},
		})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, saved.ID)
		assert.False(t, saved.CreatedAt.IsZero())

		got, err := repo.Get(ctx, saved.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, uint64(math.MaxUint64), got.Seed)
		assert.Equal(t, model.DifficultyHard, got.Difficulty)
		assert.Equal(t, 12, got.Turns)
		assert.Equal(t, model.OutcomePlayer, got.Winner)
		assert.Equal(t, 2, got.PlayerSurvivors)
		assert.Equal(t, saved.Log, got.Log)
	})

	t.Run("missing report", func(t *testing.T) {
		got, err := repo.Get(ctx, uuid.New())
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("batch and listing", func(t *testing.T) {
		base := time.Now().UTC().Add(time.Hour)
		reps := []model.MatchReport{
			{Seed: 1, Difficulty: model.DifficultyEasy, Turns: 3, Winner: model.OutcomeEnemy, CreatedAt: base},
			{Seed: 2, Difficulty: model.DifficultyEasy, Turns: 50, Winner: model.OutcomeDraw, CreatedAt: base.Add(time.Minute)},
		}
		require.NoError(t, repo.SaveAll(ctx, reps))

		recent, err := repo.ListRecent(ctx, 2)
		require.NoError(t, err)
		require.Len(t, recent, 2)
		assert.Equal(t, uint64(2), recent[0].Seed)
		assert.Equal(t, uint64(1), recent[1].Seed)
		assert.Empty(t, recent[0].Log)

		tally, err := repo.Tally(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, tally[model.OutcomePlayer])
		assert.Equal(t, 1, tally[model.OutcomeEnemy])
		assert.Equal(t, 1, tally[model.OutcomeDraw])
	})

	t.Run("empty inputs", func(t *testing.T) {
		require.NoError(t, repo.SaveAll(ctx, nil))
		got, err := repo.ListRecent(ctx, 0)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestRunMigrations_Idempotent(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	dsn := pool.Config().ConnString()

	version, err := db.RunMigrations(context.Background(), dsn)
	require.NoError(t, err)
	assert.Equal(t, int64(2), version)
}
