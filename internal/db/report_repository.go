package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Antigono00/pvp21/internal/model"
)

// ReportRepository архивирует итоги матчей.
type ReportRepository struct {
	db *pgxpool.Pool
}

// NewReportRepository creates a new ReportRepository.
func NewReportRepository(db *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{db: db}
}

const insertReport = `
	INSERT INTO battle_reports
		(report_id, seed, difficulty, turns, winner,
		 player_survivors, enemy_survivors, log, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`

// Save stores a report. A zero ID is replaced with a fresh one, a zero
// CreatedAt with the current time; the stored values are returned.
func (r *ReportRepository) Save(ctx context.Context, rep model.MatchReport) (model.MatchReport, error) {
	rep = prepare(rep)
	if _, err := r.db.Exec(ctx, insertReport, reportArgs(rep)...); err != nil {
		return rep, fmt.Errorf("saving report %s: %w", rep.ID, err)
	}
	return rep, nil
}

// SaveAll stores several reports in one batch inside a transaction.
func (r *ReportRepository) SaveAll(ctx context.Context, reps []model.MatchReport) error {
	if len(reps) == 0 {
		return nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			slog.Error("rollback report batch", "error", err)
		}
	}()

	batch := &pgx.Batch{}
	for _, rep := range reps {
		batch.Queue(insertReport, reportArgs(prepare(rep))...)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("saving %d reports: %w", len(reps), err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing reports: %w", err)
	}
	return nil
}

// Get loads a report by ID.
// Возвращает nil если отчёт не найден (не ошибка).
func (r *ReportRepository) Get(ctx context.Context, id uuid.UUID) (*model.MatchReport, error) {
	row := r.db.QueryRow(ctx, `
		SELECT report_id, seed, difficulty, turns, winner,
		       player_survivors, enemy_survivors, log, created_at
		FROM battle_reports
		WHERE report_id = $1
	`, id)

	rep, err := scanReport(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading report %s: %w", id, err)
	}
	return &rep, nil
}

// ListRecent returns up to limit reports, newest first.
func (r *ReportRepository) ListRecent(ctx context.Context, limit int) ([]model.MatchReport, error) {
	if limit <= 0 {
		return nil, nil
	}
	rows, err := r.db.Query(ctx, `
		SELECT report_id, seed, difficulty, turns, winner,
		       player_survivors, enemy_survivors, log, created_at
		FROM battle_reports
		ORDER BY created_at DESC, report_id
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying reports: %w", err)
	}
	defer rows.Close()

	result := make([]model.MatchReport, 0, limit)
	for rows.Next() {
		rep, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning report row: %w", err)
		}
		result = append(result, rep)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating report rows: %w", err)
	}
	return result, nil
}

// Tally counts archived matches per outcome.
func (r *ReportRepository) Tally(ctx context.Context) (map[model.Outcome]int, error) {
	rows, err := r.db.Query(ctx, `SELECT winner, COUNT(*) FROM battle_reports GROUP BY winner`)
	if err != nil {
		return nil, fmt.Errorf("querying outcome tally: %w", err)
	}
	defer rows.Close()

	out := make(map[model.Outcome]int, 3)
	for rows.Next() {
		var (
			winner string
			n      int
		)
		if err := rows.Scan(&winner, &n); err != nil {
			return nil, fmt.Errorf("scanning tally row: %w", err)
		}
		out[model.Outcome(winner)] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tally rows: %w", err)
	}
	return out, nil
}

func prepare(rep model.MatchReport) model.MatchReport {
	if rep.ID == uuid.Nil {
		rep.ID = uuid.New()
	}
	if rep.CreatedAt.IsZero() {
		rep.CreatedAt = time.Now().UTC()
	}
	if rep.Log == nil {
		rep.Log = []string{}
	}
	return rep
}

// seed хранится в BIGINT как битовая копия uint64.
func reportArgs(rep model.MatchReport) []any {
	return []any{
		rep.ID, int64(rep.Seed), string(rep.Difficulty), rep.Turns, string(rep.Winner),
		rep.PlayerSurvivors, rep.EnemySurvivors, rep.Log, rep.CreatedAt,
	}
}

func scanReport(row pgx.Row) (model.MatchReport, error) {
	var rep model.MatchReport
	var seed int64
	var difficulty, win string
	err := row.Scan(&rep.ID, &seed, &difficulty, &rep.Turns, &win,
		&rep.PlayerSurvivors, &rep.EnemySurvivors, &rep.Log, &rep.CreatedAt)
	if err != nil {
		return model.MatchReport{}, err
	}
	rep.Seed = uint64(seed)
	rep.Difficulty = model.Difficulty(difficulty)
	rep.Winner = model.Outcome(win)
	return rep, nil
}
