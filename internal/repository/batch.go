package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/rocketscienceinc/tictactoe-learner/internal/entity"
)

var ErrBatchNotFound = errors.New("batch result not found")

type BatchRepository interface {
	Save(ctx context.Context, result *entity.BatchResult) error
	GetByThinkTime(ctx context.Context, thinkTimeMS int64) (*entity.BatchResult, error)
	List(ctx context.Context) ([]entity.BatchResult, error)
}

type dbBatch struct {
	db *sqlx.DB
}

func NewBatchRepository(db *sqlx.DB) BatchRepository {
	return &dbBatch{
		db: db,
	}
}

// Save - a rerun of the same think time replaces the earlier row.
func (that *dbBatch) Save(ctx context.Context, result *entity.BatchResult) error {
	query := `INSERT OR REPLACE INTO batch_results
		(think_time_ms, elapsed_ms, games_played, player1_wins, player2_wins, draws, recorded_at)
		VALUES (:think_time_ms, :elapsed_ms, :games_played, :player1_wins, :player2_wins, :draws, :recorded_at)`

	if _, err := that.db.NamedExecContext(ctx, query, result); err != nil {
		return fmt.Errorf("failed to save batch result: %w", err)
	}

	return nil
}

func (that *dbBatch) GetByThinkTime(ctx context.Context, thinkTimeMS int64) (*entity.BatchResult, error) {
	var result entity.BatchResult

	err := that.db.GetContext(ctx, &result, `SELECT * FROM batch_results WHERE think_time_ms = ?`, thinkTimeMS)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBatchNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get batch result: %w", err)
	}

	return &result, nil
}

func (that *dbBatch) List(ctx context.Context) ([]entity.BatchResult, error) {
	var results []entity.BatchResult

	if err := that.db.SelectContext(ctx, &results, `SELECT * FROM batch_results ORDER BY think_time_ms`); err != nil {
		return nil, fmt.Errorf("failed to list batch results: %w", err)
	}

	return results, nil
}
