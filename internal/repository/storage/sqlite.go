package storage

import (
	"context"
	"fmt"

	// import the pure Go SQLite driver to register it with the database/sql package.
	_ "github.com/glebarez/go-sqlite"
	"github.com/jmoiron/sqlx"
)

const sqliteDriver = "sqlite"

const batchResultsSchema = `
CREATE TABLE IF NOT EXISTS batch_results (
	think_time_ms INTEGER PRIMARY KEY,
	elapsed_ms    INTEGER NOT NULL,
	games_played  INTEGER NOT NULL,
	player1_wins  INTEGER NOT NULL,
	player2_wins  INTEGER NOT NULL,
	draws         INTEGER NOT NULL,
	recorded_at   TIMESTAMP NOT NULL
)`

type SQLiteStorage struct {
	Connection *sqlx.DB
}

func NewSQLiteStorage(ctx context.Context, path string) (*SQLiteStorage, error) {
	conn, err := sqlx.Open(sqliteDriver, path)
	if err != nil {
		return nil, fmt.Errorf("can't open database: %w", err)
	}

	if err = conn.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("can't connect to database: %w", err)
	}

	return &SQLiteStorage{Connection: conn}, nil
}

// Init - creates the tables if they don't exist.
func (that *SQLiteStorage) Init(ctx context.Context) error {
	if _, err := that.Connection.ExecContext(ctx, batchResultsSchema); err != nil {
		return fmt.Errorf("can't create table: %w", err)
	}

	return nil
}

func (that *SQLiteStorage) Close() error {
	if err := that.Connection.Close(); err != nil {
		return fmt.Errorf("can't close database: %w", err)
	}

	return nil
}
