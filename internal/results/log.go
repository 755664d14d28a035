package results

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/rocketscienceinc/tictactoe-learner/internal/entity"
)

const Header = "thinking time (ms),total time (ms),games played,player 1 wins,player 2 wins,draws"

// Log - append-only CSV file with one row per finished showdown batch.
type Log struct {
	path string
}

// Open - creates the file with its header when missing. Returns the budget
// index to resume from, which is the index of the last line (header is 0).
func Open(path string) (*Log, int, error) {
	lines, err := countLines(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, 0, fmt.Errorf("failed to read results log: %w", err)
	}

	if lines == 0 {
		if err = os.WriteFile(path, []byte(Header+"\n"), 0o644); err != nil { //nolint: gosec // results are public
			return nil, 0, fmt.Errorf("failed to create results log: %w", err)
		}

		return &Log{path: path}, 0, nil
	}

	return &Log{path: path}, lines - 1, nil
}

func (that *Log) Path() string {
	return that.path
}

// Append - writes one row: think time, elapsed time, games, p1 wins, p2 wins, draws.
func (that *Log) Append(result *entity.BatchResult) error {
	file, err := os.OpenFile(that.path, os.O_APPEND|os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("failed to open results log: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err = writer.Write(row(result)); err != nil {
		return fmt.Errorf("failed to write results row: %w", err)
	}

	writer.Flush()
	if err = writer.Error(); err != nil {
		return fmt.Errorf("failed to flush results row: %w", err)
	}

	return nil
}

func row(result *entity.BatchResult) []string {
	return []string{
		strconv.FormatInt(result.ThinkTimeMS, 10),
		strconv.FormatInt(result.ElapsedMS, 10),
		strconv.Itoa(result.GamesPlayed),
		strconv.Itoa(result.Player1Wins),
		strconv.Itoa(result.Player2Wins),
		strconv.Itoa(result.Draws),
	}
}

func countLines(path string) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	lines := 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines++
	}

	if err = scanner.Err(); err != nil {
		return 0, err
	}

	return lines, nil
}
