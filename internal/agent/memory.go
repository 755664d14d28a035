package agent

import "github.com/rocketscienceinc/tictactoe-learner/internal/game"

// neutralWinRate is the prior for a move that was never played.
const neutralWinRate = 0.5

// Stats - accumulated score and play count of one (state, move) pair.
type Stats struct {
	Score float64
	Count int
}

func (that *Stats) WinRate() float64 {
	if that.Count == 0 {
		return neutralWinRate
	}

	return that.Score / float64(that.Count)
}

// StateStats - statistics for every move that was legal when the state was first seen.
type StateStats struct {
	moves   []string
	records map[string]*Stats
}

// Moves - candidate moves in ascending cell order.
func (that *StateStats) Moves() []string {
	return that.moves
}

func (that *StateStats) Get(move string) (*Stats, bool) {
	stats, ok := that.records[move]
	return stats, ok
}

// Memory - state string to move statistics. Grows for the lifetime of the agent.
type Memory struct {
	states map[string]*StateStats
}

func NewMemory() *Memory {
	return &Memory{
		states: make(map[string]*StateStats),
	}
}

// GetOrInit - returns the entry for the game's current state, creating one
// zeroed record per legal move on first visit.
func (that *Memory) GetOrInit(g *game.Game) *StateStats {
	state := g.State()
	if entry, ok := that.states[state]; ok {
		return entry
	}

	entry := &StateStats{records: make(map[string]*Stats)}
	for move := range g.ValidMoves() {
		entry.moves = append(entry.moves, move)
		entry.records[move] = &Stats{}
	}
	that.states[state] = entry

	return entry
}

func (that *Memory) Lookup(state string) (*StateStats, bool) {
	entry, ok := that.states[state]
	return entry, ok
}

func (that *Memory) Len() int {
	return len(that.states)
}

// Snapshot - copy of the whole table, for inspection and comparison.
func (that *Memory) Snapshot() map[string]map[string]Stats {
	snapshot := make(map[string]map[string]Stats, len(that.states))
	for state, entry := range that.states {
		records := make(map[string]Stats, len(entry.records))
		for move, stats := range entry.records {
			records[move] = *stats
		}
		snapshot[state] = records
	}

	return snapshot
}
