package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-learner/internal/entity"
	"github.com/rocketscienceinc/tictactoe-learner/internal/game"
)

func TestStats_WinRate(t *testing.T) {
	t.Run("Unplayed move is neutral", func(t *testing.T) {
		stats := &Stats{}

		assert.InDelta(t, 0.5, stats.WinRate(), 0)
	})

	t.Run("Score over count", func(t *testing.T) {
		stats := &Stats{Score: 1.5, Count: 2}

		assert.InDelta(t, 0.75, stats.WinRate(), 1e-9)
	})

	t.Run("Zero score", func(t *testing.T) {
		stats := &Stats{Score: 0, Count: 3}

		assert.InDelta(t, 0.0, stats.WinRate(), 0)
	})
}

func TestMemory_GetOrInit(t *testing.T) {
	t.Run("Creates a record per legal move", func(t *testing.T) {
		// Given: an empty memory and a board with two marks
		memory := NewMemory()
		g, err := game.FromState("x___o____", entity.MarkX)
		require.NoError(t, err)

		// When: the state is initialised
		entry := memory.GetOrInit(g)

		// Then: each empty cell has a zeroed record in ascending order
		assert.Equal(t, []string{"2", "3", "4", "6", "7", "8", "9"}, entry.Moves())
		for _, move := range entry.Moves() {
			stats, ok := entry.Get(move)
			require.True(t, ok)
			assert.Equal(t, Stats{}, *stats)
		}
		assert.Equal(t, 1, memory.Len())
	})

	t.Run("Returns the existing entry", func(t *testing.T) {
		memory := NewMemory()
		g := game.New()

		first := memory.GetOrInit(g)
		first.records["1"].Count = 7

		second := memory.GetOrInit(g)

		assert.Same(t, first, second)
		assert.Equal(t, 7, second.records["1"].Count)
		assert.Equal(t, 1, memory.Len())
	})

	t.Run("Lookup misses unknown state", func(t *testing.T) {
		memory := NewMemory()

		_, ok := memory.Lookup("_________")

		assert.False(t, ok)
	})
}

func TestMemory_Snapshot(t *testing.T) {
	// Given: a memory with one touched record
	memory := NewMemory()
	entry := memory.GetOrInit(game.New())
	entry.records["5"].Score = 2
	entry.records["5"].Count = 3

	// When: taking a snapshot and mutating the memory afterwards
	snapshot := memory.Snapshot()
	entry.records["5"].Count = 10

	// Then: the snapshot keeps the old values
	assert.Equal(t, Stats{Score: 2, Count: 3}, snapshot["_________"]["5"])
	assert.Len(t, snapshot["_________"], 9)
}
