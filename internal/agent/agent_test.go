package agent

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-learner/internal/entity"
	"github.com/rocketscienceinc/tictactoe-learner/internal/game"
)

const emptyState = "_________"

func TestAgent_Think(t *testing.T) {
	t.Run("Learns the empty board", func(t *testing.T) {
		// Given: a fresh agent and an empty board
		bot := New(WithSeed(1))
		g := game.New()

		// When: thinking for 50ms
		bot.Think(context.Background(), g, 50*time.Millisecond)

		// Then: a move for the empty board is known
		move, err := bot.NextMove(emptyState)
		require.NoError(t, err)
		assert.Contains(t, []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"}, move)

		stats := bot.LastThink()
		assert.Positive(t, stats.Simulations)
		assert.GreaterOrEqual(t, stats.Duration, 50*time.Millisecond)
		assert.Equal(t, bot.Memory().Len(), stats.States)
	})

	t.Run("Runs at least one simulation", func(t *testing.T) {
		// Given: a context that is already cancelled and no time budget
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		bot := New(WithSeed(2))

		// When: thinking
		bot.Think(ctx, game.New(), 0)

		// Then: exactly one simulation ran
		assert.Equal(t, 1, bot.LastThink().Simulations)

		_, err := bot.NextMove(emptyState)
		require.NoError(t, err)
	})

	t.Run("Does not touch the real game", func(t *testing.T) {
		bot := New(WithSeed(3))
		g, err := game.FromState("x___o____", entity.MarkX)
		require.NoError(t, err)

		bot.Think(context.Background(), g, 5*time.Millisecond)

		assert.Equal(t, "x___o____", g.State())
		assert.Equal(t, entity.MarkX, g.CurrentTurn())
	})
}

func TestAgent_NextMove(t *testing.T) {
	t.Run("Unvisited state", func(t *testing.T) {
		// Given: an agent that never thought
		bot := New()

		// When: asking for a move
		_, err := bot.NextMove(emptyState)

		// Then: ErrStateNotVisited should be returned
		require.ErrorIs(t, err, ErrStateNotVisited)
	})

	t.Run("Ties go to the lowest cell", func(t *testing.T) {
		bot := New()
		bot.Memory().GetOrInit(game.New())

		move, err := bot.NextMove(emptyState)

		require.NoError(t, err)
		assert.Equal(t, "1", move)
	})

	t.Run("Highest win rate", func(t *testing.T) {
		bot := New()
		entry := bot.Memory().GetOrInit(game.New())
		entry.records["5"].Score, entry.records["5"].Count = 3, 4
		entry.records["9"].Score, entry.records["9"].Count = 3, 4
		entry.records["1"].Score, entry.records["1"].Count = 1, 4

		move, err := bot.NextMove(emptyState)

		require.NoError(t, err)
		assert.Equal(t, "5", move)
	})

	t.Run("Finds the winning move", func(t *testing.T) {
		// Given: x can complete the top row
		bot := New(WithSeed(4))
		g, err := game.FromState("xx_oo____", entity.MarkX)
		require.NoError(t, err)

		// When: training from that position
		bot.Train(g, 2000)

		// Then: the winning cell is preferred
		move, err := bot.NextMove(g.State())
		require.NoError(t, err)
		assert.Equal(t, "3", move)
	})
}

func TestAgent_Determinism(t *testing.T) {
	// Given: two agents with the same seed
	first := New(WithSeed(42))
	second := New(WithSeed(42))

	// When: both run the same simulations
	first.Train(game.New(), 500)
	second.Train(game.New(), 500)

	// Then: their memories match exactly
	require.Equal(t, first.Memory().Snapshot(), second.Memory().Snapshot())

	// Then: a different seed learns something else
	other := New(WithRand(rand.New(rand.NewPCG(7, 7))))
	other.Train(game.New(), 500)
	assert.NotEqual(t, first.Memory().Snapshot(), other.Memory().Snapshot())
}

func TestAgent_simulate(t *testing.T) {
	t.Run("Winning last move gets full credit", func(t *testing.T) {
		// Given: x completes the top row with the only empty cell
		bot := New(WithSeed(5))
		g, err := game.FromState("xx_ooxxoo", entity.MarkX)
		require.NoError(t, err)

		// When: one simulation runs
		bot.simulate(g)

		// Then: the move scored 1.0 once
		entry, ok := bot.Memory().Lookup("xx_ooxxoo")
		require.True(t, ok)
		stats, ok := entry.Get("3")
		require.True(t, ok)
		assert.Equal(t, Stats{Score: 1, Count: 1}, *stats)
		assert.True(t, g.IsWin(entity.MarkX))
	})

	t.Run("Every visited pair is counted", func(t *testing.T) {
		bot := New(WithSeed(6))

		bot.simulate(game.New())

		total := 0
		for _, records := range bot.Memory().Snapshot() {
			for _, stats := range records {
				total += stats.Count
				assert.GreaterOrEqual(t, stats.Score, 0.0)
			}
		}
		assert.Equal(t, bot.Memory().Len(), total)
		assert.GreaterOrEqual(t, total, 5)
	})
}

func TestCredit(t *testing.T) {
	// Given: three moves made by the losing side
	steps := []step{{stats: &Stats{}}, {stats: &Stats{}}, {stats: &Stats{}}}

	// When: crediting a loss
	credit(steps, -1)

	// Then: the last move carries the full penalty, earlier ones less
	assert.InDelta(t, 0.5-0.5/3, steps[0].stats.Score, 1e-9)
	assert.InDelta(t, 0.25, steps[1].stats.Score, 1e-9)
	assert.InDelta(t, 0.0, steps[2].stats.Score, 1e-9)
	for _, s := range steps {
		assert.Equal(t, 1, s.stats.Count)
	}
}

func TestAgent_pickMove(t *testing.T) {
	t.Run("Zero weights fall back to uniform", func(t *testing.T) {
		bot := New(WithSeed(8))
		entry := bot.Memory().GetOrInit(game.New())
		for _, stats := range entry.records {
			stats.Count = 1
		}

		move := bot.pickMove(entry)

		assert.Contains(t, entry.Moves(), move)
	})

	t.Run("Zero weight move is never picked", func(t *testing.T) {
		bot := New(WithSeed(9))
		g, err := game.FromState("xoxoxo___", entity.MarkX)
		require.NoError(t, err)
		entry := bot.Memory().GetOrInit(g)
		entry.records["7"].Count = 5

		for range 200 {
			assert.NotEqual(t, "7", bot.pickMove(entry))
		}
	})
}
