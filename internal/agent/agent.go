package agent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/rocketscienceinc/tictactoe-learner/internal/game"
)

var ErrStateNotVisited = errors.New("state was never visited")

// ThinkStats - summary of the most recent Think call.
type ThinkStats struct {
	Simulations int
	Duration    time.Duration
	States      int
}

// Agent - learns move win rates from randomized self-play.
// Not safe for concurrent use.
type Agent struct {
	logger *slog.Logger
	rng    *rand.Rand
	memory *Memory
	last   ThinkStats
}

type Option func(*Agent)

// WithRand - injects the random source used for move sampling.
func WithRand(rng *rand.Rand) Option {
	return func(a *Agent) {
		a.rng = rng
	}
}

// WithSeed - deterministic random source for reproducible learning.
func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed)))
}

func WithLogger(logger *slog.Logger) Option {
	return func(a *Agent) {
		a.logger = logger
	}
}

func New(opts ...Option) *Agent {
	a := &Agent{
		logger: slog.New(slog.DiscardHandler),
		memory: NewMemory(),
	}

	for _, opt := range opts {
		opt(a)
	}

	if a.rng == nil {
		a.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	a.logger = a.logger.With("component", "agent")

	return a
}

// Think - runs simulations from clones of g until limit has elapsed or ctx is done.
// At least one simulation always runs.
func (that *Agent) Think(ctx context.Context, g *game.Game, limit time.Duration) {
	started := time.Now()

	simulations := 0
	for {
		that.simulate(g.Clone())
		simulations++

		if time.Since(started) > limit || ctx.Err() != nil {
			break
		}
	}

	that.last = ThinkStats{
		Simulations: simulations,
		Duration:    time.Since(started),
		States:      that.memory.Len(),
	}

	that.logger.Debug("finished thinking",
		"method", "Think",
		"state", g.State(),
		"simulations", that.last.Simulations,
		"duration", that.last.Duration,
		"states", that.last.States,
	)
}

// Train - runs exactly n simulations from clones of g.
func (that *Agent) Train(g *game.Game, n int) {
	for range n {
		that.simulate(g.Clone())
	}
}

// NextMove - move with the strictly highest win rate for state. Among equal
// win rates the lowest cell wins.
func (that *Agent) NextMove(state string) (string, error) {
	entry, ok := that.memory.Lookup(state)
	if !ok || len(entry.moves) == 0 {
		return "", fmt.Errorf("%w: %s", ErrStateNotVisited, state)
	}

	best := entry.moves[0]
	bestRate := entry.records[best].WinRate()
	for _, move := range entry.moves[1:] {
		if rate := entry.records[move].WinRate(); rate > bestRate {
			best, bestRate = move, rate
		}
	}

	return best, nil
}

func (that *Agent) Memory() *Memory {
	return that.memory
}

func (that *Agent) LastThink() ThinkStats {
	return that.last
}
