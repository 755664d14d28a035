package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/rocketscienceinc/tictactoe-learner/internal/agent"
	"github.com/rocketscienceinc/tictactoe-learner/internal/entity"
	"github.com/rocketscienceinc/tictactoe-learner/internal/game"
)

var (
	errRedisDown    = errors.New("redis down")
	errDiskFull     = errors.New("disk full")
	errPlayerBroken = errors.New("player broken")
)

type mockMatchRepo struct {
	mock.Mock
}

func (that *mockMatchRepo) CreateOrUpdate(ctx context.Context, match *entity.Match) error {
	return that.Called(ctx, match).Error(0)
}

type mockResultsLog struct {
	mock.Mock
}

func (that *mockResultsLog) Append(result *entity.BatchResult) error {
	return that.Called(result).Error(0)
}

type mockBatchRepo struct {
	mock.Mock
}

func (that *mockBatchRepo) Save(ctx context.Context, result *entity.BatchResult) error {
	return that.Called(ctx, result).Error(0)
}

// scriptedPlayer plays a fixed list of cells.
type scriptedPlayer struct {
	info  *entity.Player
	moves []string
	err   error
}

func newScriptedPlayer(mark entity.Mark, moves ...string) *scriptedPlayer {
	return &scriptedPlayer{
		info:  &entity.Player{Name: mark.String(), Mark: mark, Kind: entity.KindBot},
		moves: moves,
	}
}

func (that *scriptedPlayer) MakeTurn(_ context.Context, g *game.Game) error {
	if that.err != nil {
		return that.err
	}

	move := that.moves[0]
	that.moves = that.moves[1:]

	return g.Move(move)
}

func (that *scriptedPlayer) Info() *entity.Player {
	return that.info
}

func (that *scriptedPlayer) ThinkTime() time.Duration {
	return 3 * time.Millisecond
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func seededAgents() AgentFactory {
	var seed uint64
	return func() *agent.Agent {
		seed++
		return agent.New(agent.WithSeed(seed))
	}
}
