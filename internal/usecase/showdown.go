package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-learner/internal/agent"
	"github.com/rocketscienceinc/tictactoe-learner/internal/entity"
	"github.com/rocketscienceinc/tictactoe-learner/internal/service"
)

// AgentFactory - returns a fresh agent with empty memory.
type AgentFactory func() *agent.Agent

type resultsLog interface {
	Append(result *entity.BatchResult) error
}

type batchRepo interface {
	Save(ctx context.Context, result *entity.BatchResult) error
}

type ShowdownOptions struct {
	BatchSize  int
	MaxBatches int
	StartThink time.Duration
	StepThink  time.Duration
}

// Showdown - bot-vs-bot batches with a think budget that grows by one step per batch.
type Showdown struct {
	logger    *slog.Logger
	runner    *MatchRunner
	results   resultsLog
	batchRepo batchRepo
	newAgent  AgentFactory
	out       io.Writer
	opts      ShowdownOptions
}

// NewShowdown - batchRepo may be nil when no result store is configured.
func NewShowdown(
	logger *slog.Logger,
	runner *MatchRunner,
	results resultsLog,
	batchRepo batchRepo,
	newAgent AgentFactory,
	out io.Writer,
	opts ShowdownOptions,
) *Showdown {
	return &Showdown{
		logger:    logger.With("component", "showdown"),
		runner:    runner,
		results:   results,
		batchRepo: batchRepo,
		newAgent:  newAgent,
		out:       out,
		opts:      opts,
	}
}

// ThinkTime - per-move budget of the given batch index.
func (that *Showdown) ThinkTime(budget int) time.Duration {
	return that.opts.StartThink + time.Duration(budget)*that.opts.StepThink
}

// Run - plays batches from budget index start on. Returns nil when ctx is
// cancelled; the interrupted batch is not recorded.
func (that *Showdown) Run(ctx context.Context, start int) error {
	log := that.logger.With("method", "Run")

	for budget := start; that.opts.MaxBatches == 0 || budget < start+that.opts.MaxBatches; budget++ {
		thinkTime := that.ThinkTime(budget)

		result, err := that.RunBatch(ctx, thinkTime)
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			log.Info("showdown stopped", "budget", budget)
			return nil
		}

		if err != nil {
			return fmt.Errorf("failed to run batch %d: %w", budget, err)
		}

		if err = that.record(ctx, result); err != nil {
			return err
		}

		printBatchSummary(that.out, result)
		log.Info("batch finished",
			"think_time_ms", result.ThinkTimeMS,
			"elapsed_ms", result.ElapsedMS,
			"player1_wins", result.Player1Wins,
			"player2_wins", result.Player2Wins,
			"draws", result.Draws,
		)
	}

	return nil
}

// RunBatch - plays BatchSize matches between fresh agents and tallies them.
func (that *Showdown) RunBatch(ctx context.Context, thinkTime time.Duration) (*entity.BatchResult, error) {
	started := time.Now()
	thinkTimeMS := thinkTime.Milliseconds()

	var board entity.Scoreboard
	observer := &spectatorObserver{
		out: that.out,
		header: func(w io.Writer) {
			printScoreboard(w, thinkTimeMS, board)
		},
	}

	for range that.opts.BatchSize {
		players := [2]service.Player{
			service.NewBotPlayer("Player 1", entity.MarkX, that.newAgent(), thinkTime),
			service.NewBotPlayer("Player 2", entity.MarkO, that.newAgent(), thinkTime),
		}

		match, err := that.runner.Play(ctx, players, observer)
		if err != nil {
			return nil, fmt.Errorf("failed to play match: %w", err)
		}

		board.Add(match.Outcome)
	}

	return entity.NewBatchResult(thinkTime, time.Since(started), board), nil
}

func (that *Showdown) record(ctx context.Context, result *entity.BatchResult) error {
	if err := that.results.Append(result); err != nil {
		return fmt.Errorf("failed to append results: %w", err)
	}

	if that.batchRepo == nil {
		return nil
	}

	if err := that.batchRepo.Save(ctx, result); err != nil {
		that.logger.Error("failed to store batch result", "method", "record", "error", err)
	}

	return nil
}
