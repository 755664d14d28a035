package application

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/tictactoe-learner/internal/agent"
	"github.com/rocketscienceinc/tictactoe-learner/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-learner/internal/config"
	"github.com/rocketscienceinc/tictactoe-learner/internal/repository"
	"github.com/rocketscienceinc/tictactoe-learner/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-learner/internal/results"
	"github.com/rocketscienceinc/tictactoe-learner/internal/usecase"
)

// shutdownTimeout - how long a running mode gets to finish after a signal.
const shutdownTimeout = 2 * time.Second

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	var matchRepo repository.MatchRepository
	if conf.Redis.Enabled {
		redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err = redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		matchRepo = repository.NewMatchRepository(redisStorage.Connection)
	}

	runner := usecase.NewMatchRunner(logger, matchRepo)
	newAgent := agentFactory(logger, conf.Seed)

	var run func(ctx context.Context) error
	switch conf.Mode {
	case config.ModePlay:
		session := usecase.NewSession(logger, runner, newAgent, conf.Think.BotTime, os.Stdin, os.Stdout)
		run = func(ctx context.Context) error {
			_, err := session.PlayAgainstBot(ctx)
			return err
		}
	case config.ModeWatch:
		session := usecase.NewSession(logger, runner, newAgent, conf.Think.BotTime, os.Stdin, os.Stdout)
		run = func(ctx context.Context) error {
			_, err := session.Watch(ctx)
			return err
		}
	case config.ModeShowdown:
		showdown, start, closeFn, err := newShowdown(ctx, logger, conf, runner, newAgent)
		if err != nil {
			return err
		}
		defer closeFn()

		run = func(ctx context.Context) error {
			return showdown.Run(ctx, start)
		}
	default:
		return fmt.Errorf("%w: %q", apperror.ErrUnknownMode, conf.Mode)
	}

	log.Info("Starting", "mode", conf.Mode)

	errCh := make(chan error, 1)
	go func() {
		errCh <- run(ctx)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("%s failed: %w", conf.Mode, err)
		}
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
	}

	// stdin reads can't be interrupted, so don't wait forever
	select {
	case err := <-errCh:
		if err != nil {
			log.Error("mode stopped with error", "error", err)
		}
	case <-time.After(shutdownTimeout):
		log.Warn("mode did not stop in time", "timeout", shutdownTimeout)
	}

	return nil
}

func newShowdown(
	ctx context.Context,
	logger *slog.Logger,
	conf *config.Config,
	runner *usecase.MatchRunner,
	newAgent usecase.AgentFactory,
) (*usecase.Showdown, int, func(), error) {
	log := logger.With("component", "app", "method", "newShowdown")

	resultsLog, start, err := results.Open(conf.Showdown.ResultsPath)
	if err != nil {
		return nil, 0, nil, fmt.Errorf("could not open results log: %w", err)
	}

	closeFn := func() {}

	var batchRepo repository.BatchRepository
	if conf.SQLiteStoragePath != "" {
		sqliteStorage, err := storage.NewSQLiteStorage(ctx, conf.SQLiteStoragePath)
		if err != nil {
			return nil, 0, nil, fmt.Errorf("could not open sqlite storage: %w", err)
		}

		if err = sqliteStorage.Init(ctx); err != nil {
			_ = sqliteStorage.Close()
			return nil, 0, nil, fmt.Errorf("could not init sqlite storage: %w", err)
		}

		closeFn = func() {
			if err := sqliteStorage.Close(); err != nil {
				log.Error("could not close sqlite storage", "error", err)
			}
		}

		batchRepo = repository.NewBatchRepository(sqliteStorage.Connection)
	}

	log.Info("Resuming showdown", "results", resultsLog.Path(), "budget", start)

	showdown := usecase.NewShowdown(logger, runner, resultsLog, batchRepo, newAgent, os.Stdout, usecase.ShowdownOptions{
		BatchSize:  conf.Showdown.BatchSize,
		MaxBatches: conf.Showdown.MaxBatches,
		StartThink: conf.Think.ShowdownStart,
		StepThink:  conf.Think.ShowdownStep,
	})

	return showdown, start, closeFn, nil
}

// agentFactory - every agent gets its own seed drawn from one master source,
// so a fixed config seed replays the same games.
func agentFactory(logger *slog.Logger, seed uint64) usecase.AgentFactory {
	if seed == 0 {
		seed = rand.Uint64()
	}

	master := rand.New(rand.NewPCG(seed, seed))

	return func() *agent.Agent {
		return agent.New(
			agent.WithLogger(logger),
			agent.WithSeed(master.Uint64()),
		)
	}
}
