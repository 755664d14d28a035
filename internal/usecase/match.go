package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-learner/internal/entity"
	"github.com/rocketscienceinc/tictactoe-learner/internal/game"
	"github.com/rocketscienceinc/tictactoe-learner/internal/service"
)

type matchRepo interface {
	CreateOrUpdate(ctx context.Context, match *entity.Match) error
}

// Observer - hooks around every turn of a match. seat is 0 for player 1.
type Observer interface {
	BeforeTurn(g *game.Game, seat int)
	AfterTurn(g *game.Game, seat int)
}

type nopObserver struct{}

func (nopObserver) BeforeTurn(*game.Game, int) {}
func (nopObserver) AfterTurn(*game.Game, int)  {}

type timedPlayer interface {
	ThinkTime() time.Duration
}

// MatchRunner - plays one match between two players and archives it.
type MatchRunner struct {
	logger    *slog.Logger
	matchRepo matchRepo
}

// NewMatchRunner - matchRepo may be nil when no archive is configured.
func NewMatchRunner(logger *slog.Logger, matchRepo matchRepo) *MatchRunner {
	return &MatchRunner{
		logger:    logger.With("component", "match-runner"),
		matchRepo: matchRepo,
	}
}

// Play - player 1 is x and moves first. Alternates turns until the game is over.
func (that *MatchRunner) Play(ctx context.Context, players [2]service.Player, observer Observer) (*entity.Match, error) {
	if observer == nil {
		observer = nopObserver{}
	}

	match := &entity.Match{
		ID:        uuid.NewString(),
		Players:   []*entity.Player{players[0].Info(), players[1].Info()},
		StartedAt: time.Now().UTC(),
	}
	if timed, ok := players[0].(timedPlayer); ok {
		match.ThinkTime = timed.ThinkTime()
	}

	g := game.New()
	for turn := 0; !g.IsOver(); turn++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("match %s interrupted: %w", match.ID, err)
		}

		seat := turn % 2
		observer.BeforeTurn(g, seat)

		if err := players[seat].MakeTurn(ctx, g); err != nil {
			return nil, fmt.Errorf("player %d failed to make turn: %w", seat+1, err)
		}

		if move, ok := g.LastMove(); ok {
			match.Moves = append(match.Moves, move)
		}

		observer.AfterTurn(g, seat)
	}

	match.State = g.State()
	match.FinishedAt = time.Now().UTC()
	match.Outcome, match.Winner = outcomeOf(g)

	that.archive(ctx, match)

	return match, nil
}

func outcomeOf(g *game.Game) (entity.Outcome, string) {
	switch {
	case g.IsWin(entity.MarkX):
		return entity.OutcomePlayer1, entity.MarkX.String()
	case g.IsWin(entity.MarkO):
		return entity.OutcomePlayer2, entity.MarkO.String()
	default:
		return entity.OutcomeDraw, entity.WinnerNone
	}
}

func (that *MatchRunner) archive(ctx context.Context, match *entity.Match) {
	if that.matchRepo == nil {
		return
	}

	log := that.logger.With("method", "archive", "match", match.ID)

	if err := that.matchRepo.CreateOrUpdate(ctx, match); err != nil {
		log.Error("failed to archive match", "error", err)
		return
	}

	log.Debug("match archived", "outcome", match.Outcome.String())
}
