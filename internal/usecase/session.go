package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-learner/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-learner/internal/entity"
	"github.com/rocketscienceinc/tictactoe-learner/internal/game"
	"github.com/rocketscienceinc/tictactoe-learner/internal/service"
)

// Session - a single game on the terminal, either human vs bot or bot vs bot.
type Session struct {
	logger    *slog.Logger
	runner    *MatchRunner
	newAgent  AgentFactory
	thinkTime time.Duration
	in        io.Reader
	out       io.Writer
}

func NewSession(
	logger *slog.Logger,
	runner *MatchRunner,
	newAgent AgentFactory,
	thinkTime time.Duration,
	in io.Reader,
	out io.Writer,
) *Session {
	return &Session{
		logger:    logger.With("component", "session"),
		runner:    runner,
		newAgent:  newAgent,
		thinkTime: thinkTime,
		in:        in,
		out:       out,
	}
}

// PlayAgainstBot - the human plays x and moves first. Closing the input ends
// the session without an error.
func (that *Session) PlayAgainstBot(ctx context.Context) (*entity.Match, error) {
	players := [2]service.Player{
		service.NewHumanPlayer("You", entity.MarkX, that.in, that.out),
		service.NewBotPlayer("Bot", entity.MarkO, that.newAgent(), that.thinkTime),
	}

	game.ClearScreen(that.out)

	match, err := that.runner.Play(ctx, players, &humanObserver{out: that.out, botSeat: 1})
	if errors.Is(err, apperror.ErrInputClosed) {
		that.logger.Info("player left the game", "method", "PlayAgainstBot")
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to play against bot: %w", err)
	}

	that.printResult(match, humanVerdict(match.Outcome))

	return match, nil
}

// Watch - two fresh bots play one match with the board redrawn every turn.
func (that *Session) Watch(ctx context.Context) (*entity.Match, error) {
	players := [2]service.Player{
		service.NewBotPlayer("Player 1", entity.MarkX, that.newAgent(), that.thinkTime),
		service.NewBotPlayer("Player 2", entity.MarkO, that.newAgent(), that.thinkTime),
	}

	match, err := that.runner.Play(ctx, players, &spectatorObserver{out: that.out})
	if err != nil {
		return nil, fmt.Errorf("failed to watch match: %w", err)
	}

	game.ClearScreen(that.out)
	that.printResult(match, spectatorVerdict(match.Outcome))

	return match, nil
}

func (that *Session) printResult(match *entity.Match, verdict string) {
	final, err := game.FromState(match.State, entity.MarkX)
	if err != nil {
		that.logger.Error("failed to restore final board", "error", err)
	} else {
		game.Render(that.out, final)
	}

	fmt.Fprintln(that.out, verdict)
}
