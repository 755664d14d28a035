package usecase

import (
	"fmt"
	"io"

	"github.com/rocketscienceinc/tictactoe-learner/internal/entity"
	"github.com/rocketscienceinc/tictactoe-learner/internal/game"
)

// spectatorObserver draws the board before each bot turn, optionally under a header.
type spectatorObserver struct {
	out    io.Writer
	header func(w io.Writer)
}

func (that *spectatorObserver) BeforeTurn(g *game.Game, seat int) {
	game.ClearScreen(that.out)
	if that.header != nil {
		that.header(that.out)
	}

	game.Render(that.out, g)
	fmt.Fprintf(that.out, "Player %d is thinking...\n", seat+1)
}

func (that *spectatorObserver) AfterTurn(*game.Game, int) {}

// humanObserver announces the bot and wipes the screen after every turn.
type humanObserver struct {
	out     io.Writer
	botSeat int
}

func (that *humanObserver) BeforeTurn(_ *game.Game, seat int) {
	if seat == that.botSeat {
		fmt.Fprintln(that.out, "thinking...")
	}
}

func (that *humanObserver) AfterTurn(*game.Game, int) {
	game.ClearScreen(that.out)
}

func printScoreboard(w io.Writer, thinkTimeMS int64, board entity.Scoreboard) {
	fmt.Fprintf(w, "Time: %dms\tPlayer 1: %d\tPlayer 2: %d\tDraws: %d\n",
		thinkTimeMS, board.Player1Wins, board.Player2Wins, board.Draws)
}

func printBatchSummary(w io.Writer, result *entity.BatchResult) {
	total := float64(result.GamesPlayed)
	fmt.Fprintf(w, "Player 1 wins: %d (%f%%)\n", result.Player1Wins, float64(result.Player1Wins)/total*100)
	fmt.Fprintf(w, "Player 2 wins: %d (%f%%)\n", result.Player2Wins, float64(result.Player2Wins)/total*100)
	fmt.Fprintf(w, "Draws: %d (%f%%)\n", result.Draws, float64(result.Draws)/total*100)
}

func spectatorVerdict(outcome entity.Outcome) string {
	switch outcome {
	case entity.OutcomePlayer1:
		return "Player 1 wins!"
	case entity.OutcomePlayer2:
		return "Player 2 wins!"
	default:
		return "It's a tie!"
	}
}

func humanVerdict(outcome entity.Outcome) string {
	switch outcome {
	case entity.OutcomePlayer1:
		return "You win!"
	case entity.OutcomePlayer2:
		return "You lose!"
	default:
		return "It's a tie!"
	}
}
