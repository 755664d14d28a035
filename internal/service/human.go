package service

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-learner/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-learner/internal/entity"
	"github.com/rocketscienceinc/tictactoe-learner/internal/game"
)

// HumanPlayer - reads moves line by line and re-prompts until one is accepted.
type HumanPlayer struct {
	info    *entity.Player
	scanner *bufio.Scanner
	out     io.Writer
}

func NewHumanPlayer(name string, mark entity.Mark, in io.Reader, out io.Writer) *HumanPlayer {
	return &HumanPlayer{
		info: &entity.Player{
			Name: name,
			Mark: mark,
			Kind: entity.KindHuman,
		},
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

func (that *HumanPlayer) MakeTurn(ctx context.Context, g *game.Game) error {
	for {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("human turn interrupted: %w", err)
		}

		game.Render(that.out, g)
		fmt.Fprintf(that.out, "What's your move? [%s]: ", strings.Join(slices.Collect(g.ValidMoves()), ","))

		if !that.scanner.Scan() {
			fmt.Fprintln(that.out)

			if err := that.scanner.Err(); err != nil {
				return fmt.Errorf("failed to read move: %w", err)
			}

			return apperror.ErrInputClosed
		}

		input := strings.TrimSpace(that.scanner.Text())
		if _, err := strconv.Atoi(input); err != nil {
			game.ClearScreen(that.out)
			fmt.Fprintln(that.out, "Invalid input")
			continue
		}

		err := g.Move(input)
		if errors.Is(err, game.ErrInvalidMove) {
			game.ClearScreen(that.out)
			fmt.Fprintln(that.out, "Invalid move")
			continue
		}

		if err != nil {
			return fmt.Errorf("failed to make turn: %w", err)
		}

		return nil
	}
}

func (that *HumanPlayer) Info() *entity.Player {
	return that.info
}
