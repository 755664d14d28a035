package service

import (
	"context"

	"github.com/rocketscienceinc/tictactoe-learner/internal/entity"
	"github.com/rocketscienceinc/tictactoe-learner/internal/game"
)

// Player - one seat at the board. MakeTurn applies exactly one move to g.
type Player interface {
	MakeTurn(ctx context.Context, g *game.Game) error
	Info() *entity.Player
}
