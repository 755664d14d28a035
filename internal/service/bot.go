package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rocketscienceinc/tictactoe-learner/internal/entity"
	"github.com/rocketscienceinc/tictactoe-learner/internal/game"
)

type thinker interface {
	Think(ctx context.Context, g *game.Game, limit time.Duration)
	NextMove(state string) (string, error)
}

type BotPlayer struct {
	info      *entity.Player
	agent     thinker
	thinkTime time.Duration
}

func NewBotPlayer(name string, mark entity.Mark, agent thinker, thinkTime time.Duration) *BotPlayer {
	return &BotPlayer{
		info: &entity.Player{
			Name: name,
			Mark: mark,
			Kind: entity.KindBot,
		},
		agent:     agent,
		thinkTime: thinkTime,
	}
}

// MakeTurn - thinks for the configured budget, then plays the best known move.
func (that *BotPlayer) MakeTurn(ctx context.Context, g *game.Game) error {
	that.agent.Think(ctx, g, that.thinkTime)

	move, err := that.agent.NextMove(g.State())
	if err != nil {
		return fmt.Errorf("bot failed to pick a move: %w", err)
	}

	if err = g.Move(move); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	return nil
}

func (that *BotPlayer) Info() *entity.Player {
	return that.info
}

func (that *BotPlayer) ThinkTime() time.Duration {
	return that.thinkTime
}
