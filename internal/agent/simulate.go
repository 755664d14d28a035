package agent

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-learner/internal/game"
)

type step struct {
	stats *Stats
}

// simulate plays g to the end with weighted random moves and credits every
// move made along the way. g is consumed.
func (that *Agent) simulate(g *game.Game) {
	me := g.CurrentTurn()

	var mine, theirs []step
	for !g.IsOver() {
		entry := that.memory.GetOrInit(g)
		move := that.pickMove(entry)

		s := step{stats: entry.records[move]}
		if g.CurrentTurn() == me {
			mine = append(mine, s)
		} else {
			theirs = append(theirs, s)
		}

		if err := g.Move(move); err != nil {
			panic(fmt.Errorf("memory holds an illegal move for %s: %w", g.State(), err))
		}
	}

	var myScore, theirScore float64
	switch {
	case g.IsWin(me):
		myScore, theirScore = 1, -1
	case g.IsWin(me.Opponent()):
		myScore, theirScore = -1, 1
	}

	credit(mine, myScore)
	credit(theirs, theirScore)
}

// credit walks steps from the last one back. The last step gets the full
// score, earlier ones are scaled down by their distance from the end.
func credit(steps []step, score float64) {
	recency := 1
	for i := len(steps) - 1; i >= 0; i-- {
		steps[i].stats.Score += 0.5 + score*0.5/float64(recency)
		steps[i].stats.Count++
		recency++
	}
}

// pickMove samples a move with probability proportional to its win rate.
func (that *Agent) pickMove(entry *StateStats) string {
	weights := make([]float64, len(entry.moves))

	total := 0.0
	for i, move := range entry.moves {
		weights[i] = entry.records[move].WinRate()
		total += weights[i]
	}

	if total <= 0 {
		return entry.moves[that.rng.IntN(len(entry.moves))]
	}

	r := that.rng.Float64() * total
	for i, weight := range weights {
		r -= weight
		if r < 0 {
			return entry.moves[i]
		}
	}

	return entry.moves[len(entry.moves)-1]
}
