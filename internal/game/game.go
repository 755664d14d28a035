package game

import (
	"errors"
	"fmt"
	"iter"
	"strconv"

	"github.com/rocketscienceinc/tictactoe-learner/internal/entity"
)

const cellCount = 9

var (
	ErrInvalidMove  = errors.New("invalid move")
	ErrInvalidState = errors.New("invalid state")

	WinCombos = [][3]int{
		{0, 1, 2},
		{3, 4, 5},
		{6, 7, 8},
		{0, 3, 6},
		{1, 4, 7},
		{2, 5, 8},
		{0, 4, 8},
		{2, 4, 6},
	}
)

// Game - rules for a single 3x3 match. Zero value is not usable, use New.
type Game struct {
	board [cellCount]entity.Mark
	turn  entity.Mark
	last  int
}

// New - empty board, x moves first.
func New() *Game {
	return &Game{
		turn: entity.MarkX,
		last: -1,
	}
}

// FromState - builds a position from its canonical string.
func FromState(state string, turn entity.Mark) (*Game, error) {
	if len(state) != cellCount {
		return nil, fmt.Errorf("%w: %q has %d cells", ErrInvalidState, state, len(state))
	}

	if turn != entity.MarkX && turn != entity.MarkO {
		return nil, fmt.Errorf("%w: turn %q", ErrInvalidState, turn)
	}

	g := &Game{turn: turn, last: -1}
	for i := range cellCount {
		mark, ok := entity.MarkFromSymbol(state[i])
		if !ok {
			return nil, fmt.Errorf("%w: unknown symbol %q", ErrInvalidState, state[i])
		}
		g.board[i] = mark
	}

	return g, nil
}

func (that *Game) CurrentTurn() entity.Mark {
	return that.turn
}

// State - canonical 9-character serialization, `_` for empty cells.
func (that *Game) State() string {
	var buf [cellCount]byte
	for i, mark := range that.board {
		buf[i] = mark.Symbol()
	}

	return string(buf[:])
}

// Cell - mark at a 0-based index.
func (that *Game) Cell(index int) entity.Mark {
	return that.board[index]
}

// Moves - number of occupied cells.
func (that *Game) Moves() int {
	n := 0
	for _, mark := range that.board {
		if mark != entity.Empty {
			n++
		}
	}

	return n
}

// LastMove - 1-based id of the most recently accepted move.
func (that *Game) LastMove() (string, bool) {
	if that.last < 0 {
		return "", false
	}

	return cellID(that.last), true
}

// ValidMoves - 1-based ids of the empty cells in ascending order.
// The sequence reads the board lazily while it is iterated.
func (that *Game) ValidMoves() iter.Seq[string] {
	return func(yield func(string) bool) {
		for i, mark := range that.board {
			if mark != entity.Empty {
				continue
			}
			if !yield(cellID(i)) {
				return
			}
		}
	}
}

func (that *Game) Clone() *Game {
	clone := *that
	return &clone
}

func (that *Game) IsWin(mark entity.Mark) bool {
	if mark == entity.Empty {
		return false
	}

	for _, combo := range WinCombos {
		if that.board[combo[0]] == mark && that.board[combo[1]] == mark && that.board[combo[2]] == mark {
			return true
		}
	}

	return false
}

// IsTie - neither mark has a full triple. Only meaningful together with IsOver.
func (that *Game) IsTie() bool {
	return !that.IsWin(entity.MarkX) && !that.IsWin(entity.MarkO)
}

func (that *Game) IsOver() bool {
	return that.isFull() || that.IsWin(entity.MarkX) || that.IsWin(entity.MarkO)
}

// Move - places the current mark on a 1-based cell and passes the turn.
func (that *Game) Move(cell string) error {
	index, err := strconv.Atoi(cell)
	if err != nil {
		return fmt.Errorf("%w: cell %q is not a number", ErrInvalidMove, cell)
	}

	index--
	if index < 0 || index >= cellCount {
		return fmt.Errorf("%w: cell %q is out of range", ErrInvalidMove, cell)
	}

	if that.board[index] != entity.Empty {
		return fmt.Errorf("%w: cell %q is occupied", ErrInvalidMove, cell)
	}

	that.board[index] = that.turn
	that.turn = that.turn.Opponent()
	that.last = index

	return nil
}

func (that *Game) isFull() bool {
	for _, mark := range that.board {
		if mark == entity.Empty {
			return false
		}
	}

	return true
}

func cellID(index int) string {
	return strconv.Itoa(index + 1)
}
