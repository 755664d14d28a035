package game

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-learner/internal/entity"
)

const (
	clearSequence = "\033[H\033[J"
	rowSeparator  = "---+---+---"
)

// Render - prints the board, empty cells show their 1-based number.
func Render(w io.Writer, g *Game) {
	for row := range 3 {
		if row > 0 {
			fmt.Fprintln(w, rowSeparator)
		}

		cells := make([]string, 3)
		for col := range cells {
			cells[col] = displayCell(g, row*3+col)
		}

		fmt.Fprintln(w, " "+strings.Join(cells, " | ")+" ")
	}
}

func ClearScreen(w io.Writer) {
	fmt.Fprint(w, clearSequence)
}

func displayCell(g *Game, index int) string {
	if mark := g.Cell(index); mark != entity.Empty {
		return mark.String()
	}

	return strconv.Itoa(index + 1)
}
