package entity

// Mark - occupant of a board cell. The zero value is an empty cell.
type Mark int8

const (
	Empty Mark = iota
	MarkX
	MarkO
)

const (
	SymbolEmpty = '_'
	SymbolX     = 'x'
	SymbolO     = 'o'
)

// Symbol - returns the character used for the mark in canonical state strings.
func (that Mark) Symbol() byte {
	switch that {
	case MarkX:
		return SymbolX
	case MarkO:
		return SymbolO
	default:
		return SymbolEmpty
	}
}

func (that Mark) String() string {
	return string(that.Symbol())
}

// Opponent - returns the other player's mark. Empty has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case MarkX:
		return MarkO
	case MarkO:
		return MarkX
	default:
		return Empty
	}
}

// MarkFromSymbol - parses a canonical state character.
func MarkFromSymbol(symbol byte) (Mark, bool) {
	switch symbol {
	case SymbolEmpty:
		return Empty, true
	case SymbolX:
		return MarkX, true
	case SymbolO:
		return MarkO, true
	default:
		return Empty, false
	}
}
