package game

import "errors"

// Cell is the occupancy of one board square. The playing colors double as the
// integer encoding used when a board is exchanged as a grid.
type Cell int8

const (
	Empty Cell = -1
	Black Cell = 0 // Moves first
	White Cell = 1
)

var (
	// ErrIllegalMove is returned when a move fails the flanking rule for the given color.
	ErrIllegalMove = errors.New("illegal move")
	// ErrConfiguration is returned for board dimensions or grids that cannot hold a standard game.
	ErrConfiguration = errors.New("invalid board configuration")
)

// Valid reports whether c is one of the two playing colors.
func (c Cell) Valid() bool {
	return c == Black || c == White
}

// Opponent returns the other playing color. Empty has no opponent and maps to itself.
func (c Cell) Opponent() Cell {
	switch c {
	case Black:
		return White
	case White:
		return Black
	default:
		return Empty
	}
}

func (c Cell) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "empty"
	}
}
