package game

import "fmt"

// Move is a board coordinate. Row indexes the outer dimension of the grid.
type Move struct {
	Row int
	Col int
}

func (m Move) String() string {
	return fmt.Sprintf("[%d,%d]", m.Row, m.Col)
}

// Compass directions scanned by the flanking rule, clockwise from north-west.
var directions = [8]Move{
	{-1, -1}, {-1, 0}, {-1, 1}, {0, 1},
	{1, 1}, {1, 0}, {1, -1}, {0, -1},
}
