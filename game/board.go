package game

import (
	"fmt"
	"strings"
)

// InitialStones is the number of stones on a freshly constructed board.
const InitialStones = 4

// Board is a square reversi grid. Cells are stored row-major.
type Board struct {
	size  int
	cells []Cell
}

// NewBoard initializes and returns a board of the given size with the standard opening.
// The four center cells hold White on the main diagonal and Black on the anti-diagonal.
func NewBoard(size int) (*Board, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	b := &Board{
		size:  size,
		cells: make([]Cell, size*size),
	}
	for i := range b.cells {
		b.cells[i] = Empty
	}

	mid := size / 2
	b.set(mid-1, mid-1, White)
	b.set(mid, mid, White)
	b.set(mid-1, mid, Black)
	b.set(mid, mid-1, Black)

	return b, nil
}

// FromGrid builds a board from a row-major grid of -1 (empty), 0 (black) and 1 (white).
// The position is taken as is; it need not be reachable from the opening.
func FromGrid(grid [][]int) (*Board, error) {
	size := len(grid)
	if err := checkSize(size); err != nil {
		return nil, err
	}
	b := &Board{
		size:  size,
		cells: make([]Cell, 0, size*size),
	}
	for r, row := range grid {
		if len(row) != size {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrConfiguration, r, len(row), size)
		}
		for c, v := range row {
			if v < int(Empty) || v > int(White) {
				return nil, fmt.Errorf("%w: cell [%d,%d] holds unknown value %d", ErrConfiguration, r, c, v)
			}
			b.cells = append(b.cells, Cell(v))
		}
	}
	return b, nil
}

func checkSize(size int) error {
	if size < 2 {
		return fmt.Errorf("%w: size %d is smaller than 2", ErrConfiguration, size)
	}
	if size%2 != 0 {
		return fmt.Errorf("%w: size %d is odd", ErrConfiguration, size)
	}
	return nil
}

// Size returns the side length of the board.
func (b *Board) Size() int {
	return b.size
}

func (b *Board) inBounds(row, col int) bool {
	return row >= 0 && row < b.size && col >= 0 && col < b.size
}

func (b *Board) get(row, col int) Cell {
	return b.cells[row*b.size+col]
}

func (b *Board) set(row, col int, c Cell) {
	b.cells[row*b.size+col] = c
}

// At returns the cell at m, or Empty when m lies off the board.
func (b *Board) At(m Move) Cell {
	if !b.inBounds(m.Row, m.Col) {
		return Empty
	}
	return b.get(m.Row, m.Col)
}

// IsCorner reports whether both coordinates of m sit on an edge of the board.
func (b *Board) IsCorner(m Move) bool {
	last := b.size - 1
	return (m.Row == 0 || m.Row == last) && (m.Col == 0 || m.Col == last)
}

// flanked returns how many opponent stones color c would capture from m along dir.
// Zero means the direction does not validate the move.
func (b *Board) flanked(m Move, c Cell, dir Move) int {
	opponent := c.Opponent()
	row, col := m.Row+dir.Row, m.Col+dir.Col
	n := 0
	for b.inBounds(row, col) && b.get(row, col) == opponent {
		row += dir.Row
		col += dir.Col
		n++
	}
	if n == 0 || !b.inBounds(row, col) || b.get(row, col) != c {
		return 0
	}
	return n
}

// IsLegalMove checks whether c may place a stone at m.
func (b *Board) IsLegalMove(m Move, c Cell) bool {
	if !c.Valid() || !b.inBounds(m.Row, m.Col) || b.get(m.Row, m.Col) != Empty {
		return false
	}
	for _, dir := range directions {
		if b.flanked(m, c, dir) > 0 {
			return true
		}
	}
	return false
}

// Captures returns the stones c would flip by playing m, nil when the move is illegal.
func (b *Board) Captures(m Move, c Cell) []Move {
	if !b.IsLegalMove(m, c) {
		return nil
	}
	var captured []Move
	for _, dir := range directions {
		n := b.flanked(m, c, dir)
		for i := 1; i <= n; i++ {
			captured = append(captured, Move{Row: m.Row + i*dir.Row, Col: m.Col + i*dir.Col})
		}
	}
	return captured
}

// ApplyMove places a stone of color c at m and flips every flanked run.
// The board is left untouched when the move is illegal.
func (b *Board) ApplyMove(m Move, c Cell) (flipped int, err error) {
	if !b.IsLegalMove(m, c) {
		return 0, fmt.Errorf("%w: %s for %s", ErrIllegalMove, m, c)
	}

	// Measure every run before mutating, flips would otherwise change later scans
	var runs [len(directions)]int
	for i, dir := range directions {
		runs[i] = b.flanked(m, c, dir)
	}

	b.set(m.Row, m.Col, c)
	for i, dir := range directions {
		for step := 1; step <= runs[i]; step++ {
			b.set(m.Row+step*dir.Row, m.Col+step*dir.Col, c)
		}
		flipped += runs[i]
	}
	return flipped, nil
}

// CanPlay reports whether c has at least one legal move.
func (b *Board) CanPlay(c Cell) bool {
	for row := 0; row < b.size; row++ {
		for col := 0; col < b.size; col++ {
			if b.IsLegalMove(Move{Row: row, Col: col}, c) {
				return true
			}
		}
	}
	return false
}

// LegalMoves returns all legal moves for c in row-major order.
func (b *Board) LegalMoves(c Cell) []Move {
	var moves []Move
	for row := 0; row < b.size; row++ {
		for col := 0; col < b.size; col++ {
			m := Move{Row: row, Col: col}
			if b.IsLegalMove(m, c) {
				moves = append(moves, m)
			}
		}
	}
	return moves
}

// Count returns the number of cells holding c.
func (b *Board) Count(c Cell) int {
	n := 0
	for _, cell := range b.cells {
		if cell == c {
			n++
		}
	}
	return n
}

// Score returns the stone count of each color.
func (b *Board) Score() (black, white int) {
	for _, cell := range b.cells {
		switch cell {
		case Black:
			black++
		case White:
			white++
		}
	}
	return black, white
}

// Stones returns the number of occupied cells.
func (b *Board) Stones() int {
	black, white := b.Score()
	return black + white
}

// Copy returns a deep copy sharing no storage with b.
func (b *Board) Copy() *Board {
	cellsCopy := make([]Cell, len(b.cells))
	copy(cellsCopy, b.cells)

	return &Board{
		size:  b.size,
		cells: cellsCopy,
	}
}

// Grid returns the board as rows of -1, 0 and 1.
func (b *Board) Grid() [][]int {
	grid := make([][]int, b.size)
	for row := range grid {
		grid[row] = make([]int, b.size)
		for col := range grid[row] {
			grid[row][col] = int(b.get(row, col))
		}
	}
	return grid
}

func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < b.size; row++ {
		for col := 0; col < b.size; col++ {
			if cell := b.get(row, col); cell == Empty {
				sb.WriteString(" -")
			} else {
				fmt.Fprintf(&sb, " %d", cell)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
