package searcher

import (
	"reversi/game"

	"golang.org/x/exp/slices"
)

// OrderMoves returns a copy of moves with corner moves first. The sort is stable,
// so moves keep their row-major order within each group.
func OrderMoves(b *game.Board, moves []game.Move) []game.Move {
	ordered := slices.Clone(moves)
	slices.SortStableFunc(ordered, func(x, y game.Move) int {
		return cornerRank(b, x) - cornerRank(b, y)
	})
	return ordered
}

func cornerRank(b *game.Board, m game.Move) int {
	if b.IsCorner(m) {
		return 0
	}
	return 1
}
