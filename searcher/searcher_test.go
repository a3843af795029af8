package searcher

import (
	"fmt"
	"math"
	"testing"

	"reversi/game"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func newBoard(t *testing.T, size int) *game.Board {
	t.Helper()
	b, err := game.NewBoard(size)
	require.NoError(t, err)
	return b
}

func fromGrid(t *testing.T, grid [][]int) *game.Board {
	t.Helper()
	b, err := game.FromGrid(grid)
	require.NoError(t, err)
	return b
}

// randomPositions plays seeded random games from the opening and keeps every
// twelfth position along with the final one.
func randomPositions(t *testing.T, seed uint64, games int) []*game.Board {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	var positions []*game.Board
	for i := 0; i < games; i++ {
		b := newBoard(t, 8)
		color := game.Black
		for ply := 0; b.CanPlay(game.Black) || b.CanPlay(game.White); ply++ {
			if !b.CanPlay(color) {
				color = color.Opponent()
			}
			if ply%12 == 0 {
				positions = append(positions, b.Copy())
			}
			moves := b.LegalMoves(color)
			_, err := b.ApplyMove(moves[rng.Intn(len(moves))], color)
			require.NoError(t, err)
			color = color.Opponent()
		}
		positions = append(positions, b.Copy())
	}
	return positions
}

func TestStoneDifference(t *testing.T) {
	b := newBoard(t, 8)
	_, err := b.ApplyMove(game.Move{Row: 2, Col: 3}, game.Black)
	require.NoError(t, err)

	require.Equal(t, 3, StoneDifference(b, game.Black))
	require.Equal(t, -3, StoneDifference(b, game.White))
}

func TestOrderMoves(t *testing.T) {
	b := newBoard(t, 8)
	moves := []game.Move{{Row: 0, Col: 3}, {Row: 0, Col: 7}, {Row: 2, Col: 2}, {Row: 7, Col: 0}, {Row: 7, Col: 6}, {Row: 0, Col: 0}}

	ordered := OrderMoves(b, moves)

	require.Equal(t, []game.Move{{Row: 0, Col: 7}, {Row: 7, Col: 0}, {Row: 0, Col: 0}, {Row: 0, Col: 3}, {Row: 2, Col: 2}, {Row: 7, Col: 6}}, ordered,
		"Corners should come first, each group keeping its original order")
	require.Equal(t, game.Move{Row: 0, Col: 3}, moves[0], "Input should not be reordered")
}

func TestSelectMove(t *testing.T) {
	searchers := map[string]func() Searcher{
		"alphabeta": func() Searcher { return NewAlphaBeta() },
		"minimax":   func() Searcher { return NewMinimax() },
	}

	for name, newSearcher := range searchers {
		t.Run(name+" returns no move without legal moves", func(t *testing.T) {
			b := newBoard(t, 2)

			move, ok := newSearcher().SelectMove(b, game.Black, game.White, 3)

			require.False(t, ok)
			require.Equal(t, game.Move{}, move)
		})

		t.Run(name+" returns the static evaluation at depth zero", func(t *testing.T) {
			b := newBoard(t, 8)
			_, err := b.ApplyMove(game.Move{Row: 2, Col: 3}, game.Black)
			require.NoError(t, err)

			value, _, ok := newSearcher().Search(b, game.White, game.Black, 0)

			require.False(t, ok, "Depth zero should not recommend a move")
			require.Equal(t, -3, value)
		})

		t.Run(name+" picks the first opening move at depth one", func(t *testing.T) {
			b := newBoard(t, 8)

			value, move, ok := newSearcher().Search(b, game.Black, game.White, 1)

			require.True(t, ok)
			require.Equal(t, game.Move{Row: 2, Col: 3}, move, "All opening moves tie, the first one is kept")
			require.Equal(t, 3, value)
		})

		t.Run(name+" prefers a corner among equal moves", func(t *testing.T) {
			b := fromGrid(t, [][]int{
				{-1, -1, -1, -1},
				{-1, 0, 1, -1},
				{-1, -1, 1, -1},
				{-1, -1, -1, -1},
			})
			require.Equal(t, []game.Move{{Row: 1, Col: 3}, {Row: 3, Col: 3}}, b.LegalMoves(game.Black))

			move, ok := newSearcher().SelectMove(b, game.Black, game.White, 1)

			require.True(t, ok)
			require.Equal(t, game.Move{Row: 3, Col: 3}, move)
		})

		t.Run(name+" does not mutate the board", func(t *testing.T) {
			b := newBoard(t, 8)
			before := b.Grid()

			_, ok := newSearcher().SelectMove(b, game.Black, game.White, 3)

			require.True(t, ok)
			require.Equal(t, before, b.Grid())
		})
	}
}

func TestSearchStopsWhenSideToMoveIsBlocked(t *testing.T) {
	// White cannot answer after Black takes [0,3], so the search scores that
	// position instead of passing the turn back to Black.
	b := fromGrid(t, [][]int{
		{0, 1, 1, -1},
		{-1, -1, -1, -1},
		{-1, -1, -1, -1},
		{-1, -1, -1, -1},
	})

	value, move, ok := NewAlphaBeta(WithMetrics()).Search(b, game.Black, game.White, 4)

	require.True(t, ok)
	require.Equal(t, game.Move{Row: 0, Col: 3}, move)
	require.Equal(t, 4, value)
}

func TestPruningMatchesMinimax(t *testing.T) {
	positions := randomPositions(t, 3, 2)
	require.NotEmpty(t, positions)

	for i, b := range positions {
		for depth := 1; depth <= 4; depth++ {
			for _, me := range []game.Cell{game.Black, game.White} {
				alphaBeta := NewAlphaBeta(WithMetrics())
				minimax := NewMinimax(WithMetrics())

				abValue, abMove, abOK := alphaBeta.Search(b, me, me.Opponent(), depth)
				mmValue, mmMove, mmOK := minimax.Search(b, me, me.Opponent(), depth)

				require.Equal(t, mmValue, abValue, "position %d depth %d %s: value", i, depth, me)
				require.Equal(t, mmOK, abOK, "position %d depth %d %s: ok", i, depth, me)
				require.Equal(t, mmMove, abMove, "position %d depth %d %s: move", i, depth, me)
				require.LessOrEqual(t, alphaBeta.LastMetric().Nodes, minimax.LastMetric().Nodes,
					"Pruning should never visit more nodes")
			}
		}
	}
}

func TestSearchIsDeterministic(t *testing.T) {
	for _, b := range randomPositions(t, 11, 2) {
		first, firstOK := NewAlphaBeta().SelectMove(b, game.White, game.Black, 3)
		second, secondOK := NewAlphaBeta().SelectMove(b, game.White, game.Black, 3)

		require.Equal(t, firstOK, secondOK)
		require.Equal(t, first, second)
	}
}

func TestSearchMetrics(t *testing.T) {
	t.Run("collected with WithMetrics", func(t *testing.T) {
		b := newBoard(t, 8)
		s := NewAlphaBeta(WithMetrics())

		_, ok := s.SelectMove(b, game.Black, game.White, 3)
		require.True(t, ok)

		metric := s.LastMetric()
		require.Equal(t, "alphabeta", metric.Algorithm)
		require.Equal(t, 3, metric.Depth)
		require.Greater(t, metric.Nodes, metric.Leaves)
		require.Positive(t, metric.Leaves)
	})

	t.Run("minimax never cuts off", func(t *testing.T) {
		b := newBoard(t, 8)
		s := NewMinimax(WithMetrics())

		_, ok := s.SelectMove(b, game.Black, game.White, 3)
		require.True(t, ok)

		require.Zero(t, s.LastMetric().Cutoffs)
		// Root, 4 opening moves and 3 replies to each; the third ply is all leaves
		require.Equal(t, 1+4+12, s.LastMetric().Nodes-s.LastMetric().Leaves)
	})

	t.Run("absent by default", func(t *testing.T) {
		b := newBoard(t, 8)
		s := NewAlphaBeta()

		_, ok := s.SelectMove(b, game.Black, game.White, 2)
		require.True(t, ok)

		require.Zero(t, s.LastMetric())
	})
}

func TestWithEvaluationFn(t *testing.T) {
	b := newBoard(t, 8)
	flat := func(b *game.Board, me game.Cell) int { return 0 }

	value, move, ok := NewAlphaBeta(WithEvaluationFn(flat)).Search(b, game.Black, game.White, 2)

	require.True(t, ok)
	require.Zero(t, value)
	require.Equal(t, game.Move{Row: 2, Col: 3}, move)
}

func TestSearchReturnsLegalMoveForExtremeEvaluation(t *testing.T) {
	evaluations := map[string]Evaluate{
		"min int32": func(b *game.Board, me game.Cell) int { return math.MinInt32 },
		"max int32": func(b *game.Board, me game.Cell) int { return math.MaxInt32 },
		"min int":   func(b *game.Board, me game.Cell) int { return math.MinInt },
		"max int":   func(b *game.Board, me game.Cell) int { return math.MaxInt },
	}
	for name, evaluate := range evaluations {
		for _, depth := range []int{1, 2, 3} {
			t.Run(fmt.Sprintf("%s depth %d", name, depth), func(t *testing.T) {
				b := newBoard(t, 8)
				searchers := []Searcher{
					NewAlphaBeta(WithEvaluationFn(evaluate)),
					NewMinimax(WithEvaluationFn(evaluate)),
				}
				for _, s := range searchers {
					move, ok := s.SelectMove(b, game.Black, game.White, depth)
					require.True(t, ok)
					require.True(t, b.IsLegalMove(move, game.Black), "%T chose %s", s, move)
				}
			})
		}
	}
}
