package searcher

import (
	"reversi/experiments/metrics"
	"reversi/game"
)

// AlphaBeta is a depth-bounded minimax search with alpha-beta pruning.
// It visits corner moves first and keeps the first move that strictly improves
// the running best value, so its choices are reproducible for a fixed depth.
type AlphaBeta struct {
	config
	last metrics.SearchMetric
}

func NewAlphaBeta(options ...Option) *AlphaBeta {
	return &AlphaBeta{config: newConfig(options)}
}

func (s *AlphaBeta) SelectMove(b *game.Board, me, opponent game.Cell, maxDepth int) (game.Move, bool) {
	_, move, ok := s.Search(b, me, opponent, maxDepth)
	return move, ok
}

func (s *AlphaBeta) Search(b *game.Board, me, opponent game.Cell, maxDepth int) (int, game.Move, bool) {
	maxDepth = max(maxDepth, 0)
	s.metrics.Start("alphabeta", maxDepth)
	defer func() { s.last = s.metrics.Complete() }()

	t := tree{me: me, opponent: opponent, config: s.config}
	return t.alphaBeta(b.Copy(), true, maxDepth, MinValue, MaxValue)
}

// LastMetric returns the metrics of the most recent search, zero unless WithMetrics is set.
func (s *AlphaBeta) LastMetric() metrics.SearchMetric {
	return s.last
}

// tree holds the fixed parameters of one search.
type tree struct {
	config
	me       game.Cell
	opponent game.Cell
}

func (t tree) toMove(maximizer bool) game.Cell {
	if maximizer {
		return t.me
	}
	return t.opponent
}

// leaf scores b when the depth is exhausted or the side to move has no move.
// A pass is not searched through.
func (t tree) leaf(b *game.Board) int {
	t.metrics.AddLeaf()
	return t.evaluate(b, t.me)
}

func (t tree) alphaBeta(b *game.Board, maximizer bool, depth, alpha, beta int) (int, game.Move, bool) {
	t.metrics.AddNode()

	color := t.toMove(maximizer)
	moves := b.LegalMoves(color)
	if depth == 0 || len(moves) == 0 {
		return t.leaf(b), game.Move{}, false
	}

	// The first ordered move stands when no child beats the initial bound
	ordered := OrderMoves(b, moves)
	best := ordered[0]
	value := MaxValue
	if maximizer {
		value = MinValue
	}

	for _, move := range ordered {
		childValue, _, _ := t.alphaBeta(play(b, move, color), !maximizer, depth-1, alpha, beta)

		if maximizer && childValue > value {
			value = childValue
			best = move
			alpha = max(alpha, value)
		}
		if !maximizer && childValue < value {
			value = childValue
			best = move
			beta = min(beta, value)
		}
		if beta <= alpha {
			t.metrics.AddCutoff()
			break
		}
	}
	return value, best, true
}
