package searcher

import (
	"reversi/experiments/metrics"
	"reversi/game"
)

// Minimax is the unpruned full-width search. It shares the move ordering and the
// strict-improvement tie-break with AlphaBeta and serves as its baseline.
type Minimax struct {
	config
	last metrics.SearchMetric
}

func NewMinimax(options ...Option) *Minimax {
	return &Minimax{config: newConfig(options)}
}

func (s *Minimax) SelectMove(b *game.Board, me, opponent game.Cell, maxDepth int) (game.Move, bool) {
	_, move, ok := s.Search(b, me, opponent, maxDepth)
	return move, ok
}

func (s *Minimax) Search(b *game.Board, me, opponent game.Cell, maxDepth int) (int, game.Move, bool) {
	maxDepth = max(maxDepth, 0)
	s.metrics.Start("minimax", maxDepth)
	defer func() { s.last = s.metrics.Complete() }()

	t := tree{me: me, opponent: opponent, config: s.config}
	return t.minimax(b.Copy(), true, maxDepth)
}

func (s *Minimax) LastMetric() metrics.SearchMetric {
	return s.last
}

func (t tree) minimax(b *game.Board, maximizer bool, depth int) (int, game.Move, bool) {
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
		childValue, _, _ := t.minimax(play(b, move, color), !maximizer, depth-1)

		// Strictly better only, to match AlphaBeta
		if (maximizer && childValue > value) || (!maximizer && childValue < value) {
			value = childValue
			best = move
		}
	}
	return value, best, true
}
