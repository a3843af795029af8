package player

import (
	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/searcher"
)

// Search plays the move recommended by a depth-bounded searcher.
type Search struct {
	name     string
	me       game.Cell
	opponent game.Cell
	depth    int
	searcher searcher.Searcher
}

// NewAlphaBeta creates a player backed by alpha-beta search to the given depth.
func NewAlphaBeta(me, opponent game.Cell, depth int, options ...searcher.Option) *Search {
	return &Search{
		name:     "alphabeta",
		me:       me,
		opponent: opponent,
		depth:    depth,
		searcher: searcher.NewAlphaBeta(options...),
	}
}

// NewMinimax creates a player backed by the unpruned search. It plays the same
// moves as NewAlphaBeta at the same depth, only slower.
func NewMinimax(me, opponent game.Cell, depth int, options ...searcher.Option) *Search {
	return &Search{
		name:     "minimax",
		me:       me,
		opponent: opponent,
		depth:    depth,
		searcher: searcher.NewMinimax(options...),
	}
}

func (p *Search) Name() string {
	return p.name
}

func (p *Search) Move(b *game.Board) (game.Move, bool) {
	return p.searcher.SelectMove(b, p.me, p.opponent, p.depth)
}

// LastMetric returns the metrics of the last move search.
func (p *Search) LastMetric() metrics.SearchMetric {
	return p.searcher.LastMetric()
}
