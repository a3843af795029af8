package searcher

import (
	"math"
	"reversi/experiments/metrics"
	"reversi/game"
)

// Bounds of the search window, wide enough for any stone differential.
const (
	MaxValue = math.MaxInt32
	MinValue = -MaxValue
)

// Evaluate scores a position from the perspective of color me. Larger is better for me.
type Evaluate func(b *game.Board, me game.Cell) int

// StoneDifference is the static evaluation: my stones minus the opponent's.
func StoneDifference(b *game.Board, me game.Cell) int {
	return b.Count(me) - b.Count(me.Opponent())
}

// Searcher picks a move for one color with a depth-bounded adversarial search.
// Implementations never mutate the board they are given.
type Searcher interface {
	// Search returns the value of the position and the move achieving it.
	// ok is false when there is no move to recommend: me has no legal move or maxDepth <= 0.
	Search(b *game.Board, me, opponent game.Cell, maxDepth int) (value int, move game.Move, ok bool)
	SelectMove(b *game.Board, me, opponent game.Cell, maxDepth int) (game.Move, bool)
	LastMetric() metrics.SearchMetric
}

var (
	_ Searcher = (*AlphaBeta)(nil)
	_ Searcher = (*Minimax)(nil)
)

type Option func(c *config)

type config struct {
	evaluate Evaluate
	metrics  metrics.Collector
}

func WithEvaluationFn(evaluate Evaluate) Option {
	return func(c *config) {
		if evaluate != nil {
			c.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(c *config) {
		c.metrics = metrics.NewCollector()
	}
}

func newConfig(options []Option) config {
	c := config{ // Default values
		evaluate: StoneDifference,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(&c)
	}
	return c
}

// play returns a copy of b with m applied for color c.
func play(b *game.Board, m game.Move, c game.Cell) *game.Board {
	child := b.Copy()
	if _, err := child.ApplyMove(m, c); err != nil {
		// Moves come from LegalMoves on the same position
		panic(err)
	}
	return child
}
