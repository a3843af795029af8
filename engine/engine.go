package engine

import (
	"context"
	"reversi/experiments/metrics"
	"reversi/game"
)

type Engine interface {
	// Run plays a match until neither side can move or a player forfeits
	Run(ctx context.Context) (Result, error)
}

// Result is the outcome of one match.
type Result struct {
	Winner  game.Cell // Empty for a draw
	Forfeit bool      // The loser returned no move or an illegal one while it had legal moves
	Reason  string
	Game    metrics.GameMetric
	Moves   []metrics.MoveMetric
}

// Ply is one applied move, reported to a PlyHook.
type Ply struct {
	Step  int
	Color game.Cell
	Move  game.Move
	Board *game.Board // Copy of the board after the move
	Next  game.Cell   // Side to move after any pass, Empty once the game is over
}

type PlyHook func(Ply)

// WinnerName returns the color name of the winner, "draw" for a tie.
func (r Result) WinnerName() string {
	if r.Winner == game.Empty {
		return "draw"
	}
	return r.Winner.String()
}
