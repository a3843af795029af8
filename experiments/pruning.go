package experiments

import (
	"context"
	"fmt"
	"reversi/engine"
	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/player"
	"reversi/searcher"

	"github.com/rs/zerolog/log"
)

// position is a sampled board with the color to move.
type position struct {
	board  *game.Board
	toMove game.Cell
}

// Pruning compares alpha-beta against the unpruned minimax on positions sampled
// from random self-play.
type Pruning struct {
	Size     int
	Games    int // Self-play games sampled for positions
	Every    int // Sample one position every this many plies
	MaxDepth int
	Seed     uint64
	OutDir   string
}

// RunPruningExperiment fails if alpha-beta ever disagrees with minimax on a value or a move.
func RunPruningExperiment(ctx context.Context, p Pruning) ([]metrics.PruningRecord, error) {
	positions, err := samplePositions(ctx, p)
	if err != nil {
		return nil, err
	}

	log.Info().Msgf("starting pruning experiment on %d positions up to depth %d...", len(positions), p.MaxDepth)

	var records []metrics.PruningRecord
	for i, pos := range positions {
		for depth := 1; depth <= p.MaxDepth; depth++ {
			if err := ctx.Err(); err != nil {
				return records, err
			}

			me, opponent := pos.toMove, pos.toMove.Opponent()
			alphaBeta := searcher.NewAlphaBeta(searcher.WithMetrics())
			minimax := searcher.NewMinimax(searcher.WithMetrics())

			abValue, abMove, _ := alphaBeta.Search(pos.board, me, opponent, depth)
			mmValue, mmMove, _ := minimax.Search(pos.board, me, opponent, depth)
			if abValue != mmValue || abMove != mmMove {
				return records, fmt.Errorf("position %d depth %d: alpha-beta %d %s, minimax %d %s\n%s",
					i, depth, abValue, abMove, mmValue, mmMove, pos.board)
			}

			records = append(records, metrics.PruningRecord{
				Position:       i,
				Depth:          depth,
				Value:          abValue,
				AlphaBetaNodes: alphaBeta.LastMetric().Nodes,
				MinimaxNodes:   minimax.LastMetric().Nodes,
				Cutoffs:        alphaBeta.LastMetric().Cutoffs,
			})
		}
	}

	log.Info().Msg("completed pruning experiment")

	if p.OutDir == "" {
		return records, nil
	}
	writer, err := metrics.NewWriter(p.OutDir, "pruning")
	if err != nil {
		return records, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	err = writer.WritePruningRecords(records)
	if err != nil {
		return records, fmt.Errorf("failed to write pruning records: %w", err)
	}
	log.Info().Msgf("stored pruning records in %s", writer.Dir())

	return records, nil
}

func samplePositions(ctx context.Context, p Pruning) ([]position, error) {
	every := max(p.Every, 1)
	var positions []position
	sample := func(ply engine.Ply) {
		// Final positions have nothing to search
		if ply.Step%every == 0 && ply.Next != game.Empty {
			positions = append(positions, position{board: ply.Board, toMove: ply.Next})
		}
	}

	for i := 0; i < p.Games; i++ {
		seed := p.Seed + uint64(2*i)
		m, err := engine.NewMatch(p.Size,
			player.NewRandom(game.Black, seed),
			player.NewRandom(game.White, seed+1),
			engine.WithPlyHook(sample))
		if err != nil {
			return nil, err
		}
		if _, err := m.Run(ctx); err != nil {
			return nil, err
		}
	}
	return positions, nil
}
