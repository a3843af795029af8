package engine

import (
	"context"
	"errors"
	"fmt"
	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/player"
	"time"

	"github.com/rs/zerolog/log"
)

var _ Engine = (*Match)(nil)

type Option func(m *Match)

// WithPosition starts the match from a copy of b with color to move, instead of the opening.
// NewMatch rejects a position whose size differs from the match size.
func WithPosition(b *game.Board, toMove game.Cell) Option {
	return func(m *Match) {
		if b != nil && toMove.Valid() {
			m.board = b.Copy()
			m.toMove = toMove
		}
	}
}

// WithPlyHook registers a function called after every applied move.
func WithPlyHook(hook PlyHook) Option {
	return func(m *Match) {
		if hook != nil {
			m.hooks = append(m.hooks, hook)
		}
	}
}

// Match is a headless local game between two players. It owns the live board;
// players only ever see copies.
type Match struct {
	board   *game.Board
	players map[game.Cell]player.Player
	toMove  game.Cell
	hooks   []PlyHook
}

// measured is implemented by players that report search metrics.
type measured interface {
	LastMetric() metrics.SearchMetric
}

func NewMatch(size int, black, white player.Player, options ...Option) (*Match, error) {
	if black == nil || white == nil {
		return nil, errors.New("match needs two players")
	}
	board, err := game.NewBoard(size)
	if err != nil {
		return nil, err
	}

	m := &Match{
		board: board,
		players: map[game.Cell]player.Player{
			game.Black: black,
			game.White: white,
		},
		toMove: game.Black,
	}
	for _, option := range options {
		option(m)
	}
	if m.board.Size() != size {
		return nil, fmt.Errorf("%w: position is %dx%d but the match is %dx%d",
			game.ErrConfiguration, m.board.Size(), m.board.Size(), size, size)
	}
	return m, nil
}

// Board returns a copy of the current position.
func (m *Match) Board() *game.Board {
	return m.board.Copy()
}

// Run executes the game loop. Black moves first; a side without a legal move
// passes, and the match ends when neither side can move.
func (m *Match) Run(ctx context.Context) (Result, error) {
	var result Result
	result.Game.StartTime = time.Now()

	log.Info().Msgf("starting %s (black) vs %s (white) on %dx%d",
		m.players[game.Black].Name(), m.players[game.White].Name(), m.board.Size(), m.board.Size())

	for m.board.CanPlay(m.toMove) {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		current := m.players[m.toMove]
		start := time.Now()
		move, ok := current.Move(m.board.Copy())
		elapsed := time.Since(start)

		if !ok {
			m.forfeit(&result, fmt.Sprintf("%s returned no move", m.toMove))
			break
		}
		if !m.board.IsLegalMove(move, m.toMove) {
			m.forfeit(&result, fmt.Sprintf("%s made the illegal move %s", m.toMove, move))
			break
		}
		flipped, err := m.board.ApplyMove(move, m.toMove)
		if err != nil {
			return result, err
		}

		result.Game.Plies++
		moveMetric := metrics.MoveMetric{Step: result.Game.Plies, Player: m.toMove.String()}
		if mp, ok := current.(measured); ok {
			moveMetric.SearchMetric = mp.LastMetric()
			result.Game.Nodes += moveMetric.Nodes
		}
		result.Moves = append(result.Moves, moveMetric)

		log.Debug().
			Int("ply", result.Game.Plies).
			Stringer("color", m.toMove).
			Stringer("move", move).
			Int("flipped", flipped).
			Dur("took", elapsed).
			Msgf("move applied\n%s", m.board)

		ply := Ply{Step: result.Game.Plies, Color: m.toMove, Move: move, Board: m.board.Copy()}

		m.toMove = m.toMove.Opponent()
		if !m.board.CanPlay(m.toMove) && m.board.CanPlay(m.toMove.Opponent()) {
			log.Debug().Msgf("no possible move for %s, %s plays again", m.toMove, m.toMove.Opponent())
			result.Game.Passes++
			m.toMove = m.toMove.Opponent()
		}

		ply.Next = m.toMove
		if !m.board.CanPlay(m.toMove) {
			ply.Next = game.Empty
		}
		for _, hook := range m.hooks {
			hook(ply)
		}
	}

	if !result.Forfeit {
		result.Winner = m.leader()
	}

	result.Game.BlackStones, result.Game.WhiteStones = m.board.Score()
	result.Game.Forfeit = result.Forfeit
	result.Game.Winner = result.WinnerName()
	result.Game.EndTime = time.Now()
	result.Game.Duration = result.Game.EndTime.Sub(result.Game.StartTime)

	log.Info().Msgf("game over after %d plies, score %d:%d, winner: %s",
		result.Game.Plies, result.Game.BlackStones, result.Game.WhiteStones, result.WinnerName())

	return result, nil
}

// forfeit ends the match in favor of the opponent of the side to move.
func (m *Match) forfeit(result *Result, reason string) {
	log.Warn().Msgf("forfeit: %s", reason)
	result.Forfeit = true
	result.Reason = reason
	result.Winner = m.toMove.Opponent()
}

func (m *Match) leader() game.Cell {
	black, white := m.board.Score()
	switch {
	case black > white:
		return game.Black
	case white > black:
		return game.White
	default:
		return game.Empty
	}
}
