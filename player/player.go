package player

import (
	"reversi/game"

	"golang.org/x/exp/rand"
)

// Player chooses moves for one color. Move returns false when the player has no
// move to offer; the match driver decides whether that is a pass or a forfeit.
type Player interface {
	Name() string
	Move(b *game.Board) (game.Move, bool)
}

// Random plays a uniformly random legal move.
type Random struct {
	me  game.Cell
	rng *rand.Rand
}

// NewRandom creates a random player. The same seed replays the same choices.
func NewRandom(me game.Cell, seed uint64) *Random {
	return &Random{
		me:  me,
		rng: rand.New(rand.NewSource(seed)),
	}
}

func (p *Random) Name() string {
	return "random"
}

func (p *Random) Move(b *game.Board) (game.Move, bool) {
	moves := b.LegalMoves(p.me)
	if len(moves) == 0 {
		return game.Move{}, false
	}
	return moves[p.rng.Intn(len(moves))], true
}
