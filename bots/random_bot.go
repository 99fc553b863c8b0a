package bots

import (
	"math/rand"

	"github.com/Momofil31/AlphaBetaChess/rules"
)

// RandomBot plays a uniformly random legal move. The same seed replays the
// same choices for the same sequence of positions.
type RandomBot struct {
	rng *rand.Rand
}

func NewRandomBot(seed int64) *RandomBot {
	return &RandomBot{rng: rand.New(rand.NewSource(seed))}
}

func (b *RandomBot) BestMove(pos rules.Position) (rules.Move, bool) {
	moves := pos.LegalMoves()
	if len(moves) == 0 {
		return nil, false
	}
	return moves[b.rng.Intn(len(moves))], true
}

func (b *RandomBot) Name() string {
	return "Random Bot"
}
