package bots

import "github.com/Momofil31/AlphaBetaChess/rules"

// NewbornBot plays the first legal move the rules produce.
type NewbornBot struct{}

func NewNewbornBot() *NewbornBot {
	return &NewbornBot{}
}

func (b *NewbornBot) BestMove(pos rules.Position) (rules.Move, bool) {
	moves := pos.LegalMoves()
	if len(moves) > 0 {
		return moves[0], true
	}
	return nil, false
}

func (b *NewbornBot) Name() string {
	return "Newborn"
}
