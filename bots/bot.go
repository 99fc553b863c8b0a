// bot.go
package bots

import "github.com/Momofil31/AlphaBetaChess/rules"

// ChessBot is implemented by every bot the drivers can play against.
// BestMove reports false when it has no move to offer.
type ChessBot interface {
	BestMove(pos rules.Position) (rules.Move, bool)
	Name() string
}

// PositionEvaluator scores a position from White's point of view.
type PositionEvaluator interface {
	Evaluate(pos rules.Position) Score
}

type scoredMove struct {
	move  rules.Move
	score Score
}
