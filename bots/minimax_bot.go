package bots

import (
	"fmt"

	"github.com/Momofil31/AlphaBetaChess/rules"
)

// MinimaxBot searches the full tree without pruning. It follows the same
// leaf and no-move rules as AlphaBetaBot, so both agree on every score.
type MinimaxBot struct {
	Depth     int
	Evaluator PositionEvaluator
	nodes     int
}

func NewMinimaxBot(depth int) *MinimaxBot {
	return &MinimaxBot{
		Depth:     depth,
		Evaluator: PieceSquareEvaluator{},
	}
}

func (b *MinimaxBot) Name() string {
	return fmt.Sprintf("Minimax Bot (depth %d)", b.Depth)
}

func (b *MinimaxBot) BestMove(pos rules.Position) (rules.Move, bool) {
	_, move, ok := b.Search(pos, b.Depth-1)
	if !ok && b.Depth > 1 {
		if moves := pos.LegalMoves(); len(moves) > 0 {
			return moves[0], true
		}
	}
	return move, ok
}

func (b *MinimaxBot) Search(pos rules.Position, depth int) (Score, rules.Move, bool) {
	b.nodes = 0
	best := b.minimax(pos, depth, pos.SideToMove() == rules.White)
	return best.score, best.move, best.move != nil
}

func (b *MinimaxBot) Nodes() int {
	return b.nodes
}

func (b *MinimaxBot) minimax(pos rules.Position, depth int, maximizing bool) scoredMove {
	b.nodes++
	if depth <= 0 {
		return scoredMove{nil, b.Evaluator.Evaluate(pos)}
	}

	best := scoredMove{score: Inf}
	if maximizing {
		best.score = -Inf
	}
	for _, move := range pos.LegalMoves() {
		pos.Apply(move)
		current := b.minimax(pos, depth-1, !maximizing)
		pos.Undo()

		if maximizing && current.score > best.score ||
			!maximizing && current.score < best.score {
			best = scoredMove{move, current.score}
		}
	}
	return best
}
