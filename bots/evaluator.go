package bots

import "github.com/Momofil31/AlphaBetaChess/rules"

// PieceSquareEvaluator scores material plus piece-square bonuses. Checkmate
// is scored as a win for the side that delivered it, stalemate as 0.
type PieceSquareEvaluator struct{}

func (e PieceSquareEvaluator) Evaluate(pos rules.Position) Score {
	if pos.IsCheckmate() {
		if pos.SideToMove() == rules.White {
			return -Inf
		}
		return Inf
	}
	if pos.IsStalemate() {
		return 0
	}
	return e.materialScore(pos)
}

func (e PieceSquareEvaluator) materialScore(pos rules.Position) Score {
	var score Score
	for sq := rules.Square(0); sq < rules.NumSquares; sq++ {
		piece, ok := pos.PieceAt(sq)
		if !ok {
			continue
		}
		value := Score(MaterialValue(piece.Kind) + PositionalValue(piece.Kind, piece.Color, sq))
		if piece.Color == rules.White {
			score += value
		} else {
			score -= value
		}
	}
	return score
}
