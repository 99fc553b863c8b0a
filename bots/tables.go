package bots

import "github.com/Momofil31/AlphaBetaChess/rules"

var materialValues = [...]int{
	rules.Pawn:   100,
	rules.Knight: 320,
	rules.Bishop: 330,
	rules.Rook:   500,
	rules.Queen:  900,
	rules.King:   20000,
}

// Piece-square tables, a1 first, as seen by White.

var pawnTable = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 10, 10, -20, -20, 10, 10, 5,
	5, -5, -10, 0, 0, -10, -5, 5,
	0, 0, 0, 20, 20, 0, 0, 0,
	5, 5, 10, 25, 25, 10, 5, 5,
	10, 10, 20, 30, 30, 20, 10, 10,
	50, 50, 50, 50, 50, 50, 50, 50,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightTable = [64]int{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

var bishopTable = [64]int{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-10, 5, 0, 0, 0, 0, 5, -10,
	-10, 10, 10, 10, 10, 10, 10, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 5, 5, 10, 10, 5, 5, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-20, -10, -10, -10, -10, -10, -10, -20,
}

var rookTable = [64]int{
	0, 0, 0, 5, 5, 0, 0, 0,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	5, 10, 10, 10, 10, 10, 10, 5,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var queenTable = [64]int{
	-20, -10, -10, -5, -5, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-5, 0, 5, 5, 5, 5, 0, -5,
	0, 0, 5, 5, 5, 5, 0, -5,
	-10, 5, 5, 5, 5, 5, 0, -10,
	-10, 0, 5, 0, 0, 0, 0, -10,
	-20, -10, -10, -5, -5, -10, -10, -20,
}

// Opening king table. There is no endgame variant.
var kingTable = [64]int{
	20, 30, 10, 0, 0, 10, 30, 20,
	20, 20, 0, 0, 0, 0, 20, 20,
	-10, -20, -20, -20, -20, -20, -20, -10,
	20, -30, -30, -40, -40, -30, -30, -20,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
}

// pieceTables[color][kind]. Knight and queen share one table between colours;
// the other black tables are the white ones reversed.
var pieceTables [2][len(materialValues)]*[64]int

func init() {
	white := &pieceTables[rules.White]
	white[rules.Pawn] = &pawnTable
	white[rules.Knight] = &knightTable
	white[rules.Bishop] = &bishopTable
	white[rules.Rook] = &rookTable
	white[rules.Queen] = &queenTable
	white[rules.King] = &kingTable

	black := &pieceTables[rules.Black]
	black[rules.Pawn] = reversed(&pawnTable)
	black[rules.Knight] = &knightTable
	black[rules.Bishop] = reversed(&bishopTable)
	black[rules.Rook] = reversed(&rookTable)
	black[rules.Queen] = &queenTable
	black[rules.King] = reversed(&kingTable)
}

func reversed(t *[64]int) *[64]int {
	var r [64]int
	for i, v := range t {
		r[len(r)-1-i] = v
	}
	return &r
}

// MaterialValue is the centipawn value of owning a piece of kind k.
func MaterialValue(k rules.PieceKind) int {
	return materialValues[k]
}

// PositionalValue is the square bonus for a piece of kind k and colour c on
// sq. It carries no sign for colour; the evaluator applies that.
func PositionalValue(k rules.PieceKind, c rules.Color, sq rules.Square) int {
	return pieceTables[c][k][sq]
}
