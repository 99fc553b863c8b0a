// Package rules is the board-rules layer the bots search through: legal move
// generation, apply/undo, terminal detection and piece lookup.
package rules

import (
	"errors"
	"strings"
)

// DefaultFEN is the standard initial position.
const DefaultFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var ErrInvalidFEN = errors.New("rules: invalid FEN")

type Color int

const (
	White Color = iota
	Black
)

func (c Color) Other() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

type PieceKind int

const (
	Pawn PieceKind = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

// PieceKinds lists every kind in declaration order.
var PieceKinds = [...]PieceKind{Pawn, Knight, Bishop, Rook, Queen, King}

func (k PieceKind) String() string {
	return [...]string{"Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}[k]
}

// Square numbers the board 0..63 from a1 (0) to h8 (63); rank 0 is White's back rank.
type Square int

const NumSquares = 64

func NewSquare(file, rank int) Square { return Square(rank*8 + file) }

func (sq Square) File() int { return int(sq) % 8 }
func (sq Square) Rank() int { return int(sq) / 8 }

func (sq Square) String() string {
	return string([]byte{byte('a' + sq.File()), byte('1' + sq.Rank())})
}

type Piece struct {
	Kind  PieceKind
	Color Color
}

// Letter returns the FEN letter of the piece, upper case for White.
func (p Piece) Letter() string {
	l := "pnbrqk"[p.Kind : p.Kind+1]
	if p.Color == White {
		return strings.ToUpper(l)
	}
	return l
}

// Move identifies one legal transition from the position that produced it.
// Moves are only meaningful to the backend that generated them.
type Move interface {
	String() string
}

// Position is a mutable game state. Apply and Undo must balance: every Apply
// is reversed by exactly one Undo, which restores the previous state exactly.
type Position interface {
	LegalMoves() []Move
	Apply(m Move)
	Undo()
	IsCheckmate() bool
	IsStalemate() bool
	PieceAt(sq Square) (Piece, bool)
	SideToMove() Color
	FEN() string
}

// Draw renders the position as an 8x8 grid, rank 8 first.
func Draw(p Position) string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			if file > 0 {
				sb.WriteByte(' ')
			}
			if pc, ok := p.PieceAt(NewSquare(file, rank)); ok {
				sb.WriteString(pc.Letter())
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
