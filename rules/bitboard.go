package rules

import (
	"fmt"

	dragon "github.com/dylhunn/dragontoothmg"
)

// Bitboard is a Position backed by dragontoothmg. The board is mutated in
// place; each Apply keeps the unapply closure dragontoothmg returns so that
// Undo can reverse it.
type Bitboard struct {
	board   dragon.Board
	unapply []func()
}

type bitboardMove struct {
	m dragon.Move
}

func (bm bitboardMove) String() string {
	m := bm.m
	return m.String()
}

func NewBitboard() *Bitboard {
	return &Bitboard{board: dragon.ParseFen(DefaultFEN)}
}

// NewBitboardFromFEN validates fen the same way NewGameFromFEN does before
// handing it to dragontoothmg, whose parser does not report errors.
func NewBitboardFromFEN(fen string) (*Bitboard, error) {
	pos, err := ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	return &Bitboard{board: dragon.ParseFen(pos.String())}, nil
}

func (b *Bitboard) LegalMoves() []Move {
	legal := b.board.GenerateLegalMoves()
	moves := make([]Move, len(legal))
	for i, m := range legal {
		moves[i] = bitboardMove{m: m}
	}
	return moves
}

func (b *Bitboard) Apply(m Move) {
	bm, ok := m.(bitboardMove)
	if !ok {
		panic(fmt.Sprintf("rules: %T is not a dragontoothmg move", m))
	}
	b.unapply = append(b.unapply, b.board.Apply(bm.m))
}

func (b *Bitboard) Undo() {
	n := len(b.unapply)
	if n == 0 {
		panic("rules: undo without a matching apply")
	}
	undo := b.unapply[n-1]
	b.unapply[n-1] = nil
	b.unapply = b.unapply[:n-1]
	undo()
}

func (b *Bitboard) IsCheckmate() bool {
	return b.board.OurKingInCheck() && len(b.board.GenerateLegalMoves()) == 0
}

func (b *Bitboard) IsStalemate() bool {
	return !b.board.OurKingInCheck() && len(b.board.GenerateLegalMoves()) == 0
}

func (b *Bitboard) PieceAt(sq Square) (Piece, bool) {
	bit := uint64(1) << uint(sq)
	switch {
	case b.board.White.All&bit != 0:
		return Piece{Kind: bitboardKind(&b.board.White, bit), Color: White}, true
	case b.board.Black.All&bit != 0:
		return Piece{Kind: bitboardKind(&b.board.Black, bit), Color: Black}, true
	}
	return Piece{}, false
}

func (b *Bitboard) SideToMove() Color {
	if b.board.Wtomove {
		return White
	}
	return Black
}

func (b *Bitboard) FEN() string {
	return b.board.ToFen()
}

func bitboardKind(bbs *dragon.Bitboards, bit uint64) PieceKind {
	switch {
	case bbs.Pawns&bit != 0:
		return Pawn
	case bbs.Knights&bit != 0:
		return Knight
	case bbs.Bishops&bit != 0:
		return Bishop
	case bbs.Rooks&bit != 0:
		return Rook
	case bbs.Queens&bit != 0:
		return Queen
	}
	return King
}

// Clone returns a Bitboard at the current position with no undo history.
func (b *Bitboard) Clone() *Bitboard {
	return &Bitboard{board: b.board}
}
