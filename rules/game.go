package rules

import (
	"fmt"
	"strings"

	"github.com/notnil/chess"
)

// Game is a Position backed by notnil/chess. Positions there are immutable, so
// Apply pushes the successor and Undo pops it; the stack grows by one entry
// per ply of search.
type Game struct {
	history []*chess.Position
}

func NewGame() *Game {
	return &Game{history: []*chess.Position{chess.StartingPosition()}}
}

// NewGameFromFEN returns a Game at the given position. A board-only FEN is
// completed with White to move and no castling or en passant rights.
func NewGameFromFEN(fen string) (*Game, error) {
	pos, err := ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	return &Game{history: []*chess.Position{pos}}, nil
}

// ParseFEN validates fen and returns the notnil position it describes. A
// board-only FEN gets White to move and the castling rights its kings and
// rooks still allow from their home squares.
func ParseFEN(fen string) (*chess.Position, error) {
	fen = strings.TrimSpace(fen)
	boardOnly := len(strings.Fields(fen)) == 1
	if boardOnly {
		fen += " w - - 0 1"
	}
	pos, err := decodeFEN(fen)
	if err != nil {
		return nil, err
	}
	if boardOnly {
		if rights := castlingRights(pos.Board()); rights != "-" {
			pos, err = decodeFEN(strings.Fields(fen)[0] + " w " + rights + " - 0 1")
			if err != nil {
				return nil, err
			}
		}
	}
	if err := checkPlayable(pos); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFEN, err)
	}
	return pos, nil
}

func decodeFEN(fen string) (*chess.Position, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFEN, err)
	}
	return chess.NewGame(opt).Position(), nil
}

// Position returns the current notnil position.
func (g *Game) Position() *chess.Position {
	return g.history[len(g.history)-1]
}

// Ply is the number of moves applied and not yet undone.
func (g *Game) Ply() int {
	return len(g.history) - 1
}

func (g *Game) LegalMoves() []Move {
	valid := g.Position().ValidMoves()
	moves := make([]Move, len(valid))
	for i, m := range valid {
		moves[i] = m
	}
	return moves
}

func (g *Game) Apply(m Move) {
	cm, ok := m.(*chess.Move)
	if !ok {
		panic(fmt.Sprintf("rules: %T is not a notnil move", m))
	}
	g.history = append(g.history, g.Position().Update(cm))
}

func (g *Game) Undo() {
	n := len(g.history)
	if n < 2 {
		panic("rules: undo without a matching apply")
	}
	g.history[n-1] = nil
	g.history = g.history[:n-1]
}

func (g *Game) IsCheckmate() bool {
	return g.Position().Status() == chess.Checkmate
}

func (g *Game) IsStalemate() bool {
	return g.Position().Status() == chess.Stalemate
}

func (g *Game) PieceAt(sq Square) (Piece, bool) {
	pc := g.Position().Board().Piece(chess.Square(sq))
	if pc == chess.NoPiece {
		return Piece{}, false
	}
	color := White
	if pc.Color() == chess.Black {
		color = Black
	}
	return Piece{Kind: kindOf(pc.Type()), Color: color}, true
}

func (g *Game) SideToMove() Color {
	if g.Position().Turn() == chess.Black {
		return Black
	}
	return White
}

func (g *Game) FEN() string {
	return g.Position().String()
}

func kindOf(t chess.PieceType) PieceKind {
	switch t {
	case chess.Pawn:
		return Pawn
	case chess.Knight:
		return Knight
	case chess.Bishop:
		return Bishop
	case chess.Rook:
		return Rook
	case chess.Queen:
		return Queen
	default:
		return King
	}
}

// Clone returns a Game at the current position with no undo history.
func (g *Game) Clone() *Game {
	return &Game{history: []*chess.Position{g.Position()}}
}
