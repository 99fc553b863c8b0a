package rules

import (
	"errors"
	"fmt"
	"strings"

	dragon "github.com/dylhunn/dragontoothmg"
	"github.com/notnil/chess"
)

var castlingHomes = []struct {
	king, rook     chess.Piece
	kingSq, rookSq chess.Square
	right          string
}{
	{chess.WhiteKing, chess.WhiteRook, chess.E1, chess.H1, "K"},
	{chess.WhiteKing, chess.WhiteRook, chess.E1, chess.A1, "Q"},
	{chess.BlackKing, chess.BlackRook, chess.E8, chess.H8, "k"},
	{chess.BlackKing, chess.BlackRook, chess.E8, chess.A8, "q"},
}

// castlingRights returns the FEN castling field for every king and rook pair
// still on its home squares, or "-".
func castlingRights(b *chess.Board) string {
	var rights strings.Builder
	for _, h := range castlingHomes {
		if b.Piece(h.kingSq) == h.king && b.Piece(h.rookSq) == h.rook {
			rights.WriteString(h.right)
		}
	}
	if rights.Len() == 0 {
		return "-"
	}
	return rights.String()
}

// checkPlayable rejects positions that parse but cannot arise in a game:
// anything but one king per side, pawns on a back rank, or the side that
// just moved left in check. Move generators index squares by king position
// and do not survive such boards.
func checkPlayable(pos *chess.Position) error {
	var whiteKings, blackKings int
	for sq, pc := range pos.Board().SquareMap() {
		switch pc.Type() {
		case chess.King:
			if pc.Color() == chess.White {
				whiteKings++
			} else {
				blackKings++
			}
		case chess.Pawn:
			if sq.Rank() == chess.Rank1 || sq.Rank() == chess.Rank8 {
				return fmt.Errorf("pawn on %s", sq)
			}
		}
	}
	if whiteKings != 1 || blackKings != 1 {
		return fmt.Errorf("need one king per side, have %d white and %d black", whiteKings, blackKings)
	}

	idle := "b"
	if pos.Turn() == chess.Black {
		idle = "w"
	}
	placement := strings.Fields(pos.String())[0]
	flipped := dragon.ParseFen(placement + " " + idle + " - - 0 1")
	if flipped.OurKingInCheck() {
		return errors.New("the side not to move is in check")
	}
	return nil
}
