package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Momofil31/AlphaBetaChess/bots"
	"github.com/Momofil31/AlphaBetaChess/rules"
	"github.com/Momofil31/AlphaBetaChess/storage"
)

// askFEN asks whether the user wants to supply a starting position and
// returns it, or fallback when they decline.
func askFEN(r *bufio.Reader, w io.Writer, fallback string) string {
	fmt.Fprintln(w, "Would you like to provide a FEN string? (y/n)")
	answer, _ := r.ReadString('\n')
	answer = strings.ToLower(strings.TrimSpace(answer))
	if answer != "y" && answer != "yes" {
		return fallback
	}
	fmt.Fprintln(w, "Provide FEN string")
	fen, _ := r.ReadString('\n')
	return strings.TrimSpace(fen)
}

// openStart opens fen on backend. A FEN the rules reject is reported on w
// and play starts from the initial position instead.
func openStart(backend, fen string, w io.Writer, logger zerolog.Logger) (rules.Position, error) {
	pos, err := rules.Open(backend, fen)
	if err == nil {
		return pos, nil
	}
	fmt.Fprintln(w, "FEN string is invalid")
	logger.Warn().Err(err).Str("fen", fen).Msg("starting from the initial position")
	return rules.Open(backend, "")
}

// play lets bot move for both sides for at most maxPlies plies, stopping
// early on checkmate or stalemate, and returns the game result.
func play(pos rules.Position, bot *bots.AlphaBetaBot, maxPlies int, w io.Writer, rec *storage.GameRecord) string {
	fmt.Fprintf(w, "Initial state:\n%s\n", rules.Draw(pos))
	for i := 0; i < maxPlies; i++ {
		fmt.Fprintf(w, "%s moves\n", pos.SideToMove())

		if pos.IsCheckmate() {
			fmt.Fprintf(w, "Checkmate!\n%s\n", pos.FEN())
			if pos.SideToMove() == rules.White {
				return storage.ResultBlackWins
			}
			return storage.ResultWhiteWins
		}
		if pos.IsStalemate() {
			fmt.Fprintln(w, "Stalemate!")
			return storage.ResultDraw
		}

		a := bot.Analyze(pos)
		if a.Move == nil {
			break
		}
		pos.Apply(a.Move)
		rec.AddMove(a.Move.String(), a.Elapsed)
		fmt.Fprintf(w, "%d: Search performed in %.3f seconds, move %s:\n%s\n",
			i+1, a.Elapsed.Seconds(), a.Move, rules.Draw(pos))
	}
	return storage.ResultOngoing
}
