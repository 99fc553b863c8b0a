package main

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/Momofil31/AlphaBetaChess/bots"
	"github.com/Momofil31/AlphaBetaChess/rules"
	"github.com/Momofil31/AlphaBetaChess/storage"
)

func TestPlayStopsOnCheckmate(t *testing.T) {
	for _, backend := range []string{rules.BackendNotnil, rules.BackendDragon} {
		t.Run(backend, func(t *testing.T) {
			pos, err := rules.Open(backend, "r1bqkbnr/pppp1ppp/2n5/4p3/2B1P3/5Q2/PPPP1PPP/RNB1K1NR w KQkq - 4 4")
			if err != nil {
				t.Fatal(err)
			}
			rec := storage.NewGameRecord(pos.FEN(), 3, backend)
			var out bytes.Buffer

			result := play(pos, bots.NewAlphaBetaBot(3), 10, &out, rec)
			if result != storage.ResultWhiteWins {
				t.Errorf("result = %s, want 1-0\n%s", result, out.String())
			}
			if len(rec.Moves) != 1 || rec.Moves[0] != "f3f7" {
				t.Errorf("moves = %v, want [f3f7]", rec.Moves)
			}
			text := out.String()
			for _, want := range []string{"Initial state:", "White moves", "1: Search performed in", "move f3f7:", "Black moves", "Checkmate!"} {
				if !strings.Contains(text, want) {
					t.Errorf("output lacks %q:\n%s", want, text)
				}
			}
		})
	}
}

func TestPlayStopsOnStalemate(t *testing.T) {
	pos, err := rules.Open(rules.BackendNotnil, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	rec := storage.NewGameRecord(pos.FEN(), 3, rules.BackendNotnil)
	if result := play(pos, bots.NewAlphaBetaBot(3), 5, &out, rec); result != storage.ResultDraw {
		t.Errorf("result = %s, want 1/2-1/2", result)
	}
	if len(rec.Moves) != 0 || !strings.Contains(out.String(), "Stalemate!") {
		t.Errorf("moves %v, output:\n%s", rec.Moves, out.String())
	}
}

func TestPlayHonoursPlyLimit(t *testing.T) {
	pos, err := rules.Open(rules.BackendDragon, "")
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	rec := storage.NewGameRecord(pos.FEN(), 2, rules.BackendDragon)
	if result := play(pos, bots.NewAlphaBetaBot(2), 4, &out, rec); result != storage.ResultOngoing {
		t.Errorf("result = %s, want *", result)
	}
	if len(rec.Moves) != 4 || len(rec.SearchTimes) != 4 {
		t.Errorf("recorded %d moves and %d timings, want 4", len(rec.Moves), len(rec.SearchTimes))
	}
	if pos.SideToMove() != rules.White {
		t.Errorf("after 4 plies %s is to move", pos.SideToMove())
	}
}

func TestAskFEN(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"y\n8/8/8/8/8/8/8/K6k\n", "8/8/8/8/8/8/8/K6k"},
		{"YES\n 8/8/8/8/8/8/8/K6k w - - 0 1 \n", "8/8/8/8/8/8/8/K6k w - - 0 1"},
		{"n\n", "fallback"},
		{"", "fallback"},
	}
	for _, tt := range tests {
		var out bytes.Buffer
		got := askFEN(bufio.NewReader(strings.NewReader(tt.input)), &out, "fallback")
		if got != tt.want {
			t.Errorf("askFEN(%q) = %q, want %q", tt.input, got, tt.want)
		}
		if !strings.Contains(out.String(), "Would you like to provide a FEN string?") {
			t.Errorf("prompt missing from %q", out.String())
		}
	}
}

func TestOpenStartFallsBackOnInvalidFEN(t *testing.T) {
	invalid := []string{
		"not a fen",
		"8/8/8/8/8/8/8/8",
		"8/8/8/8/8/8/4P3/8",
		"4k3/4Q3/8/8/8/8/8/4K3",
	}
	for _, backend := range []string{rules.BackendNotnil, rules.BackendDragon} {
		initial, err := rules.Open(backend, "")
		if err != nil {
			t.Fatal(err)
		}
		for _, fen := range invalid {
			t.Run(backend+"/"+fen, func(t *testing.T) {
				var out bytes.Buffer
				pos, err := openStart(backend, fen, &out, zerolog.Nop())
				if err != nil {
					t.Fatalf("openStart: %v", err)
				}
				if pos.FEN() != initial.FEN() {
					t.Errorf("started from %s, want the initial position", pos.FEN())
				}
				if !strings.Contains(out.String(), "FEN string is invalid") {
					t.Errorf("output = %q", out.String())
				}
				if a := bots.NewAlphaBetaBot(3).Analyze(pos); a.Move == nil {
					t.Error("no move from the initial position")
				}
			})
		}
	}
}

func TestOpenStartKeepsValidFEN(t *testing.T) {
	const fen = "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1"
	var out bytes.Buffer
	pos, err := openStart(rules.BackendDragon, fen, &out, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	if p, ok := pos.PieceAt(rules.NewSquare(4, 1)); !ok || p != (rules.Piece{Kind: rules.Pawn, Color: rules.White}) {
		t.Errorf("e2 = %+v, %v; want white pawn", p, ok)
	}
	if out.Len() != 0 {
		t.Errorf("unexpected output %q", out.String())
	}
}
