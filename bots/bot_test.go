package bots

import (
	"testing"

	"github.com/Momofil31/AlphaBetaChess/rules"
)

func TestBotsPlayLegalMoves(t *testing.T) {
	all := []ChessBot{
		NewNewbornBot(),
		NewRandomBot(7),
		NewAlphaBetaBot(2),
		NewMinimaxBot(2),
	}
	for _, bot := range all {
		t.Run(bot.Name(), func(t *testing.T) {
			pos := openPosition(t, rules.BackendDragon, middlegameFEN)
			legal := make(map[string]bool)
			for _, m := range pos.LegalMoves() {
				legal[m.String()] = true
			}
			m, ok := bot.BestMove(pos)
			if !ok || !legal[m.String()] {
				t.Errorf("BestMove = %v, %v; want a legal move", m, ok)
			}
			if _, ok := bot.BestMove(openPosition(t, rules.BackendDragon, foolsMateFEN)); ok {
				t.Error("BestMove returned a move on a checkmated position")
			}
		})
	}
}

func TestNewbornPlaysFirstMove(t *testing.T) {
	pos := openPosition(t, rules.BackendNotnil, rules.DefaultFEN)
	m, _ := NewNewbornBot().BestMove(pos)
	if want := pos.LegalMoves()[0].String(); m.String() != want {
		t.Errorf("got %s, want %s", m, want)
	}
}

func TestRandomBotIsSeeded(t *testing.T) {
	pos := openPosition(t, rules.BackendNotnil, rules.DefaultFEN)
	a, b := NewRandomBot(42), NewRandomBot(42)
	for i := 0; i < 10; i++ {
		m1, _ := a.BestMove(pos)
		m2, _ := b.BestMove(pos)
		if m1.String() != m2.String() {
			t.Fatalf("move %d: %s and %s from the same seed", i, m1, m2)
		}
	}
}

func TestBotNames(t *testing.T) {
	if got := NewAlphaBetaBot(3).Name(); got != "AlphaBeta Bot (depth 3)" {
		t.Errorf("Name() = %q", got)
	}
	if got := NewMinimaxBot(4).Name(); got != "Minimax Bot (depth 4)" {
		t.Errorf("Name() = %q", got)
	}
}
