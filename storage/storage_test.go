package storage

import (
	"errors"
	"testing"
	"time"
)

func openArchive(t *testing.T) *Archive {
	t.Helper()
	a, err := OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory: %v", err)
	}
	t.Cleanup(func() { a.Close() })
	return a
}

func TestArchive(t *testing.T) {
	a := openArchive(t)

	rec := NewGameRecord("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", 3, "notnil")
	rec.AddMove("e2e4", 120*time.Millisecond)
	rec.AddMove("e7e5", 80*time.Millisecond)
	rec.Result = ResultDraw
	rec.FinalFEN = "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2"

	if err := a.SaveGame(rec); err != nil {
		t.Fatalf("SaveGame: %v", err)
	}

	t.Run("LoadGame", func(t *testing.T) {
		got, err := a.LoadGame(rec.ID)
		if err != nil {
			t.Fatalf("LoadGame: %v", err)
		}
		if got.StartFEN != rec.StartFEN || got.FinalFEN != rec.FinalFEN || got.Result != ResultDraw {
			t.Errorf("loaded %+v", got)
		}
		if len(got.Moves) != 2 || got.Moves[1] != "e7e5" {
			t.Errorf("moves = %v", got.Moves)
		}
		if len(got.SearchTimes) != 2 || got.SearchTimes[0] != 120*time.Millisecond {
			t.Errorf("search times = %v", got.SearchTimes)
		}
		if got.Depth != 3 || got.Backend != "notnil" || !got.PlayedAt.Equal(rec.PlayedAt) {
			t.Errorf("metadata = %d %s %v", got.Depth, got.Backend, got.PlayedAt)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		if _, err := a.LoadGame("missing"); !errors.Is(err, ErrGameNotFound) {
			t.Errorf("error = %v, want ErrGameNotFound", err)
		}
	})

	t.Run("ListGames", func(t *testing.T) {
		second := NewGameRecord(rec.StartFEN, 4, "dragon")
		second.ID = rec.ID + "-2"
		if err := a.SaveGame(second); err != nil {
			t.Fatalf("SaveGame: %v", err)
		}
		games, err := a.ListGames()
		if err != nil {
			t.Fatalf("ListGames: %v", err)
		}
		if len(games) != 2 || games[0].ID != rec.ID || games[1].ID != second.ID {
			t.Errorf("listed %d games", len(games))
		}
	})
}

func TestSaveGameRequiresID(t *testing.T) {
	a := openArchive(t)
	if err := a.SaveGame(&GameRecord{}); err == nil {
		t.Error("record without ID was saved")
	}
}

func TestNewGameRecord(t *testing.T) {
	rec := NewGameRecord("fen", 3, "notnil")
	if rec.ID == "" || rec.Result != ResultOngoing || rec.PlayedAt.IsZero() {
		t.Errorf("new record = %+v", rec)
	}
}
