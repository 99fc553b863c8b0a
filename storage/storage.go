// Package storage keeps a record of finished self-play games in BadgerDB.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
)

const gamePrefix = "game/"

var ErrGameNotFound = errors.New("storage: game not found")

// Game results, as written in PGN.
const (
	ResultWhiteWins = "1-0"
	ResultBlackWins = "0-1"
	ResultDraw      = "1/2-1/2"
	ResultOngoing   = "*"
)

// GameRecord describes one self-play run.
type GameRecord struct {
	ID          string          `json:"id"`
	StartFEN    string          `json:"start_fen"`
	FinalFEN    string          `json:"final_fen"`
	Moves       []string        `json:"moves"`
	Result      string          `json:"result"`
	Depth       int             `json:"depth"`
	Backend     string          `json:"backend"`
	SearchTimes []time.Duration `json:"search_times"`
	PlayedAt    time.Time       `json:"played_at"`
}

// NewGameRecord starts a record whose ID sorts by start time.
func NewGameRecord(startFEN string, depth int, backend string) *GameRecord {
	now := time.Now().UTC()
	return &GameRecord{
		ID:       now.Format("20060102T150405.000000000"),
		StartFEN: startFEN,
		Result:   ResultOngoing,
		Depth:    depth,
		Backend:  backend,
		PlayedAt: now,
	}
}

// AddMove appends a played move and the time spent finding it.
func (r *GameRecord) AddMove(move string, took time.Duration) {
	r.Moves = append(r.Moves, move)
	r.SearchTimes = append(r.SearchTimes, took)
}

// Archive wraps BadgerDB for game records.
type Archive struct {
	db *badger.DB
}

// Open opens (or creates) an archive in dir.
func Open(dir string) (*Archive, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging
	return open(opts)
}

// OpenInMemory opens an archive that lives only as long as the process.
func OpenInMemory() (*Archive, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil
	return open(opts)
}

func open(opts badger.Options) (*Archive, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("storage: open: %w", err)
	}
	return &Archive{db: db}, nil
}

func (a *Archive) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

func (a *Archive) SaveGame(rec *GameRecord) error {
	if rec.ID == "" {
		return errors.New("storage: game record has no ID")
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return a.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(gamePrefix+rec.ID), data)
	})
}

func (a *Archive) LoadGame(id string) (*GameRecord, error) {
	rec := &GameRecord{}
	err := a.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(gamePrefix + id))
		if err == badger.ErrKeyNotFound {
			return ErrGameNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, rec)
		})
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// ListGames returns every stored record ordered by ID.
func (a *Archive) ListGames() ([]*GameRecord, error) {
	var games []*GameRecord
	err := a.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(gamePrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			rec := &GameRecord{}
			if err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, rec)
			}); err != nil {
				return fmt.Errorf("storage: decoding %s: %w", strings.TrimPrefix(string(item.Key()), gamePrefix), err)
			}
			games = append(games, rec)
		}
		return nil
	})
	return games, err
}
