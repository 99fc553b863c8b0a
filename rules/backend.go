package rules

import "fmt"

// Backend names accepted by Open.
const (
	BackendNotnil = "notnil"
	BackendDragon = "dragon"
)

// Open returns a Position for the named backend. An empty fen selects the
// standard initial position.
func Open(backend, fen string) (Position, error) {
	if fen == "" {
		fen = DefaultFEN
	}
	switch backend {
	case BackendNotnil, "":
		g, err := NewGameFromFEN(fen)
		if err != nil {
			return nil, err
		}
		return g, nil
	case BackendDragon:
		b, err := NewBitboardFromFEN(fen)
		if err != nil {
			return nil, err
		}
		return b, nil
	}
	return nil, fmt.Errorf("rules: unknown backend %q", backend)
}

// Clone copies p without its undo history, so a search can run on the copy
// while p is read elsewhere.
func Clone(p Position) Position {
	switch p := p.(type) {
	case *Game:
		return p.Clone()
	case *Bitboard:
		return p.Clone()
	}
	panic(fmt.Sprintf("rules: cannot clone %T", p))
}
