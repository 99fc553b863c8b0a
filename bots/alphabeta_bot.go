package bots

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/Momofil31/AlphaBetaChess/rules"
)

// AlphaBetaBot searches a fixed number of plies with alpha-beta pruning.
// White nodes maximise and Black nodes minimise the evaluator's score.
// A bot keeps per-search counters and must not be shared between goroutines.
type AlphaBetaBot struct {
	Depth     int
	Evaluator PositionEvaluator
	Logger    zerolog.Logger
	nodes     int
}

// Analysis is the result of a top-level search.
type Analysis struct {
	Move    rules.Move // nil when no move was selected
	Score   Score
	Nodes   int
	Elapsed time.Duration
}

func NewAlphaBetaBot(depth int) *AlphaBetaBot {
	return &AlphaBetaBot{
		Depth:     depth,
		Evaluator: PieceSquareEvaluator{},
		Logger:    zerolog.Nop(),
	}
}

func (b *AlphaBetaBot) Name() string {
	return fmt.Sprintf("AlphaBeta Bot (depth %d)", b.Depth)
}

// BestMove picks a move for the side to move. The position must not be
// checkmate or stalemate; on such a position it reports false.
func (b *AlphaBetaBot) BestMove(pos rules.Position) (rules.Move, bool) {
	a := b.Analyze(pos)
	return a.Move, a.Move != nil
}

// Analyze runs the top-level search, Depth-1 plies deep. When every move
// scores exactly the worst possible value no move beats the initial bound, so
// the first legal move is returned instead.
func (b *AlphaBetaBot) Analyze(pos rules.Position) Analysis {
	start := time.Now()
	score, move, ok := b.Search(pos, b.Depth-1)
	if !ok && b.Depth > 1 {
		if moves := pos.LegalMoves(); len(moves) > 0 {
			move = moves[0]
		}
	}
	a := Analysis{Move: move, Score: score, Nodes: b.nodes, Elapsed: time.Since(start)}

	ev := b.Logger.Debug().
		Int("depth", b.Depth).
		Str("score", a.Score.String()).
		Int("nodes", a.Nodes).
		Dur("elapsed", a.Elapsed)
	if a.Move != nil {
		ev = ev.Str("move", a.Move.String())
	}
	ev.Msg("search finished")
	return a
}

// Search returns the minimax value of pos at the given depth and the move
// that achieves it. At depth 0, or when no legal move exists, no move is
// returned. pos is left exactly as it was passed in.
func (b *AlphaBetaBot) Search(pos rules.Position, depth int) (Score, rules.Move, bool) {
	b.nodes = 0
	var best scoredMove
	if pos.SideToMove() == rules.White {
		best = b.maxValue(pos, depth, -Inf, Inf)
	} else {
		best = b.minValue(pos, depth, -Inf, Inf)
	}
	return best.score, best.move, best.move != nil
}

// Nodes is the number of nodes the last search visited.
func (b *AlphaBetaBot) Nodes() int {
	return b.nodes
}

func (b *AlphaBetaBot) maxValue(pos rules.Position, depth int, alpha, beta Score) scoredMove {
	b.nodes++
	if depth <= 0 {
		return scoredMove{nil, b.Evaluator.Evaluate(pos)}
	}

	best := scoredMove{score: -Inf}
	for _, move := range pos.LegalMoves() {
		pos.Apply(move)
		current := b.minValue(pos, depth-1, alpha, beta)
		pos.Undo()

		if current.score > best.score {
			best = scoredMove{move, current.score}
			alpha = max(alpha, best.score)
		}
		if alpha >= beta {
			return best
		}
	}
	return best
}

func (b *AlphaBetaBot) minValue(pos rules.Position, depth int, alpha, beta Score) scoredMove {
	b.nodes++
	if depth <= 0 {
		return scoredMove{nil, b.Evaluator.Evaluate(pos)}
	}

	best := scoredMove{score: Inf}
	for _, move := range pos.LegalMoves() {
		pos.Apply(move)
		current := b.maxValue(pos, depth-1, alpha, beta)
		pos.Undo()

		if current.score < best.score {
			best = scoredMove{move, current.score}
			beta = min(beta, best.score)
		}
		if alpha >= beta {
			return best
		}
	}
	return best
}
