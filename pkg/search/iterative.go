package search

import (
	"context"
	"time"

	"github.com/mackrabeau/chess-engine/pkg/board"
	"github.com/mackrabeau/chess-engine/pkg/eval"
	"github.com/mackrabeau/chess-engine/pkg/game"
)

// FindBestMove runs iterative deepening from depth 1 until timeLimit elapses or MaxDepth is
// reached, keeping the best move of the last fully-completed depth. Returns false if the game has
// no legal moves to search (a terminal position); the caller should consult game.State() then.
func (e Engine) FindBestMove(ctx context.Context, g *game.Game, timeLimit time.Duration) (PV, bool) {
	legalMoves := g.LegalMoves(false)
	if legalMoves.Len() == 0 {
		return PV{}, false
	}

	g.SetFastMode(true)
	defer g.SetFastMode(false)

	start := time.Now()
	deadline := start.Add(timeLimit)

	var last PV
	var total Stats
	for depth := 1; depth <= MaxDepth; depth++ {
		r := &run{ctx: ctx, tt: e.TT, eval: e.Eval, g: g, deadline: deadline}
		if depth == 1 {
			// Depth 1 always runs to completion so that a move is produced whenever one exists;
			// only context cancellation can interrupt it.
			r.deadline = time.Time{}
		}

		score, move, err := r.negamax(depth, 0, eval.NegInf, eval.Inf)
		total.add(r.stats)
		if err == ErrTimeUp {
			break
		}
		if move == board.NoMove {
			// A mate or stalemate score at the root with no recorded best move: nothing deeper
			// to search.
			if depth == 1 {
				last = PV{Depth: depth, Score: score, Stats: total, Time: time.Since(start)}
			}
			break
		}

		last = PV{Depth: depth, Move: move, Score: score, Stats: total, Time: time.Since(start)}

		if time.Now().After(deadline) {
			break
		}
		if eval.IsMateScore(score) {
			break
		}
	}
	return last, last.Move != board.NoMove
}
