package search

import (
	"context"
	"time"

	"github.com/mackrabeau/chess-engine/pkg/board"
	"github.com/mackrabeau/chess-engine/pkg/eval"
	"github.com/mackrabeau/chess-engine/pkg/game"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// Engine runs negamax alpha-beta search with quiescence and a transposition table over a
// game.Game. It is not safe for concurrent use: a single search walks the tree synchronously,
// pushing and popping moves on the shared Game driver.
type Engine struct {
	TT   *TranspositionTable
	Eval eval.Evaluator
}

type run struct {
	ctx      context.Context
	tt       *TranspositionTable
	eval     eval.Evaluator
	g        *game.Game
	deadline time.Time
	stats    Stats
}

func (r *run) timeUp() bool {
	if !r.deadline.IsZero() && !time.Now().Before(r.deadline) {
		return true
	}
	return contextx.IsCancelled(r.ctx)
}

// negamax is the alpha-beta recursion. ply is the distance from the search root, used to prefer
// shorter mates over longer ones.
func (r *run) negamax(depth, ply int, alpha, beta eval.Score) (eval.Score, board.Move, error) {
	if r.timeUp() {
		return 0, board.NoMove, ErrTimeUp
	}
	r.stats.Nodes++

	hash := r.g.Board().Hash
	r.stats.TTProbes++
	var ttMove board.Move
	if bound, d, score, best, ok := r.tt.Probe(hash); ok {
		ttMove = best
		if d >= depth {
			score = mateFromTT(score, ply)
			switch {
			case bound == ExactBound:
				r.stats.TTHits++
				return score, best, nil
			case bound == LowerBound && score >= beta:
				r.stats.TTHits++
				return score, best, nil
			case bound == UpperBound && score <= alpha:
				r.stats.TTHits++
				return score, best, nil
			}
		}
	}

	if depth == 0 {
		score, err := r.quiescence(alpha, beta)
		return score, board.NoMove, err
	}

	legal := r.g.LegalMoves(false)
	if legal.Len() == 0 {
		if r.g.Board().InCheck() {
			return -eval.Mate + eval.Score(ply), board.NoMove, nil
		}
		return 0, board.NoMove, nil
	}

	origAlpha := alpha
	var best board.Move
	for _, m := range orderMoves(r.g.Board(), legal, ttMove) {
		r.g.Push(m)
		score, _, err := r.negamax(depth-1, ply+1, -beta, -alpha)
		r.g.Pop()
		if err != nil {
			return 0, board.NoMove, err
		}
		score = -score

		if score > alpha {
			alpha = score
			best = m
		}
		if alpha >= beta {
			r.tt.Store(hash, LowerBound, depth, mateToTT(alpha, ply), m)
			return alpha, m, nil
		}
	}

	bound := UpperBound
	if alpha > origAlpha {
		bound = ExactBound
	}
	r.tt.Store(hash, bound, depth, mateToTT(alpha, ply), best)
	return alpha, best, nil
}

// quiescence extends the search past the nominal horizon with stand-pat plus capture-only
// search, resolving horizon-effect tactics. Unbounded in depth but bounded in branching.
func (r *run) quiescence(alpha, beta eval.Score) (eval.Score, error) {
	if r.timeUp() {
		return 0, ErrTimeUp
	}
	r.stats.Nodes++

	stand := r.eval.Evaluate(r.ctx, r.g.Board())
	if stand >= beta {
		return stand, nil
	}
	if stand > alpha {
		alpha = stand
	}

	captures := r.g.LegalMoves(true)
	for _, m := range orderMoves(r.g.Board(), captures, board.NoMove) {
		r.g.Push(m)
		score, err := r.quiescence(-beta, -alpha)
		r.g.Pop()
		if err != nil {
			return 0, err
		}
		score = -score

		if score >= beta {
			return score, nil
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha, nil
}
