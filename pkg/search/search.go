// Package search implements negamax alpha-beta search with quiescence, iterative deepening and a
// transposition table. The search is single-threaded and synchronous: a single goroutine walks
// the game tree to completion or until the time budget expires, checked at every node.
package search

import (
	"errors"
	"fmt"
	"time"

	"github.com/mackrabeau/chess-engine/pkg/board"
	"github.com/mackrabeau/chess-engine/pkg/eval"
)

// ErrTimeUp is returned internally when the time budget expires mid-search; it never escapes
// FindBestMove, which discards the in-flight iteration and returns the previous depth's result.
var ErrTimeUp = errors.New("search: time up")

// MaxDepth bounds iterative deepening so a won or drawn position does not loop forever.
const MaxDepth = 64

// PV is the result of a completed iterative-deepening iteration.
type PV struct {
	Depth int
	Move  board.Move
	Score eval.Score
	Stats Stats
	Time  time.Duration
}

func (p PV) String() string {
	return fmt.Sprintf("depth=%v move=%v score=%v nodes=%v time=%v", p.Depth, p.Move, p.Score, p.Stats.Nodes, p.Time)
}

// Stats holds telemetry counters that do not affect search correctness.
type Stats struct {
	Nodes    uint64
	TTProbes uint64
	TTHits   uint64
}

func (s *Stats) add(o Stats) {
	s.Nodes += o.Nodes
	s.TTProbes += o.TTProbes
	s.TTHits += o.TTHits
}
