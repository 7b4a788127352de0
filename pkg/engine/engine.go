// Package engine wires the board, move generator, evaluator, game driver and search into the
// seven operations a thin front-end drives the core through.
package engine

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/mackrabeau/chess-engine/pkg/board"
	"github.com/mackrabeau/chess-engine/pkg/board/fen"
	"github.com/mackrabeau/chess-engine/pkg/eval"
	"github.com/mackrabeau/chess-engine/pkg/game"
	"github.com/mackrabeau/chess-engine/pkg/movegen"
	"github.com/mackrabeau/chess-engine/pkg/search"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
)

var version = build.NewVersion(0, 1, 0)

// DefaultHashSizeBytes is the transposition table size used when Options.HashSizeBytes is zero.
const DefaultHashSizeBytes = 64 << 20

// DefaultTimeLimit is the search budget used when Best is called with timeLimitMs <= 0.
const DefaultTimeLimit = 5 * time.Second

// Options are engine creation options.
type Options struct {
	// HashSizeBytes is the transposition table size. Zero selects DefaultHashSizeBytes.
	HashSizeBytes uint64
	// ZobristSeed seeds the engine's Zobrist table. Engines sharing a seed produce identical
	// hashes for identical positions -- required for deterministic tests.
	ZobristSeed int64
}

// Engine is a thin, mutex-guarded façade over one Game, one transposition table and a default
// evaluator, exposing the seven request/response operations of the external interface.
type Engine struct {
	name, author string
	opts         Options

	zt *board.ZobristTable
	tt *search.TranspositionTable
	ev eval.Evaluator

	mu sync.Mutex
	g  *game.Game
}

// New creates an engine positioned at the standard starting position.
func New(ctx context.Context, name, author string, opts Options) *Engine {
	if opts.HashSizeBytes == 0 {
		opts.HashSizeBytes = DefaultHashSizeBytes
	}

	e := &Engine{
		name:   name,
		author: author,
		opts:   opts,
		zt:     board.NewZobristTable(opts.ZobristSeed),
		ev:     eval.MaterialPST{},
	}
	_ = e.Reset(ctx)

	logw.Infof(ctx, "Initialized engine: %v", e.Name())
	return e
}

// Name returns the engine name and version.
func (e *Engine) Name() string {
	return fmt.Sprintf("%v %v", e.name, version)
}

// Author returns the engine author.
func (e *Engine) Author() string {
	return e.author
}

// Reset clears the transposition table and reloads the standard starting position.
func (e *Engine) Reset(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	logw.Infof(ctx, "Reset")

	b, err := fen.Parse(e.zt, fen.Initial)
	if err != nil {
		return err
	}
	e.g = game.New(e.zt, *b)
	e.tt = search.NewTranspositionTable(e.opts.HashSizeBytes)
	return nil
}

// Position returns the current position in FEN.
func (e *Engine) Position() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return fen.Format(e.g.Board())
}

const (
	printFiles      = "    a   b   c   d   e   f   g   h"
	printHorizontal = "  ---------------------------------"
)

// Print returns an ASCII rendering of the current position: a bordered 8x8 grid with file and
// rank labels, followed by the position FEN.
func (e *Engine) Print() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	b := e.g.Board()

	var sb strings.Builder
	sb.WriteString(printFiles + "\n")
	sb.WriteString(printHorizontal + "\n")
	for r := int(board.Rank8); r >= int(board.Rank1); r-- {
		sb.WriteString(board.Rank(r).String())
		sb.WriteString(" |")
		for f := board.ZeroFile; f < board.NumFiles; f++ {
			sq := board.NewSquare(f, board.Rank(r))
			glyph := " "
			if p := b.PieceAt(sq); p != board.Empty {
				glyph = p.String()
				if c, _ := b.ColourAt(sq); c == board.White {
					glyph = strings.ToUpper(glyph)
				}
			}
			sb.WriteString(" " + glyph + " |")
		}
		sb.WriteString("\n" + printHorizontal + "\n")
	}
	sb.WriteString(printFiles + "\n")
	sb.WriteString(fmt.Sprintf("fen: %v", fen.Format(b)))
	return sb.String()
}

// ErrInvalidMove is returned by Move when the string fails to parse as a UCI long-algebraic move.
type ErrInvalidMove struct{ Move string }

func (e ErrInvalidMove) Error() string { return fmt.Sprintf("invalid move: %q", e.Move) }

// ErrIllegalMove is returned by Move when the move parses but is not in the legal move list.
type ErrIllegalMove struct{ Move string }

func (e ErrIllegalMove) Error() string { return fmt.Sprintf("illegal move: %q", e.Move) }

// Move parses and applies a UCI long-algebraic move to the current position.
func (e *Engine) Move(ctx context.Context, uciMove string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	from, to, promo, err := board.ParseUCIMove(uciMove)
	if err != nil {
		return ErrInvalidMove{Move: uciMove}
	}

	m, ok := movegen.FindLegal(e.g.Board(), from, to, promo)
	if !ok {
		return ErrIllegalMove{Move: uciMove}
	}

	e.g.Push(m)
	logw.Infof(ctx, "Move %v: %v", m, e.g.Board())
	return nil
}

// State returns the current game-state classification.
func (e *Engine) State() game.GameState {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.g.State()
}

// Eval returns the static evaluation of the current position in centipawns from the side to
// move's perspective.
func (e *Engine) Eval(ctx context.Context) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return int(e.ev.Evaluate(ctx, e.g.Board()))
}

// Best searches timeLimitMs (or DefaultTimeLimit if <= 0) and returns the best move found in UCI
// long-algebraic form. Returns ("", false) if the current position has no legal moves; the
// terminal classification is then available via State().
func (e *Engine) Best(ctx context.Context, timeLimitMs int) (string, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	limit := DefaultTimeLimit
	if timeLimitMs > 0 {
		limit = time.Duration(timeLimitMs) * time.Millisecond
	}

	eng := search.Engine{TT: e.tt, Eval: e.ev}
	pv, ok := eng.FindBestMove(ctx, e.g, limit)
	if !ok {
		return "", false
	}

	logw.Infof(ctx, "Searched %v: %v", e.g.Board(), pv)
	return pv.Move.String(), true
}
