// Package game owns a Board plus its make/unmake history and classifies terminal game states.
package game

import (
	"github.com/mackrabeau/chess-engine/pkg/board"
	"github.com/mackrabeau/chess-engine/pkg/movegen"
)

// GameState classifies the current position.
type GameState int

const (
	Ongoing GameState = iota
	Checkmate
	Stalemate
	DrawRepetition
	Draw50Move
	DrawInsufficientMaterial
)

func (s GameState) String() string {
	switch s {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case DrawRepetition:
		return "draw_repetition"
	case Draw50Move:
		return "draw_50_move"
	case DrawInsufficientMaterial:
		return "draw_insufficient_material"
	default:
		return "ongoing"
	}
}

func (s GameState) IsTerminal() bool {
	return s != Ongoing
}

// Game owns a Board, an ordered stack of prior Board snapshots (the make/unmake history), and a
// cached GameState recomputed on every push/pop. The full Board -- not just the packed GameInfo
// word -- is snapshotted, since the halfmove clock lives outside the packed word.
type Game struct {
	zt *board.ZobristTable

	board   board.Board
	history []board.Board

	// fast disables game-state classification on push/pop entirely: the search detects mate and
	// stalemate itself from an empty legal-move list and never consults State, so re-classifying
	// at every node (a full legal-move generation plus the draw checks) would only slow the hot
	// path down. User-facing queries always run with it off.
	fast bool

	state GameState
}

// New returns a Game positioned at b.
func New(zt *board.ZobristTable, b board.Board) *Game {
	g := &Game{zt: zt, board: b}
	g.state = g.classify()
	return g
}

func (g *Game) Board() *board.Board { return &g.board }

// SetFastMode toggles the classification fast path, in which State always reports Ongoing. See
// the comment on the fast field.
func (g *Game) SetFastMode(fast bool) {
	g.fast = fast
	g.state = g.classify()
}

// Push copies the current position onto the history stack, applies move, and recomputes state.
func (g *Game) Push(m board.Move) {
	g.history = append(g.history, g.board)
	g.board = g.board.ApplyMove(g.zt, m)
	g.state = g.classify()
}

// Pop restores the position from the top of the history stack. No-op on an empty stack.
func (g *Game) Pop() {
	n := len(g.history)
	if n == 0 {
		return
	}
	g.board = g.history[n-1]
	g.history = g.history[:n-1]
	g.state = g.classify()
}

// MakeCopy returns the Board that results from applying move to the current position, without
// mutating the driver. Used by perft and other copy-based callers that never unmake.
func (g *Game) MakeCopy(m board.Move) board.Board {
	return g.board.ApplyMove(g.zt, m)
}

// LegalMoves delegates to the move generator against the current Board.
func (g *Game) LegalMoves(capturesOnly bool) board.MoveList {
	return movegen.GenerateLegal(&g.board, capturesOnly)
}

// State returns the cached classification of the current position.
func (g *Game) State() GameState { return g.state }

func (g *Game) classify() GameState {
	if g.fast {
		return Ongoing
	}
	legal := movegen.GenerateLegal(&g.board, false)
	if legal.Len() == 0 {
		if g.board.InCheck() {
			return Checkmate
		}
		return Stalemate
	}
	if g.board.Halfmove >= 100 {
		return Draw50Move
	}
	if g.board.HasInsufficientMaterial() {
		return DrawInsufficientMaterial
	}
	if g.repetitionCount() >= 3 {
		return DrawRepetition
	}
	return Ongoing
}

// repetitionCount returns how many times the current Zobrist key has appeared across history
// plus the current position.
func (g *Game) repetitionCount() int {
	count := 1
	for _, h := range g.history {
		if h.Hash == g.board.Hash {
			count++
		}
	}
	return count
}
