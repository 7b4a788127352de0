// Package movegen generates pseudo-legal and legal chess moves from a board.Board.
package movegen

import "github.com/mackrabeau/chess-engine/pkg/board"

// scratchZobrist backs the legality filter's scratch-board applies. The filter only inspects
// InCheckColor on the result, never the Zobrist key, so any deterministic table works here --
// it does not need to be the same table the game driver uses for transposition lookups.
var scratchZobrist = board.NewZobristTable(1)

// AttackedBy returns the union of all squares attacked by colour c's pieces under the current
// occupancy. Re-exposed here (the computation itself lives in package board, since Board.InCheck
// needs it too) so that callers who only import movegen get the operation named in this
// package's contract.
func AttackedBy(b *board.Board, c board.Color) board.Bitboard {
	return board.AttackedBy(b, c)
}

// GenerateLegal returns every legal move available to the side to move. When capturesOnly is
// true, only moves with the capture bit set are returned -- used by quiescence search.
func GenerateLegal(b *board.Board, capturesOnly bool) board.MoveList {
	var pseudo board.MoveList
	generatePseudoLegal(b, &pseudo)

	var legal board.MoveList
	turn := b.Turn()
	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.At(i)
		if capturesOnly && !m.IsCapture() {
			continue
		}
		next := b.ApplyMove(scratchZobrist, m)
		if !next.InCheckColor(turn) {
			legal.Add(m)
		}
	}
	return legal
}

// IsLegal reports whether some legal move takes the piece on `from` to `to`, for external
// collaborators that validate a user-supplied move before pushing it. Since promotions have four
// different moves between the same two squares, a caller that needs a specific promotion kind
// should use FindLegal instead (as the engine façade does).
func IsLegal(b *board.Board, from, to board.Square) bool {
	legal := GenerateLegal(b, false)
	for i := 0; i < legal.Len(); i++ {
		m := legal.At(i)
		if m.From() == from && m.To() == to {
			return true
		}
	}
	return false
}

// FindLegal returns the legal move from `from` to `to`, disambiguated by promo when the
// destination is reachable by more than one promotion kind. Returns false if no such legal move
// exists.
func FindLegal(b *board.Board, from, to board.Square, promo board.Piece) (board.Move, bool) {
	legal := GenerateLegal(b, false)
	for i := 0; i < legal.Len(); i++ {
		m := legal.At(i)
		if m.From() != from || m.To() != to {
			continue
		}
		if m.IsPromotion() && m.Flag().PromotionPiece() != promo {
			continue
		}
		return m, true
	}
	return board.NoMove, false
}
