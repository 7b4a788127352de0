package search

import (
	"sort"

	"github.com/mackrabeau/chess-engine/pkg/board"
	"github.com/mackrabeau/chess-engine/pkg/eval"
)

// ttPriority outranks every MVV/LVA capture score, guaranteeing the TT best move (if any) is
// searched first.
const ttPriority = 1 << 20

func pieceValue(p board.Piece) int {
	switch p {
	case board.Pawn:
		return int(eval.PawnValue)
	case board.Knight:
		return int(eval.KnightValue)
	case board.Bishop:
		return int(eval.BishopValue)
	case board.Rook:
		return int(eval.RookValue)
	case board.Queen:
		return int(eval.QueenValue)
	default:
		return 0
	}
}

// mvvLva scores a capture by victim value minus attacker value, favoring capturing a high-value
// piece with a low-value one.
func mvvLva(b *board.Board, m board.Move) int {
	attacker := b.PieceAt(m.From())
	victim := board.Pawn
	if m.Flag() != board.FlagEnPassant {
		victim = b.PieceAt(m.To())
	}
	return 1000 + 10*pieceValue(victim) - pieceValue(attacker)
}

// orderMoves returns legal in descending search priority: the TT best move first, then captures
// by MVV/LVA, then quiet moves in generator order.
func orderMoves(b *board.Board, legal board.MoveList, ttMove board.Move) []board.Move {
	moves := make([]board.Move, legal.Len())
	scores := make([]int, legal.Len())
	for i := 0; i < legal.Len(); i++ {
		m := legal.At(i)
		moves[i] = m
		switch {
		case ttMove != board.NoMove && m == ttMove:
			scores[i] = ttPriority
		case m.IsCapture():
			scores[i] = mvvLva(b, m)
		default:
			scores[i] = 0
		}
	}

	idx := make([]int, legal.Len())
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		return scores[idx[i]] > scores[idx[j]]
	})

	ordered := make([]board.Move, legal.Len())
	for i, k := range idx {
		ordered[i] = moves[k]
	}
	return ordered
}
