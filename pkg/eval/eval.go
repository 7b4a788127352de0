// Package eval contains static position evaluation: material balance plus piece-square tables.
package eval

import (
	"context"

	"github.com/mackrabeau/chess-engine/pkg/board"
)

// Evaluator is a static position evaluator.
type Evaluator interface {
	// Evaluate returns the position score in centipawns from the side-to-move's perspective.
	Evaluate(ctx context.Context, b *board.Board) Score
}

// Material weights in centipawns. The king is not counted as material: its presence is
// guaranteed by the Board invariant, and its safety is captured by the king piece-square table
// instead of a material term.
const (
	PawnValue   Score = 100
	KnightValue Score = 320
	BishopValue Score = 330
	RookValue   Score = 500
	QueenValue  Score = 900
)

func pieceValue(p board.Piece) Score {
	switch p {
	case board.Pawn:
		return PawnValue
	case board.Knight:
		return KnightValue
	case board.Bishop:
		return BishopValue
	case board.Rook:
		return RookValue
	case board.Queen:
		return QueenValue
	default:
		return 0
	}
}

// Piece-square tables, one 64-entry array per piece kind, indexed with rank 8 as row 0 and rank
// 1 as row 7 (so the literal array layout reads top-to-bottom the way a board diagram does).
// Index for a White piece on square sq is (7-rank)*8+file; for a Black piece the table is
// mirrored vertically by using rank*8+file instead, so the same table rewards (for example) a
// pawn near its own promotion rank for both colours.
var (
	pawnPST = [64]int{
		0, 0, 0, 0, 0, 0, 0, 0,
		50, 50, 50, 50, 50, 50, 50, 50,
		10, 10, 20, 30, 30, 20, 10, 10,
		5, 5, 10, 25, 25, 10, 5, 5,
		0, 0, 0, 20, 20, 0, 0, 0,
		5, -5, -10, 0, 0, -10, -5, 5,
		5, 10, 10, -20, -20, 10, 10, 5,
		0, 0, 0, 0, 0, 0, 0, 0,
	}
	knightPST = [64]int{
		-50, -40, -30, -30, -30, -30, -40, -50,
		-40, -20, 0, 0, 0, 0, -20, -40,
		-30, 0, 10, 15, 15, 10, 0, -30,
		-30, 5, 15, 20, 20, 15, 5, -30,
		-30, 0, 15, 20, 20, 15, 0, -30,
		-30, 5, 10, 15, 15, 10, 5, -30,
		-40, -20, 0, 5, 5, 0, -20, -40,
		-50, -40, -30, -30, -30, -30, -40, -50,
	}
	bishopPST = [64]int{
		-20, -10, -10, -10, -10, -10, -10, -20,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 5, 5, 10, 10, 5, 5, -10,
		-10, 0, 10, 10, 10, 10, 0, -10,
		-10, 10, 10, 10, 10, 10, 10, -10,
		-10, 5, 0, 0, 0, 0, 5, -10,
		-20, -10, -10, -10, -10, -10, -10, -20,
	}
	rookPST = [64]int{
		0, 0, 0, 0, 0, 0, 0, 0,
		5, 10, 10, 10, 10, 10, 10, 5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		0, 0, 0, 5, 5, 0, 0, 0,
	}
	queenPST = [64]int{
		-20, -10, -10, -5, -5, -10, -10, -20,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-5, 0, 5, 5, 5, 5, 0, -5,
		0, 0, 5, 5, 5, 5, 0, -5,
		-10, 5, 5, 5, 5, 5, 0, -10,
		-10, 0, 5, 0, 0, 0, 0, -10,
		-20, -10, -10, -5, -5, -10, -10, -20,
	}
	// Mid-game king PST: end-game king PST is out of scope (no game-phase tapering).
	kingPST = [64]int{
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-20, -30, -30, -40, -40, -30, -30, -20,
		-10, -20, -20, -20, -20, -20, -20, -10,
		20, 20, 0, 0, 0, 0, 20, 20,
		20, 30, 10, 0, 0, 10, 30, 20,
	}
)

func pstValue(p board.Piece, c board.Color, sq board.Square) int {
	var table *[64]int
	switch p {
	case board.Pawn:
		table = &pawnPST
	case board.Knight:
		table = &knightPST
	case board.Bishop:
		table = &bishopPST
	case board.Rook:
		table = &rookPST
	case board.Queen:
		table = &queenPST
	case board.King:
		table = &kingPST
	default:
		return 0
	}

	file, rank := int(sq.File()), int(sq.Rank())
	if c == board.White {
		return table[(7-rank)*8+file]
	}
	return table[rank*8+file]
}

// MaterialPST is a symmetric material-plus-piece-square-table evaluator.
type MaterialPST struct{}

func (MaterialPST) Evaluate(_ context.Context, b *board.Board) Score {
	var white, black Score
	for sq := board.ZeroSquare; sq < board.NumSquares; sq++ {
		p := b.PieceAt(sq)
		if p == board.Empty {
			continue
		}
		c, _ := b.ColourAt(sq)

		s := pieceValue(p) + Score(pstValue(p, c, sq))
		if c == board.White {
			white += s
		} else {
			black += s
		}
	}

	// White's perspective, then flipped to the side-to-move perspective negamax expects.
	return (white - black) * Unit(b.Turn())
}
