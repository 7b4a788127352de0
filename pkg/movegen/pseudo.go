package movegen

import "github.com/mackrabeau/chess-engine/pkg/board"

// generatePseudoLegal appends every pseudo-legal move for the side to move into list. A
// pseudo-legal move respects piece movement and capture rules but may leave the mover's own
// king in check -- GenerateLegal filters those out afterward.
func generatePseudoLegal(b *board.Board, list *board.MoveList) {
	turn := b.Turn()
	friendly := b.ColorBB(turn)
	occ := b.Occupied()

	generatePawnMoves(b, turn, friendly, list)
	generateLeaperMoves(b.PieceBB(board.Knight)&friendly, friendly, occ, board.KnightAttacks, list)
	generateLeaperMoves(b.PieceBB(board.King)&friendly, friendly, occ, board.KingAttacks, list)
	generateSliderMoves(b.PieceBB(board.Bishop)&friendly, friendly, occ, board.BishopAttacks, list)
	generateSliderMoves(b.PieceBB(board.Rook)&friendly, friendly, occ, board.RookAttacks, list)
	generateSliderMoves(b.PieceBB(board.Queen)&friendly, friendly, occ, board.QueenAttacks, list)
	generateCastles(b, turn, occ, list)
}

// classifyQuietOrCapture returns FlagCapture if `to` is occupied (necessarily by the enemy,
// since the destination set this is called from has already excluded friendly-occupied
// squares), else FlagQuiet.
func classifyQuietOrCapture(occ board.Bitboard, to board.Square) board.Flag {
	if occ.IsSet(to) {
		return board.FlagCapture
	}
	return board.FlagQuiet
}

func generateLeaperMoves(origins, friendly, occ board.Bitboard, attacks func(board.Square) board.Bitboard, list *board.MoveList) {
	for bb := origins; bb != 0; {
		from := bb.PopLSB()
		for dests := attacks(from) &^ friendly; dests != 0; {
			to := dests.PopLSB()
			list.Add(board.NewMove(from, to, classifyQuietOrCapture(occ, to)))
		}
	}
}

func generateSliderMoves(origins, friendly, occ board.Bitboard, attacks func(board.Bitboard, board.Square) board.Bitboard, list *board.MoveList) {
	for bb := origins; bb != 0; {
		from := bb.PopLSB()
		for dests := attacks(occ, from) &^ friendly; dests != 0; {
			to := dests.PopLSB()
			list.Add(board.NewMove(from, to, classifyQuietOrCapture(occ, to)))
		}
	}
}
