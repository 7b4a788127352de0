package movegen

import "github.com/mackrabeau/chess-engine/pkg/board"

// generateCastles appends the castling moves available to the side to move, given the castling
// rights recorded on the board and the current occupancy. A castle is pseudo-legal when its
// transit squares are empty and neither the king's origin, transit, nor destination square is
// attacked by the opponent; GenerateLegal's copy-make filter still re-checks the destination
// position, but the transit-square attack check below must happen here since those squares are
// never the king's resulting position.
func generateCastles(b *board.Board, c board.Color, occ board.Bitboard, list *board.MoveList) {
	rights := b.Info.Castling()
	rank := board.Rank1
	if c == board.Black {
		rank = board.Rank8
	}

	kingFrom := board.NewSquare(board.FileE, rank)

	if rights.IsAllowed(board.KingSide(c)) {
		f := board.NewSquare(board.FileF, rank)
		g := board.NewSquare(board.FileG, rank)
		if !occ.IsSet(f) && !occ.IsSet(g) && !anyAttacked(b, c, kingFrom, f, g) {
			list.Add(board.NewMove(kingFrom, g, board.FlagKingCastle))
		}
	}

	if rights.IsAllowed(board.QueenSide(c)) {
		d := board.NewSquare(board.FileD, rank)
		cc := board.NewSquare(board.FileC, rank)
		bb := board.NewSquare(board.FileB, rank)
		if !occ.IsSet(d) && !occ.IsSet(cc) && !occ.IsSet(bb) && !anyAttacked(b, c, kingFrom, d, cc) {
			list.Add(board.NewMove(kingFrom, cc, board.FlagQueenCastle))
		}
	}
}

func anyAttacked(b *board.Board, c board.Color, squares ...board.Square) bool {
	attacked := board.AttackedBy(b, c.Opponent())
	for _, sq := range squares {
		if attacked.IsSet(sq) {
			return true
		}
	}
	return false
}
