package movegen

import "github.com/mackrabeau/chess-engine/pkg/board"

// promoRank is the destination rank a pawn of colour c promotes on.
func promoRank(c board.Color) board.Rank {
	if c == board.White {
		return board.Rank8
	}
	return board.Rank1
}

func addPawnMove(list *board.MoveList, c board.Color, from, to board.Square, capture bool) {
	if to.Rank() == promoRank(c) {
		kinds := [4]board.Piece{board.Knight, board.Bishop, board.Rook, board.Queen}
		for _, k := range kinds {
			list.Add(board.NewMove(from, to, promotionFlag(k, capture)))
		}
		return
	}
	if capture {
		list.Add(board.NewMove(from, to, board.FlagCapture))
	} else {
		list.Add(board.NewMove(from, to, board.FlagQuiet))
	}
}

func promotionFlag(p board.Piece, capture bool) board.Flag {
	var base board.Flag
	switch p {
	case board.Knight:
		base = board.FlagPromoKnight
	case board.Bishop:
		base = board.FlagPromoBishop
	case board.Rook:
		base = board.FlagPromoRook
	default:
		base = board.FlagPromoQueen
	}
	if capture {
		return base + (board.FlagPromoKnightCapture - board.FlagPromoKnight)
	}
	return base
}

// generatePawnMoves appends single/double pushes, diagonal captures, en-passant and promotions
// for colour c's pawns.
func generatePawnMoves(b *board.Board, c board.Color, friendly board.Bitboard, list *board.MoveList) {
	occ := b.Occupied()
	enemy := b.ColorBB(c.Opponent())
	pawns := b.PieceBB(board.Pawn) & friendly

	for bb := pawns; bb != 0; {
		from := bb.PopLSB()

		if single := board.PawnSinglePush(c, from); single != 0 && single&occ == 0 {
			to := single.LSB()
			addPawnMove(list, c, from, to, false)

			if double := board.PawnDoublePush(c, from); double != 0 && double&occ == 0 {
				list.Add(board.NewMove(from, double.LSB(), board.FlagDoublePawnPush))
			}
		}

		for caps := board.PawnAttacks(c, from) & enemy; caps != 0; {
			to := caps.PopLSB()
			addPawnMove(list, c, from, to, true)
		}

		if epSq, ok := b.EnPassantSquare(); ok {
			if board.PawnAttacks(c, from)&board.BitMask(epSq) != 0 {
				list.Add(board.NewMove(from, epSq, board.FlagEnPassant))
			}
		}
	}
}
