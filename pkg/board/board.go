// Package board contains the chess position representation: bitboards, the packed game-info
// word, Zobrist hashing and the apply-move primitive that advances one position to the next.
package board

import "fmt"

// Board is eight 64-bit bitboards (two colour boards, six piece-kind boards), a packed 16-bit
// game-info word, a halfmove clock and a Zobrist key. A square carries a piece iff its bit is
// set in exactly one of {White, Black} and exactly one of {Pawn..King}.
//
// Board is a plain value type: it holds no pointers, so copying it (by assignment or by value
// parameter) duplicates the whole position. ApplyMove takes advantage of this -- it reads every
// piece it needs from the receiver before writing anything, then returns a new value, which
// trivially satisfies the "read before write, reference may alias target" discipline that a
// pointer-based apply-in-place primitive would otherwise have to maintain by convention.
type Board struct {
	White, Black                            Bitboard
	Pawn, Knight, Bishop, Rook, Queen, King Bitboard

	Info     GameInfo
	Halfmove int
	Hash     ZobristHash
}

// NewEmptyBoard returns the zero-value board: no pieces, White to move, no castling rights, no
// en-passant. Callers normally build a Board via fen.Parse instead.
func NewEmptyBoard() Board {
	return Board{Info: NewGameInfo(White, NoCastlingRights, 0, false)}
}

func (b *Board) Turn() Color {
	return b.Info.Turn()
}

// ColorBB returns the occupancy bitboard for the given colour.
func (b *Board) ColorBB(c Color) Bitboard {
	if c == White {
		return b.White
	}
	return b.Black
}

// PieceBB returns the occupancy bitboard for the given piece kind, across both colours.
func (b *Board) PieceBB(p Piece) Bitboard {
	switch p {
	case Pawn:
		return b.Pawn
	case Knight:
		return b.Knight
	case Bishop:
		return b.Bishop
	case Rook:
		return b.Rook
	case Queen:
		return b.Queen
	case King:
		return b.King
	default:
		panic(fmt.Sprintf("invalid piece: %v", p))
	}
}

// Occupied returns the union of all occupied squares.
func (b *Board) Occupied() Bitboard {
	return b.White | b.Black
}

// PieceAt returns the piece kind on sq, or Empty if the square is vacant.
func (b *Board) PieceAt(sq Square) Piece {
	mask := BitMask(sq)
	switch {
	case b.Pawn&mask != 0:
		return Pawn
	case b.Knight&mask != 0:
		return Knight
	case b.Bishop&mask != 0:
		return Bishop
	case b.Rook&mask != 0:
		return Rook
	case b.Queen&mask != 0:
		return Queen
	case b.King&mask != 0:
		return King
	default:
		return Empty
	}
}

// ColourAt returns the colour occupying sq. Returns an error on an empty square: this is a
// boundary query, not an internal invariant check, so it reports rather than panics.
func (b *Board) ColourAt(sq Square) (Color, error) {
	mask := BitMask(sq)
	switch {
	case b.White&mask != 0:
		return White, nil
	case b.Black&mask != 0:
		return Black, nil
	default:
		return 0, fmt.Errorf("empty square: %v", sq)
	}
}

// EnPassantSquare returns the square skipped by the last double pawn push -- the square the
// capturing pawn lands on, inferred from side to move since only the file is stored: rank 6 if
// White is to move, rank 3 if Black is to move.
func (b *Board) EnPassantSquare() (Square, bool) {
	f, ok := b.Info.EnPassant()
	if !ok {
		return 0, false
	}
	r := Rank6
	if b.Turn() == Black {
		r = Rank3
	}
	return NewSquare(f, r), true
}

// InCheck reports whether the side to move is in check.
func (b *Board) InCheck() bool {
	return b.InCheckColor(b.Turn())
}

// InCheckColor reports whether colour c's king is attacked by the opposing side.
func (b *Board) InCheckColor(c Color) bool {
	kings := b.PieceBB(King) & b.ColorBB(c)
	if kings == 0 {
		return false // no king on the board, e.g. a partially-constructed test position
	}
	return AttackedBy(b, c.Opponent())&kings != 0
}

// AttackedBy returns the union of all squares attacked by colour c's pieces against the current
// occupancy. Pawn attacks are the diagonal capture pattern, not push targets. This lives here
// (rather than the move generator, where the public contract is named) because InCheck needs it
// and the move generator already depends on this package; the generator re-exposes it under the
// same name for callers that only import movegen.
func AttackedBy(b *Board, c Color) Bitboard {
	occ := b.Occupied()
	own := b.ColorBB(c)

	var attacks Bitboard
	for bb := b.Pawn & own; bb != 0; {
		attacks |= PawnAttacks(c, bb.PopLSB())
	}
	for bb := b.Knight & own; bb != 0; {
		attacks |= KnightAttacks(bb.PopLSB())
	}
	for bb := b.King & own; bb != 0; {
		attacks |= KingAttacks(bb.PopLSB())
	}
	for bb := (b.Bishop | b.Queen) & own; bb != 0; {
		attacks |= BishopAttacks(occ, bb.PopLSB())
	}
	for bb := (b.Rook | b.Queen) & own; bb != 0; {
		attacks |= RookAttacks(occ, bb.PopLSB())
	}
	return attacks
}

// Place sets the piece of colour c and kind p on sq, overwriting whatever was there. Used by
// FEN parsing and tests to build a Board from scratch; not used on the make/unmake hot path,
// which goes through ApplyMove instead.
func (b *Board) Place(c Color, p Piece, sq Square) {
	if old := b.PieceAt(sq); old != Empty {
		b.setPiece(old, sq, false)
	}
	b.setColor(c.Opponent(), sq, false)
	b.setColor(c, sq, true)
	b.setPiece(p, sq, true)
}

func (b *Board) setColor(c Color, sq Square, set bool) {
	mask := BitMask(sq)
	if c == White {
		if set {
			b.White |= mask
		} else {
			b.White &^= mask
		}
		return
	}
	if set {
		b.Black |= mask
	} else {
		b.Black &^= mask
	}
}

func (b *Board) setPiece(p Piece, sq Square, set bool) {
	bb := b.pieceBBPtr(p)
	mask := BitMask(sq)
	if set {
		*bb |= mask
	} else {
		*bb &^= mask
	}
}

func (b *Board) pieceBBPtr(p Piece) *Bitboard {
	switch p {
	case Pawn:
		return &b.Pawn
	case Knight:
		return &b.Knight
	case Bishop:
		return &b.Bishop
	case Rook:
		return &b.Rook
	case Queen:
		return &b.Queen
	case King:
		return &b.King
	default:
		panic(fmt.Sprintf("invalid piece: %v", p))
	}
}

// homeRookSquare returns the starting rook square for colour c's given side, and the castling
// right it guards.
func homeRookSquare(c Color, kingSide bool) (Square, Castling) {
	switch {
	case c == White && kingSide:
		return H1, WhiteKingSideCastle
	case c == White && !kingSide:
		return A1, WhiteQueenSideCastle
	case c == Black && kingSide:
		return H8, BlackKingSideCastle
	default:
		return A8, BlackQueenSideCastle
	}
}

// clearCastlingOn returns rights with whatever right is affected by a king or rook departing
// (or being captured on) sq removed.
func clearCastlingOn(rights Castling, sq Square, p Piece, c Color) Castling {
	switch p {
	case King:
		return rights &^ Both(c)
	case Rook:
		if ksq, right := homeRookSquare(c, true); sq == ksq {
			return rights &^ right
		}
		if qsq, right := homeRookSquare(c, false); sq == qsq {
			return rights &^ right
		}
	}
	return rights
}

// castleRookSquares returns the rook's origin and destination for a castling move by colour c.
func castleRookSquares(c Color, flag Flag) (from, to Square) {
	switch {
	case c == White && flag == FlagKingCastle:
		return H1, F1
	case c == White && flag == FlagQueenCastle:
		return A1, D1
	case c == Black && flag == FlagKingCastle:
		return H8, F8
	default:
		return A8, D8
	}
}

// ApplyMove returns the board that results from playing the pseudo-legal move m on b. It does
// not validate legality; the caller (the move generator's legality filter) discards results
// that leave the mover's king in check.
//
// Every bit flipped is xored into the returned board's Zobrist key as it happens: the piece
// leaving the origin, the piece arriving at the destination, any captured piece, any rook moved
// in castling, the side-to-move feature, the castling-rights bits that changed, and the
// en-passant file (old value cleared, new value set if applicable).
func (b Board) ApplyMove(zt *ZobristTable, m Move) Board {
	turn := b.Turn()
	opp := turn.Opponent()
	from, to, flag := m.From(), m.To(), m.Flag()

	// Read the moving piece from the ORIGINAL board before any write below.
	moving := b.PieceAt(from)

	next := b

	// (2) Clear the origin square.
	next.setColor(turn, from, false)
	next.setPiece(moving, from, false)
	next.Hash ^= zt.piece[turn][moving][from]

	// (3) Clear any pending en-passant state; re-set below only for a double pawn push.
	if f, ok := next.Info.EnPassant(); ok {
		next.Hash ^= zt.enpassant[f]
		next.Info = next.Info.WithoutEnPassant()
	}

	// (4) Capture handling.
	capturedSquare := to
	captured := Empty
	if flag.IsCapture() {
		if flag == FlagEnPassant {
			if turn == White {
				capturedSquare = to - 8
			} else {
				capturedSquare = to + 8
			}
		}
		captured = next.PieceAt(capturedSquare)
		next.setColor(opp, capturedSquare, false)
		next.setPiece(captured, capturedSquare, false)
		next.Hash ^= zt.piece[opp][captured][capturedSquare]
	}

	// (5), (6) Place the moving (or promoted) piece at the destination.
	placed := moving
	if flag.IsPromotion() {
		placed = flag.PromotionPiece()
	}
	next.setPiece(placed, to, true)
	next.Hash ^= zt.piece[turn][placed][to]

	if flag == FlagDoublePawnPush {
		epFile := from.File()
		next.Info = next.Info.WithEnPassant(epFile, true)
		next.Hash ^= zt.enpassant[epFile]
	}

	// (7) Place the moving colour at the destination.
	next.setColor(turn, to, true)

	// (8) Halfmove clock.
	if moving == Pawn || flag.IsCapture() {
		next.Halfmove = 0
	} else {
		next.Halfmove++
	}

	// (9) Castling-rights updates: moving king/rook, or a rook captured on its home square.
	oldCastling := next.Info.Castling()
	newCastling := clearCastlingOn(oldCastling, from, moving, turn)
	newCastling = clearCastlingOn(newCastling, capturedSquare, captured, opp)
	if newCastling != oldCastling {
		next.Hash ^= zt.castling[oldCastling]
		next.Info = next.Info.WithCastling(newCastling)
		next.Hash ^= zt.castling[newCastling]
	}

	// (10) Move the rook on castling.
	if flag == FlagKingCastle || flag == FlagQueenCastle {
		rFrom, rTo := castleRookSquares(turn, flag)
		next.setColor(turn, rFrom, false)
		next.setPiece(Rook, rFrom, false)
		next.Hash ^= zt.piece[turn][Rook][rFrom]
		next.setColor(turn, rTo, true)
		next.setPiece(Rook, rTo, true)
		next.Hash ^= zt.piece[turn][Rook][rTo]
	}

	// (11) Flip side to move.
	next.Info = next.Info.WithTurn(opp)
	next.Hash ^= zt.turn

	return next
}

// HasInsufficientMaterial reports whether neither side has enough material to deliver
// checkmate: king vs king, king+minor vs king, or king+bishop vs king+bishop with both bishops
// on the same colour of square.
func (b *Board) HasInsufficientMaterial() bool {
	if b.Pawn != 0 || b.Rook != 0 || b.Queen != 0 {
		return false
	}

	whiteMinors := (b.Knight | b.Bishop) & b.White
	blackMinors := (b.Knight | b.Bishop) & b.Black
	wc, bc := whiteMinors.PopCount(), blackMinors.PopCount()

	switch {
	case wc == 0 && bc == 0:
		return true
	case wc+bc == 1:
		return true // lone knight or bishop vs bare king
	case wc == 1 && bc == 1:
		wb := b.Bishop & b.White
		bb := b.Bishop & b.Black
		if wb == 0 || bb == 0 {
			return false // knight vs bishop or knight vs knight: not covered by this clause
		}
		return squareColor(wb.LSB()) == squareColor(bb.LSB())
	default:
		return false
	}
}

func squareColor(sq Square) int {
	return (int(sq.File()) + int(sq.Rank())) & 1
}

func (b *Board) String() string {
	var sb [73]byte
	n := 0
	for r := int(Rank8); r >= int(Rank1); r-- {
		for f := ZeroFile; f < NumFiles; f++ {
			sq := NewSquare(f, Rank(r))
			if p := b.PieceAt(sq); p != Empty {
				c, _ := b.ColourAt(sq)
				sb[n] = glyph(c, p)
			} else {
				sb[n] = '.'
			}
			n++
		}
		if r != int(Rank1) {
			sb[n] = '/'
			n++
		}
	}
	return fmt.Sprintf("%s %v(%v) hm=%d", sb[:n], b.Info.Castling(), b.Turn(), b.Halfmove)
}

func glyph(c Color, p Piece) byte {
	s := p.String()[0]
	if c == White {
		return s - 'a' + 'A'
	}
	return s
}
