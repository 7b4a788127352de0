package board

import "fmt"

// Flag identifies the kind of a Move: quiet, double pawn push, castle, capture, en-passant
// capture, or one of the eight promotion/promo-capture variants.
type Flag uint8

const (
	FlagQuiet Flag = iota
	FlagDoublePawnPush
	FlagKingCastle
	FlagQueenCastle
	FlagCapture
	FlagEnPassant
	_ // 6: unused
	_ // 7: unused
	FlagPromoKnight
	FlagPromoBishop
	FlagPromoRook
	FlagPromoQueen
	FlagPromoKnightCapture
	FlagPromoBishopCapture
	FlagPromoRookCapture
	FlagPromoQueenCapture
)

// IsCapture reports whether the flag denotes a move that removes an enemy piece (ordinary
// capture, en-passant, or promotion-capture). Equivalent to bit 2 of the flag nibble.
func (f Flag) IsCapture() bool {
	return f&FlagCapture != 0
}

// IsPromotion reports whether the flag denotes a pawn promotion, with or without capture.
// Equivalent to bit 3 of the flag nibble.
func (f Flag) IsPromotion() bool {
	return f&FlagPromoKnight != 0
}

// PromotionPiece returns the piece kind a promotion flag promotes to. Only meaningful when
// IsPromotion() is true.
func (f Flag) PromotionPiece() Piece {
	switch f & 0x3 {
	case 0:
		return Knight
	case 1:
		return Bishop
	case 2:
		return Rook
	default:
		return Queen
	}
}

func promotionFlag(p Piece, capture bool) Flag {
	var base Flag
	switch p {
	case Knight:
		base = FlagPromoKnight
	case Bishop:
		base = FlagPromoBishop
	case Rook:
		base = FlagPromoRook
	case Queen:
		base = FlagPromoQueen
	default:
		panic("invalid promotion piece: " + p.String())
	}
	if capture {
		return base + (FlagPromoKnightCapture - FlagPromoKnight)
	}
	return base
}

// Move is a 16-bit packed chess move: bits 0..5 = destination square, bits 6..11 = origin
// square, bits 12..15 = flag.
type Move uint16

// NoMove is the zero value, used as a sentinel for "no move" (e.g. an empty TT slot).
const NoMove Move = 0

func NewMove(from, to Square, flag Flag) Move {
	return Move(to) | Move(from)<<6 | Move(flag)<<12
}

func (m Move) To() Square {
	return Square(m & 0x3F)
}

func (m Move) From() Square {
	return Square((m >> 6) & 0x3F)
}

func (m Move) Flag() Flag {
	return Flag((m >> 12) & 0xF)
}

func (m Move) IsCapture() bool {
	return m.Flag().IsCapture()
}

func (m Move) IsPromotion() bool {
	return m.Flag().IsPromotion()
}

func (m Move) IsCastle() bool {
	f := m.Flag()
	return f == FlagKingCastle || f == FlagQueenCastle
}

func (m Move) IsEnPassant() bool {
	return m.Flag() == FlagEnPassant
}

// UCI move strings: two file-rank pairs plus an optional promotion letter, e.g. "e2e4" or
// "e7e8q". ParseUCIMove does not know about castling or en-passant -- it only recovers the
// origin, destination and desired promotion piece, which the caller matches against the
// legal move list to recover the full Move (and reject illegal/invalid moves).
func ParseUCIMove(str string) (from, to Square, promo Piece, err error) {
	runes := []rune(str)
	if len(runes) < 4 || len(runes) > 5 {
		return 0, 0, Empty, fmt.Errorf("invalid move: %q", str)
	}

	from, err = ParseSquare(runes[0], runes[1])
	if err != nil {
		return 0, 0, Empty, fmt.Errorf("invalid move %q: bad origin: %w", str, err)
	}
	to, err = ParseSquare(runes[2], runes[3])
	if err != nil {
		return 0, 0, Empty, fmt.Errorf("invalid move %q: bad destination: %w", str, err)
	}

	if len(runes) == 5 {
		p, ok := ParsePiece(runes[4])
		if !ok || p == Pawn || p == King {
			return 0, 0, Empty, fmt.Errorf("invalid move %q: bad promotion piece", str)
		}
		promo = p
	}
	return from, to, promo, nil
}

// String renders the move in UCI long algebraic notation, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	if m.IsPromotion() {
		return fmt.Sprintf("%v%v%v", m.From(), m.To(), m.Flag().PromotionPiece())
	}
	return fmt.Sprintf("%v%v", m.From(), m.To())
}
