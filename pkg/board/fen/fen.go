// Package fen contains utilities for reading and writing positions in FEN notation.
package fen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mackrabeau/chess-engine/pkg/board"
)

// Initial is the FEN record of the standard chess starting position.
const Initial = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Parse decodes a FEN record into a Board. The halfmove clock is parsed and stored on the
// Board; the fullmove number is accepted (for compatibility with FEN producers) but not stored,
// since nothing in this package needs it. zt supplies the Zobrist table used to compute the
// Board's initial hash.
//
// Example:
//
//	"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
func Parse(zt *board.ZobristTable, s string) (*board.Board, error) {
	parts := strings.Fields(strings.TrimSpace(s))
	if len(parts) != 6 {
		return nil, fmt.Errorf("invalid number of fields in FEN: %q", s)
	}

	// (1) Piece placement, rank 8 down to rank 1, file a through h per rank.

	b := board.NewEmptyBoard()

	ranks := strings.Split(parts[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("invalid number of ranks in FEN: %q", s)
	}
	for i, row := range ranks {
		r := board.Rank(7 - i)
		f := board.ZeroFile
		for _, ch := range row {
			switch {
			case ch >= '1' && ch <= '8':
				f += board.File(ch - '0')
			default:
				c, p, ok := parsePiece(ch)
				if !ok {
					return nil, fmt.Errorf("invalid piece %q in FEN: %q", string(ch), s)
				}
				if f >= board.NumFiles {
					return nil, fmt.Errorf("rank overflow in FEN: %q", s)
				}
				b.Place(c, p, board.NewSquare(f, r))
				f++
			}
		}
		if f != board.NumFiles {
			return nil, fmt.Errorf("invalid rank length in FEN: %q", s)
		}
	}
	// (2) Active colour.

	turn, ok := parseColor(parts[1])
	if !ok {
		return nil, fmt.Errorf("invalid active colour in FEN: %q", s)
	}

	// (3) Castling availability.

	castling, ok := parseCastling(parts[2])
	if !ok {
		return nil, fmt.Errorf("invalid castling in FEN: %q", s)
	}

	// (4) En-passant target square.

	epSet := false
	var epFile board.File
	if parts[3] != "-" {
		sq, err := board.ParseSquareStr(parts[3])
		if err != nil {
			return nil, fmt.Errorf("invalid en passant in FEN: %q", s)
		}
		epFile = sq.File()
		epSet = true
	}
	b.Info = board.NewGameInfo(turn, castling, int(epFile), epSet)

	// (5) Halfmove clock.

	hm, err := strconv.Atoi(parts[4])
	if err != nil || hm < 0 {
		return nil, fmt.Errorf("invalid halfmove clock in FEN: %q", s)
	}
	b.Halfmove = hm

	// (6) Fullmove number: accepted but not stored.

	if _, err := strconv.Atoi(parts[5]); err != nil {
		return nil, fmt.Errorf("invalid fullmove number in FEN: %q", s)
	}

	b.Hash = zt.Hash(&b)
	return &b, nil
}

// Format encodes b as a FEN record. The fullmove number is always emitted as 1, since Board
// does not track it -- an output-format decision, not a round-trip guarantee.
func Format(b *board.Board) string {
	var sb strings.Builder
	for r := board.Rank8; ; r-- {
		blanks := 0
		for f := board.ZeroFile; f < board.NumFiles; f++ {
			sq := board.NewSquare(f, r)
			p := b.PieceAt(sq)
			if p == board.Empty {
				blanks++
				continue
			}
			if blanks > 0 {
				sb.WriteString(strconv.Itoa(blanks))
				blanks = 0
			}
			c, _ := b.ColourAt(sq)
			sb.WriteRune(printPiece(c, p))
		}
		if blanks > 0 {
			sb.WriteString(strconv.Itoa(blanks))
		}
		if r == board.Rank1 {
			break
		}
		sb.WriteString("/")
	}

	// FEN names the en-passant target as the square the capturing pawn would land on, which is
	// exactly what EnPassantSquare infers from side to move.
	ep := "-"
	if sq, ok := b.EnPassantSquare(); ok {
		ep = sq.String()
	}

	return fmt.Sprintf("%v %v %v %v %v 1", sb.String(), printColor(b.Turn()), printCastling(b.Info.Castling()), ep, b.Halfmove)
}

func parseCastling(str string) (board.Castling, bool) {
	var ret board.Castling
	if str == "-" {
		return ret, true
	}
	for _, r := range str {
		switch r {
		case 'K':
			ret |= board.WhiteKingSideCastle
		case 'Q':
			ret |= board.WhiteQueenSideCastle
		case 'k':
			ret |= board.BlackKingSideCastle
		case 'q':
			ret |= board.BlackQueenSideCastle
		default:
			return 0, false
		}
	}
	return ret, true
}

func printCastling(c board.Castling) string {
	if c == board.NoCastlingRights {
		return "-"
	}
	var sb strings.Builder
	if c.IsAllowed(board.WhiteKingSideCastle) {
		sb.WriteString("K")
	}
	if c.IsAllowed(board.WhiteQueenSideCastle) {
		sb.WriteString("Q")
	}
	if c.IsAllowed(board.BlackKingSideCastle) {
		sb.WriteString("k")
	}
	if c.IsAllowed(board.BlackQueenSideCastle) {
		sb.WriteString("q")
	}
	return sb.String()
}

func parseColor(str string) (board.Color, bool) {
	switch str {
	case "w":
		return board.White, true
	case "b":
		return board.Black, true
	default:
		return 0, false
	}
}

func printColor(c board.Color) string {
	if c == board.White {
		return "w"
	}
	return "b"
}

func parsePiece(r rune) (board.Color, board.Piece, bool) {
	switch r {
	case 'P':
		return board.White, board.Pawn, true
	case 'N':
		return board.White, board.Knight, true
	case 'B':
		return board.White, board.Bishop, true
	case 'R':
		return board.White, board.Rook, true
	case 'Q':
		return board.White, board.Queen, true
	case 'K':
		return board.White, board.King, true
	case 'p':
		return board.Black, board.Pawn, true
	case 'n':
		return board.Black, board.Knight, true
	case 'b':
		return board.Black, board.Bishop, true
	case 'r':
		return board.Black, board.Rook, true
	case 'q':
		return board.Black, board.Queen, true
	case 'k':
		return board.Black, board.King, true
	default:
		return 0, 0, false
	}
}

func printPiece(c board.Color, p board.Piece) rune {
	r := []rune(p.String())[0]
	if c == board.White {
		return r - 'a' + 'A'
	}
	return r
}
