package board_test

import (
	"testing"

	"github.com/mackrabeau/chess-engine/pkg/board"
	"github.com/mackrabeau/chess-engine/pkg/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startBoard(t *testing.T) (*board.Board, *board.ZobristTable) {
	t.Helper()
	z := board.NewZobristTable(42)
	b, err := fen.Parse(z, fen.Initial)
	require.NoError(t, err)
	return b, z
}

func TestApplyMoveDoublePawnPushSetsEnPassant(t *testing.T) {
	b, z := startBoard(t)

	next := b.ApplyMove(z, board.NewMove(board.E2, board.E4, board.FlagDoublePawnPush))
	assert.Equal(t, board.Black, next.Turn())
	assert.Equal(t, board.Empty, next.PieceAt(board.E2))
	assert.Equal(t, board.Pawn, next.PieceAt(board.E4))

	sq, ok := next.EnPassantSquare()
	require.True(t, ok)
	assert.Equal(t, board.E3, sq)
	assert.Equal(t, z.Hash(&next), next.Hash)
}

func TestApplyMoveResetsHalfmoveClockOnPawnMoveOrCapture(t *testing.T) {
	b, z := startBoard(t)
	b.Halfmove = 5

	next := b.ApplyMove(z, board.NewMove(board.G1, board.F3, board.FlagQuiet))
	assert.Equal(t, 6, next.Halfmove)

	next2 := next.ApplyMove(z, board.NewMove(board.B8, board.C6, board.FlagQuiet))
	assert.Equal(t, 7, next2.Halfmove)

	next3 := next2.ApplyMove(z, board.NewMove(board.E2, board.E4, board.FlagDoublePawnPush))
	assert.Equal(t, 0, next3.Halfmove)
}

func TestApplyMoveAlwaysUsesFlagPromotionKind(t *testing.T) {
	z := board.NewZobristTable(1)
	b, err := fen.Parse(z, "8/P7/8/8/8/8/8/7k w - - 0 1")
	require.NoError(t, err)

	next := b.ApplyMove(z, board.NewMove(board.A7, board.A8, board.FlagPromoKnight))
	assert.Equal(t, board.Knight, next.PieceAt(board.A8))
	assert.Equal(t, board.Empty, next.PieceAt(board.A7))
	assert.Equal(t, z.Hash(&next), next.Hash)
}

func TestApplyMoveEnPassantCaptureRemovesPawnBehindTarget(t *testing.T) {
	z := board.NewZobristTable(1)
	b, err := fen.Parse(z, "8/8/8/3pP3/8/8/8/8 w - d6 0 1")
	require.NoError(t, err)

	next := b.ApplyMove(z, board.NewMove(board.E5, board.D6, board.FlagEnPassant))
	assert.Equal(t, board.Pawn, next.PieceAt(board.D6))
	assert.Equal(t, board.Empty, next.PieceAt(board.D5)) // captured pawn removed
	assert.Equal(t, board.Empty, next.PieceAt(board.E5))
	assert.Equal(t, z.Hash(&next), next.Hash)
}

func TestApplyMoveCastlingMovesRook(t *testing.T) {
	z := board.NewZobristTable(1)
	b, err := fen.Parse(z, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	next := b.ApplyMove(z, board.NewMove(board.E1, board.G1, board.FlagKingCastle))
	assert.Equal(t, board.King, next.PieceAt(board.G1))
	assert.Equal(t, board.Rook, next.PieceAt(board.F1))
	assert.Equal(t, board.Empty, next.PieceAt(board.H1))
	assert.Equal(t, board.Empty, next.PieceAt(board.E1))
	assert.False(t, next.Info.Castling().IsAllowed(board.WhiteKingSideCastle))
	assert.False(t, next.Info.Castling().IsAllowed(board.WhiteQueenSideCastle))
	assert.True(t, next.Info.Castling().IsAllowed(board.BlackKingSideCastle))
	assert.Equal(t, z.Hash(&next), next.Hash)
}

func TestApplyMoveRookCapturedOnHomeSquareClearsCastlingRight(t *testing.T) {
	z := board.NewZobristTable(1)
	// Black rook sits on h8; a white rook on h1 can march up and capture it. Black's kingside
	// castling right must be cleared even though Black's own rook never "moved".
	b, err := fen.Parse(z, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	next := b.ApplyMove(z, board.NewMove(board.H1, board.H8, board.FlagCapture))
	assert.False(t, next.Info.Castling().IsAllowed(board.BlackKingSideCastle))
	assert.True(t, next.Info.Castling().IsAllowed(board.BlackQueenSideCastle))
	assert.Equal(t, z.Hash(&next), next.Hash)
}

func TestHasInsufficientMaterial(t *testing.T) {
	z := board.NewZobristTable(1)

	bareKings, err := fen.Parse(z, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	assert.True(t, bareKings.HasInsufficientMaterial())

	kingAndRook, err := fen.Parse(z, "4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	require.NoError(t, err)
	assert.False(t, kingAndRook.HasInsufficientMaterial())

	kingVsKnight, err := fen.Parse(z, "4k3/8/8/8/8/8/8/N3K3 w - - 0 1")
	require.NoError(t, err)
	assert.True(t, kingVsKnight.HasInsufficientMaterial())
}
