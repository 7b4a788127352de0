package board_test

import (
	"testing"

	"github.com/mackrabeau/chess-engine/pkg/board"
	"github.com/stretchr/testify/assert"
)

func TestBitboard(t *testing.T) {
	t.Run("popcount", func(t *testing.T) {
		tests := []struct {
			bb       board.Bitboard
			expected int
		}{
			{board.EmptyBitboard, 0},
			{board.BitMask(board.G4), 1},
			{board.BitMask(board.G3) | board.BitMask(board.G4), 2},
		}
		for _, tt := range tests {
			assert.Equal(t, tt.expected, tt.bb.PopCount())
		}
	})

	t.Run("string", func(t *testing.T) {
		tests := []struct {
			bb       board.Bitboard
			expected string
		}{
			{board.EmptyBitboard, "--------/--------/--------/--------/--------/--------/--------/--------"},
			{board.BitMask(board.H1), "--------/--------/--------/--------/--------/--------/--------/-------X"},
			{board.BitMask(board.A8), "X-------/--------/--------/--------/--------/--------/--------/--------"},
			{board.BitMask(board.G3) | board.BitMask(board.G4), "--------/--------/--------/--------/------X-/------X-/--------/--------"},
		}
		for _, tt := range tests {
			assert.Equal(t, tt.expected, tt.bb.String())
		}
	})

	t.Run("king", func(t *testing.T) {
		tests := []struct {
			sq       board.Square
			expected string
		}{
			{board.H1, "--------/--------/--------/--------/--------/--------/------XX/------X-"},
			{board.D1, "--------/--------/--------/--------/--------/--------/--XXX---/--X-X---"},
			{board.D3, "--------/--------/--------/--------/--XXX---/--X-X---/--XXX---/--------"},
			{board.A3, "--------/--------/--------/--------/XX------/-X------/XX------/--------"},
		}
		for _, tt := range tests {
			assert.Equal(t, tt.expected, board.KingAttacks(tt.sq).String())
		}
	})

	t.Run("knight", func(t *testing.T) {
		tests := []struct {
			sq       board.Square
			expected string
		}{
			{board.H1, "--------/--------/--------/--------/--------/------X-/-----X--/--------"},
			{board.A8, "--------/--X-----/-X------/--------/--------/--------/--------/--------"},
		}
		for _, tt := range tests {
			assert.Equal(t, tt.expected, board.KnightAttacks(tt.sq).String())
		}
	})

	t.Run("rook ray-scan includes blocker", func(t *testing.T) {
		// Rook on h1, empty board: attacks the whole h-file and the whole 1st rank.
		occ := board.EmptyBitboard
		attacks := board.RookAttacks(occ, board.H1)
		assert.True(t, attacks.IsSet(board.H8))
		assert.True(t, attacks.IsSet(board.A1))
		assert.False(t, attacks.IsSet(board.G2))

		// A blocker on h4 stops the ray there but the blocker square itself is included,
		// which makes capture generation a plain intersection with the enemy bitboard.
		occ = board.BitMask(board.H4)
		attacks = board.RookAttacks(occ, board.H1)
		assert.True(t, attacks.IsSet(board.H4))
		assert.False(t, attacks.IsSet(board.H5))
	})

	t.Run("bishop ray-scan", func(t *testing.T) {
		occ := board.EmptyBitboard
		attacks := board.BishopAttacks(occ, board.A1)
		assert.True(t, attacks.IsSet(board.H8))
		assert.False(t, attacks.IsSet(board.A8))
	})

	t.Run("queen is rook union bishop", func(t *testing.T) {
		occ := board.BitMask(board.D4)
		assert.Equal(t, board.RookAttacks(occ, board.D1)|board.BishopAttacks(occ, board.D1), board.QueenAttacks(occ, board.D1))
	})
}
