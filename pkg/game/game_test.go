package game_test

import (
	"testing"

	"github.com/mackrabeau/chess-engine/pkg/board"
	"github.com/mackrabeau/chess-engine/pkg/board/fen"
	"github.com/mackrabeau/chess-engine/pkg/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGame(t *testing.T, s string) *game.Game {
	t.Helper()
	zt := board.NewZobristTable(11)
	b, err := fen.Parse(zt, s)
	require.NoError(t, err)
	return game.New(zt, *b)
}

func TestStartingPositionIsOngoing(t *testing.T) {
	g := newGame(t, fen.Initial)
	assert.Equal(t, game.Ongoing, g.State())
}

func TestCheckmateIsDetected(t *testing.T) {
	g := newGame(t, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	assert.Equal(t, game.Checkmate, g.State())
}

func TestStalemateIsDetected(t *testing.T) {
	g := newGame(t, "k7/8/1Q6/8/8/8/8/K7 b - - 0 1")
	assert.Equal(t, game.Stalemate, g.State())
}

func TestDraw50MoveRule(t *testing.T) {
	g := newGame(t, "4k3/8/8/8/8/8/8/4K3 w - - 100 60")
	assert.Equal(t, game.Draw50Move, g.State())
}

func TestDrawInsufficientMaterial(t *testing.T) {
	g := newGame(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	assert.Equal(t, game.DrawInsufficientMaterial, g.State())
}

func TestPushPopRestoresPositionAndState(t *testing.T) {
	g := newGame(t, fen.Initial)
	before := *g.Board()

	legal := g.LegalMoves(false)
	require.Greater(t, legal.Len(), 0)
	g.Push(legal.At(0))
	assert.NotEqual(t, before.Hash, g.Board().Hash)

	g.Pop()
	assert.Equal(t, before.Hash, g.Board().Hash)
	assert.Equal(t, game.Ongoing, g.State())
}

func TestPushPopRestoresEveryBoardFieldForEveryLegalMove(t *testing.T) {
	// A castling/en-passant/promotion-rich position: every field of the snapshot (bitboards,
	// packed game info, halfmove clock, hash) must round-trip through push+pop for every move.
	g := newGame(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	before := *g.Board()

	legal := g.LegalMoves(false)
	require.Greater(t, legal.Len(), 0)
	for i := 0; i < legal.Len(); i++ {
		g.Push(legal.At(i))
		g.Pop()
		assert.Equal(t, before, *g.Board(), "move %v", legal.At(i))
	}
}

func TestPopOnEmptyHistoryIsANoOp(t *testing.T) {
	g := newGame(t, fen.Initial)
	before := *g.Board()

	g.Pop()
	assert.Equal(t, before, *g.Board())
	assert.Equal(t, game.Ongoing, g.State())
}

func TestFastModeSkipsDrawClassification(t *testing.T) {
	g := newGame(t, "4k3/8/8/8/8/8/8/4K3 w - - 100 60")
	require.Equal(t, game.Draw50Move, g.State())

	g.SetFastMode(true)
	assert.Equal(t, game.Ongoing, g.State())
}

func TestMakeCopyDoesNotMutateDriver(t *testing.T) {
	g := newGame(t, fen.Initial)
	before := *g.Board()

	legal := g.LegalMoves(false)
	require.Greater(t, legal.Len(), 0)
	_ = g.MakeCopy(legal.At(0))

	assert.Equal(t, before.Hash, g.Board().Hash)
}

func TestThreefoldRepetitionIsDetected(t *testing.T) {
	// Rooks keep the material sufficient, so only the repetition clause can fire.
	g := newGame(t, "r3k3/8/8/8/8/8/8/R3K3 w - - 0 1")

	nf, _ := board.ParseSquareStr("e1")
	ng, _ := board.ParseSquareStr("f1")
	bf, _ := board.ParseSquareStr("e8")
	bg, _ := board.ParseSquareStr("f8")

	shuffle := func(from, to board.Square) {
		m, ok := movegenFind(g, from, to)
		require.True(t, ok)
		g.Push(m)
	}

	// King shuffles Ke1-f1-e1-f1-e1 / Ke8-f8-e8-f8-e8 repeat the starting position three times.
	shuffle(nf, ng)
	shuffle(bf, bg)
	shuffle(ng, nf)
	shuffle(bg, bf)
	shuffle(nf, ng)
	shuffle(bf, bg)
	shuffle(ng, nf)
	shuffle(bg, bf)

	assert.Equal(t, game.DrawRepetition, g.State())
}

func movegenFind(g *game.Game, from, to board.Square) (board.Move, bool) {
	legal := g.LegalMoves(false)
	for i := 0; i < legal.Len(); i++ {
		m := legal.At(i)
		if m.From() == from && m.To() == to {
			return m, true
		}
	}
	return board.NoMove, false
}
