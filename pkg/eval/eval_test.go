package eval_test

import (
	"context"
	"testing"

	"github.com/mackrabeau/chess-engine/pkg/board"
	"github.com/mackrabeau/chess-engine/pkg/board/fen"
	"github.com/mackrabeau/chess-engine/pkg/eval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func evaluate(t *testing.T, s string) eval.Score {
	t.Helper()
	b, err := fen.Parse(board.NewZobristTable(1), s)
	require.NoError(t, err)
	return eval.MaterialPST{}.Evaluate(context.Background(), b)
}

func TestStartingPositionIsSymmetric(t *testing.T) {
	assert.EqualValues(t, 0, evaluate(t, fen.Initial))
}

func TestAfterE4WhiteIsNotWorse(t *testing.T) {
	// After 1. e4 it is Black to move, so the side-to-move score is Black's view: negate to
	// recover White's view.
	score := evaluate(t, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	whitePerspective := -score
	assert.GreaterOrEqual(t, int(whitePerspective), 0)
}

func TestAfterE4E5IsCloseToEven(t *testing.T) {
	score := evaluate(t, "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2")
	assert.InDelta(t, 0, int(score), 40)
}
