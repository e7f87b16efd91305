package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/negamax-chess/engine/board"
	"github.com/negamax-chess/engine/internal/evaluation"
)

func TestQuiesceStandPatBoundedByBeta(t *testing.T) {
	b, err := board.FromFEN("rnb1kbnr/pppp1ppp/8/4p1q1/4P1Q1/8/PPPP1PPP/RNB1KBNR w KQkq - 2 3")
	require.NoError(t, err)

	standPat := evaluation.Evaluate(b)
	score := Quiesce(b, 1, -9999, 9999, InitialQuiesceDepth, evaluation.Evaluate)

	assert.GreaterOrEqual(t, score, standPat)
	assert.LessOrEqual(t, score, 9999)
}

func TestQuiesceZeroDepthReturnsStandPat(t *testing.T) {
	b := board.StartPos()
	standPat := evaluation.Evaluate(b)
	assert.Equal(t, standPat, Quiesce(b, 1, -9999, 9999, 0, evaluation.Evaluate))
}

func TestQuiesceBoardUnchangedAfterSearch(t *testing.T) {
	b, err := board.FromFEN("rnb1kbnr/pppp1ppp/8/4p1q1/4P1Q1/8/PPPP1PPP/RNB1KBNR w KQkq - 2 3")
	require.NoError(t, err)
	before := b.Zobrist()

	Quiesce(b, 1, -9999, 9999, InitialQuiesceDepth, evaluation.Evaluate)

	assert.Equal(t, before, b.Zobrist())
}
