package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/negamax-chess/engine/board"
	"github.com/negamax-chess/engine/internal/evaluation"
)

const testDepth = 4

func sideSignFor(b *board.Board) int {
	if b.Turn() == board.BlackColor {
		return -1
	}
	return 1
}

// S1: start position material is balanced.
func TestScenarioS1StartPositionMaterialBalanced(t *testing.T) {
	b := board.StartPos()
	assert.Equal(t, 0, evaluation.MaterialTerm(b))
}

// S2: black's queen is gone while white's stands on g5, so white is up a
// queen in material terms (raw material, not full search).
func TestScenarioS2MaterialImbalance(t *testing.T) {
	b, err := board.FromFEN("rnb1kbnr/ppp2ppp/4p3/3p2Q1/3P4/4P3/PPP2PPP/RNB1KBNR b KQkq - 0 4")
	require.NoError(t, err)
	assert.Equal(t, 929, evaluation.MaterialTerm(b))
}

// S3: white to move takes the hanging queen.
func TestScenarioS3WhiteTakesQueen(t *testing.T) {
	b, err := board.FromFEN("rnb1kbnr/pppp1ppp/8/4p1q1/4P1Q1/8/PPPP1PPP/RNB1KBNR w KQkq - 2 3")
	require.NoError(t, err)

	_, move := Negamax(b, testDepth, sideSignFor(b), -9999, 9999, NewTable(), true, evaluation.Evaluate, true)
	assert.Equal(t, "g4g5", move.UCI())
}

// S4: black to move does not also take with g4g5 (illegal for black anyway)
// and the returned score is non-zero.
func TestScenarioS4BlackAvoidsLosingMove(t *testing.T) {
	b, err := board.FromFEN("rnb1kbnr/pppp1ppp/8/4p1q1/4P1Q1/8/PPPP1PPP/RNB1KBNR w KQkq - 2 3")
	require.NoError(t, err)
	b.SetSideToMove("b")

	score, move := Negamax(b, testDepth, sideSignFor(b), -9999, 9999, NewTable(), true, evaluation.Evaluate, true)
	assert.NotEqual(t, "g4g5", move.UCI())
	assert.NotEqual(t, 0, score)
}

// S5: mate-in-one, found at depths 1-3.
func TestScenarioS5MateInOneAtShallowDepths(t *testing.T) {
	for depth := 1; depth <= 3; depth++ {
		b, err := board.FromFEN("k7/5R2/6R1/8/8/8/4K3/8 w - - 0 1")
		require.NoError(t, err)

		_, move := Negamax(b, depth, sideSignFor(b), -9999, 9999, NewTable(), true, evaluation.Evaluate, true)
		undo, err := b.MakeMoveWithUndo(move)
		require.NoError(t, err)
		assert.True(t, b.Checkmate(legalMovesFor(b)), "depth %d: move %s should deliver mate", depth, move.UCI())
		b.UnmakeMove(undo)
	}
}

// S6: three successive negamax moves from white deliver checkmate.
func TestScenarioS6MateInTwoSequence(t *testing.T) {
	b, err := board.FromFEN("k7/4R3/8/8/8/4R3/8/3K4 w - - 0 1")
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, move := Negamax(b, testDepth, sideSignFor(b), -9999, 9999, NewTable(), true, evaluation.Evaluate, true)
		_, err := b.MakeMoveWithUndo(move)
		require.NoError(t, err)
	}
	assert.True(t, b.Checkmate(legalMovesFor(b)))
}

// S7: three successive negamax moves from black deliver checkmate.
func TestScenarioS7MateInTwoSequenceBlack(t *testing.T) {
	b, err := board.FromFEN("r6k/6pp/p5r1/7R/5q2/3P3K/PPP1N1P1/2R1Q3 b - - 0 1")
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, move := Negamax(b, testDepth, sideSignFor(b), -9999, 9999, NewTable(), true, evaluation.Evaluate, true)
		_, err := b.MakeMoveWithUndo(move)
		require.NoError(t, err)
	}
	assert.True(t, b.Checkmate(legalMovesFor(b)))
}

// Property 3: every apply/undo pair restores the board, Zobrist identical.
func TestPropertyApplyUndoRestoresBoard(t *testing.T) {
	b := board.StartPos()
	before := b.Zobrist()

	moves := legalMovesFor(b)
	for _, m := range moves {
		undo, err := b.MakeMoveWithUndo(m)
		require.NoError(t, err)
		b.UnmakeMove(undo)
		assert.Equal(t, before, b.Zobrist())
	}
}

// Property 4: the returned bestMove is legal in the queried position.
func TestPropertyReturnedMoveIsLegal(t *testing.T) {
	b, err := board.FromFEN("rnb1kbnr/pppp1ppp/8/4p1q1/4P1Q1/8/PPPP1PPP/RNB1KBNR w KQkq - 2 3")
	require.NoError(t, err)

	_, move := Negamax(b, testDepth, sideSignFor(b), -9999, 9999, NewTable(), true, evaluation.Evaluate, true)

	legal := legalMovesFor(b)
	found := false
	for _, m := range legal {
		if m.UCI() == move.UCI() {
			found = true
			break
		}
	}
	assert.True(t, found)
}

// Property 5: searching the same position twice with a fresh cache yields
// the same (score, move).
func TestPropertyDeterministicRepeatSearch(t *testing.T) {
	fen := "rnb1kbnr/pppp1ppp/8/4p1q1/4P1Q1/8/PPPP1PPP/RNB1KBNR w KQkq - 2 3"

	b1, err := board.FromFEN(fen)
	require.NoError(t, err)
	score1, move1 := Negamax(b1, testDepth, sideSignFor(b1), -9999, 9999, NewTable(), true, evaluation.Evaluate, true)

	b2, err := board.FromFEN(fen)
	require.NoError(t, err)
	score2, move2 := Negamax(b2, testDepth, sideSignFor(b2), -9999, 9999, NewTable(), true, evaluation.Evaluate, true)

	assert.Equal(t, score1, score2)
	assert.Equal(t, move1.UCI(), move2.UCI())
}
