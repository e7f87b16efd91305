package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/negamax-chess/engine/board"
	"github.com/negamax-chess/engine/movegen"
)

func findMove(t *testing.T, moves []board.Move, uci string) int {
	t.Helper()
	for i, m := range moves {
		if m.UCI() == uci {
			return i
		}
	}
	require.Fail(t, "move not found", uci)
	return -1
}

func TestOrderMovesRanksCapturesAboveQuietMoves(t *testing.T) {
	b, err := board.FromFEN("rnb1kbnr/pppp1ppp/8/4p1q1/4P1Q1/8/PPPP1PPP/RNB1KBNR w KQkq - 2 3")
	require.NoError(t, err)

	moveList := movegen.GetLegalMoves(b, movegen.White)
	moves := make([]board.Move, len(moveList.Moves))
	copy(moves, moveList.Moves)
	movegen.ReleaseMoveList(moveList)

	ordered := OrderMoves(b, moves)
	assert.Len(t, ordered, len(moves), "ordering must not drop moves")

	captureIdx := findMove(t, ordered, "g4g5")
	quietIdx := findMove(t, ordered, "a2a3")
	assert.Less(t, captureIdx, quietIdx)
}

func TestOrderMovesNeverDropsMoves(t *testing.T) {
	b := board.StartPos()
	moveList := movegen.GetLegalMoves(b, movegen.White)
	moves := make([]board.Move, len(moveList.Moves))
	copy(moves, moveList.Moves)
	movegen.ReleaseMoveList(moveList)

	ordered := OrderMoves(b, moves)
	assert.ElementsMatch(t, moves, ordered)
}
