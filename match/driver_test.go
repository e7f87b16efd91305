package match

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/negamax-chess/engine/board"
	"github.com/negamax-chess/engine/internal/evaluation"
	"github.com/negamax-chess/engine/movegen"
)

func zerologDiscard() zerolog.Logger {
	return zerolog.Nop()
}

func legalMovesOf(b *board.Board) []board.Move {
	player := movegen.White
	if b.Turn() == board.BlackColor {
		player = movegen.Black
	}
	moveList := movegen.GetLegalMoves(b, player)
	moves := make([]board.Move, len(moveList.Moves))
	copy(moves, moveList.Moves)
	movegen.ReleaseMoveList(moveList)
	return moves
}

func TestPlayMovesAdvancesTheBoard(t *testing.T) {
	b := board.StartPos()
	before := b.Zobrist()

	after, err := PlayMoves(b, 2, 3, 1)
	require.NoError(t, err)
	assert.NotEqual(t, before, after.Zobrist())
}

func TestPlayMovesStopsAtCheckmate(t *testing.T) {
	b, err := board.FromFEN("k7/5R2/6R1/8/8/8/4K3/8 w - - 0 1")
	require.NoError(t, err)

	after, err := PlayMoves(b, 5, 3, 1)
	require.NoError(t, err)
	assert.True(t, after.Checkmate(legalMovesOf(after)))
}

func TestDriverStepFlipsSideSign(t *testing.T) {
	b := board.StartPos()
	driver := NewDriver(b, 2, evaluation.Evaluate, zerologDiscard())

	_, _, ok, err := driver.Step()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, -1, driver.sideSign)
}

func TestPlayMatchWritesMoveLines(t *testing.T) {
	var buf bytes.Buffer
	err := PlayMatch(2, &buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "transposition table")
}
