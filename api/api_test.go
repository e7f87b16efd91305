package api

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindBestMoveFromStartPosition(t *testing.T) {
	move, err := FindBestMove("", 3)
	require.NoError(t, err)
	assert.NotEmpty(t, move)
}

func TestFindBestMoveTakesHangingQueen(t *testing.T) {
	move, err := FindBestMove("e2e4 e7e5 d1h5 b8c6 h5g5", 4)
	require.NoError(t, err)
	assert.Equal(t, "d8g5", move)
}

func TestFindBestMoveRejectsIllegalMove(t *testing.T) {
	_, err := FindBestMove("e2e5", 2)
	assert.Error(t, err)
}

func TestPlayMatchProducesOutput(t *testing.T) {
	var buf bytes.Buffer
	err := PlayMatch(2, &buf)
	require.NoError(t, err)
	assert.NotEmpty(t, buf.String())
}
