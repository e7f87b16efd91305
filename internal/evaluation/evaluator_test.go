package evaluation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/negamax-chess/engine/board"
)

func mustFEN(t *testing.T, fen string) *board.Board {
	t.Helper()
	b, err := board.FromFEN(fen)
	require.NoError(t, err)
	return b
}

func TestEvaluateStartPositionIsSymmetric(t *testing.T) {
	b := board.StartPos()
	assert.Equal(t, 0, Evaluate(b))
}

func TestMaterialTermAntisymmetricUnderColorSwap(t *testing.T) {
	b := mustFEN(t, "rnb1kbnr/ppp2ppp/4p3/3p2Q1/3P4/4P3/PPP2PPP/RNB1KBNR b KQkq - 0 4")
	swapped := mustFEN(t, "RNB1KBNR/PPP2PPP/4P3/3P2q1/3p4/4p3/ppp2ppp/rnb1kbnr w kqKQ - 0 4")
	assert.Equal(t, MaterialTerm(b), -MaterialTerm(swapped))
}

func TestMaterialTermScenarioS2(t *testing.T) {
	b := mustFEN(t, "rnb1kbnr/ppp2ppp/4p3/3p2Q1/3P4/4P3/PPP2PPP/RNB1KBNR b KQkq - 0 4")
	assert.Equal(t, 929, MaterialTerm(b))
}

func TestKingSafetyTable(t *testing.T) {
	cases := []struct {
		fen      string
		expected int
	}{
		{"k7/8/8/8/8/8/1PPP4/2K5 w - - 0 1", 3},
		{"k7/pp6/8/8/8/8/1PPP4/2K5 w - - 0 1", 1},
		{"3k4/ppppp3/8/8/8/8/2P5/2K5 w - - 0 1", -2},
	}
	for _, c := range cases {
		b := mustFEN(t, c.fen)
		assert.Equal(t, c.expected, KingSafetyTerm(b), c.fen)
	}
}

func TestPinsTable(t *testing.T) {
	cases := []struct {
		fen      string
		expected int
	}{
		{"2k5/3p4/8/5B2/8/8/8/2K5 w - - 0 1", 1},
		{"3k4/8/8/3r4/8/1b6/2PP4/3KN2q w - - 0 1", -3},
	}
	for _, c := range cases {
		b := mustFEN(t, c.fen)
		assert.Equal(t, c.expected, PinsTerm(b), c.fen)
	}
}

func TestEvaluateCheckmateFavorsTheMatingSide(t *testing.T) {
	// Fool's mate: white to move, checkmated by the black queen on h4.
	b := mustFEN(t, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	score := Evaluate(b)
	assert.Less(t, score, -9000)
}

func TestEvaluateStalemateIsZero(t *testing.T) {
	b := mustFEN(t, "k7/8/1Q6/8/8/8/8/7K b - - 0 1")
	assert.Equal(t, 0, Evaluate(b))
}
