// Package api exposes the engine's external entry points: a pure function
// that replays a UCI move list and returns the engine's chosen reply, and a
// self-play driver for exercising the engine end to end.
package api

import (
	"fmt"
	"io"
	"strings"

	"github.com/negamax-chess/engine/board"
	"github.com/negamax-chess/engine/internal/evaluation"
	"github.com/negamax-chess/engine/internal/search"
	"github.com/negamax-chess/engine/match"
	"github.com/negamax-chess/engine/movegen"
)

// FindBestMove replays uciMoves (a space-separated list of UCI moves such as
// "e2e4 e7e5") from the standard starting position, then runs negamax search
// to the given depth for the side to move, returning its chosen move in UCI
// form.
func FindBestMove(uciMoves string, depth int) (string, error) {
	b := board.StartPos()

	for _, uci := range strings.Fields(uciMoves) {
		player := movegen.White
		if b.Turn() == board.BlackColor {
			player = movegen.Black
		}
		moveList := movegen.GetLegalMoves(b, player)
		moves := make([]board.Move, len(moveList.Moves))
		copy(moves, moveList.Moves)
		movegen.ReleaseMoveList(moveList)

		if _, err := b.ApplyUCIMove(uci, moves); err != nil {
			return "", fmt.Errorf("api: replaying move %q: %w", uci, err)
		}
	}

	sideSign := 1
	if b.Turn() == board.BlackColor {
		sideSign = -1
	}

	_, best := search.Negamax(b, depth, sideSign, -9999, 9999, search.NewTable(), true, evaluation.Evaluate, true)
	if best == board.NullMove {
		return "", fmt.Errorf("api: no legal move available")
	}

	return best.UCI(), nil
}

// PlayMatch runs a full self-play game at the given depth, writing a line
// per ply to w. It is a thin wrapper over match.PlayMatch, kept here so
// foreign-function and console front ends depend only on this package.
func PlayMatch(depth int, w io.Writer) error {
	return match.PlayMatch(depth, w)
}
