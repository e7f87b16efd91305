package search

import "github.com/negamax-chess/engine/board"

// deltaMargin is the delta-pruning margin added to a captured piece's value
// when deciding whether a capture could possibly raise alpha.
const deltaMargin = 200

// InitialQuiesceDepth is the qDepth passed in at the search horizon.
const InitialQuiesceDepth = 10

// Quiesce extends search along captures only, until "quiet" or qDepth is
// exhausted, to avoid misjudging a position mid-exchange. sideSign is +1 if
// the side to move at this node is White, -1 otherwise.
func Quiesce(b *board.Board, sideSign int, alpha, beta int, qDepth int, eval Evaluator) int {
	standPat := sideSign * eval(b)

	if qDepth == 0 {
		return standPat
	}
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	moves := legalMovesFor(b)

	for _, m := range moves {
		if !m.IsCaptureMove() {
			continue
		}

		capturedValue := board.UnsignedPieceValue(b.LastCapturedPiece(m))
		if standPat+capturedValue+deltaMargin < alpha {
			continue
		}

		undo, err := b.MakeMoveWithUndo(m)
		if err != nil {
			panic("search: quiescence applied an illegal move: " + err.Error())
		}
		score := -Quiesce(b, -sideSign, -beta, -alpha, qDepth-1, eval)
		b.UnmakeMove(undo)

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	return alpha
}
