package search

import (
	"github.com/negamax-chess/engine/board"
	"github.com/negamax-chess/engine/movegen"
)

// Evaluator is a first-class static evaluation function, injected rather
// than hard-wired so tests can substitute a deterministic mock.
type Evaluator func(b *board.Board) int

// nullMoveReduction is R in "depth - 1 - R" for null-move pruning.
const nullMoveReduction = 2

// nullMoveMinDepth is the depth that must be exceeded before null-move
// pruning is attempted.
const nullMoveMinDepth = 3

// worstScore seeds bestScore before the main loop; any real evaluation is
// greater than it.
const worstScore = -9999

// Negamax runs alpha-beta negamax search with null-move pruning and
// transposition-table integration, returning the best score and move found
// for the side to move at the given board. isRoot gates the root legality
// filter (step 1) and the cache probe skip that follows from it.
func Negamax(b *board.Board, depth, sideSign, alpha, beta int, tt *Table, isRoot bool, eval Evaluator, allowNullMove bool) (int, board.Move) {
	if sideSign != 1 && sideSign != -1 {
		panic("search: sideSign must be +1 or -1")
	}
	return negamax(b, depth, sideSign, alpha, beta, tt, isRoot, eval, allowNullMove, 0)
}

func negamax(b *board.Board, depth, sideSign, alpha, beta int, tt *Table, isRoot bool, eval Evaluator, allowNullMove bool, ply int) (int, board.Move) {
	moves := legalMovesFor(b)
	skipCache := false

	if isRoot {
		filtered := filterRootMoves(b, moves)
		if len(filtered) > 0 && len(filtered) <= len(moves) {
			moves = filtered
			skipCache = true
		}
	}

	hash := b.Zobrist()

	if !isRoot && !skipCache {
		if entry, found := tt.Get(hash); found && entry.DepthSearched >= depth {
			switch entry.Bound {
			case Exact:
				return entry.Score, entry.BestMove
			case UpperBound:
				if entry.Score < beta {
					beta = entry.Score
				}
			case LowerBound:
				if entry.Score > alpha {
					alpha = entry.Score
				}
			}
			if alpha >= beta {
				return entry.Score, entry.BestMove
			}
		}
	}

	moves = OrderMoves(b, moves)

	if depth == 0 || b.Checkmate(moves) || len(moves) == 0 {
		return Quiesce(b, sideSign, alpha, beta, InitialQuiesceDepth, eval), board.NullMove
	}

	if allowNullMove && ply > 0 && depth > nullMoveMinDepth && !b.InCheck() && b.NonPawnMaterial(b.Turn()) > 0 {
		undo := b.MakeNullMove()
		score, _ := negamax(b, depth-1-nullMoveReduction, -sideSign, -beta, -beta+1, tt, false, eval, false, ply+1)
		score = -score
		b.UnmakeNullMove(undo)

		if score > beta {
			return beta, board.NullMove
		}
	}

	bestScore := worstScore
	bestMove := board.NullMove
	alphaOriginal := alpha

	for _, m := range moves {
		undo, err := b.MakeMoveWithUndo(m)
		if err != nil {
			panic("search: negamax applied an illegal move: " + err.Error())
		}
		score, _ := negamax(b, depth-1, -sideSign, -beta, -alpha, tt, false, eval, true, ply+1)
		score = -score
		b.UnmakeMove(undo)

		if score > bestScore {
			bestScore = score
			bestMove = m
		}
		if score > alpha {
			alpha = score
		}
		if alpha > beta {
			break
		}
	}

	var bound BoundKind
	switch {
	case bestScore <= alphaOriginal:
		bound = UpperBound
	case bestScore >= beta:
		bound = LowerBound
	default:
		bound = Exact
	}
	tt.Insert(hash, Entry{Score: bestScore, BestMove: bestMove, DepthSearched: depth, Bound: bound})

	return bestScore, bestMove
}

// filterRootMoves keeps only moves that, once applied, leave the position
// either checkmate or not stalemate — avoiding a root choice that stalemates
// when a non-stalemating alternative exists.
func filterRootMoves(b *board.Board, moves []board.Move) []board.Move {
	filtered := make([]board.Move, 0, len(moves))
	for _, m := range moves {
		undo, err := b.MakeMoveWithUndo(m)
		if err != nil {
			panic("search: root filter applied an illegal move: " + err.Error())
		}
		replyMoves := legalMovesFor(b)
		keep := b.Checkmate(replyMoves) || !b.Stalemate(replyMoves)
		b.UnmakeMove(undo)

		if keep {
			filtered = append(filtered, m)
		}
	}
	return filtered
}

// legalMovesFor generates the legal moves for the side to move, copying
// them out of the pooled MoveList before releasing it.
func legalMovesFor(b *board.Board) []board.Move {
	moveList := movegen.GetLegalMoves(b, playerToMove(b))
	moves := make([]board.Move, len(moveList.Moves))
	copy(moves, moveList.Moves)
	movegen.ReleaseMoveList(moveList)
	return moves
}

func playerToMove(b *board.Board) movegen.Player {
	if b.Turn() == board.BlackColor {
		return movegen.Black
	}
	return movegen.White
}
