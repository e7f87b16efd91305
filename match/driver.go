// Package match provides the thin self-play driver: it feeds positions to
// the negamax searcher turn by turn and applies the move each side picks.
package match

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/negamax-chess/engine/board"
	"github.com/negamax-chess/engine/internal/evaluation"
	"github.com/negamax-chess/engine/internal/search"
	"github.com/negamax-chess/engine/movegen"
)

// Driver plays a self-play game from a starting board, alternating negamax
// searches at a fixed depth until no legal moves remain or a move budget is
// reached. It owns one transposition table per side, mirroring the
// original engine's play_match, which keeps a white_tt and a black_tt.
type Driver struct {
	Board      *board.Board
	Depth      int
	Eval       search.Evaluator
	whiteTable *search.Table
	blackTable *search.Table
	sideSign   int
	logger     zerolog.Logger
}

// NewDriver creates a driver starting from b, searching to the given depth
// with the given evaluator. sideSign is +1 if White moves first from b,
// -1 if Black does.
func NewDriver(b *board.Board, depth int, eval search.Evaluator, logger zerolog.Logger) *Driver {
	sideSign := 1
	if b.Turn() == board.BlackColor {
		sideSign = -1
	}
	return &Driver{
		Board:      b,
		Depth:      depth,
		Eval:       eval,
		whiteTable: search.NewTable(),
		blackTable: search.NewTable(),
		sideSign:   sideSign,
		logger:     logger,
	}
}

// tableFor returns the transposition table owned by the side currently to
// move.
func (d *Driver) tableFor() *search.Table {
	if d.sideSign == 1 {
		return d.whiteTable
	}
	return d.blackTable
}

// Step plays a single ply: it searches the current position, applies the
// chosen move, and flips the side sign. ok is false when there are no
// legal moves (checkmate or stalemate) and nothing was played.
func (d *Driver) Step() (score int, move board.Move, ok bool, err error) {
	legalMoves := legalMoveCount(d.Board)
	if legalMoves == 0 {
		return 0, board.NullMove, false, nil
	}

	score, move = search.Negamax(d.Board, d.Depth, d.sideSign, -9999, 9999, d.tableFor(), true, d.Eval, true)
	if move == board.NullMove {
		return score, move, false, nil
	}

	if _, err := d.Board.MakeMoveWithUndo(move); err != nil {
		return 0, board.NullMove, false, fmt.Errorf("match: applying searched move %s: %w", move.UCI(), err)
	}
	d.sideSign = -d.sideSign

	return score, move, true, nil
}

// PlayMatch starts a self-play game from the standard starting position and
// alternates negamax searches until no legal moves remain, printing
// (moveNumber, move, score, transpositionTableSize) per ply and the board
// after each move, exactly as the original engine's play_match does.
func PlayMatch(depth int, w io.Writer) error {
	logger := zerolog.New(w).With().Timestamp().Logger()
	driver := NewDriver(board.StartPos(), depth, evaluation.Evaluate, logger)

	moveNumber := 0
	for {
		score, move, ok, err := driver.Step()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		moveNumber++

		logger.Info().
			Int("moveNumber", moveNumber).
			Str("move", move.UCI()).
			Int("score", score).
			Int("transpositionTableSize", driver.tableFor().Len()).
			Msg("move played")

		fmt.Fprintf(w, "%d. %s, %d, transposition table: %d\n%s\n",
			moveNumber, move.UCI(), score, driver.tableFor().Len(), driver.Board.ToFEN())
	}

	return nil
}

// PlayMoves plays numMoves plies of negamax search from b, alternating
// sides starting from startSign (+1 White, -1 Black), and returns the
// resulting board. It is a bounded variant of PlayMatch, supplemented from
// the original engine's play_x_moves helper and used directly by this
// package's tests, including a mate-in-one check.
func PlayMoves(b *board.Board, numMoves int, depth int, startSign int) (*board.Board, error) {
	driver := &Driver{
		Board:      b,
		Depth:      depth,
		Eval:       evaluation.Evaluate,
		whiteTable: search.NewTable(),
		blackTable: search.NewTable(),
		sideSign:   startSign,
	}

	for i := 0; i < numMoves; i++ {
		_, _, ok, err := driver.Step()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
	}

	return driver.Board, nil
}

func legalMoveCount(b *board.Board) int {
	player := movegen.White
	if b.Turn() == board.BlackColor {
		player = movegen.Black
	}
	moveList := movegen.GetLegalMoves(b, player)
	count := len(moveList.Moves)
	movegen.ReleaseMoveList(moveList)
	return count
}
