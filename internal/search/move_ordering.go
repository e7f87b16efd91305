package search

import (
	"sort"

	"github.com/negamax-chess/engine/board"
)

// givesCheckPriority and capturePriority are the only two ordering tiers
// spec calls for: surface checks first, then captures, then everything
// else. No MVV-LVA, killer, or history heuristics — those change which
// nodes get searched at a fixed depth, and the engine's deterministic
// end-to-end scenarios are pinned to this exact ordering.
const (
	givesCheckPriority = 50
	capturePriority    = 10
)

type scoredMove struct {
	move     board.Move
	priority int
}

// OrderMoves sorts moves descending by priority (gives-check, then
// capture, then quiet), preserving relative order among ties. It never
// drops a move.
func OrderMoves(b *board.Board, moves []board.Move) []board.Move {
	scored := make([]scoredMove, len(moves))
	for i, m := range moves {
		scored[i] = scoredMove{move: m, priority: movePriority(b, m)}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].priority > scored[j].priority
	})

	ordered := make([]board.Move, len(scored))
	for i, s := range scored {
		ordered[i] = s.move
	}
	return ordered
}

func movePriority(b *board.Board, m board.Move) int {
	if b.GivesCheck(m) {
		return givesCheckPriority
	}
	if m.IsCaptureMove() {
		return capturePriority
	}
	return 0
}
