package movegen

import (
	"github.com/negamax-chess/engine/board"
)

// GetLegalMoves returns all legal moves for the current position.
func GetLegalMoves(b *board.Board, player Player) *MoveList {
	generator := NewGenerator()
	return generator.GenerateAllMoves(b, player)
}
