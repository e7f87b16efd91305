package movegen

import "github.com/negamax-chess/engine/board"

// Generator provides complete chess move generation using bitboard operations.
// It holds an attack detector and the bitboard generator, which covers
// castling, en passant, and promotion inline; move lists come from a pool.
type Generator struct {
	attackDetector    *AttackDetector
	bitboardGenerator *BitboardMoveGenerator
}

// NewGenerator creates a new move generator with bitboard-based move generation.
// Castling, en passant and promotion are handled inline by the bitboard
// generator rather than through separate handler types.
func NewGenerator() *Generator {
	return &Generator{
		attackDetector:    &AttackDetector{},
		bitboardGenerator: NewBitboardMoveGenerator(),
	}
}

// GenerateAllMoves generates all legal moves for the given player using high-performance bitboard operations.
// This includes all piece types and special moves (castling, en passant, promotion).
// Moves are filtered to ensure they don't leave the king in check.
// Returns a MoveList that should be released back to the pool when done.
// Returns an empty list if board is nil.
func (g *Generator) GenerateAllMoves(b *board.Board, player Player) *MoveList {
	if b == nil {
		return GetMoveList() // Return empty list
	}

	// Use bitboard generation for optimal performance
	return g.bitboardGenerator.GenerateAllMovesBitboard(b, player)
}

// IsSquareAttacked checks if a square is under attack by the opposing player.
// This is the public interface for external attack detection queries.
// Returns true if any enemy piece can attack the specified square.
func (g *Generator) IsSquareAttacked(b *board.Board, square board.Square, player Player) bool {
	return g.attackDetector.IsSquareAttacked(b, square, player)
}

// Release cleans up and releases any resources held by the generator.
// Should be called when the generator is no longer needed to prevent memory leaks.
// Safe to call multiple times.
func (g *Generator) Release() {
	if g.bitboardGenerator != nil {
		g.bitboardGenerator.Release()
	}
}
