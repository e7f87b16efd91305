package board

import "github.com/negamax-chess/engine/internal/values"

// NonPawnMaterial counts the non-pawn, non-king pieces belonging to color,
// used by the evaluator to decide whether a position has reached the
// end-game phase.
func (b *Board) NonPawnMaterial(color PieceColor) int {
	count := 0
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			piece := b.GetPiece(rank, file)
			if piece == Empty || IsPawn(piece) || IsKing(piece) {
				continue
			}
			if GetPieceColor(piece) == color {
				count++
			}
		}
	}
	return count
}

// TotalNonPawnMaterial counts non-pawn, non-king pieces for both colors
// combined.
func (b *Board) TotalNonPawnMaterial() int {
	return b.NonPawnMaterial(WhiteColor) + b.NonPawnMaterial(BlackColor)
}

// UnsignedPieceValue exposes the evaluator's shared piece-value table so
// quiescence delta pruning can value captures without importing
// internal/values directly.
func UnsignedPieceValue(piece Piece) int {
	return values.UnsignedPieceValue(values.Piece(piece))
}
