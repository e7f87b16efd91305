// Package evaluation provides the static position evaluator the search
// package consults at the horizon and during quiescence: material,
// piece-square tables, king safety, pins, and attacker/defender counts
// blended into one centipawn score from White's perspective.
package evaluation

import (
	"math"

	"github.com/negamax-chess/engine/board"
	"github.com/negamax-chess/engine/movegen"
)

// mateScore is the base magnitude of a checkmate score, adjusted by ply so
// that a mate delivered sooner scores better than one delivered later.
const mateScore = 9999

// nonPawnPhaseThreshold is the combined non-pawn, non-king piece count below
// which the evaluator switches from middle-game to end-game piece-square
// values.
const nonPawnPhaseThreshold = 8

// Evaluate returns the static evaluation of b from White's perspective:
// positive favors White, negative favors Black. Checkmate and stalemate are
// resolved first; otherwise the score is the weighted sum of material, PSQ,
// king safety, pins, and attacker/defender terms.
func Evaluate(b *board.Board) int {
	legalMoves := legalMovesFor(b)

	if b.Checkmate(legalMoves) {
		turnSign := 1
		if b.Turn() == board.BlackColor {
			turnSign = -1
		}
		return -turnSign * (mateScore - b.Ply())
	}
	if b.Stalemate(legalMoves) {
		return 0
	}

	material := MaterialTerm(b)
	psq := PSQTerm(b)
	kingSafety := KingSafetyTerm(b)
	pins := PinsTerm(b)
	attackers, defenders := AttackersDefendersTerms(b)

	score := float64(material)*1.0 +
		float64(psq)*0.01 +
		float64(kingSafety)*20.0 +
		float64(pins)*40.0 +
		float64(attackers)*50.0 +
		float64(defenders)*50.0

	return int(math.Round(score))
}

// legalMovesFor generates the legal moves for the side to move, used only
// to answer the checkmate/stalemate predicates above.
func legalMovesFor(b *board.Board) []board.Move {
	player := movegen.White
	if b.Turn() == board.BlackColor {
		player = movegen.Black
	}
	moveList := movegen.GetLegalMoves(b, player)
	defer moveList.Clear()
	return moveList.Moves
}

// MaterialTerm returns Σ white piece values − Σ black piece values, in
// centipawns.
func MaterialTerm(b *board.Board) int {
	return b.GetMaterialScore()
}

// PSQTerm returns the piece-square-table sum, using the middle-game table
// unless fewer than nonPawnPhaseThreshold non-pawn pieces remain on the
// board, in which case the end-game table is used.
func PSQTerm(b *board.Board) int {
	middleGame, endGame := b.PSQCentipawns()
	if b.TotalNonPawnMaterial() < nonPawnPhaseThreshold {
		return endGame
	}
	return middleGame
}

// KingSafetyTerm returns the count of White pieces adjacent to the White
// king minus the count of Black pieces adjacent to the Black king, where
// "adjacent" is the 8-square ring immediately around the king square.
func KingSafetyTerm(b *board.Board) int {
	whiteAdjacent := kingRingOccupancy(b, board.WhiteColor)
	blackAdjacent := kingRingOccupancy(b, board.BlackColor)
	return whiteAdjacent - blackAdjacent
}

func kingRingOccupancy(b *board.Board, color board.PieceColor) int {
	kingSquare, found := b.KingSquare(color)
	if !found {
		return 0
	}
	ring := board.KingRing(kingSquare, 0)
	own := b.OccupiedWhite()
	if color == board.BlackColor {
		own = b.OccupiedBlack()
	}
	return (ring & own).PopCount()
}

// PinsTerm returns the count of Black pinned pieces minus the count of
// White pinned pieces.
func PinsTerm(b *board.Board) int {
	blackPinned := b.PinnedPieces(board.BlackColor).PopCount()
	whitePinned := b.PinnedPieces(board.WhiteColor).PopCount()
	return blackPinned - whitePinned
}

// AttackersDefendersTerms iterates every occupied square and returns
// (attackers, defenders): attackers is the count of White pieces attacking
// a Black piece minus the count of Black pieces attacking a White piece;
// defenders is the count of White pieces defending a White piece minus the
// count of Black pieces defending a Black piece.
func AttackersDefendersTerms(b *board.Board) (attackers, defenders int) {
	occupancy := b.Occupied()
	whitePieces := b.OccupiedWhite()
	blackPieces := b.OccupiedBlack()

	for _, loc := range b.PieceLocations() {
		attackersToSquare := b.AttackersTo(loc.Square, occupancy)
		whiteAttackers := (attackersToSquare & whitePieces).PopCount()
		blackAttackers := (attackersToSquare & blackPieces).PopCount()

		if board.IsWhitePiece(loc.Piece) {
			attackers -= blackAttackers
			defenders += whiteAttackers
		} else {
			attackers += whiteAttackers
			defenders -= blackAttackers
		}
	}

	return attackers, defenders
}
