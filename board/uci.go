package board

import (
	"fmt"
	"unicode"
)

// UCI returns the move in UCI long-algebraic form, e.g. "e2e4" or "e7e8q".
func (m Move) UCI() string {
	if m == NullMove {
		return "0000"
	}
	s := m.From.String() + m.To.String()
	if m.Promotion != Empty {
		s += string(unicode.ToLower(rune(m.Promotion)))
	}
	return s
}

// ApplyUCIMove finds the legal move matching a UCI string among the given
// candidate moves and applies it, returning undo information.
func (b *Board) ApplyUCIMove(uci string, legalMoves []Move) (MoveUndo, error) {
	for _, m := range legalMoves {
		if m.UCI() == uci {
			return b.MakeMoveWithUndo(m)
		}
	}
	return MoveUndo{}, fmt.Errorf("illegal or unrecognized UCI move: %s", uci)
}

// KingSquare returns the 0-63 square index of the king of the given color.
func (b *Board) KingSquare(color PieceColor) (int, bool) {
	rank, file, found := b.FindKing(color)
	if !found {
		return -1, false
	}
	return FileRankToSquare(file, rank), true
}

// Occupied returns the bitboard of all occupied squares.
func (b *Board) Occupied() Bitboard {
	return b.AllPieces
}

// OccupiedWhite returns the bitboard of all white-occupied squares.
func (b *Board) OccupiedWhite() Bitboard {
	return b.WhitePieces
}

// OccupiedBlack returns the bitboard of all black-occupied squares.
func (b *Board) OccupiedBlack() Bitboard {
	return b.BlackPieces
}

// AttackersTo returns the bitboard of squares occupied by pieces that
// attack the given square, considering the given occupancy (allowing
// callers to probe hypothetical occupancies, e.g. with a piece removed).
func (b *Board) AttackersTo(square int, occupancy Bitboard) Bitboard {
	saved := b.AllPieces
	b.AllPieces = occupancy
	defer func() { b.AllPieces = saved }()

	white := b.GetAttackersToSquare(square, BitboardWhite)
	black := b.GetAttackersToSquare(square, BitboardBlack)
	return white | black
}

// Turn returns which color is to move.
func (b *Board) Turn() PieceColor {
	if b.sideToMove == "w" {
		return WhiteColor
	}
	return BlackColor
}

// Ply returns the number of half-moves played so far, derived from the
// full-move counter and side to move.
func (b *Board) Ply() int {
	ply := (b.fullMoveNumber - 1) * 2
	if b.sideToMove == "b" {
		ply++
	}
	return ply
}

// InCheck reports whether the side to move is currently in check.
func (b *Board) InCheck() bool {
	return b.IsInCheck(ConvertToBitboardColor(b.Turn()))
}

// Checkmate reports whether the side to move is checkmated: in check with
// no legal moves. legalMoves must be the side-to-move's legal move list.
func (b *Board) Checkmate(legalMoves []Move) bool {
	return b.InCheck() && len(legalMoves) == 0
}

// Stalemate reports whether the side to move is stalemated: not in check
// but with no legal moves.
func (b *Board) Stalemate(legalMoves []Move) bool {
	return !b.InCheck() && len(legalMoves) == 0
}

// IsCaptureMove reports whether a move captures a piece (including en
// passant).
func (m Move) IsCaptureMove() bool {
	return m.IsCapture || m.IsEnPassant
}

// LastCapturedPiece returns the piece type captured by a move, Empty if
// none. For en passant the captured pawn is not on the destination square,
// so this must be queried before the move is applied.
func (b *Board) LastCapturedPiece(move Move) Piece {
	if move.IsEnPassant {
		var captureRank int
		if move.Piece == WhitePawn {
			captureRank = move.To.Rank - 1
		} else {
			captureRank = move.To.Rank + 1
		}
		return b.GetPiece(captureRank, move.To.File)
	}
	return b.GetPiece(move.To.Rank, move.To.File)
}

// GivesCheck reports whether applying move would place the opponent's king
// in check.
func (b *Board) GivesCheck(move Move) bool {
	return MoveGivesCheck(b, move)
}

// PieceLocation pairs an occupied square with the piece sitting on it.
type PieceLocation struct {
	Square int
	Piece  Piece
}

// PieceLocations returns every occupied square on the board along with the
// piece on it, in mailbox order.
func (b *Board) PieceLocations() []PieceLocation {
	locations := make([]PieceLocation, 0, b.AllPieces.PopCount())
	for square := 0; square < 64; square++ {
		piece := b.Mailbox[square]
		if piece != Empty {
			locations = append(locations, PieceLocation{Square: square, Piece: piece})
		}
	}
	return locations
}

// KingRing returns the bitboard of the 8 squares immediately surrounding
// a square (ring index 0). Off-board neighbors are simply absent.
func KingRing(square int, ring int) Bitboard {
	if ring != 0 {
		return 0
	}
	return GetKingAttacks(square)
}
