// Package board implements the chess rule library the search and evaluation
// packages consume: bitboard position representation, make/unmake, FEN
// parsing, Zobrist hashing and the attack/pin queries the evaluator needs.
package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/negamax-chess/engine/internal/values"
)

// Piece represents a chess piece using standard FEN notation.
type Piece rune

const (
	// Empty represents an empty square.
	Empty Piece = '.'
	// WhitePawn represents a white pawn piece.
	WhitePawn Piece = 'P'
	// WhiteRook represents a white rook piece.
	WhiteRook Piece = 'R'
	// WhiteKnight represents a white knight piece.
	WhiteKnight Piece = 'N'
	// WhiteBishop represents a white bishop piece.
	WhiteBishop Piece = 'B'
	// WhiteQueen represents a white queen piece.
	WhiteQueen Piece = 'Q'
	// WhiteKing represents a white king piece.
	WhiteKing Piece = 'K'
	// BlackPawn represents a black pawn piece.
	BlackPawn Piece = 'p'
	// BlackRook represents a black rook piece.
	BlackRook Piece = 'r'
	// BlackKnight represents a black knight piece.
	BlackKnight Piece = 'n'
	// BlackBishop represents a black bishop piece.
	BlackBishop Piece = 'b'
	// BlackQueen represents a black queen piece.
	BlackQueen Piece = 'q'
	// BlackKing represents a black king piece.
	BlackKing Piece = 'k'
)

// Bitboard indices for piece types.
const (
	WhitePawnIndex   = 0
	WhiteRookIndex   = 1
	WhiteKnightIndex = 2
	WhiteBishopIndex = 3
	WhiteQueenIndex  = 4
	WhiteKingIndex   = 5
	BlackPawnIndex   = 6
	BlackRookIndex   = 7
	BlackKnightIndex = 8
	BlackBishopIndex = 9
	BlackQueenIndex  = 10
	BlackKingIndex   = 11
)

// Square represents a position on the chess board.
type Square struct {
	File int // 0-7 (a-h)
	Rank int // 0-7 (1-8)
}

// Board represents a chess position: piece placement, side to move,
// castling/en-passant state, and the incremental accumulators the
// evaluator reads (material, middle/end-game PST sums).
type Board struct {
	castlingRights  string // KQkq format
	enPassantTarget *Square // nil if no en passant capture is available
	halfMoveClock   int
	fullMoveNumber  int
	sideToMove      string // "w" or "b"

	// Bitboard representation (12 piece types).
	PieceBitboards [12]Bitboard

	// Mailbox representation for O(1) piece lookup.
	Mailbox [64]Piece

	// Color bitboards, derived from the piece bitboards.
	WhitePieces Bitboard
	BlackPieces Bitboard
	AllPieces   Bitboard

	// Incremental evaluation accumulators (from White's perspective), kept
	// up to date entirely through SetPiece on both make and unmake.
	materialScore int
	pstMiddleGame int
	pstEndGame    int
}

// NewBoard creates an empty chess board (no pieces placed). Most callers
// want FromFEN or StartPos instead.
func NewBoard() *Board {
	b := &Board{
		castlingRights: "KQkq",
		halfMoveClock:  0,
		fullMoveNumber: 1,
		sideToMove:     "w",
	}

	for i := 0; i < 64; i++ {
		b.Mailbox[i] = Empty
	}

	return b
}

// StartPos returns a board set up at the standard chess starting position.
func StartPos() *Board {
	b, err := FromFEN(StartFEN)
	if err != nil {
		panic("board: invalid builtin start FEN: " + err.Error())
	}
	return b
}

// StartFEN is the FEN of the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// GetMaterialScore returns the incrementally maintained material score,
// positive favoring White.
func (b *Board) GetMaterialScore() int {
	return b.materialScore
}

// PSQCentipawns returns the incrementally maintained middle-game and
// end-game piece-square-table sums, positive favoring White.
func (b *Board) PSQCentipawns() (middleGame, endGame int) {
	return b.pstMiddleGame, b.pstEndGame
}

// updateEvalScoresForPiece adjusts the incremental accumulators after a
// piece placement or removal at (rank, file).
func (b *Board) updateEvalScoresForPiece(rank, file int, oldPiece, newPiece Piece) {
	if oldPiece != Empty {
		b.materialScore -= values.PieceValue(values.Piece(oldPiece))
		mg, eg := values.PositionalBonus(values.Piece(oldPiece), rank, file)
		b.pstMiddleGame -= mg
		b.pstEndGame -= eg
	}
	if newPiece != Empty {
		b.materialScore += values.PieceValue(values.Piece(newPiece))
		mg, eg := values.PositionalBonus(values.Piece(newPiece), rank, file)
		b.pstMiddleGame += mg
		b.pstEndGame += eg
	}
}

// InitializeEvalScoresFromPosition recomputes the incremental accumulators
// from scratch. Called once after board setup (e.g. after FromFEN).
func (b *Board) InitializeEvalScoresFromPosition() {
	b.materialScore = 0
	b.pstMiddleGame = 0
	b.pstEndGame = 0

	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			piece := b.GetPiece(rank, file)
			if piece == Empty {
				continue
			}
			b.materialScore += values.PieceValue(values.Piece(piece))
			mg, eg := values.PositionalBonus(values.Piece(piece), rank, file)
			b.pstMiddleGame += mg
			b.pstEndGame += eg
		}
	}
}

// PieceToBitboardIndex returns the bitboard index for a given piece, or -1
// for an invalid piece.
func PieceToBitboardIndex(piece Piece) int {
	switch piece {
	case WhitePawn:
		return WhitePawnIndex
	case WhiteRook:
		return WhiteRookIndex
	case WhiteKnight:
		return WhiteKnightIndex
	case WhiteBishop:
		return WhiteBishopIndex
	case WhiteQueen:
		return WhiteQueenIndex
	case WhiteKing:
		return WhiteKingIndex
	case BlackPawn:
		return BlackPawnIndex
	case BlackRook:
		return BlackRookIndex
	case BlackKnight:
		return BlackKnightIndex
	case BlackBishop:
		return BlackBishopIndex
	case BlackQueen:
		return BlackQueenIndex
	case BlackKing:
		return BlackKingIndex
	default:
		return -1
	}
}

// GetPieceBitboard returns the bitboard for a specific piece type.
func (b *Board) GetPieceBitboard(piece Piece) Bitboard {
	index := PieceToBitboardIndex(piece)
	if index == -1 {
		return 0
	}
	return b.PieceBitboards[index]
}

// GetColorBitboard returns the bitboard of all pieces of a given color.
func (b *Board) GetColorBitboard(color BitboardColor) Bitboard {
	if color == BitboardWhite {
		return b.WhitePieces
	}
	return b.BlackPieces
}

func (b *Board) setPieceBitboard(rank, file int, piece Piece) {
	square := FileRankToSquare(file, rank)
	index := PieceToBitboardIndex(piece)
	if index == -1 {
		return
	}

	squareBit := Bitboard(1) << uint(square)
	b.PieceBitboards[index] = b.PieceBitboards[index].SetBit(square)

	if IsWhitePiece(piece) {
		b.WhitePieces |= squareBit
	} else {
		b.BlackPieces |= squareBit
	}
	b.AllPieces |= squareBit
}

func (b *Board) removePieceBitboard(rank, file int, piece Piece) {
	square := FileRankToSquare(file, rank)
	index := PieceToBitboardIndex(piece)
	if index == -1 {
		return
	}

	squareBit := Bitboard(1) << uint(square)
	b.PieceBitboards[index] = b.PieceBitboards[index].ClearBit(square)

	if IsWhitePiece(piece) {
		b.WhitePieces &= ^squareBit
	} else {
		b.BlackPieces &= ^squareBit
	}
	b.AllPieces &= ^squareBit
}

// GetPiece returns the piece at the given rank/file, or Empty if the
// coordinates are off-board.
func (b *Board) GetPiece(rank, file int) Piece {
	if rank < 0 || rank > 7 || file < 0 || file > 7 {
		return Empty
	}
	return b.Mailbox[rank*8+file]
}

// SetPiece places a piece at the given rank/file, updating the mailbox,
// bitboards and incremental evaluation accumulators.
func (b *Board) SetPiece(rank, file int, piece Piece) {
	square := rank*8 + file
	oldPiece := b.Mailbox[square]

	b.updateEvalScoresForPiece(rank, file, oldPiece, piece)

	b.Mailbox[square] = piece

	if oldPiece != Empty {
		b.removePieceBitboard(rank, file, oldPiece)
	}
	if piece != Empty {
		b.setPieceBitboard(rank, file, piece)
	}
}

// FromFEN creates a new board from a FEN (Forsyth-Edwards Notation) string.
func FromFEN(fen string) (*Board, error) {
	if fen == "" {
		return nil, errors.New("invalid FEN: missing board position")
	}

	parts := strings.Split(fen, " ")
	boardPart := parts[0]
	ranks := strings.Split(boardPart, "/")
	if len(ranks) != 8 {
		return nil, errors.New("invalid FEN: must have exactly 8 ranks")
	}

	b := NewBoard()

	for rankIndex, rankStr := range ranks {
		// FEN ranks run from 8 (top) to 1 (bottom); array index 0 is rank 1.
		actualRank := 7 - rankIndex
		file := 0
		for _, char := range rankStr {
			if file >= 8 {
				return nil, errors.New("invalid FEN: too many files in rank")
			}
			if char >= '1' && char <= '8' {
				empty, err := strconv.Atoi(string(char))
				if err != nil {
					return nil, fmt.Errorf("invalid FEN: failed to parse empty squares count: %w", err)
				}
				for i := 0; i < empty; i++ {
					if file >= 8 {
						return nil, errors.New("invalid FEN: too many files in rank")
					}
					b.SetPiece(actualRank, file, Empty)
					file++
				}
			} else {
				piece := Piece(char)
				if !isValidPiece(piece) {
					return nil, errors.New("invalid FEN: invalid piece character")
				}
				b.SetPiece(actualRank, file, piece)
				file++
			}
		}
		if file != 8 {
			return nil, errors.New("invalid FEN: incorrect number of files in rank")
		}
	}

	if len(parts) >= 2 {
		b.sideToMove = parts[1]
	}
	if len(parts) >= 3 {
		b.castlingRights = parts[2]
	}
	if len(parts) >= 4 {
		epStr := parts[3]
		if epStr != "-" && len(epStr) == 2 {
			file := int(epStr[0] - 'a')
			rank := int(epStr[1] - '1')
			if file >= 0 && file <= 7 && rank >= 0 && rank <= 7 {
				square := Square{File: file, Rank: rank}
				b.enPassantTarget = &square
			}
		}
	}
	if len(parts) >= 5 {
		if halfMove, err := strconv.Atoi(parts[4]); err == nil {
			b.halfMoveClock = halfMove
		}
	}
	if len(parts) >= 6 {
		if fullMove, err := strconv.Atoi(parts[5]); err == nil {
			b.fullMoveNumber = fullMove
		}
	}

	b.InitializeEvalScoresFromPosition()

	return b, nil
}

func isValidPiece(piece Piece) bool {
	switch piece {
	case WhitePawn, WhiteRook, WhiteKnight, WhiteBishop, WhiteQueen, WhiteKing,
		BlackPawn, BlackRook, BlackKnight, BlackBishop, BlackQueen, BlackKing:
		return true
	default:
		return false
	}
}

// GetCastlingRights returns the current castling rights as a string.
func (b *Board) GetCastlingRights() string {
	return b.castlingRights
}

// GetEnPassantTarget returns the current en passant target square, or nil
// if no en passant capture is available.
func (b *Board) GetEnPassantTarget() *Square {
	return b.enPassantTarget
}

// SetSideToMove sets which side is to move.
func (b *Board) SetSideToMove(side string) {
	b.sideToMove = side
}
