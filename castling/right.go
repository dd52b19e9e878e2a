// Package castling models castling rights: the four individual rights
// and the packed set of them a position carries, including the FEN
// castling field encoding.
package castling

import (
	"errors"
	"fmt"

	"github.com/fianchetto/castle/board"
)

var (
	// ErrInvalidRight represents an invalid castling right symbol error.
	ErrInvalidRight = errors.New("invalid castling right")
)

// Right is one of the four castling rights.
type Right uint8

const (
	WhiteKingside Right = iota
	WhiteQueenside
	BlackKingside
	BlackQueenside
)

var (
	maskRightEmpty = [4]board.Bitboard{
		WhiteKingside:  0x_00_00_00_00_00_00_00_60,
		WhiteQueenside: 0x_00_00_00_00_00_00_00_0E,
		BlackKingside:  0x_60_00_00_00_00_00_00_00,
		BlackQueenside: 0x_0E_00_00_00_00_00_00_00,
	}

	castleSquares = [4]board.Square{
		WhiteKingside:  board.G1,
		WhiteQueenside: board.C1,
		BlackKingside:  board.G8,
		BlackQueenside: board.C8,
	}

	rightSymbols = [4]byte{
		WhiteKingside:  'K',
		WhiteQueenside: 'Q',
		BlackKingside:  'k',
		BlackQueenside: 'q',
	}
)

// NewRight returns the right of the given color on the given side.
// Every (color, side) pair identifies exactly one right.
func NewRight(c board.Color, s board.Side) Right {
	return Right(uint8(c)<<1 | uint8(s))
}

// NewRightFromSymbol maps a FEN castling symbol ('K', 'Q', 'k' or 'q')
// to its right.
func NewRightFromSymbol(sym byte) (Right, error) {
	switch sym {
	case 'K':
		return WhiteKingside, nil
	case 'Q':
		return WhiteQueenside, nil
	case 'k':
		return BlackKingside, nil
	case 'q':
		return BlackQueenside, nil
	default:
		return 0, fmt.Errorf("%w: unknown symbol '%s'", ErrInvalidRight, string(sym))
	}
}

func (r Right) String() string {
	switch r {
	case WhiteKingside:
		return "WhiteKingside"
	case WhiteQueenside:
		return "WhiteQueenside"
	case BlackKingside:
		return "BlackKingside"
	case BlackQueenside:
		return "BlackQueenside"
	default:
		return ""
	}
}

func (r Right) Color() board.Color {
	return board.Color(r >> 1)
}

func (r Right) Side() board.Side {
	return board.Side(r & 1)
}

// WithColor returns the right on the same side for the given color.
func (r Right) WithColor(c board.Color) Right {
	return NewRight(c, r.Side())
}

// WithSide returns the right of the same color on the given side.
func (r Right) WithSide(s board.Side) Right {
	return NewRight(r.Color(), s)
}

// EmptySquares returns the squares between king and rook that must be
// vacant for the castle move to be playable.
func (r Right) EmptySquares() board.Bitboard {
	return maskRightEmpty[r]
}

// CastleSquare returns the square the king lands on when castling.
func (r Right) CastleSquare() board.Square {
	return castleSquares[r]
}

// Symbol returns the FEN symbol, uppercase for white and lowercase for
// black.
func (r Right) Symbol() byte {
	return rightSymbols[r]
}

// bit is the flag of r within a Rights set.
func (r Right) bit() Rights {
	return Rights(1) << r
}
