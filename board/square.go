// Package board defines the board primitives: squares, occupancy
// bitboards, piece colors, and castle sides.
package board

import (
	"errors"
)

const (
	Width        = 8
	Height       = 8
	TotalSquares = Width * Height
)

var (
	// ErrInvalidNotation represents an invalid notation error.
	ErrInvalidNotation = errors.New("invalid notation")
)

// Square indexes a board cell, little-endian rank-file:
// A1=0, H1=7, A8=56, H8=63.
type Square uint8

const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
	NoSquare Square = TotalSquares
)

func NewSquare(file, rank uint8) Square {
	return Square(rank)*Width + Square(file)
}

func NewSquareFromNotation(n string) (Square, error) {
	if len(n) != 2 {
		return NoSquare, ErrInvalidNotation
	}
	file, rank := n[0]-'a', n[1]-'1'
	if file >= Width || rank >= Height {
		return NoSquare, ErrInvalidNotation
	}
	return NewSquare(file, rank), nil
}

func (sq Square) String() string {
	return sq.Notation()
}

func (sq Square) Notation() string {
	if sq >= NoSquare {
		return ""
	}
	return string(rune('a'+sq.File())) + string(rune('1'+sq.Rank()))
}

func (sq Square) File() uint8 {
	return uint8(sq) & 7
}

func (sq Square) Rank() uint8 {
	return uint8(sq) >> 3
}

func (sq Square) IsValid() bool {
	return sq < NoSquare
}

// Mirror flips the square vertically, mapping each rank to the
// opposite color's equivalent rank.
func (sq Square) Mirror() Square {
	return sq ^ 56
}
