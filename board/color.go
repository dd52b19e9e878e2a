package board

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidColor represents an invalid color symbol error.
	ErrInvalidColor = errors.New("invalid color")
)

// Color is a piece color, White or Black.
type Color uint8

const (
	White Color = iota
	Black
)

// NewColorFromSymbol maps a FEN active-color symbol to its Color,
// accepting either case.
func NewColorFromSymbol(sym byte) (Color, error) {
	switch sym {
	case 'w', 'W':
		return White, nil
	case 'b', 'B':
		return Black, nil
	default:
		return 0, fmt.Errorf("%w: unknown symbol '%s'", ErrInvalidColor, string(sym))
	}
}

func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return ""
	}
}

// Symbol returns the FEN symbol, 'w' or 'b'.
func (c Color) Symbol() byte {
	if c == White {
		return 'w'
	}
	return 'b'
}

func (c Color) IsWhite() bool {
	return c == White
}

func (c Color) IsBlack() bool {
	return c == Black
}

func (c Color) Inverse() Color {
	return c ^ 1
}

func (c *Color) Invert() {
	*c ^= 1
}
