package board

import (
	"fmt"
	"math/bits"
	"strings"
)

// Bitboard is a 64-bit occupancy mask, one bit per Square.
type Bitboard uint64

func SquareBitboard(sq Square) Bitboard {
	return Bitboard(1) << sq
}

func Union(bbs ...Bitboard) Bitboard {
	var u Bitboard
	for _, bb := range bbs {
		u |= bb
	}
	return u
}

func Intersect(bbs ...Bitboard) Bitboard {
	u := ^Bitboard(0)
	for _, bb := range bbs {
		u &= bb
	}
	return u
}

func (bb *Bitboard) Set(sq Square) {
	*bb |= SquareBitboard(sq)
}

func (bb *Bitboard) Unset(sq Square) {
	*bb &^= SquareBitboard(sq)
}

func (bb Bitboard) IsSet(sq Square) bool {
	return bb&SquareBitboard(sq) != 0
}

func (bb Bitboard) LS1B() Square {
	return Square(bits.TrailingZeros64(uint64(bb)))
}

func (bb Bitboard) BitCount() uint8 {
	return uint8(bits.OnesCount64(uint64(bb)))
}

// Squares lists the set squares in ascending order.
func (bb Bitboard) Squares() []Square {
	sqs := make([]Square, 0, bb.BitCount())
	for bb != 0 {
		sqs = append(sqs, bb.LS1B())
		bb &= bb - 1
	}
	return sqs
}

func (bb Bitboard) Dump(sym ...rune) string {
	builder := strings.Builder{}
	for rank := uint8(Height); rank > 0; rank-- {
		_, _ = builder.WriteString(fmt.Sprintf(" %d |", rank))
		for file := uint8(0); file < Width; file++ {
			if bb.IsSet(NewSquare(file, rank-1)) {
				s := "#"
				if len(sym) == 1 {
					s = string(sym[0])
				}
				_, _ = builder.WriteString(fmt.Sprintf(" %s ", s))
			} else {
				_, _ = builder.WriteString(" . ")
			}
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("    ------------------------\n    ")
	for file := uint8(0); file < Width; file++ {
		_, _ = builder.WriteString(fmt.Sprintf(" %c ", 'a'+file))
	}
	return builder.String()
}
