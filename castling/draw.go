package castling

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/fianchetto/castle/board"
)

// Dump renders the set on a bare board, marking each member's required
// empty squares with '#' and its king destination with the member's
// symbol. The destination mark wins where the two overlap.
func (cr Rights) Dump() string {
	builder := strings.Builder{}
	for rank := uint8(board.Height); rank > 0; rank-- {
		_, _ = builder.WriteString(fmt.Sprintf(" %d |", rank))
		for file := uint8(0); file < board.Width; file++ {
			_, _ = builder.WriteString(fmt.Sprintf(" %s ", cr.squareMark(board.NewSquare(file, rank-1))))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("    ------------------------\n    ")
	for file := uint8(0); file < board.Width; file++ {
		_, _ = builder.WriteString(fmt.Sprintf(" %c ", 'a'+file))
	}
	return builder.String()
}

// Draw renders the set like Dump over a checkered board, white rights
// bright and black rights dark.
func (cr Rights) Draw() string {
	builder := strings.Builder{}
	label := color.New(color.Bold)
	for rank := uint8(board.Height); rank > 0; rank-- {
		_, _ = builder.WriteString(label.Sprintf(" %d ", rank))
		for file := uint8(0); file < board.Width; file++ {
			mark := cr.squareMark(board.NewSquare(file, rank-1))
			bg := color.BgGreen
			if (file^(rank-1))&1 != 0 {
				bg = color.BgHiGreen
			}
			fg := color.FgBlack
			if mark[0] >= 'A' && mark[0] <= 'Z' {
				fg = color.FgHiWhite
			}
			_, _ = builder.WriteString(color.New(fg, bg).Sprintf(" %s ", mark))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   ")
	for file := uint8(0); file < board.Width; file++ {
		_, _ = builder.WriteString(label.Sprintf(" %c ", 'a'+file))
	}
	return builder.String()
}

func (cr Rights) squareMark(sq board.Square) string {
	for _, r := range cr.Slice() {
		if r.CastleSquare() == sq {
			return string(r.Symbol())
		}
		if r.EmptySquares().IsSet(sq) {
			return "#"
		}
	}
	return "."
}
