// Package image renders castling rights as SVG board diagrams.
package image

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/fianchetto/castle/board"
	"github.com/fianchetto/castle/castling"
)

const (
	defaultSquareSize = 45

	fillLight     = "#f0d9b5"
	fillDark      = "#b58863"
	fillHighlight = "#cdd26a"
)

type encoder struct {
	squareSize int
	caption    bool
}

// An Option configures the SVG encoder.
type Option func(*encoder)

// WithSquareSize sets the rendered square size in pixels.
func WithSquareSize(px int) Option {
	return func(e *encoder) {
		e.squareSize = px
	}
}

// WithCaption toggles the FEN field caption under the board.
func WithCaption(enabled bool) Option {
	return func(e *encoder) {
		e.caption = enabled
	}
}

// SVG writes an 8x8 board diagram of cr to w, highlighting each
// member's required empty squares and marking its king destination
// square with the member's symbol.
func SVG(w io.Writer, cr castling.Rights, opts ...Option) error {
	e := &encoder{
		squareSize: defaultSquareSize,
		caption:    true,
	}
	for _, opt := range opts {
		opt(e)
	}

	ew := &errWriter{w: w}
	sq := e.squareSize
	width, height := board.Width*sq, board.Height*sq
	if e.caption {
		height += sq
	}

	canvas := svg.New(ew)
	canvas.Start(width, height)
	for rank := uint8(board.Height); rank > 0; rank-- {
		for file := uint8(0); file < board.Width; file++ {
			s := board.NewSquare(file, rank-1)
			x, y := int(file)*sq, int(board.Height-rank)*sq
			canvas.Rect(x, y, sq, sq, "fill:"+e.squareFill(cr, s))
			if r, ok := castleTarget(cr, s); ok {
				canvas.Text(x+sq/2, y+sq/2, string(r.Symbol()), e.textStyle())
			}
		}
	}
	if e.caption {
		canvas.Text(width/2, board.Height*sq+sq/2, cr.String(), e.textStyle())
	}
	canvas.End()
	return ew.err
}

func (e *encoder) squareFill(cr castling.Rights, s board.Square) string {
	for _, r := range cr.Slice() {
		if r.EmptySquares().IsSet(s) || r.CastleSquare() == s {
			return fillHighlight
		}
	}
	if (s.File()^s.Rank())&1 == 0 {
		return fillDark
	}
	return fillLight
}

func (e *encoder) textStyle() string {
	return fmt.Sprintf("font-size:%dpx;font-family:sans-serif;text-anchor:middle;dominant-baseline:central", e.squareSize/2)
}

func castleTarget(cr castling.Rights, s board.Square) (castling.Right, bool) {
	for _, r := range cr.Slice() {
		if r.CastleSquare() == s {
			return r, true
		}
	}
	return 0, false
}

// errWriter remembers the first write error so svg calls can be chained
// without checking each one.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	if err != nil {
		ew.err = err
	}
	return n, err
}
