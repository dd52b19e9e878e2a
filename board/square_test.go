package board

import (
	"errors"
	"testing"
)

func TestNewSquareFromNotation(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		notation string
		want     Square
		wantErr  error
	}{
		{
			name:     "ok 1",
			notation: "e4",
			want:     E4,
			wantErr:  nil,
		},
		{
			name:     "ok 2",
			notation: "h8",
			want:     H8,
			wantErr:  nil,
		},
		{
			name:     "ok 3",
			notation: "a1",
			want:     A1,
			wantErr:  nil,
		},
		{
			name:     "bad 1",
			notation: "",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad 2",
			notation: "a",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad 3",
			notation: "4",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad 4",
			notation: "m4",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad 5",
			notation: "e9",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad 6",
			notation: "e0",
			wantErr:  ErrInvalidNotation,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := NewSquareFromNotation(tt.notation)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("unexpected error: got=%v want=%v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("unexpected result: got=%v want=%v", got, tt.want)
			}
		})
	}
}

func TestSquareNotationRoundTrip(t *testing.T) {
	t.Parallel()
	for sq := A1; sq <= H8; sq++ {
		got, err := NewSquareFromNotation(sq.Notation())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != sq {
			t.Errorf("unexpected result: got=%v want=%v", got, sq)
		}
	}
}

func TestSquareComponents(t *testing.T) {
	t.Parallel()
	tests := []struct {
		square     Square
		wantFile   uint8
		wantRank   uint8
		wantMirror Square
	}{
		{square: A1, wantFile: 0, wantRank: 0, wantMirror: A8},
		{square: E4, wantFile: 4, wantRank: 3, wantMirror: E5},
		{square: G1, wantFile: 6, wantRank: 0, wantMirror: G8},
		{square: C8, wantFile: 2, wantRank: 7, wantMirror: C1},
		{square: H8, wantFile: 7, wantRank: 7, wantMirror: H1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.square.Notation(), func(t *testing.T) {
			t.Parallel()
			if got := tt.square.File(); got != tt.wantFile {
				t.Errorf("unexpected file: got=%d want=%d", got, tt.wantFile)
			}
			if got := tt.square.Rank(); got != tt.wantRank {
				t.Errorf("unexpected rank: got=%d want=%d", got, tt.wantRank)
			}
			if got := tt.square.Mirror(); got != tt.wantMirror {
				t.Errorf("unexpected mirror: got=%v want=%v", got, tt.wantMirror)
			}
			if got := NewSquare(tt.wantFile, tt.wantRank); got != tt.square {
				t.Errorf("unexpected square: got=%v want=%v", got, tt.square)
			}
		})
	}
}

func TestSquareNotationInvalid(t *testing.T) {
	t.Parallel()
	if got := NoSquare.Notation(); got != "" {
		t.Errorf("unexpected notation: got=%q want=%q", got, "")
	}
	if NoSquare.IsValid() {
		t.Error("unexpected valid square")
	}
	if !E4.IsValid() {
		t.Error("unexpected invalid square")
	}
}
