package board

import "testing"

func TestSideString(t *testing.T) {
	t.Parallel()
	if got := Kingside.String(); got != "Kingside" {
		t.Errorf("unexpected string: got=%q want=%q", got, "Kingside")
	}
	if got := Queenside.String(); got != "Queenside" {
		t.Errorf("unexpected string: got=%q want=%q", got, "Queenside")
	}
}

func TestSideOpposite(t *testing.T) {
	t.Parallel()
	if got := Kingside.Opposite(); got != Queenside {
		t.Errorf("unexpected opposite: got=%v want=%v", got, Queenside)
	}
	if got := Queenside.Opposite(); got != Kingside {
		t.Errorf("unexpected opposite: got=%v want=%v", got, Kingside)
	}
}
