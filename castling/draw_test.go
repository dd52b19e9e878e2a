package castling

import (
	"strings"
	"testing"

	"github.com/fianchetto/castle/internal/testutil"
)

func TestRightsDump(t *testing.T) {
	t.Parallel()

	dump := MustParseRights("KQkq").Dump()
	testutil.AssertContains(t, dump, " 1 | .  #  Q  #  .  #  K  . ")
	testutil.AssertContains(t, dump, " 8 | .  #  q  #  .  #  k  . ")
	testutil.AssertContains(t, dump, " a  b  c  d  e  f  g  h ")
	if got := strings.Count(dump, "\n"); got != 9 {
		t.Errorf("unexpected line count: got=%d want=9", got)
	}

	dump = MustParseRights("K").Dump()
	testutil.AssertContains(t, dump, " 1 | .  .  .  .  .  #  K  . ")
	testutil.AssertContains(t, dump, " 8 | .  .  .  .  .  .  .  . ")
	testutil.AssertNotContains(t, dump, "q")
}

func TestRightsDumpEmpty(t *testing.T) {
	t.Parallel()
	dump := None.Dump()
	testutil.AssertNotContains(t, dump, "#")
	testutil.AssertNotContains(t, dump, "K")
	testutil.AssertContains(t, dump, " 4 | .  .  .  .  .  .  .  . ")
}

func TestRightsDraw(t *testing.T) {
	t.Parallel()
	draw := MustParseRights("Kq").Draw()
	testutil.AssertContains(t, draw, " K ")
	testutil.AssertContains(t, draw, " q ")
	testutil.AssertContains(t, draw, " # ")
	if got := strings.Count(draw, "\n"); got != 8 {
		t.Errorf("unexpected line count: got=%d want=8", got)
	}
}
