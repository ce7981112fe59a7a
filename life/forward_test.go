package life

import (
	"testing"

	"github.com/go-quicktest/qt"
)

// TestLevel2AdvanceBlock exercises the level-2 base case directly
// with a 2x2 block centered on the node (cells nw.se, ne.sw, sw.ne,
// se.nw), a known still life: every cell in it has exactly three live
// neighbors (the other three cells of the block) and no others, so it
// must reproduce itself exactly.
func TestLevel2AdvanceBlock(t *testing.T) {
	dead := MakeCell(false)
	live := MakeCell(true)
	nw := MakeNode(dead, dead, dead, live) // nw.se
	ne := MakeNode(dead, dead, live, dead) // ne.sw
	sw := MakeNode(dead, live, dead, dead) // sw.ne
	se := MakeNode(live, dead, dead, dead) // se.nw
	root := MakeNode(nw, ne, sw, se)
	qt.Assert(t, qt.Equals(root.Level(), 2))
	qt.Assert(t, qt.Equals(root.Population(), int64(4)))

	next := root.Forward(0)
	qt.Assert(t, qt.Equals(next.Level(), 1))
	qt.Assert(t, qt.Equals(next, MakeNode(live, live, live, live)))
}

func TestForwardOnDeadNodeIsZero(t *testing.T) {
	dead2 := Zero(2)
	qt.Assert(t, qt.Equals(dead2.Forward(), Zero(1)))
}

func TestForwardClampsOutOfRangeStep(t *testing.T) {
	z3 := Zero(3)
	// level 3: valid range [0, 1]. An out-of-range j should clamp
	// rather than panic or misbehave.
	qt.Assert(t, qt.Equals(z3.Forward(1000), z3.Forward(1)))
	qt.Assert(t, qt.Equals(z3.Forward(-50), z3.Forward(0)))
}

func TestForwardPanicsBelowLevelTwo(t *testing.T) {
	cell := MakeCell(true)
	qt.Assert(t, qt.PanicMatches(func() {
		cell.Forward()
	}, "hashlife: Forward called on a level-0 node.*"))
}

// TestForwardAtMaximumStepAcrossLevels checks that asking a node for
// its own maximum step (the default argument to Forward) returns a
// correctly leveled result at every level from the smallest
// forwardable node up through a deep tree. Coverage of the actual
// j == level-2 recursive doubling logic in computeForward, which only
// triggers on a live pattern, lives in the Universe-level
// large-step-vs-stepwise comparison in universe_test.go.
func TestForwardAtMaximumStepAcrossLevels(t *testing.T) {
	for lvl := 2; lvl <= 8; lvl++ {
		z := Zero(lvl)
		got := z.Forward()
		qt.Assert(t, qt.Equals(got.Level(), lvl-1))
		qt.Assert(t, qt.Equals(got, Zero(lvl-1)))
	}
}
