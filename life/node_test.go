package life_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/rogpeppe/hashlife/life"
)

func TestMakeCellCanonical(t *testing.T) {
	a := life.MakeCell(true)
	b := life.MakeCell(true)
	qt.Assert(t, qt.Equals(a, b))
	qt.Assert(t, qt.IsTrue(a.Alive()))
	qt.Assert(t, qt.Equals(a.Population(), int64(1)))
}

func TestZeroNodeIsDeadCell(t *testing.T) {
	var zero life.Node
	qt.Assert(t, qt.Equals(zero, life.MakeCell(false)))
	qt.Assert(t, qt.Equals(zero.Population(), int64(0)))
}

func TestMakeNodeCanonical(t *testing.T) {
	dead := life.MakeCell(false)
	live := life.MakeCell(true)
	a := life.MakeNode(dead, live, dead, dead)
	b := life.MakeNode(dead, live, dead, dead)
	qt.Assert(t, qt.Equals(a, b))
	qt.Assert(t, qt.Equals(a.Level(), 1))
	qt.Assert(t, qt.Equals(a.Population(), int64(1)))
}

func TestMakeNodeMismatchedLevelsPanics(t *testing.T) {
	dead0 := life.MakeCell(false)
	dead1 := life.MakeNode(dead0, dead0, dead0, dead0)
	qt.Assert(t, qt.PanicMatches(func() {
		life.MakeNode(dead0, dead1, dead0, dead0)
	}, "hashlife: mismatched child levels.*"))
}

func TestZero(t *testing.T) {
	z3 := life.Zero(3)
	qt.Assert(t, qt.Equals(z3.Level(), 3))
	qt.Assert(t, qt.Equals(z3.Population(), int64(0)))
	qt.Assert(t, qt.Equals(z3.NW(), life.Zero(2)))
}

func TestExtendCell(t *testing.T) {
	live := life.MakeCell(true)
	ext := live.Extend()
	qt.Assert(t, qt.Equals(ext.Level(), 1))
	qt.Assert(t, qt.Equals(ext.NE(), live))
	qt.Assert(t, qt.Equals(ext.NW(), life.MakeCell(false)))
	qt.Assert(t, qt.Equals(ext.SW(), life.MakeCell(false)))
	qt.Assert(t, qt.Equals(ext.SE(), life.MakeCell(false)))
}

func TestExtendInner(t *testing.T) {
	dead := life.MakeCell(false)
	live := life.MakeCell(true)
	n := life.MakeNode(live, dead, dead, dead)
	ext := n.Extend()
	qt.Assert(t, qt.Equals(ext.Level(), 2))
	qt.Assert(t, qt.Equals(ext.Population(), int64(1)))
	qt.Assert(t, qt.Equals(ext.NW().SE(), n.NW()))
	qt.Assert(t, qt.Equals(ext.NE().SW(), n.NE()))
	qt.Assert(t, qt.Equals(ext.SW().NE(), n.SW()))
	qt.Assert(t, qt.Equals(ext.SE().NW(), n.SE()))
}
