package life_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/rogpeppe/hashlife/life"
)

func TestNaiveUniverseOutOfBoundsIsDead(t *testing.T) {
	u := life.NewNaiveUniverse(2, 2, [][]bool{{true, true}, {true, true}})
	qt.Assert(t, qt.IsTrue(u.Get(0, 0)))
	qt.Assert(t, qt.IsFalse(u.Get(-1, 0)))
	qt.Assert(t, qt.IsFalse(u.Get(0, 2)))
	qt.Assert(t, qt.IsFalse(u.Get(2, 2)))
}

func TestNaiveUniverseBlinker(t *testing.T) {
	n, m, cells := gridFromRows([]string{
		".....",
		".....",
		".###.",
		".....",
		".....",
	})
	u := life.NewNaiveUniverse(n, m, cells)
	qt.Assert(t, qt.IsTrue(u.Get(2, 1)))
	qt.Assert(t, qt.IsTrue(u.Get(2, 2)))
	qt.Assert(t, qt.IsTrue(u.Get(2, 3)))

	u.Round()

	qt.Assert(t, qt.IsTrue(u.Get(1, 2)))
	qt.Assert(t, qt.IsTrue(u.Get(2, 2)))
	qt.Assert(t, qt.IsTrue(u.Get(3, 2)))
	qt.Assert(t, qt.IsFalse(u.Get(2, 1)))
	qt.Assert(t, qt.IsFalse(u.Get(2, 3)))

	u.Rounds(1)

	qt.Assert(t, qt.IsTrue(u.Get(2, 1)))
	qt.Assert(t, qt.IsTrue(u.Get(2, 2)))
	qt.Assert(t, qt.IsTrue(u.Get(2, 3)))
}
