package life

import (
	"fmt"
	"hash/maphash"

	"github.com/rogpeppe/hashlife/anyunique"
)

// nodeData is the structural payload of a canonical node. A level-0
// node (a cell) only ever sets alive and its population (1 when
// alive, 0 when dead); an inner node (level >= 1) only
// ever sets nw/ne/sw/se and derives population from them. memo is
// non-nil for inner nodes of level >= 2 and holds the per-node
// forward cache described in memo.go.
type nodeData struct {
	level      int
	population int64
	alive      bool
	nw, ne, sw, se Node
	memo       *forwardMemo
}

// Node is a canonical quad-tree node. Two Node values compare equal
// with == exactly when they describe the same structure: the zero
// Node is, by construction, the canonical dead level-0 cell, since
// the zero value of nodeData (level 0, population 0, alive false, no
// children) is exactly what MakeCell(false) builds.
type Node struct {
	h anyunique.Handle[nodeData]
}

func (n Node) data() nodeData {
	return n.h.Value()
}

func (n Node) writeHash(h *maphash.Hash) {
	n.h.WriteHash(h)
}

// Level reports the node's level: a level-k node covers a 2^k x 2^k
// square.
func (n Node) Level() int { return n.data().level }

// Population reports the number of live level-0 descendants.
func (n Node) Population() int64 { return n.data().population }

// Alive reports whether a level-0 node is alive. It is meaningless
// for inner nodes.
func (n Node) Alive() bool { return n.data().alive }

// NW returns the north-west child of an inner node.
func (n Node) NW() Node { return n.data().nw }

// NE returns the north-east child of an inner node.
func (n Node) NE() Node { return n.data().ne }

// SW returns the south-west child of an inner node.
func (n Node) SW() Node { return n.data().sw }

// SE returns the south-east child of an inner node.
func (n Node) SE() Node { return n.data().se }

func (n Node) memo() *forwardMemo { return n.data().memo }

// MakeCell returns the canonical level-0 node for the given aliveness.
func MakeCell(alive bool) Node {
	d := nodeData{alive: alive}
	if alive {
		d.population = 1
	}
	return internNode(d)
}

// MakeNode returns the canonical inner node with the given children.
// It panics if the children are not all at the same level: mismatched
// levels are a programmer error, not a recoverable one.
func MakeNode(nw, ne, sw, se Node) Node {
	lvl := nw.Level()
	if ne.Level() != lvl || sw.Level() != lvl || se.Level() != lvl {
		panic(fmt.Errorf("hashlife: mismatched child levels: nw=%d ne=%d sw=%d se=%d",
			lvl, ne.Level(), sw.Level(), se.Level()))
	}
	d := nodeData{
		level:      lvl + 1,
		population: nw.Population() + ne.Population() + sw.Population() + se.Population(),
		nw:         nw,
		ne:         ne,
		sw:         sw,
		se:         se,
	}
	if d.level >= 2 {
		// Pre-allocate the memo before interning. If an equal node
		// is already canonical, nodeSet.Make discards this nodeData
		// (and its memo) and returns the existing one instead; if
		// this is the first node with this structure, the returned
		// canonical node keeps this memo for the rest of its life.
		d.memo = newForwardMemo()
	}
	return internNode(d)
}

// Zero returns the canonical all-dead node of the given level.
func Zero(k int) Node {
	if k <= 0 {
		return MakeCell(false)
	}
	z := Zero(k - 1)
	return MakeNode(z, z, z, z)
}

// Extend returns a node one level higher whose center is n and whose
// outer ring is dead.
//
// For a cell, the result places n as the NE quadrant of a level-1
// node with three dead cells. Universe.extendTo does call Extend on a
// level-0 root; under Universe.Get's coordinate mapping the NE cell of
// a level-1 root is (0, 0), the same coordinate a level-0 root's cell
// has, so the cell keeps its position.
func (n Node) Extend() Node {
	if n.Level() == 0 {
		dead := MakeCell(false)
		return MakeNode(dead, n, dead, dead)
	}
	zero := Zero(n.Level() - 1)
	return MakeNode(
		MakeNode(zero, zero, zero, n.NW()),
		MakeNode(zero, zero, n.NE(), zero),
		MakeNode(zero, n.SW(), zero, zero),
		MakeNode(n.SE(), zero, zero, zero),
	)
}
