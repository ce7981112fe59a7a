package life

import "fmt"

// Forward returns the level-(level-1) center of n after 2^j
// generations. With no argument, j defaults to level-2, the maximum
// step a node of this level can report. A supplied j is clamped to
// [0, level-2]. Forward panics if n's level is below 2: the caller
// must not invoke it there.
func (n Node) Forward(j ...int) Node {
	lvl := n.Level()
	if lvl < 2 {
		panic(fmt.Errorf("hashlife: Forward called on a level-%d node (need level >= 2)", lvl))
	}
	step := lvl - 2
	if len(j) > 0 {
		step = j[0]
	}
	return forward(n, step)
}

func clamp(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// forward is the memoized recursive advance. j is re-clamped to
// [0, n.Level()-2] here, on every call, not just at the public entry
// point: recursive calls pass the same j down to sub-nodes one level
// smaller, and it's this reclamping that makes the doubling trick in
// computeForward's j == lvl-2 branch correct at every recursion depth.
func forward(n Node, j int) Node {
	j = clamp(j, 0, n.Level()-2)
	return n.memo().getOrCompute(j, func() Node {
		return computeForward(n, j)
	})
}

func computeForward(n Node, j int) Node {
	lvl := n.Level()
	if n.Population() < 3 {
		// Whatever is left can't reach 3 neighbors anywhere in the
		// center after any number of generations.
		return Zero(lvl - 1)
	}
	if lvl == 2 {
		return level2Advance(level2Word(n))
	}

	nw, ne, sw, se := n.NW(), n.NE(), n.SW(), n.SE()
	c1 := MakeNode(nw.NW(), nw.NE(), nw.SW(), nw.SE())
	c2 := MakeNode(nw.NE(), ne.NW(), nw.SE(), ne.SW())
	c3 := MakeNode(ne.NW(), ne.NE(), ne.SW(), ne.SE())
	c4 := MakeNode(nw.SW(), nw.SE(), sw.NW(), sw.NE())
	c5 := MakeNode(nw.SE(), ne.SW(), sw.NE(), se.NW())
	c6 := MakeNode(ne.SW(), ne.SE(), se.NW(), se.NE())
	c7 := MakeNode(sw.NW(), sw.NE(), sw.SW(), sw.SE())
	c8 := MakeNode(sw.NE(), se.NW(), sw.SE(), se.SW())
	c9 := MakeNode(se.NW(), se.NE(), se.SW(), se.SE())

	c1p := forward(c1, j)
	c2p := forward(c2, j)
	c3p := forward(c3, j)
	c4p := forward(c4, j)
	c5p := forward(c5, j)
	c6p := forward(c6, j)
	c7p := forward(c7, j)
	c8p := forward(c8, j)
	c9p := forward(c9, j)

	if j < lvl-2 {
		return MakeNode(
			MakeNode(c1p.SE(), c2p.SW(), c4p.NE(), c5p.NW()),
			MakeNode(c2p.SE(), c3p.SW(), c5p.NE(), c6p.NW()),
			MakeNode(c4p.SE(), c5p.SW(), c7p.NE(), c8p.NW()),
			MakeNode(c5p.SE(), c6p.SW(), c8p.NE(), c9p.NW()),
		)
	}
	// j == lvl-2: the maximum step. Each quadrant needs a second
	// advance to realize the full 2^(lvl-2) generations.
	return MakeNode(
		forward(MakeNode(c1p, c2p, c4p, c5p), j),
		forward(MakeNode(c2p, c3p, c5p, c6p), j),
		forward(MakeNode(c4p, c5p, c7p, c8p), j),
		forward(MakeNode(c5p, c6p, c8p, c9p), j),
	)
}
