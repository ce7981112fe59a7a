package life

import (
	"iter"
	"math/bits"

	"github.com/rogpeppe/hashlife/gatomic"
)

// Universe drives a HashLife quad-tree through time. It owns the
// current root node, a generation counter, and (optionally) a PinSet
// that keeps recently produced roots from being collected by the
// weak node interner.
//
// Get and Root may be called concurrently with Rounds: the root is
// published through gatomic so a reader never observes a torn value,
// only the root as of some Rounds call that happened-before or
// happened-during its own call.
type Universe struct {
	root *Node
	gen  *generationClock
	pins *PinSet
}

// Option configures a Universe at construction time.
type Option func(*Universe)

// WithPinSet attaches a PinSet to a Universe, so every root the
// Universe sets is also pinned.
func WithPinSet(p *PinSet) Option {
	return func(u *Universe) { u.pins = p }
}

// NewHashLife builds a Universe from a dense n x m board, matching
// NaiveUniverse's coordinate convention: cells must have n rows of m
// entries, and the resulting Universe's origin sits at the board's
// center.
func NewHashLife(n, m int, cells [][]bool, opts ...Option) *Universe {
	return NewHashLifeFromRoot(buildRoot(n, m, cells), opts...)
}

// NewHashLifeFromRoot builds a Universe whose initial state is root,
// with generation 0.
func NewHashLifeFromRoot(root Node, opts ...Option) *Universe {
	u := &Universe{gen: newGenerationClock()}
	for _, opt := range opts {
		opt(u)
	}
	u.setRoot(root)
	return u
}

// buildRoot constructs the canonical quad-tree for an n x m board of
// cells, at the smallest level that covers both dimensions.
func buildRoot(n, m int, cells [][]bool) Node {
	level := ceilLog2(max(1, n, m))

	get := func(i, j int) bool {
		i, j = i+n/2, j+m/2
		return i >= 0 && i < n && j >= 0 && j < m && cells[i][j]
	}

	var create func(i, j, level int) Node
	create = func(i, j, level int) Node {
		if level == 0 {
			return MakeCell(get(i, j))
		}
		noffset, poffset := 1, 0
		if level >= 2 {
			noffset = 1 << (level - 2)
			poffset = 1 << (level - 2)
		}
		nw := create(i-noffset, j+poffset, level-1)
		sw := create(i-noffset, j-noffset, level-1)
		ne := create(i+poffset, j+poffset, level-1)
		se := create(i+poffset, j-noffset, level-1)
		return MakeNode(nw, ne, sw, se)
	}
	return create(0, 0, level)
}

// ceilLog2 returns the smallest k such that 1<<k >= x, for x >= 1.
func ceilLog2(x int) int {
	if x <= 1 {
		return 0
	}
	return bits.Len(uint(x - 1))
}

func (u *Universe) setRoot(n Node) {
	gatomic.StorePointer(&u.root, &n)
	u.pins.Pin(n)
}

func (u *Universe) getRoot() Node {
	return *gatomic.LoadPointer(&u.root)
}

// Root returns the universe's current root node.
func (u *Universe) Root() Node {
	return u.getRoot()
}

// Generation returns the number of generations computed so far.
func (u *Universe) Generation() uint64 {
	return u.gen.get()
}

// WatchGeneration returns a GenerationWatcher that wakes up every time
// Generation changes. Each call returns an independent watcher, so
// multiple callers can watch the same Universe without stealing
// wakeups from each other.
func (u *Universe) WatchGeneration() *GenerationWatcher {
	return u.gen.watch()
}

// Get reports whether the cell at (i, j) is alive, in the universe's
// origin-centered coordinate system: the root covers roughly
// [-lim, lim) in both axes, where lim is half the root's side length.
// Coordinates outside the root's current extent are dead, not an
// error: growing the universe (via Rounds) never changes the answer
// Get gives for a coordinate that was already in range.
func (u *Universe) Get(i, j int) bool {
	root := u.getRoot()
	if root.Level() == 0 {
		return i == 0 && j == 0 && root.Alive()
	}
	lim := 1 << (root.Level() - 1)
	if i < -lim || i >= lim || j < -lim || j >= lim {
		return false
	}
	node := root
	for lim > 0 {
		idx := 0
		if i >= 0 {
			idx += 1
		}
		if j < 0 {
			idx += 2
		}
		switch idx {
		case 0:
			node = node.NW()
		case 1:
			node = node.NE()
		case 2:
			node = node.SW()
		case 3:
			node = node.SE()
		}
		lim /= 2
		if i < 0 {
			i += lim
		} else {
			i -= lim
		}
		if j < 0 {
			j += lim
		} else {
			j -= lim
		}
	}
	return node.Population() == 1
}

// extendTo grows the root, preserving its represented contents, until
// it is at least level max(k, 2) and its outermost ring of
// grandchildren (everything but the would-be new center) is empty.
// That empty margin is what guarantees Forward never needs to look
// past the edge of the represented region.
func (u *Universe) extendTo(k int) {
	res := u.getRoot()
	for res.Level() < max(k, 2) || outerRingPopulated(res) {
		res = res.Extend()
	}
	u.setRoot(res)
}

func outerRingPopulated(res Node) bool {
	nw, ne, sw, se := res.NW(), res.NE(), res.SW(), res.SE()
	return nw.NW().Population() > 0 || nw.NE().Population() > 0 ||
		ne.NW().Population() > 0 || ne.NE().Population() > 0 ||
		nw.SW().Population() > 0 || ne.SE().Population() > 0 ||
		sw.NW().Population() > 0 || se.NE().Population() > 0 ||
		sw.SW().Population() > 0 || sw.SE().Population() > 0 ||
		se.SW().Population() > 0 || se.SE().Population() > 0
}

func shrinkCenter(root Node) Node {
	return MakeNode(root.NW().SE(), root.NE().SW(), root.SW().NE(), root.SE().NW())
}

// Round advances the universe by a single generation.
func (u *Universe) Round() error {
	return u.Rounds(1)
}

// Rounds advances the universe by n generations in place, growing and
// shrinking the root as needed so live cells never reach its edge. It
// returns ErrNonPositiveRounds without changing anything if n is not
// positive.
func (u *Universe) Rounds(n int) error {
	if n <= 0 {
		return ErrNonPositiveRounds
	}
	orig := n
	for k := 0; n > 0; k++ {
		u.extendTo(max(k+2, u.getRoot().Level()+2))
		if n&1 != 0 {
			u.setRoot(u.getRoot().Forward(k))
		}
		n >>= 1

		root := u.getRoot()
		for root.Level() > 1 {
			center := shrinkCenter(root)
			if center.Population() != root.Population() {
				break
			}
			root = center
			u.setRoot(root)
		}
	}
	u.gen.advance(uint64(orig))
	return nil
}

// AliveCells iterates over every live cell within the universe's
// current footprint, in row-major order: I ascending, then J
// ascending.
func (u *Universe) AliveCells() iter.Seq[Cell] {
	root := u.getRoot()
	if root.Level() == 0 {
		return func(yield func(Cell) bool) {
			if root.Alive() {
				yield(Cell{0, 0})
			}
		}
	}
	half := 1 << (root.Level() - 1)
	return collectAlive(root, -half, -half)
}

func cellCompare(a, b Cell) int {
	if a.I != b.I {
		return a.I - b.I
	}
	return a.J - b.J
}

// collectAlive enumerates the live cells of n, whose square occupies
// [i0, i0+2^level) x [j0, j0+2^level), in the order cellCompare
// defines. The four children's streams are already individually
// sorted in that order, so a single 4-way merge produces the overall
// order without collecting into a slice first.
func collectAlive(n Node, i0, j0 int) iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		if n.Population() == 0 {
			return
		}
		if n.Level() == 0 {
			if n.Alive() {
				yield(Cell{i0, j0})
			}
			return
		}
		half := 1 << (n.Level() - 1)
		for c := range mergeCells(
			collectAlive(n.SW(), i0, j0),
			collectAlive(n.NW(), i0, j0+half),
			collectAlive(n.SE(), i0+half, j0),
			collectAlive(n.NE(), i0+half, j0+half),
		) {
			if !yield(c) {
				return
			}
		}
	}
}

// mergeCells yields the cells of four already-sorted (by cellCompare)
// streams in merged order, one quadrant per quad-tree child.
func mergeCells(a, b, c, d iter.Seq[Cell]) iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		nexts := [4]func() (Cell, bool){}
		stops := [4]func(){}
		for i, it := range [4]iter.Seq[Cell]{a, b, c, d} {
			nexts[i], stops[i] = iter.Pull(it)
		}
		defer func() {
			for _, stop := range stops {
				stop()
			}
		}()

		var cur [4]Cell
		var has [4]bool
		for i := range cur {
			cur[i], has[i] = nexts[i]()
		}
		for {
			lowest := -1
			for i := range cur {
				if !has[i] {
					continue
				}
				if lowest == -1 || cellCompare(cur[i], cur[lowest]) < 0 {
					lowest = i
				}
			}
			if lowest == -1 {
				return
			}
			if !yield(cur[lowest]) {
				return
			}
			cur[lowest], has[lowest] = nexts[lowest]()
		}
	}
}
