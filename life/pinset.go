package life

// PinSet retains a bounded-size strong-reference window over recently
// set roots. Node canonicalization is weak (see intern.go), so a node
// with no external reference can be collected, along with its
// memoized Forward results, between one Rounds call and the next. A
// PinSet trades that memory back for a bounded number of strong
// references, keeping recently touched nodes (and so their memo
// caches) alive across calls.
//
// The zero value has no capacity and pins nothing; use NewPinSet to
// get a useful one.
type PinSet struct {
	buf   []Node
	start int
	n     int
}

// NewPinSet returns a PinSet that retains at most n recently pinned
// nodes, evicting the oldest once full. A non-positive n pins nothing.
func NewPinSet(n int) *PinSet {
	if n <= 0 {
		return &PinSet{}
	}
	return &PinSet{buf: make([]Node, n)}
}

// Pin retains n, evicting the oldest pinned node first if the set is
// already full. Pin is a no-op on a nil or zero-capacity PinSet.
func (p *PinSet) Pin(n Node) {
	if p == nil || len(p.buf) == 0 {
		return
	}
	end := (p.start + p.n) % len(p.buf)
	if p.n == len(p.buf) {
		p.start = (p.start + 1) % len(p.buf)
	} else {
		p.n++
	}
	p.buf[end] = n
}

// Len reports how many nodes are currently pinned.
func (p *PinSet) Len() int {
	if p == nil {
		return 0
	}
	return p.n
}
