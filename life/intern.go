package life

import (
	"hash/maphash"

	"github.com/rogpeppe/hashlife/anyunique"
)

// nodeHasher defines the equivalence relation used to hash-cons
// nodeData values: two nodes are the same canonical node iff they
// agree on level, population, aliveness and the identity of their
// four children. The memo field is deliberately excluded from both
// Hash and Equal: it is mutable bookkeeping owned by whichever
// nodeData instance wins canonicalization, not part of a node's
// structural identity.
type nodeHasher struct{}

func (nodeHasher) Hash(h *maphash.Hash, n nodeData) {
	maphash.WriteComparable(h, n.level)
	maphash.WriteComparable(h, n.population)
	maphash.WriteComparable(h, n.alive)
	n.nw.writeHash(h)
	n.ne.writeHash(h)
	n.sw.writeHash(h)
	n.se.writeHash(h)
}

func (nodeHasher) Equal(a, b nodeData) bool {
	return a.level == b.level &&
		a.population == b.population &&
		a.alive == b.alive &&
		a.nw == b.nw &&
		a.ne == b.ne &&
		a.sw == b.sw &&
		a.se == b.se
}

// nodeSet is the process-wide canonical table. anyunique.New caches
// one Set per (T, H) type pair, so every Universe in the process
// shares the same interner, matching the "process-wide" requirement
// on the canonical table. Set.Make serializes its own access (see
// anyunique.Set), so two Universes advancing on separate goroutines
// can safely intern nodes concurrently.
var nodeSet = anyunique.New[nodeData, nodeHasher](nodeHasher{})

func internNode(d nodeData) Node {
	return Node{nodeSet.Make(d)}
}
