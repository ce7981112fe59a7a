package life

import "sync"

// forwardMemo is the per-node cache of Forward results, keyed by step
// exponent. It is owned by exactly one canonical nodeData (see
// MakeNode), so it is collected along with the node once nothing else
// references it. The key range is always small (0 to level-2 for the
// owning node, at most a few dozen even for enormous universes), so a
// plain map under a private mutex is all the concurrency this needs:
// contention is only ever between goroutines computing Forward on the
// very same node, never across unrelated nodes.
type forwardMemo struct {
	mu sync.Mutex
	m  map[int]Node
}

func newForwardMemo() *forwardMemo {
	return &forwardMemo{m: make(map[int]Node)}
}

// getOrCompute returns the memoized result for j, computing and
// storing it via compute if this is the first request for j.
func (fm *forwardMemo) getOrCompute(j int, compute func() Node) Node {
	fm.mu.Lock()
	defer fm.mu.Unlock()
	if v, ok := fm.m[j]; ok {
		return v
	}
	v := compute()
	fm.m[j] = v
	return v
}
