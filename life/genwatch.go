package life

import "sync"

// generationClock publishes a monotonically increasing generation
// counter and lets watchers block until it advances. Universe is the
// only owner of a generationClock's write side (advance); callers
// only ever see it through WatchGeneration, which exposes just the
// read side via a *GenerationWatcher.
type generationClock struct {
	mu   sync.Mutex
	cond sync.Cond
	gen  uint64
}

func newGenerationClock() *generationClock {
	c := &generationClock{}
	c.cond.L = &c.mu
	return c
}

func (c *generationClock) get() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gen
}

func (c *generationClock) advance(by uint64) {
	c.mu.Lock()
	c.gen += by
	c.mu.Unlock()
	c.cond.Broadcast()
}

func (c *generationClock) watch() *GenerationWatcher {
	return &GenerationWatcher{clock: c, seen: c.get()}
}

// GenerationWatcher observes a Universe's generation counter. Each
// watcher tracks its own last-seen value independently, so multiple
// watchers on the same Universe never steal wakeups from each other.
type GenerationWatcher struct {
	clock *generationClock
	seen  uint64
}

// Next blocks until the watched Universe's generation has advanced
// past whatever value this watcher last observed, then returns the
// new value. Next always eventually returns: Rounds only ever
// increases the generation counter.
func (w *GenerationWatcher) Next() uint64 {
	w.clock.mu.Lock()
	defer w.clock.mu.Unlock()
	for w.clock.gen == w.seen {
		w.clock.cond.Wait()
	}
	w.seen = w.clock.gen
	return w.seen
}
