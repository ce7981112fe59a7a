package life

import "testing"

func TestGenerationClockWatchersAreIndependent(t *testing.T) {
	c := newGenerationClock()
	w1 := c.watch()
	c.advance(1)
	if got := w1.Next(); got != 1 {
		t.Fatalf("w1.Next() = %d, want 1", got)
	}
	w2 := c.watch()
	c.advance(1)

	if got := w1.Next(); got != 2 {
		t.Fatalf("w1.Next() = %d, want 2", got)
	}
	if got := w2.Next(); got != 2 {
		t.Fatalf("w2.Next() = %d, want 2", got)
	}
}
