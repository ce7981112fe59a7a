// Package life implements HashLife, a recursive, memoized quad-tree
// representation of Conway's Game of Life that advances an effectively
// unbounded universe by arbitrarily many generations.
//
// The quad-tree nodes are hash-consed through the anyunique package so
// that structural equality implies pointer equality, and each inner
// node from level 2 upward owns a lazily populated memo mapping a
// step exponent to the node's center after that many generations.
// Universe ties the tree to a generation
// counter and the grow/step/shrink loop that keeps live cells from
// ever reaching the edge of the represented region.
//
// NaiveUniverse, a plain dense array simulator, is included only as a
// correctness oracle for tests; it has none of HashLife's sharing or
// memoization.
package life
