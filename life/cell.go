package life

// Cell identifies a single coordinate in a universe's plane. For a
// Universe, coordinates are centered on the origin as described by
// Universe.Get; for a NaiveUniverse they are plain 0-based indices.
type Cell struct {
	I, J int
}
