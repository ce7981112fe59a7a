package life

import "math/bits"

// Bit layout for the 4x4 neighborhood of a level-2 node, highest bit
// first: nw.nw, nw.ne, ne.nw, ne.ne, nw.sw, nw.se, ne.sw, ne.se,
// sw.nw, sw.ne, se.nw, se.ne, sw.sw, sw.se, se.sw, se.se.
const (
	maskNWNeighbors = 0xEAE0
	maskNENeighbors = 0x7570
	maskSWNeighbors = 0x0EAE
	maskSENeighbors = 0x0757

	bitNWCenter = 0x0400
	bitNECenter = 0x0200
	bitSWCenter = 0x0040
	bitSECenter = 0x0020
)

// level2Word packs the sixteen cells of a level-2 node into a 16-bit
// word using the bit layout above.
func level2Word(n Node) uint16 {
	nw, ne, sw, se := n.NW(), n.NE(), n.SW(), n.SE()
	bit := func(c Node) uint16 {
		if c.Alive() {
			return 1
		}
		return 0
	}
	return bit(nw.NW())<<15 | bit(nw.NE())<<14 | bit(ne.NW())<<13 | bit(ne.NE())<<12 |
		bit(nw.SW())<<11 | bit(nw.SE())<<10 | bit(ne.SW())<<9 | bit(ne.SE())<<8 |
		bit(sw.NW())<<7 | bit(sw.NE())<<6 | bit(se.NW())<<5 | bit(se.NE())<<4 |
		bit(sw.SW())<<3 | bit(sw.SE())<<2 | bit(se.SW())<<1 | bit(se.SE())
}

// level2Advance applies one generation of B3/S23 to a level-2
// neighborhood word and returns the resulting level-1 center.
func level2Advance(w uint16) Node {
	alive := func(mask, centerBit uint16) bool {
		count := bits.OnesCount16(w & mask)
		return count == 3 || (count == 2 && w&centerBit != 0)
	}
	return MakeNode(
		MakeCell(alive(maskNWNeighbors, bitNWCenter)),
		MakeCell(alive(maskNENeighbors, bitNECenter)),
		MakeCell(alive(maskSWNeighbors, bitSWCenter)),
		MakeCell(alive(maskSENeighbors, bitSECenter)),
	)
}
