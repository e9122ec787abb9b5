package seq

import (
	"encoding/binary"
	"math/bits"
)

// Lookup scans an alphabet one fixed-width block at a time. Every residue in
// a block is compared against the query in parallel with 64-bit SWAR
// arithmetic, producing a bitmask of equal positions; the match index is the
// block offset plus the trailing-zero count of the mask. The loop handles
// any number of blocks, so alphabets longer than 32 residues scan correctly.
const blockWidth = 16

const (
	lsb    = 0x0101010101010101
	msb    = 0x8080808080808080
	gather = 0x0102040810204080
)

// matchMask returns an 8-bit mask over one 64-bit word with bit i set where
// word byte i equals q. Borrow propagation in the zero-byte test can set
// spurious bits, but only at positions above a true match, so consuming the
// lowest set bit is always correct.
func matchMask(word uint64, q byte) uint64 {
	x := word ^ (lsb * uint64(q))
	zeroes := (x - lsb) &^ x & msb
	return ((zeroes >> 7) * gather) >> 56
}

// index returns the first i < n with packed[i] == q, or -1. packed must be
// padded to a multiple of blockWidth; positions at or beyond n are masked
// off rather than read as real entries.
func index(packed []byte, n int, q byte) int {
	for off := 0; off < n; off += blockWidth {
		lo := binary.LittleEndian.Uint64(packed[off:])
		hi := binary.LittleEndian.Uint64(packed[off+8:])
		mask := matchMask(lo, q) | matchMask(hi, q)<<8
		if rem := n - off; rem < blockWidth {
			mask &= 1<<uint(rem) - 1
		}
		if mask != 0 {
			return off + bits.TrailingZeros64(mask)
		}
	}
	return -1
}

// indexScalar is the reference implementation of index. The blocked scan
// must agree with it for every input.
func indexScalar(packed []byte, n int, q byte) int {
	for i := 0; i < n; i++ {
		if packed[i] == q {
			return i
		}
	}
	return -1
}
