package sparsecs

import "math/bits"

// bitmask256 represents a set of up to 256 component type IDs. Each live
// entity carries one as its membership record; queries are answered by mask
// containment instead of per-column lookups.
type bitmask256 [4]uint64

// set enables the bit corresponding to the given component ID.
func (m *bitmask256) set(bit uint8) {
	i := bit >> 6 // (bit / 64) to find the uint64 index
	o := bit & 63 // (bit % 64) to find the bit offset
	m[i] |= uint64(1) << uint64(o)
}

// unset disables the bit corresponding to the given component ID.
func (m *bitmask256) unset(bit uint8) {
	i := bit >> 6
	o := bit & 63
	m[i] &= ^(uint64(1) << uint64(o))
}

// contains checks if all the bits set in the `sub` bitmask are also set in the
// receiver bitmask `m`. This answers "does this entity hold every component a
// query requires" in four word operations.
func (m bitmask256) contains(sub bitmask256) bool {
	return (m[0]&sub[0]) == sub[0] &&
		(m[1]&sub[1]) == sub[1] &&
		(m[2]&sub[2]) == sub[2] &&
		(m[3]&sub[3]) == sub[3]
}

// containsBit checks if a specific bit is set in the mask.
func (m bitmask256) containsBit(bit uint8) bool {
	i := bit >> 6
	o := bit & 63
	return (m[i] & (uint64(1) << uint64(o))) != 0
}

// eachBit calls fn for every set bit, in ascending order.
func (m bitmask256) eachBit(fn func(id uint8)) {
	for i, word := range m {
		for word != 0 {
			o := bits.TrailingZeros64(word)
			fn(uint8(i<<6 | o))
			word &= word - 1
		}
	}
}
