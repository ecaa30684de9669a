// SPDX-License-Identifier: MIT

package bitset

import (
	"fmt"
	"math/bits"
	"strings"
)

const (
	wordBits  = 64
	wordShift = 6
	wordMask  = wordBits - 1
)

// words returns the number of 64-bit words needed for n bits.
func words(n int) int {
	return (n + wordMask) >> wordShift
}

// Bitset is a fixed-capacity set of integers in [0, n).
// The zero value is an empty set of capacity 0.
type Bitset struct {
	n     int      // capacity in bits
	words []uint64 // len == words(n); bits >= n are always zero
}

// New returns a Bitset of capacity n with every bit unset.
// Panics if n < 0.
// Complexity: O(n/64).
func New(n int) *Bitset {
	if n < 0 {
		panic(fmt.Sprintf("bitset: negative capacity %d", n))
	}

	return &Bitset{n: n, words: make([]uint64, words(n))}
}

// Len returns the capacity of b in bits.
func (b *Bitset) Len() int {
	return b.n
}

// check panics unless 0 <= i < n.
func (b *Bitset) check(i int) {
	if i < 0 || i >= b.n {
		panic(fmt.Sprintf("bitset: index %d out of range [0,%d)", i, b.n))
	}
}

// Set marks bit i.
func (b *Bitset) Set(i int) {
	b.check(i)
	b.words[i>>wordShift] |= 1 << uint(i&wordMask)
}

// Unset clears bit i. Clearing an already clear bit is a no-op.
func (b *Bitset) Unset(i int) {
	b.check(i)
	b.words[i>>wordShift] &^= 1 << uint(i&wordMask)
}

// Test reports whether bit i is set.
func (b *Bitset) Test(i int) bool {
	b.check(i)

	return b.words[i>>wordShift]>>uint(i&wordMask)&1 == 1
}

// Reset clears every bit.
// Complexity: O(n/64).
func (b *Bitset) Reset() {
	clear(b.words)
}

// NextSet returns the smallest set bit strictly greater than pos, or
// (0, false) if there is none. pos == -1 scans from the first bit.
//
// The remainder of pos's own word is examined first. When pos is the last
// bit of its word there is no remainder and the scan starts at the next
// word directly.
// Complexity: O(n/64) worst case.
func (b *Bitset) NextSet(pos int) (int, bool) {
	if pos >= b.n {
		return 0, false
	}

	wi := -1 // word to resume the full-word scan after
	if pos >= 0 {
		wi = pos >> wordShift
		off := uint(pos & wordMask)
		if off != wordMask {
			if t := b.words[wi] >> (off + 1); t != 0 {
				return pos + 1 + bits.TrailingZeros64(t), true
			}
		}
	}

	for wi++; wi < len(b.words); wi++ {
		if w := b.words[wi]; w != 0 {
			return wi<<wordShift + bits.TrailingZeros64(w), true
		}
	}

	return 0, false
}

// Indices returns the set bits in ascending order.
// The result has length Count().
func (b *Bitset) Indices() []int {
	return b.AppendIndices(make([]int, 0, b.Count()))
}

// AppendIndices appends the set bits of b to dst in ascending order and
// returns the extended slice.
func (b *Bitset) AppendIndices(dst []int) []int {
	if b.n == 0 {
		return dst
	}

	pos := 0
	if b.Test(pos) {
		dst = append(dst, pos)
	}
	for {
		next, ok := b.NextSet(pos)
		if !ok {
			return dst
		}
		dst = append(dst, next)
		pos = next
	}
}

// Count returns the number of set bits.
// Each word is drained by clearing its lowest set bit until it reaches zero.
func (b *Bitset) Count() int {
	count := 0
	for _, w := range b.words {
		for w != 0 {
			w &= w - 1
			count++
		}
	}

	return count
}

// IsEmpty reports whether no bit is set.
func (b *Bitset) IsEmpty() bool {
	for _, w := range b.words {
		if w != 0 {
			return false
		}
	}

	return true
}

// UnionUpdate sets b = b | other in place.
// Returns ErrCapacityMismatch, leaving b unchanged, when the capacities differ.
func (b *Bitset) UnionUpdate(other *Bitset) error {
	if other == nil || other.n != b.n {
		return ErrCapacityMismatch
	}
	for i, w := range other.words {
		b.words[i] |= w
	}

	return nil
}

// Apply assigns targets[i] = value for every set bit i.
// targets must have at least Len() elements.
func (b *Bitset) Apply(targets []int, value int) {
	if b.n == 0 {
		return
	}

	pos := 0
	if b.Test(pos) {
		targets[pos] = value
	}
	for {
		next, ok := b.NextSet(pos)
		if !ok {
			return
		}
		targets[next] = value
		pos = next
	}
}

// Clone returns an independent copy of b.
func (b *Bitset) Clone() *Bitset {
	c := &Bitset{n: b.n, words: make([]uint64, len(b.words))}
	copy(c.words, b.words)

	return c
}

// Equal reports whether b and other have the same capacity and members.
func (b *Bitset) Equal(other *Bitset) bool {
	if other == nil || b.n != other.n {
		return false
	}
	for i, w := range b.words {
		if other.words[i] != w {
			return false
		}
	}

	return true
}

// String renders b as a run of '0' and '1', bit 0 first.
func (b *Bitset) String() string {
	var sb strings.Builder
	sb.Grow(b.n)
	for i := 0; i < b.n; i++ {
		if b.words[i>>wordShift]>>uint(i&wordMask)&1 == 1 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}

	return sb.String()
}
