// SPDX-License-Identifier: MIT

package matrix

// indexBuffer is a growable row-index buffer with capacity tracked apart
// from the logical length. Kernels reserve a provisional budget up front,
// grow geometrically when a column may overflow it, and shrink to the exact
// length once the result is complete.
type indexBuffer struct {
	data []int // len(data) is the capacity; data[:n] is live
	n    int
}

// newIndexBuffer returns a buffer with room for at least capacity entries.
func newIndexBuffer(capacity int) *indexBuffer {
	if capacity < 1 {
		capacity = 1
	}

	return &indexBuffer{data: make([]int, capacity)}
}

// len returns the number of live entries.
func (b *indexBuffer) len() int { return b.n }

// ensure guarantees room for extra more entries, at least doubling the
// capacity when it has to grow.
func (b *indexBuffer) ensure(extra int) {
	need := b.n + extra
	if need <= len(b.data) {
		return
	}
	grown := 2 * len(b.data)
	if grown < need {
		grown = need
	}
	data := make([]int, grown)
	copy(data, b.data[:b.n])
	b.data = data
}

// push appends v; the caller must have reserved room with ensure.
func (b *indexBuffer) push(v int) {
	b.data[b.n] = v
	b.n++
}

// appendSlice appends vs, growing as needed.
func (b *indexBuffer) appendSlice(vs []int) {
	b.ensure(len(vs))
	b.n += copy(b.data[b.n:], vs)
}

// tail returns the spare capacity as a zero-length slice so that helpers
// such as bitset.AppendIndices can write in place; commit records how many
// entries were written.
func (b *indexBuffer) tail() []int {
	return b.data[b.n:b.n]
}

// commit advances the live length by k entries written through tail.
func (b *indexBuffer) commit(k int) {
	b.n += k
}

// shrink returns exactly the live entries in a right-sized slice.
func (b *indexBuffer) shrink() []int {
	out := make([]int, b.n)
	copy(out, b.data[:b.n])
	b.data, b.n = nil, 0

	return out
}
