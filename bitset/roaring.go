// SPDX-License-Identifier: MIT

package bitset

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/RoaringBitmap/roaring/v2"
)

// ToRoaring returns a compressed roaring bitmap with the same members as b.
// Returns ErrOutOfRange if b's capacity exceeds the 32-bit roaring universe.
func (b *Bitset) ToRoaring() (*roaring.Bitmap, error) {
	if uint64(b.n) > math.MaxUint32+1 {
		return nil, fmt.Errorf("ToRoaring: capacity %d: %w", b.n, ErrOutOfRange)
	}

	members := make([]uint32, 0, b.Count())
	for wi, w := range b.words {
		for w != 0 {
			members = append(members, uint32(wi<<wordShift+bits.TrailingZeros64(w)))
			w &= w - 1
		}
	}
	rb := roaring.New()
	rb.AddMany(members)

	return rb, nil
}

// FromRoaring returns a Bitset of capacity n holding the members of rb.
// Returns ErrOutOfRange if rb contains a value >= n.
func FromRoaring(rb *roaring.Bitmap, n int) (*Bitset, error) {
	b := New(n)
	if rb == nil {
		return b, nil
	}

	it := rb.Iterator()
	for it.HasNext() {
		v := int(it.Next())
		if v >= n {
			return nil, fmt.Errorf("FromRoaring: member %d >= %d: %w", v, n, ErrOutOfRange)
		}
		b.words[v>>wordShift] |= 1 << uint(v&wordMask)
	}

	return b, nil
}
