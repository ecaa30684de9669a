// SPDX-License-Identifier: MIT

package mtxio

import (
	"fmt"
	"io"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/sparsebfs/bitset"
)

// WriteVertexSet writes the members of set in the roaring portable
// serialization format, readable by any roaring implementation.
func WriteVertexSet(w io.Writer, set *bitset.Bitset) error {
	rb, err := set.ToRoaring()
	if err != nil {
		return fmt.Errorf("mtxio: write vertex set: %w", err)
	}
	rb.RunOptimize()
	if _, err := rb.WriteTo(w); err != nil {
		return fmt.Errorf("mtxio: write vertex set: %w", err)
	}

	return nil
}

// ReadVertexSet reads a roaring bitmap written by WriteVertexSet into a
// bitset of capacity n. A member >= n is ErrMalformed.
func ReadVertexSet(r io.Reader, n int) (*bitset.Bitset, error) {
	rb := roaring.New()
	if _, err := rb.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("%w: vertex set: %v", ErrMalformed, err)
	}
	set, err := bitset.FromRoaring(rb, n)
	if err != nil {
		return nil, fmt.Errorf("%w: vertex set: %v", ErrMalformed, err)
	}

	return set, nil
}
