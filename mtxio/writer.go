// SPDX-License-Identifier: MIT

package mtxio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/sparsebfs/matrix"
)

// WriteLevels writes one "VERTEX LEVEL" line per vertex.
func WriteLevels(w io.Writer, levels []int) error {
	bw := bufio.NewWriter(w)
	line := make([]byte, 0, 32)
	for v, l := range levels {
		line = strconv.AppendInt(line[:0], int64(v), 10)
		line = append(line, ' ')
		line = strconv.AppendInt(line, int64(l), 10)
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return fmt.Errorf("mtxio: write levels: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("mtxio: write levels: %w", err)
	}

	return nil
}

// WriteCoordinates writes m in the coordinate input format, entries in
// column-major storage order with 1-based indices. ReadMatrix on the output
// yields a matrix with identical storage.
func WriteCoordinates(w io.Writer, m *matrix.CSC) error {
	if m == nil {
		return fmt.Errorf("mtxio: write coordinates: %w", matrix.ErrNilMatrix)
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d %d %d\n", m.Rows(), m.Cols(), m.NNZ()); err != nil {
		return fmt.Errorf("mtxio: write coordinates: %w", err)
	}
	rows, cols := m.Entries()
	line := make([]byte, 0, 32)
	for k := range rows {
		line = strconv.AppendInt(line[:0], int64(rows[k]+1), 10)
		line = append(line, ' ')
		line = strconv.AppendInt(line, int64(cols[k]+1), 10)
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return fmt.Errorf("mtxio: write coordinates: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("mtxio: write coordinates: %w", err)
	}

	return nil
}
