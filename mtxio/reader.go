// SPDX-License-Identifier: MIT

package mtxio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/sparsebfs/matrix"
)

// maxLine bounds a single input line; coordinate lines are short.
const maxLine = 1 << 20

// maxPrealloc caps the entries reserved from the header's claim; larger
// files grow by append as entries are actually read.
const maxPrealloc = 1 << 16

// lineScanner yields the significant lines of a coordinate file together
// with their 1-based line numbers.
type lineScanner struct {
	sc   *bufio.Scanner
	line int
}

// next returns the next non-blank, non-comment line split into fields.
func (s *lineScanner) next() ([]string, bool) {
	for s.sc.Scan() {
		s.line++
		text := strings.TrimSpace(s.sc.Text())
		if text == "" || text[0] == '%' {
			continue
		}
		return strings.Fields(text), true
	}

	return nil, false
}

// malformedf tags ErrMalformed with the line number and a reason.
func (s *lineScanner) malformedf(format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrMalformed, s.line, fmt.Sprintf(format, args...))
}

// parseInts converts the first len(dst) fields to integers.
func parseInts(fields []string, dst []int) error {
	if len(fields) < len(dst) {
		return fmt.Errorf("want %d integers, got %d fields", len(dst), len(fields))
	}
	for k := range dst {
		v, err := strconv.Atoi(fields[k])
		if err != nil {
			return fmt.Errorf("field %d: %v", k+1, err)
		}
		dst[k] = v
	}

	return nil
}

// ReadCoordinates parses a coordinate file into 0-based triplets.
// Returns ErrMalformed (wrapped with the line number) on any format error,
// or the underlying read error.
func ReadCoordinates(r io.Reader) (*matrix.Coordinates, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	s := &lineScanner{sc: sc}

	// header: ROWS COLS NONZEROS
	fields, ok := s.next()
	if !ok {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("mtxio: read header: %w", err)
		}
		return nil, s.malformedf("missing header")
	}
	var hdr [3]int
	if err := parseInts(fields, hdr[:]); err != nil {
		return nil, s.malformedf("header: %v", err)
	}
	rows, cols, nnz := hdr[0], hdr[1], hdr[2]
	if rows < 0 || cols < 0 || nnz < 0 {
		return nil, s.malformedf("header: negative value in %d %d %d", rows, cols, nnz)
	}

	c := matrix.NewCoordinates(rows, cols, min(nnz, maxPrealloc))
	var ij [2]int
	for k := 0; k < nnz; k++ {
		fields, ok = s.next()
		if !ok {
			if err := sc.Err(); err != nil {
				return nil, fmt.Errorf("mtxio: read entry %d: %w", k+1, err)
			}
			return nil, s.malformedf("unexpected end of file after %d of %d entries", k, nnz)
		}
		if err := parseInts(fields, ij[:]); err != nil {
			return nil, s.malformedf("entry %d: %v", k+1, err)
		}
		if ij[0] < 1 || ij[0] > rows || ij[1] < 1 || ij[1] > cols {
			return nil, s.malformedf("entry %d: (%d,%d) outside %dx%d", k+1, ij[0], ij[1], rows, cols)
		}
		c.Append(ij[0]-1, ij[1]-1)
	}

	return c, nil
}

// ReadMatrix parses a coordinate file and builds its CSC matrix.
func ReadMatrix(r io.Reader) (*matrix.CSC, error) {
	c, err := ReadCoordinates(r)
	if err != nil {
		return nil, err
	}
	m, err := c.Build()
	if err != nil {
		return nil, fmt.Errorf("mtxio: %w", err)
	}

	return m, nil
}
