// SPDX-License-Identifier: MIT

// Package mtxio reads and writes the plain-text formats around the sparse
// BFS engine.
//
// Coordinate input
//
//	ROWS COLS NONZEROS
//	ROW COL
//	...            (NONZEROS lines, 1-based indices)
//
// Lines starting with '%' (MatrixMarket banner and comments) and blank lines
// are skipped. A third column on a data line (a value) is ignored. Anything
// that does not parse, a short file, or an index outside the declared shape
// is ErrMalformed tagged with the line number; no partial result is ever
// returned. Content after the last declared entry is ignored.
//
// Distance output
//
//	VERTEX LEVEL   (one line per vertex, 0-based vertex, -1 = unreached)
//
// Compression
//
//	NewReader and OpenFile detect gzip and zstd streams by their magic bytes
//	and decompress them transparently with github.com/klauspost/compress.
//	CreateFile compresses by file extension (.gz, .zst).
package mtxio
