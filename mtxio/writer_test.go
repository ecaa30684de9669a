// SPDX-License-Identifier: MIT

package mtxio_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsebfs/matrix"
	"github.com/katalvlaran/sparsebfs/mtxio"
)

func TestWriteLevels(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, mtxio.WriteLevels(&buf, []int{0, 1, -1, 2}))
	assert.Equal(t, "0 0\n1 1\n2 -1\n3 2\n", buf.String())

	buf.Reset()
	require.NoError(t, mtxio.WriteLevels(&buf, nil))
	assert.Empty(t, buf.String())
}

type errWriter struct{}

var errDisk = errors.New("disk full")

func (errWriter) Write([]byte) (int, error) { return 0, errDisk }

func TestWriteLevels_Error(t *testing.T) {
	err := mtxio.WriteLevels(errWriter{}, []int{0})
	require.ErrorIs(t, err, errDisk)
}

func TestWriteCoordinates_RoundTrip(t *testing.T) {
	in, err := matrix.Build(4, 3, []int{3, 0, 2, 0, 1}, []int{0, 2, 0, 1, 2})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, mtxio.WriteCoordinates(&buf, in))
	assert.True(t, strings.HasPrefix(buf.String(), "4 3 5\n"))

	out, err := mtxio.ReadMatrix(&buf)
	require.NoError(t, err)
	assert.Equal(t, in.ColPtr(), out.ColPtr())
	assert.Equal(t, in.RowIdx(), out.RowIdx())
}

func TestWriteCoordinates_Nil(t *testing.T) {
	err := mtxio.WriteCoordinates(&bytes.Buffer{}, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
