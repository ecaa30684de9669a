// SPDX-License-Identifier: MIT

package mtxio_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsebfs/mtxio"
)

func gzipBytes(t *testing.T, s string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	return buf.Bytes()
}

func zstdBytes(t *testing.T, s string) []byte {
	t.Helper()
	zw, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	defer zw.Close()

	return zw.EncodeAll([]byte(s), nil)
}

func TestNewReader_Detects(t *testing.T) {
	cases := map[string][]byte{
		"plain": []byte(triangle),
		"gzip":  gzipBytes(t, triangle),
		"zstd":  zstdBytes(t, triangle),
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			rc, err := mtxio.NewReader(bytes.NewReader(data))
			require.NoError(t, err)
			defer rc.Close()

			got, err := io.ReadAll(rc)
			require.NoError(t, err)
			assert.Equal(t, triangle, string(got))
		})
	}
}

func TestNewReader_ShortInput(t *testing.T) {
	rc, err := mtxio.NewReader(strings.NewReader("1"))
	require.NoError(t, err)
	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "1", string(got))
	require.NoError(t, rc.Close())
}

func TestNewReader_CorruptGzip(t *testing.T) {
	_, err := mtxio.NewReader(bytes.NewReader([]byte{0x1f, 0x8b, 0x00}))
	require.Error(t, err)
}

func TestFiles_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"g.mtx", "g.mtx.gz", "g.mtx.zst"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			w, err := mtxio.CreateFile(path)
			require.NoError(t, err)
			require.NoError(t, mtxio.WriteLevels(w, []int{0, 1, -1}))
			require.NoError(t, w.Close())

			r, err := mtxio.OpenFile(path)
			require.NoError(t, err)
			got, err := io.ReadAll(r)
			require.NoError(t, err)
			require.NoError(t, r.Close())
			assert.Equal(t, "0 0\n1 1\n2 -1\n", string(got))
		})
	}

	raw, err := os.ReadFile(filepath.Join(dir, "g.mtx.gz"))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x1f, 0x8b}, raw[:2])
}

func TestOpenFile_Missing(t *testing.T) {
	_, err := mtxio.OpenFile(filepath.Join(t.TempDir(), "absent.mtx"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
