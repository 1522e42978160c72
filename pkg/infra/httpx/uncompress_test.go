package httpx

import (
	"bytes"
	"compress/gzip"
	"compress/zlib"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const decodePayload = `{"summary":{"is_toxic":false,"toxicity_level":"not_toxic"}}`

func gzipBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	_, err := w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestDecodeChain_NoEncoding(t *testing.T) {
	body, changed, err := DecodeChain("", []byte(decodePayload))
	assert.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, decodePayload, string(body))
}

func TestDecodeChain_Gzip(t *testing.T) {
	body, changed, err := DecodeChain("gzip", gzipBytes(t, []byte(decodePayload)))
	assert.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, decodePayload, string(body))
}

func TestDecodeChain_Brotli(t *testing.T) {
	var buf bytes.Buffer
	w := brotli.NewWriter(&buf)
	_, err := w.Write([]byte(decodePayload))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	body, changed, err := DecodeChain("br", buf.Bytes())
	assert.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, decodePayload, string(body))
}

func TestDecodeChain_Zstd(t *testing.T) {
	var buf bytes.Buffer
	w, err := zstd.NewWriter(&buf)
	require.NoError(t, err)
	_, err = w.Write([]byte(decodePayload))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	body, changed, err := DecodeChain("zstd", buf.Bytes())
	assert.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, decodePayload, string(body))
}

func TestDecodeChain_DeflateZlib(t *testing.T) {
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	_, err := w.Write([]byte(decodePayload))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	body, changed, err := DecodeChain("deflate", buf.Bytes())
	assert.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, decodePayload, string(body))
}

func TestDecodeChain_Chained(t *testing.T) {
	// applied gzip first, then br; decoder unwinds right to left
	var buf bytes.Buffer
	w := brotli.NewWriter(&buf)
	_, err := w.Write(gzipBytes(t, []byte(decodePayload)))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	body, changed, err := DecodeChain("gzip, br", buf.Bytes())
	assert.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, decodePayload, string(body))
}

func TestDecodeChain_Unsupported(t *testing.T) {
	_, _, err := DecodeChain("snappy", []byte(decodePayload))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported content-encoding")
}
