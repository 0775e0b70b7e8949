package container_test

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"math"
	"testing"

	"github.com/klauspost/compress/zlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/imghex/pkg/container"
)

// pngSignature is the fixed 8-byte PNG file signature.
var pngSignature = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}

// chunk frames a payload as a PNG chunk with a correct CRC trailer.
func chunk(typ string, payload []byte) []byte {
	out := make([]byte, 0, 12+len(payload))
	out = binary.BigEndian.AppendUint32(out, uint32(len(payload)))
	out = append(out, typ...)
	out = append(out, payload...)

	crc := crc32.ChecksumIEEE([]byte(typ))
	crc = crc32.Update(crc, crc32.IEEETable, payload)
	out = binary.BigEndian.AppendUint32(out, crc)
	return out
}

// ihdrPayload builds a 13-byte IHDR payload.
func ihdrPayload(width, height uint32, bitDepth, colorType uint8) []byte {
	payload := make([]byte, 0, 13)
	payload = binary.BigEndian.AppendUint32(payload, width)
	payload = binary.BigEndian.AppendUint32(payload, height)
	payload = append(payload, bitDepth, colorType, 0, 0, 0)
	return payload
}

// deflate compresses data as a zlib stream.
func deflate(t *testing.T, data []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	_, err := zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestWalkPNGSignatureAndIENDOnly(t *testing.T) {
	t.Parallel()

	data := append(append([]byte{}, pngSignature...), chunk("IEND", nil)...)

	facts, err := container.WalkPNG(data, container.Options{})
	require.NoError(t, err)
	require.Len(t, facts, 1)

	end, ok := facts[0].(container.EndOfStreamFact)
	require.True(t, ok, "fact should be end-of-stream, got %T", facts[0])
	assert.Equal(t, 1, end.Index)
	assert.Equal(t, "IEND", end.Type)
	assert.Equal(t, uint32(0), end.Length)
}

func TestWalkPNGDecodesIHDR(t *testing.T) {
	t.Parallel()

	data := append([]byte{}, pngSignature...)
	data = append(data, chunk("IHDR", ihdrPayload(640, 480, 8, 2))...)
	data = append(data, chunk("IEND", nil)...)

	facts, err := container.WalkPNG(data, container.Options{})
	require.NoError(t, err)
	require.Len(t, facts, 2)

	header, ok := facts[0].(container.ImageHeaderFact)
	require.True(t, ok, "fact should be an image header, got %T", facts[0])
	assert.Equal(t, uint32(640), header.Width)
	assert.Equal(t, uint32(480), header.Height)
	assert.Equal(t, uint8(8), header.BitDepth)
	assert.Equal(t, uint8(2), header.ColorType)
	assert.Equal(t, uint8(0), header.CompressionMethod)
	assert.Equal(t, uint8(0), header.FilterMethod)
	assert.Equal(t, uint8(0), header.InterlaceMethod)
}

func TestWalkPNGMalformedIHDR(t *testing.T) {
	t.Parallel()

	// 12-byte payload: one short of the required 13.
	data := append([]byte{}, pngSignature...)
	data = append(data, chunk("IHDR", make([]byte, 12))...)
	data = append(data, chunk("IEND", nil)...)

	facts, err := container.WalkPNG(data, container.Options{})
	require.NoError(t, err)
	require.Len(t, facts, 2)

	diag, ok := facts[0].(container.DiagnosticFact)
	require.True(t, ok, "fact should be a diagnostic, got %T", facts[0])
	assert.Equal(t, container.DiagMalformedField, diag.Code)

	// The walk continues past the malformed chunk to IEND.
	assert.IsType(t, container.EndOfStreamFact{}, facts[1])
}

func TestWalkPNGInflatesIDAT(t *testing.T) {
	t.Parallel()

	original := make([]byte, 300)
	payload := deflate(t, original)

	data := append([]byte{}, pngSignature...)
	data = append(data, chunk("IDAT", payload)...)
	data = append(data, chunk("IEND", nil)...)

	facts, err := container.WalkPNG(data, container.Options{})
	require.NoError(t, err)
	require.Len(t, facts, 2)

	idat, ok := facts[0].(container.ImageDataFact)
	require.True(t, ok, "fact should be image data, got %T", facts[0])
	assert.Equal(t, len(payload), idat.CompressedLen)
	assert.Equal(t, len(original), idat.DecompressedLen)
	assert.InDelta(t, float64(len(original))/float64(len(payload)), idat.Ratio, 1e-9)
	assert.Equal(t, make([]byte, 16), idat.Preview)
}

func TestWalkPNGIDATDecompressionFailure(t *testing.T) {
	t.Parallel()

	data := append([]byte{}, pngSignature...)
	data = append(data, chunk("IDAT", []byte{0xDE, 0xAD, 0xBE, 0xEF})...)
	data = append(data, chunk("IEND", nil)...)

	facts, err := container.WalkPNG(data, container.Options{})
	require.NoError(t, err)
	require.Len(t, facts, 2)

	diag, ok := facts[0].(container.DiagnosticFact)
	require.True(t, ok, "fact should be a diagnostic, got %T", facts[0])
	assert.Equal(t, container.DiagDecompressionFailure, diag.Code)

	// Non-fatal: the walk reaches IEND.
	assert.IsType(t, container.EndOfStreamFact{}, facts[1])
}

func TestWalkPNGTruncatedChunk(t *testing.T) {
	t.Parallel()

	t.Run("header does not fit", func(t *testing.T) {
		t.Parallel()

		data := append([]byte{}, pngSignature...)
		data = append(data, 0x00, 0x00) // 2 stray bytes, no room for a chunk

		facts, err := container.WalkPNG(data, container.Options{})
		require.NoError(t, err)
		require.Len(t, facts, 1)

		diag, ok := facts[0].(container.DiagnosticFact)
		require.True(t, ok)
		assert.Equal(t, container.DiagTruncatedChunk, diag.Code)
	})

	t.Run("declared length exceeds buffer", func(t *testing.T) {
		t.Parallel()

		data := append([]byte{}, pngSignature...)
		data = binary.BigEndian.AppendUint32(data, 1000)
		data = append(data, "IDAT"...)
		data = append(data, make([]byte, 8)...) // far fewer than 1000+4 bytes

		facts, err := container.WalkPNG(data, container.Options{})
		require.NoError(t, err)
		require.Len(t, facts, 1)

		diag, ok := facts[0].(container.DiagnosticFact)
		require.True(t, ok)
		assert.Equal(t, container.DiagTruncatedChunk, diag.Code)
	})
}

func TestWalkPNGGenericChunk(t *testing.T) {
	t.Parallel()

	data := append([]byte{}, pngSignature...)
	data = append(data, chunk("tEXt", []byte("Comment\x00hello"))...)
	data = append(data, chunk("IEND", nil)...)

	facts, err := container.WalkPNG(data, container.Options{})
	require.NoError(t, err)
	require.Len(t, facts, 2)

	generic, ok := facts[0].(container.ChunkFact)
	require.True(t, ok, "fact should be a generic chunk, got %T", facts[0])
	assert.Equal(t, "tEXt", generic.Type)
	assert.Equal(t, uint32(13), generic.Length)
}

func TestWalkPNGStrictCRC(t *testing.T) {
	t.Parallel()

	corrupted := func() []byte {
		data := append([]byte{}, pngSignature...)
		body := chunk("IHDR", ihdrPayload(1, 1, 8, 0))
		body[len(body)-1] ^= 0xFF // flip a CRC bit
		data = append(data, body...)
		return append(data, chunk("IEND", nil)...)
	}

	t.Run("default walk trusts declared CRC", func(t *testing.T) {
		t.Parallel()

		facts, err := container.WalkPNG(corrupted(), container.Options{})
		require.NoError(t, err)
		require.Len(t, facts, 2)
		assert.IsType(t, container.ImageHeaderFact{}, facts[0])
	})

	t.Run("strict walk reports the mismatch", func(t *testing.T) {
		t.Parallel()

		facts, err := container.WalkPNG(corrupted(), container.Options{StrictCRC: true})
		require.NoError(t, err)
		require.Len(t, facts, 3)

		diag, ok := facts[1].(container.DiagnosticFact)
		require.True(t, ok, "fact after the header should be a diagnostic, got %T", facts[1])
		assert.Equal(t, container.DiagChecksumMismatch, diag.Code)
	})

	t.Run("strict walk accepts valid CRCs", func(t *testing.T) {
		t.Parallel()

		data := append([]byte{}, pngSignature...)
		data = append(data, chunk("IHDR", ihdrPayload(1, 1, 8, 0))...)
		data = append(data, chunk("IEND", nil)...)

		facts, err := container.WalkPNG(data, container.Options{StrictCRC: true})
		require.NoError(t, err)
		assert.Len(t, facts, 2)
	})
}

func TestWalkPNGFullScenario(t *testing.T) {
	t.Parallel()

	idatPayload := deflate(t, make([]byte, 300))

	data := append([]byte{}, pngSignature...)
	data = append(data, chunk("IHDR", ihdrPayload(10, 10, 8, 2))...)
	data = append(data, chunk("IDAT", idatPayload)...)
	data = append(data, chunk("IEND", nil)...)

	facts, err := container.WalkPNG(data, container.Options{})
	require.NoError(t, err)
	require.Len(t, facts, 3)

	header, ok := facts[0].(container.ImageHeaderFact)
	require.True(t, ok)
	assert.Equal(t, uint32(10), header.Width)
	assert.Equal(t, uint32(10), header.Height)

	idat, ok := facts[1].(container.ImageDataFact)
	require.True(t, ok)
	wantRatio := 300.0 / float64(len(idatPayload))
	assert.False(t, math.IsNaN(idat.Ratio))
	assert.InDelta(t, wantRatio, idat.Ratio, 1e-9)

	assert.IsType(t, container.EndOfStreamFact{}, facts[2])

	// Chunk indices reflect stream order.
	assert.Equal(t, 1, header.Index)
	assert.Equal(t, 2, idat.Index)
}

func TestWalkPNGWrongFormat(t *testing.T) {
	t.Parallel()

	_, err := container.WalkPNG([]byte{0xFF, 0xD8, 0xFF, 0xE0}, container.Options{})
	require.ErrorIs(t, err, container.ErrWrongFormat)
}
