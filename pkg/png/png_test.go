package png_test

import (
	"encoding/hex"
	"testing"

	"github.com/nspcc-dev/pngme/pkg/png"
	"github.com/stretchr/testify/require"
)

// 1x1 transparent image.
const testImageHex = "89504e470d0a1a0a" +
	"0000000d49484452000000010000000108060000001f15c489" +
	"0000000a49444154789c63000100000500010d0a2db4" +
	"0000000049454e44ae426082"

func testImage(t testing.TB) []byte {
	b, err := hex.DecodeString(testImageHex)
	require.NoError(t, err)
	return b
}

func testChunks(t testing.TB) []png.Chunk {
	return []png.Chunk{
		png.NewChunk(mustChunkType(t, "FrSt"), []byte("I am the first chunk")),
		png.NewChunk(mustChunkType(t, "miDl"), []byte("I am another chunk")),
		png.NewChunk(mustChunkType(t, "LASt"), []byte("I am the last chunk")),
	}
}

func TestParse(t *testing.T) {
	b := testImage(t)

	p, err := png.Parse(b)
	require.NoError(t, err)

	chunks := p.Chunks()
	require.Len(t, chunks, 3)
	require.Equal(t, "IHDR", chunks[0].Type().String())
	require.EqualValues(t, 13, chunks[0].Length())
	require.Equal(t, "IDAT", chunks[1].Type().String())
	require.Equal(t, "IEND", chunks[2].Type().String())

	require.Equal(t, b, p.Marshal())

	t.Run("signature only", func(t *testing.T) {
		p, err := png.Parse([]byte(png.Signature))
		require.NoError(t, err)
		require.Empty(t, p.Chunks())
		require.Equal(t, []byte(png.Signature), p.Marshal())
	})

	t.Run("no IEND", func(t *testing.T) {
		p, err := png.Parse(b[:len(b)-png.ChunkOverhead])
		require.NoError(t, err)
		require.Len(t, p.Chunks(), 2)
	})

	t.Run("bad signature", func(t *testing.T) {
		for i := 0; i < len(png.Signature); i++ {
			bad := append([]byte(nil), b...)
			bad[i] ^= 0x01

			_, err := png.Parse(bad)
			require.ErrorIs(t, err, png.ErrBadSignature, i)
		}

		for _, bad := range [][]byte{nil, {}, []byte(png.Signature[:7]), []byte("GIF89a\x00\x00")} {
			_, err := png.Parse(bad)
			require.ErrorIs(t, err, png.ErrBadSignature)
		}
	})

	t.Run("corrupted chunk", func(t *testing.T) {
		bad := append([]byte(nil), b...)
		bad[len(png.Signature)+png.ChunkOverhead] ^= 0x01 // IHDR data

		_, err := png.Parse(bad)
		require.ErrorIs(t, err, png.ErrCRCMismatch)
		require.ErrorContains(t, err, "chunk #0 at offset 8")
	})

	t.Run("truncated tail", func(t *testing.T) {
		_, err := png.Parse(b[:len(b)-1])
		require.ErrorIs(t, err, png.ErrTruncated)
		require.ErrorContains(t, err, "chunk #2")

		_, err = png.Parse(append(b, 0, 0))
		require.ErrorIs(t, err, png.ErrTruncated)
		require.ErrorContains(t, err, "chunk #3")
	})
}

func TestPNG_RoundTrip(t *testing.T) {
	src := png.New(testChunks(t)...).Marshal()

	p, err := png.Parse(src)
	require.NoError(t, err)
	require.Equal(t, testChunks(t), p.Chunks())
	require.Equal(t, src, p.Marshal())
}

func TestPNG_Append(t *testing.T) {
	p, err := png.Parse(testImage(t))
	require.NoError(t, err)

	c := png.NewChunk(mustChunkType(t, "RuSt"), []byte(testMessage))
	p.Append(c)

	chunks := p.Chunks()
	require.Len(t, chunks, 4)
	require.Equal(t, c, chunks[3])

	res, err := png.Parse(p.Marshal())
	require.NoError(t, err)
	require.Equal(t, p.Marshal(), res.Marshal())

	found, ok := res.ChunkByType("RuSt")
	require.True(t, ok)
	require.Equal(t, testMessage, found.DataAsText())
}

func TestPNG_ChunkByType(t *testing.T) {
	p := png.New(testChunks(t)...)

	c, ok := p.ChunkByType("miDl")
	require.True(t, ok)
	require.Equal(t, "I am another chunk", c.DataAsText())

	_, ok = p.ChunkByType("xxXX")
	require.False(t, ok)
	_, ok = p.ChunkByType("")
	require.False(t, ok)

	p.Append(png.NewChunk(mustChunkType(t, "miDl"), []byte("second")))
	c, ok = p.ChunkByType("miDl")
	require.True(t, ok)
	require.Equal(t, "I am another chunk", c.DataAsText())
}

func TestPNG_RemoveChunk(t *testing.T) {
	p := png.New(testChunks(t)...)

	removed, err := p.RemoveChunk("miDl")
	require.NoError(t, err)
	require.Equal(t, "I am another chunk", removed.DataAsText())

	chunks := p.Chunks()
	require.Len(t, chunks, 2)
	require.Equal(t, "FrSt", chunks[0].Type().String())
	require.Equal(t, "LASt", chunks[1].Type().String())

	_, err = p.RemoveChunk("miDl")
	require.ErrorIs(t, err, png.ErrNotFound)

	t.Run("caller chunks are not shared", func(t *testing.T) {
		chunks := testChunks(t)
		p := png.New(chunks...)

		_, err := p.RemoveChunk("FrSt")
		require.NoError(t, err)
		p.Append(png.NewChunk(mustChunkType(t, "NEWc"), []byte("appended")))

		require.Equal(t, testChunks(t), chunks)
		require.Len(t, p.Chunks(), 3)
		require.Equal(t, "miDl", p.Chunks()[0].Type().String())
	})

	t.Run("first of duplicates", func(t *testing.T) {
		p := png.New(
			png.NewChunk(mustChunkType(t, "ABcd"), []byte("one")),
			png.NewChunk(mustChunkType(t, "ABcd"), []byte("two")),
			png.NewChunk(mustChunkType(t, "EFgh"), []byte("three")),
		)

		removed, err := p.RemoveChunk("ABcd")
		require.NoError(t, err)
		require.Equal(t, "one", removed.DataAsText())

		chunks := p.Chunks()
		require.Len(t, chunks, 2)
		require.Equal(t, "ABcd", chunks[0].Type().String())
		require.Equal(t, "two", chunks[0].DataAsText())
		require.Equal(t, "EFgh", chunks[1].Type().String())
		require.Equal(t, "three", chunks[1].DataAsText())
	})
}

func TestPNG_String(t *testing.T) {
	p := png.New(testChunks(t)...)

	require.Equal(t, `PNG file with 3 chunk(s)
FrSt (20 bytes): "I am the first chunk"
miDl (18 bytes): "I am another chunk"
LASt (19 bytes): "I am the last chunk"`, p.String())

	require.Equal(t, "PNG file with 0 chunk(s)", png.New().String())
}
