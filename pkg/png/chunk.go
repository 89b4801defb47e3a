package png

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"math"
	"strings"
)

// Sizes of the chunk fields surrounding the data.
const (
	lengthSize = 4
	crcSize    = 4

	// ChunkOverhead is a number of bytes each chunk occupies in addition to
	// its data: length, type and CRC fields.
	ChunkOverhead = lengthSize + ChunkTypeSize + crcSize
)

// Chunk is a single length-prefixed checksummed record of the PNG datastream.
//
// CRC of the Chunk always matches its type and data: it is calculated by
// NewChunk and verified by ParseChunk.
type Chunk struct {
	length uint32
	typ    ChunkType
	data   []byte
	crc    uint32
}

// NewChunk constructs Chunk of the given type carrying a copy of data.
// Checksum is calculated over type and data. Panics if data is longer than
// math.MaxUint32.
func NewChunk(typ ChunkType, data []byte) Chunk {
	if uint64(len(data)) > math.MaxUint32 {
		panic(fmt.Sprintf("chunk data is too big: %d", len(data)))
	}

	data = bytes.Clone(data)
	if data == nil {
		data = []byte{}
	}

	return Chunk{
		length: uint32(len(data)),
		typ:    typ,
		data:   data,
		crc:    checksum(typ, data),
	}
}

func checksum(typ ChunkType, data []byte) uint32 {
	h := crc32.NewIEEE()
	_, _ = h.Write(typ[:])
	_, _ = h.Write(data)

	return h.Sum32()
}

// ParseChunk decodes the first chunk from b and returns it along with the
// number of consumed bytes which is ChunkOverhead plus data length. Data
// of the resulting Chunk doesn't reference b.
//
// Returns error wrapping:
//   - ErrTruncated if b ends before any field is complete;
//   - ErrInvalidChunkType if type bytes are not ASCII letters;
//   - ErrCRCMismatch if the stored checksum is wrong.
func ParseChunk(b []byte) (Chunk, int, error) {
	var (
		c   Chunk
		off int
	)

	if len(b) < lengthSize {
		return Chunk{}, 0, truncatedErr("length", lengthSize, len(b))
	}
	c.length = binary.BigEndian.Uint32(b)
	off += lengthSize

	if len(b)-off < ChunkTypeSize {
		return Chunk{}, 0, truncatedErr("type", ChunkTypeSize, len(b)-off)
	}

	var err error
	c.typ, err = NewChunkType([ChunkTypeSize]byte(b[off : off+ChunkTypeSize]))
	if err != nil {
		return Chunk{}, 0, fmt.Errorf("%w: %w", ErrInvalidChunkType, err)
	}
	off += ChunkTypeSize

	if uint64(len(b)-off) < uint64(c.length) {
		return Chunk{}, 0, truncatedErr("data", int(c.length), len(b)-off)
	}
	c.data = make([]byte, c.length)
	off += copy(c.data, b[off:])

	if len(b)-off < crcSize {
		return Chunk{}, 0, truncatedErr("CRC", crcSize, len(b)-off)
	}
	c.crc = binary.BigEndian.Uint32(b[off:])
	off += crcSize

	if sum := checksum(c.typ, c.data); sum != c.crc {
		return Chunk{}, 0, fmt.Errorf("%w in %s chunk: stored 0x%08x, calculated 0x%08x",
			ErrCRCMismatch, c.typ, c.crc, sum)
	}

	return c, off, nil
}

func truncatedErr(field string, need, left int) error {
	return fmt.Errorf("%w: %s field needs %d bytes, %d left", ErrTruncated, field, need, left)
}

// Length returns length of the chunk data.
func (x Chunk) Length() uint32 {
	return x.length
}

// Type returns chunk type.
func (x Chunk) Type() ChunkType {
	return x.typ
}

// Data returns chunk data. The result MUST NOT be mutated.
func (x Chunk) Data() []byte {
	return x.data
}

// CRC returns CRC-32 checksum of the chunk type and data.
func (x Chunk) CRC() uint32 {
	return x.crc
}

// Marshal encodes the chunk into its binary form. The result is the exact
// inverse of ParseChunk.
func (x Chunk) Marshal() []byte {
	return x.appendTo(make([]byte, 0, ChunkOverhead+len(x.data)))
}

func (x Chunk) appendTo(b []byte) []byte {
	b = binary.BigEndian.AppendUint32(b, x.length)
	b = append(b, x.typ[:]...)
	b = append(b, x.data...)
	return binary.BigEndian.AppendUint32(b, x.crc)
}

// DataAsText returns chunk data as text mapping each byte to the character
// with the same code (0-255). Data is not treated as UTF-8.
func (x Chunk) DataAsText() string {
	var sb strings.Builder
	sb.Grow(len(x.data))

	for _, b := range x.data {
		sb.WriteRune(rune(b))
	}

	return sb.String()
}

// String implements fmt.Stringer through DataAsText.
func (x Chunk) String() string {
	return x.DataAsText()
}
