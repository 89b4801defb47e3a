package png

import (
	"bytes"
	"fmt"
	"slices"
	"strings"
)

// Signature is the fixed prefix of every PNG datastream.
const Signature = "\x89PNG\r\n\x1a\n"

// PNG is an in-memory representation of the PNG file: signature followed by
// the ordered sequence of chunks. Chunk order mirrors the on-disk one.
//
// PNG doesn't enforce IHDR/IEND placement, any well-formed chunk sequence is
// accepted. PNG is not safe for concurrent mutation.
type PNG struct {
	chunks []Chunk
}

// New constructs PNG consisting of the given chunks. The chunk list is
// copied, so the PNG doesn't share it with the caller.
func New(chunks ...Chunk) *PNG {
	return &PNG{chunks: slices.Clone(chunks)}
}

// Parse decodes PNG from b. The first bytes MUST be equal to Signature,
// otherwise error wrapping ErrBadSignature is returned. The rest of b is
// decoded chunk by chunk until it is exhausted. Parsing is all-or-nothing:
// any chunk error fails the whole operation (see ParseChunk for error kinds).
func Parse(b []byte) (*PNG, error) {
	if !bytes.HasPrefix(b, []byte(Signature)) {
		n := min(len(b), len(Signature))
		return nil, fmt.Errorf("%w: %x", ErrBadSignature, b[:n])
	}

	var (
		res PNG
		off = len(Signature)
	)

	for off < len(b) {
		c, n, err := ParseChunk(b[off:])
		if err != nil {
			return nil, fmt.Errorf("chunk #%d at offset %d: %w", len(res.chunks), off, err)
		}

		res.chunks = append(res.chunks, c)
		off += n
	}

	return &res, nil
}

// Append adds c to the end of the chunk sequence.
func (x *PNG) Append(c Chunk) {
	x.chunks = append(x.chunks, c)
}

// Chunks returns all chunks in file order. The result MUST NOT be mutated.
func (x *PNG) Chunks() []Chunk {
	return x.chunks
}

func (x *PNG) index(typ string) int {
	for i := range x.chunks {
		if x.chunks[i].typ.String() == typ {
			return i
		}
	}

	return -1
}

// ChunkByType returns the first chunk of the given type. The boolean is false
// if there is no such chunk.
func (x *PNG) ChunkByType(typ string) (Chunk, bool) {
	i := x.index(typ)
	if i < 0 {
		return Chunk{}, false
	}

	return x.chunks[i], true
}

// RemoveChunk removes the first chunk of the given type and returns it.
// Remaining chunks keep their relative order. Returns error wrapping
// ErrNotFound if there is no such chunk.
func (x *PNG) RemoveChunk(typ string) (Chunk, error) {
	i := x.index(typ)
	if i < 0 {
		return Chunk{}, fmt.Errorf("%w: %s", ErrNotFound, typ)
	}

	c := x.chunks[i]
	x.chunks = append(x.chunks[:i], x.chunks[i+1:]...)

	return c, nil
}

// Marshal encodes PNG into the binary form: signature followed by all chunks.
// Parsed chunks are reproduced byte-for-byte.
func (x *PNG) Marshal() []byte {
	size := len(Signature)
	for i := range x.chunks {
		size += ChunkOverhead + len(x.chunks[i].data)
	}

	b := make([]byte, 0, size)
	b = append(b, Signature...)

	for i := range x.chunks {
		b = x.chunks[i].appendTo(b)
	}

	return b
}

// String returns human-readable listing of the chunks: one line per chunk
// with its type, data length and data decoded by Chunk.DataAsText.
func (x *PNG) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "PNG file with %d chunk(s)", len(x.chunks))
	for i := range x.chunks {
		fmt.Fprintf(&sb, "\n%s (%d bytes): %q", x.chunks[i].typ, x.chunks[i].length, x.chunks[i].DataAsText())
	}

	return sb.String()
}
