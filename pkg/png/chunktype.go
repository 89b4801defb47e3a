package png

import "fmt"

// ChunkTypeSize is a size of the chunk type code in bytes.
const ChunkTypeSize = 4

// propertyBit is the bit of a type byte which carries the chunk property.
const propertyBit = 0x20

// ChunkType is a 4-byte code classifying PNG chunk. Each byte is an ASCII
// letter, bit 5 of every byte encodes one chunk property.
//
// ChunkType is comparable, two types are equal if their bytes are equal.
// Instances MUST be created using NewChunkType or ParseChunkType.
type ChunkType [ChunkTypeSize]byte

// NewChunkType checks b and returns it as ChunkType. Returns error wrapping
// ErrInvalidByte if any byte is not an ASCII letter.
func NewChunkType(b [ChunkTypeSize]byte) (ChunkType, error) {
	for i := range b {
		if !isLetter(b[i]) {
			return ChunkType{}, fmt.Errorf("%w: 0x%02x at position %d", ErrInvalidByte, b[i], i)
		}
	}

	return ChunkType(b), nil
}

// ParseChunkType parses ChunkType from its 4-character text form. Returns
// error wrapping ErrInvalidLength if s is not exactly 4 bytes long, and
// ErrInvalidByte if any byte is not an ASCII letter.
func ParseChunkType(s string) (ChunkType, error) {
	if len(s) != ChunkTypeSize {
		return ChunkType{}, fmt.Errorf("%w: %d instead of %d", ErrInvalidLength, len(s), ChunkTypeSize)
	}

	var b [ChunkTypeSize]byte
	copy(b[:], s)

	return NewChunkType(b)
}

func isLetter(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

// Bytes returns raw type bytes.
func (x ChunkType) Bytes() [ChunkTypeSize]byte {
	return x
}

// String returns type bytes as text, e.g. "IHDR".
func (x ChunkType) String() string {
	return string(x[:])
}

// IsCritical checks whether the chunk is critical, i.e. the decoder can't
// safely ignore it. Ancillary chunks have bit 5 of the first byte set.
func (x ChunkType) IsCritical() bool {
	return x[0]&propertyBit == 0
}

// IsPublic checks whether the chunk type is a part of the PNG specification
// rather than a private one.
func (x ChunkType) IsPublic() bool {
	return x[1]&propertyBit == 0
}

// IsReservedBitValid checks that the reserved bit (bit 5 of the third byte)
// is clear.
func (x ChunkType) IsReservedBitValid() bool {
	return x[2]&propertyBit == 0
}

// IsSafeToCopy checks whether the chunk may be copied by editors which do not
// recognize it.
func (x ChunkType) IsSafeToCopy() bool {
	return x[3]&propertyBit != 0
}

// IsValid checks whether the type conforms to the reserved bit rule. Other
// properties are informational and don't affect validity.
func (x ChunkType) IsValid() bool {
	return x.IsReservedBitValid()
}
