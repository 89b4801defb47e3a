package png

import "errors"

// Error kinds returned by the codec. Callers should compare using errors.Is,
// returned errors are usually wrapped with the failure context.
var (
	// ErrInvalidByte is returned when a chunk type byte is not an ASCII letter.
	ErrInvalidByte = errors.New("invalid chunk type byte")

	// ErrInvalidLength is returned when a chunk type string is not 4 bytes long.
	ErrInvalidLength = errors.New("invalid chunk type length")

	// ErrInvalidChunkType is returned by chunk parsing when the type field
	// does not form a valid ChunkType. Such errors also wrap ErrInvalidByte.
	ErrInvalidChunkType = errors.New("invalid chunk type")

	// ErrTruncated is returned when the buffer ends before a chunk field is read.
	ErrTruncated = errors.New("truncated chunk")

	// ErrCRCMismatch is returned when the stored chunk checksum differs from
	// the computed one.
	ErrCRCMismatch = errors.New("chunk CRC mismatch")

	// ErrBadSignature is returned when the buffer doesn't start with Signature.
	ErrBadSignature = errors.New("bad PNG signature")

	// ErrNotFound is returned when no chunk of the requested type exists.
	ErrNotFound = errors.New("chunk not found")
)
