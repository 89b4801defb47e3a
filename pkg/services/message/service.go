package message

import (
	"fmt"

	"github.com/nspcc-dev/pngme/pkg/png"
	"go.uber.org/zap"
)

type cfg struct {
	log *zap.Logger
}

// Option is an option of Service's constructor.
type Option func(*cfg)

func defaultCfg() *cfg {
	return &cfg{
		log: zap.NewNop(),
	}
}

// Service hides text messages in PNG files and reads them back. All
// operations work with the whole file contents kept in memory: input is
// parsed, modified and encoded back, untouched chunks are preserved
// byte-for-byte.
//
// Service is stateless and safe for concurrent use.
type Service struct {
	log *zap.Logger
}

// New creates, initializes and returns message Service.
func New(opts ...Option) *Service {
	c := defaultCfg()

	for i := range opts {
		opts[i](c)
	}

	return &Service{
		log: c.log,
	}
}

// WithLogger returns an option to specify logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *cfg) {
		c.log = l
	}
}

func (s *Service) parse(in []byte) (*png.PNG, error) {
	p, err := png.Parse(in)
	if err != nil {
		s.log.Error("could not parse PNG", zap.Int("size", len(in)), zap.Error(err))
		return nil, fmt.Errorf("parse PNG: %w", err)
	}

	s.log.Debug("PNG parsed", zap.Int("size", len(in)), zap.Int("chunks", len(p.Chunks())))

	return p, nil
}

// Encode appends a chunk of the given type carrying msg to the PNG file in
// and returns the resulting file. Invalid chunk type is reported with
// png.ErrInvalidLength or png.ErrInvalidByte, unparsable input with errors
// described in png.Parse.
func (s *Service) Encode(in []byte, chunkType string, msg string) ([]byte, error) {
	typ, err := png.ParseChunkType(chunkType)
	if err != nil {
		s.log.Error("invalid chunk type", zap.String("type", chunkType), zap.Error(err))
		return nil, fmt.Errorf("chunk type %q: %w", chunkType, err)
	}

	if !typ.IsValid() {
		s.log.Warn("chunk type has reserved bit set", zap.Stringer("type", typ))
	}

	p, err := s.parse(in)
	if err != nil {
		return nil, err
	}

	c := png.NewChunk(typ, []byte(msg))
	p.Append(c)

	s.log.Debug("message chunk appended",
		zap.Stringer("type", typ),
		zap.Uint32("length", c.Length()),
		zap.Uint32("crc", c.CRC()),
	)

	return p.Marshal(), nil
}

// Decode returns the message stored in the first chunk of the given type.
// Returns error wrapping png.ErrNotFound if there is no such chunk.
func (s *Service) Decode(in []byte, chunkType string) (string, error) {
	p, err := s.parse(in)
	if err != nil {
		return "", err
	}

	c, ok := p.ChunkByType(chunkType)
	if !ok {
		s.log.Debug("message chunk not found", zap.String("type", chunkType))
		return "", fmt.Errorf("%w: %s", png.ErrNotFound, chunkType)
	}

	s.log.Debug("message chunk found", zap.String("type", chunkType), zap.Uint32("length", c.Length()))

	return c.DataAsText(), nil
}

// Remove deletes the first chunk of the given type from the PNG file in and
// returns the resulting file. Returns error wrapping png.ErrNotFound if there
// is no such chunk.
func (s *Service) Remove(in []byte, chunkType string) ([]byte, error) {
	p, err := s.parse(in)
	if err != nil {
		return nil, err
	}

	c, err := p.RemoveChunk(chunkType)
	if err != nil {
		s.log.Debug("message chunk not found", zap.String("type", chunkType))
		return nil, err
	}

	s.log.Debug("message chunk removed",
		zap.String("type", chunkType),
		zap.Uint32("length", c.Length()),
		zap.Int("remaining", len(p.Chunks())),
	)

	return p.Marshal(), nil
}

// Describe returns human-readable listing of the PNG file chunks.
func (s *Service) Describe(in []byte) (string, error) {
	p, err := s.parse(in)
	if err != nil {
		return "", err
	}

	return p.String(), nil
}
