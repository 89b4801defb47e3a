package message

import (
	"github.com/nspcc-dev/pngme/pkg/png"
)

// ChunkInfo describes single chunk of the PNG file.
type ChunkInfo struct {
	Index      int    `yaml:"index"`
	Offset     int    `yaml:"offset"`
	Type       string `yaml:"type"`
	Length     uint32 `yaml:"length"`
	CRC        uint32 `yaml:"crc"`
	Critical   bool   `yaml:"critical"`
	Public     bool   `yaml:"public"`
	Valid      bool   `yaml:"valid"`
	SafeToCopy bool   `yaml:"safe_to_copy"`
	Text       string `yaml:"text,omitempty"`
}

// Inspect parses the PNG file and describes each of its chunks in file
// order. Text is not filled for public critical chunks (IHDR, PLTE, IDAT,
// IEND): they carry image data which is not meant to be read as text.
func (s *Service) Inspect(in []byte) ([]ChunkInfo, error) {
	p, err := s.parse(in)
	if err != nil {
		return nil, err
	}

	chunks := p.Chunks()
	res := make([]ChunkInfo, len(chunks))
	off := len(png.Signature)

	for i := range chunks {
		typ := chunks[i].Type()

		res[i] = ChunkInfo{
			Index:      i,
			Offset:     off,
			Type:       typ.String(),
			Length:     chunks[i].Length(),
			CRC:        chunks[i].CRC(),
			Critical:   typ.IsCritical(),
			Public:     typ.IsPublic(),
			Valid:      typ.IsValid(),
			SafeToCopy: typ.IsSafeToCopy(),
		}

		if !res[i].Critical || !res[i].Public {
			res[i].Text = chunks[i].DataAsText()
		}

		off += png.ChunkOverhead + int(chunks[i].Length())
	}

	return res, nil
}
