package common

import (
	"errors"

	"github.com/nspcc-dev/pngme/cmd/internal/cmderr"
	"github.com/nspcc-dev/pngme/pkg/png"
)

// Exit codes returned by the application.
const (
	_ = iota
	CodeInternal
	CodeMalformedInput
	CodeInvalidChunkType
	CodeNotFound
)

// WrapExitErr wraps err into cmderr.ExitErr with a code depending on the
// error kind:
//
//	0 if nil
//	1 if untyped (I/O errors, bad arguments)
//	2 if input file is not a valid PNG
//	3 if chunk type argument is invalid
//	4 if chunk is not found
func WrapExitErr(err error) error {
	if err == nil {
		return nil
	}

	var code int

	switch {
	case errors.Is(err, png.ErrBadSignature),
		errors.Is(err, png.ErrTruncated),
		errors.Is(err, png.ErrCRCMismatch),
		errors.Is(err, png.ErrInvalidChunkType):
		code = CodeMalformedInput
	case errors.Is(err, png.ErrInvalidByte),
		errors.Is(err, png.ErrInvalidLength):
		code = CodeInvalidChunkType
	case errors.Is(err, png.ErrNotFound):
		code = CodeNotFound
	default:
		code = CodeInternal
	}

	return cmderr.ExitErr{Code: code, Cause: err}
}
