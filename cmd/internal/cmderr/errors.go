package cmderr

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// ExitErr specific error for ExitOnErr function that passes the exit code and error caused.
type ExitErr struct {
	Code  int
	Cause error
}

func (x ExitErr) Error() string { return x.Cause.Error() }

// Unwrap returns the cause to make errors.Is and errors.As work through ExitErr.
func (x ExitErr) Unwrap() error { return x.Cause }

// Code returns exit code for err: 0 if err is nil, code of the ExitErr from
// the err chain or 1 otherwise.
func Code(err error) int {
	if err == nil {
		return 0
	}

	var e ExitErr
	if errors.As(err, &e) {
		return e.Code
	}

	return 1
}

// Fprint writes err to w in the same format as ExitOnErr does.
func Fprint(w io.Writer, err error) {
	fmt.Fprintln(w, "Error:", err)
}

// ExitOnErr writes error to os.Stderr and calls os.Exit with passed exit code or by default 1.
// Does nothing if err is nil.
func ExitOnErr(err error) {
	if err != nil {
		Fprint(os.Stderr, err)
		os.Exit(Code(err))
	}
}
