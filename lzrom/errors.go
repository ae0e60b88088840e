package lzrom

import (
	"errors"
	"fmt"
)

// Error classes. Every error returned by this package matches exactly one of
// them with errors.Is.
var (
	// ErrFormat reports a compressed stream that does not follow the format.
	ErrFormat = errors.New("lzrom: malformed stream")
	// ErrCapacity reports a buffer too small for the data it must hold.
	ErrCapacity = errors.New("lzrom: insufficient capacity")
	// ErrArgument reports a start or length parameter out of range.
	ErrArgument = errors.New("lzrom: invalid argument")
)

// Specific errors. Use errors.Is with these or with the class they wrap.
var (
	ErrUnknownKind       = fmt.Errorf("%w: unknown command kind", ErrFormat)
	ErrNestedLong        = fmt.Errorf("%w: long command inside extended header", ErrFormat)
	ErrMissingTerminator = fmt.Errorf("%w: input ended before terminator", ErrFormat)
	ErrForwardCopy       = fmt.Errorf("%w: copy source not yet written", ErrFormat)
	ErrTruncated         = fmt.Errorf("%w: input ended inside a command", ErrCapacity)
	ErrDestinationFull   = fmt.Errorf("%w: destination buffer too small", ErrCapacity)
	ErrNegativeArgument  = fmt.Errorf("%w: negative start or length", ErrArgument)
	ErrRange             = fmt.Errorf("%w: start+length beyond input", ErrArgument)
)
