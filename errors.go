package xbuf

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidEncoding is matched by errors returned for text which doesn't fit its declared encoding
	ErrInvalidEncoding = errors.New("xbuf: invalid encoding")
	// ErrLengthMismatch is matched by errors returned when XOR operands differ in length
	ErrLengthMismatch = errors.New("xbuf: length mismatch")
	// ErrUnsupportedFormat is matched by errors returned for unrecognized raw sources
	ErrUnsupportedFormat = errors.New("xbuf: unsupported format")
	// ErrUnknownEncoding is matched by errors returned for unrecognized encoding tags
	ErrUnknownEncoding = errors.New("xbuf: unknown encoding")
)

// InvalidEncodingError is returned when the input text doesn't match the lexical form of the encoding
type InvalidEncodingError struct {
	Input    string
	Encoding Encoding
	Err      error
}

func (e *InvalidEncodingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("xbuf: invalid %v input %q: %v", e.Encoding, e.Input, e.Err)
	}
	return fmt.Sprintf("xbuf: invalid %v input %q", e.Encoding, e.Input)
}

func (e *InvalidEncodingError) Unwrap() error        { return e.Err }
func (e *InvalidEncodingError) Is(target error) bool { return target == ErrInvalidEncoding }

// LengthMismatchError carries both operand lengths
type LengthMismatchError struct {
	Left  int
	Right int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("xbuf: length mismatch: %d != %d", e.Left, e.Right)
}

func (e *LengthMismatchError) Is(target error) bool { return target == ErrLengthMismatch }

// UnsupportedFormatError is returned by FromBytes for source values it can't convert
type UnsupportedFormatError struct {
	Type string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("xbuf: unsupported source format: %s", e.Type)
}

func (e *UnsupportedFormatError) Is(target error) bool { return target == ErrUnsupportedFormat }

// UnknownEncodingError is returned for an encoding tag or name outside of the known set
type UnknownEncodingError struct {
	Encoding string
}

func (e *UnknownEncodingError) Error() string {
	return fmt.Sprintf("xbuf: unknown encoding: %s", e.Encoding)
}

func (e *UnknownEncodingError) Is(target error) bool { return target == ErrUnknownEncoding }
