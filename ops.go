package xbuf

import (
	"fmt"
	"io"
)

// Concat returns a new buffer holding the data of all arguments in order. The result takes
// its default encoding from the first buffer
func Concat(first *Buffer, rest ...*Buffer) *Buffer {
	n := first.Len()
	for _, b := range rest {
		n += b.Len()
	}
	out := make([]byte, n)
	off := copy(out, first.data)
	for _, b := range rest {
		off += copy(out[off:], b.data)
	}
	return &Buffer{data: out, enc: first.enc, b64: first.b64}
}

// Concat returns a new buffer holding b's data followed by other's
func (b *Buffer) Concat(other ...*Buffer) *Buffer { return Concat(b, other...) }

// Xor returns the byte-wise XOR of two buffers of equal length
func Xor(a, b *Buffer) (*Buffer, error) {
	if a.Len() != b.Len() {
		return nil, &LengthMismatchError{Left: a.Len(), Right: b.Len()}
	}
	out := make([]byte, len(a.data))
	for i := range out {
		out[i] = a.data[i] ^ b.data[i]
	}
	return &Buffer{data: out, enc: a.enc, b64: a.b64}, nil
}

// Xor returns the byte-wise XOR of b and other
func (b *Buffer) Xor(other *Buffer) (*Buffer, error) { return Xor(b, other) }

// Equal reports whether both buffers hold the same bytes. The comparison is not constant time
// and must not be used for secrets
func Equal(a, b *Buffer) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}
	return true
}

// Equal reports whether b and other hold the same bytes
func (b *Buffer) Equal(other *Buffer) bool { return Equal(b, other) }

// Random returns a buffer of n bytes read from the entropy source, crypto/rand by default.
// The default encoding of the result is Hex
func Random(n int, op ...Option) (*Buffer, error) {
	if n < 0 {
		return nil, fmt.Errorf("xbuf: negative length: %d", n)
	}
	opt := new(options).apply(op)
	data := make([]byte, n)
	if _, err := io.ReadFull(opt.entropySource(), data); err != nil {
		return nil, fmt.Errorf("xbuf: %w", err)
	}
	return newBuffer(data, Hex, opt)
}
