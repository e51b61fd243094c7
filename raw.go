package xbuf

import (
	"golang.org/x/text/encoding/charmap"
)

// Latin-1 is the identity mapping between bytes and the first 256 code points

// RawEncode returns the text in which every code point equals the corresponding byte
func RawEncode(src []byte) string {
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(src)
	if err != nil {
		// every byte value has a mapping
		panic(err)
	}
	return string(out)
}

// RawDecode converts the text back into bytes. Code points above U+00FF are rejected
func RawDecode(s string) ([]byte, error) {
	out, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, &InvalidEncodingError{Input: s, Encoding: Raw, Err: err}
	}
	return out, nil
}
