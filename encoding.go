package xbuf

import (
	"fmt"
	"regexp"
	"strings"
)

// Encoding selects the textual representation of the binary data
type Encoding uint8

const (
	// UTF8 is the Unicode text encoded as UTF-8
	UTF8 Encoding = iota
	// Base64 is the standard base64 encoding with padding (RFC 4648 section 4)
	Base64
	// Base64URL is the URL safe base64 with optional padding (RFC 7515 appendix C)
	Base64URL
	// Hex is the lowercase hexadecimal encoding with optional 0x prefix
	Hex
	// Raw maps every byte to the code point of the same value
	Raw
)

var encodingNames = [...]string{
	UTF8:      "utf8",
	Base64:    "base64",
	Base64URL: "base64url",
	Hex:       "hex",
	Raw:       "raw",
}

func (e Encoding) String() string {
	if int(e) < len(encodingNames) {
		return encodingNames[e]
	}
	return fmt.Sprintf("Encoding(%d)", uint8(e))
}

// Valid reports whether e is one of the known encodings
func (e Encoding) Valid() bool { return int(e) < len(encodingNames) }

// ParseEncoding returns the encoding by its name. The match is case insensitive
func ParseEncoding(name string) (Encoding, error) {
	switch strings.ToLower(name) {
	case "utf8", "utf-8":
		return UTF8, nil
	case "base64", "b64":
		return Base64, nil
	case "base64url", "base64-url", "b64url":
		return Base64URL, nil
	case "hex":
		return Hex, nil
	case "raw", "binary", "latin1":
		return Raw, nil
	}
	return 0, &UnknownEncodingError{Encoding: name}
}

var (
	hexRe       = regexp.MustCompile(`^(?:0[xX])?[0-9a-fA-F]*$`)
	base64Re    = regexp.MustCompile(`^(?:[A-Za-z0-9+/]{4})*(?:[A-Za-z0-9+/]{2}==|[A-Za-z0-9+/]{3}=)?$`)
	base64URLRe = regexp.MustCompile(`^[A-Za-z0-9_-]*={0,2}$`)
)

// Validate checks s against the lexical form required by the encoding
func Validate(s string, enc Encoding) error {
	var ok bool
	switch enc {
	case UTF8:
		return nil
	case Base64:
		ok = base64Re.MatchString(s)
	case Base64URL:
		ok = base64URLRe.MatchString(s)
	case Hex:
		ok = hexRe.MatchString(s) && len(trimHexPrefix(s))%2 == 0
	case Raw:
		ok = strings.IndexFunc(s, func(r rune) bool { return r > 0xff }) < 0
	default:
		return &UnknownEncodingError{Encoding: enc.String()}
	}
	if !ok {
		return &InvalidEncodingError{Input: s, Encoding: enc}
	}
	return nil
}
