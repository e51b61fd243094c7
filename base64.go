package xbuf

import (
	"errors"
	"strings"
)

var errBase64URLLength = errors.New("length is 1 modulo 4")

var (
	toURL   = strings.NewReplacer("+", "-", "/", "_")
	fromURL = strings.NewReplacer("-", "+", "_", "/")
)

// Base64ToURL converts standard base64 into the URL safe form. Trailing padding is kept only if pad is true
func Base64ToURL(s string, pad bool) string {
	s = toURL.Replace(s)
	if !pad {
		s = strings.TrimRight(s, "=")
	}
	return s
}

// Base64FromURL converts URL safe base64 with or without padding into standard padded base64
func Base64FromURL(src string) (string, error) {
	s := fromURL.Replace(src)
	switch len(s) % 4 {
	case 1:
		return "", &InvalidEncodingError{Input: src, Encoding: Base64URL, Err: errBase64URLLength}
	case 2:
		return s + "==", nil
	case 3:
		return s + "=", nil
	}
	return s, nil
}

func base64Encode(p Base64Provider, src []byte) string {
	return p.EncodeToString(src)
}

func base64Decode(p Base64Provider, s string) ([]byte, error) {
	buf, err := p.DecodeString(s)
	if err != nil {
		return nil, &InvalidEncodingError{Input: s, Encoding: Base64, Err: err}
	}
	return buf, nil
}

func base64URLEncode(p Base64Provider, src []byte, pad bool) string {
	return Base64ToURL(p.EncodeToString(src), pad)
}

func base64URLDecode(p Base64Provider, s string) ([]byte, error) {
	std, err := Base64FromURL(s)
	if err != nil {
		return nil, err
	}
	buf, err := p.DecodeString(std)
	if err != nil {
		return nil, &InvalidEncodingError{Input: s, Encoding: Base64URL, Err: err}
	}
	return buf, nil
}
