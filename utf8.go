package xbuf

import (
	"unicode/utf16"
)

const (
	surrSelf = 0x10000
	surrHi   = 0xd800
	surrLo   = 0xdc00
	surrEnd  = 0xe000
	repl     = 0xfffd
)

// UTF8EncodeUnits encodes UTF-16 code units as UTF-8. A valid surrogate pair produces a four byte sequence,
// an unpaired surrogate is encoded as is using three bytes
func UTF8EncodeUnits(src []uint16) []byte {
	n := 0
	for i := 0; i < len(src); i++ {
		switch c := src[i]; {
		case c < 0x80:
			n++
		case c < 0x800:
			n += 2
		case isHighSurr(c) && i+1 < len(src) && isLowSurr(src[i+1]):
			n += 4
			i++
		default:
			n += 3
		}
	}

	out := make([]byte, n)
	j := 0
	for i := 0; i < len(src); i++ {
		c := uint32(src[i])
		switch {
		case c < 0x80:
			out[j] = byte(c)
			j++

		case c < 0x800:
			out[j] = 0xc0 | byte(c>>6)
			out[j+1] = 0x80 | byte(c&0x3f)
			j += 2

		case isHighSurr(uint16(c)) && i+1 < len(src) && isLowSurr(src[i+1]):
			i++
			c = surrSelf + ((c&0x3ff)<<10 | uint32(src[i])&0x3ff)
			out[j] = 0xf0 | byte(c>>18)
			out[j+1] = 0x80 | byte((c>>12)&0x3f)
			out[j+2] = 0x80 | byte((c>>6)&0x3f)
			out[j+3] = 0x80 | byte(c&0x3f)
			j += 4

		default:
			out[j] = 0xe0 | byte(c>>12)
			out[j+1] = 0x80 | byte((c>>6)&0x3f)
			out[j+2] = 0x80 | byte(c&0x3f)
			j += 3
		}
	}
	return out
}

// UTF8DecodeUnits decodes UTF-8 into UTF-16 code units. Code points above the BMP are emitted as surrogate pairs.
// The input is not validated: continuation bytes are masked without being checked and a truncated
// trailing sequence produces U+FFFD
func UTF8DecodeUnits(src []byte) []uint16 {
	out := make([]uint16, 0, len(src))
	for i := 0; i < len(src); {
		c := src[i]
		var ln int
		switch {
		case c <= 0x7f:
			ln = 1
		case c <= 0xdf:
			ln = 2
		case c <= 0xef:
			ln = 3
		default:
			ln = 4
		}
		if i+ln > len(src) {
			out = append(out, repl)
			break
		}
		s := src[i : i+ln]
		i += ln

		switch ln {
		case 1:
			out = append(out, uint16(c))
		case 2:
			out = append(out, uint16(c&0x1f)<<6|uint16(s[1]&0x3f))
		case 3:
			out = append(out, uint16(c&0xf)<<12|uint16(s[1]&0x3f)<<6|uint16(s[2]&0x3f))
		default:
			cp := uint32(c&0x7)<<18 | uint32(s[1]&0x3f)<<12 | uint32(s[2]&0x3f)<<6 | uint32(s[3]&0x3f)
			cp -= surrSelf
			out = append(out, uint16(surrHi+(cp>>10)), uint16(surrLo+(cp&0x3ff)))
		}
	}
	return out
}

// UTF8Encode encodes the text as UTF-8 going through its UTF-16 representation
func UTF8Encode(s string) []byte {
	return UTF8EncodeUnits(utf16.Encode([]rune(s)))
}

// UTF8Decode decodes UTF-8 bytes into a string. Unpaired surrogates are replaced with U+FFFD
func UTF8Decode(src []byte) string {
	return string(utf16.Decode(UTF8DecodeUnits(src)))
}

func isHighSurr(c uint16) bool { return c >= surrHi && c < surrLo }
func isLowSurr(c uint16) bool  { return c >= surrLo && c < surrEnd }
