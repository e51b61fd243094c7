package xbuf

import (
	"encoding/hex"
)

// HexEncode returns the lowercase hexadecimal representation of src. The 0x prefix is added on request
// unless src is empty
func HexEncode(src []byte, prefix bool) string {
	if len(src) == 0 {
		return ""
	}
	var off int
	if prefix {
		off = 2
	}
	buf := make([]byte, off+hex.EncodedLen(len(src)))
	if prefix {
		buf[0], buf[1] = '0', 'x'
	}
	hex.Encode(buf[off:], src)
	return string(buf)
}

// HexDecode decodes the hexadecimal string with optional 0x or 0X prefix. Odd length input is rejected
func HexDecode(s string) ([]byte, error) {
	digits := trimHexPrefix(s)
	buf := make([]byte, hex.DecodedLen(len(digits)))
	n, err := hex.Decode(buf, []byte(digits))
	if err != nil {
		return nil, &InvalidEncodingError{Input: s, Encoding: Hex, Err: err}
	}
	return buf[:n], nil
}

func trimHexPrefix(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}
