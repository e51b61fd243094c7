// Package xbuf is the immutable byte buffer with lossless conversion between binary data and
// UTF-8, base64, base64url, hexadecimal and raw (Latin-1) text
package xbuf

// Buffer is an immutable sequence of bytes with a default text encoding. A Buffer exclusively owns its data:
// every transforming operation returns a new Buffer. The zero value is an empty UTF-8 buffer
type Buffer struct {
	data []byte
	enc  Encoding
	b64  Base64Provider
}

func newBuffer(data []byte, def Encoding, opt *options) (*Buffer, error) {
	enc := opt.encoding(def)
	if !enc.Valid() {
		return nil, &UnknownEncodingError{Encoding: enc.String()}
	}
	return &Buffer{data: data, enc: enc, b64: opt.base64()}, nil
}

// New returns a Buffer holding a copy of data
func New(data []byte, op ...Option) (*Buffer, error) {
	return newBuffer(cloneBytes(data), UTF8, new(options).apply(op))
}

// FromText decodes the text according to the encoding after checking its lexical form.
// The encoding becomes the default one for the new buffer unless OpEncoding is passed
func FromText(s string, enc Encoding, op ...Option) (*Buffer, error) {
	opt := new(options).apply(op)
	if err := Validate(s, enc); err != nil {
		return nil, err
	}
	var (
		data []byte
		err  error
	)
	switch enc {
	case UTF8:
		data = UTF8Encode(s)
	case Base64:
		data, err = base64Decode(opt.base64(), s)
	case Base64URL:
		data, err = base64URLDecode(opt.base64(), s)
	case Hex:
		data, err = HexDecode(s)
	case Raw:
		data, err = RawDecode(s)
	default:
		return nil, &UnknownEncodingError{Encoding: enc.String()}
	}
	if err != nil {
		return nil, err
	}
	return newBuffer(data, enc, opt)
}

// FromString returns a Buffer holding the UTF-8 representation of s
func FromString(s string, op ...Option) (*Buffer, error) { return FromText(s, UTF8, op...) }

// FromHex decodes the hexadecimal string with optional 0x prefix
func FromHex(s string, op ...Option) (*Buffer, error) { return FromText(s, Hex, op...) }

// FromBase64 decodes the padded standard base64 string
func FromBase64(s string, op ...Option) (*Buffer, error) { return FromText(s, Base64, op...) }

// FromBase64URL decodes the URL safe base64 string with or without padding
func FromBase64URL(s string, op ...Option) (*Buffer, error) { return FromText(s, Base64URL, op...) }

// FromRaw converts the text whose code points are all below U+0100 into bytes
func FromRaw(s string, op ...Option) (*Buffer, error) { return FromText(s, Raw, op...) }

// Len returns the length of the data in bytes
func (b *Buffer) Len() int { return len(b.data) }

// Encoding returns the default encoding
func (b *Buffer) Encoding() Encoding { return b.enc }

// Bytes returns a copy of the data
func (b *Buffer) Bytes() []byte { return cloneBytes(b.data) }

// Copy returns a deep copy of the buffer
func (b *Buffer) Copy() *Buffer {
	return &Buffer{data: cloneBytes(b.data), enc: b.enc, b64: b.b64}
}

// Text returns the text representation in the encoding. The with flag adds the 0x prefix
// to hexadecimal output and keeps padding in base64url output. It's ignored by other encodings
func (b *Buffer) Text(enc Encoding, with bool) (string, error) {
	switch enc {
	case UTF8:
		return UTF8Decode(b.data), nil
	case Base64:
		return base64Encode(b.base64(), b.data), nil
	case Base64URL:
		return base64URLEncode(b.base64(), b.data, with), nil
	case Hex:
		return HexEncode(b.data, with), nil
	case Raw:
		return RawEncode(b.data), nil
	}
	return "", &UnknownEncodingError{Encoding: enc.String()}
}

func (b *Buffer) mustText(enc Encoding, with bool) string {
	s, err := b.Text(enc, with)
	if err != nil {
		panic(err)
	}
	return s
}

// String returns the text in the default encoding
func (b *Buffer) String() string { return b.mustText(b.enc, false) }

// ToUTF8 decodes the data as UTF-8 text
func (b *Buffer) ToUTF8() string { return b.mustText(UTF8, false) }

// ToHex returns the lowercase hexadecimal string, with the 0x prefix if requested
func (b *Buffer) ToHex(prefix bool) string { return b.mustText(Hex, prefix) }

// ToBase64 returns the padded standard base64 string
func (b *Buffer) ToBase64() string { return b.mustText(Base64, false) }

// ToBase64URL returns the URL safe base64 string. Padding is kept only if pad is true
func (b *Buffer) ToBase64URL(pad bool) string { return b.mustText(Base64URL, pad) }

// ToRaw returns the text in which every code point equals the corresponding byte
func (b *Buffer) ToRaw() string { return b.mustText(Raw, false) }

// MarshalText implements encoding.TextMarshaler using the default encoding
func (b *Buffer) MarshalText() ([]byte, error) {
	s, err := b.Text(b.enc, false)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

func (b *Buffer) base64() Base64Provider {
	if b.b64 != nil {
		return b.b64
	}
	return defaultProviderRegistry.base64()
}

func cloneBytes(b []byte) []byte {
	c := make([]byte, len(b))
	copy(c, b)
	return c
}
