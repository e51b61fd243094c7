package xbuf

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustHex(t *testing.T, s string) *Buffer {
	b, err := FromHex(s)
	require.NoError(t, err)
	return b
}

func TestConcat(t *testing.T) {
	a := mustHex(t, "0x0011")
	b := mustHex(t, "2233")
	c := mustHex(t, "")

	out := Concat(a, b)
	assert.Equal(t, "00112233", out.ToHex(false))
	assert.Equal(t, 4, out.Len())
	assert.Equal(t, "223300110011", b.Concat(a, c, a).ToHex(false))
	assert.Equal(t, "0011", a.Concat().ToHex(false))
	assert.Equal(t, "", c.Concat(c).ToHex(false))

	// operands are untouched
	assert.Equal(t, "0011", a.ToHex(false))
	assert.Equal(t, "2233", b.ToHex(false))
}

func TestXor(t *testing.T) {
	out, err := Xor(mustHex(t, "00FF00"), mustHex(t, "FF00FF"))
	require.NoError(t, err)
	assert.Equal(t, "ffffff", out.ToHex(false))

	_, err = mustHex(t, "00FF00FF").Xor(mustHex(t, "FF00FF"))
	var e *LengthMismatchError
	require.ErrorAs(t, err, &e)
	assert.Equal(t, 4, e.Left)
	assert.Equal(t, 3, e.Right)
	assert.ErrorIs(t, err, ErrLengthMismatch)
	assert.EqualError(t, err, "xbuf: length mismatch: 4 != 3")

	out, err = Xor(mustHex(t, ""), mustHex(t, "0x"))
	require.NoError(t, err)
	assert.Equal(t, 0, out.Len())
}

func TestXorSelfInverse(t *testing.T) {
	for n := 0; n <= 24; n++ {
		a, err := Random(n)
		require.NoError(t, err)
		b, err := Random(n)
		require.NoError(t, err)
		x, err := a.Xor(b)
		require.NoError(t, err)
		y, err := x.Xor(b)
		require.NoError(t, err)
		assert.True(t, a.Equal(y))
	}
}

func TestEqual(t *testing.T) {
	a := mustHex(t, "0x001122")
	assert.True(t, a.Equal(mustHex(t, "0x001122").Copy()))
	assert.True(t, Equal(a, mustHex(t, "001122")))
	assert.False(t, a.Equal(mustHex(t, "0x001123")))
	assert.False(t, a.Equal(mustHex(t, "0x0011")))
	assert.False(t, a.Equal(mustHex(t, "")))
	assert.True(t, Equal(mustHex(t, ""), mustHex(t, "0x")))
}

func TestRandom(t *testing.T) {
	for n := 0; n <= 24; n++ {
		b, err := Random(n)
		require.NoError(t, err)
		assert.Equal(t, n, b.Len())
		assert.Equal(t, Hex, b.Encoding())
	}

	_, err := Random(-1)
	assert.EqualError(t, err, "xbuf: negative length: -1")
}

type failReader struct{}

func (failReader) Read([]byte) (int, error) { return 0, errors.New("drained") }

func TestRandomEntropy(t *testing.T) {
	src := bytes.NewReader([]byte{1, 2, 3, 4, 5})
	b, err := Random(4, OpEntropy(src))
	require.NoError(t, err)
	assert.Equal(t, "01020304", b.String())

	_, err = Random(4, OpEntropy(src))
	assert.Error(t, err)

	_, err = Random(1, OpEntropy(failReader{}))
	assert.EqualError(t, err, "xbuf: drained")

	b, err = Random(0, OpEntropy(failReader{}))
	require.NoError(t, err)
	assert.Equal(t, 0, b.Len())

	reg := NewProviderRegistry()
	reg.SetEntropySource(bytes.NewReader([]byte{0xaa, 0xbb}))
	b, err = Random(2, OpProviders(reg), OpEncoding(Base64))
	require.NoError(t, err)
	assert.Equal(t, "qrs=", b.String())
}
