package xbuf_test

import (
	"bytes"
	"errors"
	"fmt"
	"log"

	"github.com/ecadlabs/xbuf"
)

func Example() {
	b, err := xbuf.FromString("Input string for buffer")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(b.ToHex(false))
	fmt.Println(b.ToBase64())
	fmt.Println(b.ToBase64URL(false))
	fmt.Println(b.ToBase64URL(true))

	// Output:
	// 496e70757420737472696e6720666f7220627566666572
	// SW5wdXQgc3RyaW5nIGZvciBidWZmZXI=
	// SW5wdXQgc3RyaW5nIGZvciBidWZmZXI
	// SW5wdXQgc3RyaW5nIGZvciBidWZmZXI=
}

func ExampleXor() {
	a, err := xbuf.FromHex("00FF00")
	if err != nil {
		log.Fatal(err)
	}
	b, err := xbuf.FromHex("0xFF00FF")
	if err != nil {
		log.Fatal(err)
	}
	x, err := xbuf.Xor(a, b)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(x.ToHex(true))

	c, err := xbuf.FromHex("FF00FF00")
	if err != nil {
		log.Fatal(err)
	}
	_, err = xbuf.Xor(a, c)
	fmt.Println(errors.Is(err, xbuf.ErrLengthMismatch), err)

	// Output:
	// 0xffffff
	// true xbuf: length mismatch: 3 != 4
}

func ExampleFromBytes() {
	b, err := xbuf.FromBytes([]uint16{0xa1b1, 0xc1d1}, xbuf.OpEncoding(xbuf.Hex))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(b)

	// Output:
	// a1b1c1d1
}

func ExampleRandom() {
	entropy := bytes.NewReader([]byte{0xde, 0xad, 0xbe, 0xef})
	b, err := xbuf.Random(4, xbuf.OpEntropy(entropy))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(b)

	// Output:
	// deadbeef
}
