package xbuf

import (
	"encoding/binary"
	"fmt"
	"reflect"
)

// FromBytes returns a Buffer holding the binary data of src. Accepted sources are byte slices and arrays,
// *Buffer values and slices or arrays of fixed width integers. Wider elements are expanded into bytes
// in big endian order, i.e. uint16 0xa1b1 becomes [0xa1 0xb1]
func FromBytes(src interface{}, op ...Option) (*Buffer, error) {
	opt := new(options).apply(op)
	switch v := src.(type) {
	case []byte:
		return newBuffer(cloneBytes(v), UTF8, opt)
	case *Buffer:
		if v == nil {
			break
		}
		return newBuffer(cloneBytes(v.data), v.enc, opt)
	default:
		if data, ok := expandInts(reflect.ValueOf(src)); ok {
			return newBuffer(data, UTF8, opt)
		}
	}
	return nil, &UnsupportedFormatError{Type: fmt.Sprintf("%T", src)}
}

func expandInts(v reflect.Value) ([]byte, bool) {
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return nil, false
	}
	var width int
	switch v.Type().Elem().Kind() {
	case reflect.Int8, reflect.Uint8:
		width = 1
	case reflect.Int16, reflect.Uint16:
		width = 2
	case reflect.Int32, reflect.Uint32:
		width = 4
	case reflect.Int64, reflect.Uint64:
		width = 8
	default:
		return nil, false
	}

	ln := v.Len()
	out := make([]byte, ln*width)
	for i := 0; i < ln; i++ {
		var x uint64
		e := v.Index(i)
		if e.Kind() >= reflect.Int && e.Kind() <= reflect.Int64 {
			x = uint64(e.Int())
		} else {
			x = e.Uint()
		}
		dst := out[i*width:]
		switch width {
		case 1:
			dst[0] = byte(x)
		case 2:
			binary.BigEndian.PutUint16(dst, uint16(x))
		case 4:
			binary.BigEndian.PutUint32(dst, uint32(x))
		default:
			binary.BigEndian.PutUint64(dst, x)
		}
	}
	return out, true
}
