package serial

import (
	"encoding/binary"
	"math"

	"github.com/lost-ferry/ferry-db/buffer"
)

//============================================= Built-in primitive codecs
//
// Fixed-width fundamental numeric types encode as raw host-endian bytes of
// their size; strings encode as an 8 byte length prefix followed by content,
// per §4.1. All numeric fields use the host's native byte order via
// encoding/binary.NativeEndian -- the file is host-endian, not portable,
// per the Non-goals in §1.


type uintCodec[T ~uint8 | ~uint16 | ~uint32 | ~uint64] struct{ size uint64 }

func (c uintCodec[T]) Size(T) uint64 { return c.size }

func (c uintCodec[T]) Encode(v T) (*buffer.Buffer, error) {
	buf := buffer.New(c.size)
	data := buf.Bytes()

	switch c.size {
	case 1:
		data[0] = byte(v)
	case 2:
		binary.NativeEndian.PutUint16(data, uint16(v))
	case 4:
		binary.NativeEndian.PutUint32(data, uint32(v))
	case 8:
		binary.NativeEndian.PutUint64(data, uint64(v))
	}

	return buf, nil
}

func (c uintCodec[T]) Decode(buf *buffer.Buffer) (T, error) {
	var zero T

	if buf.Len() < c.size {
		return zero, New(DeserializableDataCorrupted, "expected %d bytes for fixed-width field, got %d", c.size, buf.Len())
	}

	data := buf.Bytes()

	switch c.size {
	case 1:
		return T(data[0]), nil
	case 2:
		return T(binary.NativeEndian.Uint16(data)), nil
	case 4:
		return T(binary.NativeEndian.Uint32(data)), nil
	case 8:
		return T(binary.NativeEndian.Uint64(data)), nil
	}

	return zero, New(DeserializableDataCorrupted, "unsupported fixed-width size %d", c.size)
}

// Uint8Codec, Uint16Codec, Uint32Codec, Uint64Codec are built-in ValueCodecs
//	for the fixed-width unsigned fundamental types.
func Uint8Codec() ValueCodec[uint8]   { return uintCodec[uint8]{size: 1} }
func Uint16Codec() ValueCodec[uint16] { return uintCodec[uint16]{size: 2} }
func Uint32Codec() ValueCodec[uint32] { return uintCodec[uint32]{size: 4} }
func Uint64Codec() ValueCodec[uint64] { return uintCodec[uint64]{size: 8} }

type intCodec[T ~int8 | ~int16 | ~int32 | ~int64] struct{ size uint64 }

func (c intCodec[T]) Size(T) uint64 { return c.size }

func (c intCodec[T]) Encode(v T) (*buffer.Buffer, error) {
	buf := buffer.New(c.size)
	data := buf.Bytes()

	switch c.size {
	case 1:
		data[0] = byte(v)
	case 2:
		binary.NativeEndian.PutUint16(data, uint16(v))
	case 4:
		binary.NativeEndian.PutUint32(data, uint32(v))
	case 8:
		binary.NativeEndian.PutUint64(data, uint64(v))
	}

	return buf, nil
}

func (c intCodec[T]) Decode(buf *buffer.Buffer) (T, error) {
	var zero T

	if buf.Len() < c.size {
		return zero, New(DeserializableDataCorrupted, "expected %d bytes for fixed-width field, got %d", c.size, buf.Len())
	}

	data := buf.Bytes()

	switch c.size {
	case 1:
		return T(int8(data[0])), nil
	case 2:
		return T(int16(binary.NativeEndian.Uint16(data))), nil
	case 4:
		return T(int32(binary.NativeEndian.Uint32(data))), nil
	case 8:
		return T(int64(binary.NativeEndian.Uint64(data))), nil
	}

	return zero, New(DeserializableDataCorrupted, "unsupported fixed-width size %d", c.size)
}

// Int8Codec, Int16Codec, Int32Codec, Int64Codec are built-in ValueCodecs for
//	the fixed-width signed fundamental types.
func Int8Codec() ValueCodec[int8]   { return intCodec[int8]{size: 1} }
func Int16Codec() ValueCodec[int16] { return intCodec[int16]{size: 2} }
func Int32Codec() ValueCodec[int32] { return intCodec[int32]{size: 4} }
func Int64Codec() ValueCodec[int64] { return intCodec[int64]{size: 8} }

type float32Codec struct{}

func (float32Codec) Size(float32) uint64 { return 4 }

func (float32Codec) Encode(v float32) (*buffer.Buffer, error) {
	buf := buffer.New(4)
	binary.NativeEndian.PutUint32(buf.Bytes(), math.Float32bits(v))
	return buf, nil
}

func (float32Codec) Decode(buf *buffer.Buffer) (float32, error) {
	if buf.Len() < 4 {
		return 0, New(DeserializableDataCorrupted, "expected 4 bytes for float32, got %d", buf.Len())
	}
	return math.Float32frombits(binary.NativeEndian.Uint32(buf.Bytes())), nil
}

// Float32Codec is the built-in ValueCodec for float32.
func Float32Codec() ValueCodec[float32] { return float32Codec{} }

type float64Codec struct{}

func (float64Codec) Size(float64) uint64 { return 8 }

func (float64Codec) Encode(v float64) (*buffer.Buffer, error) {
	buf := buffer.New(8)
	binary.NativeEndian.PutUint64(buf.Bytes(), math.Float64bits(v))
	return buf, nil
}

func (float64Codec) Decode(buf *buffer.Buffer) (float64, error) {
	if buf.Len() < 8 {
		return 0, New(DeserializableDataCorrupted, "expected 8 bytes for float64, got %d", buf.Len())
	}
	return math.Float64frombits(binary.NativeEndian.Uint64(buf.Bytes())), nil
}

// Float64Codec is the built-in ValueCodec for float64.
func Float64Codec() ValueCodec[float64] { return float64Codec{} }

type boolCodec struct{}

func (boolCodec) Size(bool) uint64 { return 1 }

func (boolCodec) Encode(v bool) (*buffer.Buffer, error) {
	buf := buffer.New(1)
	if v {
		buf.Bytes()[0] = 1
	}
	return buf, nil
}

func (boolCodec) Decode(buf *buffer.Buffer) (bool, error) {
	if buf.Len() < 1 {
		return false, New(DeserializableDataCorrupted, "expected 1 byte for bool, got %d", buf.Len())
	}
	return buf.Bytes()[0] != 0, nil
}

// BoolCodec is the built-in ValueCodec for bool.
func BoolCodec() ValueCodec[bool] { return boolCodec{} }

type stringCodec struct{}

func (stringCodec) Size(v string) uint64 { return 8 + uint64(len(v)) }

func (stringCodec) Encode(v string) (*buffer.Buffer, error) {
	buf := buffer.New(8 + uint64(len(v)))
	data := buf.Bytes()

	binary.NativeEndian.PutUint64(data[:8], uint64(len(v)))
	copy(data[8:], v)

	return buf, nil
}

func (stringCodec) Decode(buf *buffer.Buffer) (string, error) {
	if buf.Len() < 8 {
		return "", New(DeserializableDataCorrupted, "expected at least 8 bytes for string length prefix, got %d", buf.Len())
	}

	data := buf.Bytes()
	n := binary.NativeEndian.Uint64(data[:8])

	if uint64(len(data))-8 < n {
		return "", New(DeserializableDataCorrupted, "string length prefix %d exceeds remaining buffer %d", n, len(data)-8)
	}

	return string(data[8 : 8+n]), nil
}

// StringCodec is the built-in ValueCodec for string: 8 byte length prefix
//	followed by the UTF-8 content, per §4.1.
func StringCodec() ValueCodec[string] { return stringCodec{} }
