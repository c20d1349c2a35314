package serial

import "testing"

func roundTrip[T comparable](t *testing.T, codec ValueCodec[T], v T) {
	t.Helper()

	buf, err := codec.Encode(v)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	if buf.Len() != codec.Size(v) {
		t.Errorf("expected size %d, got %d", codec.Size(v), buf.Len())
	}

	decoded, err := codec.Decode(buf)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if decoded != v {
		t.Errorf("round trip mismatch: got %v, want %v", decoded, v)
	}
}

func TestUintCodecRoundTrip(t *testing.T) {
	roundTrip(t, Uint8Codec(), uint8(200))
	roundTrip(t, Uint16Codec(), uint16(40000))
	roundTrip(t, Uint32Codec(), uint32(3000000000))
	roundTrip(t, Uint64Codec(), uint64(18000000000000000000))
}

func TestIntCodecRoundTrip(t *testing.T) {
	roundTrip(t, Int8Codec(), int8(-100))
	roundTrip(t, Int16Codec(), int16(-30000))
	roundTrip(t, Int32Codec(), int32(-2000000000))
	roundTrip(t, Int64Codec(), int64(-9000000000000000000))
}

func TestFloatCodecRoundTrip(t *testing.T) {
	roundTrip(t, Float32Codec(), float32(3.14))
	roundTrip(t, Float64Codec(), float64(2.71828))
}

func TestBoolCodecRoundTrip(t *testing.T) {
	roundTrip(t, BoolCodec(), true)
	roundTrip(t, BoolCodec(), false)
}

func TestStringCodecRoundTrip(t *testing.T) {
	roundTrip(t, StringCodec(), "hello, ferrydb")
	roundTrip(t, StringCodec(), "")
}

func TestStringCodecTruncatedBufferCorrupted(t *testing.T) {
	codec := StringCodec()

	buf, err := codec.Encode("truncate me")
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	truncated, ok := buf.Slice(0, buf.Len()-1)
	if !ok {
		t.Fatalf("expected slice to succeed")
	}

	if _, err := codec.Decode(truncated); err == nil {
		t.Errorf("expected truncated buffer to fail decode")
	}
}
