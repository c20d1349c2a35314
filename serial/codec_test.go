package serial

import (
	"errors"
	"testing"

	"github.com/lost-ferry/ferry-db/buffer"
)

// point is a user type exercising the third serializability rule: it exposes
//	SerializedSize/Serialize/Deserialize directly rather than relying on a
//	built-in primitive codec.
type point struct {
	x, y int32
}

func (p *point) SerializedSize() uint64 { return 8 }

func (p *point) Serialize() (*buffer.Buffer, error) {
	buf := buffer.New(8)
	data := buf.Bytes()

	xBuf, _ := Int32Codec().Encode(p.x)
	yBuf, _ := Int32Codec().Encode(p.y)
	copy(data[0:4], xBuf.Bytes())
	copy(data[4:8], yBuf.Bytes())

	return buf, nil
}

func (p *point) Deserialize(buf *buffer.Buffer) error {
	if buf.Len() < 8 {
		return New(DeserializableDataCorrupted, "point requires 8 bytes, got %d", buf.Len())
	}

	xView, _ := buf.Slice(0, 4)
	yView, _ := buf.Slice(4, 8)

	x, err := Int32Codec().Decode(xView)
	if err != nil {
		return err
	}

	y, err := Int32Codec().Decode(yView)
	if err != nil {
		return err
	}

	p.x, p.y = x, y
	return nil
}

func TestStructCodecRoundTrip(t *testing.T) {
	codec := Struct[point, *point]()

	original := point{x: -7, y: 42}

	buf, err := codec.Encode(original)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	if buf.Len() != codec.Size(original) {
		t.Errorf("expected size %d, got %d", codec.Size(original), buf.Len())
	}

	decoded, err := codec.Decode(buf)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if decoded != original {
		t.Errorf("round trip mismatch: got %+v, want %+v", decoded, original)
	}
}

func TestErrorIsSentinelComparable(t *testing.T) {
	err := New(DeserializableDataCorrupted, "bad magic")

	if err.Kind != DeserializableDataCorrupted {
		t.Errorf("expected kind to match")
	}

	if err.Error() == "" {
		t.Errorf("expected non-empty error message")
	}

	if !errors.Is(err, ErrDeserializableDataCorrupted) {
		t.Errorf("expected errors.Is to match the DeserializableDataCorrupted sentinel")
	}
}
