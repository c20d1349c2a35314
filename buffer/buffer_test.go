package buffer

import "testing"

func TestNewIsOwnedAndZeroed(t *testing.T) {
	buf := New(8)

	if !buf.IsOwned() {
		t.Errorf("expected New buffer to be owned")
	}

	for i, v := range buf.Bytes() {
		if v != 0 {
			t.Errorf("byte %d not zero initialized: %d", i, v)
		}
	}
}

func TestViewIsNotOwned(t *testing.T) {
	data := []byte("ABCDEFGH")
	buf := View(data)

	if buf.IsOwned() {
		t.Errorf("expected View buffer to be non-owning")
	}

	if buf.Len() != uint64(len(data)) {
		t.Errorf("expected length %d, got %d", len(data), buf.Len())
	}
}

func TestCloneOwning(t *testing.T) {
	buf := New(4)
	copy(buf.Bytes(), []byte{1, 2, 3, 4})

	cloned := buf.Clone()
	if !cloned.IsOwned() {
		t.Errorf("expected clone of owning buffer to be owning")
	}

	cloned.Bytes()[0] = 99
	if buf.Bytes()[0] == 99 {
		t.Errorf("expected clone to be a deep copy")
	}
}

func TestCloneView(t *testing.T) {
	data := []byte{1, 2, 3, 4}
	buf := View(data)

	cloned := buf.Clone()
	if cloned.IsOwned() {
		t.Errorf("expected clone of a view to remain non-owning")
	}
}

func TestSliceBounds(t *testing.T) {
	buf := New(10)

	if _, ok := buf.Slice(2, 5); !ok {
		t.Errorf("expected in-bounds slice to succeed")
	}

	if _, ok := buf.Slice(2, 11); ok {
		t.Errorf("expected out-of-bounds slice to fail")
	}

	if _, ok := buf.Slice(5, 2); ok {
		t.Errorf("expected inverted range to fail")
	}
}
