package buffer

//============================================= SerializedBuffer


// Buffer is a handle over a contiguous byte region of known length.
//	It is either owning (heap allocated, zeroed on construction) or a view over bytes
//	it does not own, such as a memory mapped region. The distinction only matters at
//	release time: codecs treat every Buffer the same, as "some bytes of known length".
type Buffer struct {
	data  []byte
	owned bool
}

// New allocates a zero initialized owning Buffer of the given length.
func New(length uint64) *Buffer {
	return &Buffer{
		data:  make([]byte, length),
		owned: true,
	}
}

// View wraps externally owned bytes, such as a memory mapped region, without copying.
//	The returned Buffer does not free data on Release.
func View(data []byte) *Buffer {
	return &Buffer{
		data:  data,
		owned: false,
	}
}

// Len returns the buffer's byte length.
func (b *Buffer) Len() uint64 {
	if b == nil {
		return 0
	}
	return uint64(len(b.data))
}

// Bytes returns the underlying byte slice. Callers must not retain it past the
//	scope in which the Buffer itself is valid.
func (b *Buffer) Bytes() []byte {
	if b == nil {
		return nil
	}
	return b.data
}

// IsOwned reports whether the Buffer owns its backing storage.
func (b *Buffer) IsOwned() bool {
	return b != nil && b.owned
}

// Clone deep copies an owning Buffer's data; a non-owning view clones as a
//	non-owning view over the same bytes, matching the copy semantics in §4.5.
func (b *Buffer) Clone() *Buffer {
	if b == nil {
		return nil
	}

	if !b.owned {
		return View(b.data)
	}

	cloned := make([]byte, len(b.data))
	copy(cloned, b.data)

	return &Buffer{data: cloned, owned: true}
}

// Slice returns a view over b's bytes in [start, end). The returned Buffer is
//	always non-owning, regardless of b's ownership.
func (b *Buffer) Slice(start, end uint64) (*Buffer, bool) {
	if b == nil || end < start || end > uint64(len(b.data)) {
		return nil, false
	}

	return View(b.data[start:end]), true
}

// Release marks the Buffer as no longer in use by dropping its reference to
//	the bytes, so Len reports 0 afterwards. Owned storage is left to the
//	garbage collector, and a view never frees or unmaps the region it wraps
//	(e.g. a memory mapped file), mirroring the scoped mmap/SerializedBuffer
//	lifetime in §5.
func (b *Buffer) Release() {
	if b == nil {
		return
	}

	b.data = nil
}
