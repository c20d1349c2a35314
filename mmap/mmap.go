// Package mmap binds an os.File to a memory mapped region, the primitive
// objectmanager.Manager uses to back a single save/load call with shared
// memory. The API shape -- a byte-slice MMap type with Map/Unmap/Flush -- is
// carried over from the teacher's (sirgallo/mari) IOUtils.go call sites.
package mmap

import "os"

// Prot is the protection mode a region is mapped with.
type Prot int

const (
	// RDONLY maps the memory read-only. Writes to the MMap will panic.
	RDONLY Prot = iota
	// RDWR maps the memory as read-write. Writes update the underlying file.
	RDWR
)

// MMap is the byte-slice view of a memory mapped file region.
type MMap []byte

// Flush synchronizes the mapped region's contents back to the underlying file.
func (m MMap) Flush() error {
	return flush(m)
}

// Unmap releases the mapped region. The MMap must not be used after Unmap returns.
func (m MMap) Unmap() error {
	return unmap(m)
}

// Map maps length bytes of f starting at offset 0 under the given protection.
//	length must equal the exact region the caller intends to read or write; §4.4
//	and §5 require the mapped region be scoped to a single save or load call.
func Map(f *os.File, prot Prot, length int) (MMap, error) {
	return mmap(f, prot, length)
}
