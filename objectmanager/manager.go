// Package objectmanager binds a single serializable object to a file path
// backed by a memory mapped region, per §4.4. The shape -- construct with a
// path, Save asks the object for its size then maps exactly that many bytes,
// Load maps the whole file and decodes a fresh value -- follows the
// teacher's (sirgallo/mari) Mari.Open/mMap/munmap lifecycle, narrowed to a
// single object, single mapping-per-call discipline instead of mari's
// resizable, concurrent, versioned B+tree file.
package objectmanager

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/lost-ferry/ferry-db/buffer"
	"github.com/lost-ferry/ferry-db/mmap"
	"github.com/lost-ferry/ferry-db/serial"
)

// Manager binds a serial.Codec-capable object of type T to a file path. T is
//	itself the handle type a caller mutates (e.g. *graph.Graph[ID, Data,
//	Weight] or *table.Table[Index]) rather than a bare value type, because
//	FerryDB's graph and table codecs carry per-instance state -- the
//	ValueCodecs their ID/Data/Weight type parameters were constructed with --
//	that a zero value can't reconstruct on its own. new is called to produce
//	a freshly wired, empty T before Load decodes into it.
//
//	At most one Save and at most one Load are in flight per Manager
//	instance, and the mapped region never outlives the call that created it,
//	per the invariants in §4.4/§5.
type Manager[T serial.Codec] struct {
	path   string
	new    func() T
	logger zerolog.Logger
}

// Option configures a Manager at construction time.
type Option[T serial.Codec] func(*Manager[T])

// WithLogger attaches a zerolog.Logger for debug-level tracing of the start
//	of each Save and Load, the point where the region is mapped and
//	encode/decode begins, and the completion of the call. Without this option the
//	Manager logs nothing (a disabled logger), matching a library default.
func WithLogger[T serial.Codec](logger zerolog.Logger) Option[T] {
	return func(m *Manager[T]) {
		m.logger = logger
	}
}

// New constructs a Manager bound to path. newObj must return a freshly
//	constructed, empty T ready to have Deserialize called on it -- for a
//	graph.Graph or table.Table this is the same constructor the caller used
//	to build the object being saved, e.g. `func() *graph.Graph[int, string,
//	int] { return graph.New(idCodec, dataCodec, weightCodec) }`. Construction
//	never touches the file system, per §4.4.
func New[T serial.Codec](path string, newObj func() T, opts ...Option[T]) *Manager[T] {
	m := &Manager[T]{
		path:   path,
		new:    newObj,
		logger: zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Save asks obj for its SerializedSize, opens the file for read-write,
//	truncates it to exactly that size, maps the region, invokes obj's
//	Serialize, and copies the produced bytes into the mapped region.
//
//	The file is truncated to size before it is mapped, so if mapping fails
//	the file is left at the new length; obj is not mutated. If Serialize
//	returns an error, the mapped region is released without meaningful
//	content and the error is surfaced.
func (m *Manager[T]) Save(obj T) error {
	size := obj.SerializedSize()

	m.logger.Debug().Str("path", m.path).Uint64("size", size).Msg("objectmanager: save starting")

	file, err := os.OpenFile(m.path, os.O_RDWR|os.O_CREATE, 0600)
	if err != nil {
		return &IOError{Op: "open", Path: m.path, Err: err}
	}
	defer file.Close()

	if err := file.Truncate(int64(size)); err != nil {
		return &IOError{Op: "truncate", Path: m.path, Err: err}
	}

	if size == 0 {
		m.logger.Debug().Str("path", m.path).Msg("objectmanager: save wrote empty object")
		return nil
	}

	region, err := mmap.Map(file, mmap.RDWR, int(size))
	if err != nil {
		return &IOError{Op: "mmap", Path: m.path, Err: err}
	}
	defer region.Unmap()

	m.logger.Debug().Str("path", m.path).Msg("objectmanager: region mapped, encoding")

	encoded, err := obj.Serialize()
	if err != nil {
		return fmt.Errorf("objectmanager: serialize failed: %w", err)
	}

	if encoded.Len() != size {
		return fmt.Errorf("objectmanager: serialize produced %d bytes, expected %d", encoded.Len(), size)
	}

	copy(region, encoded.Bytes())

	if err := region.Flush(); err != nil {
		return &IOError{Op: "flush", Path: m.path, Err: err}
	}

	m.logger.Debug().Str("path", m.path).Msg("objectmanager: save complete")
	return nil
}

// Load opens the file for read-only, maps the entire file, constructs a
//	non-owning Buffer over the mapped bytes, and invokes a freshly built T's
//	Deserialize. The returned object owns independent heap storage; the
//	mapped region is unmapped before Load returns, per §4.4.
//
//	If Deserialize returns an error, the file is left intact and a zero T is
//	returned alongside the error, per §7's "failed load returns no partial
//	graph".
func (m *Manager[T]) Load() (T, error) {
	var zero T

	m.logger.Debug().Str("path", m.path).Msg("objectmanager: load starting")

	file, err := os.OpenFile(m.path, os.O_RDONLY, 0600)
	if err != nil {
		return zero, &IOError{Op: "open", Path: m.path, Err: err}
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return zero, &IOError{Op: "stat", Path: m.path, Err: err}
	}

	size := int(stat.Size())
	if size == 0 {
		return zero, serial.ErrNoDeserializableData
	}

	region, err := mmap.Map(file, mmap.RDONLY, size)
	if err != nil {
		return zero, &IOError{Op: "mmap", Path: m.path, Err: err}
	}
	defer region.Unmap()

	m.logger.Debug().Str("path", m.path).Int("size", size).Msg("objectmanager: region mapped, decoding")

	view := buffer.View([]byte(region))

	obj := m.new()
	if err := obj.Deserialize(view); err != nil {
		return zero, err
	}

	m.logger.Debug().Str("path", m.path).Msg("objectmanager: load complete")
	return obj, nil
}
