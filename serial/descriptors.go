package serial

//============================================= Object kind descriptors
//
// Magic numbers identify the object kind encoded at the start of a file, per
// §6. WeightedGraphMagic is named in spec.md directly; IndexedTableMagic is
// recovered from original_source/include/IndexedTableDescription.h's
// IndexedTableSerializerTags::INDEXED_TABLE enumerator, since spec.md never
// assigns the table format its own magic even though it describes one.

const (
	// WeightedGraphMagic identifies a serialized single-graph object.
	WeightedGraphMagic uint64 = 0x57475248
	// IndexedTableMagic identifies a serialized table object.
	IndexedTableMagic uint64 = 0x49445442
)

// LayoutVersion1 is the only layout version this package understands. A
//	reader must reject any file whose version is unknown, per §6.
const LayoutVersion1 uint64 = 1

// FieldSize is the byte width of every fixed-width numeric field the core
//	codecs write directly (counts, offsets, magic numbers), per §4.1.
const FieldSize = 8
