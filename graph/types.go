// Package graph implements the weighted, directed, vertex-identified graph
// of §3/§4.2: a single-namespace structure over three relations
// (VertexByExternal, VertexSlotTable, EdgeAdjacency) and its binary codec.
//
// The dense-slot indirection -- an external, caller-chosen VertexID mapped
// to a monotonically assigned internal slot, with edges keyed by slot pairs
// -- is the "arena + index" pattern described in §9, carried over from the
// teacher's (sirgallo/mari) StartOffset/EndOffset arena addressing even
// though this package's arena indexes an in-memory map of vertices rather
// than byte offsets in a memory mapped trie.
package graph

import "github.com/lost-ferry/ferry-db/serial"

// Neighbor is a (VertexID, VertexData) pair returned by Outbound/Inbound.
type Neighbor[ID any, Data any] struct {
	ID   ID
	Data Data
}

// vertexEntry is the VertexSlotTable payload: a (slot, VertexID, VertexData)
//	triple per §3.
type vertexEntry[ID any, Data any] struct {
	slot uint64
	id   ID
	data Data
}

// edgeEntry is a single EdgeAdjacency member: (edge-slot, source-slot,
//	dest-slot, weight) per §3. Edge identity within an adjacency set is the
//	(source-slot, dest-slot) pair.
type edgeEntry[Weight any] struct {
	id         uint64
	sourceSlot uint64
	destSlot   uint64
	weight     Weight
}

// Graph is a weighted directed graph keyed by user-supplied VertexIDs.
//	ID, Data, and Weight are each independently serializable via the
//	ValueCodec supplied at construction, per §4.1's nesting allowance.
type Graph[ID comparable, Data any, Weight any] struct {
	idCodec     serial.ValueCodec[ID]
	dataCodec   serial.ValueCodec[Data]
	weightCodec serial.ValueCodec[Weight]

	nextSlot   uint64
	nextEdgeID uint64

	// externalIndex is VertexByExternal: external VertexID -> internal slot.
	externalIndex map[ID]uint64
	// vertices is VertexSlotTable: internal slot -> (slot, VertexID, VertexData).
	vertices map[uint64]*vertexEntry[ID, Data]
	// outAdj is EdgeAdjacency: source slot -> dest slot -> edge.
	outAdj map[uint64]map[uint64]*edgeEntry[Weight]
	// inAdj is a reverse index (dest slot -> source slot -> edge) maintained
	//	alongside outAdj so Inbound is O(degree) rather than O(V+E); see
	//	SPEC_FULL.md §4.2.
	inAdj map[uint64]map[uint64]*edgeEntry[Weight]
}

// New constructs an empty Graph, parameterized over the ValueCodec each of
//	ID, Data, and Weight uses for encode/decode.
func New[ID comparable, Data any, Weight any](
	idCodec serial.ValueCodec[ID],
	dataCodec serial.ValueCodec[Data],
	weightCodec serial.ValueCodec[Weight],
) *Graph[ID, Data, Weight] {
	return &Graph[ID, Data, Weight]{
		idCodec:       idCodec,
		dataCodec:     dataCodec,
		weightCodec:   weightCodec,
		externalIndex: make(map[ID]uint64),
		vertices:      make(map[uint64]*vertexEntry[ID, Data]),
		outAdj:        make(map[uint64]map[uint64]*edgeEntry[Weight]),
		inAdj:         make(map[uint64]map[uint64]*edgeEntry[Weight]),
	}
}
