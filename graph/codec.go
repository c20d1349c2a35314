package graph

import (
	"github.com/lost-ferry/ferry-db/buffer"
	"github.com/lost-ferry/ferry-db/serial"
)

//============================================= Graph binary format (§4.2)
//
// [ GraphHeader ] [ VertexRegion ] [ EdgeRegion ] [ IdMapRegion ]

const (
	headerSize = 56

	headerMagicOffset             = 0
	headerVersionOffset           = 8
	headerVertexCountOffset       = 16
	headerVertexRegionStartOffset = 24
	headerEdgeCountOffset         = 32
	headerEdgeRegionStartOffset   = 40
	headerIdMapRegionStartOffset  = 48

	vertexHeaderSize = 32
	edgeHeaderSize   = 40
	idMapHeaderSize  = 8

	// idMapSlotSize is the width of the slot field inside an IdMapRegion
	// entry: 4 bytes, per §4.2, distinct from the 8-byte slot everywhere
	// else in the format.
	idMapSlotSize = 4
)

// SerializedSize computes the exact byte length Serialize will produce,
//	without mutating the graph, per §4.2's "Size computation".
func (g *Graph[ID, Data, Weight]) SerializedSize() uint64 {
	size := uint64(headerSize)

	for _, v := range g.vertices {
		size += vertexHeaderSize + g.idCodec.Size(v.id) + g.dataCodec.Size(v.data)
	}

	for _, byDest := range g.outAdj {
		for _, e := range byDest {
			size += edgeHeaderSize + 16 + g.weightCodec.Size(e.weight)
		}
	}

	size += idMapHeaderSize
	for _, v := range g.vertices {
		size += g.idCodec.Size(v.id) + idMapSlotSize + 16
	}

	return size
}

// Serialize encodes the graph per the six-step algorithm in §4.2: allocate
//	the exact-size buffer, write the vertex region, write the edge region,
//	write the id-map region, then backfill the header with the now-known
//	region offsets.
func (g *Graph[ID, Data, Weight]) Serialize() (*buffer.Buffer, error) {
	size := g.SerializedSize()
	buf := g.serializeEmpty(size)
	if buf != nil {
		return buf, nil
	}

	out := buffer.New(size)
	data := out.Bytes()

	vertexCount := uint64(len(g.vertices))
	cursor := uint64(headerSize)

	type payload struct {
		id     ID
		offset uint64
		size   uint64
	}
	payloads := make([]payload, 0, vertexCount)

	for _, v := range g.vertices {
		idBuf, err := g.idCodec.Encode(v.id)
		if err != nil {
			return nil, serial.New(serial.SerializableDataCorrupted, "encoding vertex id: %v", err)
		}

		dataBuf, err := g.dataCodec.Encode(v.data)
		if err != nil {
			return nil, serial.New(serial.SerializableDataCorrupted, "encoding vertex data: %v", err)
		}

		idSize := idBuf.Len()
		dataSize := dataBuf.Len()

		entryStart := cursor
		idOffsetRel := uint64(vertexHeaderSize)
		dataOffsetRel := idOffsetRel + idSize

		serial.PutUint64(data[entryStart:], v.slot)
		serial.PutUint64(data[entryStart+8:], idOffsetRel)
		serial.PutUint64(data[entryStart+16:], dataOffsetRel)
		serial.PutUint64(data[entryStart+24:], dataSize)

		copy(data[entryStart+idOffsetRel:], idBuf.Bytes())
		copy(data[entryStart+dataOffsetRel:], dataBuf.Bytes())

		payloads = append(payloads, payload{
			id:     v.id,
			offset: entryStart + idOffsetRel,
			size:   idSize + dataSize,
		})

		cursor = entryStart + dataOffsetRel + dataSize
	}

	edgeRegionStart := cursor
	edgeCount := uint64(0)

	for _, byDest := range g.outAdj {
		for _, e := range byDest {
			weightBuf, err := g.weightCodec.Encode(e.weight)
			if err != nil {
				return nil, serial.New(serial.SerializableDataCorrupted, "encoding edge weight: %v", err)
			}
			weightSize := weightBuf.Len()

			entryStart := cursor
			srcOffsetRel := uint64(edgeHeaderSize)
			destOffsetRel := srcOffsetRel + 8
			weightOffsetRel := destOffsetRel + 8

			serial.PutUint64(data[entryStart:], e.id)
			serial.PutUint64(data[entryStart+8:], srcOffsetRel)
			serial.PutUint64(data[entryStart+16:], destOffsetRel)
			serial.PutUint64(data[entryStart+24:], weightOffsetRel)
			serial.PutUint64(data[entryStart+32:], weightSize)

			serial.PutUint64(data[entryStart+srcOffsetRel:], e.sourceSlot)
			serial.PutUint64(data[entryStart+destOffsetRel:], e.destSlot)
			copy(data[entryStart+weightOffsetRel:], weightBuf.Bytes())

			cursor = entryStart + weightOffsetRel + weightSize
			edgeCount++
		}
	}

	idMapRegionStart := cursor
	idMapPayloadStart := idMapRegionStart + idMapHeaderSize
	idMapCursor := idMapPayloadStart

	for _, p := range payloads {
		idBuf, err := g.idCodec.Encode(p.id)
		if err != nil {
			return nil, serial.New(serial.SerializableDataCorrupted, "encoding vertex id for id map: %v", err)
		}

		copy(data[idMapCursor:], idBuf.Bytes())
		idMapCursor += idBuf.Len()

		slot := g.externalIndex[p.id]
		serial.PutUint32(data[idMapCursor:], uint32(slot))
		idMapCursor += idMapSlotSize

		serial.PutUint64(data[idMapCursor:], p.offset)
		idMapCursor += 8

		serial.PutUint64(data[idMapCursor:], p.size)
		idMapCursor += 8
	}

	idMapPayloadBytes := idMapCursor - idMapPayloadStart
	serial.PutUint64(data[idMapRegionStart:], idMapPayloadBytes)

	serial.PutUint64(data[headerMagicOffset:], serial.WeightedGraphMagic)
	serial.PutUint64(data[headerVersionOffset:], serial.LayoutVersion1)
	serial.PutUint64(data[headerVertexCountOffset:], vertexCount)
	serial.PutUint64(data[headerVertexRegionStartOffset:], headerSize)
	serial.PutUint64(data[headerEdgeCountOffset:], edgeCount)
	serial.PutUint64(data[headerEdgeRegionStartOffset:], edgeRegionStart)
	serial.PutUint64(data[headerIdMapRegionStartOffset:], idMapRegionStart)

	return out, nil
}

// serializeEmpty handles the degenerate but valid empty-graph encoding of
//	§4.2's edge case policy directly, since the general path below still
//	produces the correct result for an empty graph -- this helper exists
//	only to make that edge case explicit and independently testable.
func (g *Graph[ID, Data, Weight]) serializeEmpty(size uint64) *buffer.Buffer {
	if len(g.vertices) != 0 {
		return nil
	}

	out := buffer.New(size)
	data := out.Bytes()

	serial.PutUint64(data[headerMagicOffset:], serial.WeightedGraphMagic)
	serial.PutUint64(data[headerVersionOffset:], serial.LayoutVersion1)
	serial.PutUint64(data[headerVertexCountOffset:], 0)
	serial.PutUint64(data[headerVertexRegionStartOffset:], headerSize)
	serial.PutUint64(data[headerEdgeCountOffset:], 0)
	serial.PutUint64(data[headerEdgeRegionStartOffset:], headerSize)
	serial.PutUint64(data[headerIdMapRegionStartOffset:], headerSize)
	// IdMapHeader.size = 0 at offset headerSize, per the empty-graph policy.
	serial.PutUint64(data[headerSize:], 0)

	return out
}

// Deserialize reconstructs a graph from buf per §4.2's decode algorithm. It
//	validates magic and version, reads the vertex and edge regions to
//	rebuild VertexSlotTable/VertexByExternal/EdgeAdjacency, and validates
//	(without requiring) the IdMapRegion's declared length.
func (g *Graph[ID, Data, Weight]) Deserialize(buf *buffer.Buffer) error {
	if buf.Len() == 0 {
		return serial.ErrNoDeserializableData
	}

	if buf.Len() < headerSize {
		return serial.New(serial.DeserializableDataCorrupted, "buffer too short for graph header: %d bytes", buf.Len())
	}

	data := buf.Bytes()

	magic := serial.GetUint64(data[headerMagicOffset:])
	if magic != serial.WeightedGraphMagic {
		return serial.New(serial.DeserializableDataCorrupted, "unexpected magic number %#x", magic)
	}

	version := serial.GetUint64(data[headerVersionOffset:])
	if version != serial.LayoutVersion1 {
		return serial.New(serial.DeserializableDataCorrupted, "unknown layout version %d", version)
	}

	vertexCount := serial.GetUint64(data[headerVertexCountOffset:])
	vertexRegionStart := serial.GetUint64(data[headerVertexRegionStartOffset:])
	edgeCount := serial.GetUint64(data[headerEdgeCountOffset:])
	edgeRegionStart := serial.GetUint64(data[headerEdgeRegionStartOffset:])
	idMapRegionStart := serial.GetUint64(data[headerIdMapRegionStartOffset:])

	if vertexRegionStart != headerSize {
		return serial.New(serial.DeserializableDataCorrupted, "vertex region start %d does not equal header size %d", vertexRegionStart, headerSize)
	}

	total := uint64(len(data))

	externalIndex := make(map[ID]uint64, vertexCount)
	vertices := make(map[uint64]*vertexEntry[ID, Data], vertexCount)
	outAdj := make(map[uint64]map[uint64]*edgeEntry[Weight], vertexCount)
	inAdj := make(map[uint64]map[uint64]*edgeEntry[Weight], vertexCount)

	cursor := vertexRegionStart
	var maxSlot uint64
	sawVertex := false

	for i := uint64(0); i < vertexCount; i++ {
		if cursor+vertexHeaderSize > total {
			return serial.New(serial.DeserializableDataCorrupted, "vertex header %d reads past buffer end", i)
		}

		slot := serial.GetUint64(data[cursor:])
		idOffsetRel := serial.GetUint64(data[cursor+8:])
		dataOffsetRel := serial.GetUint64(data[cursor+16:])
		dataLen := serial.GetUint64(data[cursor+24:])

		idStart := cursor + idOffsetRel
		idEnd := cursor + dataOffsetRel
		dataStart := idEnd
		dataEnd := dataStart + dataLen

		if idStart > idEnd || dataEnd > total {
			return serial.New(serial.DeserializableDataCorrupted, "vertex %d payload reads past buffer end", i)
		}

		idView, _ := buf.Slice(idStart, idEnd)
		id, err := g.idCodec.Decode(idView)
		if err != nil {
			return serial.New(serial.DeserializableDataCorrupted, "decoding vertex id: %v", err)
		}

		dataView, _ := buf.Slice(dataStart, dataEnd)
		vdata, err := g.dataCodec.Decode(dataView)
		if err != nil {
			return serial.New(serial.DeserializableDataCorrupted, "decoding vertex data: %v", err)
		}

		externalIndex[id] = slot
		vertices[slot] = &vertexEntry[ID, Data]{slot: slot, id: id, data: vdata}
		outAdj[slot] = make(map[uint64]*edgeEntry[Weight])
		inAdj[slot] = make(map[uint64]*edgeEntry[Weight])

		if !sawVertex || slot > maxSlot {
			maxSlot = slot
			sawVertex = true
		}

		cursor = dataEnd
	}

	if cursor != edgeRegionStart {
		return serial.New(serial.DeserializableDataCorrupted, "vertex region end %d does not match edge region start %d", cursor, edgeRegionStart)
	}

	cursor = edgeRegionStart
	var maxEdgeID uint64
	sawEdge := false

	for i := uint64(0); i < edgeCount; i++ {
		if cursor+edgeHeaderSize > total {
			return serial.New(serial.DeserializableDataCorrupted, "edge header %d reads past buffer end", i)
		}

		edgeID := serial.GetUint64(data[cursor:])
		srcOffsetRel := serial.GetUint64(data[cursor+8:])
		destOffsetRel := serial.GetUint64(data[cursor+16:])
		weightOffsetRel := serial.GetUint64(data[cursor+24:])
		weightLen := serial.GetUint64(data[cursor+32:])

		srcStart := cursor + srcOffsetRel
		destStart := cursor + destOffsetRel
		weightStart := cursor + weightOffsetRel
		weightEnd := weightStart + weightLen

		if weightEnd > total || srcStart+8 > total || destStart+8 > total {
			return serial.New(serial.DeserializableDataCorrupted, "edge %d payload reads past buffer end", i)
		}

		sourceSlot := serial.GetUint64(data[srcStart:])
		destSlot := serial.GetUint64(data[destStart:])

		if _, ok := vertices[sourceSlot]; !ok {
			return serial.New(serial.DeserializableDataCorrupted, "edge %d references unknown source slot %d", i, sourceSlot)
		}
		if _, ok := vertices[destSlot]; !ok {
			return serial.New(serial.DeserializableDataCorrupted, "edge %d references unknown dest slot %d", i, destSlot)
		}

		weightView, _ := buf.Slice(weightStart, weightEnd)
		weight, err := g.weightCodec.Decode(weightView)
		if err != nil {
			return serial.New(serial.DeserializableDataCorrupted, "decoding edge weight: %v", err)
		}

		e := &edgeEntry[Weight]{id: edgeID, sourceSlot: sourceSlot, destSlot: destSlot, weight: weight}
		outAdj[sourceSlot][destSlot] = e
		inAdj[destSlot][sourceSlot] = e

		if !sawEdge || edgeID > maxEdgeID {
			maxEdgeID = edgeID
			sawEdge = true
		}

		cursor = weightEnd
	}

	if cursor != idMapRegionStart {
		return serial.New(serial.DeserializableDataCorrupted, "edge region end %d does not match id map region start %d", cursor, idMapRegionStart)
	}

	if idMapRegionStart+idMapHeaderSize > total {
		return serial.New(serial.DeserializableDataCorrupted, "id map header reads past buffer end")
	}

	idMapPayloadBytes := serial.GetUint64(data[idMapRegionStart:])
	if idMapRegionStart+idMapHeaderSize+idMapPayloadBytes != total {
		return serial.New(serial.DeserializableDataCorrupted, "id map region length %d does not match buffer end", idMapPayloadBytes)
	}

	g.externalIndex = externalIndex
	g.vertices = vertices
	g.outAdj = outAdj
	g.inAdj = inAdj

	if sawVertex {
		g.nextSlot = maxSlot + 1
	} else {
		g.nextSlot = 0
	}

	if sawEdge {
		g.nextEdgeID = maxEdgeID + 1
	} else {
		g.nextEdgeID = 0
	}

	return nil
}
