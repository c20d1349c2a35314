package graph

//============================================= Graph operations


// AddNode inserts a new vertex identified by id, carrying data. Fails with a
//	DuplicateID ArgumentError if id is already present; the first binding
//	remains, per S4.
func (g *Graph[ID, Data, Weight]) AddNode(id ID, data Data) error {
	if _, exists := g.externalIndex[id]; exists {
		return newArgErr(DuplicateID, "%v", id)
	}

	slot := g.nextSlot
	g.nextSlot++

	g.externalIndex[id] = slot
	g.vertices[slot] = &vertexEntry[ID, Data]{slot: slot, id: id, data: data}
	g.outAdj[slot] = make(map[uint64]*edgeEntry[Weight])
	g.inAdj[slot] = make(map[uint64]*edgeEntry[Weight])

	return nil
}

// AddEdge inserts a directed edge from -> to with the given weight. Edge
//	identity is the (source-slot, dest-slot) pair: a second insertion with the
//	same pair is idempotent on the adjacency set, keeping the first
//	successful insertion's id and weight, per §3.
func (g *Graph[ID, Data, Weight]) AddEdge(from, to ID, weight Weight) error {
	sourceSlot, ok := g.externalIndex[from]
	if !ok {
		return newArgErr(UnknownID, "%v", from)
	}

	destSlot, ok := g.externalIndex[to]
	if !ok {
		return newArgErr(UnknownID, "%v", to)
	}

	if _, exists := g.outAdj[sourceSlot][destSlot]; exists {
		return nil
	}

	e := &edgeEntry[Weight]{
		id:         g.nextEdgeID,
		sourceSlot: sourceSlot,
		destSlot:   destSlot,
		weight:     weight,
	}
	g.nextEdgeID++

	g.outAdj[sourceSlot][destSlot] = e
	g.inAdj[destSlot][sourceSlot] = e

	return nil
}

// UpdateWeight changes the weight of the existing edge from -> to in place.
//	Fails with UnknownID if either endpoint is absent, or UnknownEdge if the
//	edge does not exist.
func (g *Graph[ID, Data, Weight]) UpdateWeight(from, to ID, weight Weight) error {
	e, err := g.findEdge(from, to)
	if err != nil {
		return err
	}

	e.weight = weight
	return nil
}

// EdgeWeight returns the weight of the edge from -> to.
func (g *Graph[ID, Data, Weight]) EdgeWeight(from, to ID) (Weight, error) {
	var zero Weight

	e, err := g.findEdge(from, to)
	if err != nil {
		return zero, err
	}

	return e.weight, nil
}

// Outbound returns every (id, data) pair reachable by a single outgoing edge
//	from id.
func (g *Graph[ID, Data, Weight]) Outbound(id ID) ([]Neighbor[ID, Data], error) {
	slot, ok := g.externalIndex[id]
	if !ok {
		return nil, newArgErr(UnknownID, "%v", id)
	}

	neighbors := make([]Neighbor[ID, Data], 0, len(g.outAdj[slot]))
	for destSlot := range g.outAdj[slot] {
		v := g.vertices[destSlot]
		neighbors = append(neighbors, Neighbor[ID, Data]{ID: v.id, Data: v.data})
	}

	return neighbors, nil
}

// Inbound returns every (id, data) pair with a single outgoing edge into id.
func (g *Graph[ID, Data, Weight]) Inbound(id ID) ([]Neighbor[ID, Data], error) {
	slot, ok := g.externalIndex[id]
	if !ok {
		return nil, newArgErr(UnknownID, "%v", id)
	}

	neighbors := make([]Neighbor[ID, Data], 0, len(g.inAdj[slot]))
	for sourceSlot := range g.inAdj[slot] {
		v := g.vertices[sourceSlot]
		neighbors = append(neighbors, Neighbor[ID, Data]{ID: v.id, Data: v.data})
	}

	return neighbors, nil
}

// DeleteEdge removes the edge from -> to from the live adjacency set. Earlier
//	drafts of the source this spec is derived from read the adjacency set by
//	value and erased from the local copy, so the edge was never actually
//	removed; this erases directly from outAdj/inAdj, the live sets, per the
//	resolution in §9.
func (g *Graph[ID, Data, Weight]) DeleteEdge(from, to ID) error {
	sourceSlot, ok := g.externalIndex[from]
	if !ok {
		return newArgErr(UnknownID, "%v", from)
	}

	destSlot, ok := g.externalIndex[to]
	if !ok {
		return newArgErr(UnknownID, "%v", to)
	}

	delete(g.outAdj[sourceSlot], destSlot)
	delete(g.inAdj[destSlot], sourceSlot)

	return nil
}

// DeleteNode removes id and every edge incident to it, in either direction.
func (g *Graph[ID, Data, Weight]) DeleteNode(id ID) error {
	slot, ok := g.externalIndex[id]
	if !ok {
		return newArgErr(UnknownID, "%v", id)
	}

	for destSlot := range g.outAdj[slot] {
		delete(g.inAdj[destSlot], slot)
	}

	for sourceSlot := range g.inAdj[slot] {
		delete(g.outAdj[sourceSlot], slot)
	}

	delete(g.outAdj, slot)
	delete(g.inAdj, slot)
	delete(g.vertices, slot)
	delete(g.externalIndex, id)

	return nil
}

// Get returns the VertexData stored for id.
func (g *Graph[ID, Data, Weight]) Get(id ID) (Data, error) {
	var zero Data

	slot, ok := g.externalIndex[id]
	if !ok {
		return zero, newArgErr(UnknownID, "%v", id)
	}

	return g.vertices[slot].data, nil
}

func (g *Graph[ID, Data, Weight]) findEdge(from, to ID) (*edgeEntry[Weight], error) {
	sourceSlot, ok := g.externalIndex[from]
	if !ok {
		return nil, newArgErr(UnknownID, "%v", from)
	}

	destSlot, ok := g.externalIndex[to]
	if !ok {
		return nil, newArgErr(UnknownID, "%v", to)
	}

	e, ok := g.outAdj[sourceSlot][destSlot]
	if !ok {
		return nil, newArgErr(UnknownEdge, "%v -> %v", from, to)
	}

	return e, nil
}
