package graph

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lost-ferry/ferry-db/serial"
)

func newIntGraph() *Graph[int64, int64, int64] {
	return New[int64, int64, int64](serial.Int64Codec(), serial.Int64Codec(), serial.Int64Codec())
}

// TestOperationSoundness covers property 6: after add_node(1,2);
// add_node(2,400); add_edge(1,2,w), edge_weight(1,2) == w and outbound(1)
// contains exactly one entry (2, 400).
func TestOperationSoundness(t *testing.T) {
	g := newIntGraph()
	r := require.New(t)

	r.NoError(g.AddNode(1, 2))
	r.NoError(g.AddNode(2, 400))
	r.NoError(g.AddEdge(1, 2, 100))

	weight, err := g.EdgeWeight(1, 2)
	r.NoError(err)
	r.Equal(int64(100), weight)

	outbound, err := g.Outbound(1)
	r.NoError(err)
	r.Len(outbound, 1)
	r.Equal(int64(2), outbound[0].ID)
	r.Equal(int64(400), outbound[0].Data)
}

// TestS1GraphRoundTrip covers scenario S1's in-memory assertions (the
// save/load half is covered in objectmanager/manager_test.go since it needs
// an ObjectManager).
func TestS1GraphRoundTrip(t *testing.T) {
	g := buildS1Graph(t)
	assertS1Invariants(t, g)
}

func buildS1Graph(t *testing.T) *Graph[int64, int64, int64] {
	t.Helper()

	g := newIntGraph()
	r := require.New(t)

	r.NoError(g.AddNode(1, 2))
	r.NoError(g.AddNode(2, 400))
	r.NoError(g.AddNode(3, 600))
	r.NoError(g.AddEdge(1, 2, 100))
	r.NoError(g.AddEdge(1, 3, 200))
	r.NoError(g.UpdateWeight(1, 2, 300))

	return g
}

func assertS1Invariants(t *testing.T, g *Graph[int64, int64, int64]) {
	t.Helper()
	r := require.New(t)

	data1, err := g.Get(1)
	r.NoError(err)
	r.Equal(int64(2), data1)

	data2, err := g.Get(2)
	r.NoError(err)
	r.Equal(int64(400), data2)

	data3, err := g.Get(3)
	r.NoError(err)
	r.Equal(int64(600), data3)

	weight, err := g.EdgeWeight(1, 2)
	r.NoError(err)
	r.Equal(int64(300), weight)

	outbound, err := g.Outbound(1)
	r.NoError(err)
	r.Len(outbound, 2)

	inbound, err := g.Inbound(2)
	r.NoError(err)
	r.Len(inbound, 1)
}

// TestS3EmptyGraph covers scenario S3.
func TestS3EmptyGraph(t *testing.T) {
	g := newIntGraph()
	r := require.New(t)

	expected := uint64(headerSize + idMapHeaderSize)
	r.Equal(expected, g.SerializedSize())

	buf, err := g.Serialize()
	r.NoError(err)
	r.Equal(expected, buf.Len())

	decoded := newIntGraph()
	r.NoError(decoded.Deserialize(buf))
	r.Empty(decoded.vertices)
}

// TestS4DuplicateID covers scenario S4.
func TestS4DuplicateID(t *testing.T) {
	g := newIntGraph()
	r := require.New(t)

	r.NoError(g.AddNode(1, 10))

	err := g.AddNode(1, 20)
	r.Error(err)

	var argErr *ArgumentError
	r.True(errors.As(err, &argErr))
	r.Equal(DuplicateID, argErr.Kind)

	data, getErr := g.Get(1)
	r.NoError(getErr)
	r.Equal(int64(10), data)
}

// TestS5UnknownEndpoint covers scenario S5.
func TestS5UnknownEndpoint(t *testing.T) {
	g := newIntGraph()
	r := require.New(t)

	r.NoError(g.AddNode(1, 10))

	err := g.AddEdge(1, 99, 5)
	r.Error(err)

	var argErr *ArgumentError
	r.True(errors.As(err, &argErr))
	r.Equal(UnknownID, argErr.Kind)

	outbound, outErr := g.Outbound(1)
	r.NoError(outErr)
	r.Empty(outbound)
}

// TestS6Delete covers scenario S6.
func TestS6Delete(t *testing.T) {
	g := buildS1Graph(t)
	r := require.New(t)

	r.NoError(g.DeleteNode(2))

	outbound, err := g.Outbound(1)
	r.NoError(err)
	r.Len(outbound, 1)
	r.Equal(int64(3), outbound[0].ID)
	r.Equal(int64(600), outbound[0].Data)

	_, err = g.Inbound(2)
	r.Error(err)

	var argErr *ArgumentError
	r.True(errors.As(err, &argErr))
	r.Equal(UnknownID, argErr.Kind)
}

func TestDeleteEdgeRemovesFromLiveSet(t *testing.T) {
	g := newIntGraph()
	r := require.New(t)

	r.NoError(g.AddNode(1, 1))
	r.NoError(g.AddNode(2, 2))
	r.NoError(g.AddEdge(1, 2, 9))

	r.NoError(g.DeleteEdge(1, 2))

	outbound, err := g.Outbound(1)
	r.NoError(err)
	r.Empty(outbound)

	inbound, err := g.Inbound(2)
	r.NoError(err)
	r.Empty(inbound)

	_, err = g.EdgeWeight(1, 2)
	r.Error(err)
}

func TestAddEdgeIdempotentOnDuplicatePair(t *testing.T) {
	g := newIntGraph()
	r := require.New(t)

	r.NoError(g.AddNode(1, 1))
	r.NoError(g.AddNode(2, 2))
	r.NoError(g.AddEdge(1, 2, 5))
	r.NoError(g.AddEdge(1, 2, 999))

	weight, err := g.EdgeWeight(1, 2)
	r.NoError(err)
	r.Equal(int64(5), weight)
}
