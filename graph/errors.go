package graph

import "fmt"

// ArgumentErrorKind enumerates the invalid-argument conditions orthogonal to
//	the serial.Error codec taxonomy, per §7: "Invalid-argument conditions ...
//	are surfaced as a distinct failure kind ... the core never retries them."
type ArgumentErrorKind int

const (
	// DuplicateID: add_node called with an id already present.
	DuplicateID ArgumentErrorKind = iota
	// UnknownID: an operation referenced a VertexID not present in the graph.
	UnknownID
	// UnknownEdge: an operation referenced an edge that does not exist.
	UnknownEdge
)

func (k ArgumentErrorKind) String() string {
	switch k {
	case DuplicateID:
		return "duplicate id"
	case UnknownID:
		return "unknown id"
	case UnknownEdge:
		return "unknown edge"
	default:
		return "unknown argument error"
	}
}

// ArgumentError reports a caller fault (duplicate id, missing endpoint,
//	unknown edge) as distinct from a codec serial.Error.
type ArgumentError struct {
	Kind ArgumentErrorKind
	Msg  string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("graph: %s: %s", e.Kind, e.Msg)
}

func (e *ArgumentError) Is(target error) bool {
	other, ok := target.(*ArgumentError)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

func newArgErr(kind ArgumentErrorKind, format string, args ...any) *ArgumentError {
	return &ArgumentError{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}
