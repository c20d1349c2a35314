package serial

import "fmt"

//============================================= Codec error taxonomy


// ErrorKind enumerates the closed set of serialization failure kinds from §7.
type ErrorKind int

const (
	// NoSerializableData is a precondition failure: the encoder was asked to emit
	//	from an object that has nothing encodable.
	NoSerializableData ErrorKind = iota
	// NoDeserializableData means the decoder was handed an empty buffer.
	NoDeserializableData
	// SerializableDataCorrupted means a nested codec reported an encode failure.
	SerializableDataCorrupted
	// DeserializableDataCorrupted means magic, version, or internal offsets failed
	//	validation, or a length-prefixed field would read past the buffer end.
	DeserializableDataCorrupted
	// NoNamespace means a multi-namespace container was asked for a namespace it
	//	does not hold.
	NoNamespace
)

func (k ErrorKind) String() string {
	switch k {
	case NoSerializableData:
		return "NO_SERIALIZABLE_DATA"
	case NoDeserializableData:
		return "NO_DESERIALIZABLE_DATA"
	case SerializableDataCorrupted:
		return "SERIALIZABLE_DATA_CORRUPTED"
	case DeserializableDataCorrupted:
		return "DESERIALIZABLE_DATA_CORRUPTED"
	case NoNamespace:
		return "NO_NAMESPACE"
	default:
		return "UNKNOWN_SERIALIZABLE_ERROR"
	}
}

// Error is the codec-boundary error value. It is returned, never panicked,
//	across every Serialize/Deserialize call per §7's propagation rule.
type Error struct {
	Kind ErrorKind
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Is supports errors.Is(err, serial.ErrDeserializableDataCorrupted) style comparisons against
//	the sentinel values below, keyed only on Kind.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

// New constructs a codec Error of the given kind with a formatted message.
func New(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Sentinel values for errors.Is comparisons; Msg is irrelevant to equality.
var (
	ErrNoSerializableData       = &Error{Kind: NoSerializableData}
	ErrNoDeserializableData     = &Error{Kind: NoDeserializableData}
	ErrSerializableDataCorrupted   = &Error{Kind: SerializableDataCorrupted}
	ErrDeserializableDataCorrupted = &Error{Kind: DeserializableDataCorrupted}
	ErrNoNamespace              = &Error{Kind: NoNamespace}
)
