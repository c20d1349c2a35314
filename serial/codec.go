package serial

import "github.com/lost-ferry/ferry-db/buffer"

//============================================= Codec contract


// Sizer reports the exact byte length a type's Serialize call will produce,
//	without mutating the receiver. serialized_size() in §4.1.
type Sizer interface {
	SerializedSize() uint64
}

// Encoder produces a Buffer of exactly SerializedSize() bytes, or a codec Error.
type Encoder interface {
	Sizer
	Serialize() (*buffer.Buffer, error)
}

// Decoder reconstructs a value from a Buffer in place, or returns a codec Error.
//	Implementations are expected on a pointer receiver so the zero value can be
//	decoded into, the idiomatic Go stand-in for the third serializability rule's
//	"deserialize(buffer) -> T | SerError".
type Decoder interface {
	Deserialize(buf *buffer.Buffer) error
}

// Codec is the full capability set a user type exposes to opt in to
//	serializability by the third rule of §4.1.
type Codec interface {
	Encoder
	Decoder
}

// ValueCodec is the capability FerryDB's generic containers require of their
//	type parameters: either a built-in primitive codec (see primitives.go) or a
//	Struct-wrapped user Codec implementation. Containers are built against this
//	interface rather than against Codec directly because Go generics cannot
//	switch on a type parameter's underlying kind at compile time -- ValueCodec
//	is supplied explicitly at construction instead.
type ValueCodec[T any] interface {
	// Size reports the serialized byte length of v.
	Size(v T) uint64
	// Encode serializes v into a Buffer.
	Encode(v T) (*buffer.Buffer, error)
	// Decode reconstructs a T from the front of buf.
	Decode(buf *buffer.Buffer) (T, error)
}

// PtrCodec constrains a pointer type *T to implement Codec, enabling the
//	pointer-type-parameter generics pattern used by Struct below.
type PtrCodec[T any] interface {
	*T
	Codec
}

// structCodec adapts any type T whose pointer implements Codec into a
//	ValueCodec[T], so user-defined serializable types can be used as graph
//	vertex ids/data or edge weights, or as table row values, per §4.1's
//	nesting allowance ("this allows nesting").
type structCodec[T any, PT PtrCodec[T]] struct{}

// Struct returns a ValueCodec[T] for any T whose pointer type implements Codec.
func Struct[T any, PT PtrCodec[T]]() ValueCodec[T] {
	return structCodec[T, PT]{}
}

func (structCodec[T, PT]) Size(v T) uint64 {
	pv := PT(&v)
	return pv.SerializedSize()
}

func (structCodec[T, PT]) Encode(v T) (*buffer.Buffer, error) {
	pv := PT(&v)
	return pv.Serialize()
}

func (structCodec[T, PT]) Decode(buf *buffer.Buffer) (T, error) {
	var v T
	pv := PT(&v)
	if err := pv.Deserialize(buf); err != nil {
		return v, err
	}
	return v, nil
}
