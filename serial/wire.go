package serial

import "encoding/binary"

//============================================= Fixed-width wire helpers
//
// The core codecs write their own structural fields (header magic/version,
// counts, offsets) directly into a shared buffer rather than allocating a
// Buffer per field, following the teacher's serializeUint64/deserializeUint64
// helper-function style in Serialize.go. These are package-level functions,
// not ValueCodecs, because they write into an existing byte slice at a
// caller-chosen offset instead of allocating a new Buffer.

// PutUint64 writes v as 8 host-endian bytes at data[0:8].
func PutUint64(data []byte, v uint64) {
	binary.NativeEndian.PutUint64(data, v)
}

// GetUint64 reads 8 host-endian bytes from data[0:8].
func GetUint64(data []byte) uint64 {
	return binary.NativeEndian.Uint64(data)
}

// PutUint32 writes v as 4 host-endian bytes at data[0:4].
func PutUint32(data []byte, v uint32) {
	binary.NativeEndian.PutUint32(data, v)
}

// GetUint32 reads 4 host-endian bytes from data[0:4].
func GetUint32(data []byte) uint32 {
	return binary.NativeEndian.Uint32(data)
}
