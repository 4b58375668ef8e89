package utils

import "encoding/binary"

// WordLE loads a full 8 byte little-endian word from b.
func WordLE(b []byte) uint64 {
	return binary.LittleEndian.Uint64(b)
}

// PartialLE loads up to 7 bytes from b as the low bytes of a
// little-endian word, leaving the remaining bytes zero.
func PartialLE(b []byte) (x uint64) {
	for i, v := range b {
		x |= uint64(v) << (8 * uint(i))
	}
	return x
}

// PutWordLE stores x into b in little-endian order.
func PutWordLE(b []byte, x uint64) {
	binary.LittleEndian.PutUint64(b, x)
}
