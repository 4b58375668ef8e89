package siphash

import (
	"github.com/pkg/errors"

	"github.com/zeebo/siphash/internal/consts"
	"github.com/zeebo/siphash/internal/utils"
)

const (
	// Size is the number of bytes in a 64 bit digest.
	Size = 8

	// Size128 is the number of bytes in a 128 bit digest.
	Size128 = 16

	// KeySize is the number of bytes in a key.
	KeySize = consts.KeySize

	// BlockSize is the underlying block size of the hash in bytes.
	BlockSize = consts.BlockSize
)

// Hasher is a hash.Hash64 computing SipHash-2-4. It accumulates bytes
// from any number of Write calls and produces the same digest no matter
// how the input was chunked.
//
// Hasher deliberately exposes only byte oriented writes: convenience
// writers for fixed width integers hash differently depending on host
// byte order, and the whole point of a keyed portable hash is that the
// output is the same everywhere.
type Hasher struct {
	h hasher
}

// New returns a Hasher computing SipHash-2-4 with an all zero key. Use
// a keyed constructor when hashing input an adversary may control.
func New() *Hasher {
	return NewKeys(0, 0)
}

// NewKeyed returns a Hasher computing SipHash-2-4 under the given
// 16 byte key. It errors if the key is not exactly 16 bytes: silently
// truncating or padding would produce digests no other implementation
// agrees with.
func NewKeyed(key []byte) (*Hasher, error) {
	k0, k1, err := splitKey(key)
	if err != nil {
		return nil, err
	}
	return NewKeys(k0, k1), nil
}

// NewKeys returns a Hasher computing SipHash-2-4 under the key words
// (k0, k1). It is equivalent to NewKeyed with k0 as the first 8 key
// bytes in little-endian order and k1 as the last 8.
func NewKeys(k0, k1 uint64) *Hasher {
	return &Hasher{h: newHasher(k0, k1, consts.CRounds24, consts.DRounds24)}
}

// New13 returns a Hasher computing SipHash-1-3 with an all zero key.
func New13() *Hasher {
	return NewKeys13(0, 0)
}

// NewKeyed13 returns a Hasher computing SipHash-1-3 under the given
// 16 byte key.
func NewKeyed13(key []byte) (*Hasher, error) {
	k0, k1, err := splitKey(key)
	if err != nil {
		return nil, err
	}
	return NewKeys13(k0, k1), nil
}

// NewKeys13 returns a Hasher computing SipHash-1-3 under the key words
// (k0, k1).
func NewKeys13(k0, k1 uint64) *Hasher {
	return &Hasher{h: newHasher(k0, k1, consts.CRounds13, consts.DRounds13)}
}

func splitKey(key []byte) (k0, k1 uint64, err error) {
	if len(key) != KeySize {
		return 0, 0, errors.Errorf("invalid key size: %d", len(key))
	}
	return utils.WordLE(key[0:8]), utils.WordLE(key[8:16]), nil
}

// Write implements part of the hash.Hash interface. It never returns an
// error.
func (h *Hasher) Write(p []byte) (int, error) {
	h.h.update(p)
	return len(p), nil
}

// WriteString is Write for strings.
func (h *Hasher) WriteString(s string) (int, error) {
	h.h.update([]byte(s))
	return len(s), nil
}

// Reset implements part of the hash.Hash interface. It causes the
// Hasher to act as if it was newly created with the same key and round
// counts.
func (h *Hasher) Reset() {
	h.h.reset()
}

// Size implements part of the hash.Hash interface. It returns the
// number of bytes Sum appends.
func (h *Hasher) Size() int {
	return Size
}

// BlockSize implements part of the hash.Hash interface.
func (h *Hasher) BlockSize() int {
	return BlockSize
}

// Sum implements part of the hash.Hash interface. It appends the 8
// bytes of the 64 bit digest, in little-endian order, to b.
func (h *Hasher) Sum(b []byte) []byte {
	var tmp [Size]byte
	utils.PutWordLE(tmp[:], h.h.sum64())
	return append(b, tmp[:]...)
}

// Sum64 returns the 64 bit digest of the bytes written so far. It does
// not consume the stream: calling it again returns the same value, and
// further writes extend the input as if Sum64 had never been called.
func (h *Hasher) Sum64() uint64 {
	return h.h.sum64()
}

// Sum128 returns the 128 bit digest of the bytes written so far as two
// 64 bit halves, low half first. The low half is not the Sum64 value:
// the two output widths use distinct finalization constants. Like
// Sum64, it does not consume the stream.
func (h *Hasher) Sum128() (lo, hi uint64) {
	return h.h.sum128()
}

// Clone returns a copy of the Hasher. Writes to the copy and the
// original diverge from the shared prefix.
func (h *Hasher) Clone() *Hasher {
	c := *h
	return &c
}

// Keys returns the key words the Hasher was constructed with.
func (h *Hasher) Keys() (k0, k1 uint64) {
	return h.h.k0, h.h.k1
}

// Key returns the key the Hasher was constructed with as 16 bytes.
func (h *Hasher) Key() [KeySize]byte {
	var key [KeySize]byte
	utils.PutWordLE(key[0:8], h.h.k0)
	utils.PutWordLE(key[8:16], h.h.k1)
	return key
}
