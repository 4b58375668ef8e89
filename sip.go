package siphash

import (
	"math/bits"

	"github.com/zeebo/siphash/internal/consts"
	"github.com/zeebo/siphash/internal/utils"
)

//
// permutation state
//

type state struct {
	v0, v1, v2, v3 uint64
}

// round applies one SipRound. The ARX schedule is fixed by the SipHash
// specification and must not be reordered.
func (s *state) round() {
	s.v0 += s.v1
	s.v1 = bits.RotateLeft64(s.v1, 13)
	s.v1 ^= s.v0
	s.v0 = bits.RotateLeft64(s.v0, 32)

	s.v2 += s.v3
	s.v3 = bits.RotateLeft64(s.v3, 16)
	s.v3 ^= s.v2

	s.v0 += s.v3
	s.v3 = bits.RotateLeft64(s.v3, 21)
	s.v3 ^= s.v0

	s.v2 += s.v1
	s.v1 = bits.RotateLeft64(s.v1, 17)
	s.v1 ^= s.v2
	s.v2 = bits.RotateLeft64(s.v2, 32)
}

// compress folds one little-endian input word into the state with the
// given number of rounds.
func (s *state) compress(m uint64, rounds int) {
	s.v3 ^= m
	for i := 0; i < rounds; i++ {
		s.round()
	}
	s.v0 ^= m
}

//
// hasher contains state for an incremental siphash computation
//

type hasher struct {
	s       state
	k0, k1  uint64
	len     uint64
	ntail   int
	tail    [8]byte
	crounds int
	drounds int
}

func newHasher(k0, k1 uint64, crounds, drounds int) hasher {
	a := hasher{k0: k0, k1: k1, crounds: crounds, drounds: drounds}
	a.reset()
	return a
}

func (a *hasher) reset() {
	a.s.v0 = a.k0 ^ consts.Init0
	a.s.v1 = a.k1 ^ consts.Init1
	a.s.v2 = a.k0 ^ consts.Init2
	a.s.v3 = a.k1 ^ consts.Init3
	a.len = 0
	a.ntail = 0
}

// update consumes buf, compressing every complete 8 byte word and
// buffering the remainder. The final digest does not depend on how the
// input was split across update calls.
func (a *hasher) update(buf []byte) {
	a.len += uint64(len(buf))

	if a.ntail > 0 {
		n := copy(a.tail[a.ntail:], buf)
		a.ntail += n
		if a.ntail < len(a.tail) {
			return
		}
		buf = buf[n:]
		a.s.compress(utils.WordLE(a.tail[:]), a.crounds)
		a.ntail = 0
	}

	for len(buf) >= consts.BlockSize {
		a.s.compress(utils.WordLE(buf), a.crounds)
		buf = buf[consts.BlockSize:]
	}

	a.ntail = copy(a.tail[:], buf)
}

// finalWord is the last word compressed into the state: the buffered
// tail padded with zeros, with the total length mod 256 in the top byte.
func (a *hasher) finalWord() uint64 {
	return a.len<<56 | utils.PartialLE(a.tail[:a.ntail])
}

// sum64 computes the 64 bit digest of everything consumed so far. It
// works on a copy of the state, so it is idempotent and update may be
// called again afterwards to extend the stream.
func (a *hasher) sum64() uint64 {
	s := a.s
	s.compress(a.finalWord(), a.crounds)

	s.v2 ^= consts.Final64
	for i := 0; i < a.drounds; i++ {
		s.round()
	}

	return s.v0 ^ s.v1 ^ s.v2 ^ s.v3
}

// sum128 computes the 128 bit digest as two 64 bit halves, low half
// first. The finalization constant differs from sum64 so the two widths
// are domain separated, and the high half comes from a second pass of d
// rounds after perturbing v1.
func (a *hasher) sum128() (lo, hi uint64) {
	s := a.s
	s.compress(a.finalWord(), a.crounds)

	s.v2 ^= consts.Final128
	for i := 0; i < a.drounds; i++ {
		s.round()
	}
	lo = s.v0 ^ s.v1 ^ s.v2 ^ s.v3

	s.v1 ^= consts.Final128Hi
	for i := 0; i < a.drounds; i++ {
		s.round()
	}
	hi = s.v0 ^ s.v1 ^ s.v2 ^ s.v3

	return lo, hi
}
