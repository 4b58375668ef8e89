package siphash

import "github.com/zeebo/siphash/internal/consts"

// Hash returns the 64 bit SipHash-2-4 digest of p under the key words
// (k0, k1). It is equivalent to writing p to a Hasher from NewKeys and
// calling Sum64.
func Hash(k0, k1 uint64, p []byte) uint64 {
	a := newHasher(k0, k1, consts.CRounds24, consts.DRounds24)
	a.update(p)
	return a.sum64()
}

// Hash128 returns the 128 bit SipHash-2-4 digest of p under the key
// words (k0, k1) as two 64 bit halves, low half first.
func Hash128(k0, k1 uint64, p []byte) (lo, hi uint64) {
	a := newHasher(k0, k1, consts.CRounds24, consts.DRounds24)
	a.update(p)
	return a.sum128()
}

// Hash13 is Hash for SipHash-1-3.
func Hash13(k0, k1 uint64, p []byte) uint64 {
	a := newHasher(k0, k1, consts.CRounds13, consts.DRounds13)
	a.update(p)
	return a.sum64()
}

// Hash128x13 is Hash128 for SipHash-1-3.
func Hash128x13(k0, k1 uint64, p []byte) (lo, hi uint64) {
	a := newHasher(k0, k1, consts.CRounds13, consts.DRounds13)
	a.update(p)
	return a.sum128()
}
