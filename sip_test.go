package siphash

import (
	"testing"

	"github.com/zeebo/assert"
	"github.com/zeebo/siphash/internal/consts"
)

func TestRound(t *testing.T) {
	// one SipRound applied to the zero key initial state
	s := state{
		v0: consts.Init0,
		v1: consts.Init1,
		v2: consts.Init2,
		v3: consts.Init3,
	}
	s.round()

	assert.Equal(t, s, state{
		v0: 0x639487965a898377,
		v1: 0xfe651ba6cbca2366,
		v2: 0x3b1450431a71bdd2,
		v3: 0x35e4d2c22cb914e1,
	})
}

func TestCompress(t *testing.T) {
	s := state{
		v0: consts.Init0,
		v1: consts.Init1,
		v2: consts.Init2,
		v3: consts.Init3,
	}
	s.compress(0x0706050403020100, consts.CRounds24)

	assert.Equal(t, s, state{
		v0: 0x42db706f57db6a65,
		v1: 0x056732541e3ada7e,
		v2: 0x22a32b4dfed35fd2,
		v3: 0x352a4c13b09bfad3,
	})
}

func TestChunking(t *testing.T) {
	// every split point of every vector input yields the one-shot digest
	for n := 0; n < 64; n++ {
		in := vectorInput(n)

		for i := 0; i <= n; i++ {
			a := newHasher(vectorK0, vectorK1, consts.CRounds24, consts.DRounds24)
			a.update(in[:i])
			a.update(in[i:])

			assert.Equal(t, vectors24[n], a.sum64())

			lo, hi := a.sum128()
			assert.Equal(t, vectors24x128[n][0], lo)
			assert.Equal(t, vectors24x128[n][1], hi)
		}
	}
}

func TestEmptyWrites(t *testing.T) {
	a := newHasher(vectorK0, vectorK1, consts.CRounds24, consts.DRounds24)
	a.update(nil)
	a.update(vectorInput(3))
	a.update([]byte{})
	a.update(vectorInput(7)[3:])

	assert.Equal(t, uint64(7), a.len)
	assert.Equal(t, vectors24[7], a.sum64())
}

func TestTailInvariant(t *testing.T) {
	a := newHasher(vectorK0, vectorK1, consts.CRounds24, consts.DRounds24)

	for i := 0; i < 64; i++ {
		a.update(vectorInput(i % 9))
		if a.ntail < 0 || a.ntail >= consts.BlockSize {
			t.Fatalf("tail overflow after %d updates: %d", i+1, a.ntail)
		}
	}
}

func TestLengthCounterWraps(t *testing.T) {
	// only the low byte of the length participates in padding, so two
	// streams whose lengths agree mod 256 but differ in content length
	// must still hash their own bytes; the full counter is tracked so
	// the padding byte is always the true length mod 256.
	a := newHasher(vectorK0, vectorK1, consts.CRounds24, consts.DRounds24)
	in := make([]byte, 256+5)
	a.update(in)

	assert.Equal(t, uint64(261), a.len)
	assert.Equal(t, uint64(261%256)<<56, a.finalWord())
}
