package consts

// Initialization constants: the little-endian words of
// "somepseudorandomlygeneratedbytes". The state starts as these words
// xored with the key, per the SipHash specification.
const (
	Init0 = 0x736f6d6570736575
	Init1 = 0x646f72616e646f6d
	Init2 = 0x6c7967656e657261
	Init3 = 0x7465646279746573
)

// Finalization constants xored into the state before the d rounds.
// Final64 and Final128 differ so that the two output widths never
// collide for the same key and input.
const (
	Final64    = 0xff
	Final128   = 0xee
	Final128Hi = 0x01
)

const (
	KeySize   = 16
	BlockSize = 8
)

// Round counts for the two shipped variants, following the
// SipHash-c-d naming convention.
const (
	CRounds24 = 2
	DRounds24 = 4

	CRounds13 = 1
	DRounds13 = 3
)
