package siphash

import (
	json "github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// hasherState is the interchange form of a Hasher, for persisting a
// partially written hasher across process boundaries.
type hasherState struct {
	K0      uint64 `json:"k0"`
	K1      uint64 `json:"k1"`
	V0      uint64 `json:"v0"`
	V1      uint64 `json:"v1"`
	V2      uint64 `json:"v2"`
	V3      uint64 `json:"v3"`
	Tail    []byte `json:"tail"`
	Length  uint64 `json:"length"`
	CRounds int    `json:"c_rounds"`
	DRounds int    `json:"d_rounds"`
}

// MarshalJSON encodes the full hasher state: key words, permutation
// state, buffered tail bytes, and total length consumed.
func (h *Hasher) MarshalJSON() ([]byte, error) {
	return json.Marshal(hasherState{
		K0:      h.h.k0,
		K1:      h.h.k1,
		V0:      h.h.s.v0,
		V1:      h.h.s.v1,
		V2:      h.h.s.v2,
		V3:      h.h.s.v3,
		Tail:    append([]byte(nil), h.h.tail[:h.h.ntail]...),
		Length:  h.h.len,
		CRounds: h.h.crounds,
		DRounds: h.h.drounds,
	})
}

// UnmarshalJSON restores a hasher encoded by MarshalJSON. Writing more
// bytes to the restored hasher continues the original stream.
func (h *Hasher) UnmarshalJSON(data []byte) error {
	var st hasherState
	if err := json.Unmarshal(data, &st); err != nil {
		return err
	}
	if len(st.Tail) >= BlockSize {
		return errors.Errorf("invalid tail length: %d", len(st.Tail))
	}
	if st.CRounds <= 0 || st.DRounds <= 0 {
		return errors.Errorf("invalid round counts: %d, %d", st.CRounds, st.DRounds)
	}

	h.h = hasher{
		s:       state{v0: st.V0, v1: st.V1, v2: st.V2, v3: st.V3},
		k0:      st.K0,
		k1:      st.K1,
		len:     st.Length,
		crounds: st.CRounds,
		drounds: st.DRounds,
	}
	h.h.ntail = copy(h.h.tail[:], st.Tail)
	return nil
}
