package oaep

import (
	"encoding/binary"
	"hash"
	"math"
)

// MGF1 expands seed into exactly length pseudorandom bytes by concatenating
// h(seed || I2OSP(i, 4)) for the counter i = 0, 1, 2, ... and truncating to
// length, per RFC 8017 appendix B.2.1.
//
// MGF1 calls h.Reset() before every block, so h may carry earlier state
// and a shared hash.Hash can be reused across calls.
func MGF1(h hash.Hash, seed []byte, length int) ([]byte, error) {
	hLen := h.Size()
	if hLen <= 0 {
		return nil, ErrMgfLengthInvalid
	}
	// ceil(length/hLen) must not exceed 2^32, the counter's range.
	if float64(length)/float64(hLen) > math.MaxUint32+1 {
		return nil, ErrMgfLengthInvalid
	}

	out := make([]byte, 0, length+hLen)
	var counter [4]byte
	for len(out) < length {
		binary.BigEndian.PutUint32(counter[:], uint32(len(out)/hLen))
		h.Reset()
		h.Write(seed)
		h.Write(counter[:])
		out = h.Sum(out)
	}
	return out[:length], nil
}

// mgf1XOR XORs length bytes of MGF1(h, seed, length) into dst in place,
// matching the masking step used by both Encode and Decode: dst is
// maskedDB or maskedSeed, already holding the value to be masked/unmasked.
func mgf1XOR(dst []byte, h hash.Hash, seed []byte) error {
	mask, err := MGF1(h, seed, len(dst))
	if err != nil {
		return err
	}
	for i := range dst {
		dst[i] ^= mask[i]
	}
	return nil
}
