package sm2

import (
	"hash"
	"math/big"
)

// defaultUserID is the identity GM/T 0009-2012 uses when no application
// identity is supplied.
var defaultUserID = []byte("1234567812345678")

// computeZA builds ZA = Hash(ENTLA || IDA || a || b || xG || yG || xA ||
// yA), the SM2 user-identity pre-hash, and returns its hLen-byte digest
// under newHash (SM3 in the standard).
//
// Field and base-point encodings are fixed-width big-endian, each padded
// to the curve's coordinate length (32 bytes for sm2p256v1), per GM/T
// 0003.2.
func computeZA(newHash func() hash.Hash, userID []byte, pub *PublicKey) ([]byte, error) {
	if len(userID) == 0 {
		userID = defaultUserID
	}

	entlaBits := uint64(len(userID)) * 8
	if entlaBits > 0xFFFF {
		return nil, ErrDigestFailure
	}

	c := curve()
	params := c.Params()
	n := coordLen(c)

	// sm2p256v1's a coefficient is p - 3, matching the curve equation
	// y^2 = x^3 + ax + b used by GM/T 0003.2.
	a := new(big.Int).Sub(params.P, big.NewInt(3))

	h := newHash()
	var entla [2]byte
	entla[0] = byte(entlaBits >> 8)
	entla[1] = byte(entlaBits)
	h.Write(entla[:])
	h.Write(userID)
	h.Write(padLeft(a.Bytes(), n))
	h.Write(padLeft(params.B.Bytes(), n))
	h.Write(padLeft(params.Gx.Bytes(), n))
	h.Write(padLeft(params.Gy.Bytes(), n))
	h.Write(padLeft(pub.X.Bytes(), n))
	h.Write(padLeft(pub.Y.Bytes(), n))

	if h.Size() <= 0 {
		return nil, ErrDigestFailure
	}
	return h.Sum(nil), nil
}

// msgHash computes e = OS2IP(hash(ZA || msg)), the SM2 message pre-hash.
// The ZA and digest scratch buffers are zeroed before returning, since
// both are intermediate byte buffers in the signing/verification path
// rather than values the caller needs to retain.
func msgHash(newHash func() hash.Hash, userID []byte, pub *PublicKey, msg []byte) (*big.Int, error) {
	za, err := computeZA(newHash, userID, pub)
	if err != nil {
		return nil, err
	}

	h := newHash()
	h.Write(za)
	h.Write(msg)
	digest := h.Sum(nil)
	zero(za)

	e := new(big.Int).SetBytes(digest)
	zero(digest)

	return e, nil
}

// padLeft left-pads b with zero bytes to reach size, matching the
// fixed-width field-element encoding ZA requires.
func padLeft(b []byte, size int) []byte {
	if len(b) >= size {
		return b
	}
	out := make([]byte, size)
	copy(out[size-len(b):], b)
	return out
}
