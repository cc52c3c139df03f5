package sm2

import "math/big"

// zero overwrites b with zeros; used to scrub transient byte buffers that
// held a digest, ZA, or a scalar's byte encoding before they go out of
// scope, mirroring oaep's own zero([]byte) helper.
func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// zeroScalar scrubs the words backing x's absolute value in place, used
// to scrub a big.Int scratch value such as the signing nonce k once its
// last use has passed.
func zeroScalar(x *big.Int) {
	bits := x.Bits()
	for i := range bits {
		bits[i] = 0
	}
}
