// Package bigmath centralizes the modular big-integer arithmetic shared by
// the sm2 package: scalar sampling in [1, n-1], modular add/sub/mul/inverse,
// and congruence checks, shared by the sm2 package's scalar arithmetic.
package bigmath

import (
	"crypto/rand"
	"errors"
	"io"
	"math/big"
)

var bigOne = big.NewInt(1)

// ErrRandomFailure is returned when the secure RNG fails to produce a
// scalar.
var ErrRandomFailure = errors.New("bigmath: random source failed")

// CongruentModN reports whether n divides (a - b), i.e. a ≡ b (mod n).
func CongruentModN(a, b, n *big.Int) bool {
	aModN := new(big.Int).Mod(a, n)
	bModN := new(big.Int).Mod(b, n)
	return aModN.Cmp(bModN) == 0
}

// RandRange returns a uniformly random integer in [1, n-1], reading from
// random. It never returns 0, matching the SM2 requirement that private
// and nonce scalars be nonzero.
func RandRange(random io.Reader, n *big.Int) (*big.Int, error) {
	if n.Cmp(bigOne) <= 0 {
		return nil, errors.New("bigmath: modulus too small to sample from")
	}
	nMinus1 := new(big.Int).Sub(n, bigOne)
	for {
		k, err := rand.Int(random, nMinus1)
		if err != nil {
			return nil, ErrRandomFailure
		}
		k.Add(k, bigOne) // shift [0, n-2] to [1, n-1]
		if k.Sign() != 0 {
			return k, nil
		}
	}
}

// ModAdd returns (a + b) mod n.
func ModAdd(a, b, n *big.Int) *big.Int {
	r := new(big.Int).Add(a, b)
	return r.Mod(r, n)
}

// ModSub returns (a - b) mod n.
func ModSub(a, b, n *big.Int) *big.Int {
	r := new(big.Int).Sub(a, b)
	return r.Mod(r, n)
}

// ModMul returns (a * b) mod n.
func ModMul(a, b, n *big.Int) *big.Int {
	r := new(big.Int).Mul(a, b)
	return r.Mod(r, n)
}

// ModInverse returns the multiplicative inverse of a modulo n, or nil if a
// has no inverse (i.e. gcd(a, n) != 1).
func ModInverse(a, n *big.Int) *big.Int {
	return new(big.Int).ModInverse(a, n)
}

// IsZero reports whether a is exactly zero.
func IsZero(a *big.Int) bool {
	return a.Sign() == 0
}

// InRange reports whether 1 <= a <= hi-1, the SM2 scalar range [1, n-1].
func InRange(a, hi *big.Int) bool {
	return a.Sign() > 0 && a.Cmp(hi) < 0
}
