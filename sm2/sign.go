package sm2

import (
	"hash"
	"io"
	"math/big"

	"github.com/bastionzero/oaepsm2/internal/bigmath"
)

// maxSignRetries bounds the signing loop defensively: the restart
// probability for random k is astronomically small, but an unbounded
// retry loop is still a latent liveness bug on pathological RNG
// behavior.
const maxSignRetries = 32

// SignHash produces an SM2 signature (r, s) over the opaque pre-hash
// digest. digest is treated as already having undergone ZA pre-hashing
// (or any other agreed pre-hash) by the caller.
func SignHash(random io.Reader, key *PrivateKey, digest []byte) (r, s *big.Int, err error) {
	e := new(big.Int).SetBytes(digest)
	return signWithDigest(random, key, e)
}

// SignMessage computes e = sm2_msg_hash(hash, key, userID, msg) and signs
// it.
func SignMessage(random io.Reader, key *PrivateKey, newHash func() hash.Hash, userID, msg []byte) (r, s *big.Int, err error) {
	e, err := msgHash(newHash, userID, &key.PublicKey, msg)
	if err != nil {
		return nil, nil, err
	}
	return signWithDigest(random, key, e)
}

// signWithDigest draws a fresh nonce k on every attempt and delegates the
// signing equation to signWithK, restarting on any degenerate outcome up
// to maxSignRetries times.
func signWithDigest(random io.Reader, key *PrivateKey, e *big.Int) (r, s *big.Int, err error) {
	n := curve().Params().N

	for attempt := 0; attempt < maxSignRetries; attempt++ {
		k, err := bigmath.RandRange(random, n)
		if err != nil {
			return nil, nil, ErrRandomFailure
		}

		r, s, ok, err := signWithK(key, e, k)
		if err != nil {
			return nil, nil, err
		}
		if ok {
			return r, s, nil
		}
	}

	return nil, nil, ErrSignRetryExhausted
}

// signWithK implements the SM2 signing equation for a caller-supplied
// nonce k, reporting ok=false on any degenerate outcome (r = 0, r + k =
// n, s = 0) so the caller can retry with a fresh k instead of leaking which check
// failed. It is exposed unexported so a known-answer test can reproduce a
// published signature by fixing k directly, bypassing the RNG entirely.
//
// k's byte and word backing stores are zeroed before this function
// returns, along with the kMinusRd scratch value; the caller retains no
// residual copy of k once signWithK returns.
func signWithK(key *PrivateKey, e, k *big.Int) (r, s *big.Int, ok bool, err error) {
	c := curve()
	n := c.Params().N

	dPlus1 := new(big.Int).Add(key.D, bigOne)
	dPlus1.Mod(dPlus1, n)
	dPlus1Inv := bigmath.ModInverse(dPlus1, n)
	if dPlus1Inv == nil {
		zeroScalar(k)
		return nil, nil, false, ErrBadKey
	}

	kBytes := k.Bytes()
	x1, _ := c.ScalarBaseMult(kBytes)
	zero(kBytes)

	rCandidate := bigmath.ModAdd(e, x1, n)
	if bigmath.IsZero(rCandidate) {
		zeroScalar(k)
		return nil, nil, false, nil
	}
	rPlusK := new(big.Int).Add(rCandidate, k)
	if rPlusK.Cmp(n) == 0 {
		zeroScalar(k)
		return nil, nil, false, nil
	}

	rd := bigmath.ModMul(rCandidate, key.D, n)
	kMinusRd := bigmath.ModSub(k, rd, n)
	zeroScalar(k)

	sCandidate := bigmath.ModMul(dPlus1Inv, kMinusRd, n)
	zeroScalar(kMinusRd)
	if bigmath.IsZero(sCandidate) {
		return nil, nil, false, nil
	}

	return rCandidate, sCandidate, true, nil
}

var bigOne = big.NewInt(1)
