package sm2

import (
	"hash"
	"math/big"

	"github.com/bastionzero/oaepsm2/internal/bigmath"
)

// VerifyHash checks an SM2 signature against an opaque pre-hash digest
// directly.
func VerifyHash(pub *PublicKey, digest []byte, r, s *big.Int) bool {
	e := new(big.Int).SetBytes(digest)
	return verifyWithDigest(pub, e, r, s)
}

// VerifyMessage recomputes e = sm2_msg_hash(hash, key, userID, msg) and
// checks the signature against it.
// Unlike VerifyHash, this path additionally re-derives ZA from pub, so a
// signature made under a different user_id or key will not verify even
// if the caller supplies the same (r, s) and digest bytes.
func VerifyMessage(pub *PublicKey, newHash func() hash.Hash, userID, msg []byte, r, s *big.Int) bool {
	e, err := msgHash(newHash, userID, pub, msg)
	if err != nil {
		return false
	}
	return verifyWithDigest(pub, e, r, s)
}

// VerifyHashStrict is VerifyHash for callers that want an error rather than
// a bare bool, e.g. to propagate ErrBadSignature up an error-returning call
// chain instead of branching on a boolean locally.
func VerifyHashStrict(pub *PublicKey, digest []byte, r, s *big.Int) error {
	if VerifyHash(pub, digest, r, s) {
		return nil
	}
	return ErrBadSignature
}

// VerifyMessageStrict is VerifyMessage for callers that want an error
// rather than a bare bool.
func VerifyMessageStrict(pub *PublicKey, newHash func() hash.Hash, userID, msg []byte, r, s *big.Int) error {
	if VerifyMessage(pub, newHash, userID, msg, r, s) {
		return nil
	}
	return ErrBadSignature
}

// verifyWithDigest implements the SM2 verification algorithm. All of it
// runs on public values, so unlike OAEP decode there is no
// constant-time requirement here — early returns are fine.
func verifyWithDigest(pub *PublicKey, e, r, s *big.Int) bool {
	c := curve()
	n := c.Params().N

	if !bigmath.InRange(r, n) || !bigmath.InRange(s, n) {
		return false
	}

	t := bigmath.ModAdd(r, s, n)
	if bigmath.IsZero(t) {
		return false
	}

	x1, y1 := c.ScalarBaseMult(s.Bytes())
	x2, y2 := c.ScalarMult(pub.X, pub.Y, t.Bytes())
	x1, y1 = c.Add(x1, y1, x2, y2)

	if isIdentity(x1, y1) {
		return false
	}

	v := bigmath.ModAdd(e, x1, n)
	return v.Cmp(r) == 0
}
