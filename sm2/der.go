package sm2

import (
	"hash"
	"io"
	"math/big"

	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"
)

// MarshalSignature encodes (r, s) as the DER SEQUENCE { INTEGER r,
// INTEGER s } that is a signature's wire form, using cryptobyte rather
// than encoding/asn1 — the same construction
// dromara/dongle's sm2 package uses to build its signature bytes.
func MarshalSignature(r, s *big.Int) ([]byte, error) {
	var b cryptobyte.Builder
	b.AddASN1(cbasn1.SEQUENCE, func(child *cryptobyte.Builder) {
		child.AddASN1BigInt(r)
		child.AddASN1BigInt(s)
	})
	return b.Bytes()
}

// ParseSignature decodes a DER-encoded SM2 signature and additionally
// checks canonicalization: re-encoding the parsed (r, s) must reproduce
// der byte-for-byte. This rejects non-canonical encodings — extra leading
// zeros, trailing bytes, indefinite or BER-form lengths — that
// encoding/asn1's lenient parser would otherwise accept.
func ParseSignature(der []byte) (r, s *big.Int, err error) {
	input := cryptobyte.String(der)
	var inner cryptobyte.String
	if !input.ReadASN1(&inner, cbasn1.SEQUENCE) || !input.Empty() {
		return nil, nil, ErrInvalidEncoding
	}

	r, s = new(big.Int), new(big.Int)
	if !inner.ReadASN1Integer(r) || !inner.ReadASN1Integer(s) || !inner.Empty() {
		return nil, nil, ErrInvalidEncoding
	}

	reencoded, err := MarshalSignature(r, s)
	if err != nil {
		return nil, nil, ErrInvalidEncoding
	}
	if !bytesEqual(reencoded, der) {
		return nil, nil, ErrInvalidEncoding
	}

	return r, s, nil
}

// SignMessageToDER signs msg the same way SignMessage does and returns
// the DER-encoded (r, s), the wire form callers typically store or
// transmit.
func SignMessageToDER(random io.Reader, key *PrivateKey, newHash func() hash.Hash, userID, msg []byte) ([]byte, error) {
	r, s, err := SignMessage(random, key, newHash, userID, msg)
	if err != nil {
		return nil, err
	}
	return MarshalSignature(r, s)
}

// VerifyMessageDER parses der with the canonicalization check ParseSignature
// enforces, then verifies it against msg, rejecting any signature whose
// DER encoding is non-canonical.
func VerifyMessageDER(pub *PublicKey, newHash func() hash.Hash, userID, msg, der []byte) bool {
	r, s, err := ParseSignature(der)
	if err != nil {
		return false
	}
	return VerifyMessage(pub, newHash, userID, msg, r, s)
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
